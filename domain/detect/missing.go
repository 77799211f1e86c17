// Package detect contains the three independent quality analyses run over a
// loaded table: missing values, duplicate rows and numeric outliers. All of
// them are pure functions of their input.
package detect

import (
	"tablescrub/domain/infer"
	"tablescrub/domain/table"
)

// Missing counts the missing cells per column. A cell is missing when it is
// empty after trimming whitespace.
func Missing(t *table.Table) map[string]int {
	counts := make(map[string]int, t.NumColumns())
	for _, h := range t.Headers() {
		n := 0
		for _, v := range t.Column(h) {
			if infer.IsMissing(v) {
				n++
			}
		}
		counts[h] = n
	}
	return counts
}
