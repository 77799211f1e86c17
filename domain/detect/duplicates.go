package detect

import (
	"tablescrub/domain/table"
)

// Duplicates flags rows whose canonicalized content exactly matches an
// earlier row. The first row with a given key is canonical and never flagged;
// every later match is reported by row index, in row order. The returned
// count always equals len(indices).
func Duplicates(t *table.Table) (int, []int) {
	seen := make(map[string]int, t.Len())
	indices := []int{}
	for i := 0; i < t.Len(); i++ {
		key := t.CanonicalKey(i)
		if _, ok := seen[key]; ok {
			indices = append(indices, i)
		} else {
			seen[key] = i
		}
	}
	return len(indices), indices
}
