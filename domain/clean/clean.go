// Package clean repairs a table: duplicate-row removal and strategy-driven
// imputation of missing cells. Both operations return new tables and never
// mutate their input.
package clean

import (
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"tablescrub/domain/colstats"
	"tablescrub/domain/infer"
	"tablescrub/domain/table"
	"tablescrub/internal/errors"
)

// Strategy selects the imputed value for missing cells.
type Strategy string

const (
	StrategyAuto   Strategy = "auto"
	StrategyMean   Strategy = "mean"
	StrategyMedian Strategy = "median"
	StrategyMode   Strategy = "mode"
	StrategyEmpty  Strategy = "empty"
)

// ParseStrategy validates a user-supplied strategy name. Unrecognized names
// are a configuration error, never silently defaulted.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyAuto, StrategyMean, StrategyMedian, StrategyMode, StrategyEmpty:
		return Strategy(s), nil
	}
	return "", errors.ConfigInvalid("unknown fill strategy: " + s)
}

// FillResult records what was imputed into one column. FilledWith is nil when
// the column had no missing cells.
type FillResult struct {
	FilledWith *string `json:"filled_with"`
	Count      int     `json:"count"`
}

// RemoveDuplicates returns a new table without the rows at the given indices,
// preserving the order of the surviving rows. Out-of-range indices are
// ignored, which makes the operation idempotent.
func RemoveDuplicates(t *table.Table, indices []int) *table.Table {
	skip := make(map[int]bool, len(indices))
	for _, i := range indices {
		skip[i] = true
	}
	nt, _ := table.New(t.Headers())
	for i := 0; i < t.Len(); i++ {
		if skip[i] {
			continue
		}
		_ = nt.AppendRow(t.Row(i))
	}
	return nt
}

// FillMissing imputes every missing cell according to the strategy and
// reports, per column, the value used and the number of cells filled.
//
// Numeric columns take their mean (or median under StrategyMedian) over the
// parseable values, 0 when none parse. Text columns take their most frequent
// non-missing value, ties resolved to the lexicographically smaller one, and
// empty text when no non-missing values exist. StrategyEmpty fills every
// column with empty text. All fill values are written back as text.
func FillMissing(t *table.Table, strategy Strategy) (*table.Table, map[string]FillResult) {
	profile := colstats.Compute(t)
	filled := t.Clone()
	summary := make(map[string]FillResult, t.NumColumns())

	for _, h := range t.Headers() {
		cs := profile[h]
		if cs.MissingCount == 0 {
			summary[h] = FillResult{}
			continue
		}

		fillWith := fillValue(t, h, cs, strategy)
		count := 0
		for i := 0; i < filled.Len(); i++ {
			v, _ := filled.Cell(i, h)
			if infer.IsMissing(v) {
				filled.SetCell(i, h, fillWith)
				count++
			}
		}
		fw := fillWith
		summary[h] = FillResult{FilledWith: &fw, Count: count}
	}
	return filled, summary
}

func fillValue(t *table.Table, header string, cs colstats.ColumnStats, strategy Strategy) string {
	if strategy == StrategyEmpty {
		return ""
	}
	if cs.InferredType.IsNumeric() {
		return numericFill(t.Column(header), strategy)
	}
	return modeFill(t.Column(header))
}

func numericFill(values []string, strategy Strategy) string {
	var clean []float64
	for _, v := range values {
		if f := infer.ToNumber(v); f == f { // not NaN
			clean = append(clean, f)
		}
	}
	if len(clean) == 0 {
		return "0"
	}
	var fill float64
	if strategy == StrategyMedian {
		fill, _ = stats.Median(clean)
	} else {
		fill, _ = stats.Mean(clean)
	}
	return strconv.FormatFloat(fill, 'g', -1, 64)
}

// modeFill picks the most frequent non-missing value; ties resolve to the
// lexicographically smaller value so repeated runs agree.
func modeFill(values []string) string {
	counts := make(map[string]int)
	for _, v := range values {
		if !infer.IsMissing(v) {
			counts[v]++
		}
	}
	best := ""
	bestCount := 0
	for v, c := range counts {
		if c > bestCount || (c == bestCount && strings.Compare(v, best) < 0) {
			best = v
			bestCount = c
		}
	}
	return best
}
