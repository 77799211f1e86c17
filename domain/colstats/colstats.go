// Package colstats computes per-column descriptive statistics used by the
// detectors, the cleaner and the final report.
package colstats

import (
	"math"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"

	"tablescrub/domain/infer"
	"tablescrub/domain/table"
)

// ValueCount is a value and how often it occurs in a column.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ColumnStats is the statistical profile of one column.
//
// The numeric fields are pointers: they are present only for numeric columns
// with at least one parseable value, and omitted from JSON otherwise rather
// than zero-filled. StdDev is the population standard deviation, defined as 0
// when fewer than 2 values exist. Skewness needs at least 3 parsed values and
// excess kurtosis at least 4.
type ColumnStats struct {
	InferredType infer.ColumnType `json:"inferred_type"`
	NonMissing   int              `json:"non_missing"`
	MissingCount int              `json:"missing_count"`
	UniqueCount  int              `json:"unique_count"`
	TopValues    []ValueCount     `json:"top_values,omitempty"`

	Mean     *float64 `json:"mean,omitempty"`
	Median   *float64 `json:"median,omitempty"`
	StdDev   *float64 `json:"stdev,omitempty"`
	Min      *float64 `json:"min,omitempty"`
	Max      *float64 `json:"max,omitempty"`
	Skewness *float64 `json:"skewness,omitempty"`
	Kurtosis *float64 `json:"kurtosis,omitempty"`
}

// topValueLimit caps the most-frequent-values sample kept per column.
const topValueLimit = 3

// Compute profiles every column of the table.
func Compute(t *table.Table) map[string]ColumnStats {
	out := make(map[string]ColumnStats, t.NumColumns())
	for _, h := range t.Headers() {
		out[h] = computeColumn(t.Column(h))
	}
	return out
}

func computeColumn(values []string) ColumnStats {
	cs := ColumnStats{InferredType: infer.ClassifyColumn(values)}

	uniq := make(map[string]int)
	for _, v := range values {
		if infer.IsMissing(v) {
			cs.MissingCount++
			continue
		}
		cs.NonMissing++
		uniq[v]++
	}
	cs.UniqueCount = len(uniq)
	cs.TopValues = topValues(uniq, topValueLimit)

	if cs.InferredType.IsNumeric() {
		cs.fillNumeric(NumericValues(values))
	}
	return cs
}

func (cs *ColumnStats) fillNumeric(parsed []float64) {
	clean := dropNaN(parsed)
	if len(clean) == 0 {
		return
	}
	mean, _ := stats.Mean(clean)
	median, _ := stats.Median(clean)
	sd, _ := stats.StandardDeviationPopulation(clean)
	min, _ := stats.Min(clean)
	max, _ := stats.Max(clean)
	cs.Mean = &mean
	cs.Median = &median
	cs.StdDev = &sd
	cs.Min = &min
	cs.Max = &max
	if len(clean) >= 3 {
		sk := stat.Skew(clean, nil)
		if !math.IsNaN(sk) {
			cs.Skewness = &sk
		}
	}
	if len(clean) >= 4 {
		ku := stat.ExKurtosis(clean, nil)
		if !math.IsNaN(ku) {
			cs.Kurtosis = &ku
		}
	}
}

// NumericValues converts a raw column into per-row floats, preserving row
// positions. Missing or unparseable cells come back as NaN.
func NumericValues(values []string) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = infer.ToNumber(v)
	}
	return out
}

func dropNaN(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			out = append(out, v)
		}
	}
	return out
}

// topValues ranks distinct values by count descending; ties resolve to the
// lexicographically smaller value.
func topValues(counts map[string]int, limit int) []ValueCount {
	if len(counts) == 0 {
		return nil
	}
	ranked := make([]ValueCount, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, ValueCount{Value: v, Count: c})
	}
	sort.Slice(ranked, func(a, b int) bool {
		if ranked[a].Count != ranked[b].Count {
			return ranked[a].Count > ranked[b].Count
		}
		return strings.Compare(ranked[a].Value, ranked[b].Value) < 0
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
