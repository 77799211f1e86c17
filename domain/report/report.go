// Package report assembles detector and cleaner outputs into the single
// quality report produced by a pipeline run, including the aggregate health
// score.
package report

import (
	"math"
	"sort"

	"tablescrub/domain/clean"
	"tablescrub/domain/colstats"
	"tablescrub/domain/detect"
)

// Health score penalty weights. Missing data dominates, duplicates and
// outliers contribute less.
const (
	missingWeight = 0.6
	dupWeight     = 0.25
	outlierWeight = 0.15
)

// Report is the aggregate quality report for one run. It is built once and
// never modified afterwards.
type Report struct {
	OriginalFile      string                          `json:"original_file"`
	OriginalRowCount  int                             `json:"original_row_count"`
	CleanedRowCount   int                             `json:"cleaned_row_count"`
	Missing           map[string]int                  `json:"missing"`
	DuplicatesRemoved int                             `json:"duplicates_removed"`
	DuplicateIndices  []int                           `json:"duplicate_indices"`
	ColumnStats       map[string]colstats.ColumnStats `json:"column_stats"`
	Outliers          map[string]detect.OutlierReport `json:"outliers"`
	FillSummary       map[string]clean.FillResult     `json:"fill_summary"`
	HealthScore       int                             `json:"health_score"`

	// Headers preserves column order for human-readable rendering.
	Headers []string `json:"-"`
}

// Input carries everything the aggregator needs from the pipeline.
type Input struct {
	OriginalFile     string
	Headers          []string
	OriginalRows     int
	CleanedRows      int
	Missing          map[string]int
	DuplicateCount   int
	DuplicateIndices []int
	Stats            map[string]colstats.ColumnStats
	Outliers         map[string]detect.OutlierReport
	FillSummary      map[string]clean.FillResult
}

// Build assembles the report and computes the health score:
//
//	score = max(0, round(100 - (missingPct*0.6 + dupPct*0.25 + outlierPct*0.15)))
//
// where missingPct is over all cells and the other percentages over rows.
// Rounding is math.Round (half away from zero). The score is clamped at 0;
// the formula keeps it at or below 100 for any real input.
func Build(in Input) *Report {
	totalMissing := 0
	for _, c := range in.Missing {
		totalMissing += c
	}
	totalOutliers := 0
	for _, o := range in.Outliers {
		totalOutliers += o.Count
	}

	cells := in.OriginalRows * len(in.Headers)
	missingPct := 100 * float64(totalMissing) / math.Max(1, float64(cells))
	dupPct := 100 * float64(in.DuplicateCount) / math.Max(1, float64(in.OriginalRows))
	outlierPct := 100 * float64(totalOutliers) / math.Max(1, float64(in.OriginalRows))

	score := int(math.Round(100 - (missingPct*missingWeight + dupPct*dupWeight + outlierPct*outlierWeight)))
	if score < 0 {
		score = 0
	}

	return &Report{
		OriginalFile:      in.OriginalFile,
		OriginalRowCount:  in.OriginalRows,
		CleanedRowCount:   in.CleanedRows,
		Missing:           in.Missing,
		DuplicatesRemoved: in.DuplicateCount,
		DuplicateIndices:  in.DuplicateIndices,
		ColumnStats:       in.Stats,
		Outliers:          in.Outliers,
		FillSummary:       in.FillSummary,
		HealthScore:       score,
		Headers:           append([]string(nil), in.Headers...),
	}
}

// ColumnCount pairs a column name with a count, for ranked listings.
type ColumnCount struct {
	Header string
	Count  int
}

// TopMissing returns up to n columns ranked by missing count descending.
// Columns with equal counts keep their table order.
func (r *Report) TopMissing(n int) []ColumnCount {
	ranked := make([]ColumnCount, 0, len(r.Headers))
	for _, h := range r.Headers {
		ranked = append(ranked, ColumnCount{Header: h, Count: r.Missing[h]})
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Count > ranked[b].Count
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
