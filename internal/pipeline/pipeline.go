// Package pipeline sequences one analyze-and-clean run: load, profile,
// detect, repair, report, persist. A run is single-threaded and owns its
// table; concurrent runs share nothing.
package pipeline

import (
	"context"
	"path/filepath"

	"tablescrub/adapters/csvio"
	"tablescrub/domain/clean"
	"tablescrub/domain/colstats"
	"tablescrub/domain/detect"
	"tablescrub/domain/report"
	"tablescrub/internal"
	"tablescrub/ports"
)

// CleanedFileName is the cleaned-dataset artifact written into every run's
// output directory.
const CleanedFileName = "cleaned_data.csv"

// Result carries the artifact locations plus the in-memory report, so a
// caller can surface the outcome without re-reading files.
type Result struct {
	CleanedCSV string
	// Artifacts maps renderer artifact names (e.g. "summary.json") to paths.
	Artifacts map[string]string
	Report    *report.Report
}

// Runner executes pipeline runs with a fixed set of report renderers.
type Runner struct {
	log       *internal.Logger
	renderers []ports.ReportRenderer
}

// NewRunner creates a runner. Renderers run in the given order after the
// cleaned table is written.
func NewRunner(log *internal.Logger, renderers ...ports.ReportRenderer) *Runner {
	return &Runner{log: log, renderers: renderers}
}

// Run analyzes and cleans the CSV at inputPath, writing every artifact into
// outDir. Outlier detection runs on the original pre-clean values so the
// report describes quality issues as they existed in the source. The run is
// all-or-nothing: the first failure aborts it.
func (r *Runner) Run(ctx context.Context, inputPath, outDir string, strategy clean.Strategy) (*Result, error) {
	t, err := csvio.Load(inputPath)
	if err != nil {
		return nil, err
	}
	r.log.Info("loaded %s: %d rows, %d columns", inputPath, t.Len(), t.NumColumns())

	missing := detect.Missing(t)
	dupCount, dupIndices := detect.Duplicates(t)
	stats := colstats.Compute(t)

	outliers := make(map[string]detect.OutlierReport, len(stats))
	for _, h := range t.Headers() {
		if !stats[h].InferredType.IsNumeric() {
			continue
		}
		idx := detect.Outliers(colstats.NumericValues(t.Column(h)))
		outliers[h] = detect.OutlierReport{Count: len(idx), Indices: idx}
	}
	r.log.Debug("detected: %d duplicates, %d numeric columns checked for outliers", dupCount, len(outliers))

	deduped := clean.RemoveDuplicates(t, dupIndices)
	cleaned, fillSummary := clean.FillMissing(deduped, strategy)

	rep := report.Build(report.Input{
		OriginalFile:     filepath.Base(inputPath),
		Headers:          t.Headers(),
		OriginalRows:     t.Len(),
		CleanedRows:      cleaned.Len(),
		Missing:          missing,
		DuplicateCount:   dupCount,
		DuplicateIndices: dupIndices,
		Stats:            stats,
		Outliers:         outliers,
		FillSummary:      fillSummary,
	})

	cleanedPath := filepath.Join(outDir, CleanedFileName)
	if err := csvio.Save(cleanedPath, cleaned); err != nil {
		return nil, err
	}

	artifacts := make(map[string]string, len(r.renderers))
	for _, ren := range r.renderers {
		path, err := ren.Render(ctx, outDir, rep)
		if err != nil {
			return nil, err
		}
		artifacts[ren.Name()] = path
	}

	r.log.Info("run complete: health score %d, %d -> %d rows", rep.HealthScore, t.Len(), cleaned.Len())
	return &Result{
		CleanedCSV: cleanedPath,
		Artifacts:  artifacts,
		Report:     rep,
	}, nil
}
