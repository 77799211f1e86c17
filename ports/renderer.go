package ports

import (
	"context"

	"tablescrub/domain/report"
)

// ReportRenderer writes one representation of a quality report into the
// run's output directory and returns the path of the artifact it produced.
type ReportRenderer interface {
	// Name identifies the artifact (e.g. "summary.json") in pipeline results.
	Name() string
	Render(ctx context.Context, outDir string, rep *report.Report) (string, error)
}
