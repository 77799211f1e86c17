package render

import (
	"context"
	"encoding/json"

	"tablescrub/domain/report"
	"tablescrub/internal/errors"
)

// JSONRenderer writes the complete report as indented JSON.
type JSONRenderer struct{}

func (JSONRenderer) Name() string { return "summary.json" }

func (r JSONRenderer) Render(_ context.Context, outDir string, rep *report.Report) (string, error) {
	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "cannot marshal report")
	}
	return writeFileAtomic(outDir, r.Name(), append(data, '\n'))
}
