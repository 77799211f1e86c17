package render

import (
	"context"
	"fmt"
	"strings"

	"tablescrub/domain/report"
)

// topMessyColumns caps the "messiest columns" listing in the digests.
const topMessyColumns = 5

// TextRenderer writes a plain-text human-readable digest of the report.
type TextRenderer struct{}

func (TextRenderer) Name() string { return "report.txt" }

func (r TextRenderer) Render(_ context.Context, outDir string, rep *report.Report) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Dataset Health Score: %d%%\n", rep.HealthScore)
	fmt.Fprintf(&b, "Original rows: %d\n", rep.OriginalRowCount)
	fmt.Fprintf(&b, "Cleaned rows: %d\n", rep.CleanedRowCount)
	b.WriteString("Missing counts per column:\n")
	for _, h := range rep.Headers {
		fmt.Fprintf(&b, " - %s: %d\n", h, rep.Missing[h])
	}
	fmt.Fprintf(&b, "Duplicates removed: %d\n", rep.DuplicatesRemoved)
	b.WriteString("Top messy columns (by missing):\n")
	for _, cc := range rep.TopMissing(topMessyColumns) {
		fmt.Fprintf(&b, " - %s: %d\n", cc.Header, cc.Count)
	}
	b.WriteString("\nFill summary:\n")
	for _, h := range rep.Headers {
		fr := rep.FillSummary[h]
		fmt.Fprintf(&b, " - %s: filled_with=%s, count=%d\n", h, fillValueLabel(fr.FilledWith), fr.Count)
	}
	return writeFileAtomic(outDir, r.Name(), []byte(b.String()))
}

func fillValueLabel(v *string) string {
	if v == nil {
		return "none"
	}
	if *v == "" {
		return `""`
	}
	return *v
}

// MarkdownRenderer writes the digest as Markdown; the web results page
// renders this artifact to HTML.
type MarkdownRenderer struct{}

func (MarkdownRenderer) Name() string { return "report.md" }

func (r MarkdownRenderer) Render(_ context.Context, outDir string, rep *report.Report) (string, error) {
	var b strings.Builder
	b.WriteString("# Dataset Quality Report\n\n")
	fmt.Fprintf(&b, "**Health score: %d%%**\n\n", rep.HealthScore)
	fmt.Fprintf(&b, "- Original rows: %d\n", rep.OriginalRowCount)
	fmt.Fprintf(&b, "- Cleaned rows: %d\n", rep.CleanedRowCount)
	fmt.Fprintf(&b, "- Duplicates removed: %d\n\n", rep.DuplicatesRemoved)

	b.WriteString("## Missing values\n\n")
	b.WriteString("| Column | Missing |\n|---|---|\n")
	for _, h := range rep.Headers {
		fmt.Fprintf(&b, "| %s | %d |\n", h, rep.Missing[h])
	}

	b.WriteString("\n## Top messy columns\n\n")
	for _, cc := range rep.TopMissing(topMessyColumns) {
		fmt.Fprintf(&b, "- %s: %d missing\n", cc.Header, cc.Count)
	}

	b.WriteString("\n## Fill summary\n\n")
	b.WriteString("| Column | Filled with | Count |\n|---|---|---|\n")
	for _, h := range rep.Headers {
		fr := rep.FillSummary[h]
		fmt.Fprintf(&b, "| %s | %s | %d |\n", h, fillValueLabel(fr.FilledWith), fr.Count)
	}
	return writeFileAtomic(outDir, r.Name(), []byte(b.String()))
}
