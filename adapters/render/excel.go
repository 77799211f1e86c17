package render

import (
	"context"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"tablescrub/domain/report"
	"tablescrub/internal/errors"
)

// ExcelRenderer writes the column statistics and outlier report as an Excel
// workbook for analysts who want to inspect the profile in a spreadsheet.
type ExcelRenderer struct{}

func (ExcelRenderer) Name() string { return "report.xlsx" }

func (r ExcelRenderer) Render(_ context.Context, outDir string, rep *report.Report) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", errors.IOError("cannot create output directory", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return "", errors.Wrap(err, "cannot rename summary sheet")
	}
	summary := [][]interface{}{
		{"Health score", rep.HealthScore},
		{"Original rows", rep.OriginalRowCount},
		{"Cleaned rows", rep.CleanedRowCount},
		{"Duplicates removed", rep.DuplicatesRemoved},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow("Summary", cell, &row); err != nil {
			return "", errors.Wrap(err, "cannot write summary row")
		}
	}

	if _, err := f.NewSheet("Columns"); err != nil {
		return "", errors.Wrap(err, "cannot create columns sheet")
	}
	head := []interface{}{"Column", "Type", "Non-missing", "Missing", "Unique", "Mean", "Median", "StdDev", "Min", "Max"}
	if err := f.SetSheetRow("Columns", "A1", &head); err != nil {
		return "", errors.Wrap(err, "cannot write columns header")
	}
	for i, h := range rep.Headers {
		cs := rep.ColumnStats[h]
		row := []interface{}{
			h, string(cs.InferredType), cs.NonMissing, cs.MissingCount, cs.UniqueCount,
			floatCell(cs.Mean), floatCell(cs.Median), floatCell(cs.StdDev),
			floatCell(cs.Min), floatCell(cs.Max),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow("Columns", cell, &row); err != nil {
			return "", errors.Wrap(err, "cannot write column row")
		}
	}

	if _, err := f.NewSheet("Outliers"); err != nil {
		return "", errors.Wrap(err, "cannot create outliers sheet")
	}
	outHead := []interface{}{"Column", "Outlier count"}
	if err := f.SetSheetRow("Outliers", "A1", &outHead); err != nil {
		return "", errors.Wrap(err, "cannot write outliers header")
	}
	rowIdx := 2
	for _, h := range rep.Headers {
		o, ok := rep.Outliers[h]
		if !ok {
			continue
		}
		row := []interface{}{h, o.Count}
		cell, _ := excelize.CoordinatesToCellName(1, rowIdx)
		if err := f.SetSheetRow("Outliers", cell, &row); err != nil {
			return "", errors.Wrap(err, "cannot write outlier row")
		}
		rowIdx++
	}

	tmp := filepath.Join(outDir, "."+r.Name()+".tmp")
	if err := f.SaveAs(tmp); err != nil {
		return "", errors.IOError("cannot save workbook", err)
	}
	dest := filepath.Join(outDir, r.Name())
	if err := os.Rename(tmp, dest); err != nil {
		os.Remove(tmp)
		return "", errors.IOError("cannot move workbook into place", err)
	}
	return dest, nil
}

// floatCell keeps omitted statistics blank in the sheet instead of writing 0.
func floatCell(v *float64) interface{} {
	if v == nil {
		return ""
	}
	return *v
}
