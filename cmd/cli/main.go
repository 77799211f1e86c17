// Command cli runs the analyze-and-clean pipeline once against a local CSV
// file, without the web server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tablescrub/adapters/render"
	"tablescrub/domain/clean"
	"tablescrub/internal"
	"tablescrub/internal/pipeline"
)

func main() {
	input := flag.String("input", "", "path to the CSV file to analyze")
	outDir := flag.String("out", "", "output directory (default: outputs/<input name>)")
	strategyName := flag.String("strategy", "auto", "fill strategy: auto|mean|median|mode|empty")
	flag.Parse()

	if *input == "" {
		fmt.Fprintln(os.Stderr, "usage: cli -input data.csv [-out dir] [-strategy auto]")
		os.Exit(2)
	}

	strategy, err := clean.ParseStrategy(*strategyName)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	dir := *outDir
	if dir == "" {
		base := strings.TrimSuffix(filepath.Base(*input), filepath.Ext(*input))
		dir = filepath.Join("outputs", base)
	}

	logger := internal.NewDefaultLogger()
	runner := pipeline.NewRunner(logger,
		render.JSONRenderer{},
		render.TextRenderer{},
		render.MarkdownRenderer{},
		render.ExcelRenderer{},
	)

	result, err := runner.Run(context.Background(), *input, dir, strategy)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Health score: %d%%\n", result.Report.HealthScore)
	fmt.Printf("Rows: %d -> %d\n", result.Report.OriginalRowCount, result.Report.CleanedRowCount)
	fmt.Printf("Cleaned CSV: %s\n", result.CleanedCSV)
	for name, path := range result.Artifacts {
		fmt.Printf("%s: %s\n", name, path)
	}
}
