package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"coordbench/pkg/bench"
)

const (
	resultsSheet = "results"
	runSheet     = "run"
)

// RunMeta describes a benchmark run in the workbook's run sheet.
type RunMeta struct {
	RunID     string
	StartedAt time.Time
	N         int
	Workers   int
	Seed      uint64
	Source    string // "random" or the OSM file the spherical points came from
}

// SaveChart writes an XLSX workbook with the results table, a bar chart of
// elapsed time per system, and the run metadata.
func SaveChart(path string, results []bench.Result, meta RunMeta) (err error) {
	if len(results) == 0 {
		return fmt.Errorf("save chart: no results")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	f := excelize.NewFile()
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close workbook: %w", cerr)
		}
	}()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &[]any{"system", "calc_type", "N", "elapsed_ms"}); err != nil {
		return err
	}
	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(resultsSheet, cell, &[]any{r.System, string(r.CalcType), r.N, r.ElapsedMs}); err != nil {
			return err
		}
	}

	last := len(results) + 1
	chart := &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$D$1", resultsSheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", resultsSheet, last),
			Values:     fmt.Sprintf("%s!$D$2:$D$%d", resultsSheet, last),
		}},
		Title: []excelize.RichTextRun{{Text: "Benchmark"}},
		YAxis: excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: "ms"}}},
	}
	if err := f.AddChart(resultsSheet, "F2", chart); err != nil {
		return fmt.Errorf("add chart: %w", err)
	}

	if _, err := f.NewSheet(runSheet); err != nil {
		return fmt.Errorf("add run sheet: %w", err)
	}
	rows := [][]any{
		{"run_id", meta.RunID},
		{"started_at", meta.StartedAt.UTC().Format(time.RFC3339)},
		{"N", meta.N},
		{"workers", meta.Workers},
		{"seed", fmt.Sprint(meta.Seed)},
		{"source", meta.Source},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(runSheet, cell, &r); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
