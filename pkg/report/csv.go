// Package report writes benchmark results as CSV, as an XLSX workbook with a
// bar chart, and as a console summary.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"coordbench/pkg/bench"
)

// Header is the CSV header row.
var Header = []string{"system", "calc_type", "N", "elapsed_ms"}

func row(r bench.Result) []string {
	return []string{
		r.System,
		string(r.CalcType),
		strconv.Itoa(r.N),
		strconv.FormatFloat(r.ElapsedMs, 'f', -1, 64),
	}
}

// WriteCSV writes the header and one row per result.
func WriteCSV(w io.Writer, results []bench.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes results to path, creating parent directories.
func SaveCSV(path string, results []bench.Result) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close csv: %w", cerr)
		}
	}()
	if err := WriteCSV(f, results); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	return nil
}

// PrintSummary prints one aligned line per result.
func PrintSummary(w io.Writer, results []bench.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%-16s %.2f ms\n", r.System, r.ElapsedMs)
	}
}
