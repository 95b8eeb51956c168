// internal/results/csv.go

// Package results persists and presents a finished sweep: CSV artifact,
// optional comparison charts, and the console summary table.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/bioseq/alignbench/internal/bench"
)

// csvHeader is the stable column order of the tabular artifact.
var csvHeader = []string{"length", "threads", "median_seconds", "speedup"}

// WriteCSV writes one row per record to path, creating parent
// directories as needed and truncating any existing file. Floats carry
// exactly six decimal digits.
func WriteCSV(records []bench.Record, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("results: creating %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("results: creating %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("results: writing header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			strconv.Itoa(rec.Length),
			strconv.Itoa(rec.Threads),
			strconv.FormatFloat(rec.MedianSeconds, 'f', 6, 64),
			strconv.FormatFloat(rec.Speedup, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("results: writing row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("results: flushing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("results: closing %s: %w", path, err)
	}
	return nil
}
