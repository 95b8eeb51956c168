// internal/results/summary.go
package results

import (
	"fmt"
	"io"
	"sort"

	"github.com/bioseq/alignbench/internal/bench"
)

// PrintSummary writes a fixed-width table of records sorted by
// (length, threads) ascending. Purely observational.
func PrintSummary(w io.Writer, records []bench.Record) {
	sorted := append([]bench.Record(nil), records...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Length != sorted[j].Length {
			return sorted[i].Length < sorted[j].Length
		}
		return sorted[i].Threads < sorted[j].Threads
	})

	fmt.Fprintf(w, "%8s %8s %16s %10s\n", "length", "threads", "median_seconds", "speedup")
	for _, rec := range sorted {
		fmt.Fprintf(w, "%8d %8d %16.6f %10.3f\n",
			rec.Length, rec.Threads, rec.MedianSeconds, rec.Speedup)
	}
}
