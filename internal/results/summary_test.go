// internal/results/summary_test.go
package results

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bioseq/alignbench/internal/bench"
)

func TestPrintSummary(t *testing.T) {
	t.Run("prints a fixed-width table", func(t *testing.T) {
		var buf strings.Builder
		PrintSummary(&buf, []bench.Record{
			{Length: 5000, Threads: 1, MedianSeconds: 0.731, Speedup: 1.0},
		})

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "  length  threads   median_seconds    speedup", lines[0])
		assert.Equal(t, "    5000        1         0.731000      1.000", lines[1])
	})

	t.Run("sorts by length then threads", func(t *testing.T) {
		var buf strings.Builder
		PrintSummary(&buf, []bench.Record{
			{Length: 10000, Threads: 1, MedianSeconds: 3, Speedup: 1},
			{Length: 5000, Threads: 2, MedianSeconds: 0.4, Speedup: 1.8},
			{Length: 5000, Threads: 1, MedianSeconds: 0.7, Speedup: 1},
		})

		out := buf.String()
		first := strings.Index(out, " 5000        1")
		second := strings.Index(out, " 5000        2")
		third := strings.Index(out, "10000        1")
		require.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, second)
		assert.Less(t, second, third)
	})

	t.Run("does not mutate the input order", func(t *testing.T) {
		records := []bench.Record{
			{Length: 2, Threads: 1},
			{Length: 1, Threads: 1},
		}
		var buf strings.Builder
		PrintSummary(&buf, records)
		assert.Equal(t, 2, records[0].Length)
	})
}
