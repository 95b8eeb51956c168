// internal/results/plot_test.go
package results

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bioseq/alignbench/internal/bench"
)

type failingPlotter struct{}

func (failingPlotter) Render([]bench.Record, string, string) error {
	return errors.New("no display backend")
}

func chartRecords() []bench.Record {
	return []bench.Record{
		{Length: 5000, Threads: 1, MedianSeconds: 0.731, Speedup: 1.0},
		{Length: 5000, Threads: 2, MedianSeconds: 0.402, Speedup: 1.82},
		{Length: 10000, Threads: 1, MedianSeconds: 2.91, Speedup: 1.0},
		{Length: 10000, Threads: 2, MedianSeconds: 1.55, Speedup: 1.88},
	}
}

func TestPlot(t *testing.T) {
	t.Run("nil plotter degrades to a skip", func(t *testing.T) {
		ok := Plot(nil, zap.NewNop(), chartRecords(), "a.png", "b.png")
		assert.False(t, ok)
	})

	t.Run("rendering failure degrades to a skip", func(t *testing.T) {
		ok := Plot(failingPlotter{}, zap.NewNop(), chartRecords(), "a.png", "b.png")
		assert.False(t, ok)
	})

	t.Run("reports success when both charts render", func(t *testing.T) {
		dir := t.TempDir()
		ok := Plot(NewChartRenderer([]int{1, 2}), zap.NewNop(), chartRecords(),
			filepath.Join(dir, "speedup.png"), filepath.Join(dir, "runtime.png"))
		assert.True(t, ok)
	})
}

func TestChartRenderer_Render(t *testing.T) {
	t.Run("writes both png files", func(t *testing.T) {
		dir := t.TempDir()
		speedup := filepath.Join(dir, "speedup.png")
		runtime := filepath.Join(dir, "runtime.png")

		r := NewChartRenderer([]int{1, 2})
		require.NoError(t, r.Render(chartRecords(), speedup, runtime))

		for _, path := range []string{speedup, runtime} {
			info, err := os.Stat(path)
			require.NoError(t, err)
			assert.Greater(t, info.Size(), int64(0))
		}
	})

	t.Run("creates missing output directories", func(t *testing.T) {
		dir := t.TempDir()
		speedup := filepath.Join(dir, "results", "speedup.png")
		runtime := filepath.Join(dir, "results", "runtime.png")

		r := NewChartRenderer([]int{1, 2})
		require.NoError(t, r.Render(chartRecords(), speedup, runtime))
		_, err := os.Stat(speedup)
		assert.NoError(t, err)
	})
}

func TestGroupByLength(t *testing.T) {
	lengths, groups := groupByLength([]bench.Record{
		{Length: 10000, Threads: 4},
		{Length: 5000, Threads: 2},
		{Length: 10000, Threads: 1},
		{Length: 5000, Threads: 1},
	})

	assert.Equal(t, []int{5000, 10000}, lengths)
	require.Len(t, groups[10000], 2)
	assert.Equal(t, 1, groups[10000][0].Threads)
	assert.Equal(t, 4, groups[10000][1].Threads)
}
