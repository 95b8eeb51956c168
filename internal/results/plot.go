// internal/results/plot.go
package results

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/bioseq/alignbench/internal/bench"
)

// Plotter renders the comparison charts for a finished sweep.
type Plotter interface {
	Render(records []bench.Record, speedupPath, runtimePath string) error
}

// Plot renders both charts through p and reports whether they were
// produced. A nil p (capability absent) or a rendering failure degrades
// to a logged skip; chart output is the one optional artifact and never
// aborts the run.
func Plot(p Plotter, logger *zap.Logger, records []bench.Record, speedupPath, runtimePath string) bool {
	if p == nil {
		logger.Warn("plotting capability unavailable, skipping charts")
		return false
	}
	if err := p.Render(records, speedupPath, runtimePath); err != nil {
		logger.Warn("chart rendering failed, skipping charts", zap.Error(err))
		return false
	}
	return true
}

// ChartRenderer draws PNG charts with gonum/plot.
type ChartRenderer struct {
	threadTicks []int
}

// NewChartRenderer creates a renderer whose ideal-speedup reference line
// and x-axis ticks span the given thread counts.
func NewChartRenderer(threadCounts []int) *ChartRenderer {
	ticks := append([]int(nil), threadCounts...)
	sort.Ints(ticks)
	return &ChartRenderer{threadTicks: ticks}
}

// Render writes the speedup-vs-threads and runtime-vs-threads charts.
func (r *ChartRenderer) Render(records []bench.Record, speedupPath, runtimePath string) error {
	lengths, groups := groupByLength(records)

	for _, path := range []string{speedupPath, runtimePath} {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("results: creating %s: %w", dir, err)
			}
		}
	}

	if err := r.renderSpeedup(lengths, groups, speedupPath); err != nil {
		return err
	}
	return r.renderRuntime(lengths, groups, runtimePath)
}

func (r *ChartRenderer) renderSpeedup(lengths []int, groups map[int][]bench.Record, path string) error {
	p := r.newPlot("Wavefront Parallelism Speedup (Global Linear Alignment)", "Speedup")

	for i, length := range lengths {
		pts := make(plotter.XYs, len(groups[length]))
		for j, rec := range groups[length] {
			pts[j].X = float64(rec.Threads)
			pts[j].Y = rec.Speedup
		}
		if err := r.addSeries(p, fmt.Sprintf("Length %d", length), pts, i); err != nil {
			return err
		}
	}

	ideal := make(plotter.XYs, len(r.threadTicks))
	for i, t := range r.threadTicks {
		ideal[i].X = float64(t)
		ideal[i].Y = float64(t)
	}
	ref, err := plotter.NewLine(ideal)
	if err != nil {
		return fmt.Errorf("results: building reference line: %w", err)
	}
	ref.LineStyle.Color = color.Black
	ref.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(4)}
	p.Add(ref)
	p.Legend.Add("Ideal linear speedup", ref)

	return r.save(p, path)
}

func (r *ChartRenderer) renderRuntime(lengths []int, groups map[int][]bench.Record, path string) error {
	p := r.newPlot("Runtime vs Thread Count (Global Linear Alignment)", "Runtime (seconds)")

	for i, length := range lengths {
		pts := make(plotter.XYs, len(groups[length]))
		for j, rec := range groups[length] {
			pts[j].X = float64(rec.Threads)
			pts[j].Y = rec.MedianSeconds
		}
		if err := r.addSeries(p, fmt.Sprintf("Length %d", length), pts, i); err != nil {
			return err
		}
	}

	return r.save(p, path)
}

func (r *ChartRenderer) newPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Threads"
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true
	p.Legend.Left = true

	ticks := make([]plot.Tick, len(r.threadTicks))
	for i, t := range r.threadTicks {
		ticks[i] = plot.Tick{Value: float64(t), Label: fmt.Sprintf("%d", t)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	return p
}

func (r *ChartRenderer) addSeries(p *plot.Plot, name string, pts plotter.XYs, idx int) error {
	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("results: building series %s: %w", name, err)
	}
	line.Color = plotutil.Color(idx)
	points.Color = plotutil.Color(idx)
	points.Shape = plotutil.Shape(idx)
	p.Add(line, points)
	p.Legend.Add(name, line, points)
	return nil
}

func (r *ChartRenderer) save(p *plot.Plot, path string) error {
	if err := p.Save(8.5*vg.Inch, 5.5*vg.Inch, path); err != nil {
		return fmt.Errorf("results: saving %s: %w", path, err)
	}
	return nil
}

// groupByLength buckets records per length, each bucket sorted by
// ascending thread count, with lengths returned in ascending order.
func groupByLength(records []bench.Record) ([]int, map[int][]bench.Record) {
	groups := make(map[int][]bench.Record)
	for _, rec := range records {
		groups[rec.Length] = append(groups[rec.Length], rec)
	}

	lengths := make([]int, 0, len(groups))
	for length := range groups {
		lengths = append(lengths, length)
		sort.Slice(groups[length], func(i, j int) bool {
			return groups[length][i].Threads < groups[length][j].Threads
		})
	}
	sort.Ints(lengths)
	return lengths, groups
}
