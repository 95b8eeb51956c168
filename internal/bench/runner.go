// internal/bench/runner.go
package bench

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/bioseq/alignbench/internal/config"
	"github.com/bioseq/alignbench/internal/workload"
)

// Runner sweeps the measurement grid. It is fully sequential: one engine
// invocation at a time, so concurrent runs cannot skew the timings.
type Runner struct {
	cfg     config.SweepConfig
	aligner Aligner
	logger  *zap.Logger
}

// NewRunner creates a sweep runner for one configuration.
func NewRunner(cfg config.SweepConfig, aligner Aligner, logger *zap.Logger) *Runner {
	return &Runner{cfg: cfg, aligner: aligner, logger: logger}
}

// Warmup primes the engine's execution environment with short, discarded
// alignments, cycling threads between the minimum and maximum configured
// counts so both code paths get exercised. Any failure is fatal: a
// broken warmup means measurement would be meaningless.
func (r *Runner) Warmup(ctx context.Context) error {
	counts := sortedCopy(r.cfg.ThreadCounts)
	warmupThreads := []int{counts[0], counts[len(counts)-1]}

	r.logger.Info("running warmup (ignored in analysis)",
		zap.Int("runs", r.cfg.WarmupRuns),
		zap.Int("length", r.cfg.WarmupLength))

	gen := workload.New(workload.WarmupSeed)
	for run := 0; run < r.cfg.WarmupRuns; run++ {
		threads := warmupThreads[run%len(warmupThreads)]
		seq1, seq2 := gen.Pair(r.cfg.WarmupLength)
		if _, err := r.aligner.Align(ctx, seq1, seq2, threads); err != nil {
			return fmt.Errorf("bench: warmup run %d (threads=%d): %w", run+1, threads, err)
		}
	}
	return nil
}

// Run sweeps every (length, threads) grid point, lengths ascending then
// thread counts ascending, invoking the engine Repeats times per point
// and reducing the samples to their median. The first invocation failure
// aborts the sweep; nothing is retried.
func (r *Runner) Run(ctx context.Context) ([]Measurement, error) {
	lengths := sortedCopy(r.cfg.Lengths)
	threadCounts := sortedCopy(r.cfg.ThreadCounts)

	measurements := make([]Measurement, 0, len(lengths)*len(threadCounts))
	for _, length := range lengths {
		for _, threads := range threadCounts {
			r.logger.Info("benchmarking grid point",
				zap.Int("length", length),
				zap.Int("threads", threads))

			gen := workload.New(workload.Seed(length, threads))
			seq1, seq2 := gen.Pair(length)

			samples := make([]float64, 0, r.cfg.Repeats)
			for rep := 0; rep < r.cfg.Repeats; rep++ {
				seconds, err := r.aligner.Align(ctx, seq1, seq2, threads)
				if err != nil {
					return nil, fmt.Errorf("bench: length=%d threads=%d repetition %d: %w",
						length, threads, rep+1, err)
				}
				samples = append(samples, seconds)
			}

			measurements = append(measurements, Measurement{
				Length:        length,
				Threads:       threads,
				MedianSeconds: Median(samples),
			})
		}
	}
	return measurements, nil
}

func sortedCopy(values []int) []int {
	out := append([]int(nil), values...)
	sort.Ints(out)
	return out
}
