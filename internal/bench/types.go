// internal/bench/types.go

// Package bench orchestrates the benchmark sweep: warmup, repeated timed
// invocations across the measurement grid, median reduction, and speedup
// aggregation against the single-thread baseline.
package bench

import "context"

// Aligner runs one alignment and reports its wall-clock seconds.
// engine.Invoker is the production implementation; tests use doubles.
type Aligner interface {
	Align(ctx context.Context, seq1, seq2 string, threads int) (float64, error)
}

// Measurement is the median-reduced timing for one grid point. Exactly
// one Measurement exists per (length, threads) combination of a sweep.
type Measurement struct {
	Length        int
	Threads       int
	MedianSeconds float64
}

// Record extends a Measurement with speedup relative to the
// single-thread baseline at the same length.
type Record struct {
	Length        int
	Threads       int
	MedianSeconds float64
	Speedup       float64
}
