// cmd/alignbench/main.go
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bioseq/alignbench/internal/bench"
	"github.com/bioseq/alignbench/internal/builder"
	"github.com/bioseq/alignbench/internal/config"
	"github.com/bioseq/alignbench/internal/engine"
	"github.com/bioseq/alignbench/internal/proc"
	"github.com/bioseq/alignbench/internal/results"
)

func main() {
	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	if err := run(logger); err != nil {
		logger.Error("benchmark failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger) error {
	ctx := context.Background()

	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	runID := uuid.New().String()
	logger.Info("starting alignment benchmark",
		zap.String("run_id", runID),
		zap.Ints("lengths", cfg.Sweep.Lengths),
		zap.Ints("thread_counts", cfg.Sweep.ThreadCounts),
		zap.Int("repeats", cfg.Sweep.Repeats))

	if _, err := os.Stat(cfg.Engine.MatrixPath); err != nil {
		return fmt.Errorf("missing matrix file %s: %w", cfg.Engine.MatrixPath, err)
	}

	runner := proc.ExecRunner{}

	artifact, err := builder.New(runner, logger, cfg.Engine.RepoRoot).Build(ctx)
	if err != nil {
		return err
	}
	logger.Info("using engine artifact", zap.String("path", artifact))

	invoker := engine.NewInvoker(runner, logger, artifact,
		cfg.Engine.MatrixPath, cfg.Engine.GapPenalty, cfg.Engine.RepoRoot)
	sweep := bench.NewRunner(cfg.Sweep, invoker, logger)

	if err := sweep.Warmup(ctx); err != nil {
		return err
	}
	measurements, err := sweep.Run(ctx)
	if err != nil {
		return err
	}
	records, err := bench.Aggregate(measurements)
	if err != nil {
		return err
	}

	if err := results.WriteCSV(records, cfg.Output.CSVPath); err != nil {
		return err
	}
	plotted := results.Plot(results.NewChartRenderer(cfg.Sweep.ThreadCounts), logger,
		records, cfg.Output.SpeedupPNGPath, cfg.Output.RuntimePNGPath)

	fmt.Printf("\nBenchmark summary (median of %d runs):\n", cfg.Sweep.Repeats)
	results.PrintSummary(os.Stdout, records)

	fmt.Printf("\nCSV written to: %s\n", cfg.Output.CSVPath)
	if plotted {
		fmt.Printf("Speedup plot written to: %s\n", cfg.Output.SpeedupPNGPath)
		fmt.Printf("Runtime plot written to: %s\n", cfg.Output.RuntimePNGPath)
	} else {
		fmt.Println("Plots were not generated.")
	}
	return nil
}
