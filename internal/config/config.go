// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the full benchmark configuration. Start from Default and
// overlay a YAML file; tests construct small grids directly.
type Config struct {
	Engine EngineConfig `yaml:"engine"`
	Sweep  SweepConfig  `yaml:"sweep"`
	Output OutputConfig `yaml:"output"`
}

// EngineConfig locates the external alignment engine and its inputs.
type EngineConfig struct {
	RepoRoot   string `yaml:"repo_root"`
	MatrixPath string `yaml:"matrix_path"`
	GapPenalty int    `yaml:"gap_penalty"`
}

// SweepConfig defines the measurement grid.
type SweepConfig struct {
	Lengths      []int `yaml:"lengths"`
	ThreadCounts []int `yaml:"thread_counts"`
	Repeats      int   `yaml:"repeats"`
	WarmupLength int   `yaml:"warmup_length"`
	WarmupRuns   int   `yaml:"warmup_runs"`
}

// OutputConfig names the result artifacts.
type OutputConfig struct {
	CSVPath        string `yaml:"csv_path"`
	SpeedupPNGPath string `yaml:"speedup_png_path"`
	RuntimePNGPath string `yaml:"runtime_png_path"`
}

// Default returns the standard benchmark grid.
func Default() Config {
	return Config{
		Engine: EngineConfig{
			RepoRoot:   ".",
			MatrixPath: "data/matrices/dna_example.txt",
			GapPenalty: 2,
		},
		Sweep: SweepConfig{
			Lengths:      []int{5000, 10000, 15000},
			ThreadCounts: []int{1, 2, 4, 8},
			Repeats:      3,
			WarmupLength: 1000,
			WarmupRuns:   2,
		},
		Output: OutputConfig{
			CSVPath:        "results/parallelism_analysis.csv",
			SpeedupPNGPath: "results/parallelism_speedup.png",
			RuntimePNGPath: "results/parallelism_runtime.png",
		},
	}
}

// FromEnv returns the default configuration, overlaid with the YAML file
// named by ALIGNBENCH_CONFIG when that variable is set.
func FromEnv() (Config, error) {
	cfg := Default()
	if path := os.Getenv("ALIGNBENCH_CONFIG"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if len(c.Sweep.Lengths) == 0 {
		return errors.New("config: at least one sequence length is required")
	}
	for _, l := range c.Sweep.Lengths {
		if l <= 0 {
			return fmt.Errorf("config: invalid sequence length %d", l)
		}
	}
	if len(c.Sweep.ThreadCounts) == 0 {
		return errors.New("config: at least one thread count is required")
	}
	for _, t := range c.Sweep.ThreadCounts {
		if t <= 0 {
			return fmt.Errorf("config: invalid thread count %d", t)
		}
	}
	if c.Sweep.Repeats < 1 {
		return fmt.Errorf("config: repeats must be positive, got %d", c.Sweep.Repeats)
	}
	if c.Sweep.WarmupLength <= 0 {
		return fmt.Errorf("config: warmup length must be positive, got %d", c.Sweep.WarmupLength)
	}
	if c.Sweep.WarmupRuns < 0 {
		return fmt.Errorf("config: warmup runs must be non-negative, got %d", c.Sweep.WarmupRuns)
	}
	if c.Engine.GapPenalty < 0 {
		return fmt.Errorf("config: gap penalty must be non-negative, got %d", c.Engine.GapPenalty)
	}
	if c.Engine.MatrixPath == "" {
		return errors.New("config: matrix path is required")
	}
	if c.Output.CSVPath == "" {
		return errors.New("config: csv path is required")
	}
	return nil
}
