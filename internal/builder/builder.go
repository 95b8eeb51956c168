// internal/builder/builder.go

// Package builder ensures the engine's executable artifact exists before
// measurement begins.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/bioseq/alignbench/internal/proc"
)

// preferredArtifact is the jar name the engine build normally produces.
const preferredArtifact = "bioseq-cli.jar"

// Builder invokes the engine's Maven build and locates the artifact.
type Builder struct {
	runner proc.Runner
	logger *zap.Logger
	root   string
}

// New creates a builder rooted at the engine repository.
func New(runner proc.Runner, logger *zap.Logger, root string) *Builder {
	return &Builder{runner: runner, logger: logger, root: root}
}

// Build compiles the engine CLI and returns the artifact path. A nonzero
// build exit is fatal; if the preferred jar is absent the target
// directory is searched for a runnable candidate.
func (b *Builder) Build(ctx context.Context) (string, error) {
	javaDir := filepath.Join(b.root, "java")
	wrapper := filepath.Join(javaDir, "mvnw")
	if runtime.GOOS == "windows" {
		wrapper += ".cmd"
	}

	b.logger.Info("building engine artifact", zap.String("wrapper", wrapper))
	res, err := b.runner.Run(ctx, proc.Spec{
		Path: wrapper,
		Args: []string{"-q", "-pl", "cli", "-am", "package", "-DskipTests"},
		Dir:  javaDir,
	})
	if err != nil {
		return "", err
	}
	if res.ExitCode != 0 {
		return "", fmt.Errorf("builder: engine build exited with code %d: %s",
			res.ExitCode, strings.TrimSpace(res.Stderr))
	}

	targetDir := filepath.Join(javaDir, "cli", "target")
	preferred := filepath.Join(targetDir, preferredArtifact)
	if _, err := os.Stat(preferred); err == nil {
		return preferred, nil
	}
	return discoverArtifact(targetDir)
}

// discoverArtifact falls back to scanning the build target directory,
// filtering out source and documentation jar variants.
func discoverArtifact(dir string) (string, error) {
	candidates, err := filepath.Glob(filepath.Join(dir, "*.jar"))
	if err != nil {
		return "", fmt.Errorf("builder: scanning %s: %w", dir, err)
	}
	sort.Strings(candidates)

	for _, path := range candidates {
		name := filepath.Base(path)
		if strings.Contains(name, "original-") ||
			strings.HasSuffix(name, "-sources.jar") ||
			strings.HasSuffix(name, "-javadoc.jar") {
			continue
		}
		return path, nil
	}
	return "", fmt.Errorf("builder: no engine artifact found in %s", dir)
}
