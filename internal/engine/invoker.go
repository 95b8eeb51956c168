// internal/engine/invoker.go

// Package engine drives single invocations of the external alignment
// engine across its process boundary.
package engine

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/bioseq/alignbench/internal/proc"
)

// tailLimit bounds the captured stream tails carried on invocation
// failures, enough for diagnosis without flooding logs.
const tailLimit = 800

// ExitError reports an alignment invocation that exited nonzero.
type ExitError struct {
	ExitCode   int
	StdoutTail string
	StderrTail string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf(
		"engine: global_linear command failed with exit code %d\nSTDOUT (tail):\n%s\nSTDERR (tail):\n%s",
		e.ExitCode, e.StdoutTail, e.StderrTail)
}

// Invoker runs alignments against a built engine artifact.
type Invoker struct {
	runner     proc.Runner
	logger     *zap.Logger
	artifact   string
	matrixPath string
	gapPenalty int
	workDir    string
}

// NewInvoker creates an invoker for one artifact and matrix file.
func NewInvoker(runner proc.Runner, logger *zap.Logger, artifact, matrixPath string, gapPenalty int, workDir string) *Invoker {
	return &Invoker{
		runner:     runner,
		logger:     logger,
		artifact:   artifact,
		matrixPath: matrixPath,
		gapPenalty: gapPenalty,
		workDir:    workDir,
	}
}

// Align runs one alignment and returns its wall-clock runtime in
// seconds. Each call is attempted exactly once; a nonzero exit becomes
// an *ExitError carrying the exit code and bounded stream tails.
func (iv *Invoker) Align(ctx context.Context, seq1, seq2 string, threads int) (float64, error) {
	spec := proc.Spec{
		Path: "java",
		Args: []string{
			"-jar", iv.artifact,
			"global_linear",
			"--seq1", seq1,
			"--seq2", seq2,
			"--matrix", iv.matrixPath,
			"--gap", strconv.Itoa(iv.gapPenalty),
			"--threads", strconv.Itoa(threads),
		},
		Dir: iv.workDir,
	}

	res, err := iv.runner.Run(ctx, spec)
	if err != nil {
		return 0, err
	}
	if res.ExitCode != 0 {
		return 0, &ExitError{
			ExitCode:   res.ExitCode,
			StdoutTail: tail(res.Stdout),
			StderrTail: tail(res.Stderr),
		}
	}
	return res.Elapsed.Seconds(), nil
}

func tail(s string) string {
	if len(s) <= tailLimit {
		return s
	}
	return s[len(s)-tailLimit:]
}
