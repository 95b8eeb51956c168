// internal/proc/runner.go
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"
)

// Spec describes one external command invocation.
type Spec struct {
	Path string
	Args []string
	Dir  string
}

// Result captures the outcome of one invocation. A nonzero ExitCode is
// reported here, not as an error; callers own the diagnosis.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Elapsed  time.Duration
}

// Runner executes external commands. Implementations block until the
// child exits and drain both output streams in full before returning.
type Runner interface {
	Run(ctx context.Context, spec Spec) (Result, error)
}

// ExecRunner runs commands with os/exec, timing the wall clock strictly
// around the child process.
type ExecRunner struct{}

// Run executes the command and waits for it to complete.
func (ExecRunner) Run(ctx context.Context, spec Spec) (Result, error) {
	cmd := exec.CommandContext(ctx, spec.Path, spec.Args...)
	cmd.Dir = spec.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	res := Result{
		Stdout:  stdout.String(),
		Stderr:  stderr.String(),
		Elapsed: elapsed,
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("proc: running %s: %w", spec.Path, err)
	}
	return res, nil
}
