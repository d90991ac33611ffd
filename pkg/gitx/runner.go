// Package gitx invokes the external git binary and exposes the read-only
// queries and the single mutation (branch creation) the analysis pipelines
// need. The Runner interface keeps everything above it testable without
// process execution.
package gitx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a git command and returns its standard output
type Runner interface {
	Run(ctx context.Context, args ...string) ([]byte, error)
}

// ExecRunner runs git as a subprocess
type ExecRunner struct {
	// Binary is the git executable; defaults to "git"
	Binary string
	// Dir is the working directory; empty means the process working dir
	Dir string
}

// NewExecRunner creates a runner for the given binary and working directory
func NewExecRunner(binary, dir string) *ExecRunner {
	if binary == "" {
		binary = "git"
	}
	return &ExecRunner{Binary: binary, Dir: dir}
}

// Run executes the git command to completion and returns its stdout.
// A non-zero exit yields a CommandError carrying the captured stderr.
func (r *ExecRunner) Run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = r.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &CommandError{
			Args:   args,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.Bytes(), nil
}

// CommandError reports a failed git invocation
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("git %s: %s", strings.Join(e.Args, " "), e.Stderr)
	}
	return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
