package engine

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// engineBinary is the workflow engine executable resolved from PATH.
const engineBinary = "snakemake"

// Runner executes workflow-engine invocations.
type Runner interface {
	Run(ctx context.Context, inv *Invocation) error
}

// ExecRunner runs the engine as a local subprocess, streaming its output
// to the current process's stdout/stderr. The context cancels the run
// (e.g. on SIGINT after temp dir cleanup).
type ExecRunner struct {
	// Env entries appended to the inherited environment, e.g. TMPDIR.
	Env []string
}

// Run executes the invocation and blocks until it finishes.
func (r *ExecRunner) Run(ctx context.Context, inv *Invocation) error {
	cmd := exec.CommandContext(ctx, engineBinary, inv.Args()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(), r.Env...)

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("workflow engine interrupted: %w", ctx.Err())
		}
		return fmt.Errorf("workflow engine failed: %w", err)
	}
	return nil
}
