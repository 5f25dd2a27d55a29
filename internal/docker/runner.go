package docker

import (
	"context"
	"errors"
	"io"
	"os/exec"
)

// Outcome of a single docker CLI invocation.
type Result struct {
	ExitCode int    // Exit code of the process.
	Stdout   string // Captured standard output.
	Stderr   string // Captured standard error.
}

// Runs a command and waits for it to exit.
//
// This is the single seam through which all process invocation flows; tests
// substitute a fake that records arguments and scripts outcomes. stdout and
// stderr receive the process output as it is produced. Nil writers discard.
// A non-zero exit code is not treated as an error; the caller decides.
type Runner interface {
	Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) (int, error)
}

// Runner backed by os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, stdout, stderr io.Writer, name string, args ...string) (int, error) {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
