package docker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Bind mount into a container.
type Mount struct {
	Source   string // Absolute path on the host.
	Target   string // Path inside the container.
	ReadOnly bool
}

// Renders the mount as a docker -v argument value.
func (m Mount) String() string {
	s := m.Source + ":" + m.Target
	if m.ReadOnly {
		s += ":ro"
	}
	return s
}

// Describes a single ephemeral container run.
type RunSpec struct {
	Name    string   // Container name; stale containers with this name are removed first.
	Image   string   // Image reference to run.
	Workdir string   // Working directory inside the container.
	Mounts  []Mount  // Bind mounts.
	Command []string // Command and arguments executed inside the container.
}

// Runs an ephemeral container to completion.
//
// The container is created with --rm so the daemon removes it on exit.
// Combined output is streamed to the client's output writer as the process
// produces it. A non-zero exit code is reported in the [Result], not as an
// error; errors mean the docker CLI itself could not be started.
func (c *Client) Run(ctx context.Context, spec RunSpec) (*Result, error) {
	// An interrupted earlier run can leave a container holding the name
	// even with --rm, which would fail the new create.
	if spec.Name != "" {
		c.removeContainer(ctx, spec.Name)
	}

	args := runArgs(spec)
	slog.Debug("running container", "command", c.bin+" "+strings.Join(args, " "))

	code, err := c.runner.Run(ctx, c.output, c.output, c.bin, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocker, err)
	}

	slog.Debug("container exited", "name", spec.Name, "code", code)
	return &Result{ExitCode: code}, nil
}

// Assembles the docker run argument list for a spec.
func runArgs(spec RunSpec) []string {
	args := []string{"run", "--rm"}
	if spec.Name != "" {
		args = append(args, "--name", spec.Name)
	}
	if spec.Workdir != "" {
		args = append(args, "--workdir", spec.Workdir)
	}
	for _, m := range spec.Mounts {
		args = append(args, "--volume", m.String())
	}
	args = append(args, spec.Image)
	args = append(args, spec.Command...)
	return args
}

// Forcibly removes a container by name, best effort.
//
// A missing container is the normal case and is not reported.
func (c *Client) removeContainer(ctx context.Context, name string) {
	code, err := c.runner.Run(ctx, nil, nil, c.bin, "rm", "--force", name)
	if err == nil && code == 0 {
		slog.Debug("removed stale container", "name", name)
	}
}
