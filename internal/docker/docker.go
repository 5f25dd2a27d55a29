package docker

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"strings"
)

// Binary used when no explicit path is configured.
const defaultBin = "docker"

// Drives the Docker CLI.
//
// Every operation shells out to the docker binary through the [Runner] seam.
// The zero value is not usable; construct with [New].
type Client struct {
	bin    string
	runner Runner
	output io.Writer // Destination for streamed command output.
}

// Creates a client for the docker binary at the given path.
//
// An empty bin resolves "docker" from PATH. Streamed output (pull progress,
// container logs) goes to stderr; redirect it with [Client.SetOutput].
func New(bin string) *Client {
	if bin == "" {
		bin = defaultBin
	}
	return &Client{
		bin:    bin,
		runner: execRunner{},
		output: os.Stderr,
	}
}

// Redirects streamed command output. A nil writer discards.
func (c *Client) SetOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	c.output = w
}

// Verifies the docker binary is resolvable.
//
// This only checks that the binary exists on PATH (or at the configured
// path); it says nothing about whether the daemon is running.
func (c *Client) Available() error {
	if _, err := exec.LookPath(c.bin); err != nil {
		return fmt.Errorf("%w: %q is not installed or not on PATH", ErrDockerNotFound, c.bin)
	}
	return nil
}

// Verifies the Docker daemon is reachable.
//
// Runs "docker info" and inspects only the exit status; the output itself
// is discarded. The binary being present but the daemon down is the common
// failure mode this catches.
func (c *Client) Ping(ctx context.Context) error {
	res, err := c.capture(ctx, "info")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDaemonUnavailable, err)
	}
	if res.ExitCode != 0 {
		detail := strings.TrimSpace(res.Stderr)
		if detail == "" {
			detail = fmt.Sprintf("docker info exited with code %d", res.ExitCode)
		}
		return fmt.Errorf("%w: %s", ErrDaemonUnavailable, detail)
	}
	return nil
}

// Pulls an image from its registry.
//
// Progress is streamed to the client's output writer. Pull is a network
// operation; callers invoke it once per run, not once per container.
func (c *Client) Pull(ctx context.Context, image string) error {
	slog.Info("pulling build image", "image", image)

	code, err := c.runner.Run(ctx, c.output, c.output, c.bin, "pull", image)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDocker, err)
	}
	if code != 0 {
		return fmt.Errorf("%w: pull %s exited with code %d", ErrDocker, image, code)
	}

	slog.Debug("image pulled", "image", image)
	return nil
}

// Runs the docker CLI with captured output.
func (c *Client) capture(ctx context.Context, args ...string) (*Result, error) {
	var stdout, stderr bytes.Buffer
	code, err := c.runner.Run(ctx, &stdout, &stderr, c.bin, args...)
	if err != nil {
		return nil, err
	}

	return &Result{
		ExitCode: code,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
