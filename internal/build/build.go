package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/keebtools/zmkbuild/internal/docker"
	"github.com/keebtools/zmkbuild/internal/paths"
	"github.com/keebtools/zmkbuild/internal/target"
)

// Container operations the build pipeline needs.
type Docker interface {
	Pull(ctx context.Context, image string) error
	Run(ctx context.Context, spec docker.RunSpec) (*docker.Result, error)
}

// Controls a build run.
type Options struct {
	Targets   []target.Target // Targets to build, in order. Defaults to all.
	Image     string          // Build image reference.
	Board     string          // Zephyr board identifier.
	ConfigDir string          // Keyboard config directory on the host.
	OutputDir string          // Artifact output directory on the host.
}

// Outcome of one target build.
type Result struct {
	Target   target.Target
	Artifact string        // Absolute path of the staged artifact.
	Size     int64         // Artifact size in bytes.
	Digest   digest.Digest // Digest of the artifact contents.
	Duration time.Duration // Wall-clock build time.
	Err      error         // Non-nil when the target failed.
}

// Reports whether the expected artifact was produced.
func (r *Result) OK() bool {
	return r.Err == nil
}

// Outcome of a full run, one result per attempted target.
type Summary struct {
	RunID     string
	OutputDir string
	Results   []*Result
}

// Reports whether every target built successfully.
func (s *Summary) OK() bool {
	return s.Failed() == 0
}

// Returns the number of failed targets.
func (s *Summary) Failed() int {
	n := 0
	for _, res := range s.Results {
		if !res.OK() {
			n++
		}
	}
	return n
}

// Builds the selected firmware targets.
//
// The output directory is created if needed and the build image is pulled
// exactly once, before any target runs. Targets are then built strictly
// sequentially in the given order; per-target failures are recorded in the
// summary and do not stop the remaining targets. An error return means the
// run could not start or was cancelled, not that a target failed.
func Run(ctx context.Context, client Docker, opts Options) (*Summary, error) {
	if len(opts.Targets) == 0 {
		opts.Targets = target.All()
	}

	slog.Info("starting firmware build",
		"targets", len(opts.Targets),
		"image", opts.Image,
		"board", opts.Board,
	)

	if err := os.MkdirAll(opts.OutputDir, paths.DefaultDirMode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	if err := client.Pull(ctx, opts.Image); err != nil {
		return nil, err
	}

	p, err := newPlan(client, opts)
	if err != nil {
		return nil, err
	}
	return p.build(ctx)
}
