package build

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/keebtools/zmkbuild/internal/docker"
	"github.com/keebtools/zmkbuild/internal/target"
)

// Prefix for build container names.
const containerPrefix = "zmkbuild"

// Holds shared state for building the selected targets.
type plan struct {
	client    Docker
	targets   []target.Target
	image     string // Build image reference.
	board     string // Zephyr board identifier.
	configDir string // Absolute host path of the keyboard config.
	outputDir string // Absolute host path for staged artifacts.
}

// Creates a [plan] from the given options.
//
// Host paths are resolved to absolute form here because bind mount sources
// must be absolute.
func newPlan(client Docker, opts Options) (*plan, error) {
	configDir, err := filepath.Abs(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	outputDir, err := filepath.Abs(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	return &plan{
		client:    client,
		targets:   opts.Targets,
		image:     opts.Image,
		board:     opts.Board,
		configDir: configDir,
		outputDir: outputDir,
	}, nil
}

// Builds every selected target in order.
//
// A failed target is recorded in its result and the loop continues, so one
// broken half never blocks the other. Cancellation stops the loop.
func (p *plan) build(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		RunID:     uuid.NewString(),
		OutputDir: p.outputDir,
		Results:   make([]*Result, 0, len(p.targets)),
	}

	for _, tgt := range p.targets {
		res := p.buildTarget(ctx, tgt)
		summary.Results = append(summary.Results, res)

		if res.OK() {
			slog.Info("target built",
				"target", tgt.String(),
				"artifact", filepath.Base(res.Artifact),
				"duration", res.Duration.Round(time.Second),
			)
		} else {
			slog.Error("target failed", "target", tgt.String(), "error", res.Err)
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	// The manifest is informational; failing to write it does not fail
	// the run.
	if err := writeManifest(summary, p.image, p.board); err != nil {
		slog.Warn("could not write run manifest", "error", err)
	}

	return summary, nil
}

// Builds one target in an ephemeral container and verifies the artifact
// appeared on the host.
//
// The container exit code is advisory only: a missing artifact fails the
// target even after a clean exit, and a present artifact passes it even
// after a dirty one.
func (p *plan) buildTarget(ctx context.Context, tgt target.Target) *Result {
	res := &Result{Target: tgt}
	start := time.Now()
	defer func() { res.Duration = time.Since(start) }()

	shield := tgt.Shield()
	slog.Info("building target", "target", tgt.String(), "shield", shield, "board", p.board)

	run, err := p.client.Run(ctx, docker.RunSpec{
		Name:    containerName(shield),
		Image:   p.image,
		Workdir: containerWorkdir,
		Mounts: []docker.Mount{
			{Source: p.configDir, Target: containerConfigDir, ReadOnly: true},
			{Source: p.outputDir, Target: containerOutputDir},
		},
		Command: []string{"sh", "-c", buildScript(tgt, p.board)},
	})
	if err != nil {
		res.Err = err
		return res
	}

	artifact := filepath.Join(p.outputDir, tgt.Artifact(p.board))
	info, err := verifyArtifact(artifact)
	if err != nil {
		if run.ExitCode != 0 {
			err = fmt.Errorf("%w (container exited with code %d)", err, run.ExitCode)
		}
		res.Err = err
		return res
	}
	if run.ExitCode != 0 {
		slog.Warn("container exited non-zero but artifact exists",
			"target", tgt.String(), "code", run.ExitCode)
	}

	res.Artifact = artifact
	res.Size = info.Size
	res.Digest = info.Digest
	return res
}

// Returns the container name for a shield build.
func containerName(shield string) string {
	return fmt.Sprintf("%s-%s", containerPrefix, shield)
}
