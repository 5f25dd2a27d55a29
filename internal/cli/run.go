package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/keebtools/zmkbuild/internal"
	"github.com/keebtools/zmkbuild/internal/build"
	"github.com/keebtools/zmkbuild/internal/config"
	"github.com/keebtools/zmkbuild/internal/docker"
	"github.com/keebtools/zmkbuild/internal/report"
	"github.com/keebtools/zmkbuild/internal/target"
)

// Executes the build.
//
// Settings resolve in order: configuration files, then flags. The Docker
// prerequisites are checked before any filesystem or network work so a
// missing daemon fails fast, and the summary is printed even when targets
// failed.
func (c *rootCmd) Run(ctx context.Context) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}
	cfg = c.override(cfg)

	client := docker.New(cfg.DockerPath)
	if c.Quiet || internal.IsQuiet() {
		client.SetOutput(io.Discard)
	}

	if err := client.Available(); err != nil {
		return err
	}
	if err := client.Ping(ctx); err != nil {
		return err
	}

	summary, err := build.Run(ctx, client, build.Options{
		Targets:   c.targets(),
		Image:     cfg.Image,
		Board:     cfg.Board,
		ConfigDir: cfg.ConfigDir,
		OutputDir: cfg.OutputDir,
	})
	if err != nil {
		return err
	}

	report.New(os.Stdout).Print(summary)

	if n := summary.Failed(); n > 0 {
		return fmt.Errorf("%w: %d of %d targets failed", build.ErrBuild, n, len(summary.Results))
	}
	return nil
}

// Applies flag overrides on top of the file-derived configuration.
func (c *rootCmd) override(cfg config.Config) config.Config {
	if c.Config != "" {
		cfg.ConfigDir = c.Config
	}
	if c.Output != "" {
		cfg.OutputDir = c.Output
	}
	if c.Image != "" {
		cfg.Image = c.Image
	}
	return cfg
}

// Maps the selection flags onto the target list.
//
// Without a selection flag every target is built, in the fixed order.
func (c *rootCmd) targets() []target.Target {
	switch {
	case c.Left:
		return []target.Target{target.Left}
	case c.Right:
		return []target.Target{target.Right}
	case c.SettingsReset:
		return []target.Target{target.SettingsReset}
	default:
		return target.All()
	}
}
