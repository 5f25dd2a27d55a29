package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/keebtools/zmkbuild/internal"
)

// Root command for the zmkbuild tool.
//
// There are no subcommands: a bare invocation builds every target in the
// fixed order, and a selection flag narrows the run to a single target.
type rootCmd struct {
	Left          bool `short:"l" xor:"target" help:"Build only the left half firmware."`
	Right         bool `short:"r" xor:"target" help:"Build only the right half firmware."`
	SettingsReset bool `short:"s" xor:"target" help:"Build only the settings reset firmware."`

	Quiet   bool `short:"q" help:"Suppress informational output."`
	Verbose bool `short:"v" help:"Enable verbose output."`
	Debug   bool `short:"d" help:"Enable debug output."`

	Config  string           `help:"Override the keyboard config directory." placeholder:"DIR"`
	Output  string           `help:"Override the firmware output directory." placeholder:"DIR"`
	Image   string           `help:"Override the build image reference." placeholder:"REF"`
	Version kong.VersionFlag `help:"Show version information."`
}

var RootCmd rootCmd

// Parses arguments, configures logging, and runs the build.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Builds ZMK firmware for the Sofle split keyboard.\n\nEach target is compiled by the containerized ZMK toolchain; the resulting UF2 files land in the output directory, ready to copy onto the halves."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	debug := RootCmd.Debug || internal.IsDebug()
	quiet := RootCmd.Quiet || internal.IsQuiet()
	verbose := RootCmd.Verbose || internal.IsVerbose()

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	} else if quiet {
		level = slog.LevelWarn
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		AddSource:  verbose,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty(os.Stderr),
	})))
}

// Whether the given file is an interactive terminal.
func isatty(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
