package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/keebtools/zmkbuild/internal/build"
)

// Writes the human-facing outcome of a build run.
type Printer struct {
	out     io.Writer
	colored bool
}

// Creates a printer writing to w.
//
// Color is used only when w is a terminal; the color library's NO_COLOR
// handling applies on top.
func New(w io.Writer) *Printer {
	return &Printer{out: w, colored: isTerminal(w) && !color.NoColor}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// Prints the per-target summary, the firmware files present in the output
// directory, and flashing instructions.
func (p *Printer) Print(summary *build.Summary) {
	p.printResults(summary)
	p.printArtifacts(summary.OutputDir)
	p.printInstructions()
}

func (p *Printer) printResults(s *build.Summary) {
	ok := len(s.Results) - s.Failed()
	fmt.Fprintf(p.out, "\nBuild summary (%d/%d succeeded)\n", ok, len(s.Results))

	for _, res := range s.Results {
		if res.OK() {
			fmt.Fprintf(p.out, "  %s %-14s %s (%s)\n",
				p.green("✓"), res.Target, filepath.Base(res.Artifact), res.Duration.Round(time.Second))
		} else {
			fmt.Fprintf(p.out, "  %s %-14s %v\n", p.red("✗"), res.Target, res.Err)
		}
	}
}

// Lists every firmware file in the output directory, not only the ones
// this run produced.
func (p *Printer) printArtifacts(dir string) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.uf2"))
	if err != nil || len(matches) == 0 {
		fmt.Fprintf(p.out, "\n%s no firmware files found in %s\n", p.yellow("warning:"), dir)
		return
	}

	fmt.Fprintf(p.out, "\nFirmware in %s:\n", dir)
	for _, path := range matches {
		name := filepath.Base(path)
		if info, err := os.Stat(path); err == nil {
			fmt.Fprintf(p.out, "  %-34s %s\n", name, humanSize(info.Size()))
		} else {
			fmt.Fprintf(p.out, "  %s\n", name)
		}
	}
}

func (p *Printer) printInstructions() {
	fmt.Fprint(p.out, `
To flash a half:
  1. Plug it in over USB and double-tap its reset button; it mounts as a
     drive named NICENANO.
  2. Copy the matching .uf2 file onto the drive (left firmware to the left
     half, right to the right).
  3. The board unmounts and reboots on its own once the copy finishes.

Flash settings_reset to both halves first if they refuse to pair.
`)
}

func (p *Printer) green(s string) string {
	if !p.colored {
		return s
	}
	return color.New(color.FgGreen).Sprint(s)
}

func (p *Printer) red(s string) string {
	if !p.colored {
		return s
	}
	return color.New(color.FgRed).Sprint(s)
}

func (p *Printer) yellow(s string) string {
	if !p.colored {
		return s
	}
	return color.New(color.FgYellow).Sprint(s)
}

// Formats a byte count for display.
func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
