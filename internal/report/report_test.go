package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/keebtools/zmkbuild/internal/build"
	"github.com/keebtools/zmkbuild/internal/target"
)

func testSummary(dir string) *build.Summary {
	return &build.Summary{
		RunID:     "run-1",
		OutputDir: dir,
		Results: []*build.Result{
			{
				Target:   target.Left,
				Artifact: filepath.Join(dir, "sofle_left-nice_nano_v2.uf2"),
				Size:     1024,
				Duration: 92 * time.Second,
			},
			{
				Target: target.Right,
				Err:    errors.New("artifact not produced"),
			},
		},
	}
}

func TestPrintSummaryLines(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	New(&out).Print(testSummary(dir))
	got := out.String()

	if !strings.Contains(got, "Build summary (1/2 succeeded)") {
		t.Fatalf("missing summary header:\n%s", got)
	}
	if !strings.Contains(got, "✓ left") {
		t.Fatalf("missing success line:\n%s", got)
	}
	if !strings.Contains(got, "sofle_left-nice_nano_v2.uf2") {
		t.Fatalf("missing artifact name:\n%s", got)
	}
	if !strings.Contains(got, "✗ right") || !strings.Contains(got, "artifact not produced") {
		t.Fatalf("missing failure line:\n%s", got)
	}
}

func TestPrintArtifactListing(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"sofle_left-nice_nano_v2.uf2", "sofle_right-nice_nano_v2.uf2"} {
		if err := os.WriteFile(filepath.Join(dir, name), bytes.Repeat([]byte("x"), 2048), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	var out bytes.Buffer
	New(&out).Print(&build.Summary{OutputDir: dir})
	got := out.String()

	if !strings.Contains(got, "Firmware in "+dir) {
		t.Fatalf("missing listing header:\n%s", got)
	}
	if !strings.Contains(got, "sofle_left-nice_nano_v2.uf2") || !strings.Contains(got, "sofle_right-nice_nano_v2.uf2") {
		t.Fatalf("missing artifact entries:\n%s", got)
	}
	if !strings.Contains(got, "2.0 KB") {
		t.Fatalf("missing size:\n%s", got)
	}
}

func TestPrintWarnsWhenNoArtifacts(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer

	New(&out).Print(&build.Summary{OutputDir: dir})

	if !strings.Contains(out.String(), "warning: no firmware files found in "+dir) {
		t.Fatalf("missing warning:\n%s", out.String())
	}
}

func TestPrintFlashingInstructions(t *testing.T) {
	var out bytes.Buffer
	New(&out).Print(&build.Summary{OutputDir: t.TempDir()})
	got := out.String()

	if !strings.Contains(got, "NICENANO") {
		t.Fatalf("missing bootloader drive name:\n%s", got)
	}
	if !strings.Contains(got, "settings_reset") {
		t.Fatalf("missing settings reset note:\n%s", got)
	}
}

func TestPrintNoColorForNonTerminal(t *testing.T) {
	var out bytes.Buffer
	New(&out).Print(testSummary(t.TempDir()))

	if strings.Contains(out.String(), "\x1b[") {
		t.Fatal("escape sequences written to a non-terminal")
	}
}

func TestHumanSize(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}

	for _, tt := range tests {
		if got := humanSize(tt.n); got != tt.want {
			t.Fatalf("humanSize(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
