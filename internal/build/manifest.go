package build

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/keebtools/zmkbuild/internal/paths"
)

// Name of the run manifest written to the output directory.
const manifestName = "manifest.json"

// Record of a completed run, written alongside the artifacts.
//
// The manifest is informational: it lets later tooling tell which UF2s in
// the directory came from the same run and whether they are intact.
type Manifest struct {
	RunID     string          `json:"run_id"`
	Image     string          `json:"image"`
	Board     string          `json:"board"`
	Timestamp time.Time       `json:"timestamp"`
	Builds    []ManifestEntry `json:"builds"`
}

// One attempted target within a manifest.
type ManifestEntry struct {
	Target   string        `json:"target"`
	Shield   string        `json:"shield"`
	Artifact string        `json:"artifact,omitempty"`
	Digest   digest.Digest `json:"digest,omitempty"`
	Size     int64         `json:"size,omitempty"`
	Duration string        `json:"duration"`
	Success  bool          `json:"success"`
	Error    string        `json:"error,omitempty"`
}

// Writes the run manifest into the output directory, replacing any
// previous one.
func writeManifest(summary *Summary, image, board string) error {
	m := Manifest{
		RunID:     summary.RunID,
		Image:     image,
		Board:     board,
		Timestamp: time.Now().UTC(),
	}

	for _, res := range summary.Results {
		entry := ManifestEntry{
			Target:   res.Target.String(),
			Shield:   res.Target.Shield(),
			Duration: res.Duration.Round(time.Millisecond).String(),
			Success:  res.OK(),
		}
		if res.OK() {
			entry.Artifact = filepath.Base(res.Artifact)
			entry.Digest = res.Digest
			entry.Size = res.Size
		} else {
			entry.Error = res.Err.Error()
		}
		m.Builds = append(m.Builds, entry)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	path := filepath.Join(summary.OutputDir, manifestName)
	if err := os.WriteFile(path, data, paths.DefaultFileMode); err != nil {
		return fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}
	return nil
}
