package build

import (
	"fmt"
	"os"

	"github.com/opencontainers/go-digest"
)

// Fingerprint of a staged artifact on the host.
type artifactInfo struct {
	Size   int64
	Digest digest.Digest
}

// Verifies the expected artifact exists on the host and fingerprints it.
//
// Existence of this file is the success signal for a target build.
func verifyArtifact(path string) (*artifactInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, path)
		}
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFileSystemOperation, err)
	}

	return &artifactInfo{
		Size:   info.Size(),
		Digest: digest.FromBytes(data),
	}, nil
}
