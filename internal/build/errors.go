package build

import "errors"

var (
	ErrBuild               = errors.New("build failed")
	ErrArtifactMissing     = errors.New("artifact not produced")
	ErrFileSystemOperation = errors.New("file system operation failed")
)
