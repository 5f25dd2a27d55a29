package docker

import "errors"

var (
	ErrDockerNotFound    = errors.New("docker not found")
	ErrDaemonUnavailable = errors.New("docker daemon unavailable")
	ErrDocker            = errors.New("docker command failed")
)
