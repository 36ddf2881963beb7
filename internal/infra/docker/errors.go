// Where: cli/internal/infra/docker/errors.go
// What: Shared error definitions for docker infra.
// Why: Ensure consistent error wrapping without dynamic error creation.
package docker

import "errors"

var (
	errRunnerNil           = errors.New("command runner is nil")
	errProbeNil            = errors.New("container probe is nil")
	errDockerClientNil     = errors.New("docker client is nil")
	errContainerNameEmpty  = errors.New("container name is required")
	errPortSpecUnsupported = errors.New("port spec must map exactly one port")

	// ErrContainerNotRunning is returned when a readiness wait exhausts its attempts.
	ErrContainerNotRunning = errors.New("container did not start in time")
)
