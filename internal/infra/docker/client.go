// Where: cli/internal/infra/docker/client.go
// What: Docker Engine API client constructor and the subset we use.
// Why: Centralize Docker SDK initialization.
package docker

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/client"
)

// DockerClient defines the subset of Docker SDK methods used by this package.
// This interface enables mocking the Docker client in tests.
type DockerClient interface {
	ContainerList(ctx context.Context, options container.ListOptions) ([]container.Summary, error)
}

// NewDockerClient constructs a Docker SDK client using environment defaults.
// No connection is made until the first request.
func NewDockerClient() (*client.Client, error) {
	dockerClient, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return nil, fmt.Errorf("create docker client: %w", err)
	}
	return dockerClient, nil
}
