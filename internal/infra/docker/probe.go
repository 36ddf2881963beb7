// Where: cli/internal/infra/docker/probe.go
// What: Container liveness probes.
// Why: Readiness can be checked through `docker ps` or the Engine API.
package docker

import (
	"context"
	"fmt"
	"strings"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/filters"
)

// ContainerProbe reports whether a container with the exact name is running.
type ContainerProbe interface {
	Running(ctx context.Context, name string) (bool, error)
}

// ProbeKind selects a ContainerProbe implementation.
type ProbeKind string

const (
	ProbeCLI ProbeKind = "cli"
	ProbeAPI ProbeKind = "api"
)

// APIProbe queries the Docker Engine API.
type APIProbe struct {
	Client DockerClient
}

func (p APIProbe) Running(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, errContainerNameEmpty
	}
	if p.Client == nil {
		return false, errDockerClientNil
	}

	args := filters.NewArgs()
	args.Add("name", exactName(name))
	args.Add("status", "running")

	containers, err := p.Client.ContainerList(ctx, container.ListOptions{Filters: args})
	if err != nil {
		return false, fmt.Errorf("list containers: %w", err)
	}
	for _, ctr := range containers {
		if string(ctr.State) != "running" {
			continue
		}
		for _, n := range ctr.Names {
			if strings.TrimPrefix(n, "/") == name {
				return true, nil
			}
		}
	}
	return false, nil
}
