// Where: cli/internal/infra/docker/cli.go
// What: docker and docker-compose CLI invocations.
// Why: Keep the exact argv for each lifecycle step in one place.
package docker

import (
	"context"
	"regexp"
	"strings"

	"github.com/poruru/djscaffold/cli/internal/infra/process"
)

const (
	DefaultDockerBin  = "docker"
	DefaultComposeBin = "docker-compose"
)

// CLI drives the docker binaries through a process.Runner.
type CLI struct {
	Runner     process.Runner
	Stdio      process.Stdio
	DockerBin  string
	ComposeBin string
}

// NewCLI returns a CLI using the default binary names.
func NewCLI(runner process.Runner, stdio process.Stdio) *CLI {
	return &CLI{
		Runner:     runner,
		Stdio:      stdio,
		DockerBin:  DefaultDockerBin,
		ComposeBin: DefaultComposeBin,
	}
}

// Build runs `docker build -t <tag> .` inside dir.
func (c *CLI) Build(ctx context.Context, dir, tag string) error {
	return c.run(ctx, dir, c.dockerBin(), "build", "-t", tag, ".")
}

// RemoveContainer runs `docker rm -f <name>` with no streams attached; a
// missing container is the usual outcome and its message is not shown.
func (c *CLI) RemoveContainer(ctx context.Context, name string) error {
	if c.Runner == nil {
		return errRunnerNil
	}
	return c.Runner.Run(ctx, process.Command{
		Name: c.dockerBin(),
		Args: []string{"rm", "-f", name},
	})
}

// RunDetached runs `docker run -d --name <name> -p <host>:<container> <image>`.
func (c *CLI) RunDetached(ctx context.Context, name, image string, ports PortMapping) error {
	return c.run(ctx, "", c.dockerBin(), "run", "-d", "--name", name, "-p", ports.String(), image)
}

// ComposeUp runs `docker-compose up -d` inside dir.
func (c *CLI) ComposeUp(ctx context.Context, dir string) error {
	return c.run(ctx, dir, c.composeBin(), "up", "-d")
}

// Running implements ContainerProbe using `docker ps` filtered by exact name.
func (c *CLI) Running(ctx context.Context, name string) (bool, error) {
	if strings.TrimSpace(name) == "" {
		return false, errContainerNameEmpty
	}
	if c.Runner == nil {
		return false, errRunnerNil
	}
	out, err := c.Runner.Output(ctx, process.Command{
		Name: c.dockerBin(),
		Args: PSArgs(name),
	})
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(string(out), "\n") {
		if strings.TrimSpace(line) == name {
			return true, nil
		}
	}
	return false, nil
}

// PSArgs returns the `docker ps` arguments that list a running container by exact name.
func PSArgs(name string) []string {
	return []string{"ps", "--filter", "name=" + exactName(name), "--format", "{{.Names}}"}
}

func exactName(name string) string {
	return "^" + regexp.QuoteMeta(name) + "$"
}

func (c *CLI) run(ctx context.Context, dir, name string, args ...string) error {
	if c.Runner == nil {
		return errRunnerNil
	}
	return c.Runner.Run(ctx, process.Command{
		Dir:   dir,
		Name:  name,
		Args:  args,
		Stdio: c.Stdio,
	})
}

func (c *CLI) dockerBin() string {
	if c.DockerBin == "" {
		return DefaultDockerBin
	}
	return c.DockerBin
}

func (c *CLI) composeBin() string {
	if c.ComposeBin == "" {
		return DefaultComposeBin
	}
	return c.ComposeBin
}
