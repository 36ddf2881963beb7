// Where: cli/cmd/djscaffold/cli.go
// What: CLI dependency wiring helpers.
// Why: Centralize construction for testability.
package main

import (
	"os"

	"github.com/poruru/djscaffold/cli/internal/command"
	"github.com/poruru/djscaffold/cli/internal/infra/config"
	"github.com/poruru/djscaffold/cli/internal/infra/docker"
	"github.com/poruru/djscaffold/cli/internal/infra/interaction"
	"github.com/poruru/djscaffold/cli/internal/infra/process"
)

var (
	getwd           = os.Getwd
	executable      = os.Executable
	stdin           = os.Stdin
	newDockerClient = func() (docker.DockerClient, error) {
		client, err := docker.NewDockerClient()
		if err != nil {
			return nil, err
		}
		return client, nil
	}
)

// buildDependencies constructs the runtime dependencies required by the CLI.
// The Docker API client is opened lazily, only when the api probe is configured.
func buildDependencies() command.Dependencies {
	return command.Dependencies{
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		Prompter:     interaction.NewPrompter(stdin, os.Stderr),
		Stdio:        process.InheritStdio(),
		DockerClient: command.DockerClientFactory(newDockerClient),
		LoadConfig:   config.Load,
		ConfigPath:   config.ConfigPath,
		Getwd:        getwd,
		Executable:   executable,
	}
}
