// Where: cli/internal/usecase/scaffold/errors.go
// What: Failure taxonomy for a scaffold run.
// Why: Each failing step surfaces once, with a message naming the step.
package scaffold

import (
	"errors"
	"fmt"

	"github.com/poruru/djscaffold/cli/internal/infra/locator"
)

// ValidationError reports bad or missing user input.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid options: %v", e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ScriptNotFoundError reports that no setup script candidate exists.
type ScriptNotFoundError struct {
	Result locator.Result
	Limit  int
}

func (e *ScriptNotFoundError) Error() string {
	return e.Result.Format(e.Limit)
}

// SpawnError reports an external program that could not be started.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("could not start %s: %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// ScriptExecutionError reports a setup script that exited non-zero.
type ScriptExecutionError struct {
	ExitCode int
}

func (e *ScriptExecutionError) Error() string {
	return fmt.Sprintf("setup script exited with code %d", e.ExitCode)
}

// DockerCommandError reports a docker or docker-compose step that exited non-zero.
type DockerCommandError struct {
	Step     string
	ExitCode int
}

func (e *DockerCommandError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Step, e.ExitCode)
}

// ContainerStartTimeoutError reports a container that never showed up as running.
type ContainerStartTimeoutError struct {
	Name string
	Err  error
}

func (e *ContainerStartTimeoutError) Error() string {
	return fmt.Sprintf("docker container %q did not start in time: %v", e.Name, e.Err)
}

func (e *ContainerStartTimeoutError) Unwrap() error { return e.Err }

// ExitCode maps a run error to a process exit code: 0 for nil, the child's
// code for script and docker failures, 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var scriptErr *ScriptExecutionError
	if errors.As(err, &scriptErr) && scriptErr.ExitCode > 0 {
		return scriptErr.ExitCode
	}
	var dockerErr *DockerCommandError
	if errors.As(err, &dockerErr) && dockerErr.ExitCode > 0 {
		return dockerErr.ExitCode
	}
	return 1
}
