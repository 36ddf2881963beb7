// Where: cli/internal/usecase/scaffold/scaffold.go
// What: Django project scaffold orchestration.
// Why: Sequence script discovery, script execution and the Docker follow-up without CLI concerns.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/poruru/djscaffold/cli/internal/domain/project"
	"github.com/poruru/djscaffold/cli/internal/infra/composefile"
	"github.com/poruru/djscaffold/cli/internal/infra/docker"
	"github.com/poruru/djscaffold/cli/internal/infra/locator"
	"github.com/poruru/djscaffold/cli/internal/infra/process"
	"github.com/poruru/djscaffold/cli/internal/infra/ui"
	"github.com/poruru/djscaffold/cli/internal/meta"
	"github.com/sirupsen/logrus"
)

var (
	errRunnerNotConfigured = errors.New("process runner is not configured")
	errDockerNotConfigured = errors.New("docker driver is not configured")
	errWaiterNotConfigured = errors.New("container waiter is not configured")
)

// DockerDriver runs the docker lifecycle commands.
type DockerDriver interface {
	Build(ctx context.Context, dir, tag string) error
	RemoveContainer(ctx context.Context, name string) error
	RunDetached(ctx context.Context, name, image string, ports docker.PortMapping) error
	ComposeUp(ctx context.Context, dir string) error
}

// ContainerWaiter blocks until a container is running or its budget is spent.
type ContainerWaiter interface {
	Wait(ctx context.Context, name string) error
}

// Orchestrator runs one scaffold invocation end to end.
type Orchestrator struct {
	// Locate finds the setup script.
	Locate func() locator.Result
	Runner process.Runner
	Stdio  process.Stdio
	Docker DockerDriver
	Waiter ContainerWaiter
	UI     ui.UserInterface
	Log    logrus.FieldLogger

	// WorkDir is where the project directory is created.
	WorkDir string
	HostOS  project.HostOS
	Shell   string
	Ports   docker.PortMapping
	// TryLimit bounds the attempted paths listed in a not-found error.
	TryLimit int

	// Exists and ComposeServices default to filesystem implementations.
	Exists          func(path string) bool
	ComposeServices func(path string) ([]string, error)
}

// Result describes a successful run.
type Result struct {
	ProjectName     string
	ProjectDir      string
	ScriptPath      string
	ScriptArgs      []string
	Plan            project.DockerPlan
	ComposeServices []string
	States          []State
}

// Run executes the pipeline. On failure the returned Result carries the
// states visited, ending in StateFailed.
func (o *Orchestrator) Run(ctx context.Context, opts project.InitOptions) (Result, error) {
	r := &run{o: o, log: o.logger()}
	err := r.execute(ctx, opts)
	if err != nil {
		r.enter(StateFailed)
		r.log.WithError(err).Debug("scaffold failed")
	}
	return r.result, err
}

type run struct {
	o      *Orchestrator
	log    logrus.FieldLogger
	result Result
}

func (r *run) enter(state State) {
	r.result.States = append(r.result.States, state)
	r.log.WithField("state", state).Debug("scaffold state")
}

func (r *run) execute(ctx context.Context, opts project.InitOptions) error {
	o := r.o
	out := o.ui()

	r.enter(StateValidating)
	opts = opts.Normalize()
	if err := opts.Validate(); err != nil {
		return &ValidationError{Err: err}
	}
	if o.Runner == nil {
		return errRunnerNotConfigured
	}
	r.result.ProjectName = opts.ProjectName

	r.enter(StateLocating)
	found := o.locate()
	if !found.OK() {
		return &ScriptNotFoundError{Result: found, Limit: o.TryLimit}
	}
	r.result.ScriptPath = found.Found

	r.enter(StateScaffolding)
	args := project.ScriptArgs(opts, o.hostOS())
	r.result.ScriptArgs = args
	out.Step("🚀", fmt.Sprintf("Running scaffold script: %s", found.Found))
	err := o.Runner.Run(ctx, process.Command{
		Dir:   o.WorkDir,
		Name:  o.shell(),
		Args:  append([]string{found.Found}, args...),
		Stdio: o.Stdio,
	})
	if err != nil {
		return scriptError(o.shell(), err)
	}

	projectDir := filepath.Join(o.WorkDir, opts.ProjectName)
	r.result.ProjectDir = projectDir
	artifacts := project.Artifacts{
		Dockerfile:  o.exists(filepath.Join(projectDir, meta.DockerfileName)),
		ComposeFile: o.exists(filepath.Join(projectDir, meta.ComposeFileName)),
	}
	plan := project.PlanDocker(opts, artifacts)
	r.result.Plan = plan
	r.log.WithFields(logrus.Fields{
		"dockerfile": artifacts.Dockerfile,
		"compose":    artifacts.ComposeFile,
		"build":      plan.BuildAndRun,
		"compose_up": plan.ComposeUp,
	}).Debug("docker plan")

	if plan.BuildSkip != project.SkipNone {
		out.Warn(fmt.Sprintf("Skipping docker build/run: %s.", plan.BuildSkip))
	}
	if plan.BuildAndRun {
		if err := r.buildAndRun(ctx, opts.ProjectName, projectDir); err != nil {
			return err
		}
	}

	if plan.ComposeSkip != project.SkipNone {
		out.Warn(fmt.Sprintf("Skipping docker-compose up: %s.", plan.ComposeSkip))
	}
	if plan.ComposeUp {
		if err := r.composeUp(ctx, projectDir); err != nil {
			return err
		}
	}

	r.enter(StateDone)
	out.Success(fmt.Sprintf("Project '%s' created successfully!", opts.ProjectName))
	return nil
}

func (r *run) buildAndRun(ctx context.Context, name, projectDir string) error {
	o := r.o
	out := o.ui()
	if o.Docker == nil {
		return errDockerNotConfigured
	}
	if o.Waiter == nil {
		return errWaiterNotConfigured
	}

	r.enter(StateDockerBuilding)
	out.Step("🐳", "Building Docker image...")
	if err := o.Docker.Build(ctx, projectDir, name); err != nil {
		return dockerError("docker build", err)
	}
	if err := o.Docker.RemoveContainer(ctx, name); err != nil {
		r.log.WithError(err).WithField("container", name).Debug("stale container removal failed")
	}

	r.enter(StateDockerRunning)
	out.Step("▶️", "Running Docker container...")
	ports := o.ports()
	if err := o.Docker.RunDetached(ctx, name, name, ports); err != nil {
		return dockerError("docker run", err)
	}

	r.enter(StateDockerWaiting)
	if err := o.Waiter.Wait(ctx, name); err != nil {
		if errors.Is(err, docker.ErrContainerNotRunning) {
			return &ContainerStartTimeoutError{Name: name, Err: err}
		}
		return fmt.Errorf("wait for container %s: %w", name, err)
	}
	out.Success(fmt.Sprintf("Container '%s' started and mapped to host port %d.", name, ports.Host))
	return nil
}

func (r *run) composeUp(ctx context.Context, projectDir string) error {
	o := r.o
	out := o.ui()
	if o.Docker == nil {
		return errDockerNotConfigured
	}

	r.enter(StateComposeRunning)
	out.Step("🐙", "Running docker-compose up -d ...")
	if err := o.Docker.ComposeUp(ctx, projectDir); err != nil {
		return dockerError("docker-compose up", err)
	}

	services, err := o.composeServices(filepath.Join(projectDir, meta.ComposeFileName))
	if err != nil {
		r.log.WithError(err).Warn("could not read compose services")
	}
	r.result.ComposeServices = services
	out.Success("docker-compose services are up.")
	return nil
}

func scriptError(shell string, err error) error {
	var startErr *process.StartError
	if errors.As(err, &startErr) {
		return &SpawnError{Command: shell, Err: startErr.Err}
	}
	if code, ok := process.ExitCode(err); ok {
		return &ScriptExecutionError{ExitCode: code}
	}
	return fmt.Errorf("run setup script: %w", err)
}

func dockerError(step string, err error) error {
	var startErr *process.StartError
	if errors.As(err, &startErr) {
		return &SpawnError{Command: startErr.Name, Err: startErr.Err}
	}
	if code, ok := process.ExitCode(err); ok {
		return &DockerCommandError{Step: step, ExitCode: code}
	}
	return fmt.Errorf("%s: %w", step, err)
}

func (o *Orchestrator) locate() locator.Result {
	if o.Locate == nil {
		return locator.Search(locator.StartDirs("", o.WorkDir), locator.DefaultCandidates)
	}
	return o.Locate()
}

func (o *Orchestrator) hostOS() project.HostOS {
	if o.HostOS == "" {
		return project.CurrentHostOS()
	}
	return o.HostOS
}

func (o *Orchestrator) shell() string {
	if o.Shell == "" {
		return meta.ScriptShell
	}
	return o.Shell
}

func (o *Orchestrator) ports() docker.PortMapping {
	if o.Ports.Host == 0 || o.Ports.Container == 0 {
		return docker.PortMapping{Host: meta.FrameworkPort, Container: meta.FrameworkPort}
	}
	return o.Ports
}

func (o *Orchestrator) exists(path string) bool {
	if o.Exists == nil {
		return locator.Exists(path)
	}
	return o.Exists(path)
}

func (o *Orchestrator) composeServices(path string) ([]string, error) {
	if o.ComposeServices != nil {
		return o.ComposeServices(path)
	}
	file, err := composefile.Load(path)
	if err != nil {
		return nil, err
	}
	return file.ServiceNames(), nil
}

func (o *Orchestrator) ui() ui.UserInterface {
	if o.UI == nil {
		return ui.Discard
	}
	return o.UI
}

func (o *Orchestrator) logger() logrus.FieldLogger {
	if o.Log == nil {
		return logrus.StandardLogger()
	}
	return o.Log
}
