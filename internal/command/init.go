// Where: cli/internal/command/init.go
// What: init command adapter.
// Why: Collect options from flags, config and prompts, then hand off to the scaffold use case.
package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/djscaffold/cli/internal/constants"
	"github.com/poruru/djscaffold/cli/internal/domain/project"
	"github.com/poruru/djscaffold/cli/internal/infra/config"
	"github.com/poruru/djscaffold/cli/internal/infra/docker"
	"github.com/poruru/djscaffold/cli/internal/infra/envutil"
	"github.com/poruru/djscaffold/cli/internal/infra/interaction"
	"github.com/poruru/djscaffold/cli/internal/infra/locator"
	"github.com/poruru/djscaffold/cli/internal/infra/process"
	"github.com/poruru/djscaffold/cli/internal/infra/ui"
	"github.com/poruru/djscaffold/cli/internal/meta"
	"github.com/poruru/djscaffold/cli/internal/usecase/scaffold"
	"github.com/sirupsen/logrus"
)

var errPrompterUnavailable = errors.New("prompter is not configured")

const (
	promptProjectName = "Project name"
	promptCloudDBURL  = "Cloud database URL (leave empty to configure later)"
)

func runInit(cli CLI, deps Dependencies, log *logrus.Logger) int {
	cfg, err := loadConfig(deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	emoji := cfg.EmojiEnabled() && !cli.NoEmoji && !envutil.HostEnvBool(constants.HostSuffixNoEmoji)
	out := commandUI(deps.Out, deps.ErrOut, emoji)

	opts, err := resolveInitOptions(cli.Init, cfg, deps.Prompter)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	workDir, err := getwd(deps)
	if err != nil {
		return exitWithError(deps.ErrOut, fmt.Errorf("resolve working directory: %w", err))
	}

	ports, err := docker.NewPortMapping(cfg.HostPortOr(meta.FrameworkPort), meta.FrameworkPort)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	runner := deps.Runner
	if runner == nil {
		runner = process.ExecRunner{Log: log}
	}
	stdio := deps.Stdio
	if stdio == (process.Stdio{}) {
		stdio = process.InheritStdio()
	}
	dockerCLI := docker.NewCLI(runner, stdio)

	probe, closeProbe, err := selectProbe(cfg, deps, dockerCLI)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	defer closeProbe()

	waiter := docker.NewWaiter(probe)
	waiter.Attempts = cfg.WaitAttempts()
	waiter.Interval = cfg.WaitInterval()
	waiter.Log = log
	if deps.Sleep != nil {
		waiter.Sleep = deps.Sleep
	}

	orch := &scaffold.Orchestrator{
		Locate:  scriptLocator(cfg, deps, workDir),
		Runner:  runner,
		Stdio:   stdio,
		Docker:  dockerCLI,
		Waiter:  waiter,
		UI:      out,
		Log:     log,
		WorkDir: workDir,
		HostOS:  project.CurrentHostOS(),
		Ports:   ports,
	}

	res, err := orch.Run(context.Background(), opts)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	printSummary(deps.Out, out, res, opts.DB, ports, log)
	return 0
}

// resolveInitOptions merges flags, config defaults and interactive answers.
func resolveInitOptions(cmd InitCmd, cfg config.Config, prompter interaction.Prompter) (project.InitOptions, error) {
	rawDB := cmd.DB
	if rawDB == "" {
		rawDB = cfg.DefaultDB
	}
	db, err := project.ParseDBKind(rawDB)
	if err != nil {
		return project.InitOptions{}, &scaffold.ValidationError{Err: err}
	}

	opts := project.InitOptions{
		ProjectName:    cmd.Name,
		DB:             db,
		WantDockerfile: cmd.Dockerfile,
		WantCompose:    cmd.DockerCompose,
		WantSuperuser:  cmd.Superuser,
		CloudDBURL:     cmd.CloudDBURL,
	}

	if opts.ProjectName == "" {
		name, err := prompt(prompter, promptProjectName, nil)
		if err != nil {
			return project.InitOptions{}, err
		}
		opts.ProjectName = name
	}
	if db == project.DBCloud && opts.CloudDBURL == "" {
		url, err := prompt(prompter, promptCloudDBURL, nil)
		if err != nil {
			return project.InitOptions{}, err
		}
		opts.CloudDBURL = url
	}
	return opts.Normalize(), nil
}

func prompt(prompter interaction.Prompter, title string, suggestions []string) (string, error) {
	if prompter == nil {
		return "", errPrompterUnavailable
	}
	value, err := prompter.Input(title, suggestions)
	if err != nil {
		return "", fmt.Errorf("%s: %w", title, err)
	}
	return value, nil
}

// scriptLocator returns the locate step: an explicit override when one is
// configured, otherwise an upward search from the executable and the
// working directory.
func scriptLocator(cfg config.Config, deps Dependencies, workDir string) func() locator.Result {
	return func() locator.Result {
		override := envutil.GetHostEnv(constants.HostSuffixSetupScript)
		if override == "" {
			override = cfg.ScriptPath
		}
		if override != "" {
			if !filepath.IsAbs(override) {
				override = filepath.Join(workDir, override)
			}
			return locator.CheckOverride(override)
		}
		return locator.Search(locator.StartDirs(executableDir(deps), workDir), locator.DefaultCandidates)
	}
}

// selectProbe picks the readiness probe. The returned func releases any
// client the probe opened.
func selectProbe(cfg config.Config, deps Dependencies, dockerCLI *docker.CLI) (docker.ContainerProbe, func(), error) {
	noop := func() {}
	if deps.Probe != nil {
		return deps.Probe, noop, nil
	}
	switch kind := docker.ProbeKind(cfg.ProbeKind()); kind {
	case docker.ProbeCLI:
		return dockerCLI, noop, nil
	case docker.ProbeAPI:
	default:
		return nil, noop, fmt.Errorf("unknown probe %q (expected %s or %s)", kind, docker.ProbeCLI, docker.ProbeAPI)
	}
	if deps.DockerClient == nil {
		return nil, noop, errors.New("docker api probe requested but no client factory is configured")
	}
	client, err := deps.DockerClient()
	if err != nil {
		return nil, noop, err
	}
	release := noop
	if closer, ok := client.(io.Closer); ok {
		release = func() { _ = closer.Close() }
	}
	return docker.APIProbe{Client: client}, release, nil
}

func printSummary(w io.Writer, out ui.UserInterface, res scaffold.Result, db project.DBKind, ports docker.PortMapping, log logrus.FieldLogger) {
	out.Block("📦", "Project", []ui.KeyValue{
		{Key: "Name", Value: res.ProjectName},
		{Key: "Database", Value: db},
		{Key: "Directory", Value: res.ProjectDir},
		{Key: "Docker", Value: dockerOutcome(res, ports)},
	})

	data := ui.SummaryData{
		ProjectName:     res.ProjectName,
		HostPort:        ports.Host,
		ComposeServices: res.ComposeServices,
		PythonHint:      pythonHint(project.CurrentHostOS()),
	}
	if res.Plan.BuildAndRun {
		data.Container = res.ProjectName
	}
	for _, reason := range []project.SkipReason{res.Plan.BuildSkip, res.Plan.ComposeSkip} {
		if reason != project.SkipNone {
			data.Skipped = append(data.Skipped, string(reason))
		}
	}

	text, err := ui.RenderSummary(data)
	if err != nil {
		log.WithError(err).Warn("could not render summary")
		return
	}
	_, _ = io.WriteString(w, text)
}

func dockerOutcome(res scaffold.Result, ports docker.PortMapping) string {
	switch {
	case res.Plan.BuildAndRun:
		return fmt.Sprintf("container %s on host port %d", res.ProjectName, ports.Host)
	case res.Plan.ComposeUp:
		if len(res.ComposeServices) == 0 {
			return "docker-compose up"
		}
		return "docker-compose up (" + strings.Join(res.ComposeServices, ", ") + ")"
	default:
		return "not started"
	}
}

func pythonHint(hostOS project.HostOS) string {
	if hostOS == project.HostWindows {
		return "python"
	}
	return "python3"
}

func loadConfig(deps Dependencies) (config.Config, error) {
	if deps.LoadConfig != nil {
		return deps.LoadConfig()
	}
	return config.Load()
}

func getwd(deps Dependencies) (string, error) {
	if deps.Getwd != nil {
		return deps.Getwd()
	}
	return os.Getwd()
}

func executableDir(deps Dependencies) string {
	executable := os.Executable
	if deps.Executable != nil {
		executable = deps.Executable
	}
	path, err := executable()
	if err != nil || path == "" {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return filepath.Dir(path)
}
