// Where: cli/internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	"github.com/poruru/djscaffold/cli/internal/constants"
	"github.com/poruru/djscaffold/cli/internal/infra/config"
	"github.com/poruru/djscaffold/cli/internal/infra/docker"
	"github.com/poruru/djscaffold/cli/internal/infra/envutil"
	"github.com/poruru/djscaffold/cli/internal/infra/interaction"
	"github.com/poruru/djscaffold/cli/internal/infra/logging"
	"github.com/poruru/djscaffold/cli/internal/infra/process"
	"github.com/poruru/djscaffold/cli/internal/version"
	"github.com/sirupsen/logrus"
)

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields fall back to the real implementations.
type Dependencies struct {
	Out      io.Writer
	ErrOut   io.Writer
	Prompter interaction.Prompter
	Runner   process.Runner
	Stdio    process.Stdio

	// Probe overrides the readiness probe chosen from config.
	Probe        docker.ContainerProbe
	DockerClient DockerClientFactory
	Sleep        docker.SleepFunc

	LoadConfig func() (config.Config, error)
	ConfigPath func() (string, error)
	Getwd      func() (string, error)
	Executable func() (string, error)
}

// DockerClientFactory opens an Engine API client for the "api" probe.
type DockerClientFactory func() (docker.DockerClient, error)

// CLI defines the command-line interface structure parsed by Kong.
// It contains global flags and all subcommand definitions.
type CLI struct {
	EnvFile string     `name:"env-file" help:"Path to .env file"`
	Verbose bool       `short:"v" help:"Verbose diagnostic logging"`
	NoEmoji bool       `name:"no-emoji" help:"Disable emoji output"`
	Init    InitCmd    `cmd:"" help:"Scaffold a new Django project"`
	Config  ConfigCmd  `cmd:"" help:"Manage the user config file"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

type (
	// InitCmd defines the init command flags.
	InitCmd struct {
		DB            string `short:"d" name:"db" placeholder:"sqlite|postgres|cloud" help:"Database backend (default: sqlite, or default_db from config)"`
		Dockerfile    bool   `short:"f" name:"dockerfile" help:"Generate a Dockerfile and run the image (sqlite only)"`
		DockerCompose bool   `short:"c" name:"dockercompose" aliases:"docker-compose" help:"Generate docker-compose.yml and start it (postgres only)"`
		Superuser     bool   `short:"s" help:"Create a Django superuser"`
		Name          string `short:"n" help:"Project name (skips the prompt)"`
		CloudDBURL    string `name:"cloud-db-url" help:"Cloud database URL (skips the prompt)"`
	}

	// ConfigCmd groups config file subcommands.
	ConfigCmd struct {
		Init ConfigInitCmd `cmd:"" help:"Write a config file with the default settings"`
	}

	ConfigInitCmd struct {
		Force bool `help:"Overwrite an existing config file"`
	}

	VersionCmd struct{}
)

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. It returns the process exit code.
func Run(args []string, deps Dependencies) int {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	out := commandUI(deps.Out, deps.ErrOut, true)

	if len(args) == 0 {
		return runNoArgs(deps.Out)
	}

	cli := CLI{}
	parser, err := kong.New(&cli,
		kong.Name(cliName()),
		kong.Description("Scaffold Django projects and start them in Docker."),
		kong.Writers(deps.Out, deps.ErrOut),
	)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return handleParseError(err, deps)
	}

	// Load environment file if provided or if .env exists in current directory
	if cli.EnvFile != "" {
		if err := godotenv.Load(cli.EnvFile); err != nil {
			out.Warn(fmt.Sprintf("Warning: failed to load env file %s: %v", cli.EnvFile, err))
		}
	} else if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			out.Warn(fmt.Sprintf("Warning: failed to load .env: %v", err))
		}
	}

	log := logging.New(deps.ErrOut, cli.Verbose || envutil.HostEnvBool(constants.HostSuffixDebug))

	command := ctx.Command()
	if exitCode, handled := dispatchCommand(command, cli, deps, log); handled {
		return exitCode
	}

	out.Warn("unknown command")
	return 1
}

type commandHandler func(CLI, Dependencies, *logrus.Logger) int

func dispatchCommand(command string, cli CLI, deps Dependencies, log *logrus.Logger) (int, bool) {
	handlers := map[string]commandHandler{
		"init":        runInit,
		"config init": runConfigInit,
		"version":     runVersion,
	}

	if handler, ok := handlers[command]; ok {
		return handler(cli, deps, log), true
	}

	return 1, false
}

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, deps Dependencies, _ *logrus.Logger) int {
	commandUI(deps.Out, deps.ErrOut, false).Info(version.GetVersion())
	return 0
}

// runNoArgs prints a short usage hint.
func runNoArgs(out io.Writer) int {
	ui := commandUI(out, out, false)
	cmd := cliName()
	ui.Info("Usage:")
	ui.Info(fmt.Sprintf("  %s init [--db sqlite|postgres|cloud] [--dockerfile] [--dockercompose] [--superuser]", cmd))
	ui.Info("")
	ui.Info(fmt.Sprintf("Try: %s init --help", cmd))
	return 0
}

// handleParseError provides user-friendly error messages for parse failures.
func handleParseError(err error, deps Dependencies) int {
	msg := err.Error()
	if strings.Contains(msg, "expected string value") {
		ui := commandUI(deps.ErrOut, deps.ErrOut, false)
		cmd := cliName()
		switch {
		case strings.Contains(msg, "--db"):
			ui.Warn("`-d/--db` expects a value: sqlite, postgres or cloud.")
			ui.Info(fmt.Sprintf("Example: %s init --db postgres --dockercompose", cmd))
			return 1
		case strings.Contains(msg, "--name"):
			ui.Warn("`-n/--name` expects a value. Provide a name or omit the flag for interactive input.")
			ui.Info(fmt.Sprintf("Example: %s init -n shop", cmd))
			return 1
		case strings.Contains(msg, "--env-file"):
			ui.Warn("`--env-file` expects a value. Provide a file path.")
			ui.Info(fmt.Sprintf("Example: %s --env-file .env.local init", cmd))
			return 1
		}
	}
	return exitWithError(deps.ErrOut, err)
}
