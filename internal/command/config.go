// Where: cli/internal/command/config.go
// What: config command adapter.
// Why: Give users a starting config file with every tunable spelled out.
package command

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/poruru/djscaffold/cli/internal/domain/project"
	"github.com/poruru/djscaffold/cli/internal/infra/config"
	"github.com/poruru/djscaffold/cli/internal/infra/ui"
	"github.com/poruru/djscaffold/cli/internal/meta"
	"github.com/sirupsen/logrus"
)

var errConfigExists = errors.New("config file already exists (use --force to overwrite)")

func runConfigInit(cli CLI, deps Dependencies, _ *logrus.Logger) int {
	path, err := configPath(deps)
	if err != nil {
		return exitWithError(deps.ErrOut, err)
	}
	if _, err := os.Stat(path); err == nil && !cli.Config.Init.Force {
		return exitWithError(deps.ErrOut, fmt.Errorf("%w: %s", errConfigExists, path))
	}

	cfg := initialConfig()
	if err := config.SaveConfig(path, cfg); err != nil {
		return exitWithError(deps.ErrOut, err)
	}

	out := commandUI(deps.Out, deps.ErrOut, !cli.NoEmoji)
	out.Success(fmt.Sprintf("Wrote %s", path))
	out.Block("⚙️", "Config", []ui.KeyValue{
		{Key: "default_db", Value: cfg.DefaultDB},
		{Key: "host_port", Value: cfg.HostPort},
		{Key: "probe", Value: cfg.Probe},
		{Key: "wait", Value: fmt.Sprintf("%d x %dms", cfg.Wait.Attempts, cfg.Wait.IntervalMS)},
	})
	return 0
}

// initialConfig spells out the values an empty config resolves to.
func initialConfig() config.Config {
	defaults := config.DefaultConfig()
	cfg := defaults
	cfg.DefaultDB = string(project.DBSQLite)
	cfg.HostPort = defaults.HostPortOr(meta.FrameworkPort)
	cfg.Probe = defaults.ProbeKind()
	cfg.Wait = config.WaitConfig{
		Attempts:   defaults.WaitAttempts(),
		IntervalMS: int(defaults.WaitInterval() / time.Millisecond),
	}
	return cfg
}

func configPath(deps Dependencies) (string, error) {
	if deps.ConfigPath != nil {
		return deps.ConfigPath()
	}
	return config.ConfigPath()
}
