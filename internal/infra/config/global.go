// Where: cli/internal/infra/config/global.go
// What: User config load/save.
// Why: Manage ~/.djscaffold/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/poruru/djscaffold/cli/internal/constants"
	"github.com/poruru/djscaffold/cli/internal/infra/docker"
	"github.com/poruru/djscaffold/cli/internal/infra/envutil"
	"github.com/poruru/djscaffold/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

// Config represents ~/.djscaffold/config.yaml.
type Config struct {
	Version    int        `yaml:"version"`
	DefaultDB  string     `yaml:"default_db,omitempty"`
	ScriptPath string     `yaml:"script_path,omitempty"`
	HostPort   int        `yaml:"host_port,omitempty"`
	Probe      string     `yaml:"probe,omitempty"`
	Emoji      *bool      `yaml:"emoji,omitempty"`
	Wait       WaitConfig `yaml:"wait,omitempty"`
}

// WaitConfig tunes the container readiness poll.
type WaitConfig struct {
	Attempts   int `yaml:"attempts,omitempty"`
	IntervalMS int `yaml:"interval_ms,omitempty"`
}

const (
	defaultProbe        = string(docker.ProbeCLI)
	defaultWaitAttempts = docker.DefaultWaitAttempts
	defaultWaitInterval = docker.DefaultWaitInterval
)

// DefaultConfig returns an initialized Config with version set.
func DefaultConfig() Config {
	return Config{Version: 1}
}

// HostPortOr returns the configured host port or fallback when unset.
func (c Config) HostPortOr(fallback int) int {
	if c.HostPort > 0 {
		return c.HostPort
	}
	return fallback
}

// ProbeKind returns the readiness probe name, "cli" when unset.
func (c Config) ProbeKind() string {
	if c.Probe == "" {
		return defaultProbe
	}
	return c.Probe
}

// WaitAttempts returns the poll budget.
func (c Config) WaitAttempts() int {
	if c.Wait.Attempts > 0 {
		return c.Wait.Attempts
	}
	return defaultWaitAttempts
}

// WaitInterval returns the delay between polls.
func (c Config) WaitInterval() time.Duration {
	if c.Wait.IntervalMS > 0 {
		return time.Duration(c.Wait.IntervalMS) * time.Millisecond
	}
	return defaultWaitInterval
}

// EmojiEnabled reports whether emoji output is on (default true).
func (c Config) EmojiEnabled() bool {
	return c.Emoji == nil || *c.Emoji
}

// ConfigPath returns the config file location.
// Priority: DJSCAFFOLD_CONFIG_PATH, then DJSCAFFOLD_HOME/config.yaml,
// then ~/.djscaffold/config.yaml.
func ConfigPath() (string, error) {
	if override := envutil.GetHostEnv(constants.HostSuffixConfigPath); override != "" {
		path := override
		if !filepath.IsAbs(path) {
			if abs, err := filepath.Abs(path); err == nil {
				path = abs
			}
		}
		return path, nil
	}
	if home := envutil.GetHostEnv(constants.HostSuffixConfigHome); home != "" {
		return filepath.Join(home, meta.ConfigFileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, meta.HomeDir, meta.ConfigFileName), nil
}

// LoadConfig reads, validates and parses the config file. A missing file
// yields DefaultConfig.
func LoadConfig(path string) (Config, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(payload)
}

// ParseConfig validates payload against the embedded schema and decodes it.
func ParseConfig(payload []byte) (Config, error) {
	if err := ValidateConfig(payload); err != nil {
		return Config{}, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// SaveConfig writes a Config to the specified path.
func SaveConfig(path string, cfg Config) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	if err := os.WriteFile(path, payload, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load resolves the config path and loads it.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfig(path)
}
