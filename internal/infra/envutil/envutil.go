// Package envutil provides helper functions for environment variable handling.
package envutil

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/poruru/djscaffold/cli/internal/meta"
)

// HostEnvKey constructs a host-level environment variable name
// by combining meta.EnvPrefix with the given suffix.
// Example: HostEnvKey("DEBUG") returns "DJSCAFFOLD_DEBUG".
func HostEnvKey(suffix string) string {
	return meta.EnvPrefix + "_" + strings.TrimSpace(suffix)
}

// GetHostEnv retrieves a host-level environment variable, trimmed.
func GetHostEnv(suffix string) string {
	return strings.TrimSpace(os.Getenv(HostEnvKey(suffix)))
}

// HostEnvBool reports whether a host-level variable is set to a truthy value.
// Unset or unparsable values are false.
func HostEnvBool(suffix string) bool {
	raw := GetHostEnv(suffix)
	if raw == "" {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false
	}
	return v
}

// SetHostEnv sets a host-level environment variable.
func SetHostEnv(suffix, value string) error {
	key := HostEnvKey(suffix)
	if err := os.Setenv(key, value); err != nil {
		return fmt.Errorf("set env %s: %w", key, err)
	}
	return nil
}
