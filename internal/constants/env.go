// Where: cli/internal/constants/env.go
// What: Environment variable naming constants.
// Why: Centralize environment variable names to avoid typos and inconsistencies.
package constants

// Host-level suffixes, combined with meta.EnvPrefix by envutil.HostEnvKey.
const (
	HostSuffixSetupScript = "SETUP_SCRIPT"
	HostSuffixConfigPath  = "CONFIG_PATH"
	HostSuffixConfigHome  = "HOME"
	HostSuffixDebug       = "DEBUG"
	HostSuffixNoEmoji     = "NO_EMOJI"
)
