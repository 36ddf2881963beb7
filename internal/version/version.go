// Where: cli/internal/version/version.go
// What: Version information retrieval.
// Why: Report the release tag or VCS revision the binary was built from.
package version

import (
	"fmt"
	"runtime/debug"
)

// Version is stamped at release time with -ldflags "-X ...version.Version=v1.2.3".
var Version = ""

var readBuildInfo = debug.ReadBuildInfo

// GetVersion returns the stamped release version when present, otherwise the
// short VCS revision from build info (suffixed with "(dirty)" for a modified
// tree), otherwise "dev".
func GetVersion() string {
	if Version != "" {
		return Version
	}
	info, ok := readBuildInfo()
	if !ok {
		return "dev"
	}

	var revision string
	var modified bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
			if len(revision) > 7 {
				revision = revision[:7]
			}
		case "vcs.modified":
			modified = setting.Value == "true"
		}
	}

	if revision == "" {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
		return "dev"
	}
	if modified {
		return fmt.Sprintf("%s (dirty)", revision)
	}
	return revision
}
