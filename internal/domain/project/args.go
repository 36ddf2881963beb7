// Where: cli/internal/domain/project/args.go
// What: Positional argument contract for the setup script.
// Why: The setup script reads its inputs by position, so the order is defined once here.
package project

import "runtime"

// HostOS is the operating-system family passed to the setup script.
type HostOS string

const (
	HostLinux   HostOS = "linux"
	HostMac     HostOS = "mac"
	HostWindows HostOS = "windows"
)

// HostOSFromGOOS maps a Go GOOS value to the family the script understands.
func HostOSFromGOOS(goos string) HostOS {
	switch goos {
	case "darwin":
		return HostMac
	case "windows":
		return HostWindows
	default:
		return HostLinux
	}
}

// CurrentHostOS returns the family of the running platform.
func CurrentHostOS() HostOS {
	return HostOSFromGOOS(runtime.GOOS)
}

// Positions of the setup script arguments.
const (
	ArgProjectName = iota
	ArgDB
	ArgDockerfile
	ArgCompose
	ArgSuperuser
	ArgHostOS
	ArgCloudDBURL
	ScriptArgCount
)

// ScriptArgs builds the setup script argv (without the script path):
//
//	<name> <db> <dockerfile y|n> <compose y|n> <superuser y|n> <linux|mac|windows> <cloud-url or "">
//
// Every position is always present.
func ScriptArgs(opts InitOptions, hostOS HostOS) []string {
	opts = opts.Normalize()
	args := make([]string, ScriptArgCount)
	args[ArgProjectName] = opts.ProjectName
	args[ArgDB] = string(opts.DB)
	args[ArgDockerfile] = yesNo(opts.WantDockerfile)
	args[ArgCompose] = yesNo(opts.WantCompose)
	args[ArgSuperuser] = yesNo(opts.WantSuperuser)
	args[ArgHostOS] = string(hostOS)
	args[ArgCloudDBURL] = opts.CloudDBURL
	return args
}

func yesNo(v bool) string {
	if v {
		return "y"
	}
	return "n"
}
