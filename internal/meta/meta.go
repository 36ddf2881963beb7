// Where: cli/internal/meta/meta.go
// What: CLI-local metadata constants.
// Why: Keep branding and on-disk layout names in one place.
package meta

const (
	// Project Identity
	AppName   = "djscaffold"
	Slug      = "djscaffold"
	EnvPrefix = "DJSCAFFOLD"

	// Directory Layout
	HomeDir        = ".djscaffold"
	ConfigFileName = "config.yaml"

	// Scaffold Script
	SetupScriptName = "setup_django_local.sh"
	ScriptShell     = "bash"

	// Generated Project Artifacts
	DockerfileName  = "Dockerfile"
	ComposeFileName = "docker-compose.yml"

	// Django dev server port inside the generated image.
	FrameworkPort = 8000
)
