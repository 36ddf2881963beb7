// Where: cli/internal/command/branding.go
// What: CLI naming for usage text.
// Why: Keep user-facing command names consistent when the binary is wrapped.
package command

import (
	"os"
	"strings"

	"github.com/poruru/djscaffold/cli/internal/meta"
)

func cliName() string {
	name := strings.TrimSpace(os.Getenv("CLI_CMD"))
	if name == "" {
		name = strings.TrimSpace(meta.Slug)
	}
	if name == "" {
		name = "djscaffold"
	}
	return name
}
