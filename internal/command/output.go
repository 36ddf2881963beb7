// Where: cli/internal/command/output.go
// What: Output helpers for command adapters.
// Why: Centralize UserInterface construction.
package command

import (
	"io"

	"github.com/poruru/djscaffold/cli/internal/infra/ui"
)

func commandUI(out, errOut io.Writer, emoji bool) ui.UserInterface {
	return ui.NewUI(out, errOut, emoji)
}
