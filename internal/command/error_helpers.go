// Where: cli/internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Every failure is reported once, with the exit code of the failing step.
package command

import (
	"io"

	"github.com/poruru/djscaffold/cli/internal/infra/ui"
	"github.com/poruru/djscaffold/cli/internal/usecase/scaffold"
)

// exitWithError prints "✗ <err>" to out and returns the exit code mapped
// from err.
func exitWithError(out io.Writer, err error) int {
	ui.NewWithEmoji(out, true).Error(err.Error())
	return scaffold.ExitCode(err)
}
