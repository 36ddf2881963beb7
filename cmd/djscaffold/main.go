// Where: cli/cmd/djscaffold/main.go
// What: CLI entrypoint.
// Why: Execute djscaffold commands with configured dependencies.
package main

import (
	"os"

	"github.com/poruru/djscaffold/cli/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
