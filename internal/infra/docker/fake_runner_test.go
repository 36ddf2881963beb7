package docker

import (
	"context"

	"github.com/poruru/djscaffold/cli/internal/infra/process"
)

type fakeRunner struct {
	commands []process.Command
	output   []byte
	err      error
}

func (f *fakeRunner) Run(_ context.Context, cmd process.Command) error {
	f.commands = append(f.commands, cmd)
	return f.err
}

func (f *fakeRunner) Output(_ context.Context, cmd process.Command) ([]byte, error) {
	f.commands = append(f.commands, cmd)
	return f.output, f.err
}
