// Where: cli/internal/infra/process/runner.go
// What: External process execution with explicit stdio wiring.
// Why: Run the setup script and docker binaries as argv arrays, never through a shell.
package process

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Stdio is the set of streams handed to a child process. Nil fields are
// left unconnected.
type Stdio struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// InheritStdio connects the child to the parent's terminal so the user sees
// its output and can answer its prompts.
func InheritStdio() Stdio {
	return Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// Command describes one child process invocation.
type Command struct {
	Dir   string
	Name  string
	Args  []string
	Stdio Stdio
}

// String renders the command for logs.
func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner defines the interface for executing external commands.
type Runner interface {
	// Run blocks until the command exits.
	Run(ctx context.Context, cmd Command) error
	// Output runs the command and returns its stdout. Stdio.Out is ignored.
	Output(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner is a concrete implementation of Runner using os/exec.
type ExecRunner struct {
	Log logrus.FieldLogger
}

func (r ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := r.build(ctx, c)
	cmd.Stdout = c.Stdio.Out
	return classify(c, cmd.Run())
}

func (r ExecRunner) Output(ctx context.Context, c Command) ([]byte, error) {
	cmd := r.build(ctx, c)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := classify(c, cmd.Run())
	return stdout.Bytes(), err
}

func (r ExecRunner) build(ctx context.Context, c Command) *exec.Cmd {
	r.logger().WithField("dir", c.Dir).Debugf("+ %s", c.String())
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdio.In
	cmd.Stderr = c.Stdio.Err
	return cmd
}

func (r ExecRunner) logger() logrus.FieldLogger {
	if r.Log == nil {
		return logrus.StandardLogger()
	}
	return r.Log
}

func classify(c Command, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Name: c.Name, Args: c.Args, Code: exitErr.ExitCode()}
	}
	return &StartError{Name: c.Name, Err: err}
}
