// Where: cli/internal/infra/process/errors.go
// What: Process failure types.
// Why: Callers must tell "could not start" apart from "ran and failed".
package process

import (
	"errors"
	"fmt"
	"strings"
)

// ExitError reports a child that ran and exited non-zero. Code is -1 when
// the child was killed by a signal.
type ExitError struct {
	Name string
	Args []string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", strings.Join(append([]string{e.Name}, e.Args...), " "), e.Code)
}

// StartError reports a child that could not be started at all.
type StartError struct {
	Name string
	Err  error
}

func (e *StartError) Error() string {
	return fmt.Sprintf("start %s: %v", e.Name, e.Err)
}

func (e *StartError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err, if any.
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}
