// Where: cli/internal/infra/logging/logging.go
// What: Diagnostic logger construction.
// Why: Keep debug tracing off the user-facing output unless asked for.
package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a text logger on out. Verbose enables debug level; otherwise
// only warnings and errors are written.
func New(out io.Writer, verbose bool) *logrus.Logger {
	if out == nil {
		out = os.Stderr
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	logger.SetLevel(logrus.WarnLevel)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	return logger
}

// Discard returns a logger that writes nothing.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}
