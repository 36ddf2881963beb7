// Where: cli/internal/infra/interaction/interaction.go
// What: Interactive primitives for CLI prompts and TTY detection.
// Why: Centralize user interaction to keep command handlers focused on orchestration.
package interaction

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Prompter defines the interface for interactive user input.
type Prompter interface {
	Input(title string, suggestions []string) (string, error)
}

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewPrompter returns a HuhPrompter when in is a terminal, otherwise a
// LinePrompter reading from in and echoing titles to out.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if IsTerminal(in) {
		return HuhPrompter{}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads one line per prompt. It serves piped or scripted input.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter builds a LinePrompter. Nil arguments fall back to os.Stdin
// and os.Stderr.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stderr
	}
	return &LinePrompter{reader: bufio.NewReader(in), out: out}
}

// Input prints title and returns the next line, trimmed. EOF yields "".
func (p *LinePrompter) Input(title string, suggestions []string) (string, error) {
	if len(suggestions) > 0 {
		_, _ = fmt.Fprintf(p.out, "%s [%s]: ", title, suggestions[0])
	} else {
		_, _ = fmt.Fprintf(p.out, "%s: ", title)
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
