// Where: cli/internal/infra/ui/ui.go
// What: High-level output surface for commands and use cases.
// Why: Keep use cases independent of how messages are rendered.
package ui

import (
	"io"
)

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes high-level output helpers used by use cases.
type UserInterface interface {
	Info(msg string)
	Step(emoji, msg string)
	Warn(msg string)
	Success(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewUI returns a UserInterface writing progress to out and warnings to errOut.
func NewUI(out, errOut io.Writer, emojiEnabled bool) UserInterface {
	if errOut == nil {
		errOut = out
	}
	return consoleUI{
		out:  NewWithEmoji(out, emojiEnabled),
		warn: NewWithEmoji(errOut, emojiEnabled),
	}
}

type consoleUI struct {
	out  *Console
	warn *Console
}

func (c consoleUI) Info(msg string) {
	c.out.Info(msg)
}

func (c consoleUI) Step(emoji, msg string) {
	c.out.Header(emoji, msg)
}

func (c consoleUI) Warn(msg string) {
	c.warn.Warn(msg)
}

func (c consoleUI) Success(msg string) {
	c.out.Success(msg)
}

func (c consoleUI) Block(emoji, title string, rows []KeyValue) {
	c.out.BlockStart(emoji, title)
	for _, kv := range rows {
		c.out.Item(kv.Key, kv.Value)
	}
	c.out.BlockEnd()
}

// Discard is a UserInterface that drops everything.
var Discard UserInterface = NewUI(io.Discard, io.Discard, false)
