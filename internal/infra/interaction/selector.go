// Where: cli/internal/infra/interaction/selector.go
// What: Interactive input using the huh library.
// Why: Provide a friendly terminal prompt for project details.
package interaction

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title string, suggestions []string, input *string) error {
	field := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(input)
	if len(suggestions) > 0 {
		field.Placeholder(suggestions[0])
	}
	return field.Run()
}

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	err := runInputPrompt(title, suggestions, &input)
	if err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return input, nil
}
