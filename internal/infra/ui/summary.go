// Where: cli/internal/infra/ui/summary.go
// What: "Next steps" summary rendering.
// Why: Tell the user how to reach what was just created.
package ui

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/djscaffold/cli/assets"
)

const summaryTemplate = "summary.txt.tmpl"

// SummaryData feeds the next-steps template.
type SummaryData struct {
	ProjectName     string
	Container       string
	HostPort        int
	ComposeServices []string
	Skipped         []string
	PythonHint      string
}

var (
	summaryOnce sync.Once
	summaryTmpl *template.Template
	summaryErr  error
)

// RenderSummary renders the next-steps text.
func RenderSummary(data SummaryData) (string, error) {
	summaryOnce.Do(func() {
		summaryTmpl, summaryErr = template.New(summaryTemplate).
			Funcs(sprig.TxtFuncMap()).
			ParseFS(assets.TemplatesFS, "templates/"+summaryTemplate)
	})
	if summaryErr != nil {
		return "", fmt.Errorf("load summary template: %w", summaryErr)
	}
	if data.PythonHint == "" {
		data.PythonHint = "python"
	}

	var buf bytes.Buffer
	if err := summaryTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render summary: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n") + "\n", nil
}
