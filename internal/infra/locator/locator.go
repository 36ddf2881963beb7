// Where: cli/internal/infra/locator/locator.go
// What: Upward search for the bundled setup script.
// Why: The script may live next to the binary, in a dist tree, or in a source checkout.
package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/djscaffold/cli/internal/meta"
)

// DefaultTryLimit bounds how many attempted paths are shown in a report.
const DefaultTryLimit = 200

// DefaultCandidates lists script locations relative to each searched directory,
// in priority order.
var DefaultCandidates = []string{
	filepath.Join("src", "scripts", "django", meta.SetupScriptName),
	filepath.Join("scripts", "django", meta.SetupScriptName),
	filepath.Join("dist", "scripts", "django", meta.SetupScriptName),
	filepath.Join("src", "scripts", meta.SetupScriptName),
	filepath.Join("scripts", meta.SetupScriptName),
}

// Result is the outcome of a search. Found is empty when nothing matched.
type Result struct {
	Found string
	Tried []string
}

// OK reports whether a candidate was found.
func (r Result) OK() bool {
	return r.Found != ""
}

// Format renders the attempted paths, truncated to limit entries.
// A non-positive limit uses DefaultTryLimit.
func (r Result) Format(limit int) string {
	if limit <= 0 {
		limit = DefaultTryLimit
	}
	shown := r.Tried
	if len(shown) > limit {
		shown = shown[:limit]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s not found. Tried:", meta.SetupScriptName)
	for _, p := range shown {
		b.WriteString("\n  ")
		b.WriteString(p)
	}
	if rest := len(r.Tried) - len(shown); rest > 0 {
		fmt.Fprintf(&b, "\n  ... and %d more", rest)
	}
	return b.String()
}

// Exists reports whether path names an existing regular file. Any stat
// failure counts as absent.
var Exists = func(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// Search walks each start directory and its ancestors, testing every
// candidate at every level. Start directories are tried in order; the
// nearest ancestor wins, then the first-listed candidate.
func Search(startDirs, candidates []string) Result {
	var tried []string
	for _, root := range startDirs {
		if strings.TrimSpace(root) == "" {
			continue
		}
		dir, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		for {
			for _, rel := range candidates {
				candidate := filepath.Join(dir, rel)
				tried = append(tried, candidate)
				if Exists(candidate) {
					return Result{Found: candidate, Tried: tried}
				}
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}
	return Result{Tried: tried}
}

// CheckOverride tests an explicitly configured script path without searching.
func CheckOverride(path string) Result {
	abs := path
	if resolved, err := filepath.Abs(path); err == nil {
		abs = resolved
	}
	if Exists(abs) {
		return Result{Found: abs, Tried: []string{abs}}
	}
	return Result{Tried: []string{abs}}
}

// StartDirs returns the directories searched by default: the executable's
// directory and its parent, then the working directory and its parent.
// Empty and repeated entries are dropped.
func StartDirs(exeDir, cwd string) []string {
	var dirs []string
	seen := map[string]bool{}
	add := func(dir string) {
		dir = strings.TrimSpace(dir)
		if dir == "" {
			return
		}
		dir = filepath.Clean(dir)
		if seen[dir] {
			return
		}
		seen[dir] = true
		dirs = append(dirs, dir)
	}
	for _, base := range []string{exeDir, cwd} {
		if strings.TrimSpace(base) == "" {
			continue
		}
		add(base)
		add(filepath.Dir(filepath.Clean(base)))
	}
	return dirs
}
