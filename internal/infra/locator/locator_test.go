package locator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/bash\n"), 0o755))
}

func TestSearchFindsCandidateInStartDir(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "scripts", "django", "setup_django_local.sh")
	touch(t, script)

	res := Search([]string{root}, DefaultCandidates)

	require.True(t, res.OK())
	assert.Equal(t, script, res.Found)
	assert.Equal(t, []string{
		filepath.Join(root, DefaultCandidates[0]),
		filepath.Join(root, DefaultCandidates[1]),
	}, res.Tried)
}

func TestSearchPrefersNearestAncestor(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	// Far ancestor has the higher-priority candidate, near one the lower.
	touch(t, filepath.Join(root, "src", "scripts", "django", "setup_django_local.sh"))
	near := filepath.Join(root, "a", "scripts", "setup_django_local.sh")
	touch(t, near)

	res := Search([]string{nested}, DefaultCandidates)

	assert.Equal(t, near, res.Found)
}

func TestSearchPrefersEarlierCandidateAtSameDepth(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "dist", "scripts", "django", "setup_django_local.sh")
	touch(t, first)
	touch(t, filepath.Join(root, "scripts", "setup_django_local.sh"))

	res := Search([]string{root}, DefaultCandidates)

	assert.Equal(t, first, res.Found)
}

func TestSearchTriesStartDirsInOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	want := filepath.Join(second, "scripts", "setup_django_local.sh")
	touch(t, want)

	res := Search([]string{first, second}, []string{filepath.Join("scripts", "setup_django_local.sh")})

	require.True(t, res.OK())
	assert.Equal(t, want, res.Found)
	assert.Equal(t, filepath.Join(first, "scripts", "setup_django_local.sh"), res.Tried[0])
}

func TestSearchRecordsEveryAttemptInOrder(t *testing.T) {
	root := t.TempDir()
	candidates := []string{"x.sh", "y.sh"}

	orig := Exists
	t.Cleanup(func() { Exists = orig })
	var probed []string
	Exists = func(path string) bool {
		probed = append(probed, path)
		return false
	}

	res := Search([]string{root}, candidates)

	require.False(t, res.OK())
	assert.Equal(t, probed, res.Tried)

	var want []string
	dir := root
	for {
		want = append(want, filepath.Join(dir, "x.sh"), filepath.Join(dir, "y.sh"))
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	assert.Equal(t, want, res.Tried)
}

func TestSearchIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "scripts", "setup_django_local.sh"), 0o755))

	res := Search([]string{root}, []string{filepath.Join("scripts", "setup_django_local.sh")})

	assert.NotEqual(t, filepath.Join(root, "scripts", "setup_django_local.sh"), res.Found)
}

func TestFormatTruncates(t *testing.T) {
	var tried []string
	for i := 0; i < 5; i++ {
		tried = append(tried, fmt.Sprintf("/p%d", i))
	}
	out := Result{Tried: tried}.Format(3)

	assert.True(t, strings.HasPrefix(out, "setup_django_local.sh not found. Tried:"))
	assert.Contains(t, out, "\n  /p2")
	assert.NotContains(t, out, "/p3")
	assert.Contains(t, out, "... and 2 more")
}

func TestFormatDefaultLimit(t *testing.T) {
	tried := make([]string, DefaultTryLimit+10)
	for i := range tried {
		tried[i] = fmt.Sprintf("/p%d", i)
	}
	out := Result{Tried: tried}.Format(0)

	assert.Equal(t, DefaultTryLimit+2, strings.Count(out, "\n")+1)
	assert.Contains(t, out, "... and 10 more")
}

func TestCheckOverride(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(root, "custom.sh")

	miss := CheckOverride(script)
	assert.False(t, miss.OK())
	assert.Equal(t, []string{script}, miss.Tried)

	touch(t, script)
	hit := CheckOverride(script)
	assert.Equal(t, script, hit.Found)
}

func TestStartDirs(t *testing.T) {
	got := StartDirs("/opt/djs/bin", "/home/me/work")
	assert.Equal(t, []string{"/opt/djs/bin", "/opt/djs", "/home/me/work", "/home/me"}, got)

	dedup := StartDirs("/work/bin", "/work")
	assert.Equal(t, []string{"/work/bin", "/work", "/"}, dedup)

	assert.Equal(t, []string{"/work", "/"}, StartDirs("", "/work"))
}
