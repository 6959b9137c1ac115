package walker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/code-analyzer/internal/config"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWalkFindsSupportedFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "lib.rs", "fn main() {}\n")
	writeFile(t, root, "README.md", "not code\n")

	cands, stats, err := Walk(root, config.DefaultFilterConfig())
	require.NoError(t, err)
	require.Len(t, cands, 2)
	assert.Equal(t, "lib.rs", cands[0].Path)
	assert.Equal(t, "main.go", cands[1].Path)
	assert.Equal(t, 1, stats.FilesSkippedLanguage)
	assert.Equal(t, 2, stats.FilesFound)
}

func TestWalkRespectsGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "build/\n*.generated.go\n")
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "gen.generated.go", "package main\n")
	writeFile(t, root, "build/output.go", "package main\n")

	cands, stats, err := Walk(root, config.DefaultFilterConfig())
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "main.go", cands[0].Path)
	assert.GreaterOrEqual(t, stats.FilesSkippedIgnore, 2)
}

func TestWalkSkipsHiddenByDefault(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".hidden/main.go", "package main\n")
	writeFile(t, root, "main.go", "package main\n")

	cands, stats, err := Walk(root, config.DefaultFilterConfig())
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "main.go", cands[0].Path)
	assert.GreaterOrEqual(t, stats.FilesSkippedHidden, 1)
}

func TestWalkIncludeHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".hidden/main.go", "package main\n")

	filter := config.DefaultFilterConfig()
	filter.IncludeHidden = true
	cands, _, err := Walk(root, filter)
	require.NoError(t, err)
	require.Len(t, cands, 1)
}

func TestWalkAppliesSizeCap(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.go", "package main\n// filler\n")

	filter := config.DefaultFilterConfig()
	filter.MaxFileSizeBytes = 4
	cands, stats, err := Walk(root, filter)
	require.NoError(t, err)
	assert.Empty(t, cands)
	assert.Equal(t, 1, stats.FilesSkippedSize)
}

func TestWalkLanguageAllowList(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "lib.rs", "fn main() {}\n")

	filter := config.DefaultFilterConfig()
	filter.LanguagesAllowed = []string{"go"}
	cands, stats, err := Walk(root, filter)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "main.go", cands[0].Path)
	assert.Equal(t, 1, stats.FilesSkippedLanguage)
}

func TestWalkExcludeGlobs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "vendor/lib.go", "package vendor\n")
	writeFile(t, root, "main.go", "package main\n")

	filter := config.DefaultFilterConfig()
	filter.ExcludeGlobs = []string{"vendor/**"}
	cands, _, err := Walk(root, filter)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "main.go", cands[0].Path)
}

func TestWalkSingleFileRoot(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "solo.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n"), 0o644))

	cands, stats, err := Walk(path, config.DefaultFilterConfig())
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, 1, stats.TotalEntriesScanned)
}

func TestWalkDeterministicOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "z.go", "package main\n")
	writeFile(t, root, "a.go", "package main\n")
	writeFile(t, root, "m.go", "package main\n")

	cands, _, err := Walk(root, config.DefaultFilterConfig())
	require.NoError(t, err)
	require.Len(t, cands, 3)
	assert.Equal(t, []string{"a.go", "m.go", "z.go"}, []string{cands[0].Path, cands[1].Path, cands[2].Path})
}

func TestGitignoreNegation(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "*.go\n!keep.go\n")
	writeFile(t, root, "drop.go", "package main\n")
	writeFile(t, root, "keep.go", "package main\n")

	cands, _, err := Walk(root, config.DefaultFilterConfig())
	require.NoError(t, err)
	require.Len(t, cands, 1)
	assert.Equal(t, "keep.go", cands[0].Path)
}

// TestFilterPathsAppliesSameFilterAsWalk exercises the changed-files-only
// path the Analysis Engine uses (spec.md 4.D "external provider"): the
// same language/size decisions apply to an externally supplied path list
// as to a directory scan, and a gitignore file on disk is not consulted
// (the caller already decided which paths matter).
func TestFilterPathsAppliesSameFilterAsWalk(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, ".gitignore", "skip.go\n")
	writeFile(t, root, "main.go", "package main\n")
	writeFile(t, root, "skip.go", "package main\n")
	writeFile(t, root, "README.md", "not code\n")

	paths := []string{
		filepath.Join(root, "main.go"),
		filepath.Join(root, "skip.go"),
		filepath.Join(root, "README.md"),
		filepath.Join(root, "missing.go"),
	}

	cands, stats, err := FilterPaths(paths, config.DefaultFilterConfig())
	require.NoError(t, err)
	require.Len(t, cands, 2)
	assert.Equal(t, []string{paths[0], paths[1]}, []string{cands[0].AbsPath, cands[1].AbsPath})
	assert.Equal(t, 2, stats.FilesFound)
	assert.Equal(t, 4, stats.TotalEntriesScanned)
}
