package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	assert.Equal(t, 10.0, th.MaxComplexityScore)
	assert.Equal(t, 20, th.MaxCyclomaticComplexity)
	assert.Equal(t, 500, th.MaxLinesOfCode)
	assert.Equal(t, 20, th.MaxFunctions)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultThresholds(), cfg.Thresholds)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultThresholds(), cfg.Thresholds)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codelens.toml")
	content := `
max_complexity_score = 12.5
max_cyclomatic_complexity = 25
max_lines_of_code = 400
max_functions = 15
exclude = ["vendor/**", "**/*.gen.go"]
languages = ["go", "rust"]
include_hidden = true
max_file_size_mb = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.5, cfg.Thresholds.MaxComplexityScore)
	assert.Equal(t, 25, cfg.Thresholds.MaxCyclomaticComplexity)
	assert.Equal(t, 400, cfg.Thresholds.MaxLinesOfCode)
	assert.Equal(t, 15, cfg.Thresholds.MaxFunctions)
	assert.Equal(t, []string{"vendor/**", "**/*.gen.go"}, cfg.Exclude)
	assert.Equal(t, []string{"go", "rust"}, cfg.Languages)
	assert.True(t, cfg.IncludeHidden)
	assert.Equal(t, 5, cfg.MaxFileSizeMB)
}

func TestLoadKDL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codelens.kdl")
	content := `
thresholds {
    max_complexity_score 12.5
    max_cyclomatic_complexity 25
    max_lines_of_code 400
    max_functions 15
}
exclude "vendor/**" "**/*.gen.go"
languages "go" "rust"
include_hidden true
max_file_size_mb 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12.5, cfg.Thresholds.MaxComplexityScore)
	assert.Equal(t, 25, cfg.Thresholds.MaxCyclomaticComplexity)
	assert.Equal(t, []string{"vendor/**", "**/*.gen.go"}, cfg.Exclude)
	assert.Equal(t, []string{"go", "rust"}, cfg.Languages)
	assert.True(t, cfg.IncludeHidden)
	assert.Equal(t, 5, cfg.MaxFileSizeMB)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "codelens.yaml")
	require.NoError(t, os.WriteFile(path, []byte("foo: bar"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEffectiveWorkers(t *testing.T) {
	c := RunConfig{Workers: 4}
	assert.Equal(t, 4, c.EffectiveWorkers())

	c2 := RunConfig{}
	assert.Greater(t, c2.EffectiveWorkers(), 0)
}
