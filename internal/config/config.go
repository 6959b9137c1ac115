// Package config holds the run configuration surface from spec.md 6: the
// thresholds the Candidate Classifier applies, the filters the File Walker
// applies, and the options the Analysis Engine needs to drive a run.
// Structured as plain value types with documented defaults, following the
// teacher's internal/config/config.go style.
package config

import "runtime"

// RefactoringThresholds are the four limits from spec.md 3, each with the
// default spec.md specifies.
type RefactoringThresholds struct {
	MaxComplexityScore      float64
	MaxCyclomaticComplexity int
	MaxLinesOfCode          int
	MaxFunctions            int
}

// DefaultThresholds returns the spec.md 3 defaults (10.0, 20, 500, 20).
func DefaultThresholds() RefactoringThresholds {
	return RefactoringThresholds{
		MaxComplexityScore:      10.0,
		MaxCyclomaticComplexity: 20,
		MaxLinesOfCode:          500,
		MaxFunctions:            20,
	}
}

// FilterConfig is the File Walker's input (spec.md 4.D).
type FilterConfig struct {
	LanguagesAllowed  []string // empty = all supported
	ExcludeGlobs      []string
	IncludeHidden     bool
	MaxFileSizeBytes  int64
	RespectGitignore  bool
	ExtraIgnoreFiles  []string
}

// DefaultMaxFileSizeBytes is the 10 MiB default from spec.md 4.D.
const DefaultMaxFileSizeBytes = 10 * 1024 * 1024

// DefaultFilterConfig returns the Walker defaults: all supported languages,
// no extra excludes, hidden files skipped, gitignore respected, 10 MiB cap.
func DefaultFilterConfig() FilterConfig {
	return FilterConfig{
		RespectGitignore: true,
		MaxFileSizeBytes: DefaultMaxFileSizeBytes,
	}
}

// SortKey is the terminal display order from spec.md 6. It affects nothing
// in the report itself — only how a host renders it.
type SortKey string

const (
	SortLines       SortKey = "lines"
	SortFunctions   SortKey = "functions"
	SortMethods     SortKey = "methods"
	SortClasses     SortKey = "classes"
	SortComplexity  SortKey = "complexity"
	SortCyclomatic  SortKey = "cyclomatic"
	SortNesting     SortKey = "nesting"
	SortPath        SortKey = "path"
)

// RunConfig is the full configuration the Analysis Engine needs, mirroring
// the CLI option table in spec.md 6. A host (e.g. cmd/codelens) is
// responsible for populating it from flags and/or a FileConfig.
type RunConfig struct {
	TargetPath string

	MinLines int
	MaxLines int // 0 = unbounded

	Filter     FilterConfig
	Thresholds RefactoringThresholds

	Sort  SortKey
	Limit int // 0 = unbounded

	OnlyChangedSince string // commit-ref; empty disables changed-file mode

	CI              bool
	CIMaxCandidates int

	// Workers bounds the Analysis Engine's parallel dispatch. 0 means
	// "use runtime.NumCPU()".
	Workers int
}

// EffectiveWorkers resolves Workers to a concrete worker count.
func (c RunConfig) EffectiveWorkers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// DefaultRunConfig returns a RunConfig with every documented default
// applied; callers still must set TargetPath.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Filter:     DefaultFilterConfig(),
		Thresholds: DefaultThresholds(),
		Sort:       SortComplexity,
	}
}
