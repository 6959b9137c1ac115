package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/code-analyzer/internal/config"
	"github.com/quantmind-br/code-analyzer/internal/report"
)

// S6 from spec.md 8: a file over the LargeFile threshold and below every
// other threshold yields exactly one reason.
func TestClassify_S6_SingleReason(t *testing.T) {
	files := []report.FileAnalysis{
		{
			Path:                  "big.go",
			LinesOfCode:           600,
			CyclomaticComplexity:  5,
			ComplexityScore:       4.0,
			Functions:             3,
		},
	}

	got := Classify(files, config.DefaultThresholds())

	require.Len(t, got, 1)
	require.Len(t, got[0].Reasons, 1)
	assert.Equal(t, report.ReasonLargeFile, got[0].Reasons[0].Kind)
	assert.Equal(t, 600.0, got[0].Reasons[0].Value)
}

func TestClassify_AllBelowThreshold_NeverCandidate(t *testing.T) {
	files := []report.FileAnalysis{
		{
			Path:                  "small.go",
			LinesOfCode:           10,
			CyclomaticComplexity:  2,
			ComplexityScore:       1.0,
			Functions:             1,
		},
	}

	got := Classify(files, config.DefaultThresholds())
	assert.Empty(t, got)
}

func TestClassify_ReasonOrderIsFixed(t *testing.T) {
	t_ := config.DefaultThresholds()
	files := []report.FileAnalysis{
		{
			Path:                  "everything.go",
			LinesOfCode:           t_.MaxLinesOfCode,
			CyclomaticComplexity:  t_.MaxCyclomaticComplexity,
			ComplexityScore:       t_.MaxComplexityScore,
			Functions:             t_.MaxFunctions,
		},
	}

	got := Classify(files, t_)
	require.Len(t, got, 1)
	require.Len(t, got[0].Reasons, 4)
	assert.Equal(t, report.ReasonHighComplexityScore, got[0].Reasons[0].Kind)
	assert.Equal(t, report.ReasonHighCyclomaticComplexity, got[0].Reasons[1].Kind)
	assert.Equal(t, report.ReasonLargeFile, got[0].Reasons[2].Kind)
	assert.Equal(t, report.ReasonTooManyFunctions, got[0].Reasons[3].Kind)
}

func TestClassify_TieBreakOrdering(t *testing.T) {
	thresholds := config.RefactoringThresholds{
		MaxComplexityScore:      1.0,
		MaxCyclomaticComplexity: 1,
		MaxLinesOfCode:          1,
		MaxFunctions:            1,
	}
	files := []report.FileAnalysis{
		{Path: "b.go", ComplexityScore: 5, CyclomaticComplexity: 10, LinesOfCode: 100, Functions: 1},
		{Path: "a.go", ComplexityScore: 5, CyclomaticComplexity: 10, LinesOfCode: 200, Functions: 1},
		{Path: "z.go", ComplexityScore: 9, CyclomaticComplexity: 1, LinesOfCode: 1, Functions: 1},
	}

	got := Classify(files, thresholds)
	require.Len(t, got, 3)
	// Highest complexity_score first.
	assert.Equal(t, "z.go", got[0].File.Path)
	// Tied on complexity_score and cyclomatic_complexity: higher lines_of_code first.
	assert.Equal(t, "a.go", got[1].File.Path)
	assert.Equal(t, "b.go", got[2].File.Path)
}
