// Package classifier is the Candidate Classifier (spec.md 4.F): given the
// per-file analyses from a run and a RefactoringThresholds set, it emits
// the ordered list of refactoring candidates with justifying reasons.
package classifier

import (
	"sort"

	"github.com/quantmind-br/code-analyzer/internal/config"
	"github.com/quantmind-br/code-analyzer/internal/report"
)

// Classify applies the four `>=` rules from spec.md 4.F to every file in
// files, in the fixed reason order (HighComplexityScore,
// HighCyclomaticComplexity, LargeFile, TooManyFunctions), and returns the
// resulting candidates sorted by the tie-break chain: complexity_score
// descending, then cyclomatic_complexity descending, then lines_of_code
// descending, then path ascending.
func Classify(files []report.FileAnalysis, t config.RefactoringThresholds) []report.RefactoringCandidate {
	var candidates []report.RefactoringCandidate

	for _, f := range files {
		var reasons []report.CandidateReason

		if f.ComplexityScore >= t.MaxComplexityScore {
			reasons = append(reasons, report.CandidateReason{
				Kind:  report.ReasonHighComplexityScore,
				Value: f.ComplexityScore,
			})
		}
		if f.CyclomaticComplexity >= t.MaxCyclomaticComplexity {
			reasons = append(reasons, report.CandidateReason{
				Kind:  report.ReasonHighCyclomaticComplexity,
				Value: float64(f.CyclomaticComplexity),
			})
		}
		if f.LinesOfCode >= t.MaxLinesOfCode {
			reasons = append(reasons, report.CandidateReason{
				Kind:  report.ReasonLargeFile,
				Value: float64(f.LinesOfCode),
			})
		}
		if f.Functions >= t.MaxFunctions {
			reasons = append(reasons, report.CandidateReason{
				Kind:  report.ReasonTooManyFunctions,
				Value: float64(f.Functions),
			})
		}

		if len(reasons) == 0 {
			continue
		}
		candidates = append(candidates, report.RefactoringCandidate{
			File:    f,
			Reasons: reasons,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.File.ComplexityScore != b.File.ComplexityScore {
			return a.File.ComplexityScore > b.File.ComplexityScore
		}
		if a.File.CyclomaticComplexity != b.File.CyclomaticComplexity {
			return a.File.CyclomaticComplexity > b.File.CyclomaticComplexity
		}
		if a.File.LinesOfCode != b.File.LinesOfCode {
			return a.File.LinesOfCode > b.File.LinesOfCode
		}
		return a.File.Path < b.File.Path
	})

	return candidates
}
