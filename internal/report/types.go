// Package report holds the data model shared by every stage of the
// pipeline — FileAnalysis, ProjectSummary, WalkStats, ParseWarning,
// RefactoringCandidate — and the canonical JSON wire format from spec.md 6.
// Every record here is produced once per run and never mutated after
// aggregation (spec.md 3, "Lifecycles").
package report

import "time"

// FileAnalysis is the per-file record from spec.md 3. Invariants (held by
// the way the File Parser counts; it does not check them separately):
//
//   - LinesOfCode + BlankLines + CommentLines <= total physical lines
//   - CyclomaticComplexity >= 1
//   - Methods <= raw function-like node count; Functions + Methods == that count
type FileAnalysis struct {
	Path                 string  `json:"path"` // absolute filesystem path (spec.md 3)
	Language             string  `json:"language"`
	LinesOfCode          int     `json:"lines_of_code"`
	BlankLines           int     `json:"blank_lines"`
	CommentLines         int     `json:"comment_lines"`
	Functions            int     `json:"functions"`
	Methods              int     `json:"methods"`
	Classes              int     `json:"classes"`
	CyclomaticComplexity int     `json:"cyclomatic_complexity"`
	ComplexityScore      float64 `json:"complexity_score"`
	MaxNestingDepth      int     `json:"max_nesting_depth"`
}

// ParseWarningKind is the closed set of non-fatal per-file diagnostics from
// spec.md 3.
type ParseWarningKind string

const (
	WarningParseError          ParseWarningKind = "parse_error"
	WarningUnsupportedEncoding ParseWarningKind = "unsupported_encoding"
	WarningSanitizationNote    ParseWarningKind = "sanitization_note"
	WarningOversizeTruncated   ParseWarningKind = "oversize_truncated"
)

// ParseWarning is a non-fatal, per-file diagnostic. It never aborts the run.
type ParseWarning struct {
	Path    string           `json:"path"`
	Kind    ParseWarningKind `json:"kind"`
	Message string           `json:"message"`
}

// LanguageBreakdown is one language's slice of the ProjectSummary.
type LanguageBreakdown struct {
	Language      string  `json:"language"`
	FileCount     int     `json:"file_count"`
	TotalLines    int     `json:"total_lines"`
	AvgFunctions  float64 `json:"avg_functions"`
	AvgClasses    float64 `json:"avg_classes"`
}

// FileRef names a file in a top-N list without repeating its full analysis.
type FileRef struct {
	Path  string  `json:"path"`
	Value float64 `json:"value"`
}

// ProjectSummary aggregates every FileAnalysis in a run (spec.md 3).
type ProjectSummary struct {
	TotalFiles     int                 `json:"total_files"`
	TotalLines     int                 `json:"total_lines"`
	TotalFunctions int                 `json:"total_functions"`
	TotalMethods   int                 `json:"total_methods"`
	TotalClasses   int                 `json:"total_classes"`
	ByLanguage     []LanguageBreakdown `json:"by_language"`
	LargestFiles   []FileRef           `json:"largest_files"`
	MostComplex    []FileRef           `json:"most_complex_files"`
}

// WalkStats is produced by the File Walker (spec.md 3/4.D).
type WalkStats struct {
	FilesFound           int `json:"files_found"`
	FilesSkippedSize     int `json:"files_skipped_size"`
	FilesSkippedLanguage int `json:"files_skipped_language"`
	FilesSkippedHidden   int `json:"files_skipped_hidden"`
	FilesSkippedIgnore   int `json:"files_skipped_ignore"`
	DirectoriesScanned   int `json:"directories_scanned"`
	TotalEntriesScanned  int `json:"total_entries_scanned"`
}

// CandidateReasonKind is the closed set of reasons a file can be flagged as
// a refactoring candidate, in the fixed order spec.md 4.F requires.
type CandidateReasonKind string

const (
	ReasonHighComplexityScore       CandidateReasonKind = "high_complexity_score"
	ReasonHighCyclomaticComplexity  CandidateReasonKind = "high_cyclomatic_complexity"
	ReasonLargeFile                 CandidateReasonKind = "large_file"
	ReasonTooManyFunctions           CandidateReasonKind = "too_many_functions"
)

// CandidateReason carries the kind and the observed value that exceeded its
// threshold.
type CandidateReason struct {
	Kind  CandidateReasonKind `json:"kind"`
	Value float64             `json:"value"`
}

// RefactoringCandidate pairs a FileAnalysis with a non-empty, ordered list
// of justifying reasons.
type RefactoringCandidate struct {
	File    FileAnalysis       `json:"file"`
	Reasons []CandidateReason  `json:"reasons"`
}

// AnalysisReport is the assembled output of one run (spec.md 3/6).
type AnalysisReport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Config      any            `json:"config"`
	Files       []FileAnalysis `json:"files"`
	Summary     ProjectSummary `json:"summary"`
	WalkStats   WalkStats      `json:"walk_stats"`
	Warnings    []ParseWarning `json:"warnings"`
	Candidates  []RefactoringCandidate `json:"candidates"`
}
