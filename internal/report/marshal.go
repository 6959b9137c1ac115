package report

import "encoding/json"

// MarshalFull renders the canonical JSON shape from spec.md 6.
func (r *AnalysisReport) MarshalFull() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// MarshalFilesOnly implements the host's "files" emission mode: an array of
// FileAnalysis and nothing else.
func (r *AnalysisReport) MarshalFilesOnly() ([]byte, error) {
	return json.MarshalIndent(r.Files, "", "  ")
}

// MarshalSummaryOnly implements the host's "summary" emission mode: the
// ProjectSummary object alone.
func (r *AnalysisReport) MarshalSummaryOnly() ([]byte, error) {
	return json.MarshalIndent(r.Summary, "", "  ")
}
