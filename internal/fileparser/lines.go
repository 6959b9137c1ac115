package fileparser

import "bytes"

// lineSpan is the half-open byte range [Start, End) of one physical line's
// content, newline excluded.
type lineSpan struct {
	Start int
	End   int
}

// splitLines indexes src into physical lines. A final line with no
// terminating '\n' (or the whole input, if src has no '\n' at all) is
// included; the empty remainder after a final '\n' is not a line.
func splitLines(src []byte) []lineSpan {
	var lines []lineSpan
	start := 0
	for i, b := range src {
		if b == '\n' {
			end := i
			if end > start && src[end-1] == '\r' {
				end--
			}
			lines = append(lines, lineSpan{Start: start, End: end})
			start = i + 1
		}
	}
	if start < len(src) {
		end := len(src)
		if end > start && src[end-1] == '\r' {
			end--
		}
		lines = append(lines, lineSpan{Start: start, End: end})
	}
	return lines
}

// lineStats is the blank/comment/code breakdown of a file's physical lines.
type lineStats struct {
	total   int
	blank   int
	comment int
	code    int
}

// countLines classifies every physical line in src as blank, comment, or
// code. commentLines holds the 0-based row indices the CST walk identified
// as containing nothing but comment text (see recordComment in metrics.go);
// a nil set means no CST was available and every non-blank line is counted
// as code, which is the best a line-counter can do without a grammar.
func countLines(src []byte, commentLines map[int]struct{}) lineStats {
	lines := splitLines(src)
	var stats lineStats
	stats.total = len(lines)
	for i, ln := range lines {
		if isBlank(src[ln.Start:ln.End]) {
			stats.blank++
			continue
		}
		if _, ok := commentLines[i]; ok {
			stats.comment++
			continue
		}
		stats.code++
	}
	return stats
}

func isBlank(b []byte) bool {
	return len(bytes.TrimSpace(b)) == 0
}
