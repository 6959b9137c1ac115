// Package sanitize implements the Source Sanitizer (spec.md 4.B): a narrow,
// language-gated preprocessing step run before parsing. The only language
// that currently needs one is TSX, whose grammar rejects a bare '&' in text
// positions. Every other language is the identity function.
package sanitize

import (
	"unicode/utf8"

	"github.com/quantmind-br/code-analyzer/internal/langspec"
)

// Note describes a sanitization outcome worth surfacing to the caller as a
// ParseWarning. A nil Note means nothing of interest happened. Note is only
// ever produced for a hard encoding failure; a successful substitution is
// silent (spec.md 4.B "Contract") and the caller detects it, if it cares,
// by comparing the returned slice's backing array against src.
type Note struct {
	Message string
}

// Sanitize returns parse-ready source for lang. Output preserves byte
// offsets only when no substitution occurred (spec.md 4.B "Contract") — the
// caller must not assume offset stability otherwise.
func Sanitize(lang langspec.Language, src []byte) ([]byte, *Note) {
	if !utf8.Valid(src) {
		return src, &Note{Message: "source is not valid UTF-8"}
	}
	if lang != langspec.TSX {
		return src, nil
	}
	out, changed := sanitizeTSX(src)
	if !changed {
		return src, nil
	}
	return out, nil
}

type tsxState int

const (
	stateNormal tsxState = iota
	stateInTag
	stateInText
	stateInExpr
)

// sanitizeTSX runs the four-state machine from spec.md 4.B over src,
// escaping bare '&' to '&amp;' only while in stateInText. Tag interiors,
// expression braces (tracked with a depth counter so nested '{' inside an
// expression doesn't prematurely exit InExpr), and already well-formed
// entities (&amp;, &#NN;, &#xHH;) are left untouched.
func sanitizeTSX(src []byte) ([]byte, bool) {
	state := stateNormal
	exprDepth := 0
	exprReturn := stateInText // state to resume once the current expression closes
	changed := false

	var out []byte // allocated lazily, only once a substitution is needed

	n := len(src)
	start := 0
	for i := 0; i < n; i++ {
		b := src[i]
		switch state {
		case stateNormal:
			if b == '<' {
				state = stateInTag
			}
		case stateInTag:
			switch b {
			case '>':
				state = stateInText
			case '{':
				state = stateInExpr
				exprDepth = 1
				exprReturn = stateInTag
			}
		case stateInExpr:
			switch b {
			case '{':
				exprDepth++
			case '}':
				exprDepth--
				if exprDepth == 0 {
					state = exprReturn
				}
			}
		case stateInText:
			switch {
			case b == '<':
				state = stateInTag
			case b == '{':
				state = stateInExpr
				exprDepth = 1
				exprReturn = stateInText
			case b == '&' && !isWellFormedEntity(src, i):
				if out == nil {
					out = make([]byte, 0, n+8)
				}
				out = append(out, src[start:i]...)
				out = append(out, "&amp;"...)
				start = i + 1
				changed = true
			}
		}
	}

	if !changed {
		return src, false
	}
	out = append(out, src[start:]...)
	return out, true
}

// isWellFormedEntity reports whether src[i] (an '&') begins a well-formed
// entity reference: &amp; or a numeric/hex char reference &#NN; / &#xHH;.
func isWellFormedEntity(src []byte, i int) bool {
	rest := src[i:]
	if hasBytePrefix(rest, "&amp;") {
		return true
	}
	if len(rest) < 3 || rest[1] != '#' {
		return false
	}
	j := 2
	if j < len(rest) && (rest[j] == 'x' || rest[j] == 'X') {
		j++
		start := j
		for j < len(rest) && isHexDigit(rest[j]) {
			j++
		}
		return j > start && j < len(rest) && rest[j] == ';'
	}
	start := j
	for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
		j++
	}
	return j > start && j < len(rest) && rest[j] == ';'
}

func hasBytePrefix(b []byte, prefix string) bool {
	if len(b) < len(prefix) {
		return false
	}
	return string(b[:len(prefix)]) == prefix
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
