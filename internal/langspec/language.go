// Package langspec is the Language Registry: it maps file paths to a closed
// set of supported languages and exposes, for each language, the grammar
// node-kind tables the rest of the pipeline dispatches on.
package langspec

import (
	"path/filepath"
	"strings"
)

// Language is a closed enumeration of the languages this module understands.
// Zero value is Unsupported so a missing map lookup never aliases a real
// language.
type Language int

const (
	Unsupported Language = iota
	Rust
	JavaScript
	TypeScript
	TSX
	Python
	Java
	C
	Cpp
	Go
)

func (l Language) String() string {
	switch l {
	case Rust:
		return "rust"
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	case Python:
		return "python"
	case Java:
		return "java"
	case C:
		return "c"
	case Cpp:
		return "cpp"
	case Go:
		return "go"
	default:
		return "unsupported"
	}
}

// extensionTable is the fixed dispatch table from spec.md 4.A. Lookups are
// on the lowercased extension, dot included.
var extensionTable = map[string]Language{
	".rs":  Rust,
	".js":  JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".jsx": JavaScript,
	".ts":  TypeScript,
	".tsx": TSX,
	".py":  Python,
	".pyw": Python,
	".java": Java,
	".c":   C,
	".h":   C,
	".cc":  Cpp,
	".cpp": Cpp,
	".cxx": Cpp,
	".hpp": Cpp,
	".hxx": Cpp,
	".go":  Go,
}

// Detect returns the Language for path, or Unsupported if its extension
// isn't in the fixed table.
func Detect(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extensionTable[ext]; ok {
		return lang
	}
	return Unsupported
}

// IsSupported reports whether Detect(path) would return a real language.
func IsSupported(path string) bool {
	return Detect(path) != Unsupported
}

// All lists every real (non-Unsupported) language, in enum order. Used by
// callers that need to enumerate the closed set, e.g. ParseLanguageName and
// the registry's exhaustiveness test.
func All() []Language {
	return []Language{Rust, JavaScript, TypeScript, TSX, Python, Java, C, Cpp, Go}
}

// ParseLanguageName maps a lowercase language name (as used on the CLI and
// in config files) back to its Language value.
func ParseLanguageName(name string) (Language, bool) {
	for _, l := range All() {
		if l.String() == strings.ToLower(name) {
			return l, true
		}
	}
	return Unsupported, false
}
