// Package fileparser is the File Parser (spec.md 4.C): it turns one file's
// bytes into a report.FileAnalysis by validating encoding, running the
// Source Sanitizer, parsing with tree-sitter, and walking the resulting
// CST with the Language Registry's node-kind tables. Grounded on the
// teacher's internal/parser package, generalized from its query-based,
// symbol-table extraction to a metrics-only iterative walk, since this
// module's spec calls for counts and complexity rather than a symbol
// index.
package fileparser

import (
	"fmt"
	"math"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/quantmind-br/code-analyzer/internal/langspec"
	"github.com/quantmind-br/code-analyzer/internal/report"
	"github.com/quantmind-br/code-analyzer/internal/sanitize"
)

// Parser wraps one *tree_sitter.Parser per language, constructed lazily on
// first use. A Parser is NOT safe for concurrent use from multiple
// goroutines — the Analysis Engine keeps a fixed free list with one Parser
// per worker slot and lends each one to a single parse at a time (spec.md 5
// "Concurrency & Resource Model").
type Parser struct {
	grammars map[langspec.Language]*tree_sitter.Parser
}

// New returns an empty Parser. Grammars are constructed on first use per
// language, so a Parser that only ever sees Go files never pays for the
// other seven grammars.
func New() *Parser {
	return &Parser{grammars: make(map[langspec.Language]*tree_sitter.Parser)}
}

// Close releases every grammar this Parser constructed.
func (p *Parser) Close() {
	for _, ts := range p.grammars {
		ts.Close()
	}
}

func (p *Parser) grammarParser(lang langspec.Language) (*tree_sitter.Parser, error) {
	if ts, ok := p.grammars[lang]; ok {
		return ts, nil
	}
	grammar := grammarFor(lang)
	if grammar == nil {
		return nil, fmt.Errorf("fileparser: no grammar for language %s", lang)
	}
	ts := tree_sitter.NewParser()
	if err := ts.SetLanguage(grammar); err != nil {
		return nil, fmt.Errorf("fileparser: set language %s: %w", lang, err)
	}
	p.grammars[lang] = ts
	return ts, nil
}

// Input is what the File Parser needs to analyze one file.
type Input struct {
	Path     string
	Language langspec.Language
	Source   []byte
}

// Parse implements the full File Parser pipeline from spec.md 4.C:
// UTF-8 validation, sanitization, tree-sitter parse, and an iterative
// metrics walk. It never returns an error for a bad input file — failures
// become ParseWarnings and a best-effort (possibly zero-valued)
// FileAnalysis, since one unparseable file must never abort a run
// (spec.md 7 "Error Handling Design").
func (p *Parser) Parse(in Input) (report.FileAnalysis, []report.ParseWarning) {
	analysis := report.FileAnalysis{
		Path:                 in.Path,
		Language:             in.Language.String(),
		CyclomaticComplexity: 1,
	}
	var warnings []report.ParseWarning

	sanitized, note := sanitize.Sanitize(in.Language, in.Source)
	if note != nil {
		stats := countLines(in.Source, nil)
		analysis.LinesOfCode = stats.code
		analysis.BlankLines = stats.blank
		warnings = append(warnings, report.ParseWarning{
			Path:    in.Path,
			Kind:    report.WarningUnsupportedEncoding,
			Message: note.Message,
		})
		return analysis, warnings
	}
	if len(sanitized) != len(in.Source) {
		warnings = append(warnings, report.ParseWarning{
			Path:    in.Path,
			Kind:    report.WarningSanitizationNote,
			Message: "source was sanitized before parsing",
		})
	}

	ts, err := p.grammarParser(in.Language)
	if err != nil {
		stats := countLines(sanitized, nil)
		analysis.LinesOfCode = stats.code
		analysis.BlankLines = stats.blank
		warnings = append(warnings, report.ParseWarning{
			Path:    in.Path,
			Kind:    report.WarningParseError,
			Message: err.Error(),
		})
		return analysis, warnings
	}

	tree := ts.Parse(sanitized, nil)
	if tree == nil {
		stats := countLines(sanitized, nil)
		analysis.LinesOfCode = stats.code
		analysis.BlankLines = stats.blank
		warnings = append(warnings, report.ParseWarning{
			Path:    in.Path,
			Kind:    report.WarningParseError,
			Message: "tree-sitter returned no tree",
		})
		return analysis, warnings
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		warnings = append(warnings, report.ParseWarning{
			Path:    in.Path,
			Kind:    report.WarningParseError,
			Message: "source contains one or more syntax errors; metrics may be incomplete",
		})
	}

	spec := langspec.Spec(in.Language)
	m := walk(root, sanitized, spec)

	stats := countLines(sanitized, m.commentLines)
	analysis.LinesOfCode = stats.code
	analysis.BlankLines = stats.blank
	analysis.CommentLines = stats.comment

	analysis.Functions = m.functions
	analysis.Methods = m.methods
	analysis.Classes = m.classes
	analysis.CyclomaticComplexity = m.cyclomatic()
	analysis.MaxNestingDepth = m.maxNesting
	analysis.ComplexityScore = compositeScore(analysis.LinesOfCode, m.functions+m.methods, m.classes, m.cyclomatic(), m.maxNesting)

	return analysis, warnings
}

// compositeScore implements the formula from spec.md 3:
//
//	(L/100) + 0.5*sqrt(F) + 0.3*sqrt(K) + 0.4*C + 0.3*N
//
// where L = lines of code, F = function+method count, K = class count,
// C = cyclomatic complexity, N = max nesting depth.
func compositeScore(linesOfCode, functionsAndMethods, classes, cyclomatic, maxNesting int) float64 {
	return float64(linesOfCode)/100.0 +
		0.5*math.Sqrt(float64(functionsAndMethods)) +
		0.3*math.Sqrt(float64(classes)) +
		0.4*float64(cyclomatic) +
		0.3*float64(maxNesting)
}
