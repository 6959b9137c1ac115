package fileparser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/quantmind-br/code-analyzer/internal/langspec"
)

// grammarFor returns the tree-sitter grammar for lang. Adapted from the
// teacher's internal/parser/parser_language_setup.go, which builds one
// *tree_sitter.Language per extension at parser construction time; here we
// build it on demand per langspec.Language, since the Language Registry
// already owns the extension-to-language mapping.
//
// TSX uses the dedicated LanguageTSX grammar (not LanguageTypescript) so
// JSX syntax parses, while metrics for .tsx files still dispatch through
// the TypeScript LanguageSpec node-kind tables per the language registry.
func grammarFor(lang langspec.Language) *tree_sitter.Language {
	switch lang {
	case langspec.Go:
		return tree_sitter.NewLanguage(tree_sitter_go.Language())
	case langspec.JavaScript:
		return tree_sitter.NewLanguage(tree_sitter_javascript.Language())
	case langspec.TypeScript:
		return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
	case langspec.TSX:
		return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTSX())
	case langspec.Python:
		return tree_sitter.NewLanguage(tree_sitter_python.Language())
	case langspec.Java:
		return tree_sitter.NewLanguage(tree_sitter_java.Language())
	case langspec.Rust:
		return tree_sitter.NewLanguage(tree_sitter_rust.Language())
	case langspec.C, langspec.Cpp:
		return tree_sitter.NewLanguage(tree_sitter_cpp.Language())
	default:
		return nil
	}
}
