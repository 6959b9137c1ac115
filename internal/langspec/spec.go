package langspec

// LanguageSpec is the immutable, statically allocated node-kind table for one
// Language, per spec.md 4.A. Every field is a KindSet of tree-sitter grammar
// symbol names. Where a language's grammar uses the same node kind for both
// free functions and methods (Rust, Python, C++), FunctionKinds and
// MethodKinds are set-equal on purpose: the File Parser resolves the
// distinction at walk time from "inside class body" context, not from the
// registry (spec.md 4.A, "Free function vs. method").
type LanguageSpec struct {
	Language Language

	FunctionKinds         KindSet
	MethodKinds           KindSet
	ClassKinds            KindSet
	ControlFlowKinds      KindSet
	LogicalOperatorKinds  KindSet
	CommentKinds          KindSet
	NestingKinds          KindSet

	// ContextResolvedMethods is true for languages whose grammar does not
	// distinguish a method declaration from a free function declaration at
	// the node-kind level (Rust, Python, C++): the walker's class-body stack
	// is authoritative there. False for JS, Java, Go, where the node kind
	// itself settles it.
	ContextResolvedMethods bool
}

var registry [Go + 1]*LanguageSpec

func register(spec *LanguageSpec) {
	registry[spec.Language] = spec
}

// Spec returns the static LanguageSpec for lang. Returns nil for
// Unsupported.
func Spec(lang Language) *LanguageSpec {
	if lang <= Unsupported || int(lang) >= len(registry) {
		return nil
	}
	return registry[lang]
}

func init() {
	jsControlFlow := newKindSet(
		"if_statement", "for_statement", "for_in_statement", "for_of_statement",
		"while_statement", "do_statement", "switch_case", "catch_clause",
		"ternary_expression",
	)
	jsLogical := newKindSet("&&", "||", "??")
	jsNesting := newKindSet(
		"if_statement", "for_statement", "for_in_statement", "for_of_statement",
		"while_statement", "do_statement", "switch_case", "catch_clause",
		"statement_block",
	)

	register(&LanguageSpec{
		Language:             JavaScript,
		FunctionKinds:        newKindSet("function_declaration", "function_expression", "arrow_function", "generator_function_declaration"),
		MethodKinds:          newKindSet("method_definition"),
		ClassKinds:           newKindSet("class_declaration"),
		ControlFlowKinds:     jsControlFlow,
		LogicalOperatorKinds: jsLogical,
		CommentKinds:         newKindSet("comment"),
		NestingKinds:         jsNesting,
	})

	register(&LanguageSpec{
		Language:             TypeScript,
		FunctionKinds:        newKindSet("function_declaration", "function_expression", "arrow_function", "generator_function_declaration", "function_signature"),
		MethodKinds:          newKindSet("method_definition", "method_signature"),
		ClassKinds:           newKindSet("class_declaration", "interface_declaration", "enum_declaration", "type_alias_declaration"),
		ControlFlowKinds:     jsControlFlow,
		LogicalOperatorKinds: jsLogical,
		CommentKinds:         newKindSet("comment"),
		NestingKinds:         jsNesting,
	})

	// TSX reuses the TypeScript metric tables verbatim (spec.md 4.A): it is
	// a parse-time grammar/sanitization distinction, not a metrics one.
	register(&LanguageSpec{
		Language:             TSX,
		FunctionKinds:        newKindSet("function_declaration", "function_expression", "arrow_function", "generator_function_declaration", "function_signature"),
		MethodKinds:          newKindSet("method_definition", "method_signature"),
		ClassKinds:           newKindSet("class_declaration", "interface_declaration", "enum_declaration", "type_alias_declaration"),
		ControlFlowKinds:     jsControlFlow,
		LogicalOperatorKinds: jsLogical,
		CommentKinds:         newKindSet("comment"),
		NestingKinds:         jsNesting,
	})

	register(&LanguageSpec{
		Language:             Rust,
		FunctionKinds:        newKindSet("function_item"),
		MethodKinds:          newKindSet("function_item"),
		ClassKinds:           newKindSet("struct_item", "enum_item", "union_item", "trait_item", "impl_item"),
		ControlFlowKinds:     newKindSet("if_expression", "match_arm", "while_expression", "while_let_expression", "for_expression", "loop_expression", "try_expression"),
		LogicalOperatorKinds: newKindSet("&&", "||"),
		CommentKinds:         newKindSet("line_comment", "block_comment"),
		NestingKinds:         newKindSet("if_expression", "match_expression", "while_expression", "while_let_expression", "for_expression", "loop_expression", "block"),
		ContextResolvedMethods: true,
	})

	register(&LanguageSpec{
		Language:             Python,
		FunctionKinds:        newKindSet("function_definition"),
		MethodKinds:          newKindSet("function_definition"),
		ClassKinds:           newKindSet("class_definition"),
		ControlFlowKinds:     newKindSet("if_statement", "elif_clause", "for_statement", "while_statement", "try_statement", "except_clause", "conditional_expression", "match_statement", "case_clause"),
		LogicalOperatorKinds: newKindSet("and", "or"),
		CommentKinds:         newKindSet("comment"),
		NestingKinds:         newKindSet("if_statement", "for_statement", "while_statement", "try_statement", "with_statement", "block"),
		ContextResolvedMethods: true,
	})

	register(&LanguageSpec{
		Language:             Java,
		FunctionKinds:        newKindSet(), // Java has no free functions: every method_declaration has an enclosing class.
		MethodKinds:          newKindSet("method_declaration", "constructor_declaration"),
		ClassKinds:           newKindSet("class_declaration", "interface_declaration", "enum_declaration", "record_declaration"),
		ControlFlowKinds:     newKindSet("if_statement", "for_statement", "enhanced_for_statement", "while_statement", "do_statement", "switch_label", "catch_clause", "ternary_expression"),
		LogicalOperatorKinds: newKindSet("&&", "||"),
		CommentKinds:         newKindSet("line_comment", "block_comment"),
		NestingKinds:         newKindSet("if_statement", "for_statement", "enhanced_for_statement", "while_statement", "do_statement", "switch_block", "catch_clause", "block"),
	})

	cControlFlow := newKindSet("if_statement", "for_statement", "while_statement", "do_statement", "case_statement")
	cLogical := newKindSet("&&", "||")
	cComment := newKindSet("comment")
	cNesting := newKindSet("if_statement", "for_statement", "while_statement", "switch_statement", "compound_statement")

	register(&LanguageSpec{
		Language:             C,
		FunctionKinds:        newKindSet("function_definition"),
		MethodKinds:          newKindSet(), // C has no class-like scope, so no methods.
		ClassKinds:           newKindSet("struct_specifier", "union_specifier", "enum_specifier"),
		ControlFlowKinds:     cControlFlow,
		LogicalOperatorKinds: cLogical,
		CommentKinds:         cComment,
		NestingKinds:         cNesting,
	})

	register(&LanguageSpec{
		Language:             Cpp,
		FunctionKinds:        newKindSet("function_definition"),
		MethodKinds:          newKindSet("function_definition"),
		ClassKinds:           newKindSet("class_specifier", "struct_specifier", "union_specifier", "enum_specifier"),
		ControlFlowKinds:     newKindSet("if_statement", "for_statement", "while_statement", "do_statement", "case_statement", "catch_clause"),
		LogicalOperatorKinds: cLogical,
		CommentKinds:         cComment,
		NestingKinds:         cNesting,
		ContextResolvedMethods: true,
	})

	register(&LanguageSpec{
		Language:             Go,
		FunctionKinds:        newKindSet("function_declaration"),
		MethodKinds:          newKindSet("method_declaration"),
		ClassKinds:           newKindSet("type_spec"), // struct_type / interface_type children distinguish the declaration at walk time.
		ControlFlowKinds:     newKindSet("if_statement", "for_statement", "expression_case", "type_case", "communication_case"), // one per case arm; the switch/select container itself does not count.
		LogicalOperatorKinds: newKindSet("&&", "||"),
		CommentKinds:         newKindSet("comment"),
		NestingKinds:         newKindSet("if_statement", "for_statement", "switch_statement", "block"),
	})
}
