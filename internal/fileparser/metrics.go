package fileparser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/quantmind-br/code-analyzer/internal/langspec"
)

// metrics is everything the walk collects from one file's CST, short of
// the composite score (computed by the caller once lines-of-code is also
// known).
type metrics struct {
	functions       int
	methods         int
	classes         int
	controlFlow     int
	logicalOperators int
	maxNesting      int
	commentLines    map[int]struct{} // 0-based row -> "this row is pure comment"
}

func (m metrics) cyclomatic() int {
	return 1 + m.controlFlow + m.logicalOperators
}

// frame is one explicit-stack entry for the iterative walk below. Bookkeeping
// fields decided at enter time are replayed at exit time so enter/exit stay
// symmetric without recomputing node-kind lookups twice.
type frame struct {
	node       *tree_sitter.Node
	childIdx   uint
	childCount uint
	entered    bool
	isClass    bool
	isFuncLike bool
	isNesting  bool
	// isControlConstruct marks a nesting_kind match that is NOT itself a
	// generic body wrapper (an if/for/while/switch/try/catch node, as
	// opposed to the block/compound_statement/statement_block that holds
	// its body). Consulted by that body wrapper's own enter-time check so
	// the pair doesn't count as two levels of nesting for one branch.
	isControlConstruct bool
}

// wrapperKinds are the generic body-container node kinds that every
// control-flow construct in the registry is paired with (a block for
// Rust/Python/Java/Go, a compound_statement for C/C++, a statement_block
// for JS/TS). Counting both the construct and its own wrapper would double
// every branch's contribution to max_nesting_depth.
var wrapperKinds = map[string]struct{}{
	"block":              {},
	"compound_statement": {},
	"statement_block":    {},
}

// walk computes metrics for root by iterating the CST with an explicit
// stack instead of recursion, per the File Parser's contract that one
// pathologically deep source file must never blow the Go call stack.
// Grounded on the teacher's recursive tree_sitter walks (e.g.
// internal/parser/unified_extractor.go), generalized to an iterative
// stack machine and to metrics-only bookkeeping instead of symbol capture.
func walk(root *tree_sitter.Node, src []byte, spec *langspec.LanguageSpec) metrics {
	m := metrics{commentLines: make(map[int]struct{})}
	if root == nil || spec == nil {
		return m
	}

	lines := splitLines(src)

	classBodyDepth := 0
	nestingDepthStack := []int{0}

	stack := []*frame{{node: root, childCount: root.ChildCount()}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]

		if !top.entered {
			top.entered = true
			kind := top.node.Kind()

			if spec.CommentKinds.Contains(kind) {
				recordComment(top.node, src, lines, m.commentLines)
			}
			if spec.ControlFlowKinds.Contains(kind) {
				m.controlFlow++
			}
			if spec.LogicalOperatorKinds.Contains(kind) {
				m.logicalOperators++
			}
			if spec.NestingKinds.Contains(kind) {
				_, isWrapper := wrapperKinds[kind]

				// A wrapper immediately inside the construct it belongs to
				// (the if's own block, the for's own compound_statement)
				// is the same branch, not one level deeper. A function or
				// method's own body wrapper still counts as the first level
				// of its freshly reset depth counter, except in Rust, where
				// a function_item's body block is not a nesting level.
				suppressed := false
				if isWrapper && len(stack) >= 2 {
					parent := stack[len(stack)-2]
					suppressed = parent.isControlConstruct ||
						(spec.Language == langspec.Rust && parent.isFuncLike)
				}

				if !suppressed {
					top.isNesting = true
					last := len(nestingDepthStack) - 1
					nestingDepthStack[last]++
					if nestingDepthStack[last] > m.maxNesting {
						m.maxNesting = nestingDepthStack[last]
					}
				}
				top.isControlConstruct = !isWrapper
			}

			if spec.ClassKinds.Contains(kind) && classifiesAsClass(spec, kind, top.node) {
				top.isClass = true
				classBodyDepth++
				m.classes++
			}

			if spec.ContextResolvedMethods {
				if spec.FunctionKinds.Contains(kind) {
					top.isFuncLike = true
					if classBodyDepth > 0 {
						m.methods++
					} else {
						m.functions++
					}
				}
			} else {
				if spec.FunctionKinds.Contains(kind) {
					top.isFuncLike = true
					m.functions++
				}
				if spec.MethodKinds.Contains(kind) {
					top.isFuncLike = true
					m.methods++
				}
			}

			if top.isFuncLike {
				nestingDepthStack = append(nestingDepthStack, 0)
			}
		}

		if top.childIdx < top.childCount {
			child := top.node.Child(top.childIdx)
			top.childIdx++
			if child != nil {
				stack = append(stack, &frame{node: child, childCount: child.ChildCount()})
			}
			continue
		}

		// Exit: undo in the reverse order of the enter-time side effects.
		if top.isFuncLike {
			nestingDepthStack = nestingDepthStack[:len(nestingDepthStack)-1]
		}
		if top.isClass {
			classBodyDepth--
		}
		if top.isNesting {
			last := len(nestingDepthStack) - 1
			nestingDepthStack[last]--
		}
		stack = stack[:len(stack)-1]
	}

	return m
}

// classifiesAsClass resolves the one language-specific wrinkle in the
// registry: Go's type_spec node covers type aliases, struct types and
// interface types alike, so only struct_type/interface_type children
// count as a "class" for these metrics (spec.md 4.A).
func classifiesAsClass(spec *langspec.LanguageSpec, kind string, node *tree_sitter.Node) bool {
	if spec.Language != langspec.Go || kind != "type_spec" {
		return true
	}
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return false
	}
	switch typeNode.Kind() {
	case "struct_type", "interface_type":
		return true
	default:
		return false
	}
}

// recordComment marks every physical row a comment node fully occupies
// (ignoring leading/trailing whitespace) as a pure-comment line. A line
// that mixes code and a trailing comment is left for the code classifier
// in countLines, since it does contain real code.
func recordComment(node *tree_sitter.Node, src []byte, lines []lineSpan, commentLines map[int]struct{}) {
	startPos := node.StartPosition()
	endPos := node.EndPosition()
	startRow := int(startPos.Row)
	endRow := int(endPos.Row)

	if startRow >= len(lines) || endRow >= len(lines) {
		return
	}

	if startRow == endRow {
		ln := lines[startRow]
		prefix := sliceClamp(src, ln.Start, ln.Start+int(startPos.Column))
		suffix := sliceClamp(src, ln.Start+int(endPos.Column), ln.End)
		if isBlank(prefix) && isBlank(suffix) {
			commentLines[startRow] = struct{}{}
		}
		return
	}

	firstLine := lines[startRow]
	prefix := sliceClamp(src, firstLine.Start, firstLine.Start+int(startPos.Column))
	if isBlank(prefix) {
		commentLines[startRow] = struct{}{}
	}

	for row := startRow + 1; row < endRow; row++ {
		commentLines[row] = struct{}{}
	}

	lastLine := lines[endRow]
	suffix := sliceClamp(src, lastLine.Start+int(endPos.Column), lastLine.End)
	if isBlank(suffix) {
		commentLines[endRow] = struct{}{}
	}
}

func sliceClamp(src []byte, start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end > len(src) {
		end = len(src)
	}
	if start >= end {
		return nil
	}
	return src[start:end]
}
