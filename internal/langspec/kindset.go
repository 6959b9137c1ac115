package langspec

// KindSet is an unordered, deduplicated collection of tree-sitter grammar
// node-kind names (e.g. "if_statement"). Every LanguageSpec field is one of
// these; membership tests are the hot path during the File Parser's walk,
// so this is a plain map for O(1) lookups rather than a sorted slice.
type KindSet map[string]struct{}

func newKindSet(kinds ...string) KindSet {
	s := make(KindSet, len(kinds))
	for _, k := range kinds {
		s[k] = struct{}{}
	}
	return s
}

// Contains reports whether kind is a member of the set.
func (s KindSet) Contains(kind string) bool {
	_, ok := s[kind]
	return ok
}
