package walker

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// gitignoreMatcher holds the compiled patterns loaded from one or more
// gitignore-style files. Adapted from the teacher's
// internal/config/gitignore.go: same pattern model (negate/directory/
// absolute) and fast-path prefix/suffix/exact matching ahead of a regex
// fallback, trimmed to what the Walker needs.
type gitignoreMatcher struct {
	patterns []ignorePattern
}

type ignorePattern struct {
	raw       string
	negate    bool
	directory bool
	absolute  bool

	kind     patternKind
	prefix   string
	suffix   string
	compiled *regexp.Regexp
}

type patternKind int

const (
	kindExact patternKind = iota
	kindPrefix
	kindSuffix
	kindWildcard
)

func newGitignoreMatcher() *gitignoreMatcher {
	return &gitignoreMatcher{}
}

// loadFile reads one ignore file (".gitignore", ".ignore", ...) if it
// exists; a missing file is not an error.
func (m *gitignoreMatcher) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		m.patterns = append(m.patterns, parseIgnoreLine(line))
	}
	return scanner.Err()
}

func parseIgnoreLine(line string) ignorePattern {
	p := ignorePattern{raw: line}

	if strings.HasPrefix(line, "!") {
		p.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		p.directory = true
		line = strings.TrimSuffix(line, "/")
	}
	if strings.HasPrefix(line, "/") {
		p.absolute = true
		line = line[1:]
	}

	p.raw = line
	p.kind, p.prefix, p.suffix, p.compiled = analyzeIgnorePattern(line)
	return p
}

func analyzeIgnorePattern(pattern string) (patternKind, string, string, *regexp.Regexp) {
	if !strings.ContainsAny(pattern, "*?[") {
		return kindExact, pattern, pattern, nil
	}
	if strings.Contains(pattern, "*") && !strings.ContainsAny(pattern, "?[") {
		if strings.HasPrefix(pattern, "*") && !strings.Contains(pattern[1:], "*") {
			return kindSuffix, "", pattern[1:], nil
		}
		if strings.HasSuffix(pattern, "*") && !strings.Contains(pattern[:len(pattern)-1], "*") {
			return kindPrefix, pattern[:len(pattern)-1], "", nil
		}
	}
	regex := globToRegex(pattern)
	compiled, err := regexp.Compile(regex)
	if err != nil {
		return kindWildcard, "", "", nil
	}
	return kindWildcard, "", "", compiled
}

func globToRegex(pattern string) string {
	regex := regexp.QuoteMeta(pattern)
	regex = strings.ReplaceAll(regex, `\*`, `.*`)
	regex = strings.ReplaceAll(regex, `\?`, `.`)
	regex = strings.ReplaceAll(regex, `\[`, `[`)
	regex = strings.ReplaceAll(regex, `\]`, `]`)
	return "^" + regex + "$"
}

// shouldIgnore reports whether relPath (slash-separated, relative to the
// walk root) should be ignored given everything loaded so far. Later
// patterns win, and a negated match un-ignores, matching git's own
// last-match-wins semantics.
func (m *gitignoreMatcher) shouldIgnore(relPath string, isDir bool) bool {
	relPath = filepath.ToSlash(relPath)
	ignored := false
	for _, p := range m.patterns {
		if matchesIgnorePattern(p, relPath, isDir) {
			ignored = !p.negate
		}
	}
	return ignored
}

func matchesIgnorePattern(p ignorePattern, path string, isDir bool) bool {
	if p.directory {
		if isDir {
			return fastMatch(p, path) || dirPrefixMatch(p.raw, path)
		}
		return strings.HasPrefix(path, p.raw+"/") || fastMatch(p, path)
	}

	if p.absolute {
		return fastMatch(p, path)
	}

	if fastMatch(p, path) {
		return true
	}
	parts := strings.Split(path, "/")
	for i := range parts {
		if fastMatch(p, strings.Join(parts[i:], "/")) {
			return true
		}
	}
	return false
}

func dirPrefixMatch(basePattern, path string) bool {
	return path == basePattern || strings.HasPrefix(path, basePattern+"/")
}

func fastMatch(p ignorePattern, path string) bool {
	switch p.kind {
	case kindExact:
		return p.raw == path
	case kindPrefix:
		return strings.HasPrefix(path, p.prefix)
	case kindSuffix:
		return strings.HasSuffix(path, p.suffix)
	case kindWildcard:
		if p.compiled != nil {
			return p.compiled.MatchString(path)
		}
		matched, _ := filepath.Match(p.raw, path)
		return matched
	default:
		return false
	}
}
