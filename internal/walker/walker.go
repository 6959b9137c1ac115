// Package walker is the File Walker (spec.md 4.D): it discovers candidate
// source files under a root, applying gitignore rules, user exclude globs,
// a hidden-file policy, a size cap and the Language Registry's supported-
// extension filter, and returns a deterministic, path-sorted list together
// with a WalkStats tally of every skip reason. Adapted from the teacher's
// internal/scanner walk loop, generalized from its fixed extension list to
// langspec.IsSupported and from its single gitignore file to a stack of
// ignore files accumulated per directory.
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/quantmind-br/code-analyzer/internal/config"
	"github.com/quantmind-br/code-analyzer/internal/langspec"
	"github.com/quantmind-br/code-analyzer/internal/report"
)

// Candidate is one file the Walker selected for parsing.
type Candidate struct {
	Path     string // relative to the walk root, slash-separated
	AbsPath  string
	Language langspec.Language
	Size     int64
}

// Walk discovers files under root according to filter, returning candidates
// sorted by Path and the stats of what was skipped and why. A root that is
// itself a regular file is treated as a one-file walk (spec.md 4.D); if that
// file fails the language or size filter, Walk returns an error.
func Walk(root string, filter config.FilterConfig) ([]Candidate, report.WalkStats, error) {
	var stats report.WalkStats

	info, err := os.Stat(root)
	if err != nil {
		return nil, stats, err
	}

	if !info.IsDir() {
		stats.TotalEntriesScanned = 1
		cand, skip := evaluateFile(root, filepath.Base(root), info, filter, &stats)
		if skip {
			return nil, stats, fmt.Errorf("%s: not analyzable (unsupported or disallowed language, or over the size limit)", root)
		}
		stats.FilesFound = 1
		return []Candidate{cand}, stats, nil
	}

	w := &walkState{
		root:    root,
		filter:  filter,
		ignores: map[string]*gitignoreMatcher{},
	}
	if err := w.walkDir(root, ""); err != nil {
		return nil, stats, err
	}

	sort.Slice(w.out, func(i, j int) bool { return w.out[i].Path < w.out[j].Path })
	w.stats.FilesFound = len(w.out)
	return w.out, w.stats, nil
}

type walkState struct {
	root    string
	filter  config.FilterConfig
	ignores map[string]*gitignoreMatcher // dir (relative path) -> accumulated matcher
	out     []Candidate
	stats   report.WalkStats
}

// walkDir recursively visits dir (absolute path), relDir being its path
// relative to the root ("" at the root itself). It is iterative per
// directory level but recurses across directories, matching the teacher's
// filepath.WalkDir-based traversal; directory depth in real repositories
// is bounded, unlike the per-file CST depth the File Parser must walk
// iteratively.
func (w *walkState) walkDir(dir, relDir string) error {
	w.stats.DirectoriesScanned++

	matcher := w.matcherFor(relDir)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		w.stats.TotalEntriesScanned++
		name := entry.Name()
		relPath := name
		if relDir != "" {
			relPath = relDir + "/" + name
		}

		if isHiddenName(name) && !w.filter.IncludeHidden {
			w.stats.FilesSkippedHidden++
			continue
		}

		if entry.IsDir() {
			if w.filter.RespectGitignore && matcher.shouldIgnore(relPath, true) {
				w.stats.FilesSkippedIgnore++
				continue
			}
			if matchesAnyExclude(w.filter.ExcludeGlobs, relPath+"/") {
				w.stats.FilesSkippedIgnore++
				continue
			}
			if err := w.walkDir(filepath.Join(dir, name), relPath); err != nil {
				return err
			}
			continue
		}

		if w.filter.RespectGitignore && matcher.shouldIgnore(relPath, false) {
			w.stats.FilesSkippedIgnore++
			continue
		}
		if matchesAnyExclude(w.filter.ExcludeGlobs, relPath) {
			w.stats.FilesSkippedIgnore++
			continue
		}

		info, err := entry.Info()
		if err != nil {
			return err
		}
		cand, skip := evaluateFile(filepath.Join(dir, name), relPath, info, w.filter, &w.stats)
		if skip {
			continue
		}
		w.out = append(w.out, cand)
	}
	return nil
}

// matcherFor returns the gitignore matcher effective at relDir, loading
// ".gitignore" plus any FilterConfig.ExtraIgnoreFiles found along the path
// from root to relDir, inheriting patterns from ancestor directories the
// way git itself does.
func (w *walkState) matcherFor(relDir string) *gitignoreMatcher {
	if !w.filter.RespectGitignore {
		return newGitignoreMatcher()
	}
	if m, ok := w.ignores[relDir]; ok {
		return m
	}

	var parent *gitignoreMatcher
	if relDir == "" {
		parent = newGitignoreMatcher()
	} else {
		parent = w.matcherFor(filepath.Dir(relDir))
		if filepath.Dir(relDir) == "." {
			parent = w.matcherFor("")
		}
	}

	m := &gitignoreMatcher{patterns: append([]ignorePattern{}, parent.patterns...)}
	dirAbs := filepath.Join(w.root, relDir)
	_ = m.loadFile(filepath.Join(dirAbs, ".gitignore"))
	for _, extra := range w.filter.ExtraIgnoreFiles {
		_ = m.loadFile(filepath.Join(dirAbs, extra))
	}
	w.ignores[relDir] = m
	return m
}

// FilterPaths runs the same language/size filter pipeline as Walk over an
// externally supplied file list, instead of a directory scan. It is the
// path the Analysis Engine takes when a ChangedFileProvider is active
// (spec.md 6 "Changed-file provider interface"): gitignore and hidden-file
// policy don't apply to an explicit list, but the size cap and language
// filter still do. Paths that don't exist or aren't regular files are
// skipped and counted as a language-filter miss, matching the "skips are
// not warnings" rule of spec.md 7.
func FilterPaths(paths []string, filter config.FilterConfig) ([]Candidate, report.WalkStats, error) {
	var stats report.WalkStats
	var out []Candidate

	for _, p := range paths {
		stats.TotalEntriesScanned++
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			stats.FilesSkippedLanguage++
			continue
		}
		cand, skip := evaluateFile(p, p, info, filter, &stats)
		if skip {
			continue
		}
		out = append(out, cand)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	stats.FilesFound = len(out)
	return out, stats, nil
}

func evaluateFile(absPath, relPath string, info os.FileInfo, filter config.FilterConfig, stats *report.WalkStats) (Candidate, bool) {
	lang := langspec.Detect(relPath)
	if lang == langspec.Unsupported {
		stats.FilesSkippedLanguage++
		return Candidate{}, true
	}
	if len(filter.LanguagesAllowed) > 0 && !containsLanguageName(filter.LanguagesAllowed, lang) {
		stats.FilesSkippedLanguage++
		return Candidate{}, true
	}
	if filter.MaxFileSizeBytes > 0 && info.Size() > filter.MaxFileSizeBytes {
		stats.FilesSkippedSize++
		return Candidate{}, true
	}

	return Candidate{
		Path:     filepath.ToSlash(relPath),
		AbsPath:  absPath,
		Language: lang,
		Size:     info.Size(),
	}, false
}

func containsLanguageName(allowed []string, lang langspec.Language) bool {
	name := lang.String()
	for _, a := range allowed {
		if strings.EqualFold(a, name) {
			return true
		}
	}
	return false
}

func matchesAnyExclude(globs []string, relPath string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, relPath); ok {
			return true
		}
	}
	return false
}

func isHiddenName(name string) bool {
	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
