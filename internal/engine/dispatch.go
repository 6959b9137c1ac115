package engine

import (
	"os"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/quantmind-br/code-analyzer/internal/diag"
	"github.com/quantmind-br/code-analyzer/internal/fileparser"
	"github.com/quantmind-br/code-analyzer/internal/report"
	"github.com/quantmind-br/code-analyzer/internal/walker"
)

// dispatch fans candidates out across at most `workers` concurrent parses
// (spec.md 5), with the limit held by an errgroup.Group instead of a hand
// rolled semaphore. Each concurrent slot draws one *fileparser.Parser from
// a fixed free list sized to `workers` and returns it when done, so a
// language's grammar is compiled once per slot rather than once per file
// (spec.md 5 "Parser lifetimes" — a parser is never shared across two
// in-flight parses). Results land in an index-addressed slice rather than
// a fan-in channel, so outcome order never depends on goroutine scheduling.
// Grounded on the teacher's internal/analysis/relationship_analyzer.go
// bounded-concurrency dispatch, generalized from its raw channel semaphore
// to golang.org/x/sync/errgroup's SetLimit.
func dispatch(candidates []walker.Candidate, workers int) ([]report.FileAnalysis, []report.ParseWarning) {
	if workers < 1 {
		workers = 1
	}
	if len(candidates) == 0 {
		return nil, nil
	}
	if workers > len(candidates) {
		workers = len(candidates)
	}

	parsers := make(chan *fileparser.Parser, workers)
	for i := 0; i < workers; i++ {
		parsers <- fileparser.New()
	}
	defer func() {
		close(parsers)
		for p := range parsers {
			p.Close()
		}
	}()

	type outcome struct {
		analysis *report.FileAnalysis
		warnings []report.ParseWarning
	}
	results := make([]outcome, len(candidates))

	var g errgroup.Group
	g.SetLimit(workers)
	for i, cand := range candidates {
		i, cand := i, cand
		g.Go(func() error {
			parser := <-parsers
			a, w := parseOne(parser, cand)
			parsers <- parser
			results[i] = outcome{analysis: a, warnings: w}
			return nil
		})
	}
	_ = g.Wait() // parseOne never returns a fatal error; per-file problems become warnings

	var files []report.FileAnalysis
	var warnings []report.ParseWarning
	seen := make(map[uint64]struct{})

	for _, r := range results {
		if r.analysis != nil {
			files = append(files, *r.analysis)
		}
		for _, w := range r.warnings {
			key := warningKey(w)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			warnings = append(warnings, w)
		}
	}

	return files, warnings
}

// parseOne reads one candidate's bytes and runs the File Parser over them.
// A read failure is a non-fatal per-file issue (spec.md 7), not a run
// abort; an internal panic from the grammar bindings is recovered and
// downgraded to a warning too, per spec.md 9 "Error channels" — the only
// fatal errors are configuration and root-level I/O.
func parseOne(parser *fileparser.Parser, cand walker.Candidate) (analysis *report.FileAnalysis, warnings []report.ParseWarning) {
	defer func() {
		if r := recover(); r != nil {
			diag.Tracef("recovered panic parsing %s: %v", cand.AbsPath, r)
			analysis = nil
			warnings = []report.ParseWarning{{
				Path:    cand.AbsPath,
				Kind:    report.WarningParseError,
				Message: "internal parser error",
			}}
		}
	}()

	src, err := os.ReadFile(cand.AbsPath)
	if err != nil {
		return nil, []report.ParseWarning{{
			Path:    cand.AbsPath,
			Kind:    report.WarningParseError,
			Message: "could not read file: " + err.Error(),
		}}
	}

	a, w := parser.Parse(fileparser.Input{
		Path:     cand.AbsPath,
		Language: cand.Language,
		Source:   src,
	})
	return &a, w
}

func warningKey(w report.ParseWarning) uint64 {
	return xxhash.Sum64String(w.Path + "\x00" + string(w.Kind) + "\x00" + w.Message)
}
