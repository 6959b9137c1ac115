// Package engine is the Analysis Engine (spec.md 4.E): it drives the
// Walker, fans the discovered files out across a parallel File Parser
// pool, aggregates the results into a ProjectSummary, runs the Candidate
// Classifier, and assembles the final AnalysisReport. Grounded on the
// teacher's internal/analysis.RelationshipAnalyzer as the orchestration
// shape (config-driven, bounded-concurrency dispatch over a file set),
// generalized from relationship extraction to structural-metric analysis.
package engine

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/quantmind-br/code-analyzer/internal/classifier"
	"github.com/quantmind-br/code-analyzer/internal/config"
	internalerrors "github.com/quantmind-br/code-analyzer/internal/errors"
	"github.com/quantmind-br/code-analyzer/internal/report"
	"github.com/quantmind-br/code-analyzer/internal/walker"
)

// Engine holds the one piece of run configuration that would otherwise
// make output nondeterministic: the clock. Every other dependency
// (thresholds, filters, worker count) travels through config.RunConfig
// per call, since a single Engine value may run many analyses.
type Engine struct {
	// Clock stamps AnalysisReport.GeneratedAt. Defaults to time.Now; tests
	// inject a fixed clock so report equality checks stay deterministic
	// (spec.md 8 "Determinism" — this module never calls time.Now/rand
	// anywhere else).
	Clock func() time.Time
}

// New returns an Engine wired to the real clock.
func New() *Engine {
	return &Engine{Clock: time.Now}
}

// Analyze runs the full pipeline from spec.md 4.E: Walker (or, when
// cfg.OnlyChangedSince is set, provider) -> parallel File Parser dispatch
// -> aggregation -> classification -> AnalysisReport. provider may be nil
// when cfg.OnlyChangedSince is empty.
func (e *Engine) Analyze(ctx context.Context, cfg config.RunConfig, provider ChangedFileProvider) (*report.AnalysisReport, error) {
	if cfg.TargetPath == "" {
		return nil, internalerrors.New(internalerrors.ErrorTypeConfig, "analyze", fmt.Errorf("target path is required"))
	}

	candidates, stats, err := e.discover(ctx, cfg, provider)
	if err != nil {
		return nil, err
	}

	workers := cfg.EffectiveWorkers()
	files, warnings := dispatch(candidates, workers)

	files = filterByLines(files, cfg.MinLines, cfg.MaxLines)
	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })

	summary := aggregate(files)
	candidatesOut := classifier.Classify(files, cfg.Thresholds)

	clock := e.Clock
	if clock == nil {
		clock = time.Now
	}

	return &report.AnalysisReport{
		GeneratedAt: clock(),
		Config:      cfg,
		Files:       files,
		Summary:     summary,
		WalkStats:   stats,
		Warnings:    warnings,
		Candidates:  candidatesOut,
	}, nil
}

// discover produces the candidate file list, either from a directory/
// single-file walk or, in changed-files-only mode, from the
// ChangedFileProvider followed by the same filter pipeline (spec.md 4.D
// "If a changed-files-only external provider is active...").
func (e *Engine) discover(ctx context.Context, cfg config.RunConfig, provider ChangedFileProvider) ([]walker.Candidate, report.WalkStats, error) {
	if cfg.OnlyChangedSince == "" {
		candidates, stats, err := walker.Walk(cfg.TargetPath, cfg.Filter)
		if err != nil {
			return nil, report.WalkStats{}, internalerrors.New(internalerrors.ErrorTypeIO, "walk "+cfg.TargetPath, err)
		}
		return candidates, stats, nil
	}

	if provider == nil {
		return nil, report.WalkStats{}, internalerrors.New(
			internalerrors.ErrorTypeConfig,
			"analyze",
			fmt.Errorf("only_changed_since=%q requires a ChangedFileProvider", cfg.OnlyChangedSince),
		)
	}

	paths, err := provider.ChangedFiles(ctx, cfg.TargetPath, cfg.OnlyChangedSince)
	if err != nil {
		return nil, report.WalkStats{}, internalerrors.New(
			internalerrors.ErrorTypeIO,
			fmt.Sprintf("resolve changed files since %q", cfg.OnlyChangedSince),
			err,
		)
	}

	candidates, stats, err := walker.FilterPaths(paths, cfg.Filter)
	if err != nil {
		return nil, report.WalkStats{}, internalerrors.New(internalerrors.ErrorTypeIO, "filter changed files", err)
	}
	return candidates, stats, nil
}
