// Command codelens is the thin CLI shell around the core analysis engine.
// It only adapts flags into a config.RunConfig, calls engine.Engine.Analyze,
// writes the JSON report, and returns the exit codes from spec.md 6. Table
// rendering, progress bars, and Markdown/CSV writers are out of scope
// (spec.md 1) and are not implemented here. Grounded on the teacher's
// cmd/lci/main.go urfave/cli/v2 shape.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/quantmind-br/code-analyzer/internal/config"
	"github.com/quantmind-br/code-analyzer/internal/engine"
	internalerrors "github.com/quantmind-br/code-analyzer/internal/errors"
)

func main() {
	app := &cli.App{
		Name:  "codelens",
		Usage: "identify refactoring candidates in a multi-language source tree",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "Path to a .kdl or .toml config file"},
			&cli.IntFlag{Name: "min-lines", Usage: "Only report files with at least this many lines of code"},
			&cli.IntFlag{Name: "max-lines", Usage: "Only report files with at most this many lines of code"},
			&cli.StringSliceFlag{Name: "languages", Usage: "Restrict to these languages (e.g. --languages go --languages rust)"},
			&cli.StringSliceFlag{Name: "exclude", Aliases: []string{"e"}, Usage: "Additional glob patterns to exclude"},
			&cli.BoolFlag{Name: "include-hidden", Usage: "Visit hidden files and directories"},
			&cli.Float64Flag{Name: "max-file-size-mb", Usage: "Size cap for discovered files, in MiB", Value: 10},
			&cli.StringFlag{Name: "sort", Value: string(config.SortComplexity), Usage: "Terminal display order: lines|functions|methods|classes|complexity|cyclomatic|nesting|path"},
			&cli.IntFlag{Name: "limit", Usage: "Terminal display cap (0 = unbounded)"},
			&cli.Float64Flag{Name: "max-complexity-score", Usage: "Override the complexity_score threshold"},
			&cli.IntFlag{Name: "max-cc", Usage: "Override the cyclomatic_complexity threshold"},
			&cli.IntFlag{Name: "max-loc", Usage: "Override the lines_of_code threshold"},
			&cli.IntFlag{Name: "max-functions-per-file", Usage: "Override the functions-per-file threshold"},
			&cli.StringFlag{Name: "only-changed-since", Usage: "Restrict analysis to files changed since this commit-ref"},
			&cli.BoolFlag{Name: "ci", Usage: "Exit non-zero when the candidate count exceeds --ci-max-candidates"},
			&cli.IntFlag{Name: "ci-max-candidates", Value: 0, Usage: "Candidate budget for --ci mode"},
			&cli.IntFlag{Name: "workers", Usage: "Parallel worker count (0 = runtime.NumCPU())"},
			&cli.StringFlag{Name: "emit", Value: "full", Usage: "Report shape to write: full|files|summary"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "codelens:", err)
		os.Exit(exitCodeFor(err))
	}
}

func exitCodeFor(err error) int {
	if _, ok := err.(*ciExceededError); ok {
		return 2
	}
	return 1
}

// ciExceededError signals spec.md 6's exit code 2: CI mode with more
// candidates than the configured budget. It is not a runtime failure, so
// it carries no underlying cause.
type ciExceededError struct {
	count, max int
}

func (e *ciExceededError) Error() string {
	return fmt.Sprintf("%d refactoring candidates exceed --ci-max-candidates=%d", e.count, e.max)
}

func run(c *cli.Context) error {
	target := c.Args().First()
	if target == "" {
		target = "."
	}

	fileCfg, err := config.Load(c.String("config"))
	if err != nil {
		return internalerrors.New(internalerrors.ErrorTypeConfig, "load config", err)
	}

	cfg := config.DefaultRunConfig()
	cfg.TargetPath = target
	cfg.Thresholds = fileCfg.Thresholds
	cfg.Filter.LanguagesAllowed = fileCfg.Languages
	cfg.Filter.ExcludeGlobs = fileCfg.Exclude
	cfg.Filter.IncludeHidden = fileCfg.IncludeHidden
	if fileCfg.MaxFileSizeMB > 0 {
		cfg.Filter.MaxFileSizeBytes = int64(fileCfg.MaxFileSizeMB) * 1024 * 1024
	}

	applyCLIOverrides(c, &cfg)

	if cfg.MaxLines > 0 && cfg.MinLines > cfg.MaxLines {
		return internalerrors.New(internalerrors.ErrorTypeConfig, "validate flags", fmt.Errorf("--min-lines (%d) exceeds --max-lines (%d)", cfg.MinLines, cfg.MaxLines))
	}
	if _, err := os.Stat(cfg.TargetPath); err != nil {
		return internalerrors.New(internalerrors.ErrorTypeIO, "stat target path", err)
	}

	eng := engine.New()
	rep, err := eng.Analyze(context.Background(), cfg, nil)
	if err != nil {
		return err
	}

	var out []byte
	switch c.String("emit") {
	case "files":
		out, err = rep.MarshalFilesOnly()
	case "summary":
		out, err = rep.MarshalSummaryOnly()
	default:
		out, err = rep.MarshalFull()
	}
	if err != nil {
		return internalerrors.New(internalerrors.ErrorTypeIO, "marshal report", err)
	}
	fmt.Println(string(out))

	if cfg.CI && len(rep.Candidates) > cfg.CIMaxCandidates {
		return &ciExceededError{count: len(rep.Candidates), max: cfg.CIMaxCandidates}
	}
	return nil
}

func applyCLIOverrides(c *cli.Context, cfg *config.RunConfig) {
	if v := c.Int("min-lines"); v > 0 {
		cfg.MinLines = v
	}
	if v := c.Int("max-lines"); v > 0 {
		cfg.MaxLines = v
	}
	if langs := c.StringSlice("languages"); len(langs) > 0 {
		cfg.Filter.LanguagesAllowed = langs
	}
	if ex := c.StringSlice("exclude"); len(ex) > 0 {
		cfg.Filter.ExcludeGlobs = append(cfg.Filter.ExcludeGlobs, ex...)
	}
	if c.Bool("include-hidden") {
		cfg.Filter.IncludeHidden = true
	}
	if v := c.Float64("max-file-size-mb"); c.IsSet("max-file-size-mb") && v > 0 {
		cfg.Filter.MaxFileSizeBytes = int64(v * 1024 * 1024)
	}
	if v := c.String("sort"); v != "" {
		cfg.Sort = config.SortKey(v)
	}
	if v := c.Int("limit"); v > 0 {
		cfg.Limit = v
	}
	if v := c.Float64("max-complexity-score"); v > 0 {
		cfg.Thresholds.MaxComplexityScore = v
	}
	if v := c.Int("max-cc"); v > 0 {
		cfg.Thresholds.MaxCyclomaticComplexity = v
	}
	if v := c.Int("max-loc"); v > 0 {
		cfg.Thresholds.MaxLinesOfCode = v
	}
	if v := c.Int("max-functions-per-file"); v > 0 {
		cfg.Thresholds.MaxFunctions = v
	}
	if v := c.String("only-changed-since"); v != "" {
		cfg.OnlyChangedSince = v
	}
	cfg.CI = c.Bool("ci")
	cfg.CIMaxCandidates = c.Int("ci-max-candidates")
	if v := c.Int("workers"); v > 0 {
		cfg.Workers = v
	}
}
