package engine

import (
	"sort"

	"github.com/quantmind-br/code-analyzer/internal/report"
)

// topNFiles bounds how many entries the ProjectSummary's largest/most
// complex file lists carry (spec.md 3 "top-N largest files, top-N most
// complex files"). spec.md leaves N unspecified; 10 mirrors the teacher's
// own top-N display defaults elsewhere in its summary views.
const topNFiles = 10

// filterByLines applies the CLI's min_lines/max_lines post-analysis filter
// (spec.md 6) to files. A zero maxLines means unbounded.
func filterByLines(files []report.FileAnalysis, minLines, maxLines int) []report.FileAnalysis {
	if minLines <= 0 && maxLines <= 0 {
		return files
	}
	out := files[:0:0]
	for _, f := range files {
		if minLines > 0 && f.LinesOfCode < minLines {
			continue
		}
		if maxLines > 0 && f.LinesOfCode > maxLines {
			continue
		}
		out = append(out, f)
	}
	return out
}

type languageAccumulator struct {
	fileCount int
	lines     int
	functions int
	classes   int
}

// aggregate builds the ProjectSummary from the full set of per-file
// analyses (spec.md 3 "ProjectSummary").
func aggregate(files []report.FileAnalysis) report.ProjectSummary {
	summary := report.ProjectSummary{TotalFiles: len(files)}

	byLang := make(map[string]*languageAccumulator)
	var langOrder []string

	for _, f := range files {
		summary.TotalLines += f.LinesOfCode
		summary.TotalFunctions += f.Functions
		summary.TotalMethods += f.Methods
		summary.TotalClasses += f.Classes

		acc, ok := byLang[f.Language]
		if !ok {
			acc = &languageAccumulator{}
			byLang[f.Language] = acc
			langOrder = append(langOrder, f.Language)
		}
		acc.fileCount++
		acc.lines += f.LinesOfCode
		acc.functions += f.Functions + f.Methods
		acc.classes += f.Classes
	}

	sort.Strings(langOrder)
	for _, lang := range langOrder {
		acc := byLang[lang]
		summary.ByLanguage = append(summary.ByLanguage, report.LanguageBreakdown{
			Language:     lang,
			FileCount:    acc.fileCount,
			TotalLines:   acc.lines,
			AvgFunctions: safeAvg(acc.functions, acc.fileCount),
			AvgClasses:   safeAvg(acc.classes, acc.fileCount),
		})
	}

	summary.LargestFiles = topFileRefs(files, topNFiles, func(f report.FileAnalysis) float64 {
		return float64(f.LinesOfCode)
	})
	summary.MostComplex = topFileRefs(files, topNFiles, func(f report.FileAnalysis) float64 {
		return f.ComplexityScore
	})

	return summary
}

func safeAvg(total, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

// topFileRefs returns the top n files by value(f) descending, breaking
// ties by path ascending for determinism (spec.md 8 "Determinism").
func topFileRefs(files []report.FileAnalysis, n int, value func(report.FileAnalysis) float64) []report.FileRef {
	ranked := make([]report.FileAnalysis, len(files))
	copy(ranked, files)
	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := value(ranked[i]), value(ranked[j])
		if vi != vj {
			return vi > vj
		}
		return ranked[i].Path < ranked[j].Path
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	out := make([]report.FileRef, len(ranked))
	for i, f := range ranked {
		out[i] = report.FileRef{Path: f.Path, Value: value(f)}
	}
	return out
}
