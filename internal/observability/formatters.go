// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/optirewrite/optirewrite/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintAnalysis outputs a human-readable summary of a text analysis.
func (p *Printer) PrintAnalysis(analysis *types.RewriteAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Words:        %d\n", analysis.WordCount))
	sb.WriteString(fmt.Sprintf("Sentences:    %d\n", analysis.SentenceCount))
	sb.WriteString(fmt.Sprintf("Avg length:   %.1f words\n", analysis.AvgSentenceLength))
	sb.WriteString(fmt.Sprintf("Readability:  %.2f\n", analysis.ReadabilityScore))
	sb.WriteString(fmt.Sprintf("Complexity:   %.2f\n", analysis.ComplexityScore))
	sb.WriteString(fmt.Sprintf("Consistency:  %.2f\n", analysis.StyleConsistency))

	if len(analysis.ImprovementOpportunities) > 0 {
		sb.WriteString("\nOpportunities:\n")
		count := min(len(analysis.ImprovementOpportunities), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.ImprovementOpportunities[i]))
		}
		if len(analysis.ImprovementOpportunities) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.ImprovementOpportunities)-maxItemsToShow))
		}
	}

	if len(analysis.RecommendedStrategies) > 0 {
		sb.WriteString("\nRecommended strategies:\n")
		for _, strategy := range analysis.RecommendedStrategies {
			sb.WriteString(fmt.Sprintf("  • %s\n", strategy))
		}
	}

	p.printBox("TEXT ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintQualityScores outputs the quality metrics in catalog order.
func (p *Printer) PrintQualityScores(scores map[types.QualityMetric]float64) {
	if len(scores) == 0 {
		return
	}

	var sb strings.Builder
	for _, metric := range types.AllQualityMetrics() {
		score, ok := scores[metric]
		if !ok {
			continue
		}
		sb.WriteString(fmt.Sprintf("%-22s %.2f %s\n", metric, score, scoreBar(score)))
	}

	p.printBox("QUALITY SCORES", strings.TrimSuffix(sb.String(), "\n"))
}

// scoreBar renders a ten-segment bar for a score in [0,1].
func scoreBar(score float64) string {
	filled := int(score * 10)
	if filled > 10 {
		filled = 10
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// PrintImprovements outputs the improvement metrics with direction markers.
func (p *Printer) PrintImprovements(improvements map[string]float64) {
	if len(improvements) == 0 {
		return
	}

	keys := []string{
		types.ImprovementReadability,
		types.ImprovementComplexity,
		types.ImprovementLengthRatio,
		types.ImprovementSentenceLength,
		types.ImprovementStyleConsistency,
		types.ImprovementOverallQuality,
	}

	var sb strings.Builder
	for _, key := range keys {
		value, ok := improvements[key]
		if !ok {
			continue
		}
		marker := " "
		switch {
		case value > 0:
			marker = "+"
		case value < 0:
			marker = "-"
		}
		sb.WriteString(fmt.Sprintf("%s %-30s %+.3f\n", marker, key, value))
	}

	p.printBox("IMPROVEMENT METRICS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintChangeSummary outputs how the rewritten text differs from the original.
func (p *Printer) PrintChangeSummary(summary types.ChangeSummary) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Words:       %d → %d (%+d)\n",
		summary.OriginalWordCount, summary.RewrittenWordCount, summary.WordCountChange))
	sb.WriteString(fmt.Sprintf("Sentences:   %d → %d\n",
		summary.OriginalSentenceCount, summary.RewrittenSentenceCount))
	sb.WriteString(fmt.Sprintf("Characters:  %+d\n", summary.CharacterCountChange))
	sb.WriteString(fmt.Sprintf("Similarity:  %.2f", summary.SimilarityRatio))

	p.printBox("CHANGE SUMMARY", sb.String())
}

// PrintRecommendations outputs follow-up advice, if any.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRecommendations(recommendations []string) {
	if len(recommendations) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO FURTHER REVISIONS SUGGESTED")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	count := min(len(recommendations), maxItemsToShow)
	for i := 0; i < count; i++ {
		rec := recommendations[i]
		if len(rec) > 50 {
			rec = rec[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s\n", rec))
	}
	if len(recommendations) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recommendations)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintResult outputs the full verbose report for a rewrite result.
func (p *Printer) PrintResult(result *types.RewriteResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("ID:          %s\n", result.RewriteID))
	sb.WriteString(fmt.Sprintf("Mode:        %s / %s\n", result.Config.Mode, result.Config.Intensity))
	sb.WriteString(fmt.Sprintf("Strategies:  %d applied\n", len(result.StrategiesApplied)))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f\n", result.ConfidenceScore))
	sb.WriteString(fmt.Sprintf("Duration:    %s", result.ProcessingTime))
	p.printBox("REWRITE RESULT", sb.String())

	p.PrintQualityScores(result.QualityScores)
	p.PrintImprovements(result.ImprovementMetrics)
	p.PrintChangeSummary(result.ChangeSummary)
	p.PrintRecommendations(result.Recommendations)
}
