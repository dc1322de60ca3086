package observability

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/optirewrite/optirewrite/internal/types"
)

func TestPrintAnalysis(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	analysis := &types.RewriteAnalysis{
		WordCount:         42,
		SentenceCount:     3,
		AvgSentenceLength: 14.0,
		ReadabilityScore:  0.55,
		ComplexityScore:   0.21,
		StyleConsistency:  0.9,
		ImprovementOpportunities: []string{
			"Reduce passive voice usage",
			"Break up long sentences",
		},
		RecommendedStrategies: []types.Strategy{
			types.StrategySentenceRestructure,
			types.StrategyEngagementBoost,
		},
	}

	p.PrintAnalysis(analysis)
	output := buf.String()

	assert.Contains(t, output, "TEXT ANALYSIS")
	assert.Contains(t, output, "42")
	assert.Contains(t, output, "Reduce passive voice usage")
	assert.Contains(t, output, "sentence_restructure")
}

func TestPrintAnalysis_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysis(nil)

	assert.Empty(t, buf.String())
}

func TestPrintQualityScores_CatalogOrder(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQualityScores(map[types.QualityMetric]float64{
		types.MetricToneAppropriateness: 0.8,
		types.MetricReadability:         0.4,
	})
	output := buf.String()

	assert.Contains(t, output, "QUALITY SCORES")
	readabilityAt := strings.Index(output, "readability")
	toneAt := strings.Index(output, "tone_appropriateness")
	assert.Greater(t, toneAt, readabilityAt, "metrics should print in catalog order")
}

func TestPrintQualityScores_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintQualityScores(nil)

	assert.Empty(t, buf.String())
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "██████████", scoreBar(1.0))
	assert.Equal(t, "░░░░░░░░░░", scoreBar(0.0))
	assert.Equal(t, "█████░░░░░", scoreBar(0.5))
}

func TestPrintImprovements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintImprovements(map[string]float64{
		types.ImprovementReadability:    0.12,
		types.ImprovementLengthRatio:    0.9,
		types.ImprovementOverallQuality: 0.71,
	})
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT METRICS")
	assert.Contains(t, output, "readability_improvement")
	assert.Contains(t, output, "overall_quality_score")
}

func TestPrintChangeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintChangeSummary(types.ChangeSummary{
		OriginalWordCount:  100,
		RewrittenWordCount: 80,
		WordCountChange:    -20,
		SimilarityRatio:    0.74,
	})
	output := buf.String()

	assert.Contains(t, output, "CHANGE SUMMARY")
	assert.Contains(t, output, "100")
	assert.Contains(t, output, "0.74")
}

func TestPrintRecommendations(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		NewPrinter(&buf).PrintRecommendations(nil)
		assert.Contains(t, buf.String(), "NO FURTHER REVISIONS SUGGESTED")
	})

	t.Run("truncates long list", func(t *testing.T) {
		var buf bytes.Buffer
		recs := []string{"one", "two", "three", "four", "five", "six", "seven"}
		NewPrinter(&buf).PrintRecommendations(recs)
		output := buf.String()
		assert.Contains(t, output, "RECOMMENDATIONS")
		assert.Contains(t, output, "and 2 more")
	})
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResult(&types.RewriteResult{
		RewriteID:       "REWRITE_ab12cd34",
		Config:          types.DefaultRewriteConfig(),
		ConfidenceScore: 0.82,
		ProcessingTime:  12 * time.Millisecond,
		QualityScores: map[types.QualityMetric]float64{
			types.MetricReadability: 0.6,
		},
	})
	output := buf.String()

	assert.Contains(t, output, "REWRITE RESULT")
	assert.Contains(t, output, "REWRITE_ab12cd34")
	assert.Contains(t, output, "0.82")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(nil)
	assert.Empty(t, buf.String())
}
