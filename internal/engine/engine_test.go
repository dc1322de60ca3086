package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/optirewrite/optirewrite/internal/types"
)

const utilizationText = "The implementation of the new system was facilitated by the team " +
	"in order to utilize the available resources. Due to the fact that the requirements " +
	"were documented by the analysts, the stakeholders made a decision to proceed. " +
	"It is important to note that the deployment has a number of dependencies, " +
	"and the committee will leverage existing infrastructure at this point in time."

func newTestEngine(opts ...Option) *Engine {
	base := []Option{WithLogger(zap.NewNop()), WithRandSeed(42)}
	return New(append(base, opts...)...)
}

func clarityConfig() *types.RewriteConfig {
	cfg := types.DefaultRewriteConfig()
	cfg.Mode = types.ModeClarity
	return &cfg
}

func TestRewrite_EndToEnd(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.Rewrite(context.Background(), utilizationText, clarityConfig())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.RewriteID, "REWRITE_"))
	assert.Len(t, result.RewriteID, len("REWRITE_")+8)
	assert.Equal(t, utilizationText, result.OriginalText)
	assert.NotEmpty(t, result.RewrittenText)
	assert.NotEqual(t, utilizationText, result.RewrittenText)

	// Clarity mode removes filler phrases.
	lower := strings.ToLower(result.RewrittenText)
	assert.NotContains(t, lower, "in order to")
	assert.NotContains(t, lower, "due to the fact that")

	assert.Contains(t, result.StrategiesApplied, types.StrategyClarityImprovement)
	assert.Contains(t, result.StrategiesApplied, types.StrategySentenceRestructure)
	assert.Contains(t, result.StrategiesApplied, types.StrategyStyleConsistency)
}

func TestRewrite_DeterministicWithSeed(t *testing.T) {
	first, err := newTestEngine().Rewrite(context.Background(), utilizationText, clarityConfig())
	require.NoError(t, err)
	second, err := newTestEngine().Rewrite(context.Background(), utilizationText, clarityConfig())
	require.NoError(t, err)

	assert.Equal(t, first.RewrittenText, second.RewrittenText)
	assert.Equal(t, first.QualityScores, second.QualityScores)
	assert.Equal(t, first.Recommendations, second.Recommendations)
	assert.Equal(t, first.StrategiesApplied, second.StrategiesApplied)
}

func TestRewrite_ScoresAndConfidenceInRange(t *testing.T) {
	eng := newTestEngine()

	result, err := eng.Rewrite(context.Background(), utilizationText, nil)
	require.NoError(t, err)

	require.Len(t, result.QualityScores, len(types.AllQualityMetrics()))
	for metric, score := range result.QualityScores {
		assert.GreaterOrEqual(t, score, 0.0, "metric %s", metric)
		assert.LessOrEqual(t, score, 1.0, "metric %s", metric)
	}
	assert.GreaterOrEqual(t, result.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, result.ConfidenceScore, 1.0)
}

func TestRewrite_EmptyInputRejected(t *testing.T) {
	eng := newTestEngine()

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := eng.Rewrite(context.Background(), text, nil)
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid, "input %q", text)
	}
}

func TestRewrite_InvalidConfigRejected(t *testing.T) {
	eng := newTestEngine()
	cfg := types.DefaultRewriteConfig()
	cfg.Mode = "poetic"

	_, err := eng.Rewrite(context.Background(), "Some text to rewrite.", &cfg)

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestRewrite_ForbiddenWordsScrubbed(t *testing.T) {
	eng := newTestEngine()
	cfg := types.DefaultRewriteConfig()
	cfg.ForbiddenWords = []string{"synergy"}

	result, err := eng.Rewrite(context.Background(), "We deliver synergy across teams.", &cfg)
	require.NoError(t, err)

	assert.NotContains(t, strings.ToLower(result.RewrittenText), "synergy")
	assert.Contains(t, result.RewrittenText, "[REMOVED]")
}

func TestRewrite_RequiredKeywordInjected(t *testing.T) {
	eng := newTestEngine()
	cfg := types.DefaultRewriteConfig()
	cfg.RequiredKeywords = []string{"reliability"}

	result, err := eng.Rewrite(context.Background(), "The team shipped the release on schedule.", &cfg)
	require.NoError(t, err)

	assert.Contains(t, strings.ToLower(result.RewrittenText), "reliability")
}

func TestRewrite_UsesInjectedClock(t *testing.T) {
	fixed := time.Date(2026, time.March, 14, 9, 26, 53, 0, time.UTC)
	eng := newTestEngine(WithClock(func() time.Time { return fixed }))

	result, err := eng.Rewrite(context.Background(), "A short sentence to rewrite.", nil)
	require.NoError(t, err)

	assert.Equal(t, fixed, result.Timestamp)
	assert.Equal(t, time.Duration(0), result.ProcessingTime)
}

func TestChangeSummary(t *testing.T) {
	t.Run("identical texts have similarity one", func(t *testing.T) {
		summary := changeSummary("the same words", "the same words")
		assert.Equal(t, 1.0, summary.SimilarityRatio)
		assert.Equal(t, 0, summary.WordCountChange)
		assert.Equal(t, 0, summary.CharacterCountChange)
	})

	t.Run("disjoint texts have similarity zero", func(t *testing.T) {
		summary := changeSummary("alpha beta gamma", "delta epsilon zeta")
		assert.Equal(t, 0.0, summary.SimilarityRatio)
	})

	t.Run("both empty counts as identical", func(t *testing.T) {
		assert.Equal(t, 1.0, similarity("", ""))
	})

	t.Run("sentence counts use raw segment split", func(t *testing.T) {
		summary := changeSummary("One. Two.", "One. Two. Three.")
		// Trailing punctuation yields an empty final segment.
		assert.Equal(t, 3, summary.OriginalSentenceCount)
		assert.Equal(t, 4, summary.RewrittenSentenceCount)
	})
}

func TestPostProcess(t *testing.T) {
	t.Run("whitespace normalized", func(t *testing.T) {
		got := postProcess("Too   many    spaces .  And more !", types.RewriteConfig{})
		assert.Equal(t, "Too many spaces. And more!", got)
	})

	t.Run("keyword appended to first sentence", func(t *testing.T) {
		cfg := types.RewriteConfig{RequiredKeywords: []string{"quality"}}
		got := postProcess("First part. Second part.", cfg)
		assert.Equal(t, "First part quality. Second part.", got)
	})

	t.Run("present keyword not duplicated", func(t *testing.T) {
		cfg := types.RewriteConfig{RequiredKeywords: []string{"Quality"}}
		got := postProcess("We value quality here.", cfg)
		assert.Equal(t, 1, strings.Count(strings.ToLower(got), "quality"))
	})

	t.Run("forbidden scrub is case-insensitive", func(t *testing.T) {
		cfg := types.RewriteConfig{ForbiddenWords: []string{"synergy"}}
		got := postProcess("Synergy drives synergy.", cfg)
		assert.NotContains(t, strings.ToLower(got), "synergy")
	})
}

func TestSelectStrategies_DedupesAndKeepsBaseline(t *testing.T) {
	analysisResult := &types.RewriteAnalysis{
		RecommendedStrategies: []types.Strategy{
			types.StrategyClarityImprovement,
			types.StrategyEngagementBoost,
			types.StrategyStyleConsistency,
		},
	}
	cfg := types.DefaultRewriteConfig()
	cfg.Mode = types.ModeClarity

	selected := selectStrategies(analysisResult, cfg)

	counts := make(map[types.Strategy]int)
	for _, s := range selected {
		counts[s]++
	}
	for s, n := range counts {
		assert.Equal(t, 1, n, "strategy %s duplicated", s)
	}
	assert.Contains(t, selected, types.StrategyStyleConsistency)
	assert.Contains(t, selected, types.StrategySentenceRestructure)
}

func TestRecommend_ThresholdWording(t *testing.T) {
	lowScores := map[types.QualityMetric]float64{
		types.MetricReadability: 0.5,
		types.MetricClarity:     0.5,
		types.MetricEngagement:  0.5,
		types.MetricCoherence:   0.5,
	}
	improvements := map[string]float64{
		types.ImprovementReadability:    -0.1,
		types.ImprovementLengthRatio:    1.6,
		types.ImprovementOverallQuality: 0.5,
	}

	got := recommend(lowScores, improvements)

	assert.Equal(t, []string{
		"Consider further simplifying sentence structure and vocabulary",
		"Remove unnecessary words and clarify complex concepts",
		"Add more questions, examples, or interactive elements",
		"Add transition words and improve logical flow",
		"Readability decreased - consider using simpler language",
		"Text became significantly longer - consider condensing",
		"Overall quality could be improved - consider additional revision",
	}, got)
}

func TestAnalyze(t *testing.T) {
	eng := newTestEngine()

	t.Run("empty text rejected", func(t *testing.T) {
		_, err := eng.Analyze("  ")
		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	})

	t.Run("returns full analysis", func(t *testing.T) {
		got, err := eng.Analyze("The quick brown fox jumps over the lazy dog.")
		require.NoError(t, err)
		assert.Equal(t, 9, got.WordCount)
		assert.Equal(t, 1, got.SentenceCount)
	})
}

func TestPipelineError_NamesStage(t *testing.T) {
	err := &PipelineError{Stage: StageAssessing, Message: "boom"}
	assert.Contains(t, err.Error(), "assessing")
	assert.Contains(t, err.Error(), "boom")
}
