// Package engine orchestrates the rewrite pipeline: analysis, strategy
// selection, transformation, post-processing, quality assessment, and
// summarization. The engine is the only layer that returns caller-visible
// errors.
package engine

import (
	"context"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/optirewrite/optirewrite/internal/analysis"
	"github.com/optirewrite/optirewrite/internal/quality"
	"github.com/optirewrite/optirewrite/internal/rewriting"
	"github.com/optirewrite/optirewrite/internal/strategies"
	"github.com/optirewrite/optirewrite/internal/types"
)

// Stage identifies a pipeline stage, used to attribute failures.
type Stage string

const (
	StageAnalyzing         Stage = "analyzing"
	StageStrategySelection Stage = "strategy_selection"
	StageTransforming      Stage = "transforming"
	StagePostProcessing    Stage = "post_processing"
	StageAssessing         Stage = "assessing"
	StageSummarizing       Stage = "summarizing"
)

var (
	multiSpace       = regexp.MustCompile(`\s+`)
	spaceBeforePunct = regexp.MustCompile(`\s+([.!?])`)
)

// modeStrategies are appended to the analyzer's recommendations per mode.
var modeStrategies = map[types.RewriteMode][]types.Strategy{
	types.ModeClarity:        {types.StrategyClarityImprovement, types.StrategySentenceRestructure},
	types.ModeEngagement:     {types.StrategyEngagementBoost, types.StrategyVocabularyEnhancement},
	types.ModeConciseness:    {types.StrategyConcisenessOptimization, types.StrategyClarityImprovement},
	types.ModeFormality:      {types.StrategyToneAdjustment, types.StrategyVocabularyEnhancement},
	types.ModeCreativity:     {types.StrategyVocabularyEnhancement, types.StrategyEngagementBoost},
	types.ModeConversational: {types.StrategyToneAdjustment, types.StrategyEngagementBoost},
}

// applicationOrder fixes the order strategies run in, independent of
// selection order, so repeated invocations are reproducible.
var applicationOrder = []types.Strategy{
	types.StrategySentenceRestructure,
	types.StrategyVocabularyEnhancement,
	types.StrategyToneAdjustment,
	types.StrategyClarityImprovement,
	types.StrategyEngagementBoost,
}

// Engine runs the rewrite pipeline. Invocations are independent: the engine
// holds no mutable state and is safe for concurrent use.
type Engine struct {
	analyzer *analysis.Analyzer
	assessor *quality.Assessor
	rewriter *rewriting.AIRewriter
	logger   *zap.Logger
	now      func() time.Time
	newRand  func() *rand.Rand
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger injects the structured logger.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithClock injects the time source used for timestamps and durations.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithRandSeed makes every rewrite draw from a fresh source seeded with the
// given value, so identical inputs produce byte-identical output.
func WithRandSeed(seed int64) Option {
	return func(e *Engine) {
		e.newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(seed))
		}
	}
}

// WithAIRewriter injects the model boundary. Without this option every
// rewrite takes the rule-based path.
func WithAIRewriter(rewriter *rewriting.AIRewriter) Option {
	return func(e *Engine) {
		if rewriter != nil {
			e.rewriter = rewriter
		}
	}
}

// New creates an Engine with rule-based rewriting only. Use WithAIRewriter
// to enable the model path for complete-intensity rewrites.
func New(opts ...Option) *Engine {
	e := &Engine{
		analyzer: analysis.NewAnalyzer(),
		assessor: quality.NewAssessor(),
		logger:   zap.NewNop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rewriter == nil {
		e.rewriter = rewriting.New(nil, e.logger)
	}
	if e.newRand == nil {
		e.newRand = func() *rand.Rand {
			return rand.New(rand.NewSource(e.now().UnixNano()))
		}
	}
	return e
}

// Rewrite runs the full pipeline over text. A nil config means defaults.
// Empty or whitespace-only text and out-of-domain configs are rejected with
// InvalidInputError; any mid-pipeline failure surfaces as a PipelineError
// naming the failing stage.
func (e *Engine) Rewrite(ctx context.Context, text string, cfg *types.RewriteConfig) (result *types.RewriteResult, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidInputError{Message: "text must be non-empty"}
	}

	config := types.DefaultRewriteConfig()
	if cfg != nil {
		if verr := cfg.Validate(); verr != nil {
			return nil, &InvalidInputError{Message: "rewrite config rejected", Cause: verr}
		}
		config = cfg.Normalized()
	}

	rewriteID := "REWRITE_" + uuid.New().String()[:8]
	start := e.now()
	stage := StageAnalyzing

	e.logger.Info("starting rewrite",
		zap.String("rewrite_id", rewriteID),
		zap.String("mode", string(config.Mode)),
		zap.String("intensity", string(config.Intensity)))

	defer func() {
		if r := recover(); r != nil {
			err = &PipelineError{Stage: stage, Message: fmt.Sprintf("%v", r)}
			e.logger.Error("rewrite failed",
				zap.String("rewrite_id", rewriteID),
				zap.String("stage", string(stage)),
				zap.Error(err))
			result = nil
		}
	}()

	originalAnalysis := e.analyzer.Analyze(text)

	stage = StageStrategySelection
	selected := selectStrategies(originalAnalysis, config)

	stage = StageTransforming
	rng := e.newRand()
	var rewritten string
	if config.Intensity == types.IntensityComplete && e.rewriter.Available() {
		rewritten = e.rewriter.Rewrite(ctx, text, config, rng)
	} else {
		rewritten = applyStrategies(text, selected, config, rng)
	}

	stage = StagePostProcessing
	rewritten = postProcess(rewritten, config)

	stage = StageAssessing
	qualityScores := e.assessor.Assess(text, rewritten, config)

	stage = StageSummarizing
	improvements := e.improvementMetrics(text, rewritten, qualityScores)
	summary := changeSummary(text, rewritten)
	recommendations := recommend(qualityScores, improvements)
	confidence := confidenceScore(qualityScores, improvements)
	processingTime := e.now().Sub(start)

	result = &types.RewriteResult{
		RewriteID:          rewriteID,
		OriginalText:       text,
		RewrittenText:      rewritten,
		Config:             config,
		StrategiesApplied:  selected,
		QualityScores:      qualityScores,
		ImprovementMetrics: improvements,
		ProcessingTime:     processingTime,
		ConfidenceScore:    confidence,
		ChangeSummary:      summary,
		Recommendations:    recommendations,
		Timestamp:          start.UTC(),
	}

	e.logger.Info("rewrite completed",
		zap.String("rewrite_id", rewriteID),
		zap.Duration("processing_time", processingTime),
		zap.Float64("confidence", confidence))

	return result, nil
}

// Analyze exposes the analysis pass on its own, for the analyze surfaces.
func (e *Engine) Analyze(text string) (*types.RewriteAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &InvalidInputError{Message: "text must be non-empty"}
	}
	return e.analyzer.Analyze(text), nil
}

// selectStrategies unions the analyzer's recommendations with the mode's
// fixed additions plus the style-consistency baseline, first occurrence
// winning.
func selectStrategies(a *types.RewriteAnalysis, cfg types.RewriteConfig) []types.Strategy {
	selected := make([]types.Strategy, 0, len(a.RecommendedStrategies)+3)
	selected = append(selected, a.RecommendedStrategies...)
	selected = append(selected, modeStrategies[cfg.Mode]...)
	selected = append(selected, types.StrategyStyleConsistency)

	seen := make(map[types.Strategy]struct{}, len(selected))
	out := selected[:0]
	for _, s := range selected {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// applyStrategies runs the selected transformations in the canonical order.
// Selection-only tags carry no transformation and are skipped.
func applyStrategies(text string, selected []types.Strategy, cfg types.RewriteConfig, rng *rand.Rand) string {
	selectedSet := make(map[types.Strategy]struct{}, len(selected))
	for _, s := range selected {
		selectedSet[s] = struct{}{}
	}

	params := strategies.Params{Mode: cfg.Mode, Intensity: cfg.Intensity, Rand: rng}
	rewritten := text
	for _, s := range applicationOrder {
		if _, ok := selectedSet[s]; ok {
			rewritten = strategies.Apply(s, rewritten, params)
		}
	}
	return rewritten
}

// postProcess scrubs forbidden words, injects missing required keywords into
// the first sentence, and normalizes whitespace.
func postProcess(text string, cfg types.RewriteConfig) string {
	processed := text

	for _, word := range cfg.ForbiddenWords {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
		processed = pattern.ReplaceAllString(processed, "[REMOVED]")
	}

	for _, keyword := range cfg.RequiredKeywords {
		if strings.Contains(strings.ToLower(processed), strings.ToLower(keyword)) {
			continue
		}
		sentences := strings.Split(processed, ".")
		sentences[0] += " " + keyword
		processed = strings.Join(sentences, ".")
	}

	processed = multiSpace.ReplaceAllString(processed, " ")
	processed = spaceBeforePunct.ReplaceAllString(processed, "$1")
	return strings.TrimSpace(processed)
}

// improvementMetrics compares fresh analyses of both texts and folds in the
// aggregate quality score.
func (e *Engine) improvementMetrics(original, rewritten string, scores map[types.QualityMetric]float64) map[string]float64 {
	originalAnalysis := e.analyzer.Analyze(original)
	rewrittenAnalysis := e.analyzer.Analyze(rewritten)

	lengthRatio := 1.0
	if originalAnalysis.WordCount > 0 {
		lengthRatio = float64(rewrittenAnalysis.WordCount) / float64(originalAnalysis.WordCount)
	}

	return map[string]float64{
		types.ImprovementReadability:      rewrittenAnalysis.ReadabilityScore - originalAnalysis.ReadabilityScore,
		types.ImprovementComplexity:       originalAnalysis.ComplexityScore - rewrittenAnalysis.ComplexityScore,
		types.ImprovementLengthRatio:      lengthRatio,
		types.ImprovementSentenceLength:   originalAnalysis.AvgSentenceLength - rewrittenAnalysis.AvgSentenceLength,
		types.ImprovementStyleConsistency: rewrittenAnalysis.StyleConsistency - originalAnalysis.StyleConsistency,
		types.ImprovementOverallQuality:   averageScore(scores),
	}
}

func changeSummary(original, rewritten string) types.ChangeSummary {
	originalWords := len(strings.Fields(original))
	rewrittenWords := len(strings.Fields(rewritten))

	return types.ChangeSummary{
		OriginalWordCount:      originalWords,
		RewrittenWordCount:     rewrittenWords,
		WordCountChange:        rewrittenWords - originalWords,
		OriginalSentenceCount:  len(analysis.SplitSegments(original)),
		RewrittenSentenceCount: len(analysis.SplitSegments(rewritten)),
		CharacterCountChange:   len(rewritten) - len(original),
		SimilarityRatio:        similarity(original, rewritten),
	}
}

// similarity is the Jaccard coefficient over lowercased word sets. Two empty
// texts are identical.
func similarity(a, b string) float64 {
	setA := wordSet(a)
	setB := wordSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 1.0
	}

	intersection := 0
	for word := range setA {
		if _, ok := setB[word]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

func wordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, word := range strings.Fields(strings.ToLower(text)) {
		set[word] = struct{}{}
	}
	return set
}

// recommend emits follow-up advice from low metric scores and regressions.
// Metrics are visited in the fixed catalog order so output is stable.
func recommend(scores map[types.QualityMetric]float64, improvements map[string]float64) []string {
	var recommendations []string

	for _, metric := range types.AllQualityMetrics() {
		if scores[metric] >= 0.6 {
			continue
		}
		switch metric {
		case types.MetricReadability:
			recommendations = append(recommendations, "Consider further simplifying sentence structure and vocabulary")
		case types.MetricEngagement:
			recommendations = append(recommendations, "Add more questions, examples, or interactive elements")
		case types.MetricClarity:
			recommendations = append(recommendations, "Remove unnecessary words and clarify complex concepts")
		case types.MetricCoherence:
			recommendations = append(recommendations, "Add transition words and improve logical flow")
		}
	}

	if improvements[types.ImprovementReadability] < 0 {
		recommendations = append(recommendations, "Readability decreased - consider using simpler language")
	}
	if improvements[types.ImprovementLengthRatio] > 1.5 {
		recommendations = append(recommendations, "Text became significantly longer - consider condensing")
	}
	if improvements[types.ImprovementOverallQuality] < 0.7 {
		recommendations = append(recommendations, "Overall quality could be improved - consider additional revision")
	}

	return recommendations
}

// confidenceScore averages the mean quality score, the fraction of positive
// improvements, and a readability-delta factor shifted into [0,1].
func confidenceScore(scores map[types.QualityMetric]float64, improvements map[string]float64) float64 {
	avgQuality := averageScore(scores)

	positive := 0
	for _, improvement := range improvements {
		if improvement > 0 {
			positive++
		}
	}
	improvementRatio := float64(positive) / float64(len(improvements))

	readabilityFactor := improvements[types.ImprovementReadability] + 0.5
	if readabilityFactor > 1 {
		readabilityFactor = 1
	}
	if readabilityFactor < 0 {
		readabilityFactor = 0
	}

	return (avgQuality + improvementRatio + readabilityFactor) / 3
}

func averageScore(scores map[types.QualityMetric]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, score := range scores {
		sum += score
	}
	return sum / float64(len(scores))
}
