// Package types defines the core data structures shared across the rewrite pipeline.
package types

// RewriteMode selects the optimization goal for a rewrite.
type RewriteMode string

// Rewrite modes
const (
	ModeBalanced       RewriteMode = "balanced"       // Balance all factors
	ModeClarity        RewriteMode = "clarity"        // Focus on clarity and readability
	ModeEngagement     RewriteMode = "engagement"     // Focus on engagement and interest
	ModeConciseness    RewriteMode = "conciseness"    // Focus on brevity and efficiency
	ModeFormality      RewriteMode = "formality"      // Adjust formality level
	ModeCreativity     RewriteMode = "creativity"     // Enhance creative expression
	ModeTechnical      RewriteMode = "technical"      // Optimize for technical accuracy
	ModePersuasive     RewriteMode = "persuasive"     // Enhance persuasive power
	ModeAcademic       RewriteMode = "academic"       // Academic writing style
	ModeConversational RewriteMode = "conversational" // Casual, conversational tone
)

// AllModes returns every supported rewrite mode in declaration order.
func AllModes() []RewriteMode {
	return []RewriteMode{
		ModeBalanced, ModeClarity, ModeEngagement, ModeConciseness,
		ModeFormality, ModeCreativity, ModeTechnical, ModePersuasive,
		ModeAcademic, ModeConversational,
	}
}

// Valid reports whether m is a known rewrite mode.
func (m RewriteMode) Valid() bool {
	switch m {
	case ModeBalanced, ModeClarity, ModeEngagement, ModeConciseness,
		ModeFormality, ModeCreativity, ModeTechnical, ModePersuasive,
		ModeAcademic, ModeConversational:
		return true
	}
	return false
}

// RewriteIntensity controls how aggressively strategies transform text.
type RewriteIntensity string

// Rewrite intensities
const (
	IntensityLight    RewriteIntensity = "light"    // Minimal changes
	IntensityModerate RewriteIntensity = "moderate" // Balanced changes
	IntensityHeavy    RewriteIntensity = "heavy"    // Significant changes
	IntensityComplete RewriteIntensity = "complete" // Complete rewrite
)

// Valid reports whether i is a known intensity level.
func (i RewriteIntensity) Valid() bool {
	switch i {
	case IntensityLight, IntensityModerate, IntensityHeavy, IntensityComplete:
		return true
	}
	return false
}

// Strategy identifies a single rule-based text transformation.
// Strategies are stateless tags; the strategies package dispatches them to
// pure functions.
type Strategy string

// Rewriting strategies
const (
	StrategySentenceRestructure     Strategy = "sentence_restructure"
	StrategyVocabularyEnhancement   Strategy = "vocabulary_enhancement"
	StrategyToneAdjustment          Strategy = "tone_adjustment"
	StrategyClarityImprovement      Strategy = "clarity_improvement"
	StrategyEngagementBoost         Strategy = "engagement_boost"
	StrategyConcisenessOptimization Strategy = "conciseness_optimization"
	StrategyFlowEnhancement         Strategy = "flow_enhancement"
	StrategyStyleConsistency        Strategy = "style_consistency"
)

// QualityMetric identifies one axis of the quality assessment.
type QualityMetric string

// Quality metrics
const (
	MetricReadability         QualityMetric = "readability"
	MetricClarity             QualityMetric = "clarity"
	MetricEngagement          QualityMetric = "engagement"
	MetricCoherence           QualityMetric = "coherence"
	MetricConciseness         QualityMetric = "conciseness"
	MetricStyleConsistency    QualityMetric = "style_consistency"
	MetricGrammarAccuracy     QualityMetric = "grammar_accuracy"
	MetricToneAppropriateness QualityMetric = "tone_appropriateness"
)

// AllQualityMetrics returns the fixed metric set every assessment reports.
func AllQualityMetrics() []QualityMetric {
	return []QualityMetric{
		MetricReadability, MetricClarity, MetricEngagement, MetricCoherence,
		MetricConciseness, MetricStyleConsistency, MetricGrammarAccuracy,
		MetricToneAppropriateness,
	}
}
