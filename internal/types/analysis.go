package types

// RewriteAnalysis is a read-only snapshot of a text's measurable properties.
// An analysis is created fresh per call and never mutated.
type RewriteAnalysis struct {
	TextLength               int                `json:"text_length"`
	SentenceCount            int                `json:"sentence_count"`
	WordCount                int                `json:"word_count"`
	AvgSentenceLength        float64            `json:"avg_sentence_length"`
	ReadabilityScore         float64            `json:"readability_score"`
	ComplexityScore          float64            `json:"complexity_score"`
	ToneAnalysis             map[string]float64 `json:"tone_analysis"`
	StyleConsistency         float64            `json:"style_consistency"`
	ImprovementOpportunities []string           `json:"improvement_opportunities"`
	RecommendedStrategies    []Strategy         `json:"recommended_strategies"`
}
