package types

import "time"

// ChangeSummary compares the rewritten text against the original.
type ChangeSummary struct {
	OriginalWordCount      int     `json:"original_word_count"`
	RewrittenWordCount     int     `json:"rewritten_word_count"`
	WordCountChange        int     `json:"word_count_change"`
	OriginalSentenceCount  int     `json:"original_sentence_count"`
	RewrittenSentenceCount int     `json:"rewritten_sentence_count"`
	CharacterCountChange   int     `json:"character_count_change"`
	SimilarityRatio        float64 `json:"similarity_ratio"`
}

// RewriteResult is the externally visible artifact of a rewrite call.
// It is created once per call and never mutated after construction.
type RewriteResult struct {
	RewriteID          string                    `json:"rewrite_id"`
	OriginalText       string                    `json:"original_text"`
	RewrittenText      string                    `json:"rewritten_text"`
	Config             RewriteConfig             `json:"config"`
	StrategiesApplied  []Strategy                `json:"strategies_applied"`
	QualityScores      map[QualityMetric]float64 `json:"quality_scores"`
	ImprovementMetrics map[string]float64        `json:"improvement_metrics"`
	ProcessingTime     time.Duration             `json:"processing_time"`
	ConfidenceScore    float64                   `json:"confidence_score"`
	ChangeSummary      ChangeSummary             `json:"change_summary"`
	Recommendations    []string                  `json:"recommendations"`
	Timestamp          time.Time                 `json:"timestamp"`
}

// Improvement metric keys reported in RewriteResult.ImprovementMetrics.
const (
	ImprovementReadability      = "readability_improvement"
	ImprovementComplexity       = "complexity_reduction"
	ImprovementLengthRatio      = "length_change_ratio"
	ImprovementSentenceLength   = "sentence_length_improvement"
	ImprovementStyleConsistency = "style_consistency_improvement"
	ImprovementOverallQuality   = "overall_quality_score"
)
