// Package analysis computes readability, complexity, tone, and consistency
// measurements over raw text. Every function here is a pure function of its
// input: no I/O, no mutation, no randomness.
package analysis

import (
	"regexp"
	"strings"

	"github.com/optirewrite/optirewrite/internal/lexicon"
	"github.com/optirewrite/optirewrite/internal/types"
)

var (
	sentenceBoundary = regexp.MustCompile(`[.!?]+`)
	wordToken        = regexp.MustCompile(`\b\w+\b`)
	vowelGroup       = regexp.MustCompile(`[aeiouy]+`)
)

// Improvement opportunity labels surfaced in RewriteAnalysis.
const (
	OpportunityPassiveVoice    = "Reduce passive voice usage"
	OpportunityLongSentences   = "Break up long sentences"
	OpportunityComplexWords    = "Simplify vocabulary"
	OpportunityNominalizations = "Convert nominalizations to verbs"
	OpportunityReadability     = "Improve overall readability"
)

// Analyzer measures text against the shared lexicon tables.
// The zero value is not usable; construct with NewAnalyzer.
type Analyzer struct {
	toneSets map[string]map[string]struct{}
}

// NewAnalyzer builds an Analyzer. The returned value is immutable and safe
// for concurrent use.
func NewAnalyzer() *Analyzer {
	toneSets := make(map[string]map[string]struct{}, len(lexicon.ToneKeywords))
	for tone, keywords := range lexicon.ToneKeywords {
		set := make(map[string]struct{}, len(keywords))
		for _, kw := range keywords {
			set[kw] = struct{}{}
		}
		toneSets[tone] = set
	}
	return &Analyzer{toneSets: toneSets}
}

// Analyze performs a full analysis pass over text.
func (a *Analyzer) Analyze(text string) *types.RewriteAnalysis {
	sentences := SplitSentences(text)
	words := strings.Fields(text)

	avgSentenceLength := 0.0
	if len(sentences) > 0 {
		avgSentenceLength = float64(len(words)) / float64(len(sentences))
	}

	return &types.RewriteAnalysis{
		TextLength:               len(text),
		SentenceCount:            len(sentences),
		WordCount:                len(words),
		AvgSentenceLength:        avgSentenceLength,
		ReadabilityScore:         a.Readability(text),
		ComplexityScore:          a.Complexity(text),
		ToneAnalysis:             a.AnalyzeTone(text),
		StyleConsistency:         a.StyleConsistency(sentences),
		ImprovementOpportunities: a.improvementOpportunities(text),
		RecommendedStrategies:    a.recommendStrategies(text),
	}
}

// SplitSentences splits text on runs of sentence punctuation, dropping
// empty and whitespace-only fragments. Order is preserved.
func SplitSentences(text string) []string {
	parts := sentenceBoundary.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// SplitSegments splits text on sentence punctuation without trimming or
// dropping empty fragments. The quality metrics normalize against raw
// segment counts, so this variant is exported alongside SplitSentences.
func SplitSegments(text string) []string {
	return sentenceBoundary.Split(text, -1)
}

// Readability approximates a normalized Flesch Reading Ease score in [0,1].
// Degenerate input (no sentences or no words) yields 0.
func (a *Analyzer) Readability(text string) float64 {
	sentences := SplitSentences(text)
	words := strings.Fields(text)
	if len(sentences) == 0 || len(words) == 0 {
		return 0.0
	}

	avgSentenceLength := float64(len(words)) / float64(len(sentences))
	avgSyllables := float64(estimateSyllables(text)) / float64(len(words))

	score := 206.835 - 1.015*avgSentenceLength - 84.6*avgSyllables
	return clamp(score, 0, 100) / 100
}

// estimateSyllables counts vowel-group runs per word, with a silent
// trailing-e correction and a floor of one syllable per word.
func estimateSyllables(text string) int {
	total := 0
	for _, word := range wordToken.FindAllString(strings.ToLower(text), -1) {
		syllables := len(vowelGroup.FindAllString(word, -1))
		if syllables < 1 {
			syllables = 1
		}
		if strings.HasSuffix(word, "e") && syllables > 1 {
			syllables--
		}
		total += syllables
	}
	return total
}

// Complexity averages the six lexicon complexity detectors, each normalized
// by one match per ten words. Zero words yields 0.
func (a *Analyzer) Complexity(text string) float64 {
	wordCount := len(strings.Fields(text))
	if wordCount == 0 {
		return 0.0
	}

	denominator := float64(wordCount) / 10
	if denominator < 1 {
		denominator = 1
	}

	sum := 0.0
	for _, detector := range lexicon.ComplexityPatterns {
		matches := len(detector.Pattern.FindAllString(text, -1))
		factor := float64(matches) / denominator
		if factor > 1 {
			factor = 1
		}
		sum += factor
	}
	return sum / float64(len(lexicon.ComplexityPatterns))
}

// AnalyzeTone reports, for each tone category, the ratio of category
// keywords among whitespace-split tokens. All categories are reported even
// when zero.
func (a *Analyzer) AnalyzeTone(text string) map[string]float64 {
	words := strings.Fields(strings.ToLower(text))
	scores := make(map[string]float64, len(lexicon.ToneCategories))

	if len(words) == 0 {
		for _, tone := range lexicon.ToneCategories {
			scores[tone] = 0.0
		}
		return scores
	}

	for _, tone := range lexicon.ToneCategories {
		set := a.toneSets[tone]
		matches := 0
		for _, word := range words {
			if _, ok := set[word]; ok {
				matches++
			}
		}
		scores[tone] = float64(matches) / float64(len(words))
	}
	return scores
}

// StyleConsistency combines sentence-length consistency with per-tone
// consistency across sentences. Fewer than two sentences is trivially
// consistent.
func (a *Analyzer) StyleConsistency(sentences []string) float64 {
	if len(sentences) < 2 {
		return 1.0
	}

	factors := make([]float64, 0, 1+len(lexicon.ToneCategories))

	lengths := make([]float64, len(sentences))
	for i, sentence := range sentences {
		lengths[i] = float64(len(strings.Fields(sentence)))
	}
	mean, variance := meanAndVariance(lengths)
	lengthConsistency := 0.0
	if mean > 0 {
		lengthConsistency = 1.0 / (1.0 + variance/mean)
	}
	factors = append(factors, lengthConsistency)

	perSentenceTones := make([]map[string]float64, len(sentences))
	for i, sentence := range sentences {
		perSentenceTones[i] = a.AnalyzeTone(sentence)
	}
	for _, tone := range lexicon.ToneCategories {
		values := make([]float64, len(sentences))
		for i, tones := range perSentenceTones {
			values[i] = tones[tone]
		}
		_, variance := meanAndVariance(values)
		factors = append(factors, 1.0/(1.0+variance*10))
	}

	sum := 0.0
	for _, f := range factors {
		sum += f
	}
	return sum / float64(len(factors))
}

// improvementOpportunities applies the fixed threshold rules.
func (a *Analyzer) improvementOpportunities(text string) []string {
	var opportunities []string
	words := strings.Fields(text)
	wordCount := float64(len(words))

	passiveMatches := len(lexicon.PassiveVoicePattern.FindAllString(text, -1))
	if float64(passiveMatches) > wordCount*0.1 {
		opportunities = append(opportunities, OpportunityPassiveVoice)
	}

	sentences := SplitSentences(text)
	longSentences := 0
	for _, sentence := range sentences {
		if len(strings.Fields(sentence)) > 25 {
			longSentences++
		}
	}
	if float64(longSentences) > float64(len(sentences))*0.3 {
		opportunities = append(opportunities, OpportunityLongSentences)
	}

	longWords := len(lexicon.LongWordPattern.FindAllString(text, -1))
	if float64(longWords) > wordCount*0.2 {
		opportunities = append(opportunities, OpportunityComplexWords)
	}

	nominalizations := len(lexicon.NominalizationPattern.FindAllString(text, -1))
	if float64(nominalizations) > wordCount*0.1 {
		opportunities = append(opportunities, OpportunityNominalizations)
	}

	if a.Readability(text) < 0.6 {
		opportunities = append(opportunities, OpportunityReadability)
	}

	return opportunities
}

// recommendStrategies maps opportunities to strategy tags, always appending
// the engagement and style-consistency baselines, with duplicates removed.
func (a *Analyzer) recommendStrategies(text string) []types.Strategy {
	var strategies []types.Strategy
	for _, opportunity := range a.improvementOpportunities(text) {
		switch opportunity {
		case OpportunityPassiveVoice:
			strategies = append(strategies, types.StrategySentenceRestructure)
		case OpportunityLongSentences:
			strategies = append(strategies, types.StrategyClarityImprovement)
		case OpportunityComplexWords:
			strategies = append(strategies, types.StrategyVocabularyEnhancement)
		case OpportunityNominalizations:
			strategies = append(strategies, types.StrategySentenceRestructure)
		case OpportunityReadability:
			strategies = append(strategies, types.StrategyClarityImprovement, types.StrategyFlowEnhancement)
		}
	}

	strategies = append(strategies, types.StrategyEngagementBoost, types.StrategyStyleConsistency)
	return dedupeStrategies(strategies)
}

// dedupeStrategies removes duplicate tags, keeping first-occurrence order.
func dedupeStrategies(strategies []types.Strategy) []types.Strategy {
	seen := make(map[types.Strategy]struct{}, len(strategies))
	out := make([]types.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// meanAndVariance returns the mean and population variance of values.
func meanAndVariance(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, variance
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
