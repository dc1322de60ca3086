// Package quality scores rewritten text against the fixed metric set and
// compares it to the original. All assessments are pure functions of their
// inputs.
package quality

import (
	"regexp"
	"strings"

	"github.com/optirewrite/optirewrite/internal/analysis"
	"github.com/optirewrite/optirewrite/internal/lexicon"
	"github.com/optirewrite/optirewrite/internal/types"
)

var (
	therePairPattern = regexp.MustCompile(`(?i)\b(there|their|they're)\b.*\b(there|their|they're)\b`)
	yourPairPattern  = regexp.MustCompile(`(?i)\b(your|you're)\b.*\b(your|you're)\b`)
)

// personalPronouns feed the engagement metric's pronoun-density signal.
var personalPronouns = []string{"you", "your", "we", "our", "us"}

// defaultToneScore is reported for modes without a tone profile.
const defaultToneScore = 0.8

// Assessor scores rewritten content. Safe for concurrent use.
type Assessor struct {
	analyzer *analysis.Analyzer
}

// NewAssessor creates an Assessor backed by a fresh analyzer.
func NewAssessor() *Assessor {
	return &Assessor{analyzer: analysis.NewAnalyzer()}
}

// Assess scores rewritten against every quality metric. The returned map
// always contains the full fixed metric set with each value in [0,1].
func (a *Assessor) Assess(original, rewritten string, cfg types.RewriteConfig) map[types.QualityMetric]float64 {
	rewrittenAnalysis := a.analyzer.Analyze(rewritten)

	scores := map[types.QualityMetric]float64{
		types.MetricReadability:         rewrittenAnalysis.ReadabilityScore,
		types.MetricClarity:             1.0 - rewrittenAnalysis.ComplexityScore,
		types.MetricEngagement:          a.assessEngagement(rewritten),
		types.MetricCoherence:           a.assessCoherence(rewritten),
		types.MetricConciseness:         assessConciseness(original, rewritten),
		types.MetricStyleConsistency:    rewrittenAnalysis.StyleConsistency,
		types.MetricGrammarAccuracy:     assessGrammar(rewritten),
		types.MetricToneAppropriateness: a.assessToneAppropriateness(rewritten, cfg),
	}

	for metric, score := range scores {
		scores[metric] = clamp01(score)
	}
	return scores
}

// assessEngagement averages three signals: question density, active-voice
// ratio, and personal-pronoun density.
func (a *Assessor) assessEngagement(text string) float64 {
	wordCount := len(strings.Fields(text))

	questionDenominator := float64(wordCount) / 50
	if questionDenominator < 1 {
		questionDenominator = 1
	}
	questionRatio := float64(strings.Count(text, "?")) / questionDenominator
	if questionRatio > 1 {
		questionRatio = 1
	}

	passiveCount := len(lexicon.PassiveVoicePattern.FindAllString(text, -1))
	segmentCount := len(analysis.SplitSegments(text))
	if segmentCount < 1 {
		segmentCount = 1
	}
	activeRatio := 1.0 - float64(passiveCount)/float64(segmentCount)

	pronounDenominator := float64(wordCount) / 20
	if pronounDenominator < 1 {
		pronounDenominator = 1
	}
	lower := strings.ToLower(text)
	pronounCount := 0
	for _, pronoun := range personalPronouns {
		pronounCount += strings.Count(lower, pronoun)
	}
	pronounRatio := float64(pronounCount) / pronounDenominator
	if pronounRatio > 1 {
		pronounRatio = 1
	}

	return (questionRatio + activeRatio + pronounRatio) / 3
}

// assessCoherence rewards transition-word usage, doubled and capped at 1.
// Texts shorter than two segments are trivially coherent.
func (a *Assessor) assessCoherence(text string) float64 {
	segments := analysis.SplitSegments(text)
	if len(segments) < 2 {
		return 1.0
	}

	withTransition := 0
	for _, segment := range segments {
		lower := strings.ToLower(segment)
		for _, word := range lexicon.CoherenceTransitions {
			if strings.Contains(lower, word) {
				withTransition++
				break
			}
		}
	}

	ratio := float64(withTransition) / float64(len(segments))
	if ratio*2 > 1 {
		return 1.0
	}
	return ratio * 2
}

// assessConciseness is a piecewise function of the word-count ratio.
func assessConciseness(original, rewritten string) float64 {
	originalWords := len(strings.Fields(original))
	rewrittenWords := len(strings.Fields(rewritten))

	if originalWords == 0 {
		return 1.0
	}

	ratio := float64(rewrittenWords) / float64(originalWords)
	switch {
	case ratio < 0.5: // too much reduction
		return 0.5
	case ratio < 0.8: // good reduction
		return 1.0
	case ratio <= 1.0: // slight reduction or same
		return 0.8
	case ratio <= 1.2: // slight expansion
		return 0.6
	default: // too much expansion
		return 0.3
	}
}

// assessGrammar accumulates fixed heuristic penalties, normalized per ten
// words, and floors the resulting score at zero.
func assessGrammar(text string) float64 {
	issues := 0.0

	if therePairPattern.MatchString(text) {
		issues++
	}
	if yourPairPattern.MatchString(text) {
		issues++
	}

	for _, segment := range analysis.SplitSegments(text) {
		if len(strings.Fields(segment)) < 3 {
			issues += 0.5
		}
	}

	denominator := float64(len(strings.Fields(text))) / 10
	if denominator < 1 {
		denominator = 1
	}
	score := 1.0 - issues/denominator
	if score < 0 {
		return 0.0
	}
	return score
}

// assessToneAppropriateness compares the text's tone distribution against
// the mode's target profile. Modes without a profile score the default.
func (a *Assessor) assessToneAppropriateness(text string, cfg types.RewriteConfig) float64 {
	profile, ok := lexicon.ToneProfiles[cfg.Mode]
	if !ok {
		return defaultToneScore
	}

	tones := a.analyzer.AnalyzeTone(text)
	total := 0.0
	for tone, target := range profile {
		difference := tones[tone] - target
		if difference < 0 {
			difference = -difference
		}
		score := 1.0 - difference*2
		if score < 0 {
			score = 0
		}
		total += score
	}
	return total / float64(len(profile))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
