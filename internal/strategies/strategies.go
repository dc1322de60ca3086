// Package strategies implements the rule-based text transformations. Each
// strategy is a pure function of its inputs plus an injected random source;
// none touches config fields beyond its own parameters and none fails on
// well-formed string input.
package strategies

import (
	"math/rand"
	"regexp"
	"strings"
	"unicode"

	"github.com/optirewrite/optirewrite/internal/lexicon"
	"github.com/optirewrite/optirewrite/internal/types"
)

// Params carries the inputs a strategy dispatch may need. Rand must be
// non-nil; callers that need reproducible output seed it explicitly.
type Params struct {
	Mode      types.RewriteMode
	Intensity types.RewriteIntensity
	Rand      *rand.Rand
}

// Apply dispatches a strategy tag to its transformation. Tags without a
// text-level transformation (conciseness_optimization, flow_enhancement,
// style_consistency) are selection markers only and pass text through.
func Apply(strategy types.Strategy, text string, p Params) string {
	switch strategy {
	case types.StrategySentenceRestructure:
		return RestructureSentences(text, p.Intensity, p.Rand)
	case types.StrategyVocabularyEnhancement:
		return EnhanceVocabulary(text, p.Mode, p.Intensity, p.Rand)
	case types.StrategyToneAdjustment:
		target := "casual"
		if p.Mode == types.ModeFormality {
			target = "formal"
		}
		return AdjustTone(text, target)
	case types.StrategyClarityImprovement:
		return ImproveClarity(text, p.Intensity)
	case types.StrategyEngagementBoost:
		return BoostEngagement(text, p.Intensity, p.Rand)
	default:
		return text
	}
}

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// starterProbability is the chance a non-light restructure prepends a
// transitional opener to a sentence.
const starterProbability = 0.3

// Participle endings accepted by the passive rewrites. Regular -ed forms
// plus the common irregular -en/-wn endings (taken, thrown).
const participle = `\w+(?:ed|en|wn)`

var passiveRewrites = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	{regexp.MustCompile(`(?i)(\w+)\s+was\s+(` + participle + `)\s+by\s+(\w+)`), "$3 $2 $1"},
	{regexp.MustCompile(`(?i)(\w+)\s+were\s+(` + participle + `)\s+by\s+(\w+)`), "$3 $2 $1"},
	{regexp.MustCompile(`(?i)(\w+)\s+is\s+(` + participle + `)\s+by\s+(\w+)`), "$3 ${2}s $1"},
	{regexp.MustCompile(`(?i)(\w+)\s+are\s+(` + participle + `)\s+by\s+(\w+)`), "$3 $2 $1"},
}

var breakConjunctions = map[string]struct{}{
	"and": {}, "but": {}, "or": {}, "because": {}, "since": {}, "while": {}, "although": {},
}

// RestructureSentences converts passive constructions to active order,
// splits overlong sentences at heavy intensity, and occasionally prepends a
// transitional opener for structural variety.
func RestructureSentences(text string, intensity types.RewriteIntensity, rng *rand.Rand) string {
	parts := sentenceBoundary.Split(text, -1)
	restructured := make([]string, 0, len(parts))

	for _, part := range parts {
		sentence := strings.TrimSpace(part)
		if sentence == "" {
			continue
		}

		sentence = ConvertPassiveToActive(sentence)
		if intensity == types.IntensityHeavy || intensity == types.IntensityComplete {
			sentence = breakLongSentence(sentence)
		}
		sentence = varyStructure(sentence, intensity, rng)

		restructured = append(restructured, sentence)
	}

	return strings.Join(restructured, ". ") + "."
}

// ConvertPassiveToActive rewrites "NOUN was/were/is/are PARTICIPLE by NOUN"
// into active word order. The rewrite is a lossy heuristic: agreement and
// articles are not adjusted.
func ConvertPassiveToActive(sentence string) string {
	for _, rw := range passiveRewrites {
		sentence = rw.pattern.ReplaceAllString(sentence, rw.replacement)
	}
	return sentence
}

// breakLongSentence splits a sentence longer than 20 words at the middle
// conjunction, capitalizing the second half.
func breakLongSentence(sentence string) string {
	words := strings.Fields(sentence)
	if len(words) <= 20 {
		return sentence
	}

	var breakPoints []int
	for i, word := range words {
		if _, ok := breakConjunctions[strings.TrimRight(word, ",;:")]; ok {
			breakPoints = append(breakPoints, i)
		}
	}
	if len(breakPoints) == 0 {
		return sentence
	}

	mid := breakPoints[len(breakPoints)/2]
	first := strings.Join(words[:mid], " ")
	second := strings.Join(words[mid:], " ")
	return first + ". " + upperFirst(second)
}

// varyStructure prepends a random sentence starter with fixed probability,
// skipped entirely at light intensity.
func varyStructure(sentence string, intensity types.RewriteIntensity, rng *rand.Rand) string {
	if intensity == types.IntensityLight || sentence == "" {
		return sentence
	}
	if rng.Float64() < starterProbability {
		starter := lexicon.SentenceStarters[rng.Intn(len(lexicon.SentenceStarters))]
		return starter + " " + lowerFirst(sentence)
	}
	return sentence
}

// EnhanceVocabulary replaces weak or overly complex phrases from the ordered
// lexicon table, capped by intensity. The alternative chosen is deterministic
// for formality (most formal) and conversational (most casual) modes, and
// random otherwise.
func EnhanceVocabulary(text string, mode types.RewriteMode, intensity types.RewriteIntensity, rng *rand.Rand) string {
	enhanced := text
	replaced := 0
	maxReplacements := maxVocabularyReplacements(text, intensity)

	for _, entry := range lexicon.VocabularyReplacements {
		if replaced >= maxReplacements {
			break
		}
		if !strings.Contains(strings.ToLower(enhanced), entry.Phrase) {
			continue
		}

		replacement := chooseAlternative(entry.Alternatives, mode, rng)
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(entry.Phrase) + `\b`)
		enhanced = pattern.ReplaceAllString(enhanced, replacement)
		replaced++
	}

	return enhanced
}

// maxVocabularyReplacements scales the replacement cap with intensity.
func maxVocabularyReplacements(text string, intensity types.RewriteIntensity) int {
	wordCount := len(strings.Fields(text))
	switch intensity {
	case types.IntensityLight:
		return maxInt(1, wordCount/50)
	case types.IntensityModerate:
		return maxInt(2, wordCount/25)
	case types.IntensityHeavy:
		return maxInt(3, wordCount/15)
	default: // complete
		return maxInt(5, wordCount/10)
	}
}

func chooseAlternative(alternatives []string, mode types.RewriteMode, rng *rand.Rand) string {
	switch mode {
	case types.ModeFormality:
		return alternatives[len(alternatives)-1]
	case types.ModeConversational:
		return alternatives[0]
	default:
		return alternatives[rng.Intn(len(alternatives))]
	}
}

// AdjustTone expands contractions for a "formal" target and contracts
// phrases for a "casual" target. Unrecognized targets are a no-op.
func AdjustTone(text, target string) string {
	var adjustments []lexicon.Replacement
	switch target {
	case "formal":
		adjustments = lexicon.FormalAdjustments
	case "casual":
		adjustments = lexicon.CasualAdjustments
	default:
		return text
	}

	for _, adj := range adjustments {
		text = adj.Pattern.ReplaceAllString(text, adj.Replacement)
	}
	return text
}

// ImproveClarity removes filler phrases, and at heavy intensity also
// collapses redundant intensifier+adjective pairs.
func ImproveClarity(text string, intensity types.RewriteIntensity) string {
	for _, p := range lexicon.ClarityPatterns {
		text = p.Pattern.ReplaceAllString(text, p.Replacement)
	}

	if intensity == types.IntensityHeavy || intensity == types.IntensityComplete {
		for _, p := range lexicon.RedundancyPatterns {
			text = p.Pattern.ReplaceAllString(text, p.Replacement)
		}
	}
	return text
}

const (
	questionGateProbability = 0.2
	questionProbability     = 0.5
	strongVerbProbability   = 0.3
)

// BoostEngagement occasionally converts declarative openings into questions
// (every fourth segment at moderate+ intensity) and substitutes stronger
// verbs for weak ones.
func BoostEngagement(text string, intensity types.RewriteIntensity, rng *rand.Rand) string {
	parts := sentenceBoundary.Split(text, -1)
	engaged := make([]string, 0, len(parts))

	questionsEnabled := intensity == types.IntensityModerate ||
		intensity == types.IntensityHeavy ||
		intensity == types.IntensityComplete

	for i, part := range parts {
		sentence := strings.TrimSpace(part)
		if sentence == "" {
			continue
		}

		if questionsEnabled && i%4 == 0 && rng.Float64() < questionGateProbability {
			sentence = convertToQuestion(sentence, rng)
		}
		sentence = strengthenVerbs(sentence, rng)

		engaged = append(engaged, sentence)
	}

	return strings.Join(engaged, ". ") + "."
}

func convertToQuestion(sentence string, rng *rand.Rand) string {
	if rng.Float64() < questionProbability {
		starter := lexicon.QuestionStarters[rng.Intn(len(lexicon.QuestionStarters))]
		return starter + " " + lowerFirst(sentence) + "?"
	}
	return sentence
}

func strengthenVerbs(sentence string, rng *rand.Rand) string {
	for _, verb := range lexicon.WeakToStrongVerbs {
		if rng.Float64() < strongVerbProbability {
			pattern := regexp.MustCompile(`(?i)\b` + verb.Weak + `\b`)
			sentence = pattern.ReplaceAllString(sentence, verb.Strong)
		}
	}
	return sentence
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
