// Package lexicon holds the fixed keyword and pattern tables the analyzer,
// strategies, and quality assessor share. All tables are immutable after
// package initialization and safe for concurrent reads.
package lexicon

import "regexp"

// ToneCategories lists the tone labels in reporting order.
var ToneCategories = []string{
	"formal", "informal", "positive", "negative", "neutral", "confident", "uncertain",
}

// ToneKeywords maps each tone category to the exact word tokens that signal it.
var ToneKeywords = map[string][]string{
	"formal":    {"therefore", "furthermore", "consequently", "nevertheless", "moreover", "however"},
	"informal":  {"yeah", "okay", "cool", "awesome", "great", "nice", "pretty", "really"},
	"positive":  {"excellent", "amazing", "wonderful", "fantastic", "brilliant", "outstanding"},
	"negative":  {"terrible", "awful", "horrible", "disappointing", "frustrating", "annoying"},
	"neutral":   {"adequate", "acceptable", "standard", "typical", "normal", "regular"},
	"confident": {"definitely", "certainly", "absolutely", "clearly", "obviously", "undoubtedly"},
	"uncertain": {"maybe", "perhaps", "possibly", "might", "could", "seems", "appears"},
}

// ComplexityPattern is one named complexity detector.
type ComplexityPattern struct {
	Name    string
	Pattern *regexp.Regexp
}

// ComplexityPatterns are the six detectors averaged into the complexity score.
var ComplexityPatterns = []ComplexityPattern{
	{"passive_voice", regexp.MustCompile(`(?i)\b(was|were|been|being)\s+\w+ed\b`)},
	{"complex_sentences", regexp.MustCompile(`[,;:]\s*\w+`)},
	{"long_words", regexp.MustCompile(`\b\w{8,}\b`)},
	{"technical_terms", regexp.MustCompile(`\b[A-Z]{2,}\b|\b\w*[0-9]+\w*\b`)},
	{"nominalizations", regexp.MustCompile(`(?i)\b\w+(tion|sion|ment|ness|ity|ism)\b`)},
	{"hedge_words", regexp.MustCompile(`(?i)\b(somewhat|rather|quite|fairly|relatively|possibly)\b`)},
}

// PassiveVoicePattern is the detector shared by the analyzer's opportunity
// rules and the quality assessor's active-voice signal.
var PassiveVoicePattern = ComplexityPatterns[0].Pattern

// LongWordPattern matches words of eight or more characters.
var LongWordPattern = ComplexityPatterns[2].Pattern

// NominalizationPattern matches nominalized word forms.
var NominalizationPattern = ComplexityPatterns[4].Pattern

// VocabularyReplacement maps one weak or overly complex phrase to its
// alternatives, ordered casual-first to formal-last.
type VocabularyReplacement struct {
	Phrase       string
	Alternatives []string
}

// VocabularyReplacements is the ordered replacement table. Iteration order
// matters: the replacement cap is consumed front to back.
var VocabularyReplacements = []VocabularyReplacement{
	// Complex to simple
	{"utilize", []string{"use", "employ"}},
	{"facilitate", []string{"help", "enable", "make easier"}},
	{"demonstrate", []string{"show", "prove"}},
	{"implement", []string{"carry out", "put in place", "execute"}},
	{"methodology", []string{"method", "approach", "way"}},
	{"subsequently", []string{"then", "later", "next"}},
	{"approximately", []string{"about", "around", "roughly"}},
	{"numerous", []string{"many", "several"}},
	{"commence", []string{"start", "begin"}},
	{"terminate", []string{"end", "stop", "finish"}},

	// Weak to strong
	{"very good", []string{"excellent", "outstanding", "exceptional"}},
	{"very bad", []string{"terrible", "awful", "dreadful"}},
	{"very big", []string{"huge", "enormous", "massive"}},
	{"very small", []string{"tiny", "minuscule", "microscopic"}},
	{"very important", []string{"crucial", "vital", "essential"}},
	{"very interesting", []string{"fascinating", "captivating", "compelling"}},
}

// SentenceStarters are the transitional openers used for structural variety.
var SentenceStarters = []string{
	"Furthermore,", "Additionally,", "Moreover,", "In addition,",
	"However,", "Nevertheless,", "On the other hand,", "Conversely,",
	"For example,", "For instance,", "Specifically,", "In particular,",
	"As a result,", "Consequently,", "Therefore,", "Thus,",
	"In contrast,", "Similarly,", "Likewise,", "Meanwhile,",
	"Subsequently,", "Previously,", "Initially,", "Finally,",
}

// TransitionWords groups transition phrases by rhetorical function.
var TransitionWords = map[string][]string{
	"addition": {"furthermore", "moreover", "additionally", "also", "besides"},
	"contrast": {"however", "nevertheless", "conversely", "on the other hand"},
	"example":  {"for example", "for instance", "specifically", "namely"},
	"result":   {"therefore", "consequently", "as a result", "thus"},
	"sequence": {"first", "second", "next", "then", "finally"},
	"emphasis": {"indeed", "certainly", "undoubtedly", "clearly"},
}

// CoherenceTransitions is the flat transition list the coherence metric scans for.
var CoherenceTransitions = []string{
	"however", "therefore", "furthermore", "moreover", "consequently",
	"nevertheless", "additionally", "similarly", "conversely", "meanwhile",
}

// Replacement is a compiled pattern paired with its replacement text.
type Replacement struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// FormalAdjustments expand contractions for a formal target tone.
var FormalAdjustments = []Replacement{
	{regexp.MustCompile(`(?i)\bcan't\b`), "cannot"},
	{regexp.MustCompile(`(?i)\bwon't\b`), "will not"},
	{regexp.MustCompile(`(?i)\bdon't\b`), "do not"},
	{regexp.MustCompile(`(?i)\bisn't\b`), "is not"},
	{regexp.MustCompile(`(?i)\baren't\b`), "are not"},
}

// CasualAdjustments contract phrases for a casual target tone.
var CasualAdjustments = []Replacement{
	{regexp.MustCompile(`(?i)\bcannot\b`), "can't"},
	{regexp.MustCompile(`(?i)\bwill not\b`), "won't"},
	{regexp.MustCompile(`(?i)\bdo not\b`), "don't"},
	{regexp.MustCompile(`(?i)\bis not\b`), "isn't"},
	{regexp.MustCompile(`(?i)\bare not\b`), "aren't"},
}

// ClarityPatterns eliminate filler phrases. The first entry drops an
// unnecessary "that" before "<word> is/are/was/were"; RE2 has no lookahead,
// so the following words are captured and re-emitted.
var ClarityPatterns = []Replacement{
	{regexp.MustCompile(`(?i)\bthat\s+(\w+\s+(?:is|are|was|were))\b`), "$1"},
	{regexp.MustCompile(`(?i)\bin order to\b`), "to"},
	{regexp.MustCompile(`(?i)\bdue to the fact that\b`), "because"},
	{regexp.MustCompile(`(?i)\bat this point in time\b`), "now"},
	{regexp.MustCompile(`(?i)\bfor the purpose of\b`), "to"},
	{regexp.MustCompile(`(?i)\bin the event that\b`), "if"},
}

// RedundancyPatterns collapse intensifier+adjective pairs at heavy intensity.
var RedundancyPatterns = []Replacement{
	{regexp.MustCompile(`(?i)\bvery\s+unique\b`), "unique"},
	{regexp.MustCompile(`(?i)\bcompletely\s+finished\b`), "finished"},
	{regexp.MustCompile(`(?i)\babsolutely\s+perfect\b`), "perfect"},
	{regexp.MustCompile(`(?i)\btotally\s+destroyed\b`), "destroyed"},
}

// QuestionStarters open converted engagement questions.
var QuestionStarters = []string{
	"Have you considered",
	"Did you know",
	"What if",
	"How might",
	"Why not",
}

// WeakVerb pairs a weak verb with its stronger substitute.
type WeakVerb struct {
	Weak   string
	Strong string
}

// WeakToStrongVerbs is the ordered weak-verb substitution table. Order is
// fixed so that probability draws are reproducible under a seeded source.
var WeakToStrongVerbs = []WeakVerb{
	{"is", "becomes"},
	{"has", "possesses"},
	{"gets", "achieves"},
	{"makes", "creates"},
	{"does", "accomplishes"},
}
