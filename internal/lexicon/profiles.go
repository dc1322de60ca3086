package lexicon

import "github.com/optirewrite/optirewrite/internal/types"

// ToneProfiles define the target tone-ratio characteristics per mode.
// Modes without a profile score a fixed default in the quality assessor.
var ToneProfiles = map[types.RewriteMode]map[string]float64{
	types.ModeFormality:      {"formal": 0.3, "confident": 0.2},
	types.ModeConversational: {"informal": 0.3, "positive": 0.2},
	types.ModeAcademic:       {"formal": 0.4, "neutral": 0.3},
	types.ModePersuasive:     {"confident": 0.3, "positive": 0.2},
	types.ModeEngagement:     {"positive": 0.3, "informal": 0.2},
}
