package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRewriteConfig(t *testing.T) {
	cfg := DefaultRewriteConfig()

	assert.Equal(t, ModeBalanced, cfg.Mode)
	assert.Equal(t, IntensityModerate, cfg.Intensity)
	assert.Equal(t, "general", cfg.TargetAudience)
	assert.True(t, cfg.PreserveMeaning)
	assert.False(t, cfg.PreserveStructure)
}

func TestRewriteConfigValidate_Valid(t *testing.T) {
	readability := 0.8
	ratio := 0.7
	cfg := RewriteConfig{
		Mode:              ModeClarity,
		Intensity:         IntensityHeavy,
		TargetReadability: &readability,
		TargetLengthRatio: &ratio,
	}

	require.NoError(t, cfg.Validate())
}

func TestRewriteConfigValidate_ZeroValueAllowed(t *testing.T) {
	// Empty mode/intensity are filled by Normalized, not rejected.
	cfg := RewriteConfig{}
	require.NoError(t, cfg.Validate())
}

func TestRewriteConfigValidate_UnknownMode(t *testing.T) {
	cfg := RewriteConfig{Mode: "poetic"}
	assert.Error(t, cfg.Validate())
}

func TestRewriteConfigValidate_UnknownIntensity(t *testing.T) {
	cfg := RewriteConfig{Intensity: "extreme"}
	assert.Error(t, cfg.Validate())
}

func TestRewriteConfigValidate_NegativeLengthRatio(t *testing.T) {
	ratio := -0.5
	cfg := RewriteConfig{TargetLengthRatio: &ratio}
	assert.Error(t, cfg.Validate())
}

func TestRewriteConfigValidate_ReadabilityOutOfRange(t *testing.T) {
	readability := 1.5
	cfg := RewriteConfig{TargetReadability: &readability}
	assert.Error(t, cfg.Validate())
}

func TestNormalized_FillsDefaults(t *testing.T) {
	cfg := RewriteConfig{ForbiddenWords: []string{"utilize"}}
	normalized := cfg.Normalized()

	assert.Equal(t, ModeBalanced, normalized.Mode)
	assert.Equal(t, IntensityModerate, normalized.Intensity)
	assert.Equal(t, "general", normalized.TargetAudience)
	assert.Equal(t, []string{"utilize"}, normalized.ForbiddenWords)

	// Receiver untouched
	assert.Equal(t, RewriteMode(""), cfg.Mode)
}

func TestNormalized_PreservesExplicitValues(t *testing.T) {
	cfg := RewriteConfig{Mode: ModeAcademic, Intensity: IntensityLight, TargetAudience: "researchers"}
	normalized := cfg.Normalized()

	assert.Equal(t, ModeAcademic, normalized.Mode)
	assert.Equal(t, IntensityLight, normalized.Intensity)
	assert.Equal(t, "researchers", normalized.TargetAudience)
}

func TestAllModes_CoversValid(t *testing.T) {
	modes := AllModes()
	assert.Len(t, modes, 10)
	for _, m := range modes {
		assert.True(t, m.Valid(), "mode %s should be valid", m)
	}
	assert.False(t, RewriteMode("haiku").Valid())
}

func TestAllQualityMetrics_FixedSet(t *testing.T) {
	metrics := AllQualityMetrics()
	assert.Len(t, metrics, 8)

	seen := make(map[QualityMetric]bool)
	for _, m := range metrics {
		assert.False(t, seen[m], "duplicate metric %s", m)
		seen[m] = true
	}
}
