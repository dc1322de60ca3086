package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optirewrite/optirewrite/internal/types"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_ValidJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
		"mode": "clarity",
		"intensity": "heavy",
		"target_audience": "engineers",
		"forbidden_words": ["synergy"],
		"provider": "openai",
		"verbose": true,
		"seed": 42
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "clarity", cfg.Mode)
	assert.Equal(t, "heavy", cfg.Intensity)
	assert.Equal(t, "engineers", cfg.TargetAudience)
	assert.Equal(t, []string{"synergy"}, cfg.ForbiddenWords)
	assert.Equal(t, "openai", cfg.Provider)
	assert.True(t, cfg.Verbose)
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, int64(42), *cfg.Seed)
}

func TestLoad_ValidYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
mode: conversational
intensity: light
required_keywords:
  - launch
target_length_ratio: 0.8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "conversational", cfg.Mode)
	assert.Equal(t, "light", cfg.Intensity)
	assert.Equal(t, []string{"launch"}, cfg.RequiredKeywords)
	require.NotNil(t, cfg.TargetLengthRatio)
	assert.Equal(t, 0.8, *cfg.TargetLengthRatio)
}

func TestLoad_SchemaRejectsUnknownMode(t *testing.T) {
	// Schema checking only fires when the schema file is reachable, which it
	// is when tests run from the package directory.
	if schemaPath := filepath.Join("..", "..", SchemaRelativePath); !fileExists(t, schemaPath) {
		t.Skip("schema file not reachable")
	}

	path := writeTempConfig(t, "config.json", `{"mode": "poetic"}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func fileExists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	return err == nil
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{"mode": `)
	_, err := Load(path)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		cfg := &Config{Mode: "clarity", Intensity: "moderate", Provider: "gemini"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown provider", func(t *testing.T) {
		cfg := &Config{Provider: "bedrock"}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "provider")
	})

	t.Run("unknown mode", func(t *testing.T) {
		cfg := &Config{Mode: "poetic"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("out-of-range readability", func(t *testing.T) {
		bad := 1.5
		cfg := &Config{TargetReadability: &bad}
		assert.Error(t, cfg.Validate())
	})
}

func TestRewriteConfig_DefaultsAndOverrides(t *testing.T) {
	preserve := false
	cfg := &Config{
		Mode:            "formality",
		PreserveMeaning: &preserve,
	}

	rc := cfg.RewriteConfig()

	assert.Equal(t, types.ModeFormality, rc.Mode)
	assert.Equal(t, types.IntensityModerate, rc.Intensity)
	assert.Equal(t, "general", rc.TargetAudience)
	assert.False(t, rc.PreserveMeaning)
}

func TestMergeWithDefaults(t *testing.T) {
	seed := int64(7)
	defaults := Config{
		Mode:     "balanced",
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		Seed:     &seed,
	}
	overrides := Config{Mode: "clarity"}

	merged := overrides.MergeWithDefaults(defaults)

	assert.Equal(t, "clarity", merged.Mode)
	assert.Equal(t, "gemini", merged.Provider)
	assert.Equal(t, "gemini-2.5-flash", merged.Model)
	require.NotNil(t, merged.Seed)
	assert.Equal(t, int64(7), *merged.Seed)
}
