// Package config provides configuration-file loading and validation for the
// CLI and server. Files may be JSON or YAML; JSON files are additionally
// checked against the repository schema before decoding.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/optirewrite/optirewrite/internal/llm"
	"github.com/optirewrite/optirewrite/internal/schemas"
	"github.com/optirewrite/optirewrite/internal/types"
)

// SchemaRelativePath locates the config file schema from the repo root.
const SchemaRelativePath = "schemas/rewrite_config.schema.json"

// Config is the on-disk configuration. Every field is optional; missing
// values fall back to defaults or CLI flags.
type Config struct {
	// Rewrite behavior
	Mode               string   `json:"mode,omitempty" yaml:"mode,omitempty"`
	Intensity          string   `json:"intensity,omitempty" yaml:"intensity,omitempty"`
	TargetAudience     string   `json:"target_audience,omitempty" yaml:"target_audience,omitempty"`
	PreserveMeaning    *bool    `json:"preserve_meaning,omitempty" yaml:"preserve_meaning,omitempty"`
	PreserveStructure  *bool    `json:"preserve_structure,omitempty" yaml:"preserve_structure,omitempty"`
	TargetReadability  *float64 `json:"target_readability,omitempty" yaml:"target_readability,omitempty"`
	TargetLengthRatio  *float64 `json:"target_length_ratio,omitempty" yaml:"target_length_ratio,omitempty"`
	CustomInstructions []string `json:"custom_instructions,omitempty" yaml:"custom_instructions,omitempty"`
	ForbiddenWords     []string `json:"forbidden_words,omitempty" yaml:"forbidden_words,omitempty"`
	RequiredKeywords   []string `json:"required_keywords,omitempty" yaml:"required_keywords,omitempty"`
	StyleGuide         string   `json:"style_guide,omitempty" yaml:"style_guide,omitempty"`

	// Model provider
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	Model    string `json:"model,omitempty" yaml:"model,omitempty"`
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// Runtime
	Verbose    bool   `json:"verbose,omitempty" yaml:"verbose,omitempty"`
	Seed       *int64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	ListenAddr string `json:"listen_addr,omitempty" yaml:"listen_addr,omitempty"`
}

// Load reads a configuration file. The format is chosen by extension:
// .yaml/.yml decode as YAML, everything else as JSON. JSON files are checked
// against the repository schema when the schema file can be located.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

func parseJSON(data []byte) (*Config, error) {
	if schemaPath := schemas.ResolveSchemaPath(SchemaRelativePath); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config schema: %w", err)
		}
		if err := schemas.ValidateJSONString(string(schemaContent), string(data)); err != nil {
			return nil, fmt.Errorf("config file rejected by schema: %w", err)
		}
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

func parseYAML(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	return &cfg, nil
}

// Validate checks the value domains the schema cannot express for YAML
// files, plus the rewrite-config domains.
func (c *Config) Validate() error {
	if c.Provider != "" {
		switch llm.Provider(c.Provider) {
		case llm.ProviderGemini, llm.ProviderOpenAI:
		default:
			return fmt.Errorf("config error: unknown provider %q", c.Provider)
		}
	}

	rewriteCfg := c.RewriteConfig()
	if err := rewriteCfg.Validate(); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// RewriteConfig converts the file fields into a normalized engine config.
func (c *Config) RewriteConfig() types.RewriteConfig {
	cfg := types.DefaultRewriteConfig()

	if c.Mode != "" {
		cfg.Mode = types.RewriteMode(c.Mode)
	}
	if c.Intensity != "" {
		cfg.Intensity = types.RewriteIntensity(c.Intensity)
	}
	if c.TargetAudience != "" {
		cfg.TargetAudience = c.TargetAudience
	}
	if c.PreserveMeaning != nil {
		cfg.PreserveMeaning = *c.PreserveMeaning
	}
	if c.PreserveStructure != nil {
		cfg.PreserveStructure = *c.PreserveStructure
	}
	cfg.TargetReadability = c.TargetReadability
	cfg.TargetLengthRatio = c.TargetLengthRatio
	cfg.CustomInstructions = c.CustomInstructions
	cfg.ForbiddenWords = c.ForbiddenWords
	cfg.RequiredKeywords = c.RequiredKeywords
	cfg.StyleGuide = c.StyleGuide

	return cfg
}

// MergeWithDefaults returns a copy of c with empty fields filled from
// defaults. Boolean flags are not merged; CLI flags win for those.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Mode == "" {
		result.Mode = defaults.Mode
	}
	if result.Intensity == "" {
		result.Intensity = defaults.Intensity
	}
	if result.TargetAudience == "" {
		result.TargetAudience = defaults.TargetAudience
	}
	if result.StyleGuide == "" {
		result.StyleGuide = defaults.StyleGuide
	}
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.TargetReadability == nil {
		result.TargetReadability = defaults.TargetReadability
	}
	if result.TargetLengthRatio == nil {
		result.TargetLengthRatio = defaults.TargetLengthRatio
	}
	if result.Seed == nil {
		result.Seed = defaults.Seed
	}
	if len(result.CustomInstructions) == 0 {
		result.CustomInstructions = defaults.CustomInstructions
	}
	if len(result.ForbiddenWords) == 0 {
		result.ForbiddenWords = defaults.ForbiddenWords
	}
	if len(result.RequiredKeywords) == 0 {
		result.RequiredKeywords = defaults.RequiredKeywords
	}

	return result
}
