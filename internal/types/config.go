package types

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// RewriteConfig describes the desired style and intensity of a rewrite.
// A config is immutable once passed into a rewrite call.
type RewriteConfig struct {
	Mode               RewriteMode      `json:"mode" yaml:"mode" validate:"omitempty,rewrite_mode"`
	Intensity          RewriteIntensity `json:"intensity" yaml:"intensity" validate:"omitempty,rewrite_intensity"`
	TargetAudience     string           `json:"target_audience,omitempty" yaml:"target_audience,omitempty"`
	PreserveMeaning    bool             `json:"preserve_meaning" yaml:"preserve_meaning"`
	PreserveStructure  bool             `json:"preserve_structure" yaml:"preserve_structure"`
	TargetReadability  *float64         `json:"target_readability,omitempty" yaml:"target_readability,omitempty" validate:"omitempty,gte=0,lte=1"`
	TargetLengthRatio  *float64         `json:"target_length_ratio,omitempty" yaml:"target_length_ratio,omitempty" validate:"omitempty,gt=0"`
	CustomInstructions []string         `json:"custom_instructions,omitempty" yaml:"custom_instructions,omitempty"`
	ForbiddenWords     []string         `json:"forbidden_words,omitempty" yaml:"forbidden_words,omitempty"`
	RequiredKeywords   []string         `json:"required_keywords,omitempty" yaml:"required_keywords,omitempty"`
	StyleGuide         string           `json:"style_guide,omitempty" yaml:"style_guide,omitempty"`
}

// DefaultRewriteConfig returns the configuration used when a caller passes none.
func DefaultRewriteConfig() RewriteConfig {
	return RewriteConfig{
		Mode:            ModeBalanced,
		Intensity:       IntensityModerate,
		TargetAudience:  "general",
		PreserveMeaning: true,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// configValidator returns the shared validator instance with the custom
// enum validators registered.
func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Registration only fails for empty tags or nil funcs, neither of
		// which can happen here.
		_ = validate.RegisterValidation("rewrite_mode", func(fl validator.FieldLevel) bool {
			return RewriteMode(fl.Field().String()).Valid()
		})
		_ = validate.RegisterValidation("rewrite_intensity", func(fl validator.FieldLevel) bool {
			return RewriteIntensity(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Validate checks that every config field lies in its declared domain.
func (c *RewriteConfig) Validate() error {
	if err := configValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid rewrite config: %w", err)
	}
	return nil
}

// Normalized returns a copy of c with zero-valued mode and intensity filled
// from defaults. The receiver is never mutated.
func (c RewriteConfig) Normalized() RewriteConfig {
	out := c
	if out.Mode == "" {
		out.Mode = ModeBalanced
	}
	if out.Intensity == "" {
		out.Intensity = IntensityModerate
	}
	if out.TargetAudience == "" {
		out.TargetAudience = "general"
	}
	return out
}
