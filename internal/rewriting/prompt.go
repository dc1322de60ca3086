package rewriting

import (
	"fmt"
	"strings"

	"github.com/optirewrite/optirewrite/internal/prompts"
	"github.com/optirewrite/optirewrite/internal/types"
)

// BuildPrompt constructs the model prompt for a full rewrite from the
// externalized templates.
func BuildPrompt(text string, cfg types.RewriteConfig) string {
	var sb strings.Builder

	sb.WriteString(prompts.MustGet("rewrite.json", "rewrite-system"))
	sb.WriteString("\n\n")

	intro := prompts.MustGet("rewrite.json", "rewrite-intro")
	sb.WriteString(prompts.Format(intro, map[string]string{
		"Mode":              string(cfg.Mode),
		"Intensity":         string(cfg.Intensity),
		"TargetAudience":    cfg.TargetAudience,
		"PreserveMeaning":   fmt.Sprintf("%t", cfg.PreserveMeaning),
		"PreserveStructure": fmt.Sprintf("%t", cfg.PreserveStructure),
	}))

	if cfg.TargetReadability != nil {
		template := prompts.MustGet("rewrite.json", "rewrite-target-readability")
		sb.WriteString(prompts.Format(template, map[string]string{
			"TargetReadability": fmt.Sprintf("%.2f", *cfg.TargetReadability),
		}))
	}

	if cfg.TargetLengthRatio != nil {
		template := prompts.MustGet("rewrite.json", "rewrite-target-length")
		sb.WriteString(prompts.Format(template, map[string]string{
			"TargetLengthRatio": fmt.Sprintf("%.2f", *cfg.TargetLengthRatio),
		}))
	}

	if len(cfg.CustomInstructions) > 0 {
		template := prompts.MustGet("rewrite.json", "rewrite-custom-instructions")
		sb.WriteString(prompts.Format(template, map[string]string{
			"Instructions": joinList(cfg.CustomInstructions),
		}))
	}

	if len(cfg.ForbiddenWords) > 0 {
		template := prompts.MustGet("rewrite.json", "rewrite-forbidden-words")
		sb.WriteString(prompts.Format(template, map[string]string{
			"ForbiddenWords": joinList(cfg.ForbiddenWords),
		}))
	}

	if len(cfg.RequiredKeywords) > 0 {
		template := prompts.MustGet("rewrite.json", "rewrite-required-keywords")
		sb.WriteString(prompts.Format(template, map[string]string{
			"RequiredKeywords": joinList(cfg.RequiredKeywords),
		}))
	}

	if cfg.StyleGuide != "" {
		template := prompts.MustGet("rewrite.json", "rewrite-style-guide")
		sb.WriteString(prompts.Format(template, map[string]string{
			"StyleGuide": cfg.StyleGuide,
		}))
	}

	footer := prompts.MustGet("rewrite.json", "rewrite-footer")
	sb.WriteString(prompts.Format(footer, map[string]string{
		"Text": text,
	}))

	return sb.String()
}
