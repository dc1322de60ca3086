// Package rewriting provides the boundary between the rewrite pipeline and
// the external generative model. Any model failure degrades to rule-based
// strategies; transport errors never propagate past this package.
package rewriting

import (
	"context"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/optirewrite/optirewrite/internal/llm"
	"github.com/optirewrite/optirewrite/internal/strategies"
	"github.com/optirewrite/optirewrite/internal/types"
)

// defaultModelTimeout bounds the wait on the external model call before
// falling back to rule-based rewriting.
const defaultModelTimeout = 30 * time.Second

// AIRewriter delegates full rewrites to a generative model when one is
// configured. The client handle is read-only after construction and the
// rewriter is safe for concurrent use.
type AIRewriter struct {
	client  llm.Client
	logger  *zap.Logger
	timeout time.Duration
}

// Option configures an AIRewriter.
type Option func(*AIRewriter)

// WithTimeout overrides the bounded wait on the model call.
func WithTimeout(d time.Duration) Option {
	return func(r *AIRewriter) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates an AIRewriter. A nil client is valid and means every rewrite
// takes the rule-based fallback path.
func New(client llm.Client, logger *zap.Logger, opts ...Option) *AIRewriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &AIRewriter{
		client:  client,
		logger:  logger,
		timeout: defaultModelTimeout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Available reports whether a model client is configured.
func (r *AIRewriter) Available() bool {
	return r.client != nil
}

// Rewrite produces a full rewrite of text. The model path is attempted when
// a client is configured; any failure falls back to a fixed per-mode
// composition of rule-based strategies. Rewrite never fails.
func (r *AIRewriter) Rewrite(ctx context.Context, text string, cfg types.RewriteConfig, rng *rand.Rand) string {
	rewritten, err := r.generate(ctx, text, cfg)
	if err != nil {
		r.logger.Warn("model rewrite unavailable, using rule-based fallback",
			zap.String("mode", string(cfg.Mode)),
			zap.Error(err))
		return r.Fallback(text, cfg, rng)
	}
	return rewritten
}

// generate performs the single model request. All failures, including an
// unconfigured client, an exceeded deadline, and an empty response, are
// reported as ModelUnavailableError.
func (r *AIRewriter) generate(ctx context.Context, text string, cfg types.RewriteConfig) (string, error) {
	if r.client == nil {
		return "", &ModelUnavailableError{Message: "no model client configured"}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	response, err := r.client.Generate(ctx, BuildPrompt(text, cfg))
	if err != nil {
		return "", &ModelUnavailableError{Message: "generate call failed", Cause: err}
	}

	rewritten := llm.CleanTextResponse(response)
	if rewritten == "" {
		return "", &ModelUnavailableError{Message: "model returned empty text"}
	}
	return rewritten, nil
}

// Fallback applies the fixed per-mode composition of rule-based strategies.
func (r *AIRewriter) Fallback(text string, cfg types.RewriteConfig, rng *rand.Rand) string {
	rewritten := text

	switch cfg.Mode {
	case types.ModeClarity:
		rewritten = strategies.ImproveClarity(rewritten, cfg.Intensity)
		rewritten = strategies.RestructureSentences(rewritten, cfg.Intensity, rng)

	case types.ModeEngagement:
		rewritten = strategies.BoostEngagement(rewritten, cfg.Intensity, rng)
		rewritten = strategies.EnhanceVocabulary(rewritten, cfg.Mode, cfg.Intensity, rng)

	case types.ModeConciseness:
		rewritten = strategies.ImproveClarity(rewritten, cfg.Intensity)

	case types.ModeFormality:
		rewritten = strategies.AdjustTone(rewritten, "formal")
		rewritten = strategies.EnhanceVocabulary(rewritten, cfg.Mode, cfg.Intensity, rng)

	case types.ModeConversational:
		rewritten = strategies.AdjustTone(rewritten, "casual")
		rewritten = strategies.BoostEngagement(rewritten, cfg.Intensity, rng)

	default: // balanced and remaining modes
		rewritten = strategies.ImproveClarity(rewritten, cfg.Intensity)
		rewritten = strategies.EnhanceVocabulary(rewritten, cfg.Mode, cfg.Intensity, rng)
		rewritten = strategies.BoostEngagement(rewritten, cfg.Intensity, rng)
	}

	return rewritten
}

// joinList renders a string list for prompt interpolation.
func joinList(items []string) string {
	return strings.Join(items, ", ")
}
