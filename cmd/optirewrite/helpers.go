package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/optirewrite/optirewrite/internal/config"
	"github.com/optirewrite/optirewrite/internal/engine"
	"github.com/optirewrite/optirewrite/internal/llm"
	"github.com/optirewrite/optirewrite/internal/rewriting"
	"github.com/optirewrite/optirewrite/internal/types"
)

// loadFileConfig loads the --config file when given. Persistent flags win
// over file values.
func loadFileConfig() (*config.Config, error) {
	if flagConfig == "" {
		return &config.Config{}, nil
	}

	fileCfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := fileCfg.Validate(); err != nil {
		return nil, err
	}

	if fileCfg.Verbose {
		flagVerbose = true
	}
	if flagSeed == 0 && fileCfg.Seed != nil {
		flagSeed = *fileCfg.Seed
	}
	if flagProvider == "" {
		flagProvider = fileCfg.Provider
	}
	if flagModel == "" {
		flagModel = fileCfg.Model
	}
	if flagAPIKey == "" {
		flagAPIKey = fileCfg.APIKey
	}

	return fileCfg, nil
}

// buildModelClient constructs the provider client when an API key is
// resolvable. Returns nil without error when no key is configured; the
// engine then runs rule-based only.
func buildModelClient(ctx context.Context) (llm.Client, error) {
	var cfg *llm.Config
	switch llm.Provider(flagProvider) {
	case llm.ProviderOpenAI:
		cfg = llm.DefaultOpenAIConfig()
	case llm.ProviderGemini, "":
		cfg = llm.DefaultGeminiConfig()
	default:
		return nil, fmt.Errorf("unknown provider %q", flagProvider)
	}

	if flagModel != "" {
		cfg = cfg.WithModel(flagModel)
	}
	cfg.APIKey = flagAPIKey

	if cfg.ResolveAPIKey() == "" {
		return nil, nil
	}
	return llm.NewClient(ctx, cfg)
}

// buildEngine wires the engine from flags plus an optional model client.
func buildEngine(ctx context.Context, logger *zap.Logger) (*engine.Engine, llm.Client, error) {
	client, err := buildModelClient(ctx)
	if err != nil {
		return nil, nil, err
	}

	opts := []engine.Option{
		engine.WithLogger(logger),
		engine.WithAIRewriter(rewriting.New(client, logger)),
	}
	if flagSeed != 0 {
		opts = append(opts, engine.WithRandSeed(flagSeed))
	}

	return engine.New(opts...), client, nil
}

// readInputText resolves the text to operate on: a positional argument, a
// --in file, or stdin when neither is given.
func readInputText(args []string, inFile string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	if inFile != "" {
		data, err := os.ReadFile(inFile)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil || len(data) == 0 {
		return "", fmt.Errorf("no input text: pass it as an argument, via --in, or on stdin")
	}
	return string(data), nil
}

// applyRewriteFlags overlays per-command flags onto the file-derived config.
func applyRewriteFlags(cfg types.RewriteConfig, mode, intensity, audience string, forbidden, required []string) types.RewriteConfig {
	if mode != "" {
		cfg.Mode = types.RewriteMode(mode)
	}
	if intensity != "" {
		cfg.Intensity = types.RewriteIntensity(intensity)
	}
	if audience != "" {
		cfg.TargetAudience = audience
	}
	if len(forbidden) > 0 {
		cfg.ForbiddenWords = forbidden
	}
	if len(required) > 0 {
		cfg.RequiredKeywords = required
	}
	return cfg
}
