// Package main provides the optirewrite CLI: content rewriting and quality
// scoring from the command line or over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "optirewrite",
	Short: "Content rewriting and quality-scoring engine",
	Long:  "OptiRewrite rewrites text toward a chosen optimization goal (clarity, engagement, formality, ...) using rule-based strategies with an optional generative-model path, and scores the result against a fixed quality-metric set.",
}

var (
	flagConfig   string
	flagVerbose  bool
	flagSeed     int64
	flagProvider string
	flagModel    string
	flagAPIKey   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a JSON or YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print detailed analysis and score breakdowns")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Seed for the strategy random source (0 = time-based)")
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "Model provider: gemini or openai")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Model name (provider default when empty)")
	rootCmd.PersistentFlags().StringVar(&flagAPIKey, "api-key", "", "Model API key (overrides GEMINI_API_KEY / OPENAI_API_KEY)")
}

// newLogger builds the CLI logger. Verbose mode gets the development
// encoder; otherwise only warnings and errors reach the terminal.
func newLogger() (*zap.Logger, error) {
	if flagVerbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
