package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/optirewrite/optirewrite/internal/engine"
	"github.com/optirewrite/optirewrite/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze text without rewriting it",
	Long:  "Measure readability, complexity, tone distribution, and style consistency, and report improvement opportunities.",
	RunE:  runAnalyze,
}

var (
	analyzeInFile string
	analyzeJSON   bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeInFile, "in", "", "Path to a text file to analyze")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the analysis as JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	if _, err := loadFileConfig(); err != nil {
		return err
	}

	text, err := readInputText(args, analyzeInFile)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	eng := engine.New(engine.WithLogger(logger))

	analysis, err := eng.Analyze(text)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeJSON {
		jsonBytes, err := json.MarshalIndent(analysis, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal analysis: %w", err)
		}
		fmt.Println(string(jsonBytes))
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintAnalysis(analysis)
	return nil
}
