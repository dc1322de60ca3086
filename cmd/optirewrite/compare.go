package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/optirewrite/optirewrite/internal/types"
)

var compareCmd = &cobra.Command{
	Use:   "compare [text]",
	Short: "Rewrite the same text in several modes and compare the scores",
	Long: `Run one rewrite per mode concurrently and print a score table plus the
highest-confidence result.

Examples:
  optirewrite compare --in draft.txt
  optirewrite compare --modes clarity,engagement,conciseness "The text..."`,
	RunE: runCompare,
}

var (
	compareInFile    string
	compareModes     []string
	compareIntensity string
)

func init() {
	compareCmd.Flags().StringVar(&compareInFile, "in", "", "Path to a text file to rewrite")
	compareCmd.Flags().StringSliceVar(&compareModes, "modes", nil, "Modes to compare (default: all)")
	compareCmd.Flags().StringVarP(&compareIntensity, "intensity", "i", "", "Rewrite intensity for every mode")

	rootCmd.AddCommand(compareCmd)
}

func runCompare(_ *cobra.Command, args []string) error {
	fileCfg, err := loadFileConfig()
	if err != nil {
		return err
	}

	text, err := readInputText(args, compareInFile)
	if err != nil {
		return err
	}

	modes, err := resolveCompareModes()
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is harmless

	ctx := context.Background()
	eng, client, err := buildEngine(ctx, logger)
	if err != nil {
		return err
	}
	if client != nil {
		defer client.Close() //nolint:errcheck // nothing to do on close failure
	}

	baseCfg := applyRewriteFlags(fileCfg.RewriteConfig(), "", compareIntensity, "", nil, nil)

	// One invocation per mode; engine invocations are independent, so they
	// run concurrently.
	results := make([]*types.RewriteResult, len(modes))
	g, gctx := errgroup.WithContext(ctx)
	for i, mode := range modes {
		g.Go(func() error {
			cfg := baseCfg
			cfg.Mode = mode
			result, err := eng.Rewrite(gctx, text, &cfg)
			if err != nil {
				return fmt.Errorf("mode %s: %w", mode, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	printCompareTable(results)

	best := results[0]
	for _, result := range results[1:] {
		if result.ConfidenceScore > best.ConfidenceScore {
			best = result
		}
	}
	fmt.Println()
	fmt.Printf("Best by confidence: %s (%.2f)\n\n", best.Config.Mode, best.ConfidenceScore)
	fmt.Println(best.RewrittenText)

	return nil
}

func resolveCompareModes() ([]types.RewriteMode, error) {
	if len(compareModes) == 0 {
		return types.AllModes(), nil
	}

	modes := make([]types.RewriteMode, 0, len(compareModes))
	for _, raw := range compareModes {
		mode := types.RewriteMode(strings.TrimSpace(raw))
		if !mode.Valid() {
			return nil, fmt.Errorf("unknown mode %q", raw)
		}
		modes = append(modes, mode)
	}
	return modes, nil
}

func printCompareTable(results []*types.RewriteResult) {
	var (
		headerColor = lipgloss.Color("#F780FF")
		modeColor   = lipgloss.Color("#BD93F9")
		numberColor = lipgloss.Color("#FF79C6")
		borderColor = lipgloss.Color("#6272A4")
	)

	const (
		modeWidth  = 16
		scoreWidth = 12
		wordWidth  = 8
	)

	headerStyle := lipgloss.NewStyle().
		Foreground(headerColor).
		Bold(true).
		Padding(0, 1)

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)

	headers := []string{
		headerStyle.Width(modeWidth).Render("MODE"),
		headerStyle.Width(scoreWidth).Render("CONFIDENCE"),
		headerStyle.Width(scoreWidth).Render("READABILITY"),
		headerStyle.Width(scoreWidth).Render("ENGAGEMENT"),
		headerStyle.Width(wordWidth).Render("WORDS"),
	}
	fmt.Println(strings.Join(headers, borderStyle.Render("│")))

	separatorParts := []string{
		strings.Repeat("─", modeWidth),
		strings.Repeat("─", scoreWidth),
		strings.Repeat("─", scoreWidth),
		strings.Repeat("─", scoreWidth),
		strings.Repeat("─", wordWidth),
	}
	fmt.Println(borderStyle.Render(strings.Join(separatorParts, "┼")))

	modeStyle := lipgloss.NewStyle().
		Foreground(modeColor).
		Padding(0, 1).
		Width(modeWidth)

	numStyle := lipgloss.NewStyle().
		Foreground(numberColor).
		Padding(0, 1).
		Align(lipgloss.Right)

	for _, result := range results {
		cells := []string{
			modeStyle.Render(string(result.Config.Mode)),
			numStyle.Width(scoreWidth).Render(fmt.Sprintf("%.2f", result.ConfidenceScore)),
			numStyle.Width(scoreWidth).Render(fmt.Sprintf("%.2f", result.QualityScores[types.MetricReadability])),
			numStyle.Width(scoreWidth).Render(fmt.Sprintf("%.2f", result.QualityScores[types.MetricEngagement])),
			numStyle.Width(wordWidth).Render(fmt.Sprintf("%d", result.ChangeSummary.RewrittenWordCount)),
		}
		fmt.Println(strings.Join(cells, borderStyle.Render("│")))
	}
}
