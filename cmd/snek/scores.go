package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/snek/internal/registry"
	"github.com/vovakirdan/snek/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top scores for the given variant, or the configured default.

Examples:
  snek scores
  snek scores small --limit 20
  snek scores wide --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	variantID := cfg.DefaultVariant
	if len(args) == 1 {
		variantID = args[0]
	}

	v, err := registry.Lookup(variantID)
	if err != nil {
		return fmt.Errorf("%w, run 'snek list' to see available variants", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(v.ID); err != nil {
			return err
		}
		logger.Info("scores cleared", "variant", v.ID)
		fmt.Printf("Cleared scores for %s.\n", v.Title)
		return nil
	}

	scores, err := store.TopScores(v.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n\n", v.Title)

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'snek play %s' to set the first high score!\n", v.ID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-6s  %-15s  %s\n", "Rank", "Score", "Length", "Ended by", "Date")
	fmt.Printf("  %-4s  %-6s  %-6s  %-15s  %s\n", "----", "-----", "------", "--------", "----")
	for i, rec := range scores {
		fmt.Printf("  %-4d  %-6d  %-6d  %-15s  %s\n",
			i+1, rec.Score, rec.Length, rec.Reason, rec.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(v.ID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  |  Runs: %d  |  Average: %.1f  |  Longest snake: %d\n",
		stats.HighScore, stats.Runs, stats.AvgScore, stats.LongestLen)
	return nil
}
