package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/orb-sort/internal/games/orbsort"
	"github.com/vovakirdan/orb-sort/internal/registry"
	"github.com/vovakirdan/orb-sort/internal/storage"
)

var (
	flagScoresLevel string
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores for a variant",
	Long: `Display the top 10 scores, the best run and totals for a variant.

Examples:
  orbsort scores
  orbsort scores orbsort_classic
  orbsort scores --level classic
  orbsort scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresLevel, "level", "", "Only show scores for this level")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and runs of the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := string(orbsort.VariantBatch)
	if len(args) > 0 {
		gameID = args[0]
	}
	info, ok := registry.Info(gameID)
	if !ok {
		return fmt.Errorf("unknown variant %q\nRun 'orbsort list' to see available variants", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared scores for %s.\n", info.Title)
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLevel, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'orbsort play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-20s  %s\n", "Rank", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-6s  %-20s  %s\n", "----", "-----", "-----", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-20s  %s\n", i+1, entry.Score, entry.LevelID, dateStr)
	}

	fmt.Println()
	if flagScoresLevel != "" {
		if best, err := store.BestRun(gameID, flagScoresLevel); err == nil && best != nil {
			fmt.Printf("Best run: %d moves in %d:%02d (seed %d)\n",
				best.Moves, best.Duration/60, best.Duration%60, best.Seed)
		}
	}
	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Printf("Best: %d  Average: %.0f  Solved: %d of %d runs\n",
			stats.HighScore, stats.AvgScore, stats.SolvedRuns, stats.RunsCount)
	}
	return nil
}
