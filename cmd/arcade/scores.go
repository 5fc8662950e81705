package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hungry-chameleon/internal/platform/tui"
	"github.com/vovakirdan/hungry-chameleon/internal/registry"
	"github.com/vovakirdan/hungry-chameleon/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best runs",
	Long: `Display the top 10 runs for a game. A run ranks by flies eaten, then by
how few ticks it took. Without a game, prints a summary for every game
that has runs.

Examples:
  arcade scores
  arcade scores chameleon
  arcade scores chameleon --tui
  arcade scores chameleon --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded runs for the game")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if len(args) == 0 && !flagScoresTUI {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a game")
		}
		return printAllStats(store)
	}

	gameID := ""
	if len(args) > 0 {
		if gameID, err = gameArg(args); err != nil {
			return err
		}
	}

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Cleared all runs for %s.\n", gameID)
		return nil

	case flagScoresTUI:
		cfg := terminalConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, gameID)
		return err
	}

	return printTopScores(store, gameID)
}

func printTopScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("Best Runs - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first best run!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "Rank", "Flies", "Ticks", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-6d  %-8d  %s\n", i+1, entry.Score, entry.Ticks, dateStr)
	}

	fmt.Println()
	if best, err := store.BestRun(gameID); err == nil && best != nil {
		fmt.Printf("Best: %d flies in %d ticks\n", best.Score, best.Ticks)
	}
	return nil
}

func printAllStats(store *storage.Store) error {
	all, err := store.GetAllGamesStats()
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}
	if len(all) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-12s  %-5s  %-5s  %-10s  %s\n", "Game", "Runs", "Best", "Best ticks", "Last played")
	fmt.Printf("  %-12s  %-5s  %-5s  %-10s  %s\n", "----", "----", "----", "----------", "-----------")
	for _, id := range ids {
		s := all[id]
		fmt.Printf("  %-12s  %-5d  %-5d  %-10d  %s\n",
			id, s.GamesCount, s.HighScore, s.BestTicks, s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
