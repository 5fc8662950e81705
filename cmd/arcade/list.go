package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hungry-chameleon/internal/registry"
	"github.com/vovakirdan/hungry-chameleon/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and their best runs",
	Long: `Shows every game in the arcade with the best recorded run: the most
flies eaten, fastest first.

Examples:
  arcade list
  arcade list --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	printGameList(cmd.OutOrStdout(), registry.List(), store)
	return nil
}

// bestRunText summarizes the best recorded run of a game. A nil store or a
// storage error reads as no runs.
func bestRunText(store *storage.Store, gameID string) string {
	if store == nil {
		return "-"
	}
	best, err := store.BestRun(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return "-"
	}
	if best == nil {
		return "no runs yet"
	}
	return fmt.Sprintf("%d flies in %d ticks", best.Score, best.Ticks)
}

func printGameList(w io.Writer, games []registry.GameInfo, store *storage.Store) {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games available.")
		return
	}

	idW, titleW := len("ID"), len("Title")
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Best run")
	fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "--------")
	for _, g := range games {
		fmt.Fprintf(w, "  %-*s  %-*s  %s\n", idW, g.ID, titleW, g.Title, bestRunText(store, g.ID))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Play with 'arcade play <id>', 'arcade window <id>' or 'arcade menu'.")
	fmt.Fprintln(w, "Difficulty presets: easy, normal, hard, fixed (--difficulty).")
}
