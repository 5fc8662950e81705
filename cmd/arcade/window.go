package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hungry-chameleon/internal/platform/window"
	"github.com/vovakirdan/hungry-chameleon/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [game]",
	Short: "Play in a desktop window",
	Long: `Open the playfield in a desktop window at its configured size.

Controls:
  Arrows/WASD  - Steer (hold)
  Q/E          - Turn left/right (hold)
  Space        - Stick out the tongue
  X            - Stop
  P            - Pause
  R            - Restart (after the field is clear)
  Esc          - Quit

Examples:
  arcade window
  arcade window --seed 7 --difficulty easy
  arcade window --config ./big-field.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.CreateConfigured(gameID, flagConfig, flagDifficulty)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	sim, ok := game.(window.Simulation)
	if !ok {
		return fmt.Errorf("game %q cannot run in a window", gameID)
	}

	tickRate := flagFPS
	if fr, ok := game.(interface{ FrameRate() int }); ok && tickRate <= 0 {
		tickRate = fr.FrameRate()
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	return window.Run(sim, window.Options{
		Seed:     flagSeed,
		TickRate: tickRate,
		Store:    store,
		Logger:   logger,
	})
}
