package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/hungry-chameleon/internal/core"
	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon"
	"github.com/vovakirdan/hungry-chameleon/internal/platform/tui"
	"github.com/vovakirdan/hungry-chameleon/internal/registry"
	"github.com/vovakirdan/hungry-chameleon/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game in the terminal",
	Long: `Start playing the specified game (default: chameleon).

Controls:
  Arrows/WASD  - Steer
  Q/E          - Turn left/right
  Space        - Stick out the tongue
  X            - Stop
  P            - Pause
  R            - Restart (after the field is clear)
  Ctrl+S       - Save a text screenshot
  Ctrl+Y       - Copy the frame to the clipboard
  ?            - Help
  Esc/Ctrl+C   - Quit

Difficulty options:
  easy   - Fewer, slower flies and a longer reach
  normal - The configured rules
  hard   - More, faster flies and a shorter reach
  fixed  - The configured rules, untouched (default)

Examples:
  arcade play
  arcade play chameleon --difficulty easy
  arcade play --config ./my-chameleon.yaml
  arcade play --seed 42 --fps 30`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, menuCmd, windowCmd, serveCmd} {
		c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
		c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	}
}

// gameArg returns the requested game ID, defaulting to chameleon.
func gameArg(args []string) (string, error) {
	gameID := chameleon.GameID
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	return gameID, nil
}

// terminalConfig builds a runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database. Play continues without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores disabled", "db", flagDBPath, "error", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := gameArg(args)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := registry.CreateConfigured(gameID, flagConfig, flagDifficulty)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, store, terminalConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
