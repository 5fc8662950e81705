// arcade runs Hungry Chameleon in the terminal, a desktop window or over SSH.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play [game]       - Play a game (default: chameleon)
//	arcade menu              - Start menu to pick games interactively
//	arcade window            - Play in a desktop window
//	arcade serve             - Start SSH server for remote play
//	arcade scores [game]     - Show best runs
//	arcade simulate          - Run headless seeded sessions
//	arcade config            - Print or validate a game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: the game's frame_rate)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/hungry-chameleon/internal/games/chameleon"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Hungry Chameleon - eat every fly on a wrapping field",
	Long: `Hungry Chameleon is a small arcade game: steer a chameleon around a
wrapping playfield and eat every fly. Your score is the number of flies
eaten; the run ends when the field is clear.

Available commands:
  list      - Show all available games
  play      - Play in the terminal
  menu      - Interactive game picker menu
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  scores    - View best runs
  simulate  - Run headless seeded sessions
  config    - Print or validate a game config

Examples:
  arcade play
  arcade play chameleon --difficulty hard
  arcade window --seed 42
  arcade serve --ssh :2222
  arcade scores chameleon`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = the game's frame_rate)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger from the global flags. Terminal games
// own the screen, so interactive commands discard logs unless --log-file is
// set. The returned func closes the log file.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	var out io.Writer = os.Stderr
	closeFn := func() {}
	switch {
	case flagLogFile != "":
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = func() { f.Close() }
	case interactive:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "arcade",
	})
	return logger, closeFn, nil
}
