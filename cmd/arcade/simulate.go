package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/hungry-chameleon/internal/config"
	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon/sim"
)

var (
	flagSimRuns     int
	flagSimMaxTicks int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run headless seeded sessions",
	Long: `Play sessions without a screen: the chameleon steers straight at the
nearest fly and flicks its tongue when one is in reach. Prints how many
ticks each seed needs to clear the field.

Run N uses seed --seed+N, so a fixed --seed reproduces the whole table.

Examples:
  arcade simulate
  arcade simulate --runs 20 --seed 1
  arcade simulate --difficulty hard --config ./my-chameleon.yaml`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimRuns, "runs", 5, "Number of sessions to play")
	simulateCmd.Flags().IntVar(&flagSimMaxTicks, "max-ticks", 100000, "Give up on a session after this many ticks")
	simulateCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simulateCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// simResult is the outcome of one headless session.
type simResult struct {
	Seed    int64
	Flies   int
	Eaten   int
	Ticks   int
	Cleared bool
}

// simulateSession plays one session with the chase input until the field is
// clear or maxTicks is reached.
func simulateSession(cfg sim.Config, seed int64, maxTicks int, logger *log.Logger) (simResult, error) {
	s, err := sim.NewSession(cfg, rand.New(rand.NewSource(seed)))
	if err != nil {
		return simResult{}, err
	}

	res := simResult{Seed: seed, Flies: s.InitialFlies()}
	for !s.IsTerminal() && s.Ticks() < maxTicks {
		tr := s.Tick(sim.Chase(s.Snapshot()))
		for _, id := range tr.Captured {
			logger.Debug("ate fly", "seed", seed, "fly", id, "tick", s.Ticks())
		}
	}

	res.Eaten = s.Score()
	res.Ticks = s.Ticks()
	res.Cleared = s.IsTerminal()
	return res, nil
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagSimRuns <= 0 || flagSimMaxTicks <= 0 {
		return fmt.Errorf("--runs and --max-ticks must be positive")
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	file, err := config.LoadChameleon(flagConfig)
	if err != nil {
		return err
	}
	config.ApplyChameleonPreset(&file, preset)
	cfg := file.Session()

	base := flagSeed
	if base == 0 {
		base = time.Now().UnixNano()
	}
	rate := max(cfg.FrameRate, 1)

	fmt.Printf("  %-4s  %-20s  %-7s  %-8s  %s\n", "Run", "Seed", "Flies", "Ticks", "Time")
	fmt.Printf("  %-4s  %-20s  %-7s  %-8s  %s\n", "---", "----", "-----", "-----", "----")

	cleared, totalTicks := 0, 0
	for i := 0; i < flagSimRuns; i++ {
		res, err := simulateSession(cfg, base+int64(i), flagSimMaxTicks, logger)
		if err != nil {
			return err
		}

		ticks := fmt.Sprintf("%d", res.Ticks)
		if res.Cleared {
			cleared++
			totalTicks += res.Ticks
		} else {
			ticks = "gave up"
		}
		elapsed := time.Duration(res.Ticks) * time.Second / time.Duration(rate)
		fmt.Printf("  %-4d  %-20d  %d/%-5d  %-8s  %s\n",
			i+1, res.Seed, res.Eaten, res.Flies, ticks, elapsed.Round(100*time.Millisecond))
		logger.Info("session done", "seed", res.Seed, "eaten", res.Eaten, "ticks", res.Ticks, "cleared", res.Cleared)
	}

	fmt.Println()
	if cleared > 0 {
		fmt.Printf("Cleared %d/%d fields, %.0f ticks on average\n", cleared, flagSimRuns, float64(totalTicks)/float64(cleared))
	} else {
		fmt.Printf("Cleared 0/%d fields\n", flagSimRuns)
	}
	return nil
}
