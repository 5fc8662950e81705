// Package chameleon implements Hungry Chameleon for the arcade platform.
// The player steers a chameleon around a wrapping field and eats every fly.
// The rules live in the sim subpackage; this package maps platform input to
// the simulation and draws it into a character screen.
package chameleon

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/hungry-chameleon/internal/config"
	"github.com/vovakirdan/hungry-chameleon/internal/core"
	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon/sim"
	"github.com/vovakirdan/hungry-chameleon/internal/registry"
)

// GameID is the registry and score-table identifier.
const GameID = "chameleon"

// Game implements the Hungry Chameleon platform adapter.
type Game struct {
	configPath string
	preset     string

	cfg     sim.Config
	loaded  bool
	loadErr error // Last config problem; defaults are used instead

	session *sim.Session
	runtime core.RuntimeConfig
	paused  bool
}

// New creates a new Hungry Chameleon game instance.
func New() *Game {
	return &Game{cfg: sim.DefaultConfig()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Hungry Chameleon"
}

// SetConfigPath sets a custom YAML config used on the next Reset.
func (g *Game) SetConfigPath(path string) {
	g.configPath = path
	g.loaded = false
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func (g *Game) SetDifficultyPreset(preset string) {
	g.preset = preset
	g.loaded = false
}

// loadConfig resolves the session rules once per config change.
func (g *Game) loadConfig() {
	if g.loaded {
		return
	}
	g.loaded = true
	g.loadErr = nil

	preset, err := config.ParsePreset(g.preset)
	if err != nil {
		g.loadErr = err
		preset = config.DifficultyFixed
	}

	file, err := config.LoadChameleon(g.configPath)
	if err != nil {
		g.loadErr = err
		file = config.DefaultChameleonConfig()
	}
	config.ApplyChameleonPreset(&file, preset)

	g.cfg = file.Session()
}

// LoadConfig resolves the config path and preset now and returns any
// problem with them. Reset falls back to default rules instead.
func (g *Game) LoadConfig() error {
	g.loaded = false
	g.loadConfig()
	return g.loadErr
}

// Reset starts a new session. The seed in cfg fixes fly placement and
// velocities; screen size only affects rendering.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.runtime = cfg
	g.paused = false

	s, err := sim.NewSession(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		// Only reachable with rules that slipped past config validation
		g.loadErr = err
		g.cfg = sim.DefaultConfig()
		s, _ = sim.NewSession(g.cfg, rand.New(rand.NewSource(cfg.Seed)))
	}
	g.session = s
}

// Err reports a config problem from the last Reset. The game still runs
// with default rules when it is set.
func (g *Game) Err() error {
	return g.loadErr
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session.IsTerminal() {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	res := g.session.Tick(InputFromFrame(in))

	var events []string
	for _, id := range res.Captured {
		events = append(events, fmt.Sprintf("ate fly %d", id))
	}
	if res.State == sim.StateWon {
		events = append(events, "all flies eaten")
	}

	return core.StepResult{State: g.State(), Events: events}
}

// InputFromFrame converts platform actions into simulation input.
func InputFromFrame(in core.InputFrame) sim.Input {
	var si sim.Input
	si.Direction = in.Direction()
	if in.Has(core.ActionTurnLeft) {
		si.Turn--
	}
	if in.Has(core.ActionTurnRight) {
		si.Turn++
	}
	si.Tongue = in.Has(core.ActionTongue)
	si.Stop = in.Has(core.ActionStop)
	return si
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Ticks:    g.session.Ticks(),
		GameOver: g.session.IsTerminal(),
		Paused:   g.paused,
	}
}

// Snapshot returns the simulation state for renderers that draw the
// playfield themselves.
func (g *Game) Snapshot() sim.Snapshot {
	return g.session.Snapshot()
}

// FrameRate returns the configured ticks per second. The window adapter and
// terminal loop use it when no rate was given on the command line.
func (g *Game) FrameRate() int {
	g.loadConfig()
	if g.cfg.FrameRate <= 0 {
		return 60
	}
	return g.cfg.FrameRate
}

// Elapsed converts a tick count into play time.
func (g *Game) Elapsed(ticks int) time.Duration {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = g.FrameRate()
	}
	return time.Duration(ticks) * time.Second / time.Duration(rate)
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
