// Package window runs a game in a desktop window using Ebiten. The playfield
// is drawn at 1:1 scale, so the window is exactly the playfield size.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/hungry-chameleon/internal/core"
	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon/sim"
	"github.com/vovakirdan/hungry-chameleon/internal/storage"
)

// Simulation is the game the window drives. The chameleon adapter
// satisfies it.
type Simulation interface {
	ID() string
	Title() string
	Reset(core.RuntimeConfig)
	Step(core.InputFrame) core.StepResult
	State() core.GameState
	Snapshot() sim.Snapshot
}

// Options configure a window run.
type Options struct {
	Seed     int64 // 0 picks a time-based seed
	TickRate int   // Ticks per second; 0 uses 60
	Store    *storage.Store
	Logger   *log.Logger
}

var (
	backgroundColor = color.RGBA{R: 18, G: 26, B: 20, A: 255}
	flyColor        = color.RGBA{R: 230, G: 210, B: 60, A: 255}
	chameleonColor  = color.RGBA{R: 70, G: 190, B: 90, A: 255}
	headingColor    = color.RGBA{R: 220, G: 255, B: 220, A: 255}
	tongueColor     = color.RGBA{R: 230, G: 80, B: 110, A: 255}
	reachColor      = color.RGBA{R: 230, G: 80, B: 110, A: 70}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 160}
)

// keySource reports key presses. Ebiten's global input in production,
// maps in tests.
type keySource struct {
	pressed     func(ebiten.Key) bool
	justPressed func(ebiten.Key) bool
}

var ebitenKeys = keySource{
	pressed:     ebiten.IsKeyPressed,
	justPressed: inpututil.IsKeyJustPressed,
}

// Held keys steer every tick; the rest act once per press.
var (
	heldKeys = map[ebiten.Key]core.Action{
		ebiten.KeyArrowUp:    core.ActionUp,
		ebiten.KeyW:          core.ActionUp,
		ebiten.KeyArrowDown:  core.ActionDown,
		ebiten.KeyS:          core.ActionDown,
		ebiten.KeyArrowLeft:  core.ActionLeft,
		ebiten.KeyA:          core.ActionLeft,
		ebiten.KeyArrowRight: core.ActionRight,
		ebiten.KeyD:          core.ActionRight,
		ebiten.KeyQ:          core.ActionTurnLeft,
		ebiten.KeyE:          core.ActionTurnRight,
	}
	pressKeys = map[ebiten.Key]core.Action{
		ebiten.KeySpace:  core.ActionTongue,
		ebiten.KeyX:      core.ActionStop,
		ebiten.KeyP:      core.ActionPause,
		ebiten.KeyR:      core.ActionRestart,
		ebiten.KeyEscape: core.ActionQuit,
	}
)

// readFrame collects this tick's actions.
func readFrame(keys keySource) core.InputFrame {
	frame := core.NewInputFrame()
	for k, a := range heldKeys {
		if keys.pressed(k) {
			frame.Set(a)
		}
	}
	for k, a := range pressKeys {
		if keys.justPressed(k) {
			frame.Set(a)
		}
	}
	return frame
}

// Game implements ebiten.Game around a Simulation.
type Game struct {
	game   Simulation
	keys   keySource
	opts   Options
	logger *log.Logger

	snap  sim.Snapshot
	state core.GameState
	saved bool
	best  bool
}

// New creates a window game and starts the first run.
func New(s Simulation, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		game:   s,
		keys:   ebitenKeys,
		opts:   opts,
		logger: logger.With("game", s.ID()),
	}
	g.reset(opts.Seed)
	return g
}

func (g *Game) reset(seed int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w, h := g.Layout(0, 0)
	g.game.Reset(core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: g.opts.TickRate,
		Seed:     seed,
	})
	g.snap = g.game.Snapshot()
	g.state = g.game.State()
	g.saved = false
	g.best = false

	if ce, ok := g.game.(interface{ Err() error }); ok && ce.Err() != nil {
		g.logger.Warn("using default rules", "error", ce.Err())
	}
	g.logger.Debug("run started", "seed", seed)
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	return g.tick(readFrame(g.keys))
}

// tick applies one frame of input. It returns ebiten.Termination on quit.
func (g *Game) tick(frame core.InputFrame) error {
	if frame.Has(core.ActionQuit) {
		g.logger.Info("window closed", "score", g.state.Score, "ticks", g.state.Ticks)
		return ebiten.Termination
	}

	if frame.Has(core.ActionRestart) && g.state.GameOver {
		g.reset(0)
		return nil
	}

	result := g.game.Step(frame)
	g.state = result.State
	g.snap = g.game.Snapshot()
	for _, ev := range result.Events {
		g.logger.Debug(ev, "tick", g.state.Ticks)
	}

	if g.state.GameOver && !g.saved {
		g.saved = true
		g.saveRun()
	}
	return nil
}

// saveRun records the finished run. Storage problems are logged only.
func (g *Game) saveRun() {
	g.logger.Info("run finished", "score", g.state.Score, "ticks", g.state.Ticks)
	if g.opts.Store == nil || g.state.Ticks == 0 {
		return
	}
	if _, err := g.opts.Store.SaveScore(g.game.ID(), g.state.Score, g.state.Ticks); err != nil {
		g.logger.Warn("could not save score", "error", err)
		return
	}
	best, err := g.opts.Store.BestRun(g.game.ID())
	if err == nil && best != nil && best.Score == g.state.Score && best.Ticks == g.state.Ticks {
		g.best = true
	}
}

// Draw renders the playfield.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	s := g.snap

	for _, f := range s.Flies {
		vector.FillCircle(screen, float32(f.Pos.X), float32(f.Pos.Y), float32(f.Radius), flyColor, true)
	}

	c := s.Chameleon
	cx, cy := float32(c.Pos.X), float32(c.Pos.Y)
	if s.TongueOut {
		tip := s.TonguePoint()
		vector.StrokeCircle(screen, cx, cy, float32(s.Threshold), 1, reachColor, true)
		vector.StrokeLine(screen, cx, cy, float32(tip.X), float32(tip.Y), 3, tongueColor, true)
	}
	vector.FillCircle(screen, cx, cy, float32(c.Radius), chameleonColor, true)
	nose := c.Pos.Add(c.Heading.Mul(c.Radius))
	vector.StrokeLine(screen, cx, cy, float32(nose.X), float32(nose.Y), 2, headingColor, true)

	elapsed := time.Duration(s.Tick) * time.Second / time.Duration(g.opts.TickRate)
	hud := fmt.Sprintf("Flies: %d/%d  Score: %d  Time: %.1fs", s.Remaining, s.Initial, s.Score, elapsed.Seconds())
	ebitenutil.DebugPrintAt(screen, hud, 8, 6)

	switch {
	case s.Terminal:
		msg := fmt.Sprintf("ALL FLIES EATEN\nScore %d in %.1fs\nR: restart  Esc: quit", s.Score, elapsed.Seconds())
		if g.best {
			msg += "\nNew best run!"
		}
		g.drawBanner(screen, msg)
	case g.state.Paused:
		g.drawBanner(screen, "PAUSED\nP: resume")
	}
}

// drawBanner draws a dimmed box with text in the middle of the field.
func (g *Game) drawBanner(screen *ebiten.Image, msg string) {
	w, h := g.Layout(0, 0)
	const boxW, boxH = 220, 80
	x := float32(w-boxW) / 2
	y := float32(h-boxH) / 2
	vector.FillRect(screen, x, y, boxW, boxH, overlayColor, false)
	vector.StrokeRect(screen, x, y, boxW, boxH, 1, headingColor, false)
	ebitenutil.DebugPrintAt(screen, msg, int(x)+12, int(y)+10)
}

// Layout keeps the logical screen at the playfield size.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.snap.Bounds
	return max(int(math.Ceil(b.W)), 1), max(int(math.Ceil(b.H)), 1)
}

// State returns the last game state seen by the window.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens a window and blocks until it is closed.
func Run(s Simulation, opts Options) error {
	g := New(s, opts)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowTitle(s.Title())
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(g.opts.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
