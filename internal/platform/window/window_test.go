package window

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/hungry-chameleon/internal/core"
	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon"
	"github.com/vovakirdan/hungry-chameleon/internal/storage"
)

// fakeKeys builds a key source from fixed sets of keys.
func fakeKeys(held, pressed []ebiten.Key) keySource {
	h := make(map[ebiten.Key]bool)
	for _, k := range held {
		h[k] = true
	}
	p := make(map[ebiten.Key]bool)
	for _, k := range pressed {
		p[k] = true
	}
	return keySource{
		pressed:     func(k ebiten.Key) bool { return h[k] },
		justPressed: func(k ebiten.Key) bool { return p[k] },
	}
}

func TestReadFrame(t *testing.T) {
	tests := []struct {
		name    string
		held    []ebiten.Key
		pressed []ebiten.Key
		want    []core.Action
		dir     core.Vec
	}{
		{"nothing", nil, nil, nil, core.Vec{}},
		{"wasd diagonal", []ebiten.Key{ebiten.KeyW, ebiten.KeyD}, nil, []core.Action{core.ActionUp, core.ActionRight}, core.V(1, -1)},
		{"arrows cancel", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, nil, []core.Action{core.ActionLeft, core.ActionRight}, core.Vec{}},
		{"turn held", []ebiten.Key{ebiten.KeyQ}, nil, []core.Action{core.ActionTurnLeft}, core.Vec{}},
		{"tongue and pause", nil, []ebiten.Key{ebiten.KeySpace, ebiten.KeyP}, []core.Action{core.ActionTongue, core.ActionPause}, core.Vec{}},
		{"escape quits", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}, core.Vec{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			frame := readFrame(fakeKeys(tt.held, tt.pressed))
			for _, a := range tt.want {
				if !frame.Has(a) {
					t.Errorf("frame missing %v", a)
				}
			}
			if len(tt.want) == 0 && !frame.Empty() {
				t.Errorf("frame = %v, expected empty", frame.Actions)
			}
			if !frame.Direction().Eq(tt.dir) {
				t.Errorf("Direction() = %v, expected %v", frame.Direction(), tt.dir)
			}
		})
	}
}

func TestPressKeysIgnoreHeld(t *testing.T) {
	// Holding space must not keep re-extending the tongue
	frame := readFrame(fakeKeys([]ebiten.Key{ebiten.KeySpace, ebiten.KeyEscape}, nil))
	if frame.Has(core.ActionTongue) || frame.Has(core.ActionQuit) {
		t.Errorf("held press keys leaked into frame: %v", frame.Actions)
	}
}

// instantWin returns a chameleon game whose flies are all in reach at once.
func instantWin(t *testing.T) *chameleon.Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chameleon.yaml")
	yaml := "flies:\n  count: 2\ncapture:\n  threshold: 5000\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	g := chameleon.New()
	g.SetConfigPath(path)
	return g
}

func TestTickSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := New(instantWin(t), Options{Seed: 3, Store: store})
	if w, h := g.Layout(0, 0); w != 800 || h != 600 {
		t.Errorf("Layout() = %dx%d, expected 800x600", w, h)
	}

	for i := 0; i < 3; i++ {
		if err := g.tick(core.NewInputFrame()); err != nil {
			t.Fatalf("tick() = %v", err)
		}
	}

	state := g.State()
	if !state.GameOver || state.Score != 2 || state.Ticks != 1 {
		t.Fatalf("State() = %+v, expected a win after one tick", state)
	}
	if !g.best {
		t.Error("first recorded run should be the best")
	}

	scores, err := store.TopScores(chameleon.GameID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Score != 2 || scores[0].Ticks != 1 {
		t.Errorf("saved scores = %+v, expected one run", scores)
	}
}

func TestTickRestartAndQuit(t *testing.T) {
	g := New(instantWin(t), Options{Seed: 3})

	// Restart does nothing while the run is live
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.tick(restart)
	if !g.State().GameOver {
		t.Fatal("expected the first tick to win")
	}

	if err := g.tick(restart); err != nil {
		t.Fatalf("tick(restart) = %v", err)
	}
	if g.State().GameOver || g.State().Ticks != 0 || g.saved {
		t.Errorf("after restart State() = %+v, saved = %v", g.State(), g.saved)
	}

	quit := core.NewInputFrame()
	quit.Set(core.ActionQuit)
	if err := g.tick(quit); !errors.Is(err, ebiten.Termination) {
		t.Errorf("tick(quit) = %v, expected ebiten.Termination", err)
	}
}

func TestTickPause(t *testing.T) {
	g := New(chameleon.New(), Options{Seed: 5})

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.tick(pause)
	if !g.State().Paused {
		t.Fatal("expected pause")
	}

	g.tick(core.NewInputFrame())
	if g.State().Ticks != 0 {
		t.Errorf("paused game advanced to tick %d", g.State().Ticks)
	}
}
