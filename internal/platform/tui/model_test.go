package tui

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hungry-chameleon/internal/core"
	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon"
	"github.com/vovakirdan/hungry-chameleon/internal/storage"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w", runeKey("w"), core.ActionUp},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"s", runeKey("s"), core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"d", runeKey("d"), core.ActionRight},
		{"q", runeKey("q"), core.ActionTurnLeft},
		{"e", runeKey("e"), core.ActionTurnRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTongue},
		{"x", runeKey("x"), core.ActionStop},
		{"p", runeKey("p"), core.ActionPause},
		{"r", runeKey("r"), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionQuit},
		{"b disabled locally", runeKey("b"), core.ActionNone},
		{"unbound", runeKey("z"), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestRemoteKeyMap(t *testing.T) {
	keys := RemoteKeyMap()
	if keys.Screenshot.Enabled() || keys.Copy.Enabled() {
		t.Error("remote sessions must not write files or the clipboard")
	}
	if got := keys.Action(runeKey("b")); got != core.ActionBack {
		t.Errorf("Action(b) = %v, expected Back", got)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey("q"), MenuActionQuit},
		{tea.KeyMsg{Type: tea.KeyEscape}, MenuActionBack},
		{runeKey("z"), MenuActionNone},
	}
	for _, tt := range tests {
		if got := MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, expected %v", tt.msg.String(), got, tt.want)
		}
	}
}

// quickGame returns a chameleon game that is won on its first tick.
func quickGame(t *testing.T) *chameleon.Game {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chameleon.yaml")
	yaml := "flies:\n  count: 4\ncapture:\n  threshold: 5000\n"
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	g := chameleon.New()
	g.SetConfigPath(path)
	return g
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model
}

func TestModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 11}
	m := NewModel(quickGame(t), store, cfg, nil)

	if m.config.TickRate != 60 {
		t.Errorf("TickRate = %d, expected the game's frame rate", m.config.TickRate)
	}

	for i := 0; i < 5; i++ {
		m = step(t, m, TickMsg{})
	}

	if !m.State().GameOver || m.State().Score != 4 {
		t.Fatalf("State() = %+v, expected a won game", m.State())
	}

	scores, err := store.TopScores(chameleon.GameID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 || scores[0].Ticks != 1 {
		t.Errorf("saved = %+v, expected one run of one tick", scores)
	}
	if m.status != "new best run!" {
		t.Errorf("status = %q", m.status)
	}

	if view := m.View(); !strings.Contains(view, "ALL FLIES EATEN") {
		t.Error("view is missing the win box")
	}
}

func TestModelRestartOnlyAfterGameOver(t *testing.T) {
	m := NewModel(quickGame(t), nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 4}, nil)

	// r while playing is ignored
	m = step(t, m, runeKey("r"))
	if m.inputFrame.Has(core.ActionRestart) {
		t.Error("restart queued during a live run")
	}

	m = step(t, m, TickMsg{})
	if !m.State().GameOver {
		t.Fatal("expected a win on the first tick")
	}

	m = step(t, m, runeKey("r"))
	m = step(t, m, TickMsg{})
	if m.State().GameOver || m.State().Ticks != 0 || m.scoreSaved {
		t.Errorf("after restart State() = %+v, scoreSaved = %v", m.State(), m.scoreSaved)
	}
}

func TestModelPauseAndQuit(t *testing.T) {
	m := NewModel(chameleon.New(), nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 4}, nil)

	m = step(t, m, runeKey("p"))
	m = step(t, m, TickMsg{})
	m = step(t, m, TickMsg{})
	if !m.State().Paused || m.State().Ticks != 0 {
		t.Errorf("State() = %+v, expected paused at tick 0", m.State())
	}

	// Back is off outside SSH sessions
	m = step(t, m, runeKey("b"))
	if m.BackToMenu() {
		t.Error("b should be disabled for local play")
	}

	m = step(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("esc should quit")
	}
}

func TestModelResizeKeepsRun(t *testing.T) {
	m := NewModel(chameleon.New(), nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 4}, nil)
	m = step(t, m, TickMsg{})
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.State().Ticks != 1 {
		t.Errorf("Ticks = %d after resize, expected 1", m.State().Ticks)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40-footerHeight {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestSessionModelBackToMenu(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24}
	var sm tea.Model = NewSessionModel(nil, cfg, nil)

	// Enter picks the only registered game
	sm, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := sm.(SessionModel)
	if s.view != viewGame {
		t.Fatalf("view = %v, expected game", s.view)
	}

	sm, _ = sm.Update(runeKey("p"))
	sm, _ = sm.Update(TickMsg{})
	sm, _ = sm.Update(runeKey("b"))
	if s = sm.(SessionModel); s.view != viewMenu {
		t.Errorf("view = %v, expected menu after b on a paused game", s.view)
	}

	sm, _ = sm.Update(tea.KeyMsg{Type: tea.KeyTab})
	if s = sm.(SessionModel); s.view != viewScores {
		t.Fatalf("view = %v, expected scoreboard", s.view)
	}
	sm, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEscape})
	if s = sm.(SessionModel); s.view != viewMenu || s.quitting {
		t.Errorf("view = %v quitting = %v, expected menu", s.view, s.quitting)
	}
}

func TestNewSSHServerRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name       string
		configPath string
		difficulty string
	}{
		{"missing config", filepath.Join(t.TempDir(), "missing.yaml"), ""},
		{"unknown difficulty", "", "impossible"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSSHServerConfig()
			cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")
			cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")
			cfg.ConfigPath = tt.configPath
			cfg.Difficulty = tt.difficulty
			cfg.Logger = log.New(io.Discard)

			srv, err := NewSSHServer(cfg)
			if err == nil {
				srv.Shutdown()
				t.Fatal("NewSSHServer() should refuse a bad config")
			}
		})
	}
}
