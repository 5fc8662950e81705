package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hungry-chameleon/internal/core"
	"github.com/vovakirdan/hungry-chameleon/internal/registry"
	"github.com/vovakirdan/hungry-chameleon/internal/storage"
)

// footerHeight is the number of rows kept below the game for help/status.
const footerHeight = 1

// statusTTL is how long a status message replaces the help footer.
const statusTTL = 3 * time.Second

// frameRater is implemented by games that carry their own tick rate.
type frameRater interface {
	FrameRate() int
}

// configErrer is implemented by games that fall back to defaults when their
// config is broken.
type configErrer interface {
	Err() error
}

// Model is the Bubble Tea model for running an arcade game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether the run has been saved for the current game over

	status      string
	statusUntil time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards log output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
		if fr, ok := game.(frameRater); ok {
			cfg.TickRate = fr.FrameRate()
		}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-footerHeight, 1)),
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}

	// Reset here rather than in Init: Init has a value receiver, so state
	// captured there would be lost.
	m.reset()
	return m
}

// WithKeyMap replaces the key bindings, e.g. with RemoteKeyMap for SSH.
func (m Model) WithKeyMap(k KeyMap) Model {
	m.keys = k
	return m
}

// reset starts a new run with the current seed.
func (m *Model) reset() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.inputFrame.Clear()

	if ce, ok := m.game.(configErrer); ok && ce.Err() != nil {
		m.logger.Warn("using default rules", "error", ce.Err())
		m.setStatus("config error, using defaults")
	}
	m.logger.Debug("run started", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
			m.setStatus("screenshot failed")
		} else {
			m.logger.Info("screenshot saved", "path", path)
			m.setStatus("saved " + path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.game.Render(m.screen)
		if err := clipboard.WriteAll(m.screen.String()); err != nil {
			m.logger.Warn("clipboard unavailable", "error", err)
			m.setStatus("clipboard unavailable")
		} else {
			m.setStatus("frame copied")
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if action := m.keys.Action(msg); action != core.ActionNone {
		if action == core.ActionRestart && !m.gameState.GameOver {
			return m, nil
		}
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The playfield is scaled to
// the screen, so the run continues.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerHeight, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.reset()
		return m, tickCmd(m.config.TickRate)
	}

	// The full help view holds the game
	if m.help.ShowAll {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, ev := range result.Events {
		m.logger.Debug(ev, "tick", result.State.Ticks)
	}

	// Save the run once when it ends
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Storage problems never stop the game.
func (m *Model) saveRun() {
	m.logger.Info("run finished", "score", m.gameState.Score, "ticks", m.gameState.Ticks)
	// A field that started empty was never played
	if m.store == nil || m.gameState.Ticks == 0 {
		return
	}

	if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score, m.gameState.Ticks); err != nil {
		m.logger.Warn("could not save score", "error", err)
		m.setStatus("score not saved")
		return
	}

	if best, err := m.store.BestRun(m.game.ID()); err == nil && best != nil &&
		best.Score == m.gameState.Score && best.Ticks == m.gameState.Ticks {
		m.setStatus("new best run!")
	}
}

// saveScreenshot writes the current frame as plain text under
// ~/.arcade/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusUntil = time.Now().Add(statusTTL)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	if m.help.ShowAll {
		return renderHelpOverlay(m.help, m.keys, m.config.ScreenW, m.config.ScreenH)
	}

	status := ""
	if time.Now().Before(m.statusUntil) {
		status = m.status
	}
	return RenderScreen(m.screen) + "\n" + renderFooter(m.help, m.keys, status)
}

// State returns the last game state seen by the loop.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
