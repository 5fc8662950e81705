package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/hungry-chameleon/internal/core"
)

type stubGame struct {
	id     string
	path   string
	preset string
	bad    error
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }
func (g *stubGame) SetConfigPath(path string)            { g.path = path }
func (g *stubGame) SetDifficultyPreset(preset string)    { g.preset = preset }
func (g *stubGame) LoadConfig() error                    { return g.bad }

// plainGame takes no configuration.
type plainGame struct{ id string }

func (g *plainGame) ID() string                           { return g.id }
func (g *plainGame) Title() string                        { return "Plain" }
func (g *plainGame) Reset(core.RuntimeConfig)             {}
func (g *plainGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *plainGame) Render(*core.Screen)                  {}
func (g *plainGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-a", func() Game { return &stubGame{id: "stub-a"} })

	if !Exists("stub-a") {
		t.Fatal("Exists() = false after Register")
	}
	if Exists("nope") {
		t.Error("Exists() = true for unknown game")
	}

	g, err := Create("stub-a")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub-a")
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create() of unknown game should fail")
	}

	found := false
	for _, info := range List() {
		if info.ID == "stub-a" {
			found = true
			if info.Title != "Stub stub-a" {
				t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
			}
		}
	}
	if !found {
		t.Error("List() is missing stub-a")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub-dup", func() Game { return &stubGame{id: "stub-dup"} })
}

func TestCreateConfigured(t *testing.T) {
	Register("stub-cfg", func() Game { return &stubGame{id: "stub-cfg"} })
	Register("stub-plain", func() Game { return &plainGame{id: "stub-plain"} })

	g, err := CreateConfigured("stub-cfg", "/tmp/x.yaml", "hard")
	if err != nil {
		t.Fatalf("CreateConfigured() failed: %v", err)
	}
	sg := g.(*stubGame)
	if sg.path != "/tmp/x.yaml" || sg.preset != "hard" {
		t.Errorf("got path=%q preset=%q", sg.path, sg.preset)
	}

	if _, err := CreateConfigured("stub-plain", "", ""); err != nil {
		t.Errorf("plain game without options should be created: %v", err)
	}
	if _, err := CreateConfigured("stub-plain", "x.yaml", ""); err == nil {
		t.Error("plain game with a config path should be rejected")
	}
}

func TestCreateConfiguredLoadError(t *testing.T) {
	errBad := errors.New("no such preset")
	Register("stub-bad", func() Game { return &stubGame{id: "stub-bad", bad: errBad} })

	g, err := CreateConfigured("stub-bad", "", "nightmare")
	if !errors.Is(err, errBad) {
		t.Fatalf("CreateConfigured() error = %v, expected %v", err, errBad)
	}
	if g != nil {
		t.Error("no game should be returned on a load error")
	}
}
