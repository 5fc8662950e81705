package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hungry-chameleon/internal/core"
)

// State is the session's position in its lifecycle.
type State uint8

const (
	StateRunning State = iota
	StateWon
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Input is the player's intent for one tick.
type Input struct {
	// Direction steers the chameleon. It is normalized, so only its angle
	// matters; the zero vector means "keep the current velocity".
	Direction core.Vec
	// Turn rotates the heading by Maneuverability degrees per unit:
	// negative is counter-clockwise, positive clockwise.
	Turn int
	// Tongue flicks the tongue out, refreshing its timer.
	Tongue bool
	// Stop brings the chameleon to rest. Direction wins if both are set.
	Stop bool
}

// TickResult reports what one tick changed.
type TickResult struct {
	Captured []int // IDs of flies eaten this tick
	State    State
}

// Session owns the entities of one game and advances them tick by tick.
// It is not safe for concurrent use; one goroutine drives it.
type Session struct {
	cfg       Config
	chameleon Entity
	flies     []Entity
	initial   int
	score     int
	tongue    int // Ticks of tongue left
	ticks     int
	state     State
}

// NewSession validates cfg and spawns the chameleon in the middle of the
// field and cfg.FlyCount flies at random positions drawn from rng.
func NewSession(cfg Config, rng core.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, fmt.Errorf("sim: %w: nil random source", ErrInvalidConfig)
	}

	chameleon := NewChameleon(core.V(cfg.Width/2, cfg.Height/2), cfg.ChameleonRadius)
	flies := make([]Entity, 0, cfg.FlyCount)
	for i := 0; i < cfg.FlyCount; i++ {
		pos := spawnPosition(rng, cfg, chameleon.Pos)
		vel := core.RandomVelocity(rng, cfg.FlyMinSpeed, cfg.FlyMaxSpeed)
		flies = append(flies, NewFly(i+1, pos, vel, cfg.FlyRadius))
	}

	return newSession(cfg, chameleon, flies), nil
}

// NewSessionFromEntities builds a session around explicitly placed entities.
// Positions are wrapped into the playfield; fly IDs are reassigned when they
// collide with the chameleon's or each other's.
func NewSessionFromEntities(cfg Config, chameleon Entity, flies []Entity) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if chameleon.Kind != KindChameleon {
		return nil, fmt.Errorf("sim: %w: player entity is a %s", ErrInvalidConfig, chameleon.Kind)
	}

	b := cfg.Bounds()
	chameleon.ID = 0
	chameleon.Pos = core.WrapVec(chameleon.Pos, b.W, b.H)
	if chameleon.Heading.IsZero() {
		chameleon.Heading = core.V(0, -1)
	} else {
		chameleon.Heading = chameleon.Heading.Normalize()
	}

	placed := make([]Entity, 0, len(flies))
	seen := make(map[int]bool, len(flies))
	nextID := 1
	for _, f := range flies {
		if f.Kind != KindFly {
			return nil, fmt.Errorf("sim: %w: fly list contains a %s", ErrInvalidConfig, f.Kind)
		}
		if f.ID <= 0 || seen[f.ID] {
			for seen[nextID] {
				nextID++
			}
			f.ID = nextID
		}
		seen[f.ID] = true
		f.Pos = core.WrapVec(f.Pos, b.W, b.H)
		placed = append(placed, f)
	}

	return newSession(cfg, chameleon, placed), nil
}

func newSession(cfg Config, chameleon Entity, flies []Entity) *Session {
	s := &Session{
		cfg:       cfg,
		chameleon: chameleon,
		flies:     flies,
		initial:   len(flies),
	}
	if len(flies) == 0 {
		s.state = StateWon
	}
	return s
}

// spawnPosition draws fly positions until one is at least MinSpawnDistance
// from avoid, giving up after spawnAttempts tries.
func spawnPosition(rng core.Rand, cfg Config, avoid core.Vec) core.Vec {
	var pos core.Vec
	for attempt := 0; attempt < spawnAttempts; attempt++ {
		pos = core.RandomPosition(rng, cfg.Width, cfg.Height)
		if pos.DistanceTo(avoid) > cfg.MinSpawnDistance {
			return pos
		}
	}
	return pos
}

// Tick advances the session by one frame.
//
// Order: apply input to the chameleon, move every entity, eat every fly in
// reach, update the score, then check for the win. A finished session
// ignores further ticks.
func (s *Session) Tick(in Input) TickResult {
	if s.state == StateWon {
		return TickResult{State: s.state}
	}
	s.ticks++

	s.applyInput(in)

	b := s.cfg.Bounds()
	s.chameleon = Advance(s.chameleon, b)
	for i := range s.flies {
		s.flies[i] = Advance(s.flies[i], b)
	}

	threshold := s.Threshold()
	var captured []int
	remaining := s.flies[:0]
	for _, f := range s.flies {
		if Captures(s.chameleon, f, threshold) {
			captured = append(captured, f.ID)
			continue
		}
		remaining = append(remaining, f)
	}
	// Drop stale tail entries so eaten flies don't linger in the backing array
	for i := len(remaining); i < len(s.flies); i++ {
		s.flies[i] = Entity{}
	}
	s.flies = remaining
	s.score += len(captured)

	if s.tongue > 0 {
		s.tongue--
	}

	if len(s.flies) == 0 {
		s.state = StateWon
	}

	return TickResult{Captured: captured, State: s.state}
}

// applyInput derives the chameleon's heading and velocity from in.
func (s *Session) applyInput(in Input) {
	c := &s.chameleon

	if in.Turn != 0 {
		angle := float64(in.Turn) * s.cfg.Maneuverability * math.Pi / 180
		c.Heading = c.Heading.Rotate(angle).Normalize()
		if speed := c.Vel.Len(); speed > 0 {
			c.Vel = c.Heading.Mul(speed)
		}
	}

	if dir := in.Direction.Normalize(); !dir.IsZero() {
		c.Heading = dir
		c.Vel = dir.Mul(s.cfg.ChameleonSpeed)
	} else if in.Stop {
		c.Vel = core.Vec{}
	}

	if in.Tongue && s.cfg.TongueTicks > 0 {
		s.tongue = s.cfg.TongueTicks
	}
}

// Threshold returns the current capture distance, including the tongue's
// reach while it is out.
func (s *Session) Threshold() float64 {
	if s.tongue > 0 {
		return s.cfg.CaptureThreshold + s.cfg.TongueReach
	}
	return s.cfg.CaptureThreshold
}

// IsTerminal reports whether every fly has been eaten.
func (s *Session) IsTerminal() bool {
	return s.state == StateWon
}

// State returns the lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the number of flies eaten so far.
func (s *Session) Score() int {
	return s.score
}

// Remaining returns how many flies are still loose.
func (s *Session) Remaining() int {
	return len(s.flies)
}

// InitialFlies returns how many flies the session started with.
func (s *Session) InitialFlies() int {
	return s.initial
}

// Ticks returns how many ticks have been simulated.
func (s *Session) Ticks() int {
	return s.ticks
}

// TongueOut reports whether the tongue is currently extended.
func (s *Session) TongueOut() bool {
	return s.tongue > 0
}

// Config returns the rules the session was built with.
func (s *Session) Config() Config {
	return s.cfg
}
