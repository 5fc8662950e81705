package sim

import "github.com/vovakirdan/hungry-chameleon/internal/core"

// Snapshot is a read-only copy of everything a renderer needs after a tick.
// Mutating it has no effect on the session.
type Snapshot struct {
	Tick      int
	Bounds    Bounds
	Chameleon Entity
	Flies     []Entity
	Score     int
	Remaining int
	Initial   int
	Threshold float64 // Current capture distance
	Reach     float64 // Capture distance with the tongue out
	TongueOut bool
	State     State
	Terminal  bool
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	flies := make([]Entity, len(s.flies))
	copy(flies, s.flies)

	return Snapshot{
		Tick:      s.ticks,
		Bounds:    s.cfg.Bounds(),
		Chameleon: s.chameleon,
		Flies:     flies,
		Score:     s.score,
		Remaining: len(s.flies),
		Initial:   s.initial,
		Threshold: s.Threshold(),
		Reach:     s.cfg.CaptureThreshold + s.cfg.TongueReach,
		TongueOut: s.tongue > 0,
		State:     s.state,
		Terminal:  s.state == StateWon,
	}
}

// TonguePoint returns where the tip of the tongue is while it is out.
func (s Snapshot) TonguePoint() core.Vec {
	return s.Chameleon.Pos.Add(s.Chameleon.Heading.Mul(s.Threshold))
}

// Nearest returns the index of the fly closest to the chameleon, or -1 when
// none are left.
func (s Snapshot) Nearest() int {
	best := -1
	bestDist := 0.0
	for i, f := range s.Flies {
		d := s.Chameleon.Pos.DistanceTo(f.Pos)
		if best < 0 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// Chase builds an input that steers straight at the nearest fly and flicks
// the tongue once it is within reach. Used by the headless runner and tests.
func Chase(s Snapshot) Input {
	i := s.Nearest()
	if i < 0 {
		return Input{Stop: true}
	}
	target := s.Flies[i]
	toward := target.Pos.Sub(s.Chameleon.Pos)
	return Input{
		Direction: toward,
		Tongue:    !s.TongueOut && toward.Len() < s.Reach,
	}
}
