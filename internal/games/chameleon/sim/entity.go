package sim

import (
	"github.com/vovakirdan/hungry-chameleon/internal/core"
)

// Kind tags which variant an Entity is.
type Kind uint8

const (
	KindChameleon Kind = iota
	KindFly
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindChameleon:
		return "chameleon"
	case KindFly:
		return "fly"
	default:
		return "unknown"
	}
}

// Entity is a moving object on the playfield. Chameleon and fly share the
// same shape; Kind selects which rules apply to it.
type Entity struct {
	Kind   Kind
	ID     int      // Unique within a session; the chameleon is always 0
	Pos    core.Vec // Center, kept inside the playfield
	Vel    core.Vec // Displacement per tick
	Radius float64

	// Heading is the unit facing direction. Only the chameleon turns;
	// flies face along their velocity.
	Heading core.Vec
}

// Bounds is the playfield size. Positions live in [0, W) x [0, H).
type Bounds struct {
	W float64
	H float64
}

// Advance moves e by its velocity and wraps the result back into b.
func Advance(e Entity, b Bounds) Entity {
	e.Pos = core.WrapVec(e.Pos.Add(e.Vel), b.W, b.H)
	return e
}

// Captures reports whether fly f is within reach of chameleon c. Reach is
// strict: a fly exactly at the threshold distance escapes.
func Captures(c, f Entity, threshold float64) bool {
	return c.Pos.DistanceTo(f.Pos) < threshold
}

// NewChameleon creates the player entity at pos, at rest and facing up.
func NewChameleon(pos core.Vec, radius float64) Entity {
	return Entity{
		Kind:    KindChameleon,
		ID:      0,
		Pos:     pos,
		Radius:  radius,
		Heading: core.V(0, -1),
	}
}

// NewFly creates a fly with a fixed velocity.
func NewFly(id int, pos, vel core.Vec, radius float64) Entity {
	heading := vel.Normalize()
	if heading.IsZero() {
		heading = core.V(0, -1)
	}
	return Entity{
		Kind:    KindFly,
		ID:      id,
		Pos:     pos,
		Vel:     vel,
		Radius:  radius,
		Heading: heading,
	}
}
