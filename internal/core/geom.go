// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for float comparisons and zero-length checks.
const Epsilon = 1e-9

// Vec is a 2D vector or point in playfield space.
type Vec struct {
	X float64
	Y float64
}

// V is shorthand for Vec{X: x, Y: y}.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Polar creates a vector from a length and an angle in radians.
func Polar(length, theta float64) Vec {
	x := length * math.Cos(theta)
	y := length * math.Sin(theta)

	// Snap float noise near the axes
	if math.Abs(x) < Epsilon {
		x = 0
	}
	if math.Abs(y) < Epsilon {
		y = 0
	}
	return Vec{X: x, Y: y}
}

// String implements fmt.Stringer.
func (v Vec) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", v.X, v.Y)
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Mul scales v by s.
func (v Vec) Mul(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the magnitude of v.
func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// IsZero reports whether v has effectively zero length.
func (v Vec) IsZero() bool {
	return v.Len() < Epsilon
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Normalize returns the unit vector in the direction of v.
// Zero-length and non-finite vectors normalize to the zero vector.
func (v Vec) Normalize() Vec {
	l := v.Len()
	if l < Epsilon || !v.IsFinite() {
		return Vec{}
	}
	return v.Mul(1 / l)
}

// DistanceTo returns the Euclidean distance between v and o.
func (v Vec) DistanceTo(o Vec) float64 {
	return v.Sub(o).Len()
}

// Angle returns the angle of v relative to the X axis, in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Rotate rotates v around the origin by angle radians.
// With screen coordinates (Y down) a positive angle turns clockwise.
func (v Vec) Rotate(angle float64) Vec {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Vec{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}

// Eq reports whether v and o are equal within Epsilon.
func (v Vec) Eq(o Vec) bool {
	return math.Abs(v.X-o.X) <= Epsilon && math.Abs(v.Y-o.Y) <= Epsilon
}

// Wrap maps c into the half-open range [lo, hi) modulo the range width.
// Values already in range are returned unchanged. A degenerate range
// (hi <= lo) collapses to lo.
func Wrap(c, lo, hi float64) float64 {
	if c >= lo && c < hi {
		return c
	}
	w := hi - lo
	if w <= 0 {
		return lo
	}
	r := math.Mod(c-lo, w)
	if r < 0 {
		r += w
	}
	// r+w can round up to exactly w for tiny negative remainders
	if r >= w {
		r = 0
	}
	return lo + r
}

// WrapVec wraps both axes of p into [0, width) x [0, height).
func WrapVec(p Vec, width, height float64) Vec {
	return Vec{
		X: Wrap(p.X, 0, width),
		Y: Wrap(p.Y, 0, height),
	}
}

// Rect represents an axis-aligned box in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
