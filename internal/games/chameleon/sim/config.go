// Package sim is the Hungry Chameleon simulation: entities, the per-tick
// controller and the snapshots handed to presentation layers.
//
// The package performs no I/O and imports nothing beyond the standard library
// and internal/core. All randomness comes from the core.Rand passed to
// NewSession, so a seeded source reproduces a session exactly.
package sim

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) for configurations a session cannot
// be built from.
var ErrInvalidConfig = errors.New("invalid session config")

// spawnAttempts bounds the search for a fly position far enough from the
// chameleon. After that many misses the last sample is used.
const spawnAttempts = 64

// Config fixes the rules of one session.
type Config struct {
	Width  float64 // Playfield width
	Height float64 // Playfield height

	FlyCount    int
	FlyMinSpeed float64 // Per tick
	FlyMaxSpeed float64 // Per tick
	FlyRadius   float64

	ChameleonRadius float64
	ChameleonSpeed  float64 // Per tick, when steering
	Maneuverability float64 // Degrees turned per turn input

	// CaptureThreshold is the center distance under which a fly is eaten.
	CaptureThreshold float64
	TongueReach      float64 // Added to the threshold while the tongue is out
	TongueTicks      int     // How long one tongue flick lasts

	// MinSpawnDistance keeps freshly spawned flies away from the chameleon.
	MinSpawnDistance float64

	FrameRate int
}

// DefaultConfig returns the classic session: an 800x600 field with six slow
// flies and the chameleon in the middle.
func DefaultConfig() Config {
	return Config{
		Width:            800,
		Height:           600,
		FlyCount:         6,
		FlyMinSpeed:      1,
		FlyMaxSpeed:      2,
		FlyRadius:        15,
		ChameleonRadius:  40,
		ChameleonSpeed:   3,
		Maneuverability:  3,
		CaptureThreshold: 45,
		TongueReach:      100,
		TongueTicks:      60,
		MinSpawnDistance: 250,
		FrameRate:        60,
	}
}

// Bounds returns the playfield size.
func (c Config) Bounds() Bounds {
	return Bounds{W: c.Width, H: c.Height}
}

// Validate reports the first problem that prevents building a session.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("sim: %w: playfield must be positive, got %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.FlyCount < 0:
		return fmt.Errorf("sim: %w: fly count %d is negative", ErrInvalidConfig, c.FlyCount)
	case c.FlyMinSpeed < 0 || c.FlyMaxSpeed < c.FlyMinSpeed:
		return fmt.Errorf("sim: %w: fly speed range [%v, %v]", ErrInvalidConfig, c.FlyMinSpeed, c.FlyMaxSpeed)
	case c.FlyRadius < 0 || c.ChameleonRadius < 0:
		return fmt.Errorf("sim: %w: radii must not be negative", ErrInvalidConfig)
	case c.ChameleonSpeed < 0:
		return fmt.Errorf("sim: %w: chameleon speed %v is negative", ErrInvalidConfig, c.ChameleonSpeed)
	case c.CaptureThreshold < 0 || c.TongueReach < 0 || c.TongueTicks < 0:
		return fmt.Errorf("sim: %w: capture settings must not be negative", ErrInvalidConfig)
	case c.MinSpawnDistance < 0:
		return fmt.Errorf("sim: %w: min spawn distance %v is negative", ErrInvalidConfig, c.MinSpawnDistance)
	case c.FrameRate < 0:
		return fmt.Errorf("sim: %w: frame rate %d is negative", ErrInvalidConfig, c.FrameRate)
	}
	return nil
}
