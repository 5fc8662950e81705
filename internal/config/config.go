// Package config provides YAML-based game configuration loading, schema
// validation and difficulty presets for the arcade platform.
package config

import "github.com/vovakirdan/hungry-chameleon/internal/games/chameleon/sim"

// ChameleonConfig contains all configuration for Hungry Chameleon.
type ChameleonConfig struct {
	Playfield ChameleonPlayfield `yaml:"playfield"`
	Chameleon ChameleonPlayer    `yaml:"chameleon"`
	Flies     ChameleonFlies     `yaml:"flies"`
	Capture   ChameleonCapture   `yaml:"capture"`
	FrameRate int                `yaml:"frame_rate"`
}

// ChameleonPlayfield defines the size of the wrapping playfield in pixels.
type ChameleonPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ChameleonPlayer defines the chameleon's body and steering.
type ChameleonPlayer struct {
	Radius          float64 `yaml:"radius"`
	Speed           float64 `yaml:"speed"`           // Pixels per tick
	Maneuverability float64 `yaml:"maneuverability"` // Degrees per turn input
}

// ChameleonFlies defines how many flies spawn and how they move.
type ChameleonFlies struct {
	Count            int     `yaml:"count"`
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	Radius           float64 `yaml:"radius"`
	MinSpawnDistance float64 `yaml:"min_spawn_distance"`
}

// ChameleonCapture defines when a fly counts as eaten.
type ChameleonCapture struct {
	Threshold   float64 `yaml:"threshold"`
	TongueReach float64 `yaml:"tongue_reach"`
	TongueTicks int     `yaml:"tongue_ticks"`
}

// Session converts the file layout into the simulation's rules.
func (c ChameleonConfig) Session() sim.Config {
	return sim.Config{
		Width:            c.Playfield.Width,
		Height:           c.Playfield.Height,
		FlyCount:         c.Flies.Count,
		FlyMinSpeed:      c.Flies.MinSpeed,
		FlyMaxSpeed:      c.Flies.MaxSpeed,
		FlyRadius:        c.Flies.Radius,
		ChameleonRadius:  c.Chameleon.Radius,
		ChameleonSpeed:   c.Chameleon.Speed,
		Maneuverability:  c.Chameleon.Maneuverability,
		CaptureThreshold: c.Capture.Threshold,
		TongueReach:      c.Capture.TongueReach,
		TongueTicks:      c.Capture.TongueTicks,
		MinSpawnDistance: c.Flies.MinSpawnDistance,
		FrameRate:        c.FrameRate,
	}
}
