package config

import (
	_ "embed"

	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon/sim"
)

//go:embed defaults/chameleon.yaml
var defaultChameleonYAML []byte

// DefaultChameleonConfig returns the built-in Hungry Chameleon configuration.
// It matches defaults/chameleon.yaml.
func DefaultChameleonConfig() ChameleonConfig {
	d := sim.DefaultConfig()
	return ChameleonConfig{
		Playfield: ChameleonPlayfield{
			Width:  d.Width,
			Height: d.Height,
		},
		Chameleon: ChameleonPlayer{
			Radius:          d.ChameleonRadius,
			Speed:           d.ChameleonSpeed,
			Maneuverability: d.Maneuverability,
		},
		Flies: ChameleonFlies{
			Count:            d.FlyCount,
			MinSpeed:         d.FlyMinSpeed,
			MaxSpeed:         d.FlyMaxSpeed,
			Radius:           d.FlyRadius,
			MinSpawnDistance: d.MinSpawnDistance,
		},
		Capture: ChameleonCapture{
			Threshold:   d.CaptureThreshold,
			TongueReach: d.TongueReach,
			TongueTicks: d.TongueTicks,
		},
		FrameRate: d.FrameRate,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chameleon":
		return defaultChameleonYAML
	default:
		return nil
	}
}
