package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// presetScale multiplies the configured values. Presets apply once when a
// session is built; nothing ramps up during play.
type presetScale struct {
	flies     float64
	speed     float64
	threshold float64
	tongue    float64 // Tongue duration
}

var presetScales = map[DifficultyPreset]presetScale{
	DifficultyEasy:   {flies: 0.67, speed: 0.75, threshold: 1.33, tongue: 1.5},
	DifficultyNormal: {flies: 1, speed: 1, threshold: 1, tongue: 1},
	DifficultyHard:   {flies: 1.67, speed: 1.5, threshold: 0.78, tongue: 0.5},
}

// ParsePreset converts a flag value into a preset. The empty string means
// "use the config as is" and maps to DifficultyFixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyChameleonPreset modifies the config based on a difficulty preset.
// DifficultyFixed leaves the loaded values untouched.
func ApplyChameleonPreset(cfg *ChameleonConfig, preset DifficultyPreset) {
	scale, ok := presetScales[preset]
	if !ok {
		return
	}

	if cfg.Flies.Count > 0 {
		cfg.Flies.Count = max(1, int(math.Round(float64(cfg.Flies.Count)*scale.flies)))
	}
	cfg.Flies.MinSpeed *= scale.speed
	cfg.Flies.MaxSpeed *= scale.speed
	cfg.Capture.Threshold *= scale.threshold
	cfg.Capture.TongueTicks = int(math.Round(float64(cfg.Capture.TongueTicks) * scale.tongue))
}
