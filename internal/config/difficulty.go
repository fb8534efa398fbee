package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named fall speed.
// Presets never change speed during a session.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value to a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyDifficulty adjusts the fall interval for a preset.
// Normal keeps whatever the loaded config says.
func ApplyDifficulty(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.FallInterval = 70 * time.Millisecond
	case DifficultyHard:
		cfg.Timing.FallInterval = 30 * time.Millisecond
		cfg.Rules.MaxInputFactor = 1
	}
}
