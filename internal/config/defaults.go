package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/typefall.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
// It mirrors defaults/typefall.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Lane: LaneConfig{
			Height: 400,
			Step:   1,
		},
		Timing: TimingConfig{
			FallInterval:  50 * time.Millisecond,
			FlashDuration: time.Second,
		},
		Rules: RulesConfig{
			TargetWords:        10,
			MaxInputFactor:     2,
			AllowedPunctuation: " '-",
			TimeLimit: TimeLimitConfig{
				Enabled:    false,
				MinSeconds: 45,
				MaxSeconds: 75,
			},
		},
		Audio: AudioConfig{
			Enabled: true,
		},
	}
}
