// Package config provides YAML-based game configuration loading and
// difficulty presets for typefall.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunable parameters of a typefall session.
type Config struct {
	Lane   LaneConfig   `yaml:"lane"`
	Timing TimingConfig `yaml:"timing"`
	Rules  RulesConfig  `yaml:"rules"`
	Audio  AudioConfig  `yaml:"audio"`
}

// LaneConfig defines the logical lane the word falls through.
// Units are abstract; the renderer scales them to terminal rows.
type LaneConfig struct {
	Height float64 `yaml:"height"`
	Step   float64 `yaml:"step"` // Distance covered per fall tick
}

// TimingConfig defines the two timer periods.
type TimingConfig struct {
	FallInterval  time.Duration `yaml:"fall_interval"`
	FlashDuration time.Duration `yaml:"flash_duration"` // How long a score delta stays visible
}

// RulesConfig defines win conditions and input validation.
type RulesConfig struct {
	TargetWords        int             `yaml:"target_words"`
	MaxInputFactor     int             `yaml:"max_input_factor"`    // Input longer than factor*len(word) is rejected
	AllowedPunctuation string          `yaml:"allowed_punctuation"` // Accepted besides letters and digits
	TimeLimit          TimeLimitConfig `yaml:"time_limit"`
}

// TimeLimitConfig enables the countdown variant. The limit for each session
// is drawn uniformly from [MinSeconds, MaxSeconds].
type TimeLimitConfig struct {
	Enabled    bool `yaml:"enabled"`
	MinSeconds int  `yaml:"min_seconds"`
	MaxSeconds int  `yaml:"max_seconds"`
}

// AudioConfig controls the start and game-over cues.
// Empty cue paths select the built-in synthesized tones.
type AudioConfig struct {
	Enabled     bool   `yaml:"enabled"`
	StartCue    string `yaml:"start_cue"`
	GameOverCue string `yaml:"game_over_cue"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a session.
func (c Config) Validate() error {
	switch {
	case c.Lane.Height <= 0:
		return fmt.Errorf("config: lane.height must be positive: %w", ErrInvalidConfig)
	case c.Lane.Step <= 0:
		return fmt.Errorf("config: lane.step must be positive: %w", ErrInvalidConfig)
	case c.Lane.Step > c.Lane.Height:
		return fmt.Errorf("config: lane.step exceeds lane.height: %w", ErrInvalidConfig)
	case c.Timing.FallInterval <= 0:
		return fmt.Errorf("config: timing.fall_interval must be positive: %w", ErrInvalidConfig)
	case c.Timing.FlashDuration <= 0:
		return fmt.Errorf("config: timing.flash_duration must be positive: %w", ErrInvalidConfig)
	case c.Rules.TargetWords <= 0:
		return fmt.Errorf("config: rules.target_words must be positive: %w", ErrInvalidConfig)
	case c.Rules.MaxInputFactor < 1:
		return fmt.Errorf("config: rules.max_input_factor must be at least 1: %w", ErrInvalidConfig)
	}

	if tl := c.Rules.TimeLimit; tl.Enabled {
		if tl.MinSeconds <= 0 || tl.MaxSeconds < tl.MinSeconds {
			return fmt.Errorf("config: rules.time_limit needs 0 < min_seconds <= max_seconds: %w", ErrInvalidConfig)
		}
	}
	return nil
}
