package game

import (
	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/registry"
)

// ClassicMode ends the game after a fixed number of words.
type ClassicMode struct{}

func (ClassicMode) ID() string    { return "classic" }
func (ClassicMode) Title() string { return "Classic" }
func (ClassicMode) Description() string {
	return "Type the target number of words; a missed word costs its length"
}

// Configure disables the countdown.
func (ClassicMode) Configure(cfg *config.Config) {
	cfg.Rules.TimeLimit.Enabled = false
}

// TimedMode adds a countdown: the game also ends when time runs out.
type TimedMode struct{}

func (TimedMode) ID() string    { return "timed" }
func (TimedMode) Title() string { return "Against the Clock" }
func (TimedMode) Description() string {
	return "Classic rules plus a randomized countdown"
}

// Configure enables the countdown, keeping configured bounds when they are valid.
func (TimedMode) Configure(cfg *config.Config) {
	tl := &cfg.Rules.TimeLimit
	tl.Enabled = true
	if tl.MinSeconds <= 0 || tl.MaxSeconds < tl.MinSeconds {
		def := config.DefaultConfig().Rules.TimeLimit
		tl.MinSeconds = def.MinSeconds
		tl.MaxSeconds = def.MaxSeconds
	}
}

// DefaultMode is used when no --mode is given.
const DefaultMode = "classic"

func init() {
	registry.Register("classic", func() registry.Mode { return ClassicMode{} })
	registry.Register("timed", func() registry.Mode { return TimedMode{} })
}
