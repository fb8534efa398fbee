// Package game implements the falling-word typing game.
//
// The rules live in Machine, a pure state machine: every transition takes a
// Session and returns the next Session plus the side effects to perform.
// Controller performs those effects (drawing words, arming and cancelling
// timers, playing cues) and owns every timer handle of one session.
package game

// Status is the lifecycle state of a session.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusOver
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session is the complete state of one game. It is a value; transitions
// return a new copy.
type Session struct {
	Status         Status
	Score          int
	WordsCompleted int
	Target         int
	Word           string
	Position       float64 // Offset of the word in the lane, in [0, lane height)
	Delta          int     // Transient score change shown next to the score
	FlashSeq       uint64  // Identifies the flash that set Delta
	Input          string
	Timed          bool
	TimeLeft       int // Seconds remaining when Timed
}

// Playing reports whether the session accepts ticks and input.
func (s Session) Playing() bool {
	return s.Status == StatusRunning
}
