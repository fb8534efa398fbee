package core

// Cue identifies a sound played at a lifecycle point.
type Cue int

const (
	CueStart Cue = iota
	CueGameOver
)

// String returns the cue name used in logs and config.
func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
