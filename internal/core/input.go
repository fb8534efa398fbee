package core

// Action represents a semantic lifecycle command, abstracted from physical
// key presses. Typed characters are not actions; they go to the text field.
type Action int

const (
	ActionNone     Action = iota
	ActionStart           // Enter - start or restart a session
	ActionPause           // Esc - pause when running, resume when paused
	ActionStop            // Ctrl+X - end the session early
	ActionDismiss         // Ctrl+N - dismiss the banner
	ActionQuit            // Ctrl+C - leave the program
	ActionSnapshot        // Ctrl+S - save the lane to a text file
	ActionBack            // B - leave the game for the menu
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionStop:
		return "Stop"
	case ActionDismiss:
		return "Dismiss"
	case ActionSnapshot:
		return "Snapshot"
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}
