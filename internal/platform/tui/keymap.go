package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/game"
)

// KeyMap defines the lifecycle key bindings. Every other key is typing.
// Bindings avoid printable keys while a session is running.
type KeyMap struct {
	Start    key.Binding
	Pause    key.Binding
	Stop     key.Binding
	Dismiss  key.Binding
	Snapshot key.Binding
	Quit     key.Binding
	QuitIdle key.Binding
	Back     key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause/resume"),
		),
		Stop: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "stop"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("ctrl+n"),
			key.WithHelp("ctrl+n", "dismiss"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitIdle: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "menu"),
			key.WithDisabled(),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Stop, k.Dismiss, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Stop},
		{k.Dismiss, k.Snapshot, k.Quit, k.QuitIdle, k.Back},
	}
}

// Action translates a key to a lifecycle action for the given status.
// ActionNone means the key belongs to the text field.
func (k KeyMap) Action(msg tea.KeyMsg, status game.Status) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Stop):
		return core.ActionStop
	case key.Matches(msg, k.Dismiss):
		return core.ActionDismiss
	case key.Matches(msg, k.Snapshot):
		return core.ActionSnapshot
	}

	if status == game.StatusRunning {
		return core.ActionNone
	}

	switch {
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.QuitIdle):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	}
	return core.ActionNone
}
