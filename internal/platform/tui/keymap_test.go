package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/game"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		status game.Status
		want   core.Action
	}{
		{"enter starts when idle", tea.KeyMsg{Type: tea.KeyEnter}, game.StatusIdle, core.ActionStart},
		{"enter restarts after game over", tea.KeyMsg{Type: tea.KeyEnter}, game.StatusOver, core.ActionStart},
		{"enter ignored while running", tea.KeyMsg{Type: tea.KeyEnter}, game.StatusRunning, core.ActionNone},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, game.StatusRunning, core.ActionPause},
		{"esc resumes", tea.KeyMsg{Type: tea.KeyEsc}, game.StatusPaused, core.ActionPause},
		{"ctrl+x stops", tea.KeyMsg{Type: tea.KeyCtrlX}, game.StatusRunning, core.ActionStop},
		{"ctrl+n dismisses", tea.KeyMsg{Type: tea.KeyCtrlN}, game.StatusRunning, core.ActionDismiss},
		{"ctrl+s snapshots", tea.KeyMsg{Type: tea.KeyCtrlS}, game.StatusRunning, core.ActionSnapshot},
		{"ctrl+c quits while running", tea.KeyMsg{Type: tea.KeyCtrlC}, game.StatusRunning, core.ActionQuit},
		{"q types while running", runeKey('q'), game.StatusRunning, core.ActionNone},
		{"q quits when idle", runeKey('q'), game.StatusIdle, core.ActionQuit},
		{"b disabled without menu", runeKey('b'), game.StatusIdle, core.ActionNone},
		{"letters type", runeKey('a'), game.StatusRunning, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg, tt.status); got != tt.want {
				t.Errorf("Action() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKeyMapBackWhenEnabled(t *testing.T) {
	keys := DefaultKeyMap()
	keys.Back.SetEnabled(true)

	if got := keys.Action(runeKey('b'), game.StatusOver); got != core.ActionBack {
		t.Errorf("Expected Back after game over, got %v", got)
	}
	if got := keys.Action(runeKey('b'), game.StatusRunning); got != core.ActionNone {
		t.Errorf("Expected b to type while running, got %v", got)
	}
}
