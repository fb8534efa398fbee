package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/words"
)

func newTestSession(t *testing.T) SessionModel {
	t.Helper()
	packs, err := CollectPacks(words.DefaultLibrary(), nil)
	if err != nil {
		t.Fatalf("CollectPacks() failed: %v", err)
	}
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
	return NewSessionModel(config.DefaultConfig(), packs, rc)
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

func TestCollectPacksBuiltin(t *testing.T) {
	lib := words.DefaultLibrary()
	packs, err := CollectPacks(lib, nil)
	if err != nil {
		t.Fatalf("CollectPacks() failed: %v", err)
	}
	if len(packs) != len(lib.IDs()) {
		t.Fatalf("Expected %d packs, got %d", len(lib.IDs()), len(packs))
	}
	for i := 1; i < len(packs); i++ {
		if packs[i-1].Pack.ID >= packs[i].Pack.ID {
			t.Errorf("Packs not sorted: %q before %q", packs[i-1].Pack.ID, packs[i].Pack.ID)
		}
	}
	for _, p := range packs {
		if p.Stored {
			t.Errorf("Pack %q should be built-in", p.Pack.ID)
		}
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t)

	if !strings.Contains(m.View(), "T Y P E F A L L") {
		t.Fatal("Session should open on the menu")
	}

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil {
		t.Fatal("Enter should start a game from the menu")
	}
	if !strings.Contains(m.View(), "Press Enter to start") {
		t.Error("New game should be idle")
	}

	m = sendSession(t, m, runeKey('b'))
	if m.game != nil {
		t.Fatal("b should return to the menu")
	}
	if m.menu.Selected() != nil {
		t.Error("Menu should be fresh after returning")
	}
}

func TestSessionModeSelection(t *testing.T) {
	m := newTestSession(t)

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	sel := m.menu.modes[m.menu.modeCursor]
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.game == nil {
		t.Fatal("Expected a game")
	}
	if !strings.Contains(m.game.title, sel.Title) {
		t.Errorf("Game title %q should name mode %q", m.game.title, sel.Title)
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	m := newTestSession(t)

	next, cmd := m.Update(runeKey('q'))
	m = next.(SessionModel)
	if cmd == nil || !m.quitting {
		t.Error("q should quit from the menu")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestSessionQuitFromGameClosesController(t *testing.T) {
	m := newTestSession(t)
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	ctrl := m.game.Controller()
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	if !m.quitting {
		t.Error("ctrl+c should quit the session")
	}
	if !ctrl.Closed() {
		t.Error("Quitting should close the running game")
	}
}

func TestSessionSkipsUntypeableWords(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
	packs := []PackEntry{{
		Pack:   words.Pack{ID: "mixed", Name: "Mixed", Words: []string{"Mr. Ollivander", "Dobby", "Lupin!"}},
		Stored: true,
	}}
	m := NewSessionModel(config.DefaultConfig(), packs, rc)

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil {
		t.Fatal("A pack with a typeable word should start a game")
	}
	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.game.Controller().Session().Word; got != "Dobby" {
		t.Errorf("Word = %q, only the typeable word may fall", got)
	}
	m.Close()
}

func TestSessionRejectsUntypeablePack(t *testing.T) {
	rc := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
	packs := []PackEntry{{
		Pack:   words.Pack{ID: "bad", Name: "Bad", Words: []string{"Mr. Ollivander", "Lupin!"}},
		Stored: true,
	}}
	m := NewSessionModel(config.DefaultConfig(), packs, rc)

	m = sendSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game != nil {
		t.Fatal("A pack without typeable words must not start a game")
	}
	if !strings.Contains(m.menu.notice, "Mr. Ollivander") {
		t.Errorf("Menu notice %q should name the untypeable word", m.menu.notice)
	}
}
