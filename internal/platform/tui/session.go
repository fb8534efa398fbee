package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/registry"
	"github.com/vovakirdan/typefall/internal/words"
)

// SessionModel manages the full flow: menu -> game -> menu.
// It is the top-level model for SSH sessions and for local play with a picker.
type SessionModel struct {
	base     config.Config
	packs    []PackEntry
	config   core.RuntimeConfig
	opts     []game.Option
	menu     MenuModel
	game     *Model
	live     *liveGame
	quitting bool
}

// liveGame is the controller of the game currently on screen. It is shared
// by every copy of a SessionModel, so any copy can tear the game down once
// the program has stopped.
type liveGame struct {
	mu   sync.Mutex
	ctrl *game.Controller
}

func (l *liveGame) set(c *game.Controller) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ctrl = c
}

func (l *liveGame) close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ctrl != nil {
		l.ctrl.Close()
	}
}

// NewSessionModel creates a session that starts in the menu. Every game it
// creates gets base with the chosen mode applied, plus opts.
func NewSessionModel(base config.Config, packs []PackEntry, cfg core.RuntimeConfig, opts ...game.Option) SessionModel {
	return SessionModel{
		base:   base,
		packs:  packs,
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(packs, cfg.ScreenW, cfg.ScreenH),
		live:   &liveGame{},
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if selected := m.menu.Selected(); selected != nil {
		gm, err := m.newGame(*selected)
		if err != nil {
			m.menu = m.menu.WithNotice(err.Error())
			return m, nil
		}
		m.game = &gm
		m.live.set(gm.Controller())
		return m, m.game.Init()
	}

	return m, cmd
}

// newGame builds an idle game for the selected mode and pack.
func (m SessionModel) newGame(sel Selection) (Model, error) {
	mode, err := registry.Create(sel.ModeID)
	if err != nil {
		return Model{}, err
	}
	cfg := m.base
	mode.Configure(&cfg)

	list, _, err := game.RulesFromConfig(cfg).PlayableWords(sel.Pack.Words)
	if err != nil {
		return Model{}, fmt.Errorf("pack %q: %w", sel.Pack.ID, err)
	}
	src, err := words.NewCatalog(list, m.config.Seed)
	if err != nil {
		return Model{}, err
	}

	return NewModel(cfg, src, mode.Title()+" / "+sel.Pack.Name, m.config, m.opts...).WithMenu(), nil
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.live.set(nil)
		m.menu = NewMenuModel(m.packs, m.config.ScreenW, m.config.ScreenH)
		return m, m.menu.Init()
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	if m.game != nil {
		return m.game.View()
	}

	return m.menu.View()
}

// Close stops the running game, if any. Any copy of the session may be
// used, but only after the program driving it has stopped.
func (m SessionModel) Close() {
	if m.live != nil {
		m.live.close()
	}
}

// RunSession runs the menu and games until the player quits.
func RunSession(m SessionModel) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if sm, ok := final.(SessionModel); ok {
		sm.Close()
	}
	return err
}
