package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typefall/internal/config"
	"github.com/vovakirdan/typefall/internal/core"
	"github.com/vovakirdan/typefall/internal/game"
	"github.com/vovakirdan/typefall/internal/words"
)

// Rows around the lane: HUD, input, banner, help.
const chromeRows = 4

const minLaneRows = 5

// Model is the Bubble Tea model for one typefall session.
type Model struct {
	ctrl   *game.Controller
	sched  *Scheduler
	input  textinput.Model
	keys   KeyMap
	help   help.Model
	screen *core.Screen
	title  string
	width  int

	quitting bool
	back     bool
}

// NewModel creates an idle game for the given rules and word source.
// The model owns the controller and its timers.
func NewModel(cfg config.Config, src words.Source, title string, rc core.RuntimeConfig, opts ...game.Option) Model {
	sched := NewScheduler()
	opts = append([]game.Option{game.WithSeed(rc.Seed)}, opts...)

	ti := textinput.New()
	ti.Placeholder = "type the falling word"
	ti.Prompt = "> "
	ti.CharLimit = 0
	ti.Blur()

	return Model{
		ctrl:   game.NewController(cfg, src, sched, opts...),
		sched:  sched,
		input:  ti,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		screen: core.NewScreen(rc.ScreenW, laneRows(rc.ScreenH)),
		title:  title,
		width:  rc.ScreenW,
	}
}

// Controller returns the game the model drives.
func (m Model) Controller() *game.Controller {
	return m.ctrl
}

// WithMenu enables the key that leaves the game for the menu.
func (m Model) WithMenu() Model {
	m.keys.Back.SetEnabled(true)
	return m
}

// BackToMenu returns true if the player left the game for the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// IsQuitting returns true if the player asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.screen.Resize(msg.Width, laneRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		m.sched.Handle(msg)
		cmd := m.syncInput()
		return m, tea.Batch(cmd, m.sched.Flush())
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleKey maps lifecycle keys to controller calls and forwards the rest
// to the text field while a session is running.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch m.keys.Action(msg, m.ctrl.Session().Status) {
	case core.ActionQuit:
		m.ctrl.Close()
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.ctrl.Close()
		m.back = true
		return m, nil
	case core.ActionStart:
		m.ctrl.Start()
	case core.ActionPause:
		m.ctrl.TogglePause()
	case core.ActionStop:
		m.ctrl.Stop()
	case core.ActionDismiss:
		m.ctrl.Dismiss()
	case core.ActionSnapshot:
		m.saveScreenshot()
	case core.ActionNone:
		if m.ctrl.Session().Status == game.StatusRunning {
			before := m.input.Value()
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			cmds = append(cmds, cmd)
			if after := m.input.Value(); after != before {
				m.ctrl.Type(after)
			}
		}
	}

	cmds = append(cmds, m.syncInput(), m.sched.Flush())
	return m, tea.Batch(cmds...)
}

// syncInput mirrors the session's input into the text field and focuses it
// only while running.
func (m *Model) syncInput() tea.Cmd {
	s := m.ctrl.Session()
	if m.input.Value() != s.Input {
		m.input.SetValue(s.Input)
	}
	if s.Status == game.StatusRunning {
		if !m.input.Focused() {
			return m.input.Focus()
		}
		return nil
	}
	m.input.Blur()
	return nil
}

// saveScreenshot saves the current lane to a text file.
func (m *Model) saveScreenshot() {
	game.RenderLane(m.screen, m.ctrl.Session(), m.ctrl.LaneHeight())

	dir := config.UserPath("screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("typefall_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	s := m.ctrl.Session()
	game.RenderLane(m.screen, s, m.ctrl.LaneHeight())

	return lipgloss.JoinVertical(lipgloss.Left,
		m.hudView(s),
		RenderScreen(m.screen),
		m.input.View(),
		m.noticeView(),
		m.help.View(m.keys),
	)
}

// hudView renders the title, score, progress and time left on one row.
func (m Model) hudView(s game.Session) string {
	score := scoreStyle
	switch {
	case s.Delta > 0:
		score = scoreUpStyle
	case s.Delta < 0:
		score = scoreDownStyle
	}

	parts := []string{
		titleStyle.Render("TYPEFALL") + labelStyle.Render(" · "+m.title),
		labelStyle.Render("Score ") + score.Render(fmt.Sprintf("%d", s.Score)) + deltaText(s.Delta),
		labelStyle.Render("Words ") + fmt.Sprintf("%d/%d", s.WordsCompleted, s.Target),
	}
	if s.Timed {
		parts = append(parts, labelStyle.Render("Time ")+fmt.Sprintf("%ds", s.TimeLeft))
	}
	if s.Status == game.StatusPaused {
		parts = append(parts, titleStyle.Render("PAUSED"))
	}
	return strings.Join(parts, labelStyle.Render("  |  "))
}

// noticeView renders the banner, or an empty row when there is none.
func (m Model) noticeView() string {
	n := m.ctrl.Notice()
	switch n.Level {
	case game.NoticeWarn:
		return warnStyle.Render("! " + n.Text + "  (ctrl+n to dismiss)")
	case game.NoticeError:
		return errorStyle.Render("x " + n.Text + "  (ctrl+n to dismiss)")
	}
	return ""
}

func deltaText(delta int) string {
	switch {
	case delta > 0:
		return scoreUpStyle.Render(fmt.Sprintf(" +%d", delta))
	case delta < 0:
		return scoreDownStyle.Render(fmt.Sprintf(" %d", delta))
	}
	return ""
}

func laneRows(screenH int) int {
	return core.Max(screenH-chromeRows, minLaneRows)
}

// Run starts the Bubble Tea program with the given model and tears the
// game down when the program exits.
func Run(m Model) error {
	defer m.ctrl.Close()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
