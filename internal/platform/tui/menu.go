package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/typefall/internal/registry"
	"github.com/vovakirdan/typefall/internal/storage"
	"github.com/vovakirdan/typefall/internal/words"
)

// PackEntry is a word pack offered by the menu.
type PackEntry struct {
	Pack   words.Pack
	Stored bool // imported into the database rather than built in
}

// CollectPacks merges the library's packs with the stored ones, sorted by ID.
// A stored pack shadows a built-in pack with the same ID. store may be nil.
func CollectPacks(lib words.Library, store *storage.Store) ([]PackEntry, error) {
	byID := make(map[string]PackEntry)
	for _, id := range lib.IDs() {
		byID[id] = PackEntry{Pack: lib.Categories[id]}
	}

	if store != nil {
		infos, err := store.Packs()
		if err != nil {
			return nil, err
		}
		for _, info := range infos {
			p, err := store.Pack(info.ID)
			if err != nil {
				return nil, err
			}
			byID[info.ID] = PackEntry{Pack: p, Stored: true}
		}
	}

	entries := make([]PackEntry, 0, len(byID))
	for _, e := range byID {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Pack.ID < entries[j].Pack.ID
	})
	return entries, nil
}

// MenuKeyMap defines the key bindings for the menu.
type MenuKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Select   key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextMode, k.PrevMode},
		{k.Select, k.Quit},
	}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev pack"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "next pack"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev mode"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "play"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Selection is what the player picked in the menu.
type Selection struct {
	ModeID string
	Pack   words.Pack
}

// MenuModel is the Bubble Tea model for the mode and pack picker.
type MenuModel struct {
	modes      []registry.ModeInfo
	modeCursor int
	packs      []PackEntry
	table      table.Model
	help       help.Model
	keys       MenuKeyMap
	width      int
	height     int
	quitting   bool
	selected   *Selection
	notice     string
}

// NewMenuModel creates a menu over the registered modes and the given packs.
func NewMenuModel(packs []PackEntry, width, height int) MenuModel {
	h := help.New()
	h.ShowAll = false

	m := MenuModel{
		modes:  registry.List(),
		packs:  packs,
		help:   h,
		keys:   DefaultMenuKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Pack", Width: 24},
		{Title: "Words", Width: 7},
		{Title: "Source", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)), // Leave room for title, tabs, help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table with the current packs.
func (m *MenuModel) updateTableRows() {
	rows := make([]table.Row, len(m.packs))
	for i, e := range m.packs {
		source := "built-in"
		if e.Stored {
			source = "imported"
		}
		rows[i] = table.Row{
			e.Pack.Name,
			fmt.Sprintf("%d", len(e.Pack.Words)),
			source,
		}
	}
	m.table.SetRows(rows)
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor + 1) % len(m.modes)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevMode):
			if len(m.modes) > 0 {
				m.modeCursor = (m.modeCursor - 1 + len(m.modes)) % len(m.modes)
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			if len(m.modes) > 0 && len(m.packs) > 0 {
				m.selected = &Selection{
					ModeID: m.modes[m.modeCursor].ID,
					Pack:   m.packs[m.table.Cursor()].Pack,
				}
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Render("T Y P E F A L L")
	b.WriteString("\n")
	b.WriteString(centerText(title, lipgloss.Width(title), m.width))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.modes))
	for i, mode := range m.modes {
		if i == m.modeCursor {
			tabs[i] = activeTabStyle.Render(mode.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + mode.Title + " ")
		}
	}
	tabLine := strings.Join(tabs, " ")
	b.WriteString(centerText(tabLine, lipgloss.Width(tabLine), m.width))
	b.WriteString("\n")
	if len(m.modes) > 0 {
		desc := m.modes[m.modeCursor].Description
		line := tabStyle.Render(desc)
		b.WriteString(centerText(line, lipgloss.Width(line), m.width))
	}
	b.WriteString("\n")
	if m.notice != "" {
		line := errorStyle.Render(m.notice)
		b.WriteString(centerText(line, lipgloss.Width(line), m.width))
	}
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	var content string
	if len(m.packs) == 0 {
		content = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4).
			Render("No word packs available.\nImport one with: typefall packs import <file>")
	} else {
		content = m.table.View()
	}
	rendered := tableStyle.Render(content)
	for _, line := range strings.Split(rendered, "\n") {
		b.WriteString(centerText(line, lipgloss.Width(line), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the picked mode and pack, or nil if none yet.
func (m MenuModel) Selected() *Selection {
	return m.selected
}

// WithNotice returns a fresh copy of the menu showing an error line.
func (m MenuModel) WithNotice(text string) MenuModel {
	m.notice = text
	m.selected = nil
	return m
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText pads text, whose visible width is w, to the middle of width.
func centerText(text string, w, width int) string {
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
