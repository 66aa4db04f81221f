package anubis

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// PadMsg injects a controller button into the program. The host's gamepad
// reader sends these through Program.Send, which serializes them with
// keyboard input on the single update loop.
type PadMsg struct {
	Button PadButton
}

// Model is the Bubble Tea frontend for a HomeScreen. It owns only
// presentation state (viewport size, scroll row); focus and game data live
// in the HomeScreen it wraps.
type Model struct {
	home  *HomeScreen
	keys  KeyMap
	theme Theme

	width  int
	height int
	scroll int // first visible tile row
}

// NewModel wraps a home screen in its terminal frontend.
func NewModel(home *HomeScreen) Model {
	return Model{
		home:  home,
		keys:  DefaultKeyMap(),
		theme: DefaultTheme(),
	}
}

// WithTheme overrides the default theme.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case PadMsg:
		m.home.HandlePad(msg.Button)
		m.ensureFocusVisible()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.home.Navigate(DirUp)
		case key.Matches(msg, m.keys.Down):
			m.home.Navigate(DirDown)
		case key.Matches(msg, m.keys.Left):
			m.home.Navigate(DirLeft)
		case key.Matches(msg, m.keys.Right):
			m.home.Navigate(DirRight)
		case key.Matches(msg, m.keys.Confirm):
			m.home.Activate()
		}
		m.ensureFocusVisible()
	}
	return m, nil
}

// ensureFocusVisible scrolls the tile grid so the focused row stays inside
// the visible window.
func (m *Model) ensureFocusVisible() {
	idx := m.focusedGameIndex()
	if idx < 0 {
		return
	}
	row, _ := m.home.GridConfig().Cell(idx)
	visible := m.home.GridConfig().VisibleRows
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+visible {
		m.scroll = row - visible + 1
	}
}

// focusedGameIndex returns the list index of the focused game tile, -1
// when a button or nothing is focused.
func (m *Model) focusedGameIndex() int {
	for i, g := range m.home.Games().Items() {
		if m.home.IsFocused(g.FocusID()) {
			return i
		}
	}
	return -1
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.viewTitleBar())
	b.WriteString("\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m Model) viewTitleBar() string {
	buttons := []ButtonKind{ButtonGames, ButtonRecentlyPlayed, ButtonSettings}
	parts := make([]string, 0, len(buttons))
	for _, kind := range buttons {
		style := m.theme.ButtonNormal
		if m.home.IsFocused(kind.FocusID()) {
			style = m.theme.ButtonFocused
		}
		parts = append(parts, style.Render(buttonLabel(kind)))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	return m.theme.TitleBar.Width(m.width).Render(bar)
}

func buttonLabel(kind ButtonKind) string {
	switch kind {
	case ButtonGames:
		return "Games"
	case ButtonRecentlyPlayed:
		return "Recently Played"
	case ButtonSettings:
		return "Settings"
	default:
		return kind.String()
	}
}

func (m Model) viewGrid() string {
	games := m.home.Games().Items()
	if len(games) == 0 {
		return m.theme.Footer.Render("  Library is empty.")
	}

	cfg := m.home.GridConfig()
	tileW := m.width / cfg.Columns
	if tileW < 6 {
		tileW = 6
	}
	// Room for the label inside the tile border.
	innerW := tileW - 4

	firstRow := m.scroll
	lastRow := m.scroll + cfg.VisibleRows // exclusive

	var rows []string
	for row := firstRow; row < lastRow; row++ {
		var tiles []string
		for col := 0; col < cfg.Columns; col++ {
			i := row*cfg.Columns + col
			if i >= len(games) {
				break
			}
			g := games[i]
			style := m.theme.TileNormal
			if m.home.IsFocused(g.FocusID()) {
				style = m.theme.TileFocused
			}
			label := runewidth.Truncate(g.Title, innerW, "…")
			label = runewidth.FillRight(label, innerW)
			tiles = append(tiles, style.Render(label))
		}
		if len(tiles) == 0 {
			break
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewFooter() string {
	hints := []string{
		m.keys.Up.Help().Key + "/" + m.keys.Down.Help().Key + " move",
		m.keys.Confirm.Help().Key + " select",
		m.keys.Quit.Help().Key + " quit",
	}
	return m.theme.Footer.Render("  " + strings.Join(hints, "  ·  "))
}
