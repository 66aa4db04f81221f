package anubis

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Palette — true-color hex values
// ---------------------------------------------------------------------------

const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#6c7086"
	colorSurface  lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorLavender lipgloss.Color = "#b4befe"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"
)

// Theme provides the styles for the home screen's visual states. A tile or
// button is rendered with exactly one of its styles depending on whether
// its focus id matches the shared focus state.
type Theme struct {
	TitleBar      lipgloss.Style
	ButtonNormal  lipgloss.Style
	ButtonFocused lipgloss.Style
	TileNormal    lipgloss.Style
	TileFocused   lipgloss.Style
	TilePressed   lipgloss.Style
	Footer        lipgloss.Style
}

// DefaultTheme is a dark theme with a lavender focus accent.
func DefaultTheme() Theme {
	return Theme{
		TitleBar: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBase).
			Padding(0, 1),
		ButtonNormal: lipgloss.NewStyle().
			Foreground(colorSubtext).
			Padding(0, 2),
		ButtonFocused: lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorLavender).
			Bold(true).
			Padding(0, 2),
		TileNormal: lipgloss.NewStyle().
			Foreground(colorText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorOverlay),
		TileFocused: lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorLavender).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorLavender),
		TilePressed: lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorPeach).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPeach),
		Footer: lipgloss.NewStyle().
			Foreground(colorOverlay),
	}
}

// WithAccent returns a copy of the theme using the given focus accent
// color for focused buttons and tiles.
func (t Theme) WithAccent(accent lipgloss.Color) Theme {
	t.ButtonFocused = t.ButtonFocused.Background(accent)
	t.TileFocused = t.TileFocused.Background(accent).BorderForeground(accent)
	return t
}
