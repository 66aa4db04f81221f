package anubis

import "github.com/charmbracelet/bubbles/key"

// PadButton is a game-controller button, pre-serialized by the host's
// event loop. Only the buttons the home screen reacts to are modelled.
type PadButton int

const (
	PadUp PadButton = iota
	PadDown
	PadLeft
	PadRight
	PadConfirm
	PadBack
	PadShoulderLeft
	PadShoulderRight
)

// Direction maps a D-pad button to its focus direction. ok is false for
// non-directional buttons.
func (b PadButton) Direction() (Direction, bool) {
	switch b {
	case PadUp:
		return DirUp, true
	case PadDown:
		return DirDown, true
	case PadLeft:
		return DirLeft, true
	case PadRight:
		return DirRight, true
	default:
		return 0, false
	}
}

// KeyMap holds the keyboard bindings for the home screen.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Quit    key.Binding
}

// DefaultKeyMap binds arrows plus hjkl for movement, enter/space for
// confirm, and q / ctrl+c to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
