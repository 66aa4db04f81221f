package anubis

import "strings"

// FocusID identifies a single focusable element on screen. Static controls
// and game tiles share one namespace so a single focused value can address
// either kind uniformly.
//
// Two prefixes partition the namespace:
//
//	BTN@<name>   static title-bar controls
//	GAME@<uuid>  dynamic game tiles
type FocusID string

const (
	buttonPrefix = "BTN@"
	gamePrefix   = "GAME@"
)

// ButtonKind enumerates the static title-bar controls.
type ButtonKind int

const (
	ButtonGames ButtonKind = iota
	ButtonRecentlyPlayed
	ButtonSettings
)

// String returns the wire name of the button, e.g. "SETTINGS".
func (b ButtonKind) String() string {
	switch b {
	case ButtonGames:
		return "GAMES"
	case ButtonRecentlyPlayed:
		return "RECENTLY_PLAYED"
	case ButtonSettings:
		return "SETTINGS"
	default:
		return "UNKNOWN"
	}
}

// FocusID returns the focus identifier for the button, e.g. "BTN@SETTINGS".
func (b ButtonKind) FocusID() FocusID {
	return FocusID(buttonPrefix + b.String())
}

// GameFocusID returns the focus identifier for a game tile, e.g. "GAME@<uuid>".
func GameFocusID(uuid string) FocusID {
	return FocusID(gamePrefix + uuid)
}

// buttonKindByName maps wire names back to kinds.
var buttonKindByName = map[string]ButtonKind{
	"GAMES":           ButtonGames,
	"RECENTLY_PLAYED": ButtonRecentlyPlayed,
	"SETTINGS":        ButtonSettings,
}

// ParseFocusID classifies a focus identifier into its tagged activation
// variant. Identifiers outside the two known prefixes, and button names
// without a registered kind, return ok=false.
func ParseFocusID(id FocusID) (Activation, bool) {
	s := string(id)
	switch {
	case strings.HasPrefix(s, buttonPrefix):
		kind, known := buttonKindByName[strings.TrimPrefix(s, buttonPrefix)]
		if !known {
			return nil, false
		}
		return ButtonActivation{Kind: kind}, true
	case strings.HasPrefix(s, gamePrefix):
		uuid := strings.TrimPrefix(s, gamePrefix)
		if uuid == "" {
			return nil, false
		}
		return GameActivation{UUID: uuid}, true
	default:
		return nil, false
	}
}
