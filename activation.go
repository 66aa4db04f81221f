package anubis

// Activation is the typed form of a completed direct interaction on a
// focusable element. The host switches on the concrete type instead of
// prefix-matching identifier strings.
type Activation interface {
	isActivation()
}

// ButtonActivation reports a static title-bar control being activated.
type ButtonActivation struct {
	Kind ButtonKind
}

func (ButtonActivation) isActivation() {}

// GameActivation reports a game tile being activated. UUID is the durable
// identity of the game; the host resolves it against its own game list.
type GameActivation struct {
	UUID string
}

func (GameActivation) isActivation() {}

// Dispatcher routes activations to host handlers. One handler per button
// kind, one handler for all game tiles. Dispatching an identifier with no
// registered handler is a silent no-op: unknown ids are a host concern,
// not a UI-layer error.
//
// usage:
//
//	d := NewDispatcher().
//		HandleButton(ButtonSettings, openSettings).
//		HandleGame(launchGame)
//	d.Dispatch(ButtonSettings.FocusID())
type Dispatcher struct {
	buttons map[ButtonKind]func()
	game    func(uuid string)
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{buttons: make(map[ButtonKind]func())}
}

// HandleButton registers the handler for a static control. Registering the
// same kind twice replaces the previous handler.
func (d *Dispatcher) HandleButton(kind ButtonKind, fn func()) *Dispatcher {
	d.buttons[kind] = fn
	return d
}

// HandleGame registers the handler invoked with the uuid of any activated
// game tile.
func (d *Dispatcher) HandleGame(fn func(uuid string)) *Dispatcher {
	d.game = fn
	return d
}

// Dispatch delivers exactly one notification for the element identified by
// id. It reports whether a handler consumed the activation.
func (d *Dispatcher) Dispatch(id FocusID) bool {
	act, ok := ParseFocusID(id)
	if !ok {
		return false
	}
	switch a := act.(type) {
	case ButtonActivation:
		fn := d.buttons[a.Kind]
		if fn == nil {
			return false
		}
		fn()
		return true
	case GameActivation:
		if d.game == nil {
			return false
		}
		d.game(a.UUID)
		return true
	default:
		return false
	}
}
