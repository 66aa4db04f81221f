package anubis

import "fmt"

// Layout identifiers for the home window.
const (
	HomeLayoutID  = "Home"
	GamesLayoutID = "Home@Games"
)

// The home window's navigation grid:
//
//	╔═════════╦════════════════╦═════════╦══════════╗
//	║ Games   ║ RecentlyPlayed ║         ║ Settings ║
//	╠═════════╩════════════════╩═════════╩══════════╣
//	║                                                ║
//	║          Home@Games (growable tiles)           ║
//	║                                                ║
//	╚════════════════════════════════════════════════╝
//
// Buttons occupy row 0 of a 4x6 root; the scrollable game grid is a
// growable sublayout covering rows 1-5, as wide as the tile column count.
func newHomeLayout(columns int) (*LayoutGrid, error) {
	b := NewLayoutGridBuilder(4, 6, HomeLayoutID)
	b.AddElement(Rect{X0: 0, X1: 0, Y0: 0, Y1: 0}, ButtonGames.FocusID())
	b.AddElement(Rect{X0: 1, X1: 1, Y0: 0, Y1: 0}, ButtonRecentlyPlayed.FocusID())
	b.AddElement(Rect{X0: 3, X1: 3, Y0: 0, Y1: 0}, ButtonSettings.FocusID())

	sub := b.WithSublayout(Rect{X0: 0, X1: 3, Y0: 1, Y1: 5}, GamesLayoutID, columns, 10)
	sub.SetGrowable(1, 1, GrowX)

	root, err := b.Build()
	if err != nil {
		return nil, err
	}

	games, ok := root.sublayout(GamesLayoutID)
	if !ok {
		return nil, fmt.Errorf("home layout: missing %q", GamesLayoutID)
	}
	games.SetEdgeJump(PadShoulderLeft, JumpOutLeft)
	games.SetEdgeJump(PadShoulderRight, JumpOutRight)

	return root, nil
}

// HomeScreen composes the launcher home page: the shared focus state, the
// observable game list, the activation dispatcher, the directional
// navigation controller and the tile grid configuration. All interaction
// is single-threaded; the host's event loop serializes input before it
// reaches these methods.
type HomeScreen struct {
	cfg   GridConfig
	focus *FocusState
	games *Observable[Game]
	disp  *Dispatcher
	nav   *NavigationController
}

// NewHomeScreen builds an empty home screen. The dispatcher may be shared
// with other screens; pass NewDispatcher() when no handlers are wired yet.
func NewHomeScreen(cfg GridConfig, disp *Dispatcher) (*HomeScreen, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if disp == nil {
		disp = NewDispatcher()
	}

	h := &HomeScreen{
		cfg:   cfg,
		focus: NewFocusState(),
		games: NewObservable[Game](),
		disp:  disp,
	}

	// Any game-list change rebuilds the navigation grid; a wholesale Set
	// with identical content still produces an identical layout.
	h.games.Subscribe(func(Change[Game]) {
		h.rebuildNavigator()
	})

	if err := h.rebuildNavigatorErr(); err != nil {
		return nil, err
	}
	h.focus.Set(h.nav.FocusID())
	return h, nil
}

// Focus returns the shared focus state store.
func (h *HomeScreen) Focus() *FocusState {
	return h.focus
}

// Games returns the observable game list.
func (h *HomeScreen) Games() *Observable[Game] {
	return h.games
}

// GridConfig returns the tile grid configuration.
func (h *HomeScreen) GridConfig() GridConfig {
	return h.cfg
}

// SetGames replaces the visible game list wholesale, triggering a full
// relayout. Order is preserved; uuids are not deduplicated.
func (h *HomeScreen) SetGames(games []Game) {
	h.games.Set(games)
}

// IsFocused reports whether the element carrying id is focused.
func (h *HomeScreen) IsFocused(id FocusID) bool {
	return h.focus.IsFocused(id)
}

// Navigate moves focus one step. When no element lies in that direction
// the focus is left untouched.
func (h *HomeScreen) Navigate(dir Direction) {
	res, err := h.nav.Navigate(DirectionDirective{Direction: dir})
	if err != nil || res.Kind == NavNone {
		return
	}
	h.focus.Set(res.FocusID)
}

// HandlePad routes a controller button: D-pad moves focus, confirm
// activates, everything else is offered to the layout's edge-jump
// bindings.
func (h *HomeScreen) HandlePad(b PadButton) {
	if dir, ok := b.Direction(); ok {
		h.Navigate(dir)
		return
	}
	if b == PadConfirm {
		h.Activate()
		return
	}
	res, err := h.nav.Navigate(PadDirective{Button: b})
	if err != nil || res.Kind == NavNone {
		return
	}
	h.focus.Set(res.FocusID)
}

// Activate dispatches the focused element to the host. Exactly one
// notification per call when something is focused and handled; activation
// never moves focus.
func (h *HomeScreen) Activate() bool {
	id := h.focus.Current()
	if id == "" {
		return false
	}
	return h.disp.Dispatch(id)
}

func (h *HomeScreen) rebuildNavigator() {
	// Change subscribers have no error channel; a failed rebuild keeps the
	// previous navigator, which can only happen on invalid layout geometry.
	_ = h.rebuildNavigatorErr()
}

func (h *HomeScreen) rebuildNavigatorErr() error {
	root, err := newHomeLayout(h.cfg.Columns)
	if err != nil {
		return err
	}
	games, _ := root.sublayout(GamesLayoutID)
	for _, g := range h.games.Items() {
		if err := games.InsertGrowable(g.FocusID()); err != nil {
			return err
		}
	}
	nav, err := NewNavigationController(root)
	if err != nil {
		return err
	}
	h.nav = nav

	// Keep the navigator's cursor aligned with whatever is focused, when
	// that element still exists after the relayout. The focus store itself
	// only changes via explicit Set calls.
	if cur := h.focus.Current(); cur != "" {
		h.nav.SeekTo(cur)
	}
	return nil
}
