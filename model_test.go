package anubis

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, games int) Model {
	t.Helper()
	h, err := NewHomeScreen(DefaultGridConfig(), nil)
	if err != nil {
		t.Fatalf("new home screen: %v", err)
	}
	if games > 0 {
		h.SetGames(testGames(games))
	}
	m := NewModel(h)
	return applyMsg(t, m, tea.WindowSizeMsg{Width: 84, Height: 24})
}

func applyMsg(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return model
}

func TestModelUpdate(t *testing.T) {
	t.Run("WindowSize", func(t *testing.T) {
		m := newTestModel(t, 0)
		if m.width != 84 || m.height != 24 {
			t.Errorf("expected 84x24, got %dx%d", m.width, m.height)
		}
	})

	t.Run("ArrowKeysMoveFocus", func(t *testing.T) {
		m := newTestModel(t, 3)

		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})
		if !m.home.IsFocused(GameFocusID("uuid-1")) {
			t.Errorf("expected first tile, got %q", m.home.Focus().Current())
		}
		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyRight})
		if !m.home.IsFocused(GameFocusID("uuid-2")) {
			t.Errorf("expected second tile, got %q", m.home.Focus().Current())
		}
	})

	t.Run("VimKeys", func(t *testing.T) {
		m := newTestModel(t, 3)

		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
		if !m.home.IsFocused(GameFocusID("uuid-1")) {
			t.Errorf("expected j to move down, got %q", m.home.Focus().Current())
		}
		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
		if !m.home.IsFocused(GameFocusID("uuid-2")) {
			t.Errorf("expected l to move right, got %q", m.home.Focus().Current())
		}
	})

	t.Run("EnterActivates", func(t *testing.T) {
		var launched string
		disp := NewDispatcher().HandleGame(func(uuid string) {
			launched = uuid
		})
		h, err := NewHomeScreen(DefaultGridConfig(), disp)
		if err != nil {
			t.Fatalf("new home screen: %v", err)
		}
		h.SetGames(testGames(2))
		m := applyMsg(t, NewModel(h), tea.WindowSizeMsg{Width: 84, Height: 24})

		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})
		applyMsg(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		if launched != "uuid-1" {
			t.Errorf("expected uuid-1 launched, got %q", launched)
		}
	})

	t.Run("QuitKey", func(t *testing.T) {
		m := newTestModel(t, 0)
		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
		if cmd == nil {
			t.Fatal("expected a quit command")
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("expected QuitMsg, got %T", cmd())
		}
	})

	t.Run("PadMessage", func(t *testing.T) {
		m := newTestModel(t, 3)
		m = applyMsg(t, m, PadMsg{Button: PadDown})
		if !m.home.IsFocused(GameFocusID("uuid-1")) {
			t.Errorf("expected first tile, got %q", m.home.Focus().Current())
		}
	})
}

func TestModelScrolling(t *testing.T) {
	t.Run("FocusBelowWindowScrollsDown", func(t *testing.T) {
		m := newTestModel(t, 30) // 5 rows of 7, 3 visible

		for i := 0; i < 4; i++ {
			m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})
		}
		// Focus is on row 3; rows 0-2 were visible, so the window slides
		// down by one.
		if m.scroll != 1 {
			t.Errorf("expected scroll 1, got %d", m.scroll)
		}
	})

	t.Run("FocusAboveWindowScrollsUp", func(t *testing.T) {
		m := newTestModel(t, 30)
		for i := 0; i < 5; i++ {
			m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})
		}
		if m.scroll != 2 {
			t.Fatalf("expected scroll 2, got %d", m.scroll)
		}

		for i := 0; i < 4; i++ {
			m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyUp})
		}
		if m.scroll != 0 {
			t.Errorf("expected scroll 0, got %d", m.scroll)
		}
	})

	t.Run("ButtonFocusKeepsScroll", func(t *testing.T) {
		m := newTestModel(t, 30)
		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyDown})

		m = applyMsg(t, m, tea.KeyMsg{Type: tea.KeyUp})
		if m.scroll != 0 {
			t.Errorf("expected scroll 0, got %d", m.scroll)
		}
		if !m.home.IsFocused(ButtonGames.FocusID()) {
			t.Errorf("expected BTN@GAMES, got %q", m.home.Focus().Current())
		}
	})
}

func TestModelView(t *testing.T) {
	t.Run("EmptyBeforeFirstResize", func(t *testing.T) {
		h, err := NewHomeScreen(DefaultGridConfig(), nil)
		if err != nil {
			t.Fatalf("new home screen: %v", err)
		}
		if view := NewModel(h).View(); view != "" {
			t.Errorf("expected empty view before sizing, got %q", view)
		}
	})

	t.Run("ShowsButtonsAndTiles", func(t *testing.T) {
		m := newTestModel(t, 3)
		view := m.View()

		for _, want := range []string{"Games", "Recently Played", "Settings", "Game 1", "Game 3"} {
			if !strings.Contains(view, want) {
				t.Errorf("expected view to contain %q", want)
			}
		}
	})

	t.Run("EmptyLibraryNotice", func(t *testing.T) {
		m := newTestModel(t, 0)
		if !strings.Contains(m.View(), "Library is empty") {
			t.Error("expected empty-library notice")
		}
	})

	t.Run("OffscreenRowsAreHidden", func(t *testing.T) {
		m := newTestModel(t, 30)
		view := m.View()

		if !strings.Contains(view, "Game 1") {
			t.Error("expected first row to be visible")
		}
		// Row 3 (tiles 22-28) starts below the 3 visible rows.
		if strings.Contains(view, "Game 22") {
			t.Error("expected fourth row to be scrolled out of view")
		}
	})
}
