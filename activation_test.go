package anubis

import "testing"

func TestDispatcher(t *testing.T) {
	t.Run("ButtonDelivery", func(t *testing.T) {
		var settings int
		d := NewDispatcher().HandleButton(ButtonSettings, func() {
			settings++
		})

		// Dispatch is independent of whatever happens to be focused:
		// exactly one notification per call, addressed by the id alone.
		if !d.Dispatch(ButtonSettings.FocusID()) {
			t.Fatal("expected dispatch to be consumed")
		}
		if settings != 1 {
			t.Errorf("expected exactly 1 notification, got %d", settings)
		}
	})

	t.Run("GameDelivery", func(t *testing.T) {
		var got string
		d := NewDispatcher().HandleGame(func(uuid string) {
			got = uuid
		})

		if !d.Dispatch(GameFocusID("abc")) {
			t.Fatal("expected dispatch to be consumed")
		}
		if got != "abc" {
			t.Errorf("expected uuid abc, got %q", got)
		}
	})

	t.Run("UnknownIDIsSilent", func(t *testing.T) {
		var calls int
		d := NewDispatcher().
			HandleButton(ButtonGames, func() { calls++ }).
			HandleGame(func(string) { calls++ })

		if d.Dispatch("WINDOW@main") {
			t.Error("expected unknown id to be dropped")
		}
		if d.Dispatch("BTN@STORE") {
			t.Error("expected unknown button name to be dropped")
		}
		if calls != 0 {
			t.Errorf("expected no handler calls, got %d", calls)
		}
	})

	t.Run("UnregisteredHandler", func(t *testing.T) {
		d := NewDispatcher()
		if d.Dispatch(ButtonGames.FocusID()) {
			t.Error("expected unhandled button to report false")
		}
		if d.Dispatch(GameFocusID("abc")) {
			t.Error("expected unhandled game to report false")
		}
	})

	t.Run("ReplaceHandler", func(t *testing.T) {
		var first, second int
		d := NewDispatcher().
			HandleButton(ButtonGames, func() { first++ }).
			HandleButton(ButtonGames, func() { second++ })

		d.Dispatch(ButtonGames.FocusID())
		if first != 0 || second != 1 {
			t.Errorf("expected replacement handler only, got first=%d second=%d", first, second)
		}
	})
}
