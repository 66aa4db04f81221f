package anubis

import "testing"

func TestGridConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg := DefaultGridConfig()
		if cfg.Columns != 7 || cfg.VisibleRows != 3 || cfg.Padding != 100 {
			t.Errorf("unexpected defaults: %+v", cfg)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("defaults must validate: %v", err)
		}
	})

	t.Run("RejectsZeroColumns", func(t *testing.T) {
		if _, err := NewGridConfig(0, 3, 100); err == nil {
			t.Error("expected zero columns to be rejected")
		}
		if _, err := NewGridConfig(-1, 3, 100); err == nil {
			t.Error("expected negative columns to be rejected")
		}
	})

	t.Run("RejectsZeroVisibleRows", func(t *testing.T) {
		if _, err := NewGridConfig(7, 0, 100); err == nil {
			t.Error("expected zero visible rows to be rejected")
		}
	})

	t.Run("RejectsNegativePadding", func(t *testing.T) {
		if _, err := NewGridConfig(7, 3, -1); err == nil {
			t.Error("expected negative padding to be rejected")
		}
	})
}

func TestGridPlacement(t *testing.T) {
	cfg := DefaultGridConfig()

	t.Run("Cell", func(t *testing.T) {
		cases := []struct {
			index, row, col int
		}{
			{0, 0, 0},
			{6, 0, 6},
			{7, 1, 0},
			{26, 3, 5},
		}
		for _, c := range cases {
			row, col := cfg.Cell(c.index)
			if row != c.row || col != c.col {
				t.Errorf("index %d: expected (%d, %d), got (%d, %d)",
					c.index, c.row, c.col, row, col)
			}
		}
	})

	t.Run("CellsAreUnique", func(t *testing.T) {
		seen := make(map[[2]int]int)
		for i := 0; i < 27; i++ {
			row, col := cfg.Cell(i)
			if col >= cfg.Columns {
				t.Errorf("index %d: column %d exceeds %d", i, col, cfg.Columns)
			}
			if prev, dup := seen[[2]int{row, col}]; dup {
				t.Errorf("indices %d and %d share cell (%d, %d)", prev, i, row, col)
			}
			seen[[2]int{row, col}] = i
		}
	})

	t.Run("RowsRoundUp", func(t *testing.T) {
		cases := []struct{ n, rows int }{
			{0, 0},
			{1, 1},
			{7, 1},
			{8, 2},
			{27, 4},
		}
		for _, c := range cases {
			if got := cfg.Rows(c.n); got != c.rows {
				t.Errorf("%d tiles: expected %d rows, got %d", c.n, c.rows, got)
			}
		}
	})
}

func TestGridViewport(t *testing.T) {
	cfg := DefaultGridConfig()
	vp := Viewport{Width: 700, Height: 300}

	t.Run("TileSize", func(t *testing.T) {
		w, h := cfg.TileSize(vp)
		if w != 100 || h != 100 {
			t.Errorf("expected 100x100 tiles, got %dx%d", w, h)
		}
	})

	t.Run("TileSizeIgnoresItemCount", func(t *testing.T) {
		// Height divides by the visible-row count, never by how many rows
		// the list actually needs; overflow scrolls instead of shrinking.
		_, h := cfg.TileSize(vp)
		if h != vp.Height/cfg.VisibleRows {
			t.Errorf("expected height %d, got %d", vp.Height/cfg.VisibleRows, h)
		}
	})

	t.Run("TileAt", func(t *testing.T) {
		r := cfg.TileAt(8, vp)
		want := TileRect{X: 100, Y: 100, Width: 100, Height: 100}
		if r != want {
			t.Errorf("expected %+v, got %+v", want, r)
		}
	})

	t.Run("TileAtIsStable", func(t *testing.T) {
		first := cfg.TileAt(26, vp)
		for i := 0; i < 3; i++ {
			if got := cfg.TileAt(26, vp); got != first {
				t.Errorf("relayout changed placement: %+v vs %+v", first, got)
			}
		}
	})

	t.Run("ContentHeight", func(t *testing.T) {
		if got := cfg.ContentHeight(27, vp); got != 4*100+100 {
			t.Errorf("expected 500, got %d", got)
		}
		if got := cfg.ContentHeight(1, vp); got != 1*100+100 {
			t.Errorf("expected 200, got %d", got)
		}
	})

	t.Run("EmptyListIsPaddingOnly", func(t *testing.T) {
		if got := cfg.ContentHeight(0, vp); got != cfg.Padding {
			t.Errorf("expected %d, got %d", cfg.Padding, got)
		}
	})
}
