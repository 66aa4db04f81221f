package anubis

import "fmt"

// Defaults observed on the home screen: seven tiles across, three rows
// visible in the viewport, and a fixed tail of scroll padding.
const (
	DefaultColumns     = 7
	DefaultVisibleRows = 3
	DefaultPadding     = 100
)

// GridConfig holds the named layout constants for the scrollable tile grid.
// Construct with NewGridConfig so a zero column count is rejected up front
// rather than dividing by zero at layout time.
type GridConfig struct {
	Columns     int // tiles per row
	VisibleRows int // rows shown in the viewport regardless of item count
	Padding     int // extra scrollable space below the last row
}

// NewGridConfig validates and returns a grid configuration. Zero or
// negative columns or visible rows are invalid; negative padding is
// invalid.
func NewGridConfig(columns, visibleRows, padding int) (GridConfig, error) {
	cfg := GridConfig{Columns: columns, VisibleRows: visibleRows, Padding: padding}
	if err := cfg.Validate(); err != nil {
		return GridConfig{}, err
	}
	return cfg, nil
}

// DefaultGridConfig returns the 7x3 home-screen grid with 100 units of
// scroll padding.
func DefaultGridConfig() GridConfig {
	return GridConfig{Columns: DefaultColumns, VisibleRows: DefaultVisibleRows, Padding: DefaultPadding}
}

// Validate rejects degenerate configurations.
func (c GridConfig) Validate() error {
	if c.Columns <= 0 {
		return fmt.Errorf("grid config: columns must be positive, got %d", c.Columns)
	}
	if c.VisibleRows <= 0 {
		return fmt.Errorf("grid config: visible rows must be positive, got %d", c.VisibleRows)
	}
	if c.Padding < 0 {
		return fmt.Errorf("grid config: padding must be non-negative, got %d", c.Padding)
	}
	return nil
}

// Cell returns the (row, col) placement of tile index i. Tiles fill
// left-to-right, top-to-bottom.
func (c GridConfig) Cell(i int) (row, col int) {
	return i / c.Columns, i % c.Columns
}

// Rows returns the number of rows needed for n tiles, rounding up so a
// partially filled last row is never clipped.
func (c GridConfig) Rows(n int) int {
	return (n + c.Columns - 1) / c.Columns
}

// Viewport is the visible scrollable region. Width comes from the host's
// window system; Height is the fixed visible area the grid divides into
// VisibleRows rows.
type Viewport struct {
	Width  int
	Height int
}

// TileSize returns the size of one tile. Width tracks the viewport; height
// is viewport height over the visible-row count, independent of how many
// rows the list actually occupies. Tiles past the visible rows overflow
// into the scrollable area rather than shrinking.
func (c GridConfig) TileSize(vp Viewport) (w, h int) {
	return vp.Width / c.Columns, vp.Height / c.VisibleRows
}

// TileRect is the computed placement of one tile in content coordinates.
type TileRect struct {
	X, Y          int
	Width, Height int
}

// TileAt returns the placement of tile index i within the scrollable
// content area.
func (c GridConfig) TileAt(i int, vp Viewport) TileRect {
	row, col := c.Cell(i)
	w, h := c.TileSize(vp)
	return TileRect{X: col * w, Y: row * h, Width: w, Height: h}
}

// ContentHeight returns the total scrollable content height for n tiles:
// full rows (rounded up) plus the configured padding. n = 0 yields the
// padding alone.
func (c GridConfig) ContentHeight(n int, vp Viewport) int {
	_, h := c.TileSize(vp)
	return c.Rows(n)*h + c.Padding
}
