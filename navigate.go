package anubis

import "fmt"

// Rect describes an inclusive cell range on a layout grid.
type Rect struct {
	X0, X1 int
	Y0, Y1 int
}

// NewRect validates and returns an inclusive rect.
func NewRect(x0, x1, y0, y1 int) (Rect, error) {
	if x0 < 0 || y0 < 0 {
		return Rect{}, fmt.Errorf("rect: negative start (%d, %d)", x0, y0)
	}
	if x1 < x0 || y1 < y0 {
		return Rect{}, fmt.Errorf("rect: end before start (%d..%d, %d..%d)", x0, x1, y0, y1)
	}
	return Rect{X0: x0, X1: x1, Y0: y0, Y1: y1}, nil
}

func (r Rect) topLeft() Point     { return Point{X: r.X0, Y: r.Y0} }
func (r Rect) bottomRight() Point { return Point{X: r.X1, Y: r.Y1} }

func (r Rect) contains(p Point) bool {
	return p.X >= r.X0 && p.X <= r.X1 && p.Y >= r.Y0 && p.Y <= r.Y1
}

// Point is a cell coordinate on a layout grid. X grows rightward, Y grows
// downward.
type Point struct {
	X, Y int
}

func (p Point) add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Direction is a focus-movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// vector returns the unit step for the direction.
func (d Direction) vector() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// sideVectors returns the two perpendicular unit steps, used to sweep
// sideways when nothing lies on the direct line.
func (d Direction) sideVectors() (a, b Point) {
	switch d {
	case DirUp, DirDown:
		return Point{X: -1}, Point{X: 1}
	default:
		return Point{Y: -1}, Point{Y: 1}
	}
}

// Directive is one navigation input. Concrete types: DirectionDirective,
// PadDirective, NoopDirective.
type Directive interface {
	isDirective()
}

// DirectionDirective moves focus one step in a direction.
type DirectionDirective struct {
	Direction Direction
}

func (DirectionDirective) isDirective() {}

// PadDirective carries a raw controller button for layouts that bind edge
// jumps to non-directional buttons (shoulders).
type PadDirective struct {
	Button PadButton
}

func (PadDirective) isDirective() {}

// NoopDirective reads the current focus without moving it.
type NoopDirective struct{}

func (NoopDirective) isDirective() {}

// EdgeJump is a non-directional escape bound to a pad button: jump the
// cursor to an edge of the layout and navigate out across it.
type EdgeJump int

const (
	JumpOutLeft EdgeJump = iota
	JumpOutRight
)

// gridItem occupies one or more cells of a layout grid. It is either a
// focusable element or a nested sublayout; sub is nil for elements.
type gridItem struct {
	focusID FocusID
	sub     *LayoutGrid
	rect    Rect
}

func (it *gridItem) isSublayout() bool { return it.sub != nil }

// grid2D is a sparse occupancy grid indexed cells[x][y].
type grid2D struct {
	xSize, ySize int
	cells        [][]*gridItem
}

func newGrid2D(xSize, ySize int) (*grid2D, error) {
	if xSize <= 0 || ySize <= 0 {
		return nil, fmt.Errorf("grid: invalid size %dx%d", xSize, ySize)
	}
	cells := make([][]*gridItem, xSize)
	for x := range cells {
		cells[x] = make([]*gridItem, ySize)
	}
	return &grid2D{xSize: xSize, ySize: ySize, cells: cells}, nil
}

// expand grows the grid to the new size, keeping existing occupancy.
func (g *grid2D) expand(xSize, ySize int) error {
	if xSize < g.xSize || ySize < g.ySize {
		return fmt.Errorf("grid: cannot shrink %dx%d to %dx%d", g.xSize, g.ySize, xSize, ySize)
	}
	for x := g.xSize; x < xSize; x++ {
		g.cells = append(g.cells, make([]*gridItem, ySize))
	}
	for x := 0; x < g.xSize; x++ {
		for y := g.ySize; y < ySize; y++ {
			g.cells[x] = append(g.cells[x], nil)
		}
	}
	g.xSize, g.ySize = xSize, ySize
	return nil
}

func (g *grid2D) within(x, y int) bool {
	return x >= 0 && x < g.xSize && y >= 0 && y < g.ySize
}

// fill places item over every cell of rect. The whole area must be inside
// the grid and empty.
func (g *grid2D) fill(rect Rect, item *gridItem) error {
	if rect.X0 < 0 || rect.Y0 < 0 {
		return fmt.Errorf("grid: rect %v has a negative start", rect)
	}
	if rect.X1 >= g.xSize || rect.Y1 >= g.ySize {
		return fmt.Errorf("grid: rect %v exceeds %dx%d", rect, g.xSize, g.ySize)
	}
	for x := rect.X0; x <= rect.X1; x++ {
		for y := rect.Y0; y <= rect.Y1; y++ {
			if g.cells[x][y] != nil {
				return fmt.Errorf("grid: overlapping rect at %d, %d", x, y)
			}
		}
	}
	for x := rect.X0; x <= rect.X1; x++ {
		for y := rect.Y0; y <= rect.Y1; y++ {
			g.cells[x][y] = item
		}
	}
	return nil
}

func (g *grid2D) at(x, y int) (*gridItem, error) {
	if !g.within(x, y) {
		return nil, fmt.Errorf("grid: coordinate %d, %d out of bounds", x, y)
	}
	return g.cells[x][y], nil
}

// GrowDirection controls how a growable layout appends elements.
type GrowDirection int

const (
	// GrowX fills left to right, starting a new row when one fills up.
	GrowX GrowDirection = iota
	// GrowY fills top to bottom, starting a new column when one fills up.
	GrowY
)

// growConfig sizes appended items and tracks the next insertion point.
type growConfig struct {
	itemW, itemH int
	dir          GrowDirection
	next         Point
}

// NavigationKind classifies a navigation outcome.
type NavigationKind int

const (
	// NavNone means no next item in that direction; focus is unchanged.
	NavNone NavigationKind = iota
	// NavWithin means focus moved inside the same layout.
	NavWithin
	// NavAcross means focus crossed into a different layout.
	NavAcross
)

// NavigationResult reports where focus landed. Layout is the layout owning
// the focused element for NavAcross, nil otherwise.
type NavigationResult struct {
	Kind    NavigationKind
	FocusID FocusID
	Layout  *LayoutGrid
}

// LayoutGrid is a 2D arrangement of focusable elements and nested
// sublayouts. The scrollable games area of the home screen is a sublayout:
// it has its own cursor and grows as tiles are appended, independent of the
// parent layout.
type LayoutGrid struct {
	grid       *grid2D
	cursor     *Point
	parent     *LayoutGrid
	id         string
	sublayouts map[string]*gridItem
	edgeJumps  map[PadButton]EdgeJump
	grow       *growConfig
}

func newLayoutGrid(xSize, ySize int, id string) (*LayoutGrid, error) {
	g, err := newGrid2D(xSize, ySize)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", id, err)
	}
	return &LayoutGrid{
		grid:       g,
		id:         id,
		sublayouts: make(map[string]*gridItem),
		edgeJumps:  make(map[PadButton]EdgeJump),
	}, nil
}

// ID returns the layout identifier.
func (lg *LayoutGrid) ID() string { return lg.id }

// SetEdgeJump binds a pad button to an edge escape on this layout.
func (lg *LayoutGrid) SetEdgeJump(b PadButton, j EdgeJump) {
	lg.edgeJumps[b] = j
}

// InsertGrowable appends a focusable element at the next grow position,
// wrapping to a fresh row (GrowX) or column (GrowY) and expanding the
// grid when it runs out of cells.
func (lg *LayoutGrid) InsertGrowable(id FocusID) error {
	gc := lg.grow
	if gc == nil {
		return fmt.Errorf("layout %q: not growable", lg.id)
	}

	next := gc.next
	if gc.dir == GrowX && next.X+gc.itemW-1 >= lg.grid.xSize {
		next = Point{X: 0, Y: next.Y + gc.itemH}
	}
	if gc.dir == GrowY && next.Y+gc.itemH-1 >= lg.grid.ySize {
		next = Point{X: next.X + gc.itemW, Y: 0}
	}

	rect := Rect{X0: next.X, X1: next.X + gc.itemW - 1, Y0: next.Y, Y1: next.Y + gc.itemH - 1}
	if rect.X1 >= lg.grid.xSize || rect.Y1 >= lg.grid.ySize {
		if err := lg.grid.expand(maxInt(lg.grid.xSize, rect.X1+1), maxInt(lg.grid.ySize, rect.Y1+1)); err != nil {
			return fmt.Errorf("layout %q: %w", lg.id, err)
		}
	}
	if err := lg.grid.fill(rect, &gridItem{focusID: id, rect: rect}); err != nil {
		return fmt.Errorf("layout %q: %w", lg.id, err)
	}

	switch gc.dir {
	case GrowX:
		gc.next = Point{X: rect.X1 + 1, Y: rect.Y0}
	case GrowY:
		gc.next = Point{X: rect.X0, Y: rect.Y1 + 1}
	}
	return nil
}

// navigate processes one directive and reports where focus lands.
func (lg *LayoutGrid) navigate(d Directive) (NavigationResult, error) {
	switch dir := d.(type) {
	case PadDirective:
		jump, ok := lg.edgeJumps[dir.Button]
		if !ok {
			return NavigationResult{Kind: NavNone}, nil
		}
		switch jump {
		case JumpOutLeft:
			lg.cursor = &Point{X: 0, Y: 0}
			return lg.navigate(DirectionDirective{Direction: DirLeft})
		default: // JumpOutRight
			lg.cursor = &Point{X: lg.grid.xSize - 1, Y: 0}
			return lg.navigate(DirectionDirective{Direction: DirRight})
		}

	case DirectionDirective:
		return lg.navigateDirection(dir.Direction, d)

	default: // NoopDirective
		id, _, ok := lg.currentItem()
		if !ok {
			return NavigationResult{Kind: NavNone}, nil
		}
		return NavigationResult{Kind: NavWithin, FocusID: id}, nil
	}
}

func (lg *LayoutGrid) navigateDirection(dir Direction, d Directive) (NavigationResult, error) {
	if lg.cursor == nil {
		lg.cursor = &Point{}
	}

	// Leave from the corner of the current element facing the movement,
	// or from the bare cursor when it sits on an empty cell.
	corner := *lg.cursor
	if _, rect, ok := lg.currentItem(); ok {
		switch dir {
		case DirUp, DirLeft:
			corner = rect.topLeft()
		default:
			corner = rect.bottomRight()
		}
	}

	dx, dy := dir.vector()
	next := corner.add(dx, dy)
	if !lg.grid.within(next.X, next.Y) {
		return lg.navigateOut(corner, d)
	}

	// Scan the direct line first.
	for lg.grid.within(next.X, next.Y) {
		if res, hit, err := lg.tryPoint(next.X, next.Y, d); err != nil {
			return NavigationResult{}, err
		} else if hit {
			return res, nil
		}
		next = next.add(dx, dy)
	}

	// Nothing on the line. Sweep sideways, one row/column at a time.
	sideA, sideB := dir.sideVectors()
	next = corner.add(dx, dy)
	for lg.grid.within(next.X, next.Y) {
		for _, side := range []Point{sideA, sideB} {
			p := next.add(side.X, side.Y)
			for lg.grid.within(p.X, p.Y) {
				// Sublayouts are skipped during the sideways sweep so a wide
				// nested grid does not capture every lateral movement.
				if item, _ := lg.grid.at(p.X, p.Y); item != nil && item.isSublayout() {
					break
				}
				if res, hit, err := lg.tryPoint(p.X, p.Y, d); err != nil {
					return NavigationResult{}, err
				} else if hit {
					return res, nil
				}
				p = p.add(side.X, side.Y)
			}
		}
		next = next.add(dx, dy)
	}

	return NavigationResult{Kind: NavNone}, nil
}

// tryPoint attempts to land focus on the cell at (x, y). A miss (empty
// cell) returns hit=false. Landing on a sublayout enters it at the
// proportionally mapped point.
func (lg *LayoutGrid) tryPoint(x, y int, d Directive) (NavigationResult, bool, error) {
	item, err := lg.grid.at(x, y)
	if err != nil {
		return NavigationResult{}, false, err
	}
	if item == nil {
		return NavigationResult{}, false, nil
	}

	if !item.isSublayout() {
		lg.cursor = &Point{X: x, Y: y}
		return NavigationResult{Kind: NavWithin, FocusID: item.focusID}, true, nil
	}

	fx := fraction(x-item.rect.X0, item.rect.X1-item.rect.X0)
	fy := fraction(y-item.rect.Y0, item.rect.Y1-item.rect.Y0)
	res, err := item.sub.enterAt(fx, fy, d)
	if err != nil {
		return NavigationResult{}, false, err
	}
	return liftAcross(res, item.sub), true, nil
}

// enterAt positions the cursor at the proportional entry point and resolves
// the directive from there.
func (lg *LayoutGrid) enterAt(fx, fy float64, d Directive) (NavigationResult, error) {
	x := int(float64(lg.grid.xSize-1) * fx)
	y := int(float64(lg.grid.ySize-1) * fy)
	lg.cursor = &Point{X: x, Y: y}

	if res, hit, err := lg.tryPoint(x, y, d); err != nil {
		return NavigationResult{}, err
	} else if hit {
		return res, nil
	}
	return lg.navigate(d)
}

// navigateOut hands the directive to the parent layout, which resumes from
// the child's proportional exit point.
func (lg *LayoutGrid) navigateOut(from Point, d Directive) (NavigationResult, error) {
	if lg.parent == nil {
		return NavigationResult{Kind: NavNone}, nil
	}
	fx := fraction(from.X, lg.grid.xSize)
	fy := fraction(from.Y, lg.grid.ySize)
	res, err := lg.parent.resumeFromChild(fx, fy, d, lg.id)
	if err != nil {
		return NavigationResult{}, err
	}
	return liftAcross(res, lg.parent), nil
}

// resumeFromChild maps a child's exit point onto this layout and resolves
// the directive from there.
func (lg *LayoutGrid) resumeFromChild(fx, fy float64, d Directive, childID string) (NavigationResult, error) {
	item, ok := lg.sublayouts[childID]
	if !ok {
		return NavigationResult{}, fmt.Errorf("layout %q: no sublayout %q", lg.id, childID)
	}
	r := item.rect
	p := Point{
		X: r.X0 + int(float64(r.X1-r.X0)*fx),
		Y: r.Y0 + int(float64(r.Y1-r.Y0)*fy),
	}
	if !lg.grid.within(p.X, p.Y) {
		return NavigationResult{Kind: NavNone}, nil
	}
	lg.cursor = &p

	// Re-entering the child we just left would bounce focus straight back;
	// resolve the directive from the mapped point instead.
	if landed, _ := lg.grid.at(p.X, p.Y); landed == nil || landed == item {
		return lg.navigate(d)
	}
	if res, hit, err := lg.tryPoint(p.X, p.Y, d); err != nil {
		return NavigationResult{}, err
	} else if hit {
		return res, nil
	}
	return lg.navigate(d)
}

// currentItem returns the element under the cursor. ok is false when the
// cursor is unset, on an empty cell, or on a sublayout.
func (lg *LayoutGrid) currentItem() (FocusID, Rect, bool) {
	if lg.cursor == nil {
		return "", Rect{}, false
	}
	item, err := lg.grid.at(lg.cursor.X, lg.cursor.Y)
	if err != nil || item == nil || item.isSublayout() {
		return "", Rect{}, false
	}
	return item.focusID, item.rect, true
}

// setCursor positions the cursor, e.g. on first launch.
func (lg *LayoutGrid) setCursor(x, y int) error {
	if !lg.grid.within(x, y) {
		return fmt.Errorf("layout %q: point %d, %d out of bounds", lg.id, x, y)
	}
	lg.cursor = &Point{X: x, Y: y}
	return nil
}

// find locates the element with the given focus id anywhere in the layout
// tree, returning its owning layout and cell.
func (lg *LayoutGrid) find(id FocusID) (*LayoutGrid, Point, bool) {
	seen := make(map[*gridItem]bool)
	for x := 0; x < lg.grid.xSize; x++ {
		for y := 0; y < lg.grid.ySize; y++ {
			item := lg.grid.cells[x][y]
			if item == nil || seen[item] {
				continue
			}
			seen[item] = true
			if item.isSublayout() {
				if sub, p, ok := item.sub.find(id); ok {
					return sub, p, true
				}
				continue
			}
			if item.focusID == id {
				return lg, item.rect.topLeft(), true
			}
		}
	}
	return nil, Point{}, false
}

// sublayout resolves a nested layout id anywhere in the tree.
func (lg *LayoutGrid) sublayout(id string) (*LayoutGrid, bool) {
	if item, ok := lg.sublayouts[id]; ok {
		return item.sub, true
	}
	for _, item := range lg.sublayouts {
		if sub, ok := item.sub.sublayout(id); ok {
			return sub, true
		}
	}
	return nil, false
}

// liftAcross re-tags a child/parent result as crossing into target.
func liftAcross(res NavigationResult, target *LayoutGrid) NavigationResult {
	switch res.Kind {
	case NavWithin:
		return NavigationResult{Kind: NavAcross, FocusID: res.FocusID, Layout: target}
	default:
		return res
	}
}

// fraction returns v/total clamped into [0, 1), tolerating total == 0.
func fraction(v, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(v) / float64(total)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// LayoutGridBuilder assembles a layout tree. Elements and sublayouts are
// declared up front; Build validates placement and wires parent links.
//
// usage:
//
//	b := NewLayoutGridBuilder(4, 6, "Home")
//	b.AddElement(rect, ButtonGames.FocusID())
//	sub := b.WithSublayout(gamesRect, "Home@Games", 7, 10)
//	sub.SetGrowable(1, 1, GrowX)
//	root, err := b.Build()
type LayoutGridBuilder struct {
	xSize, ySize int
	id           string
	elements     []builderElement
	subs         []*builderSub
	grow         *growConfig
	err          error
}

type builderElement struct {
	rect Rect
	id   FocusID
}

type builderSub struct {
	rect    Rect
	builder *LayoutGridBuilder
}

// NewLayoutGridBuilder starts a layout of the given cell dimensions.
func NewLayoutGridBuilder(xSize, ySize int, id string) *LayoutGridBuilder {
	return &LayoutGridBuilder{xSize: xSize, ySize: ySize, id: id}
}

// AddElement places a focusable element over rect.
func (b *LayoutGridBuilder) AddElement(rect Rect, id FocusID) *LayoutGridBuilder {
	if b.grow != nil && b.err == nil {
		b.err = fmt.Errorf("layout %q: growable layouts take elements via InsertGrowable", b.id)
	}
	b.elements = append(b.elements, builderElement{rect: rect, id: id})
	return b
}

// SetGrowable marks the layout as append-only with items of the given cell
// size, filling in dir order. Incompatible with AddElement.
func (b *LayoutGridBuilder) SetGrowable(itemW, itemH int, dir GrowDirection) *LayoutGridBuilder {
	if len(b.elements) > 0 && b.err == nil {
		b.err = fmt.Errorf("layout %q: cannot set growable after adding elements", b.id)
	}
	if (itemW <= 0 || itemH <= 0) && b.err == nil {
		b.err = fmt.Errorf("layout %q: invalid growable item size %dx%d", b.id, itemW, itemH)
	}
	b.grow = &growConfig{itemW: itemW, itemH: itemH, dir: dir}
	return b
}

// WithSublayout nests a child layout over rect and returns its builder.
func (b *LayoutGridBuilder) WithSublayout(rect Rect, id string, xSize, ySize int) *LayoutGridBuilder {
	sub := NewLayoutGridBuilder(xSize, ySize, id)
	b.subs = append(b.subs, &builderSub{rect: rect, builder: sub})
	return sub
}

// Build constructs the layout tree.
func (b *LayoutGridBuilder) Build() (*LayoutGrid, error) {
	return b.build(nil)
}

func (b *LayoutGridBuilder) build(parent *LayoutGrid) (*LayoutGrid, error) {
	if b.err != nil {
		return nil, b.err
	}

	lg, err := newLayoutGrid(b.xSize, b.ySize, b.id)
	if err != nil {
		return nil, err
	}
	lg.parent = parent
	if b.grow != nil {
		gc := *b.grow
		lg.grow = &gc
	}

	for _, el := range b.elements {
		if err := lg.grid.fill(el.rect, &gridItem{focusID: el.id, rect: el.rect}); err != nil {
			return nil, fmt.Errorf("layout %q: %w", b.id, err)
		}
	}

	for _, sb := range b.subs {
		child, err := sb.builder.build(lg)
		if err != nil {
			return nil, err
		}
		item := &gridItem{sub: child, rect: sb.rect}
		if err := lg.grid.fill(sb.rect, item); err != nil {
			return nil, fmt.Errorf("layout %q: %w", b.id, err)
		}
		lg.sublayouts[child.id] = item
	}

	return lg, nil
}

// NavigationController drives focus movement over a layout tree. It tracks
// the layout currently holding the cursor and the focus id it last landed
// on; the focus id feeds the shared FocusState.
type NavigationController struct {
	root    *LayoutGrid
	current *LayoutGrid
	focusID FocusID
}

// NewNavigationController seats the cursor at the layout origin and
// resolves the initial focus, if an element sits there.
func NewNavigationController(root *LayoutGrid) (*NavigationController, error) {
	if root == nil {
		return nil, fmt.Errorf("navigation: nil root layout")
	}
	c := &NavigationController{root: root, current: root}
	if err := root.setCursor(0, 0); err != nil {
		return nil, err
	}
	if _, err := c.Navigate(NoopDirective{}); err != nil {
		return nil, err
	}
	return c, nil
}

// FocusID returns the identifier focus last landed on, "" before any
// element has been reached.
func (c *NavigationController) FocusID() FocusID {
	return c.focusID
}

// Navigate processes one directive. On NavNone the focus and cursor stay
// where they were.
func (c *NavigationController) Navigate(d Directive) (NavigationResult, error) {
	res, err := c.current.navigate(d)
	if err != nil {
		return NavigationResult{}, err
	}
	switch res.Kind {
	case NavWithin:
		c.focusID = res.FocusID
	case NavAcross:
		c.current = res.Layout
		c.focusID = res.FocusID
	}
	return res, nil
}

// InsertElement appends a focusable element into the named growable
// sublayout (or the root when id matches it).
func (c *NavigationController) InsertElement(layoutID string, focusID FocusID) error {
	lg, ok := c.layoutByID(layoutID)
	if !ok {
		return fmt.Errorf("navigation: no layout %q", layoutID)
	}
	return lg.InsertGrowable(focusID)
}

// SeekTo warps cursor and focus to the element carrying id, wherever it
// lives in the tree. Unknown ids leave the controller untouched.
func (c *NavigationController) SeekTo(id FocusID) bool {
	lg, p, ok := c.root.find(id)
	if !ok {
		return false
	}
	lg.cursor = &p
	c.current = lg
	c.focusID = id
	return true
}

// Layout returns the named layout from the tree.
func (c *NavigationController) Layout(id string) (*LayoutGrid, error) {
	lg, ok := c.layoutByID(id)
	if !ok {
		return nil, fmt.Errorf("navigation: no layout %q", id)
	}
	return lg, nil
}

func (c *NavigationController) layoutByID(id string) (*LayoutGrid, bool) {
	if c.root.id == id {
		return c.root, true
	}
	return c.root.sublayout(id)
}
