package render

// tileCols is how many terminal columns one tile takes. Entity glyphs are
// emoji, which are two columns wide.
const tileCols = 2

// Camera maps level tiles to screen cells. It follows a focus tile but
// never scrolls past the level edge, and centres a level smaller than the
// view.
type Camera struct {
	X, Y int // tile shown at the top-left cell

	cols, rows     int
	mapW, mapH     int
	focusX, focusY int
}

// NewCamera returns a camera for a view of cols by rows cells.
func NewCamera(cols, rows int) *Camera {
	return &Camera{cols: cols, rows: rows}
}

// Fit records the level size and re-applies the focus.
func (c *Camera) Fit(mapW, mapH int) {
	c.mapW, c.mapH = mapW, mapH
	c.Follow(c.focusX, c.focusY)
}

// Follow puts tile (x, y) as near the middle of the view as the level
// edges allow.
func (c *Camera) Follow(x, y int) {
	c.focusX, c.focusY = x, y
	c.X = clampAxis(x, c.cols/tileCols, c.mapW)
	c.Y = clampAxis(y, c.rows, c.mapH)
}

// Resize changes the view size and keeps the focus.
func (c *Camera) Resize(cols, rows int) {
	c.cols, c.rows = cols, rows
	c.Follow(c.focusX, c.focusY)
}

func clampAxis(focus, span, size int) int {
	switch {
	case size <= 0:
		return focus - span/2
	case size <= span:
		return -(span - size) / 2
	}
	return min(max(focus-span/2, 0), size-span)
}

// ToScreen converts tile (x, y) to the screen cell of its left column.
// ok is false when the tile is outside the view.
func (c *Camera) ToScreen(x, y int) (sx, sy int, ok bool) {
	sx = (x - c.X) * tileCols
	sy = y - c.Y
	ok = sx >= 0 && sx+tileCols <= c.cols && sy >= 0 && sy < c.rows
	return sx, sy, ok
}

// ToTile converts a screen cell to the tile drawn there.
func (c *Camera) ToTile(sx, sy int) (int, int) {
	return sx/tileCols + c.X, sy + c.Y
}
