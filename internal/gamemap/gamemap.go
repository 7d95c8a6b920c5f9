// Package gamemap holds the flat tile grid of a single dungeon level and the
// pathing graph derived from it.
package gamemap

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Point is a tile coordinate.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1, Y1, X2, Y2 int
}

// NewRect builds a rectangle from its corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{(r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Width and Height of the rectangle.
func (r Rect) Width() int  { return r.X2 - r.X1 }
func (r Rect) Height() int { return r.Y2 - r.Y1 }

// RGB is a light colour with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// Add returns the component-wise sum of c and o.
func (c RGB) Add(o RGB) RGB { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }

// Scale multiplies every component by f.
func (c RGB) Scale(f float64) RGB { return RGB{c.R * f, c.G * f, c.B * f} }

// Map is one dungeon level. Every per-tile slice has Width*Height entries
// indexed by XYIdx.
type Map struct {
	Tiles         []TileType
	Width, Height int
	Revealed      []bool
	Visible       []bool
	Light         []RGB
	Depth         int
	Name          string
	Outdoors      bool

	// Bloodstains marks tiles where damage was taken. ViewBlocked marks
	// tiles whose sight is blocked by an entity such as a closed door.
	Bloodstains mapset.Set[int]
	ViewBlocked mapset.Set[int]
}

// New creates a Map of the given size filled with walls.
func New(depth, width, height int, name string) *Map {
	n := width * height
	return &Map{
		Tiles:       make([]TileType, n),
		Width:       width,
		Height:      height,
		Revealed:    make([]bool, n),
		Visible:     make([]bool, n),
		Light:       make([]RGB, n),
		Depth:       depth,
		Name:        name,
		Bloodstains: mapset.New[int](),
		ViewBlocked: mapset.New[int](),
	}
}

// Size is the number of tiles in the map.
func (m *Map) Size() int { return len(m.Tiles) }

// XYIdx converts a coordinate into a tile index.
func (m *Map) XYIdx(x, y int) int { return y*m.Width + x }

// IdxXY converts a tile index into a coordinate.
func (m *Map) IdxXY(idx int) (int, int) { return idx % m.Width, idx / m.Width }

// IdxPoint is IdxXY returning a Point.
func (m *Map) IdxPoint(idx int) Point {
	x, y := m.IdxXY(idx)
	return Point{x, y}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at (x, y). Out-of-bounds coordinates read as Wall.
func (m *Map) At(x, y int) TileType {
	if !m.InBounds(x, y) {
		return Wall
	}
	return m.Tiles[m.XYIdx(x, y)]
}

// Set replaces the tile at (x, y) if it is in bounds.
func (m *Map) Set(x, y int, t TileType) {
	if m.InBounds(x, y) {
		m.Tiles[m.XYIdx(x, y)] = t
	}
}

// IsWalkable returns true when (x, y) is in bounds and walkable.
func (m *Map) IsWalkable(x, y int) bool {
	return m.InBounds(x, y) && m.Tiles[m.XYIdx(x, y)].Walkable()
}

// IsOpaque reports whether the tile at idx blocks sight, either by terrain
// or because something on it blocks view.
func (m *Map) IsOpaque(idx int) bool {
	if idx < 0 || idx >= len(m.Tiles) {
		return true
	}
	return m.Tiles[idx].Opaque() || m.ViewBlocked.Has(idx)
}

// Distance is the straight-line distance between two tile indices.
func (m *Map) Distance(a, b int) float64 {
	ax, ay := m.IdxXY(a)
	bx, by := m.IdxXY(b)
	return math.Hypot(float64(ax-bx), float64(ay-by))
}

// RevealAll marks every tile as revealed, used for snapshots and magic mapping.
func (m *Map) RevealAll() {
	for i := range m.Revealed {
		m.Revealed[i] = true
	}
}

// Clone returns a deep copy of the map.
func (m *Map) Clone() *Map {
	c := *m
	c.Tiles = append([]TileType(nil), m.Tiles...)
	c.Revealed = append([]bool(nil), m.Revealed...)
	c.Visible = append([]bool(nil), m.Visible...)
	c.Light = append([]RGB(nil), m.Light...)
	c.Bloodstains = mapset.New[int]()
	m.Bloodstains.Each(func(i int) { c.Bloodstains.Put(i) })
	c.ViewBlocked = mapset.New[int]()
	m.ViewBlocked.Each(func(i int) { c.ViewBlocked.Put(i) })
	return &c
}

// Count returns how many tiles of type t the map holds.
func (m *Map) Count(t TileType) int {
	n := 0
	for _, tt := range m.Tiles {
		if tt == t {
			n++
		}
	}
	return n
}

// Find returns the index of the first tile of type t.
func (m *Map) Find(t TileType) (int, bool) {
	for i, tt := range m.Tiles {
		if tt == t {
			return i, true
		}
	}
	return 0, false
}
