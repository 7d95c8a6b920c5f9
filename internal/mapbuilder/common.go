package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// Symmetry mirrors painted tiles around the map centre.
type Symmetry uint8

const (
	SymNone Symmetry = iota
	SymHorizontal
	SymVertical
	SymBoth
)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// paint digs floor at (x, y) and its mirror images.
func paint(m *gamemap.Map, mode Symmetry, brush, x, y int) {
	cx, cy := m.Width/2, m.Height/2
	switch mode {
	case SymNone:
		applyPaint(m, brush, x, y)
	case SymHorizontal:
		if x == cx {
			applyPaint(m, brush, x, y)
			return
		}
		dx := abs(cx - x)
		applyPaint(m, brush, cx+dx, y)
		applyPaint(m, brush, cx-dx, y)
	case SymVertical:
		if y == cy {
			applyPaint(m, brush, x, y)
			return
		}
		dy := abs(cy - y)
		applyPaint(m, brush, x, cy+dy)
		applyPaint(m, brush, x, cy-dy)
	case SymBoth:
		if x == cx && y == cy {
			applyPaint(m, brush, x, y)
			return
		}
		dx, dy := abs(cx-x), abs(cy-y)
		applyPaint(m, brush, cx+dx, y)
		applyPaint(m, brush, cx-dx, y)
		applyPaint(m, brush, x, cy+dy)
		applyPaint(m, brush, x, cy-dy)
	}
}

func applyPaint(m *gamemap.Map, brush, x, y int) {
	if brush <= 1 {
		if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
			m.Set(x, y, gamemap.Floor)
		}
		return
	}
	half := brush / 2
	for by := y - half; by < y+half; by++ {
		for bx := x - half; bx < x+half; bx++ {
			if bx > 1 && bx < m.Width-1 && by > 1 && by < m.Height-1 {
				m.Set(bx, by, gamemap.Floor)
			}
		}
	}
}

// applyRoom carves the interior of a room.
func applyRoom(m *gamemap.Map, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 {
				m.Set(x, y, gamemap.Floor)
			}
		}
	}
}

// dig turns a tile into floor and reports whether it changed.
func dig(m *gamemap.Map, x, y int) (int, bool) {
	if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
		return 0, false
	}
	idx := m.XYIdx(x, y)
	if m.Tiles[idx] == gamemap.Floor {
		return idx, false
	}
	m.Tiles[idx] = gamemap.Floor
	return idx, true
}

// carveH digs a horizontal tunnel and returns the tiles it opened.
func carveH(m *gamemap.Map, x1, x2, y int) []int {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	var corridor []int
	for x := x1; x <= x2; x++ {
		if idx, ok := dig(m, x, y); ok {
			corridor = append(corridor, idx)
		}
	}
	return corridor
}

// carveV digs a vertical tunnel and returns the tiles it opened.
func carveV(m *gamemap.Map, y1, y2, x int) []int {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	var corridor []int
	for y := y1; y <= y2; y++ {
		if idx, ok := dig(m, x, y); ok {
			corridor = append(corridor, idx)
		}
	}
	return corridor
}

// carveStepwise walks from (x1,y1) to (x2,y2) closing the x gap first and
// digs every tile it passes.
func carveStepwise(m *gamemap.Map, x1, y1, x2, y2 int) []int {
	var corridor []int
	x, y := x1, y1
	for x != x2 || y != y2 {
		switch {
		case x < x2:
			x++
		case x > x2:
			x--
		case y < y2:
			y++
		default:
			y--
		}
		if idx, ok := dig(m, x, y); ok {
			corridor = append(corridor, idx)
		}
	}
	return corridor
}

// line returns the Bresenham line from (x0,y0) to (x1,y1), inclusive.
func line(x0, y0, x1, y1 int) []gamemap.Point {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	var pts []gamemap.Point
	for {
		pts = append(pts, gamemap.Point{X: x0, Y: y0})
		if x0 == x1 && y0 == y1 {
			return pts
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// stagger moves a walker one step in a random cardinal direction, keeping
// it at least two tiles from the edge.
func stagger(r *rng.RNG, m *gamemap.Map, x, y int) (int, int) {
	switch r.RollDice(1, 4) {
	case 1:
		if x > 2 {
			x--
		}
	case 2:
		if x < m.Width-2 {
			x++
		}
	case 3:
		if y > 2 {
			y--
		}
	default:
		if y < m.Height-2 {
			y++
		}
	}
	return x, y
}

// fillWalls resets every tile to wall.
func fillWalls(m *gamemap.Map) {
	for i := range m.Tiles {
		m.Tiles[i] = gamemap.Wall
	}
}
