package gamemap

// Exit is a reachable neighbour of a tile and the cost of stepping onto it.
type Exit struct {
	Idx  int
	Cost float64
}

// diagonalFactor scales the cost of diagonal steps.
const diagonalFactor = 1.45

// Graph is the pathing view of a Map. Blocked reports tiles that may not be
// entered; a nil Blocked treats every non-walkable tile as blocked. Goal,
// when set, is always enterable so a path can end on an occupied tile.
type Graph struct {
	Map     *Map
	Blocked func(idx int) bool
	Goal    int
	hasGoal bool
}

// NewGraph returns a Graph over m using blocked for occupancy.
func (m *Map) NewGraph(blocked func(idx int) bool) Graph {
	return Graph{Map: m, Blocked: blocked}
}

// WithGoal returns a copy of g that treats idx as always enterable.
func (g Graph) WithGoal(idx int) Graph {
	g.Goal, g.hasGoal = idx, true
	return g
}

// Size is the number of nodes in the graph.
func (g Graph) Size() int { return g.Map.Size() }

// Distance is the straight-line heuristic between two tiles.
func (g Graph) Distance(a, b int) float64 { return g.Map.Distance(a, b) }

// ExitValid reports whether (x, y) may be stepped onto. Border tiles never are.
func (g Graph) ExitValid(x, y int) bool {
	m := g.Map
	if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
		return false
	}
	idx := m.XYIdx(x, y)
	if g.hasGoal && idx == g.Goal {
		return true
	}
	if g.Blocked != nil {
		return !g.Blocked(idx)
	}
	return m.Tiles[idx].Walkable()
}

// Exits returns the neighbours of idx that can be entered, cardinal
// directions first. Diagonal steps may not cut past an opaque corner.
func (g Graph) Exits(idx int) []Exit {
	m := g.Map
	x, y := m.IdxXY(idx)
	exits := make([]Exit, 0, 8)
	for _, d := range [4]Point{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nx, ny := x+d.X, y+d.Y
		if g.ExitValid(nx, ny) {
			n := m.XYIdx(nx, ny)
			exits = append(exits, Exit{Idx: n, Cost: m.Tiles[n].Cost()})
		}
	}
	for _, d := range [4]Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}} {
		nx, ny := x+d.X, y+d.Y
		if !g.ExitValid(nx, ny) {
			continue
		}
		if m.At(nx, y).Opaque() || m.At(x, ny).Opaque() {
			continue
		}
		n := m.XYIdx(nx, ny)
		exits = append(exits, Exit{Idx: n, Cost: m.Tiles[n].Cost() * diagonalFactor})
	}
	return exits
}
