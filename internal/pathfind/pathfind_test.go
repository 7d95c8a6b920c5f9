package pathfind

import (
	"testing"

	"shadoblade/internal/gamemap"
)

func openMap(w, h int) *gamemap.Map {
	m := gamemap.New(1, w, h, "test")
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.Floor)
		}
	}
	return m
}

func TestDijkstraDistances(t *testing.T) {
	m := openMap(10, 3)
	g := m.NewGraph(nil)
	dm := NewDijkstraMap(g, []int{m.XYIdx(1, 1)}, 1000)
	for x := 1; x < 9; x++ {
		if got := dm.Dist[m.XYIdx(x, 1)]; got != float64(x-1) {
			t.Errorf("dist to x=%d is %v, want %d", x, got, x-1)
		}
	}
	if dm.Reachable(m.XYIdx(0, 1)) {
		t.Error("border wall should be unreachable")
	}
}

func TestDijkstraMaxDepth(t *testing.T) {
	m := openMap(20, 3)
	dm := NewDijkstraMap(m.NewGraph(nil), []int{m.XYIdx(1, 1)}, 5)
	if !dm.Reachable(m.XYIdx(6, 1)) {
		t.Error("tile at depth 5 should be reached")
	}
	if dm.Reachable(m.XYIdx(7, 1)) {
		t.Error("tile beyond max depth should be unreachable")
	}
}

func TestFindHighestExitMovesAway(t *testing.T) {
	m := openMap(10, 10)
	g := m.NewGraph(nil)
	threat := m.XYIdx(2, 5)
	dm := NewDijkstraMap(g, []int{threat}, 100)
	from := m.XYIdx(4, 5)
	next, ok := FindHighestExit(dm, g, from)
	if !ok {
		t.Fatal("expected an exit")
	}
	if dm.Dist[next] <= dm.Dist[from] {
		t.Errorf("flee step %d is not further from the threat", next)
	}
}

func TestAStarAroundWall(t *testing.T) {
	m := openMap(10, 10)
	for y := 1; y < 8; y++ {
		m.Set(5, y, gamemap.Wall)
	}
	g := m.NewGraph(nil)
	start, end := m.XYIdx(2, 2), m.XYIdx(8, 2)
	p := AStar(g, start, end)
	if !p.Success {
		t.Fatal("expected a path around the wall")
	}
	if p.Steps[0] != start || p.Steps[len(p.Steps)-1] != end {
		t.Fatalf("path endpoints wrong: %v", p.Steps)
	}
	for i := 1; i < len(p.Steps); i++ {
		ok := false
		for _, e := range g.Exits(p.Steps[i-1]) {
			if e.Idx == p.Steps[i] {
				ok = true
			}
		}
		if !ok {
			t.Fatalf("step %d -> %d is not a graph edge", p.Steps[i-1], p.Steps[i])
		}
	}
}

func TestAStarNoPath(t *testing.T) {
	m := openMap(10, 10)
	for y := 1; y < 9; y++ {
		m.Set(5, y, gamemap.Wall)
	}
	if p := AStar(m.NewGraph(nil), m.XYIdx(2, 2), m.XYIdx(8, 2)); p.Success {
		t.Fatal("path found through a solid wall")
	}
}

func TestAStarToOccupiedGoal(t *testing.T) {
	m := openMap(10, 5)
	goal := m.XYIdx(7, 2)
	blocked := func(idx int) bool { return idx == goal || !m.Tiles[idx].Walkable() }
	g := m.NewGraph(blocked)
	if p := AStar(g, m.XYIdx(2, 2), goal); p.Success {
		t.Fatal("occupied goal should be unreachable without WithGoal")
	}
	p := AStar(g.WithGoal(goal), m.XYIdx(2, 2), goal)
	if !p.Success || len(p.Steps) != 6 {
		t.Fatalf("path = %+v, want 6 steps", p)
	}
}
