package gamemap

import (
	"encoding/json"
	"testing"
)

func openMap(w, h int) *Map {
	m := New(1, w, h, "test")
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, Floor)
		}
	}
	return m
}

func TestInBounds(t *testing.T) {
	m := New(1, 10, 8, "t")
	cases := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{9, 7, true},
		{-1, 0, false},
		{10, 0, false},
		{0, 8, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.x, c.y); got != c.want {
			t.Errorf("InBounds(%d,%d)=%v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestIndexRoundTrip(t *testing.T) {
	m := New(1, 13, 7, "t")
	for idx := 0; idx < m.Size(); idx++ {
		x, y := m.IdxXY(idx)
		if m.XYIdx(x, y) != idx {
			t.Fatalf("idx %d -> (%d,%d) -> %d", idx, x, y, m.XYIdx(x, y))
		}
	}
}

func TestTileTable(t *testing.T) {
	walkable := []TileType{Floor, DownStairs, UpStairs, Grass, Road, ShallowWater, WoodFloor, Bridge, Gravel}
	for _, tt := range walkable {
		if !tt.Walkable() {
			t.Errorf("%v should be walkable", tt)
		}
	}
	for _, tt := range []TileType{Wall, Stalactite, Stalagmite} {
		if tt.Walkable() || !tt.Opaque() {
			t.Errorf("%v should be solid and opaque", tt)
		}
	}
	if DeepWater.Walkable() || DeepWater.Opaque() {
		t.Error("deep water blocks movement but not sight")
	}
	if Road.Cost() != 0.8 || Grass.Cost() != 1.9 || ShallowWater.Cost() != 1.2 || Floor.Cost() != 1.0 {
		t.Error("unexpected tile costs")
	}
}

func TestExitsSkipBorderAndBlocked(t *testing.T) {
	m := openMap(5, 5)
	g := m.NewGraph(nil)

	// (1,1) borders the edge on two sides: only (2,1), (1,2) and (2,2) remain.
	exits := g.Exits(m.XYIdx(1, 1))
	if len(exits) != 3 {
		t.Fatalf("expected 3 exits, got %d: %+v", len(exits), exits)
	}

	blocked := m.XYIdx(2, 1)
	g = m.NewGraph(func(idx int) bool { return idx == blocked || !m.Tiles[idx].Walkable() })
	for _, e := range g.Exits(m.XYIdx(1, 1)) {
		if e.Idx == blocked {
			t.Fatal("blocked tile offered as exit")
		}
	}
	if !g.WithGoal(blocked).ExitValid(2, 1) {
		t.Fatal("goal tile should stay enterable")
	}
}

func TestDiagonalCostAndCorners(t *testing.T) {
	m := openMap(6, 6)
	g := m.NewGraph(nil)
	from := m.XYIdx(2, 2)
	for _, e := range g.Exits(from) {
		x, y := m.IdxXY(e.Idx)
		diag := x != 2 && y != 2
		if diag && e.Cost != 1.45 {
			t.Errorf("diagonal cost %v", e.Cost)
		}
	}

	m.Set(3, 2, Wall)
	for _, e := range g.Exits(from) {
		if e.Idx == m.XYIdx(3, 3) || e.Idx == m.XYIdx(3, 1) {
			t.Fatal("diagonal step cut past a wall corner")
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	m := openMap(6, 6)
	m.Bloodstains.Put(7)
	c := m.Clone()
	c.Set(2, 2, Wall)
	c.Bloodstains.Put(8)
	if m.At(2, 2) != Floor {
		t.Error("clone shares tiles with the original")
	}
	if m.Bloodstains.Has(8) {
		t.Error("clone shares bloodstains with the original")
	}
	if !c.Bloodstains.Has(7) {
		t.Error("clone lost bloodstains")
	}
}

func TestJSONPreservesLevel(t *testing.T) {
	m := openMap(8, 6)
	m.Depth = 3
	m.Outdoors = true
	m.Set(4, 3, DownStairs)
	m.Revealed[9] = true
	m.Visible[9] = true
	m.Light[9] = RGB{R: 0.5, G: 0.25, B: 1}
	m.Bloodstains.Put(10)
	m.ViewBlocked.Put(11)

	data, err := json.Marshal(m)
	if err != nil {
		t.Fatal(err)
	}
	var got Map
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got.Depth != 3 || !got.Outdoors || got.Width != 8 || got.Height != 6 {
		t.Fatalf("header mismatch: %+v", got)
	}
	if got.At(4, 3) != DownStairs || !got.Revealed[9] || !got.Visible[9] {
		t.Error("tiles or fog state lost")
	}
	if got.Light[9] != (RGB{R: 0.5, G: 0.25, B: 1}) {
		t.Errorf("light = %+v", got.Light[9])
	}
	if !got.Bloodstains.Has(10) || !got.ViewBlocked.Has(11) {
		t.Error("tile sets lost")
	}
}
