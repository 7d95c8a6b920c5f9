package system

import (
	"testing"

	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/factory"
	"shadoblade/internal/gamelog"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// openMap creates a w×h level of floor surrounded by a wall border.
func openMap(w, h int) *gamemap.Map {
	m := gamemap.New(1, w, h, "test")
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			m.Set(x, y, gamemap.Floor)
		}
	}
	return m
}

// newTestContext creates a 40×40 open level with the player at (px, py).
func newTestContext(t *testing.T, px, py int) *Context {
	t.Helper()
	w := ecs.NewWorld()
	m := openMap(40, 40)
	player := factory.NewPlayer(w, px, py)
	return NewContext(w, m, rng.New(1), gamelog.New(), player)
}

// addActor adds a static, blocking creature of the given faction.
func addActor(c *Context, x, y int, faction string) ecs.EntityID {
	w := c.World
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Name{Name: faction + " grunt"})
	w.Add(id, component.Faction{Name: faction})
	w.Add(id, component.BlocksTile{})
	w.Add(id, component.Viewshed{Range: 8, Dirty: true})
	w.Add(id, component.MoveMode{Mode: component.MoveStatic})
	w.Add(id, component.Pools{HitPoints: component.Pool{Max: 10, Current: 10}, Level: 1})
	return id
}

func posOf(t *testing.T, c *Context, id ecs.EntityID) component.Position {
	t.Helper()
	p, ok := ecs.Fetch[component.Position](c.World, id)
	if !ok {
		t.Fatalf("entity %d has no position", id)
	}
	return p
}

func hpOf(c *Context, id ecs.EntityID) int {
	p, _ := ecs.Fetch[component.Pools](c.World, id)
	return p.HitPoints.Current
}

// onTile reports whether the index lists id at (x, y).
func onTile(c *Context, id ecs.EntityID, x, y int) bool {
	found := false
	c.Index.ForEachTileContent(c.Map.XYIdx(x, y), func(e ecs.EntityID) bool {
		if e == id {
			found = true
			return false
		}
		return true
	})
	return found
}

// grantTurns gives each id a turn without running Initiative.
func grantTurns(c *Context, ids ...ecs.EntityID) {
	c.Turns.Reset()
	for _, id := range ids {
		c.Turns.Grant(id)
	}
}

// prepare indexes the level and computes viewsheds.
func prepare(c *Context) {
	IndexMap(c)
	Visibility(c)
}
