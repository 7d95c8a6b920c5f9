package spatial

import (
	"testing"

	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
)

func TestIndexAndMove(t *testing.T) {
	ix := New(20)
	ix.IndexEntity(1, 5, true)
	ix.IndexEntity(2, 5, false)

	if !ix.IsBlocked(5) {
		t.Fatal("tile with a blocking occupant should be blocked")
	}
	ix.MoveEntity(1, 5, 6)
	if ix.IsBlocked(5) {
		t.Fatal("tile should unblock once its only blocker leaves")
	}
	if !ix.IsBlocked(6) {
		t.Fatal("destination should be blocked by the mover")
	}
	if got := ix.TileContent(6); len(got) != 1 || got[0] != 1 {
		t.Fatalf("destination content = %v", got)
	}
	if got := ix.TileContent(5); len(got) != 1 || got[0] != 2 {
		t.Fatalf("origin content = %v", got)
	}
}

func TestBlockedMatchesOccupants(t *testing.T) {
	ix := New(10)
	ix.IndexEntity(1, 3, true)
	ix.IndexEntity(2, 3, true)
	ix.RemoveEntity(1, 3)
	if !ix.IsBlocked(3) {
		t.Fatal("second blocker still present")
	}
	ix.RemoveEntity(2, 3)
	if ix.IsBlocked(3) {
		t.Fatal("no blockers remain")
	}
}

func TestPopulateBlockedFromMap(t *testing.T) {
	m := gamemap.New(1, 4, 4, "t")
	m.Set(1, 1, gamemap.Floor)
	ix := New(m.Size())
	ix.PopulateBlockedFromMap(m)
	if ix.IsBlocked(m.XYIdx(1, 1)) {
		t.Error("floor should be open")
	}
	if !ix.IsBlocked(m.XYIdx(0, 0)) {
		t.Error("wall should be blocked")
	}
	if !ix.IsBlocked(-1) || !ix.IsBlocked(m.Size()) {
		t.Error("out-of-range indices should be blocked")
	}
}

func TestForEachTileContentStopsEarly(t *testing.T) {
	ix := New(4)
	for id := ecs.EntityID(1); id <= 3; id++ {
		ix.IndexEntity(id, 2, false)
	}
	var seen []ecs.EntityID
	done := ix.ForEachTileContent(2, func(id ecs.EntityID) bool {
		seen = append(seen, id)
		return id != 2
	})
	if done {
		t.Error("walk should report an early stop")
	}
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("visited %v, want [1 2]", seen)
	}
}

func TestClearResizes(t *testing.T) {
	ix := New(4)
	ix.IndexEntity(1, 2, true)
	ix.Clear(4)
	if ix.IsBlocked(2) || len(ix.TileContent(2)) != 0 {
		t.Fatal("Clear left state behind")
	}
	ix.Clear(9)
	if ix.Len() != 9 {
		t.Fatalf("Len = %d, want 9", ix.Len())
	}
}
