package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/pathfind"
	"shadoblade/internal/rng"
)

// distancesFromStart floods the terrain from the starting position.
func distancesFromStart(b *BuildData) (*pathfind.DijkstraMap, bool) {
	start, ok := b.StartIdx()
	if !ok {
		return nil, false
	}
	g := b.Map.NewGraph(nil)
	return pathfind.NewDijkstraMap(g, []int{start}, pathfind.Unreachable), true
}

// wallOffUnreachable turns every walkable tile the flood missed into wall,
// except the start tile itself.
func wallOffUnreachable(b *BuildData, dm *pathfind.DijkstraMap) {
	start, _ := b.StartIdx()
	for idx, t := range b.Map.Tiles {
		if idx != start && t.Walkable() && !dm.Reachable(idx) {
			b.Map.Tiles[idx] = gamemap.Wall
		}
	}
}

// farthestReachable returns the reachable tile furthest from the start.
// Ties go to the lowest index.
func farthestReachable(dm *pathfind.DijkstraMap) (int, bool) {
	best, bestDist := 0, -1.0
	for idx, d := range dm.Dist {
		if d != pathfind.Unreachable && d > bestDist {
			best, bestDist = idx, d
		}
	}
	return best, bestDist > 0
}

// placeExit makes idx the level's only down staircase. Stairs left by
// earlier stages become floor.
func placeExit(m *gamemap.Map, idx int) {
	for i, t := range m.Tiles {
		if t == gamemap.DownStairs {
			m.Tiles[i] = gamemap.Floor
		}
	}
	m.Tiles[idx] = gamemap.DownStairs
}

// relocateStart moves the start to the nearest walkable tile if it was
// overwritten.
func relocateStart(b *BuildData) {
	start, ok := b.StartIdx()
	if !ok || b.Map.Tiles[start].Walkable() {
		return
	}
	best, bestDist := -1, 0.0
	for idx, t := range b.Map.Tiles {
		if !t.Walkable() {
			continue
		}
		if d := b.Map.Distance(start, idx); best < 0 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	if best >= 0 {
		p := b.Map.IdxPoint(best)
		b.Start = &p
	}
}

// cullUnreachable walls off every tile the start cannot reach and drops
// spawns that no longer stand on open ground or that sit on the start.
// With repairExit set, the level must end with exactly one down staircase:
// if the cull left none, or several survive, it goes on the farthest
// reachable tile.
func cullUnreachable(b *BuildData, repairExit bool) {
	dm, ok := distancesFromStart(b)
	if !ok {
		return
	}
	wallOffUnreachable(b, dm)
	start, _ := b.StartIdx()
	dropSpawnsWhere(b, func(idx int) bool { return idx == start || !b.Map.Tiles[idx].Walkable() })
	if repairExit {
		if b.Map.Count(gamemap.DownStairs) != 1 {
			if idx, ok := farthestReachable(dm); ok {
				placeExit(b.Map, idx)
			}
		}
	}
	b.TakeSnapshot()
}

// CullUnreachable removes areas that cannot be reached from the start.
type CullUnreachable struct{}

func (CullUnreachable) Build(_ *rng.RNG, b *BuildData) {
	_, hadExit := b.Map.Find(gamemap.DownStairs)
	cullUnreachable(b, hadExit)
}

// DistantExit puts the down staircase on the reachable tile furthest from
// the start, replacing any placed before.
type DistantExit struct{}

func (DistantExit) Build(_ *rng.RNG, b *BuildData) {
	dm, ok := distancesFromStart(b)
	if !ok {
		return
	}
	wallOffUnreachable(b, dm)
	if idx, ok := farthestReachable(dm); ok {
		placeExit(b.Map, idx)
	}
	dropSpawnsWhere(b, func(idx int) bool {
		return !b.Map.Tiles[idx].Walkable() || b.Map.Tiles[idx] == gamemap.DownStairs
	})
	b.TakeSnapshot()
}
