package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/pathfind"
	"shadoblade/internal/rng"
)

// nearestWalkable returns the walkable tile closest to (x, y). Ties go to
// the lowest index.
func nearestWalkable(m *gamemap.Map, x, y int) (int, bool) {
	target := m.XYIdx(min(max(x, 0), m.Width-1), min(max(y, 0), m.Height-1))
	best, bestDist := -1, 0.0
	for idx, t := range m.Tiles {
		if !t.Walkable() {
			continue
		}
		if d := m.Distance(target, idx); best < 0 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	return best, best >= 0
}

// YellowBrickRoad paves a road from the start to the far edge and puts the
// down staircase at its end. A stream then crosses the map from top to
// bottom, bridged where it meets the road. Without a route it falls back
// to DistantExit.
type YellowBrickRoad struct{}

func (YellowBrickRoad) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	start, ok := b.StartIdx()
	end, found := nearestWalkable(m, m.Width-2, m.Height/2)
	if !ok || !found {
		DistantExit{}.Build(r, b)
		return
	}
	path := pathfind.AStar(m.NewGraph(nil), start, end)
	if !path.Success {
		DistantExit{}.Build(r, b)
		return
	}
	paintRoad := func(x, y int) {
		if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
			return
		}
		if idx := m.XYIdx(x, y); m.Tiles[idx] != gamemap.DownStairs {
			m.Tiles[idx] = gamemap.Road
		}
	}
	for _, idx := range path.Steps {
		x, y := m.IdxXY(idx)
		paintRoad(x, y)
		paintRoad(x-1, y)
		paintRoad(x+1, y)
		paintRoad(x, y-1)
		paintRoad(x, y+1)
	}
	placeExit(m, end)
	dropSpawnsWhere(b, func(idx int) bool { return idx == end || !m.Tiles[idx].Walkable() })
	b.TakeSnapshot()

	top, okTop := nearestWalkable(m, m.Width/2, 1)
	bottom, okBottom := nearestWalkable(m, m.Width/2, m.Height-2)
	if !okTop || !okBottom || top == bottom {
		return
	}
	stream := pathfind.AStar(m.NewGraph(nil), top, bottom)
	if !stream.Success {
		return
	}
	for _, idx := range stream.Steps {
		switch m.Tiles[idx] {
		case gamemap.Floor, gamemap.Grass:
			m.Tiles[idx] = gamemap.ShallowWater
		case gamemap.Road:
			m.Tiles[idx] = gamemap.Bridge
		}
	}
	b.TakeSnapshot()
}

// Retheme swaps every tile of one type for another.
type Retheme struct {
	From, To gamemap.TileType
}

func (rt Retheme) Build(_ *rng.RNG, b *BuildData) {
	for i, t := range b.Map.Tiles {
		if t == rt.From {
			b.Map.Tiles[i] = rt.To
		}
	}
	b.TakeSnapshot()
}
