package mapbuilder

import (
	"slices"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// doorPossible reports whether idx sits in a one-tile gap between two
// walls with open ground on either side, and nothing else is spawned there.
func doorPossible(b *BuildData, idx int) bool {
	if slices.ContainsFunc(b.SpawnList, func(s Spawn) bool { return s.Idx == idx }) {
		return false
	}
	if si, ok := b.StartIdx(); ok && si == idx {
		return false
	}
	m := b.Map
	if m.Tiles[idx] != gamemap.Floor {
		return false
	}
	x, y := m.IdxXY(idx)
	if x < 1 || x >= m.Width-1 || y < 1 || y >= m.Height-1 {
		return false
	}
	open := func(x, y int) bool { return m.At(x, y).Walkable() }
	eastWest := open(x-1, y) && open(x+1, y) && m.At(x, y-1) == gamemap.Wall && m.At(x, y+1) == gamemap.Wall
	northSouth := open(x, y-1) && open(x, y+1) && m.At(x-1, y) == gamemap.Wall && m.At(x+1, y) == gamemap.Wall
	return eastWest || northSouth
}

// DoorPlacement hangs doors in corridor mouths, or in narrow gaps when no
// corridors were recorded.
type DoorPlacement struct{}

func (DoorPlacement) Build(r *rng.RNG, b *BuildData) {
	if len(b.Corridors) > 0 {
		for _, c := range b.Corridors {
			if len(c) > 2 && doorPossible(b, c[0]) {
				b.SpawnList = append(b.SpawnList, Spawn{Idx: c[0], Name: "Door"})
			}
		}
		return
	}
	for idx := range b.Map.Tiles {
		if b.Map.Tiles[idx] == gamemap.Floor && doorPossible(b, idx) && r.RollDice(1, 3) == 1 {
			b.SpawnList = append(b.SpawnList, Spawn{Idx: idx, Name: "Door"})
		}
	}
}
