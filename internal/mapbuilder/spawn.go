package mapbuilder

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"shadoblade/assets"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// spawnRoom fills the open floor of a room.
func spawnRoom(r *rng.RNG, b *BuildData, room gamemap.Rect) {
	var area []int
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			if !b.Map.InBounds(x, y) {
				continue
			}
			idx := b.Map.XYIdx(x, y)
			if b.Map.Tiles[idx] == gamemap.Floor {
				area = append(area, idx)
			}
		}
	}
	spawnRegion(r, b, area)
}

// spawnRegion rolls how many things appear in an area and places each on a
// distinct tile drawn from it.
func spawnRegion(r *rng.RNG, b *BuildData, area []int) {
	area = slices.Clone(area)
	start, hasStart := b.StartIdx()
	taken := mapset.New[int]()
	for _, s := range b.SpawnList {
		taken.Put(s.Idx)
	}
	area = slices.DeleteFunc(area, func(idx int) bool {
		return (hasStart && idx == start) || taken.Has(idx) || !spawnable(b.Map.Tiles[idx])
	})
	table := assets.SpawnsForDepth(b.Map.Depth)
	n := min(len(area), r.RollDice(1, 7)+b.Map.Depth-4)
	for range n {
		if len(area) == 0 {
			return
		}
		i := 0
		if len(area) > 1 {
			i = r.RollDice(1, len(area)) - 1
		}
		idx := area[i]
		area = slices.Delete(area, i, i+1)
		if name := assets.Roll(r, table); name != "" {
			b.SpawnList = append(b.SpawnList, Spawn{Idx: idx, Name: name})
		}
	}
}

// VoronoiSpawning partitions the open tiles around random seeds and spawns
// once per partition.
type VoronoiSpawning struct{}

func (VoronoiSpawning) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	seeds := voronoiSeeds(r, m, max(1, m.Size()/150))
	areas := make([][]int, len(seeds))
	for idx, t := range m.Tiles {
		if !spawnable(t) {
			continue
		}
		s := nearestSeed(Pythagoras, seeds, m.IdxPoint(idx))
		areas[s] = append(areas[s], idx)
	}
	for _, area := range areas {
		spawnRegion(r, b, area)
	}
}
