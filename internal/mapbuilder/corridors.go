package mapbuilder

import (
	"github.com/zyedidia/generic/mapset"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// Dogleg joins each room to the one before it with an L-shaped tunnel.
type Dogleg struct{}

func (Dogleg) Build(r *rng.RNG, b *BuildData) {
	requireRooms(b)
	m := b.Map
	for i := 1; i < len(b.Rooms); i++ {
		a, c := b.Rooms[i-1].Center(), b.Rooms[i].Center()
		var corridor []int
		if r.RollDice(1, 2) == 1 {
			corridor = append(carveH(m, a.X, c.X, a.Y), carveV(m, a.Y, c.Y, c.X)...)
		} else {
			corridor = append(carveV(m, a.Y, c.Y, a.X), carveH(m, a.X, c.X, c.Y)...)
		}
		b.Corridors = append(b.Corridors, corridor)
		b.TakeSnapshot()
	}
}

// randomPointIn picks a tile inside a room.
func randomPointIn(r *rng.RNG, room gamemap.Rect) gamemap.Point {
	return gamemap.Point{
		X: room.X1 + r.RollDice(1, max(1, room.Width())),
		Y: room.Y1 + r.RollDice(1, max(1, room.Height())),
	}
}

// BspCorridors joins consecutive rooms between random interior points.
type BspCorridors struct{}

func (BspCorridors) Build(r *rng.RNG, b *BuildData) {
	requireRooms(b)
	for i := 1; i < len(b.Rooms); i++ {
		a := randomPointIn(r, b.Rooms[i-1])
		c := randomPointIn(r, b.Rooms[i])
		b.Corridors = append(b.Corridors, carveStepwise(b.Map, a.X, a.Y, c.X, c.Y))
		b.TakeSnapshot()
	}
}

// nearestUnconnected returns the room closest to rooms[i] that has not
// been joined yet.
func nearestUnconnected(rooms []gamemap.Rect, i int, connected mapset.Set[int]) (int, bool) {
	c := rooms[i].Center()
	best, bestDist := -1, 0.0
	for j, other := range rooms {
		if j == i || connected.Has(j) {
			continue
		}
		o := other.Center()
		if d := Pythagoras.between(c, o); best < 0 || d < bestDist {
			best, bestDist = j, d
		}
	}
	return best, best >= 0
}

// NearestCorridors joins each room to its closest unconnected neighbour.
type NearestCorridors struct{}

func (NearestCorridors) Build(_ *rng.RNG, b *BuildData) {
	requireRooms(b)
	connected := mapset.New[int]()
	for i, room := range b.Rooms {
		if j, ok := nearestUnconnected(b.Rooms, i, connected); ok {
			a, c := room.Center(), b.Rooms[j].Center()
			b.Corridors = append(b.Corridors, carveStepwise(b.Map, a.X, a.Y, c.X, c.Y))
			b.TakeSnapshot()
		}
		connected.Put(i)
	}
}

// StraightLineCorridors joins each room to its closest unconnected
// neighbour along a straight line.
type StraightLineCorridors struct{}

func (StraightLineCorridors) Build(_ *rng.RNG, b *BuildData) {
	requireRooms(b)
	connected := mapset.New[int]()
	for i, room := range b.Rooms {
		if j, ok := nearestUnconnected(b.Rooms, i, connected); ok {
			a, c := room.Center(), b.Rooms[j].Center()
			var corridor []int
			for _, p := range line(a.X, a.Y, c.X, c.Y) {
				if idx, dug := dig(b.Map, p.X, p.Y); dug {
					corridor = append(corridor, idx)
				}
			}
			b.Corridors = append(b.Corridors, corridor)
			b.TakeSnapshot()
		}
		connected.Put(i)
	}
}

// CorridorSpawner populates each corridor like a small room.
type CorridorSpawner struct{}

func (CorridorSpawner) Build(r *rng.RNG, b *BuildData) {
	for _, c := range b.Corridors {
		spawnRegion(r, b, c)
	}
}
