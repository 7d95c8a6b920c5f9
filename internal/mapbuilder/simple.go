package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// SimpleMap scatters non-overlapping rectangular rooms. It records them
// without carving; a RoomDrawer stage draws them.
type SimpleMap struct{}

const (
	simpleMaxRooms = 30
	simpleMinSize  = 6
	simpleMaxSize  = 10
)

func (SimpleMap) Build(r *rng.RNG, b *BuildData) {
	var rooms []gamemap.Rect
	for range simpleMaxRooms {
		w := r.Range(simpleMinSize, simpleMaxSize)
		h := r.Range(simpleMinSize, simpleMaxSize)
		x := r.RollDice(1, b.Width-w-1) - 1
		y := r.RollDice(1, b.Height-h-1) - 1
		room := gamemap.NewRect(x, y, w, h)
		ok := true
		for _, other := range rooms {
			if room.Intersects(other) {
				ok = false
				break
			}
		}
		if ok {
			rooms = append(rooms, room)
		}
	}
	b.Rooms = rooms
}
