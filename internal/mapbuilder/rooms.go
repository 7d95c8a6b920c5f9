package mapbuilder

import (
	"errors"
	"math"
	"sort"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// ErrNoRooms is the panic value when a room stage runs on a chain whose
// initial builder produced no rooms.
var ErrNoRooms = errors.New("mapbuilder: room-based stage requires rooms")

func requireRooms(b *BuildData) {
	if len(b.Rooms) == 0 {
		panic(ErrNoRooms)
	}
}

// RoomSort is the ordering applied by RoomSorter.
type RoomSort uint8

const (
	SortLeftmost RoomSort = iota
	SortRightmost
	SortTopmost
	SortBottommost
	SortCentral
)

// RoomSorter reorders the room list. Corridor stages connect rooms in list
// order, so sorting shapes the layout.
type RoomSorter struct {
	Sort RoomSort
}

func (s RoomSorter) Build(_ *rng.RNG, b *BuildData) {
	rooms := b.Rooms
	switch s.Sort {
	case SortLeftmost:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].X1 < rooms[j].X1 })
	case SortRightmost:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].X2 > rooms[j].X2 })
	case SortTopmost:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Y1 < rooms[j].Y1 })
	case SortBottommost:
		sort.SliceStable(rooms, func(i, j int) bool { return rooms[i].Y2 > rooms[j].Y2 })
	case SortCentral:
		mid := gamemap.Point{X: b.Map.Width / 2, Y: b.Map.Height / 2}
		dist := func(r gamemap.Rect) float64 {
			c := r.Center()
			return math.Hypot(float64(c.X-mid.X), float64(c.Y-mid.Y))
		}
		sort.SliceStable(rooms, func(i, j int) bool { return dist(rooms[i]) < dist(rooms[j]) })
	}
}

// RoomDrawer carves each recorded room as a rectangle or, one time in four,
// a circle.
type RoomDrawer struct{}

func (RoomDrawer) Build(r *rng.RNG, b *BuildData) {
	requireRooms(b)
	for _, room := range b.Rooms {
		if r.RollDice(1, 4) == 1 {
			drawCircle(b.Map, room)
		} else {
			applyRoom(b.Map, room)
		}
		b.TakeSnapshot()
	}
}

func drawCircle(m *gamemap.Map, room gamemap.Rect) {
	radius := float64(min(room.Width(), room.Height())) / 2
	c := room.Center()
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			if x > 0 && x < m.Width-1 && y > 0 && y < m.Height-1 &&
				math.Hypot(float64(x-c.X), float64(y-c.Y)) <= radius {
				m.Set(x, y, gamemap.Floor)
			}
		}
	}
}

// RoomExploder sends short-lived diggers out of every room.
type RoomExploder struct{}

func (RoomExploder) Build(r *rng.RNG, b *BuildData) {
	requireRooms(b)
	m := b.Map
	for _, room := range b.Rooms {
		start := room.Center()
		for range r.RollDice(1, 20) - 5 {
			x, y := start.X, start.Y
			for range 20 {
				paint(m, SymNone, 1, x, y)
				x, y = stagger(r, m, x, y)
			}
		}
		b.TakeSnapshot()
	}
}

// RoomCornerRounder fills in room corners that stick out into rock.
type RoomCornerRounder struct{}

func (RoomCornerRounder) Build(_ *rng.RNG, b *BuildData) {
	requireRooms(b)
	m := b.Map
	for _, room := range b.Rooms {
		for _, c := range [4]gamemap.Point{
			{X: room.X1 + 1, Y: room.Y1 + 1},
			{X: room.X2, Y: room.Y1 + 1},
			{X: room.X1 + 1, Y: room.Y2},
			{X: room.X2, Y: room.Y2},
		} {
			walls := 0
			for _, d := range [4]gamemap.Point{{X: -1}, {X: 1}, {Y: -1}, {Y: 1}} {
				if m.At(c.X+d.X, c.Y+d.Y) == gamemap.Wall {
					walls++
				}
			}
			if walls == 2 && m.InBounds(c.X, c.Y) {
				m.Set(c.X, c.Y, gamemap.Wall)
			}
		}
		b.TakeSnapshot()
	}
}

// RoomBasedStartingPosition starts the player in the middle of the first
// room.
type RoomBasedStartingPosition struct{}

func (RoomBasedStartingPosition) Build(_ *rng.RNG, b *BuildData) {
	requireRooms(b)
	c := b.Rooms[0].Center()
	b.Start = &c
}

// RoomBasedStairs puts the down staircase in the middle of the last room.
type RoomBasedStairs struct{}

func (RoomBasedStairs) Build(_ *rng.RNG, b *BuildData) {
	requireRooms(b)
	c := b.Rooms[len(b.Rooms)-1].Center()
	placeExit(b.Map, b.Map.XYIdx(c.X, c.Y))
	b.TakeSnapshot()
}

// RoomBasedSpawner populates every room except the first.
type RoomBasedSpawner struct{}

func (RoomBasedSpawner) Build(r *rng.RNG, b *BuildData) {
	requireRooms(b)
	for _, room := range b.Rooms[1:] {
		spawnRoom(r, b, room)
	}
}
