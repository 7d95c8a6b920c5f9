package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// bspLeaf is a node in the BSP tree.
type bspLeaf struct {
	X, Y, W, H  int
	left, right *bspLeaf
	room        *gamemap.Rect
}

const (
	bspMinLeaf = 8
	bspMaxLeaf = 20
)

// split divides the leaf into two children, returning false when the leaf is
// too small.
func (l *bspLeaf) split(r *rng.RNG, minLeaf int) bool {
	if l.left != nil || l.right != nil {
		return false
	}
	// Prefer cutting across the longer side.
	splitH := r.Intn(2) == 0
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		splitH = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		splitH = true
	}

	maxSize := l.H
	if !splitH {
		maxSize = l.W
	}
	lo, hi := minLeaf, maxSize-minLeaf
	if lo >= hi {
		return false
	}
	cut := lo + r.Intn(hi-lo+1)

	if splitH {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: l.W, H: cut}
		l.right = &bspLeaf{X: l.X, Y: l.Y + cut, W: l.W, H: l.H - cut}
	} else {
		l.left = &bspLeaf{X: l.X, Y: l.Y, W: cut, H: l.H}
		l.right = &bspLeaf{X: l.X + cut, Y: l.Y, W: l.W - cut, H: l.H}
	}
	return true
}

// grow splits leaves until every leaf is small enough, with some chance of
// splitting leaves that already are.
func (l *bspLeaf) grow(r *rng.RNG, minLeaf, maxLeaf int) {
	leaves := []*bspLeaf{l}
	for splitAny := true; splitAny; {
		splitAny = false
		var next []*bspLeaf
		for _, leaf := range leaves {
			if leaf.left != nil {
				next = append(next, leaf.left, leaf.right)
				continue
			}
			if leaf.W > maxLeaf || leaf.H > maxLeaf || r.Float64() > 0.25 {
				if leaf.split(r, minLeaf) {
					next = append(next, leaf.left, leaf.right)
					splitAny = true
					continue
				}
			}
			next = append(next, leaf)
		}
		leaves = next
	}
}

// placeRooms puts one room inside every terminal leaf, in tree order.
func (l *bspLeaf) placeRooms(r *rng.RNG, width, height int, rooms *[]gamemap.Rect) {
	if l.left != nil {
		l.left.placeRooms(r, width, height, rooms)
		l.right.placeRooms(r, width, height, rooms)
		return
	}
	rw := r.Range(4, max(5, l.W-1))
	rh := r.Range(4, max(5, l.H-1))
	rw, rh = min(rw, l.W-2), min(rh, l.H-2)
	if rw < 3 || rh < 3 {
		return
	}
	rx := l.X + 1 + r.Intn(max(1, l.W-rw-1))
	ry := l.Y + 1 + r.Intn(max(1, l.H-rh-1))
	if rx < 1 || ry < 1 || rx+rw >= width-1 || ry+rh >= height-1 {
		return
	}
	room := gamemap.NewRect(rx, ry, rw, rh)
	l.room = &room
	*rooms = append(*rooms, room)
}

// BspDungeon partitions the map with a BSP tree and records one room per
// leaf. Rooms are listed in tree order so neighbours share a parent.
type BspDungeon struct{}

func (BspDungeon) Build(r *rng.RNG, b *BuildData) {
	root := &bspLeaf{X: 1, Y: 1, W: b.Width - 2, H: b.Height - 2}
	root.grow(r, bspMinLeaf, bspMaxLeaf)
	var rooms []gamemap.Rect
	root.placeRooms(r, b.Width, b.Height, &rooms)
	b.Rooms = rooms
}

// BspInterior subdivides the whole map into touching rooms, like the
// interior of a building, and joins each room to the next.
type BspInterior struct{}

const bspInteriorMinRoom = 8

func (BspInterior) Build(r *rng.RNG, b *BuildData) {
	var rects []gamemap.Rect
	var subdivide func(rect gamemap.Rect)
	subdivide = func(rect gamemap.Rect) {
		w, h := rect.Width(), rect.Height()
		halfW, halfH := w/2, h/2
		vertical := r.RollDice(1, 2) == 1
		switch {
		case vertical && halfW > bspInteriorMinRoom:
			subdivide(gamemap.NewRect(rect.X1, rect.Y1, halfW-1, h))
			subdivide(gamemap.NewRect(rect.X1+halfW, rect.Y1, halfW, h))
		case !vertical && halfH > bspInteriorMinRoom:
			subdivide(gamemap.NewRect(rect.X1, rect.Y1, w, halfH-1))
			subdivide(gamemap.NewRect(rect.X1, rect.Y1+halfH, w, halfH))
		case halfW > bspInteriorMinRoom:
			subdivide(gamemap.NewRect(rect.X1, rect.Y1, halfW-1, h))
			subdivide(gamemap.NewRect(rect.X1+halfW, rect.Y1, halfW, h))
		case halfH > bspInteriorMinRoom:
			subdivide(gamemap.NewRect(rect.X1, rect.Y1, w, halfH-1))
			subdivide(gamemap.NewRect(rect.X1, rect.Y1+halfH, w, halfH))
		default:
			rects = append(rects, rect)
		}
	}
	subdivide(gamemap.NewRect(1, 1, b.Width-2, b.Height-2))

	m := b.Map
	for _, room := range rects {
		for y := room.Y1; y < room.Y2; y++ {
			for x := room.X1; x < room.X2; x++ {
				dig(m, x, y)
			}
		}
		b.TakeSnapshot()
	}
	for i := 0; i+1 < len(rects); i++ {
		a, c := rects[i], rects[i+1]
		sx := a.X1 + r.RollDice(1, max(1, abs(a.X1-a.X2)-1))
		sy := a.Y1 + r.RollDice(1, max(1, abs(a.Y1-a.Y2)-1))
		ex := c.X1 + r.RollDice(1, max(1, abs(c.X1-c.X2)-1))
		ey := c.Y1 + r.RollDice(1, max(1, abs(c.Y1-c.Y2)-1))
		carveStepwise(m, sx, sy, ex, ey)
		b.TakeSnapshot()
	}
	b.Rooms = rects
}
