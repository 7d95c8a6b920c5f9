package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// XStart is the horizontal seed for AreaStartingPosition.
type XStart uint8

const (
	XLeft XStart = iota
	XCenter
	XRight
)

// YStart is the vertical seed for AreaStartingPosition.
type YStart uint8

const (
	YTop YStart = iota
	YCenter
	YBottom
)

// AreaStartingPosition puts the start on the spawnable tile closest to a
// seed point.
type AreaStartingPosition struct {
	X XStart
	Y YStart
}

func (a AreaStartingPosition) Build(_ *rng.RNG, b *BuildData) {
	m := b.Map
	var sx, sy int
	switch a.X {
	case XLeft:
		sx = 2
	case XCenter:
		sx = m.Width / 2
	case XRight:
		sx = m.Width - 2
	}
	switch a.Y {
	case YTop:
		sy = 2
	case YCenter:
		sy = m.Height / 2
	case YBottom:
		sy = m.Height - 2
	}
	seed := m.XYIdx(sx, sy)

	best, bestDist := -1, 0.0
	for idx, t := range m.Tiles {
		if !spawnable(t) {
			continue
		}
		if d := m.Distance(seed, idx); best < 0 || d < bestDist {
			best, bestDist = idx, d
		}
	}
	if best < 0 {
		return
	}
	p := m.IdxPoint(best)
	b.Start = &p
}

// spawnable reports whether the start or an entity may be placed on t.
func spawnable(t gamemap.TileType) bool {
	return t.Walkable() && t != gamemap.DownStairs && t != gamemap.UpStairs
}
