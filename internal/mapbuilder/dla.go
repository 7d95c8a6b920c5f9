package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// DLAAlgorithm selects how diffusion-limited aggregation grows.
type DLAAlgorithm uint8

const (
	WalkInwards DLAAlgorithm = iota
	WalkOutwards
	CentralAttractor
)

// DLA grows a cave by letting particles wander until they stick.
type DLA struct {
	Algorithm    DLAAlgorithm
	Brush        int
	Symmetry     Symmetry
	FloorPercent float64
}

// Seed strategy presets.
var (
	DLAWalkInwards      = DLA{Algorithm: WalkInwards, Brush: 1, FloorPercent: 0.25}
	DLAWalkOutwards     = DLA{Algorithm: WalkOutwards, Brush: 2, FloorPercent: 0.25}
	DLACentralAttractor = DLA{Algorithm: CentralAttractor, Brush: 2, FloorPercent: 0.25}
	DLAInsectoid        = DLA{Algorithm: CentralAttractor, Brush: 2, FloorPercent: 0.25, Symmetry: SymHorizontal}
)

// maxParticles bounds growth on maps where the target cannot be reached.
const maxParticles = 5000

func (d DLA) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	cx, cy := m.Width/2, m.Height/2
	for _, p := range [5]gamemap.Point{{X: cx, Y: cy}, {X: cx - 1, Y: cy}, {X: cx + 1, Y: cy}, {X: cx, Y: cy - 1}, {X: cx, Y: cy + 1}} {
		m.Set(p.X, p.Y, gamemap.Floor)
	}

	desired := int(d.FloorPercent * float64(m.Size()))
	for n := 0; m.Count(gamemap.Floor) < desired && n < maxParticles; n++ {
		switch d.Algorithm {
		case WalkInwards:
			x := r.RollDice(1, m.Width-3) + 1
			y := r.RollDice(1, m.Height-3) + 1
			px, py := x, y
			for m.At(x, y) == gamemap.Wall {
				px, py = x, y
				x, y = stagger(r, m, x, y)
			}
			paint(m, d.Symmetry, d.Brush, px, py)
		case WalkOutwards:
			x, y := cx, cy
			for m.At(x, y) == gamemap.Floor {
				x, y = stagger(r, m, x, y)
			}
			paint(m, d.Symmetry, d.Brush, x, y)
		case CentralAttractor:
			x := r.RollDice(1, m.Width-3) + 1
			y := r.RollDice(1, m.Height-3) + 1
			px, py := x, y
			path := line(x, y, cx, cy)
			for i := 0; i < len(path) && m.At(x, y) == gamemap.Wall; i++ {
				px, py = x, y
				x, y = path[i].X, path[i].Y
			}
			paint(m, d.Symmetry, d.Brush, px, py)
		}
		if n%20 == 0 {
			b.TakeSnapshot()
		}
	}
	b.TakeSnapshot()
}
