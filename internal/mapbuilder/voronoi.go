package mapbuilder

import (
	"math"

	"github.com/zyedidia/generic/mapset"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// DistanceAlg is the metric used to assign tiles to Voronoi seeds.
type DistanceAlg uint8

const (
	Pythagoras DistanceAlg = iota
	Manhattan
	Chebyshev
)

func (d DistanceAlg) between(a, b gamemap.Point) float64 {
	dx, dy := float64(abs(a.X-b.X)), float64(abs(a.Y-b.Y))
	switch d {
	case Manhattan:
		return dx + dy
	case Chebyshev:
		return math.Max(dx, dy)
	}
	return math.Hypot(dx, dy)
}

// voronoiSeeds picks n distinct random points inside the border.
func voronoiSeeds(r *rng.RNG, m *gamemap.Map, n int) []gamemap.Point {
	used := mapset.New[int]()
	var seeds []gamemap.Point
	for tries := 0; len(seeds) < n && tries < n*20; tries++ {
		x := r.RollDice(1, m.Width-2)
		y := r.RollDice(1, m.Height-2)
		idx := m.XYIdx(x, y)
		if used.Has(idx) {
			continue
		}
		used.Put(idx)
		seeds = append(seeds, gamemap.Point{X: x, Y: y})
	}
	return seeds
}

// nearestSeed returns the index of the seed closest to p; ties go to the
// earlier seed.
func nearestSeed(alg DistanceAlg, seeds []gamemap.Point, p gamemap.Point) int {
	best, bestDist := 0, math.MaxFloat64
	for i, s := range seeds {
		if d := alg.between(p, s); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// VoronoiCells partitions the map into cells around random seeds and opens
// every tile that is not on a cell boundary.
type VoronoiCells struct {
	Seeds    int
	Distance DistanceAlg
}

func (v VoronoiCells) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	seeds := voronoiSeeds(r, m, v.Seeds)
	if len(seeds) == 0 {
		return
	}
	membership := make([]int, m.Size())
	for i := range membership {
		membership[i] = nearestSeed(v.Distance, seeds, m.IdxPoint(i))
	}
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			mine := membership[m.XYIdx(x, y)]
			others := 0
			for _, n := range [4]int{m.XYIdx(x-1, y), m.XYIdx(x+1, y), m.XYIdx(x, y-1), m.XYIdx(x, y+1)} {
				if membership[n] != mine {
					others++
				}
			}
			if others < 2 {
				m.Set(x, y, gamemap.Floor)
			}
		}
		b.TakeSnapshot()
	}
}
