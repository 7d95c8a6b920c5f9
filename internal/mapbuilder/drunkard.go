package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// DrunkSpawn selects where each new digger starts.
type DrunkSpawn uint8

const (
	SpawnAtStart DrunkSpawn = iota
	SpawnAtRandom
)

// DrunkardsWalk releases random-walking diggers until enough of the map is
// floor.
type DrunkardsWalk struct {
	Spawn        DrunkSpawn
	Lifetime     int
	FloorPercent float64
	Brush        int
	Symmetry     Symmetry
}

// Gait presets.
var (
	OpenArea        = DrunkardsWalk{Spawn: SpawnAtStart, Lifetime: 400, FloorPercent: 0.5, Brush: 1}
	OpenHalls       = DrunkardsWalk{Spawn: SpawnAtRandom, Lifetime: 400, FloorPercent: 0.5, Brush: 1}
	WindingPassages = DrunkardsWalk{Spawn: SpawnAtRandom, Lifetime: 100, FloorPercent: 0.4, Brush: 1}
	FatPassages     = DrunkardsWalk{Spawn: SpawnAtRandom, Lifetime: 100, FloorPercent: 0.4, Brush: 2}
	FearfulSymmetry = DrunkardsWalk{Spawn: SpawnAtRandom, Lifetime: 100, FloorPercent: 0.4, Brush: 1, Symmetry: SymBoth}
)

// maxDiggers bounds the walk on maps too cramped to reach the target.
const maxDiggers = 2000

func (d DrunkardsWalk) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	start := gamemap.Point{X: m.Width / 2, Y: m.Height / 2}
	m.Set(start.X, start.Y, gamemap.Floor)

	desired := int(d.FloorPercent * float64(m.Size()))
	floor := m.Count(gamemap.Floor)
	for diggers := 0; floor < desired && diggers < maxDiggers; diggers++ {
		x, y := start.X, start.Y
		if d.Spawn == SpawnAtRandom && diggers > 0 {
			x = r.RollDice(1, m.Width-3) + 1
			y = r.RollDice(1, m.Height-3) + 1
		}
		changed := false
		for life := d.Lifetime; life > 0; life-- {
			if m.At(x, y) == gamemap.Wall {
				changed = true
			}
			paint(m, d.Symmetry, d.Brush, x, y)
			x, y = stagger(r, m, x, y)
		}
		if changed {
			b.TakeSnapshot()
		}
		floor = m.Count(gamemap.Floor)
	}
}
