package mapbuilder

import (
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// CellularAutomata seeds random noise and smooths it into caverns.
type CellularAutomata struct{}

const cellularIterations = 15

func (CellularAutomata) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	for y := 1; y < m.Height-1; y++ {
		for x := 1; x < m.Width-1; x++ {
			if r.RollDice(1, 100) > 55 {
				m.Set(x, y, gamemap.Floor)
			} else {
				m.Set(x, y, gamemap.Wall)
			}
		}
	}
	b.TakeSnapshot()

	for range cellularIterations {
		next := append([]gamemap.TileType(nil), m.Tiles...)
		for y := 1; y < m.Height-1; y++ {
			for x := 1; x < m.Width-1; x++ {
				walls := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if (dx != 0 || dy != 0) && m.At(x+dx, y+dy) == gamemap.Wall {
							walls++
						}
					}
				}
				idx := m.XYIdx(x, y)
				if walls > 4 || walls == 0 {
					next[idx] = gamemap.Wall
				} else {
					next[idx] = gamemap.Floor
				}
			}
		}
		m.Tiles = next
		b.TakeSnapshot()
	}
}
