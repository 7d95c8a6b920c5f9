package mapbuilder

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

var templateSpawns = map[rune]string{
	'g': "Goblin",
	'k': "Kobold",
	'o': "Orc",
	'O': "Ogre",
	'^': "Bear Trap",
	'%': "Rations",
	'!': "Health Potion",
	'+': "Door",
	'*': "Torch",
}

// templateSize returns the width and height of a layout.
func templateSize(rows []string) (int, int) {
	w := 0
	for _, row := range rows {
		w = max(w, len([]rune(row)))
	}
	return w, len(rows)
}

// templateAt returns the layout character at (x, y), padding short rows
// with floor.
func templateAt(rows []string, x, y int) rune {
	row := []rune(rows[y])
	if x >= len(row) {
		return ' '
	}
	return row[x]
}

// stampChar applies one layout character to tile idx.
func stampChar(b *BuildData, idx int, ch rune) {
	m := b.Map
	switch ch {
	case '#':
		m.Tiles[idx] = gamemap.Wall
	case '>':
		m.Tiles[idx] = gamemap.DownStairs
	case '~':
		m.Tiles[idx] = gamemap.DeepWater
	case '=':
		m.Tiles[idx] = gamemap.ShallowWater
	case ',':
		m.Tiles[idx] = gamemap.Gravel
	case '"':
		m.Tiles[idx] = gamemap.Grass
	case '@':
		m.Tiles[idx] = gamemap.Floor
		p := m.IdxPoint(idx)
		b.Start = &p
	default:
		m.Tiles[idx] = gamemap.Floor
		if name, ok := templateSpawns[ch]; ok {
			b.SpawnList = append(b.SpawnList, Spawn{Idx: idx, Name: name})
		}
	}
}

// stamp writes a layout with its top-left corner at (ox, oy), clipped to
// the map.
func stamp(b *BuildData, rows []string, ox, oy int) {
	w, h := templateSize(rows)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.Map.InBounds(ox+x, oy+y) {
				stampChar(b, b.Map.XYIdx(ox+x, oy+y), templateAt(rows, x, y))
			}
		}
	}
}

// dropSpawnsWhere removes spawn list entries whose tile matches drop.
func dropSpawnsWhere(b *BuildData, drop func(idx int) bool) {
	b.SpawnList = slices.DeleteFunc(b.SpawnList, func(s Spawn) bool { return drop(s.Idx) })
}

// PrefabConstant replaces the map with a fixed layout.
type PrefabConstant struct {
	Level PrefabLevel
}

func (p PrefabConstant) Build(_ *rng.RNG, b *BuildData) {
	fillWalls(b.Map)
	stamp(b, p.Level.Template, 0, 0)
	// Keep the outer ring solid when the layout is as large as the map.
	m := b.Map
	for x := 0; x < m.Width; x++ {
		m.Set(x, 0, gamemap.Wall)
		m.Set(x, m.Height-1, gamemap.Wall)
	}
	for y := 0; y < m.Height; y++ {
		m.Set(0, y, gamemap.Wall)
		m.Set(m.Width-1, y, gamemap.Wall)
	}
	dropSpawnsWhere(b, func(idx int) bool { return !m.Tiles[idx].Walkable() })
	b.TakeSnapshot()
}

// PrefabSectional stamps a section onto the generated map, replacing any
// spawns underneath it, then restores connectivity.
type PrefabSectional struct {
	Section PrefabSection
}

func (p PrefabSectional) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	w, h := templateSize(p.Section.Template)
	if w >= m.Width-1 || h >= m.Height-1 {
		return
	}
	var ox, oy int
	switch p.Section.Horiz {
	case PlaceLeft:
		ox = 1
	case PlaceCenterH:
		ox = m.Width/2 - w/2
	case PlaceRight:
		ox = m.Width - 1 - w
	}
	switch p.Section.Vert {
	case PlaceTop:
		oy = 1
	case PlaceCenterV:
		oy = m.Height/2 - h/2
	case PlaceBottom:
		oy = m.Height - 1 - h
	}

	_, hadExit := m.Find(gamemap.DownStairs)
	dropSpawnsWhere(b, func(idx int) bool {
		x, y := m.IdxXY(idx)
		return x >= ox && x < ox+w && y >= oy && y < oy+h
	})
	stamp(b, p.Section.Template, ox, oy)
	b.TakeSnapshot()

	relocateStart(b)
	cullUnreachable(b, hadExit)
}

// PrefabVaults stamps up to three vaults into open floor.
type PrefabVaults struct{}

func (PrefabVaults) Build(r *rng.RNG, b *BuildData) {
	m := b.Map
	if r.RollDice(1, 6)+m.Depth < 4 {
		return
	}
	var possible []PrefabRoom
	for _, v := range Vaults {
		if m.Depth >= v.FirstDepth && m.Depth <= v.LastDepth {
			possible = append(possible, v)
		}
	}
	if len(possible) == 0 {
		return
	}

	used := mapset.New[int]()
	for _, s := range b.SpawnList {
		used.Put(s.Idx)
	}
	if si, ok := b.StartIdx(); ok {
		used.Put(si)
	}

	n := min(r.RollDice(1, 3), len(possible))
	for range n {
		vi := 0
		if len(possible) > 1 {
			vi = r.RollDice(1, len(possible)) - 1
		}
		vault := possible[vi]
		w, h := templateSize(vault.Template)

		var spots []int
		for idx := range m.Tiles {
			x, y := m.IdxXY(idx)
			if x > 1 && x+w < m.Width-2 && y > 1 && y+h < m.Height-2 && vaultFits(m, used, x, y, w, h) {
				spots = append(spots, idx)
			}
		}
		if len(spots) > 0 {
			pos := spots[0]
			if len(spots) > 1 {
				pos = spots[r.RollDice(1, len(spots))-1]
			}
			ox, oy := m.IdxXY(pos)
			dropSpawnsWhere(b, func(idx int) bool {
				x, y := m.IdxXY(idx)
				return x >= ox && x < ox+w && y >= oy && y < oy+h
			})
			stamp(b, vault.Template, ox, oy)
			for y := oy - 1; y <= oy+h; y++ {
				for x := ox - 1; x <= ox+w; x++ {
					used.Put(m.XYIdx(x, y))
				}
			}
			b.TakeSnapshot()
		}
		possible = slices.Delete(possible, vi, vi+1)
	}
}

// vaultFits reports whether a w×h vault at (x, y), plus a one-tile ring
// around it, lies entirely on unused floor.
func vaultFits(m *gamemap.Map, used mapset.Set[int], x, y, w, h int) bool {
	for ty := y - 1; ty <= y+h; ty++ {
		for tx := x - 1; tx <= x+w; tx++ {
			idx := m.XYIdx(tx, ty)
			if m.Tiles[idx] != gamemap.Floor || used.Has(idx) {
				return false
			}
		}
	}
	return true
}
