package mapbuilder

import (
	"slices"

	"github.com/zyedidia/generic/mapset"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

type direction uint8

const (
	north direction = iota
	south
	west
	east
)

func (d direction) opposite() direction {
	switch d {
	case north:
		return south
	case south:
		return north
	case west:
		return east
	}
	return west
}

// chunk is one pattern plus the edge tiles that are open and the patterns
// allowed beside it in each direction.
type chunk struct {
	tiles      []gamemap.TileType
	exits      [4][]bool
	compatible [4][]int
}

// buildPatterns slices the map into size×size chunks. With flips, each
// chunk also contributes its mirror images. Duplicates are dropped keeping
// the first occurrence.
func buildPatterns(m *gamemap.Map, size int, flips bool) [][]gamemap.TileType {
	var patterns [][]gamemap.TileType
	add := func(p []gamemap.TileType) {
		if !slices.ContainsFunc(patterns, func(q []gamemap.TileType) bool { return slices.Equal(p, q) }) {
			patterns = append(patterns, p)
		}
	}
	for cy := 0; cy < m.Height/size; cy++ {
		for cx := 0; cx < m.Width/size; cx++ {
			grab := func(flipX, flipY bool) []gamemap.TileType {
				p := make([]gamemap.TileType, 0, size*size)
				for y := 0; y < size; y++ {
					sy := y
					if flipY {
						sy = size - 1 - y
					}
					for x := 0; x < size; x++ {
						sx := x
						if flipX {
							sx = size - 1 - x
						}
						p = append(p, m.At(cx*size+sx, cy*size+sy))
					}
				}
				return p
			}
			add(grab(false, false))
			if flips {
				add(grab(true, false))
				add(grab(false, true))
				add(grab(true, true))
			}
		}
	}
	return patterns
}

// plainFloor returns a copy of m with every walkable tile turned to floor,
// so stairs and other features are not learned as patterns.
func plainFloor(m *gamemap.Map) *gamemap.Map {
	src := m.Clone()
	for i, t := range src.Tiles {
		if t.Walkable() {
			src.Tiles[i] = gamemap.Floor
		}
	}
	return src
}

// buildConstraints records the open edges of every pattern and which
// patterns may sit next to which.
func buildConstraints(patterns [][]gamemap.TileType, size int) []chunk {
	chunks := make([]chunk, len(patterns))
	for i, p := range patterns {
		c := chunk{tiles: p}
		for d := range c.exits {
			c.exits[d] = make([]bool, size)
		}
		for k := 0; k < size; k++ {
			c.exits[north][k] = p[k] == gamemap.Floor
			c.exits[south][k] = p[(size-1)*size+k] == gamemap.Floor
			c.exits[west][k] = p[k*size] == gamemap.Floor
			c.exits[east][k] = p[k*size+size-1] == gamemap.Floor
		}
		chunks[i] = c
	}
	for i := range chunks {
		for d := north; d <= east; d++ {
			mine := chunks[i].exits[d]
			for j := range chunks {
				theirs := chunks[j].exits[d.opposite()]
				fits, hasOpen := false, false
				for k, open := range mine {
					if open {
						hasOpen = true
						if theirs[k] {
							fits = true
						}
					}
				}
				if fits || (!hasOpen && !slices.Contains(theirs, true)) {
					chunks[i].compatible[d] = append(chunks[i].compatible[d], j)
				}
			}
		}
	}
	return chunks
}

// solve places one pattern per chunk slot, visiting slots in random order
// and only choosing patterns every placed neighbour accepts. It reports
// false when some slot has no candidate left.
func solve(r *rng.RNG, chunks []chunk, size int, out *gamemap.Map) bool {
	cw, ch := out.Width/size, out.Height/size
	placed := make([]int, cw*ch)
	for i := range placed {
		placed[i] = -1
	}
	order := make([]int, cw*ch)
	for i := range order {
		order[i] = i
	}
	for i := len(order) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}

	for _, slot := range order {
		sx, sy := slot%cw, slot/cw
		var lists [][]int
		neighbour := func(x, y int, d direction) {
			if x < 0 || y < 0 || x >= cw || y >= ch {
				return
			}
			if p := placed[y*cw+x]; p >= 0 {
				lists = append(lists, chunks[p].compatible[d])
			}
		}
		neighbour(sx, sy-1, south)
		neighbour(sx, sy+1, north)
		neighbour(sx-1, sy, east)
		neighbour(sx+1, sy, west)

		if len(lists) == 0 {
			placed[slot] = r.Intn(len(chunks))
			continue
		}
		union := mapset.New[int]()
		var candidates []int
		for _, l := range lists {
			for _, p := range l {
				if !union.Has(p) {
					union.Put(p)
					candidates = append(candidates, p)
				}
			}
		}
		slices.Sort(candidates)
		candidates = slices.DeleteFunc(candidates, func(p int) bool {
			for _, l := range lists {
				if !slices.Contains(l, p) {
					return true
				}
			}
			return false
		})
		if len(candidates) == 0 {
			return false
		}
		placed[slot] = candidates[r.Intn(len(candidates))]
	}

	fillWalls(out)
	for slot, p := range placed {
		sx, sy := slot%cw, slot/cw
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				out.Set(sx*size+x, sy*size+y, chunks[p].tiles[y*size+x])
			}
		}
	}
	return true
}

// WaveformCollapse learns chunk patterns from the current map and
// reassembles them into a new one. Everything positional from earlier
// stages is discarded.
type WaveformCollapse struct {
	ChunkSize int
}

const wfcRetries = 10

func (w WaveformCollapse) Build(r *rng.RNG, b *BuildData) {
	size := w.ChunkSize
	if size <= 0 {
		size = 8
	}
	m := b.Map
	chunks := buildConstraints(buildPatterns(plainFloor(m), size, true), size)
	if len(chunks) == 0 {
		return
	}
	out := m.Clone()
	for range wfcRetries {
		if !solve(r, chunks, size, out) {
			continue
		}
		for x := 0; x < out.Width; x++ {
			out.Set(x, 0, gamemap.Wall)
			out.Set(x, out.Height-1, gamemap.Wall)
		}
		for y := 0; y < out.Height; y++ {
			out.Set(0, y, gamemap.Wall)
			out.Set(out.Width-1, y, gamemap.Wall)
		}
		copy(m.Tiles, out.Tiles)
		b.SpawnList = nil
		b.Rooms = nil
		b.Corridors = nil
		b.Start = nil
		b.TakeSnapshot()
		return
	}
}
