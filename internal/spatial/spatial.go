// Package spatial maps tile indices to the entities standing on them and
// tracks which tiles are blocked, either by terrain or by an occupant.
package spatial

import (
	"slices"

	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
)

type occupant struct {
	id     ecs.EntityID
	blocks bool
}

// Index is the per-level spatial index. Occupants of a tile keep the order
// in which they were indexed.
type Index struct {
	mapBlocked    []bool
	entityBlocked []bool
	content       [][]occupant
}

// New returns an empty index sized for tileCount tiles.
func New(tileCount int) *Index {
	ix := &Index{}
	ix.Clear(tileCount)
	return ix
}

// Clear empties every tile and resizes the index to tileCount tiles.
func (ix *Index) Clear(tileCount int) {
	if len(ix.content) != tileCount {
		ix.mapBlocked = make([]bool, tileCount)
		ix.entityBlocked = make([]bool, tileCount)
		ix.content = make([][]occupant, tileCount)
		return
	}
	for i := range ix.content {
		ix.mapBlocked[i] = false
		ix.entityBlocked[i] = false
		ix.content[i] = ix.content[i][:0]
	}
}

// Len is the number of tiles the index covers.
func (ix *Index) Len() int { return len(ix.content) }

func (ix *Index) valid(idx int) bool { return idx >= 0 && idx < len(ix.content) }

// PopulateBlockedFromMap marks every non-walkable tile of m as blocked.
// Occupant blocking is left untouched.
func (ix *Index) PopulateBlockedFromMap(m *gamemap.Map) {
	for i, t := range m.Tiles {
		if ix.valid(i) {
			ix.mapBlocked[i] = !t.Walkable()
		}
	}
}

// IndexEntity records id as standing on idx.
func (ix *Index) IndexEntity(id ecs.EntityID, idx int, blocks bool) {
	if !ix.valid(idx) {
		return
	}
	ix.content[idx] = append(ix.content[idx], occupant{id: id, blocks: blocks})
	if blocks {
		ix.entityBlocked[idx] = true
	}
}

// RemoveEntity drops id from idx and recomputes that tile's blocking.
// It reports whether id was found there.
func (ix *Index) RemoveEntity(id ecs.EntityID, idx int) (blocks, found bool) {
	if !ix.valid(idx) {
		return false, false
	}
	tile := ix.content[idx]
	i := slices.IndexFunc(tile, func(o occupant) bool { return o.id == id })
	if i < 0 {
		return false, false
	}
	blocks = tile[i].blocks
	ix.content[idx] = slices.Delete(tile, i, i+1)
	ix.entityBlocked[idx] = slices.ContainsFunc(ix.content[idx], func(o occupant) bool { return o.blocks })
	return blocks, true
}

// MoveEntity moves id from one tile to another, carrying its blocking flag.
func (ix *Index) MoveEntity(id ecs.EntityID, from, to int) {
	blocks, found := ix.RemoveEntity(id, from)
	if !found {
		return
	}
	ix.IndexEntity(id, to, blocks)
}

// IsBlocked reports whether the tile is impassable. Out-of-range indices
// are blocked.
func (ix *Index) IsBlocked(idx int) bool {
	if !ix.valid(idx) {
		return true
	}
	return ix.mapBlocked[idx] || ix.entityBlocked[idx]
}

// SetBlocked marks a tile blocked by terrain without an occupant.
func (ix *Index) SetBlocked(idx int, blocked bool) {
	if ix.valid(idx) {
		ix.mapBlocked[idx] = blocked
	}
}

// ForEachTileContent calls visit for every occupant of idx in index order
// until visit returns false. It reports whether the walk ran to completion.
func (ix *Index) ForEachTileContent(idx int, visit func(ecs.EntityID) bool) bool {
	if !ix.valid(idx) {
		return true
	}
	for _, o := range slices.Clone(ix.content[idx]) {
		if !visit(o.id) {
			return false
		}
	}
	return true
}

// TileContent returns a copy of the occupants of idx.
func (ix *Index) TileContent(idx int) []ecs.EntityID {
	if !ix.valid(idx) {
		return nil
	}
	out := make([]ecs.EntityID, len(ix.content[idx]))
	for i, o := range ix.content[idx] {
		out[i] = o.id
	}
	return out
}
