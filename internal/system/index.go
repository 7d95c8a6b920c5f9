package system

import (
	"github.com/zyedidia/generic/mapset"

	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
)

// IndexMap rebuilds the spatial index and the map's view-blocked set from
// every positioned entity. It is the only phase that writes the index
// wholesale.
func IndexMap(c *Context) {
	w, m := c.World, c.Map
	c.Index.Clear(m.Size())
	c.Index.PopulateBlockedFromMap(m)
	m.ViewBlocked = mapset.New[int]()
	for _, id := range w.Query(component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.InBounds(pos.X, pos.Y) {
			continue
		}
		idx := m.XYIdx(pos.X, pos.Y)
		c.Index.IndexEntity(id, idx, w.Has(id, component.CBlocksTile))
		if w.Has(id, component.CBlocksVisibility) {
			m.ViewBlocked.Put(idx)
		}
	}
}

// unindex drops id from the index at its current position.
func (c *Context) unindex(id ecs.EntityID) {
	if _, idx, ok := c.position(id); ok {
		c.Index.RemoveEntity(id, idx)
	}
}
