package system

import (
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/fov"
	"shadoblade/internal/gamemap"
)

// spotChance is the die rolled per hidden entity in view; a 1 reveals it.
const spotChance = 24

// Visibility recomputes dirty viewsheds. The player's view also updates the
// map's visible and revealed tiles and may spot hidden entities.
func Visibility(c *Context) {
	w, m := c.World, c.Map
	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		vs.Visible = fov.Visible(m, gamemap.Point{X: pos.X, Y: pos.Y}, vs.Range)
		vs.Dirty = false
		w.Add(id, vs)

		if !c.isPlayer(id) {
			continue
		}
		clear(m.Visible)
		for _, idx := range vs.Visible {
			m.Visible[idx] = true
			m.Revealed[idx] = true
			c.Index.ForEachTileContent(idx, func(e ecs.EntityID) bool {
				if w.Has(e, component.CHidden) && c.RNG.RollDice(1, spotChance) == 1 {
					w.Remove(e, component.CHidden)
					c.Log.Add("You spotted a %s.", c.name(e))
				}
				return true
			})
		}
	}
}
