package system

import (
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
)

// Movement resolves teleports, then ordinary moves. Both keep the spatial
// index current so later moves in the same tick see fresh occupancy.
func Movement(c *Context) {
	w := c.World
	for _, id := range w.Query(component.CApplyTeleport) {
		c.teleport(id, w.Get(id, component.CApplyTeleport).(component.ApplyTeleport))
	}
	w.Clear(component.CApplyTeleport)

	for _, id := range w.Query(component.CApplyMove, component.CPosition) {
		dest := w.Get(id, component.CApplyMove).(component.ApplyMove).Dest
		_, from, _ := c.position(id)
		if dest == from || dest < 0 || dest >= c.Map.Size() || c.Index.IsBlocked(dest) {
			continue
		}
		c.moveTo(id, from, dest)
	}
	w.Clear(component.CApplyMove)
}

func (c *Context) moveTo(id ecs.EntityID, from, dest int) {
	w := c.World
	c.Index.MoveEntity(id, from, dest)
	x, y := c.Map.IdxXY(dest)
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.EntityMoved{})
	if vs, ok := ecs.Fetch[component.Viewshed](w, id); ok {
		vs.Dirty = true
		w.Add(id, vs)
	}
}

// teleport moves id within the level, hands the player to the level
// transition, or parks another actor on the level it is bound for.
func (c *Context) teleport(id ecs.EntityID, t component.ApplyTeleport) {
	w := c.World
	if t.Depth != c.Map.Depth {
		if c.isPlayer(id) {
			c.PendingTeleport = &t
			c.Mode = TeleportingToOtherLevel
			return
		}
		c.unindex(id)
		w.Remove(id, component.CPosition)
		w.Add(id, component.OtherLevelPosition{X: t.X, Y: t.Y, Depth: t.Depth})
		return
	}
	_, from, ok := c.position(id)
	if !ok || !c.Map.InBounds(t.X, t.Y) {
		return
	}
	c.moveTo(id, from, c.Map.XYIdx(t.X, t.Y))
}

// Triggers fires the entry triggers under every actor that moved this
// tick. A trap reveals itself, may hurt or teleport the actor, and is
// deleted if it only works once. Teleports resolve immediately.
func Triggers(c *Context) {
	w := c.World
	var spent []ecs.EntityID
	for _, id := range w.Query(component.CEntityMoved, component.CPosition) {
		_, idx, _ := c.position(id)
		c.Index.ForEachTileContent(idx, func(trap ecs.EntityID) bool {
			if trap == id || !w.Has(trap, component.CEntryTrigger) {
				return true
			}
			c.Log.Add("%s triggers!", c.name(trap))
			w.Remove(trap, component.CHidden)
			if dmg, ok := ecs.Fetch[component.InflictsDamage](w, trap); ok {
				c.requestParticle(id, glyphTrap, colorTrap, particleMs)
				component.QueueDamage(w, id, dmg.Damage, false)
			}
			if tp, ok := ecs.Fetch[component.TeleportTo](w, trap); ok && (!tp.PlayerOnly || c.isPlayer(id)) {
				c.teleport(id, component.ApplyTeleport{X: tp.X, Y: tp.Y, Depth: tp.Depth})
			}
			if w.Has(trap, component.CSingleActivation) {
				spent = append(spent, trap)
			}
			return true
		})
	}
	for _, trap := range spent {
		c.unindex(trap)
		w.DestroyEntity(trap)
	}
	w.Clear(component.CEntityMoved)
}
