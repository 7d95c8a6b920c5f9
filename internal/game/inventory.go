package game

import (
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/system"
)

// Backpack lists the items the player carries, in pickup order.
func (s *State) Backpack() []ecs.EntityID {
	w := s.ctx.World
	var out []ecs.EntityID
	for _, id := range w.Query(component.CInBackpack) {
		if w.Get(id, component.CInBackpack).(component.InBackpack).Owner == s.ctx.Player {
			out = append(out, id)
		}
	}
	return out
}

// Equipment lists the items the player wears or wields.
func (s *State) Equipment() []ecs.EntityID {
	w := s.ctx.World
	var out []ecs.EntityID
	for _, id := range w.Query(component.CEquipped) {
		if w.Get(id, component.CEquipped).(component.Equipped).Owner == s.ctx.Player {
			out = append(out, id)
		}
	}
	return out
}

// MenuItems lists what the open item menu offers.
func (s *State) MenuItems() []ecs.EntityID {
	switch s.ctx.Mode {
	case system.ShowInventory, system.ShowDropItem:
		return s.Backpack()
	case system.ShowRemoveItem:
		return s.Equipment()
	}
	return nil
}

// Choose picks row i of the open item menu. A ranged item switches to
// targeting instead of being used at once.
func (s *State) Choose(i int) {
	c := s.ctx
	items := s.MenuItems()
	if i < 0 || i >= len(items) {
		return
	}
	item := items[i]
	switch c.Mode {
	case system.ShowInventory:
		if c.World.Has(item, component.CRanged) {
			s.targeting = item
			if pos, ok := s.playerPos(); ok {
				s.cursor.X, s.cursor.Y = pos.X, pos.Y
			}
			c.Mode = system.ShowTargeting
			return
		}
		c.World.Add(c.Player, component.WantsToUseItem{Item: item})
	case system.ShowDropItem:
		c.World.Add(c.Player, component.WantsToDropItem{Item: item})
	case system.ShowRemoveItem:
		c.World.Add(c.Player, component.WantsToRemoveItem{Item: item})
	}
	c.Mode = system.Ticking
	s.stats.Turns++
	s.advance()
}
