package system

import (
	"shadoblade/assets"
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/factory"
)

// DeleteTheDead removes every actor with no hit points left. Its carried
// and equipped items fall to the floor where it died and its loot table is
// rolled. The player is never deleted: the run ends instead.
func DeleteTheDead(c *Context) {
	w := c.World
	for _, id := range w.Query(component.CPools) {
		if alive(w, id) {
			continue
		}
		if c.isPlayer(id) {
			if c.Mode != GameOver {
				c.Log.Add("You are dead!")
			}
			c.Mode = GameOver
			continue
		}
		c.Log.Add("%s is dead.", c.name(id))
		if pos, ok := ecs.Fetch[component.Position](w, id); ok {
			c.dropBelongings(id, pos)
			c.rollLoot(id, pos)
		}
		c.unindex(id)
		w.DestroyEntity(id)
	}
}

// dropBelongings places everything id carries or wears at pos.
func (c *Context) dropBelongings(id ecs.EntityID, pos component.Position) {
	w := c.World
	idx := c.Map.XYIdx(pos.X, pos.Y)
	var items []ecs.EntityID
	for _, item := range w.Query(component.CEquipped) {
		if w.Get(item, component.CEquipped).(component.Equipped).Owner == id {
			items = append(items, item)
		}
	}
	for _, item := range w.Query(component.CInBackpack) {
		if w.Get(item, component.CInBackpack).(component.InBackpack).Owner == id {
			items = append(items, item)
		}
	}
	for _, item := range items {
		w.Remove(item, component.CEquipped)
		w.Remove(item, component.CInBackpack)
		w.Add(item, pos)
		c.Index.IndexEntity(item, idx, w.Has(item, component.CBlocksTile))
	}
}

// rollLoot drops one item from id's loot table at pos, if the table's
// chance comes up.
func (c *Context) rollLoot(id ecs.EntityID, pos component.Position) {
	lt, ok := ecs.Fetch[component.LootTable](c.World, id)
	if !ok {
		return
	}
	def, ok := assets.LootTables[lt.Table]
	if !ok || c.RNG.RollDice(1, 100) > def.Chance {
		return
	}
	name := assets.Roll(c.RNG, def.Drops)
	if name == "" {
		return
	}
	if item, ok := factory.Spawn(c.World, c.RNG, c.Map.Depth, name, factory.At(pos.X, pos.Y)); ok {
		c.Index.IndexEntity(item, c.Map.XYIdx(pos.X, pos.Y), c.World.Has(item, component.CBlocksTile))
	}
}
