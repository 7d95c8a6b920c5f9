package system

import (
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/fov"
	"shadoblade/internal/gamemap"
)

// ItemCollection moves picked-up items from the floor into the picker's
// backpack.
func ItemCollection(c *Context) {
	w := c.World
	for _, id := range w.Query(component.CWantsToPickupItem) {
		item := w.Get(id, component.CWantsToPickupItem).(component.WantsToPickupItem).Item
		if !w.Alive(item) || !w.Has(item, component.CItem) {
			continue
		}
		c.unindex(item)
		w.Remove(item, component.CPosition)
		w.Add(item, component.InBackpack{Owner: id})
		w.Add(id, component.EquipmentChanged{})
		if c.isPlayer(id) {
			c.Log.Add("You pick up the %s.", c.name(item))
		}
	}
	w.Clear(component.CWantsToPickupItem)
}

// useTargets lists the entities an item used at target affects. Without a
// target the user is affected; an area item affects everything within its
// radius that the target tile can see.
func (c *Context) useTargets(user, item ecs.EntityID, target *gamemap.Point) []ecs.EntityID {
	if target == nil {
		return []ecs.EntityID{user}
	}
	if !c.Map.InBounds(target.X, target.Y) {
		return nil
	}
	tiles := []int{c.Map.XYIdx(target.X, target.Y)}
	if aoe, ok := ecs.Fetch[component.AreaOfEffect](c.World, item); ok {
		tiles = fov.Visible(c.Map, *target, aoe.Radius)
	}
	var out []ecs.EntityID
	for _, idx := range tiles {
		out = append(out, c.Index.TileContent(idx)...)
	}
	return out
}

// equip puts item in its slot on owner, returning whatever was there to the
// backpack.
func (c *Context) equip(owner, item ecs.EntityID, slot component.EquipmentSlot) {
	w := c.World
	for _, other := range w.Query(component.CEquipped) {
		eq := w.Get(other, component.CEquipped).(component.Equipped)
		if eq.Owner == owner && eq.Slot == slot {
			w.Remove(other, component.CEquipped)
			w.Add(other, component.InBackpack{Owner: owner})
			if c.isPlayer(owner) {
				c.Log.Add("You unequip %s.", c.name(other))
			}
		}
	}
	w.Remove(item, component.CInBackpack)
	w.Add(item, component.Equipped{Owner: owner, Slot: slot})
	w.Add(owner, component.EquipmentChanged{})
	if c.isPlayer(owner) {
		c.Log.Add("You equip %s.", c.name(item))
	}
}

// ItemUse applies every item use: equipping, eating, magic mapping,
// healing, damage and confusion. Consumables are deleted once used.
func ItemUse(c *Context) {
	w := c.World
	for _, id := range w.Query(component.CWantsToUseItem) {
		want := w.Get(id, component.CWantsToUseItem).(component.WantsToUseItem)
		item := want.Item
		if !w.Alive(item) {
			continue
		}
		player := c.isPlayer(id)
		itemName := c.name(item)

		if eq, ok := ecs.Fetch[component.Equippable](w, item); ok {
			c.equip(id, item, eq.Slot)
		}
		if w.Has(item, component.CProvidesFood) {
			w.Add(id, component.HungerClock{State: component.WellFed, Duration: 20})
			if player {
				c.Log.Add("You eat the %s.", itemName)
			}
		}
		if w.Has(item, component.CMagicMapper) {
			c.Map.RevealAll()
			c.Mode = MagicMapReveal
			c.Log.Add("The map is revealed to you!")
		}

		targets := c.useTargets(id, item, want.Target)
		if heal, ok := ecs.Fetch[component.ProvidesHealing](w, item); ok {
			for _, t := range targets {
				pools, ok := ecs.Fetch[component.Pools](w, t)
				if !ok {
					continue
				}
				pools.HitPoints.Current = min(pools.HitPoints.Max, pools.HitPoints.Current+heal.Amount)
				w.Add(t, pools)
				if player {
					c.Log.Add("You use the %s, healing %d hp.", itemName, heal.Amount)
				}
				c.requestParticle(t, glyphHeal, colorHeal, particleMs)
			}
		}
		if dmg, ok := ecs.Fetch[component.InflictsDamage](w, item); ok {
			for _, t := range targets {
				if !w.Has(t, component.CPools) {
					continue
				}
				component.QueueDamage(w, t, dmg.Damage, player)
				if player {
					c.Log.Add("You use %s on %s, inflicting %d hp.", itemName, c.name(t), dmg.Damage)
				}
				c.requestParticle(t, glyphHit, colorHit, particleMs)
			}
		}
		if conf, ok := ecs.Fetch[component.Confusion](w, item); ok {
			for _, t := range targets {
				if !w.Has(t, component.CPools) {
					continue
				}
				w.Add(t, component.Confusion{Turns: conf.Turns})
				if player {
					c.Log.Add("You use %s on %s, confusing them.", itemName, c.name(t))
				}
				c.requestParticle(t, glyphConfused, colorConfused, particleMs)
			}
		}

		if w.Has(item, component.CConsumable) {
			c.unindex(item)
			w.DestroyEntity(item)
			w.Add(id, component.EquipmentChanged{})
		}
	}
	w.Clear(component.CWantsToUseItem)
}

// ItemDrop puts dropped items on the floor under their owner.
func ItemDrop(c *Context) {
	w := c.World
	for _, id := range w.Query(component.CWantsToDropItem, component.CPosition) {
		item := w.Get(id, component.CWantsToDropItem).(component.WantsToDropItem).Item
		if !w.Alive(item) {
			continue
		}
		pos, idx, _ := c.position(id)
		w.Remove(item, component.CInBackpack)
		w.Remove(item, component.CEquipped)
		w.Add(item, pos)
		c.Index.IndexEntity(item, idx, false)
		w.Add(id, component.EquipmentChanged{})
		if c.isPlayer(id) {
			c.Log.Add("You drop the %s.", c.name(item))
		}
	}
	w.Clear(component.CWantsToDropItem)
}

// ItemRemove moves unequipped items back into the backpack.
func ItemRemove(c *Context) {
	w := c.World
	for _, id := range w.Query(component.CWantsToRemoveItem) {
		item := w.Get(id, component.CWantsToRemoveItem).(component.WantsToRemoveItem).Item
		if !w.Has(item, component.CEquipped) {
			continue
		}
		w.Remove(item, component.CEquipped)
		w.Add(item, component.InBackpack{Owner: id})
		w.Add(id, component.EquipmentChanged{})
		if c.isPlayer(id) {
			c.Log.Add("You unequip %s.", c.name(item))
		}
	}
	w.Clear(component.CWantsToRemoveItem)
}
