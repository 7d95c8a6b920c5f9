package system

import (
	"math"

	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
)

const (
	// RelevanceRange is how far from the player an actor may be and still
	// take its turn.
	RelevanceRange = 20.0

	// overburdenPenalty is added to an overloaded actor's initiative.
	overburdenPenalty = 4
)

// Encumbrance recomputes carried weight and initiative penalty for every
// actor whose equipment changed.
func Encumbrance(c *Context) {
	w := c.World
	changed := w.Query(component.CEquipmentChanged)
	if len(changed) == 0 {
		return
	}
	type load struct{ weight, penalty float64 }
	loads := make(map[ecs.EntityID]load, len(changed))
	for _, id := range changed {
		loads[id] = load{}
	}
	add := func(owner ecs.EntityID, item component.Item) {
		if l, ok := loads[owner]; ok {
			l.weight += item.Weight
			l.penalty += item.InitiativePenalty
			loads[owner] = l
		}
	}
	for _, id := range w.Query(component.CItem, component.CEquipped) {
		add(w.Get(id, component.CEquipped).(component.Equipped).Owner, w.Get(id, component.CItem).(component.Item))
	}
	for _, id := range w.Query(component.CItem, component.CInBackpack) {
		add(w.Get(id, component.CInBackpack).(component.InBackpack).Owner, w.Get(id, component.CItem).(component.Item))
	}

	for _, id := range changed {
		w.Remove(id, component.CEquipmentChanged)
		pools, ok := ecs.Fetch[component.Pools](w, id)
		if !ok {
			continue
		}
		l := loads[id]
		pools.TotalWeight = l.weight
		pools.TotalInitiativePenalty = l.penalty
		if attrs, ok := ecs.Fetch[component.Attributes](w, id); ok {
			if l.weight > component.CarryCapacity(attrs.Might) {
				pools.TotalInitiativePenalty += overburdenPenalty
				if c.isPlayer(id) {
					c.Log.Add("You are overburdened, and suffering an initiative penalty.")
				}
			}
		}
		w.Add(id, pools)
	}
}

// Initiative counts every actor down by one and grants a turn to those
// that reach zero. It does nothing unless the simulation is ticking.
//
// An expired countdown is re-rolled to 6+1d6, less the actor's quickness
// bonus, plus its whole initiative penalty. The player's turn switches the
// run mode to AwaitingInput; any other actor further than RelevanceRange
// from the player has its turn suppressed.
func Initiative(c *Context) {
	if c.Mode != Ticking {
		return
	}
	w := c.World
	c.Turns.Reset()
	_, playerIdx, playerPlaced := c.position(c.Player)

	for _, id := range w.Query(component.CInitiative, component.CPosition) {
		ini := w.Get(id, component.CInitiative).(component.Initiative)
		ini.Current--
		if ini.Current >= 1 {
			w.Add(id, ini)
			continue
		}
		ini.Current = 6 + c.RNG.RollDice(1, 6)
		if attrs, ok := ecs.Fetch[component.Attributes](w, id); ok {
			ini.Current -= attrs.Quickness.Bonus
		}
		if pools, ok := ecs.Fetch[component.Pools](w, id); ok {
			ini.Current += int(math.Floor(pools.TotalInitiativePenalty))
		}
		w.Add(id, ini)

		if c.isPlayer(id) {
			c.Mode = AwaitingInput
			c.Turns.Grant(id)
			continue
		}
		if playerPlaced {
			_, idx, _ := c.position(id)
			if c.Map.Distance(idx, playerIdx) > RelevanceRange {
				c.Turns.Suppress(id)
				continue
			}
		}
		c.Turns.Grant(id)
	}
}

// TurnStatus takes the turn from confused actors and counts their
// confusion down.
func TurnStatus(c *Context) {
	w := c.World
	for _, id := range c.Turns.Pending() {
		conf, ok := ecs.Fetch[component.Confusion](w, id)
		if !ok {
			continue
		}
		conf.Turns--
		if conf.Turns < 1 {
			w.Remove(id, component.CConfusion)
			c.Log.Add("%s is no longer confused!", c.name(id))
		} else {
			w.Add(id, conf)
			c.Log.Add("%s is confused.", c.name(id))
			c.requestParticle(id, glyphConfused, colorConfused, particleMs)
		}
		c.Turns.Claim(id)
		if c.isPlayer(id) {
			c.Mode = Ticking
		}
	}
}
