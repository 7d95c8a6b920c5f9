package system

import (
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/rng"
)

// baseArmorClass applies to defenders without natural armour.
const baseArmorClass = 10

// AttackHits decides a melee roll. A natural 1 always misses and a natural
// 20 always hits; otherwise the modified roll must beat the defence.
func AttackHits(natural, modified, defense int) bool {
	switch natural {
	case 1:
		return false
	case 20:
		return true
	}
	return modified > defense
}

type weapon struct {
	name      string
	attribute component.WeaponAttribute
	damage    rng.Dice
	hitBonus  int
}

var fists = weapon{name: "punches", attribute: component.AttrMight, damage: rng.Dice{N: 1, Faces: 4}}

// weaponOf returns the attack an actor uses: its equipped melee weapon,
// otherwise one of its natural attacks picked at random, otherwise fists.
func (c *Context) weaponOf(id ecs.EntityID) weapon {
	w := c.World
	for _, item := range w.Query(component.CEquipped, component.CMeleeWeapon) {
		eq := w.Get(item, component.CEquipped).(component.Equipped)
		if eq.Owner != id || eq.Slot != component.SlotMelee {
			continue
		}
		mw := w.Get(item, component.CMeleeWeapon).(component.MeleeWeapon)
		return weapon{name: "hits", attribute: mw.Attribute, damage: mw.Damage, hitBonus: mw.HitBonus}
	}
	if nat, ok := ecs.Fetch[component.NaturalAttackDefense](w, id); ok && len(nat.Attacks) > 0 {
		a := nat.Attacks[0]
		if n := len(nat.Attacks); n > 1 {
			a = nat.Attacks[c.RNG.RollDice(1, n)-1]
		}
		return weapon{name: a.Name, attribute: component.AttrMight, damage: a.Damage, hitBonus: a.HitBonus}
	}
	return fists
}

// armorClass is the value an attack roll has to beat.
func (c *Context) armorClass(id ecs.EntityID) int {
	w := c.World
	ac := baseArmorClass
	if nat, ok := ecs.Fetch[component.NaturalAttackDefense](w, id); ok {
		ac = nat.ArmorClass
	}
	if attrs, ok := ecs.Fetch[component.Attributes](w, id); ok {
		ac += attrs.Quickness.Bonus
	}
	if skills, ok := ecs.Fetch[component.Skills](w, id); ok {
		ac += skills.Defense
	}
	var armour float64
	for _, item := range w.Query(component.CEquipped, component.CWearable) {
		if w.Get(item, component.CEquipped).(component.Equipped).Owner == id {
			armour += w.Get(item, component.CWearable).(component.Wearable).ArmorClass
		}
	}
	return ac + int(armour)
}

func alive(w *ecs.World, id ecs.EntityID) bool {
	pools, ok := ecs.Fetch[component.Pools](w, id)
	return ok && pools.HitPoints.Current > 0
}

// Melee resolves every attack intent. Hits queue damage on the target;
// nothing is subtracted until ApplyDamage.
func Melee(c *Context) {
	w := c.World
	for _, id := range w.Query(component.CWantsToMelee) {
		target := w.Get(id, component.CWantsToMelee).(component.WantsToMelee).Target
		if !alive(w, id) || !alive(w, target) {
			continue
		}
		attrs, _ := ecs.Fetch[component.Attributes](w, id)
		skills, _ := ecs.Fetch[component.Skills](w, id)
		wpn := c.weaponOf(id)

		attrBonus := attrs.Might.Bonus
		if wpn.attribute == component.AttrQuickness {
			attrBonus = attrs.Quickness.Bonus
		}
		status := 0
		if clock, ok := ecs.Fetch[component.HungerClock](w, id); ok && clock.State == component.WellFed {
			status = 1
		}

		natural := c.RNG.RollDice(1, 20)
		modified := natural + attrBonus + skills.Melee + wpn.hitBonus + status
		attacker, victim := c.name(id), c.name(target)

		switch {
		case AttackHits(natural, modified, c.armorClass(target)):
			dmg := max(0, wpn.damage.Roll(c.RNG)+attrs.Might.Bonus+skills.Melee)
			component.QueueDamage(w, target, dmg, c.isPlayer(id))
			c.Log.Add("%s %s %s, for %d hp.", attacker, wpn.name, victim, dmg)
			c.requestParticle(target, glyphHit, colorHit, particleMs)
		case natural == 1:
			c.Log.Add("%s considers attacking %s, but misjudges the timing.", attacker, victim)
			c.requestParticle(target, glyphMiss, colorMiss, particleMs)
		default:
			c.Log.Add("%s attacks %s, but can't connect.", attacker, victim)
			c.requestParticle(target, glyphMiss, colorMiss, particleMs)
		}
	}
	w.Clear(component.CWantsToMelee)
}

// ApplyDamage subtracts the damage queued on each victim, marks bloodstains
// and credits the player for kills. A victim reduced below one hit point
// leaves the spatial index at once so nothing targets it again this tick;
// DeleteTheDead removes it at the end of the tick.
func ApplyDamage(c *Context) {
	w := c.World
	var xpGain int
	var goldGain float64
	for _, id := range w.Query(component.CSufferDamage) {
		sd := w.Get(id, component.CSufferDamage).(component.SufferDamage)
		pools, ok := ecs.Fetch[component.Pools](w, id)
		if !ok || pools.HitPoints.Current < 1 || pools.GodMode {
			continue
		}
		total, fromPlayer := 0, false
		for _, d := range sd.Amounts {
			total += d.Amount
			fromPlayer = fromPlayer || d.FromPlayer
		}
		pools.HitPoints.Current -= total
		w.Add(id, pools)
		if _, idx, ok := c.position(id); ok && total > 0 {
			c.Map.Bloodstains.Put(idx)
		}
		if pools.HitPoints.Current >= 1 {
			continue
		}
		c.unindex(id)
		if fromPlayer && !c.isPlayer(id) {
			xpGain += 100 * pools.Level
			goldGain += pools.Gold
		}
	}
	w.Clear(component.CSufferDamage)

	if xpGain > 0 || goldGain > 0 {
		c.awardPlayer(xpGain, goldGain)
	}
}

// awardPlayer adds experience and gold. Reaching the next threshold raises
// the player one level and refills both pools.
func (c *Context) awardPlayer(xp int, gold float64) {
	w := c.World
	pools, ok := ecs.Fetch[component.Pools](w, c.Player)
	if !ok {
		return
	}
	pools.XP += xp
	pools.Gold += gold
	if pools.XP >= component.XPToLevel(pools.Level) {
		pools.Level++
		c.Log.Add("Congratulations, you are now level %d!", pools.Level)
		attrs, _ := ecs.Fetch[component.Attributes](w, c.Player)
		pools.HitPoints.Max = component.PlayerHPAtLevel(attrs.Fitness.Value(), pools.Level)
		pools.HitPoints.Current = pools.HitPoints.Max
		pools.Mana.Max = component.ManaAtLevel(attrs.Intelligence.Value(), pools.Level)
		pools.Mana.Current = pools.Mana.Max
		c.requestParticle(c.Player, glyphLevelUp, colorLevelUp, particleMs)
	}
	w.Add(c.Player, pools)
}
