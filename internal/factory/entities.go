// Package factory turns content table entries into entities.
package factory

import (
	"github.com/gdamore/tcell/v2"

	"shadoblade/assets"
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

// Render orders; lower draws on top.
const (
	orderPlayer = iota
	orderMob
	orderItem
	orderProp
)

const playerVision = 8

// Placement says where a new entity goes: on the map at X, Y, or into
// Owner's backpack or equipment when Owner is set.
type Placement struct {
	X, Y  int
	Owner ecs.EntityID
	Equip bool
}

// At places an entity on the map.
func At(x, y int) Placement { return Placement{X: x, Y: y} }

func (p Placement) apply(w *ecs.World, id ecs.EntityID) {
	if p.Owner == ecs.NilEntity {
		w.Add(id, component.Position{X: p.X, Y: p.Y})
		return
	}
	if p.Equip {
		if eq, ok := ecs.Fetch[component.Equippable](w, id); ok {
			w.Add(id, component.Equipped{Owner: p.Owner, Slot: eq.Slot})
			return
		}
	}
	w.Add(id, component.InBackpack{Owner: p.Owner})
}

func hexColor(c int32) tcell.Color {
	return tcell.NewHexColor(c)
}

func rgb(c int32) gamemap.RGB {
	return gamemap.RGB{
		R: float64((c>>16)&0xff) / 255,
		G: float64((c>>8)&0xff) / 255,
		B: float64(c&0xff) / 255,
	}
}

// Spawn creates the entity named by a spawn tag. It reports false for an
// unknown tag.
func Spawn(w *ecs.World, r *rng.RNG, depth int, name string, p Placement) (ecs.EntityID, bool) {
	if def, ok := assets.Mobs[name]; ok {
		return NewMob(w, r, def, p.X, p.Y), true
	}
	if def, ok := assets.Items[name]; ok {
		return NewItem(w, def, p), true
	}
	if def, ok := assets.Props[name]; ok {
		return NewProp(w, def, depth, p.X, p.Y), true
	}
	return ecs.NilEntity, false
}

// NewPlayer creates the player at (x, y) with the starting kit.
func NewPlayer(w *ecs.World, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: assets.GlyphPlayer, FG: tcell.ColorYellow, RenderOrder: orderPlayer})
	w.Add(id, component.Name{Name: "Player"})
	w.Add(id, component.Player{})
	w.Add(id, component.Faction{Name: assets.PlayerFaction})
	w.Add(id, component.BlocksTile{})
	w.Add(id, component.Viewshed{Range: playerVision, Dirty: true})
	w.Add(id, component.Initiative{})
	w.Add(id, component.HungerClock{State: component.WellFed, Duration: 20})
	w.Add(id, component.LightSource{Color: gamemap.RGB{R: 1, G: 1, B: 0.5}, Range: playerVision})

	attrs := component.Attributes{
		Might:        component.NewAttribute(11),
		Fitness:      component.NewAttribute(11),
		Quickness:    component.NewAttribute(11),
		Intelligence: component.NewAttribute(11),
	}
	w.Add(id, attrs)
	w.Add(id, component.Skills{Melee: 1, Defense: 1, Magic: 1})
	hp := component.PlayerHPAtLevel(attrs.Fitness.Value(), 1)
	mana := component.ManaAtLevel(attrs.Intelligence.Value(), 1)
	w.Add(id, component.Pools{
		HitPoints: component.Pool{Max: hp, Current: hp},
		Mana:      component.Pool{Max: mana, Current: mana},
		Level:     1,
	})

	for _, name := range assets.StartingEquipment.Equipped {
		NewItem(w, assets.Items[name], Placement{Owner: id, Equip: true})
	}
	for _, name := range assets.StartingEquipment.Carried {
		NewItem(w, assets.Items[name], Placement{Owner: id})
	}
	w.Add(id, component.EquipmentChanged{})
	return id
}

func movement(mode string) component.Movement {
	switch mode {
	case "random":
		return component.MoveRandom
	case "random_waypoint":
		return component.MoveRandomWaypoint
	}
	return component.MoveStatic
}

// npcHP rolls hit points for a creature: one d8 plus the fitness bonus per
// level, on top of a base of one.
func npcHP(r *rng.RNG, fitness, level int) int {
	hp := 1
	for range max(level, 1) {
		hp += max(1, r.RollDice(1, 8)+component.AttrBonus(fitness))
	}
	return hp
}

// NewMob creates a creature at (x, y) from its definition.
func NewMob(w *ecs.World, r *rng.RNG, def assets.MobDef, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: def.Glyph, FG: hexColor(def.Color), RenderOrder: orderMob})
	w.Add(id, component.Name{Name: def.Name})
	w.Add(id, component.Faction{Name: def.Faction})
	w.Add(id, component.BlocksTile{})
	w.Add(id, component.Viewshed{Range: def.Vision, Dirty: true})
	w.Add(id, component.MoveMode{Mode: movement(def.Movement)})
	w.Add(id, component.Initiative{Current: 2})

	attrs := component.Attributes{
		Might:        component.NewAttribute(def.Stats.Might),
		Fitness:      component.NewAttribute(def.Stats.Fitness),
		Quickness:    component.NewAttribute(def.Stats.Quickness),
		Intelligence: component.NewAttribute(def.Stats.Intelligence),
	}
	w.Add(id, attrs)
	w.Add(id, component.Skills{Melee: def.Melee, Defense: def.Defense})

	level := max(def.Level, 1)
	hp := npcHP(r, attrs.Fitness.Value(), level)
	mana := component.ManaAtLevel(attrs.Intelligence.Value(), level)
	pools := component.Pools{
		HitPoints: component.Pool{Max: hp, Current: hp},
		Mana:      component.Pool{Max: mana, Current: mana},
		Level:     level,
	}
	if d, err := rng.ParseDice(def.Gold); err == nil {
		pools.Gold = float64(d.Roll(r))
	}
	w.Add(id, pools)

	nat := component.NaturalAttackDefense{ArmorClass: def.ArmorClass}
	for _, a := range def.Attacks {
		d, err := rng.ParseDice(a.Damage)
		if err != nil {
			continue
		}
		nat.Attacks = append(nat.Attacks, component.NaturalAttack{Name: a.Name, HitBonus: a.HitBonus, Damage: d})
	}
	w.Add(id, nat)

	if def.Loot != "" {
		w.Add(id, component.LootTable{Table: def.Loot})
	}
	if def.Light > 0 {
		w.Add(id, component.LightSource{Color: rgb(def.LightColor), Range: def.Light})
	}
	for _, name := range def.Equipped {
		if item, ok := assets.Items[name]; ok {
			NewItem(w, item, Placement{Owner: id, Equip: true})
		}
	}
	w.Add(id, component.EquipmentChanged{})
	return id
}

func slotFor(name string) component.EquipmentSlot {
	switch name {
	case "shield":
		return component.SlotShield
	case "head":
		return component.SlotHead
	case "torso":
		return component.SlotTorso
	case "legs":
		return component.SlotLegs
	case "feet":
		return component.SlotFeet
	case "hands":
		return component.SlotHands
	}
	return component.SlotMelee
}

// NewItem creates an item from its definition at the given placement.
func NewItem(w *ecs.World, def assets.ItemDef, p Placement) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Renderable{Glyph: def.Glyph, FG: hexColor(def.Color), RenderOrder: orderItem})
	w.Add(id, component.Name{Name: def.Name})
	w.Add(id, component.Item{Weight: def.Weight, InitiativePenalty: def.InitiativePenalty, BaseValue: def.Value})

	if c := def.Consumable; c != nil {
		w.Add(id, component.Consumable{})
		if c.Healing > 0 {
			w.Add(id, component.ProvidesHealing{Amount: c.Healing})
		}
		if c.Damage > 0 {
			w.Add(id, component.InflictsDamage{Damage: c.Damage})
		}
		if c.Range > 0 {
			w.Add(id, component.Ranged{Range: c.Range})
		}
		if c.AreaOfEffect > 0 {
			w.Add(id, component.AreaOfEffect{Radius: c.AreaOfEffect})
		}
		if c.Confusion > 0 {
			w.Add(id, component.Confusion{Turns: c.Confusion})
		}
		if c.MagicMapping {
			w.Add(id, component.MagicMapper{})
		}
		if c.Food {
			w.Add(id, component.ProvidesFood{})
		}
	}
	if wd := def.Weapon; wd != nil {
		attr := component.AttrMight
		if wd.Attribute == "quickness" {
			attr = component.AttrQuickness
		}
		if d, err := rng.ParseDice(wd.Damage); err == nil {
			w.Add(id, component.MeleeWeapon{Attribute: attr, Damage: d, HitBonus: wd.HitBonus})
		}
		w.Add(id, component.Equippable{Slot: component.SlotMelee})
	}
	if wr := def.Wearable; wr != nil {
		slot := slotFor(wr.Slot)
		w.Add(id, component.Wearable{ArmorClass: wr.ArmorClass, Slot: slot})
		w.Add(id, component.Equippable{Slot: slot})
	}
	p.apply(w, id)
	return id
}

// NewProp creates a door, trap or fixture at (x, y). Portal destinations
// are relative to depth.
func NewProp(w *ecs.World, def assets.PropDef, depth, x, y int) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{Glyph: def.Glyph, FG: hexColor(def.Color), RenderOrder: orderProp})
	w.Add(id, component.Name{Name: def.Name})
	if def.Hidden {
		w.Add(id, component.Hidden{})
	}
	if def.BlocksTile {
		w.Add(id, component.BlocksTile{})
	}
	if def.BlocksVisibility {
		w.Add(id, component.BlocksVisibility{})
	}
	if def.Door {
		w.Add(id, component.Door{})
	}
	if t := def.Trigger; t != nil {
		w.Add(id, component.EntryTrigger{})
		if t.Damage > 0 {
			w.Add(id, component.InflictsDamage{Damage: t.Damage})
		}
		if t.TeleportDepth != 0 {
			w.Add(id, component.TeleportTo{X: -1, Y: -1, Depth: depth + t.TeleportDepth, PlayerOnly: t.PlayerOnly})
		}
		if t.SingleActivation {
			w.Add(id, component.SingleActivation{})
		}
	}
	if def.Light > 0 {
		w.Add(id, component.LightSource{Color: rgb(def.LightColor), Range: def.Light})
		w.Add(id, component.Viewshed{Range: def.Light, Dirty: true})
	}
	return id
}

// LevelSpawner creates a built level's spawn list on the current map.
type LevelSpawner struct {
	World *ecs.World
	Map   *gamemap.Map
	RNG   *rng.RNG
}

// Spawn creates the tagged entity on tile idx. Unknown tags are skipped.
func (s LevelSpawner) Spawn(idx int, name string) {
	x, y := s.Map.IdxXY(idx)
	Spawn(s.World, s.RNG, s.Map.Depth, name, At(x, y))
}
