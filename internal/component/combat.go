package component

import (
	"shadoblade/internal/ecs"
	"shadoblade/internal/rng"
)

const (
	CNaturalAttackDefense ecs.ComponentType = 24
	CMeleeWeapon          ecs.ComponentType = 25
	CWearable             ecs.ComponentType = 26
	CLootTable            ecs.ComponentType = 27
)

// WeaponAttribute selects the attribute that drives a weapon's hit roll.
type WeaponAttribute uint8

const (
	AttrMight WeaponAttribute = iota
	AttrQuickness
)

type NaturalAttack struct {
	Name     string
	HitBonus int
	Damage   rng.Dice
}

// NaturalAttackDefense holds an actor's innate armour and attacks.
type NaturalAttackDefense struct {
	ArmorClass int
	Attacks    []NaturalAttack
}

func (NaturalAttackDefense) Type() ecs.ComponentType { return CNaturalAttackDefense }

type MeleeWeapon struct {
	Attribute WeaponAttribute
	Damage    rng.Dice
	HitBonus  int
}

func (MeleeWeapon) Type() ecs.ComponentType { return CMeleeWeapon }

type Wearable struct {
	ArmorClass float64
	Slot       EquipmentSlot
}

func (Wearable) Type() ecs.ComponentType { return CWearable }

// LootTable names the drop table rolled when the entity dies.
type LootTable struct {
	Table string
}

func (LootTable) Type() ecs.ComponentType { return CLootTable }
