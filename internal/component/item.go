package component

import "shadoblade/internal/ecs"

const (
	CItem       ecs.ComponentType = 38
	CInBackpack ecs.ComponentType = 39
	CEquippable ecs.ComponentType = 40
	CEquipped   ecs.ComponentType = 41
)

// EquipmentSlot is where an equippable item is worn.
type EquipmentSlot uint8

const (
	SlotMelee EquipmentSlot = iota
	SlotShield
	SlotHead
	SlotTorso
	SlotLegs
	SlotFeet
	SlotHands
)

func (s EquipmentSlot) String() string {
	switch s {
	case SlotMelee:
		return "melee"
	case SlotShield:
		return "shield"
	case SlotHead:
		return "head"
	case SlotTorso:
		return "torso"
	case SlotLegs:
		return "legs"
	case SlotFeet:
		return "feet"
	case SlotHands:
		return "hands"
	}
	return "unknown"
}

type Item struct {
	Weight            float64
	InitiativePenalty float64
	BaseValue         float64
}

func (Item) Type() ecs.ComponentType { return CItem }

type InBackpack struct {
	Owner ecs.EntityID
}

func (InBackpack) Type() ecs.ComponentType { return CInBackpack }

type Equippable struct {
	Slot EquipmentSlot
}

func (Equippable) Type() ecs.ComponentType { return CEquippable }

type Equipped struct {
	Owner ecs.EntityID
	Slot  EquipmentSlot
}

func (Equipped) Type() ecs.ComponentType { return CEquipped }
