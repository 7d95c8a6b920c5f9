package component

import "shadoblade/internal/ecs"

const (
	CName             ecs.ComponentType = 5
	CPlayer           ecs.ComponentType = 6
	CBlocksTile       ecs.ComponentType = 7
	CBlocksVisibility ecs.ComponentType = 8
	CHidden           ecs.ComponentType = 9
	CSingleActivation ecs.ComponentType = 10
	CEntryTrigger     ecs.ComponentType = 11
	CDoor             ecs.ComponentType = 12
	CEquipmentChanged ecs.ComponentType = 13
	CMagicMapper      ecs.ComponentType = 14
	CConsumable       ecs.ComponentType = 15
)

type Name struct {
	Name string
}

func (Name) Type() ecs.ComponentType { return CName }

type Player struct{}

func (Player) Type() ecs.ComponentType { return CPlayer }

// BlocksTile prevents other actors from entering the entity's tile.
type BlocksTile struct{}

func (BlocksTile) Type() ecs.ComponentType { return CBlocksTile }

// BlocksVisibility makes the entity's tile opaque.
type BlocksVisibility struct{}

func (BlocksVisibility) Type() ecs.ComponentType { return CBlocksVisibility }

// Hidden entities are not drawn until spotted or triggered.
type Hidden struct{}

func (Hidden) Type() ecs.ComponentType { return CHidden }

// SingleActivation triggers are deleted after firing once.
type SingleActivation struct{}

func (SingleActivation) Type() ecs.ComponentType { return CSingleActivation }

// EntryTrigger fires when an entity steps onto its tile.
type EntryTrigger struct{}

func (EntryTrigger) Type() ecs.ComponentType { return CEntryTrigger }

type Door struct {
	Open bool
}

func (Door) Type() ecs.ComponentType { return CDoor }

// EquipmentChanged asks the encumbrance pass to recompute an actor's load.
type EquipmentChanged struct{}

func (EquipmentChanged) Type() ecs.ComponentType { return CEquipmentChanged }

type MagicMapper struct{}

func (MagicMapper) Type() ecs.ComponentType { return CMagicMapper }

type Consumable struct{}

func (Consumable) Type() ecs.ComponentType { return CConsumable }
