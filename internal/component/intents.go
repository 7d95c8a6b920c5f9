package component

import (
	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
)

// Intents live only until the phase that consumes them has run.
const (
	CWantsToApproach   ecs.ComponentType = 28
	CWantsToFlee       ecs.ComponentType = 29
	CWantsToMelee      ecs.ComponentType = 30
	CApplyMove         ecs.ComponentType = 31
	CApplyTeleport     ecs.ComponentType = 32
	CSufferDamage      ecs.ComponentType = 33
	CWantsToPickupItem ecs.ComponentType = 34
	CWantsToUseItem    ecs.ComponentType = 35
	CWantsToDropItem   ecs.ComponentType = 36
	CWantsToRemoveItem ecs.ComponentType = 37
)

type WantsToApproach struct {
	Idx int
}

func (WantsToApproach) Type() ecs.ComponentType { return CWantsToApproach }

type WantsToFlee struct {
	Indices []int
}

func (WantsToFlee) Type() ecs.ComponentType { return CWantsToFlee }

type WantsToMelee struct {
	Target ecs.EntityID
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }

type ApplyMove struct {
	Dest int
}

func (ApplyMove) Type() ecs.ComponentType { return CApplyMove }

type ApplyTeleport struct {
	X, Y, Depth int
}

func (ApplyTeleport) Type() ecs.ComponentType { return CApplyTeleport }

// Damage is one queued hit.
type Damage struct {
	Amount     int
	FromPlayer bool
}

type SufferDamage struct {
	Amounts []Damage
}

func (SufferDamage) Type() ecs.ComponentType { return CSufferDamage }

// QueueDamage appends a hit to the victim's pending damage.
func QueueDamage(w *ecs.World, victim ecs.EntityID, amount int, fromPlayer bool) {
	sd, _ := ecs.Fetch[SufferDamage](w, victim)
	sd.Amounts = append(sd.Amounts, Damage{Amount: amount, FromPlayer: fromPlayer})
	w.Add(victim, sd)
}

type WantsToPickupItem struct {
	Item ecs.EntityID
}

func (WantsToPickupItem) Type() ecs.ComponentType { return CWantsToPickupItem }

type WantsToUseItem struct {
	Item   ecs.EntityID
	Target *gamemap.Point
}

func (WantsToUseItem) Type() ecs.ComponentType { return CWantsToUseItem }

type WantsToDropItem struct {
	Item ecs.EntityID
}

func (WantsToDropItem) Type() ecs.ComponentType { return CWantsToDropItem }

type WantsToRemoveItem struct {
	Item ecs.EntityID
}

func (WantsToRemoveItem) Type() ecs.ComponentType { return CWantsToRemoveItem }
