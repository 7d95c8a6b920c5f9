package component

import (
	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
)

const (
	CProvidesHealing  ecs.ComponentType = 42
	CProvidesFood     ecs.ComponentType = 43
	CInflictsDamage   ecs.ComponentType = 44
	CAreaOfEffect     ecs.ComponentType = 45
	CRanged           ecs.ComponentType = 46
	CConfusion        ecs.ComponentType = 47
	CHungerClock      ecs.ComponentType = 48
	CTeleportTo       ecs.ComponentType = 49
	CLightSource      ecs.ComponentType = 50
	CParticleLifetime ecs.ComponentType = 51
)

type ProvidesHealing struct {
	Amount int
}

func (ProvidesHealing) Type() ecs.ComponentType { return CProvidesHealing }

type ProvidesFood struct{}

func (ProvidesFood) Type() ecs.ComponentType { return CProvidesFood }

type InflictsDamage struct {
	Damage int
}

func (InflictsDamage) Type() ecs.ComponentType { return CInflictsDamage }

type AreaOfEffect struct {
	Radius int
}

func (AreaOfEffect) Type() ecs.ComponentType { return CAreaOfEffect }

type Ranged struct {
	Range int
}

func (Ranged) Type() ecs.ComponentType { return CRanged }

// Confusion on an item is the effect it applies; on an actor it is the
// number of turns left.
type Confusion struct {
	Turns int
}

func (Confusion) Type() ecs.ComponentType { return CConfusion }

type HungerState uint8

const (
	WellFed HungerState = iota
	Normal
	Hungry
	Starving
)

func (h HungerState) String() string {
	switch h {
	case WellFed:
		return "Well Fed"
	case Normal:
		return "Normal"
	case Hungry:
		return "Hungry"
	}
	return "Starving"
}

type HungerClock struct {
	State    HungerState
	Duration int
}

func (HungerClock) Type() ecs.ComponentType { return CHungerClock }

// TeleportTo sends whoever triggers it to another place. A negative X places
// the traveller at the destination level's start.
type TeleportTo struct {
	X, Y, Depth int
	PlayerOnly  bool
}

func (TeleportTo) Type() ecs.ComponentType { return CTeleportTo }

type LightSource struct {
	Color gamemap.RGB
	Range int
}

func (LightSource) Type() ecs.ComponentType { return CLightSource }

type ParticleLifetime struct {
	LifetimeMs float64
}

func (ParticleLifetime) Type() ecs.ComponentType { return CParticleLifetime }
