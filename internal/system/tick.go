package system

// Phase is one step of a tick.
type Phase func(*Context)

// Phases is the order a tick runs in. Each phase finishes before the next
// starts.
var Phases = []Phase{
	IndexMap,
	Visibility,
	Encumbrance,
	Initiative,
	TurnStatus,
	AdjacentAI,
	VisibleAI,
	ApproachAI,
	FleeAI,
	ChaseAI,
	DefaultMoveAI,
	Movement,
	Triggers,
	Melee,
	ApplyDamage,
	ItemCollection,
	ItemUse,
	ItemDrop,
	ItemRemove,
	Hunger,
	SpawnParticles,
	Lighting,
	DeleteTheDead,
}

// RunTick runs every phase once.
func RunTick(c *Context) {
	for _, phase := range Phases {
		phase(c)
	}
}
