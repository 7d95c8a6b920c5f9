package component

import "shadoblade/internal/ecs"

const (
	CFaction    ecs.ComponentType = 16
	CViewshed   ecs.ComponentType = 17
	CMoveMode   ecs.ComponentType = 18
	CChasing    ecs.ComponentType = 19
	CInitiative ecs.ComponentType = 20
)

// Faction names the group an actor belongs to for reaction lookups.
type Faction struct {
	Name string
}

func (Faction) Type() ecs.ComponentType { return CFaction }

// Viewshed is the set of tiles an entity can currently see.
type Viewshed struct {
	Visible []int
	Range   int
	Dirty   bool
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// Movement selects what an idle actor does with its turn.
type Movement uint8

const (
	MoveStatic Movement = iota
	MoveRandom
	MoveRandomWaypoint
)

type MoveMode struct {
	Mode Movement
	// Path is the cached waypoint route, starting at the actor's tile.
	Path []int
}

func (MoveMode) Type() ecs.ComponentType { return CMoveMode }

// Chasing persists a pursuit target between turns.
type Chasing struct {
	Target    ecs.EntityID
	LastKnown int
}

func (Chasing) Type() ecs.ComponentType { return CChasing }

// Initiative counts down to the entity's next turn.
type Initiative struct {
	Current int
}

func (Initiative) Type() ecs.ComponentType { return CInitiative }
