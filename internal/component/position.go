package component

import "shadoblade/internal/ecs"

const (
	CPosition           ecs.ComponentType = 1
	COtherLevelPosition ecs.ComponentType = 2
	CEntityMoved        ecs.ComponentType = 3
)

type Position struct {
	X, Y int
}

func (Position) Type() ecs.ComponentType { return CPosition }

// OtherLevelPosition parks an entity on a level that is not currently loaded.
type OtherLevelPosition struct {
	X, Y, Depth int
}

func (OtherLevelPosition) Type() ecs.ComponentType { return COtherLevelPosition }

// EntityMoved marks an entity that changed tile this tick.
type EntityMoved struct{}

func (EntityMoved) Type() ecs.ComponentType { return CEntityMoved }
