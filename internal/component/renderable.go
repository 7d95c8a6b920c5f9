package component

import (
	"github.com/gdamore/tcell/v2"

	"shadoblade/internal/ecs"
)

const CRenderable ecs.ComponentType = 4

// Renderable describes how an entity is drawn.
type Renderable struct {
	Glyph string
	FG    tcell.Color
	// Lower orders draw on top.
	RenderOrder int
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
