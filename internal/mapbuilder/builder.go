// Package mapbuilder produces finished levels by running an initial
// generator followed by an ordered chain of transform stages over a shared
// BuildData.
package mapbuilder

import (
	"errors"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

var (
	// ErrNoStarter is the panic value when a chain is built without an
	// initial builder.
	ErrNoStarter = errors.New("mapbuilder: chain has no initial builder")
	// ErrDuplicateStarter is the panic value when a second initial builder
	// is assigned.
	ErrDuplicateStarter = errors.New("mapbuilder: chain already has an initial builder")
)

// Spawn asks the spawner to create the tagged entity on a tile.
type Spawn struct {
	Idx  int
	Name string
}

// BuildData is the in-progress state shared by every stage of a chain.
type BuildData struct {
	Map       *gamemap.Map
	Start     *gamemap.Point
	Rooms     []gamemap.Rect
	Corridors [][]int
	SpawnList []Spawn
	History   []*gamemap.Map
	Width     int
	Height    int

	// Snapshots enables TakeSnapshot. History never feeds back into
	// generation.
	Snapshots bool
}

// TakeSnapshot appends a fully revealed copy of the current map to History.
func (b *BuildData) TakeSnapshot() {
	if !b.Snapshots {
		return
	}
	snap := b.Map.Clone()
	snap.RevealAll()
	b.History = append(b.History, snap)
}

// StartIdx returns the tile index of the starting position.
func (b *BuildData) StartIdx() (int, bool) {
	if b.Start == nil {
		return 0, false
	}
	return b.Map.XYIdx(b.Start.X, b.Start.Y), true
}

// Builder is one stage of a chain.
type Builder interface {
	Build(r *rng.RNG, b *BuildData)
}

// BuilderFunc adapts a function to the Builder interface.
type BuilderFunc func(r *rng.RNG, b *BuildData)

// Build calls f(r, b).
func (f BuilderFunc) Build(r *rng.RNG, b *BuildData) { f(r, b) }

// Spawner turns spawn list entries into entities.
type Spawner interface {
	Spawn(idx int, name string)
}

// Chain is an initial builder plus an ordered list of transform stages.
type Chain struct {
	starter  Builder
	builders []Builder
	Data     BuildData
}

// NewChain returns an empty chain for a level of the given size.
func NewChain(depth, width, height int, name string) *Chain {
	return &Chain{
		Data: BuildData{
			Map:    gamemap.New(depth, width, height, name),
			Width:  width,
			Height: height,
		},
	}
}

// StartWith sets the initial builder. Assigning a second one panics with
// ErrDuplicateStarter.
func (c *Chain) StartWith(b Builder) *Chain {
	if c.starter != nil {
		panic(ErrDuplicateStarter)
	}
	c.starter = b
	return c
}

// With appends a transform stage.
func (c *Chain) With(b Builder) *Chain {
	c.builders = append(c.builders, b)
	return c
}

// Build runs the initial builder and then every stage in order. It panics
// with ErrNoStarter if no initial builder was set.
func (c *Chain) Build(r *rng.RNG) {
	if c.starter == nil {
		panic(ErrNoStarter)
	}
	c.starter.Build(r, &c.Data)
	for _, b := range c.builders {
		b.Build(r, &c.Data)
	}
}

// SpawnEntities hands every spawn list entry to s in order.
func (c *Chain) SpawnEntities(s Spawner) {
	for _, sp := range c.Data.SpawnList {
		s.Spawn(sp.Idx, sp.Name)
	}
}
