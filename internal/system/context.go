// Package system runs one simulation tick as a fixed sequence of phases.
// Every phase receives the same Context; only IndexMap rewrites the
// spatial index wholesale, and movement phases update it incrementally.
package system

import (
	"shadoblade/assets"
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/gamelog"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
	"shadoblade/internal/spatial"
)

// RunMode is the state of the outer game loop.
type RunMode uint8

const (
	AwaitingInput RunMode = iota
	PreRun
	Ticking
	ShowInventory
	ShowDropItem
	ShowRemoveItem
	ShowTargeting
	MagicMapReveal
	NextLevel
	PreviousLevel
	TeleportingToOtherLevel
	GameOver
	MapGeneration
)

func (m RunMode) String() string {
	switch m {
	case AwaitingInput:
		return "awaiting input"
	case PreRun:
		return "pre-run"
	case Ticking:
		return "ticking"
	case ShowInventory:
		return "inventory"
	case ShowDropItem:
		return "drop item"
	case ShowRemoveItem:
		return "remove item"
	case ShowTargeting:
		return "targeting"
	case MagicMapReveal:
		return "magic map reveal"
	case NextLevel:
		return "next level"
	case PreviousLevel:
		return "previous level"
	case TeleportingToOtherLevel:
		return "teleporting"
	case GameOver:
		return "game over"
	case MapGeneration:
		return "map generation"
	}
	return "unknown"
}

// Context is the shared state every phase reads and writes.
type Context struct {
	World    *ecs.World
	Map      *gamemap.Map
	Index    *spatial.Index
	RNG      *rng.RNG
	Log      *gamelog.Log
	Factions assets.FactionTable
	Player   ecs.EntityID
	Mode     RunMode
	Turns    *TurnQueue

	// PendingTeleport is where the player is headed when Mode is
	// TeleportingToOtherLevel.
	PendingTeleport *component.ApplyTeleport

	// Particles are hit markers requested this tick, spawned by
	// SpawnParticles.
	Particles []ParticleRequest
}

// NewContext returns a context for m with an empty index and turn queue.
func NewContext(w *ecs.World, m *gamemap.Map, r *rng.RNG, log *gamelog.Log, player ecs.EntityID) *Context {
	if log == nil {
		log = gamelog.New()
	}
	return &Context{
		World:    w,
		Map:      m,
		Index:    spatial.New(m.Size()),
		RNG:      r,
		Log:      log,
		Factions: assets.Factions,
		Player:   player,
		Mode:     PreRun,
		Turns:    NewTurnQueue(),
	}
}

// SetMap switches the context to a new level. The index is resized on
// the next IndexMap.
func (c *Context) SetMap(m *gamemap.Map) {
	c.Map = m
	c.Index.Clear(m.Size())
}

func (c *Context) isPlayer(id ecs.EntityID) bool { return id == c.Player }

func (c *Context) name(id ecs.EntityID) string {
	if n, ok := ecs.Fetch[component.Name](c.World, id); ok {
		return n.Name
	}
	return "something"
}

func (c *Context) position(id ecs.EntityID) (component.Position, int, bool) {
	p, ok := ecs.Fetch[component.Position](c.World, id)
	if !ok {
		return p, 0, false
	}
	return p, c.Map.XYIdx(p.X, p.Y), true
}

// graph is the pathing view of the current level with occupancy from the
// index.
func (c *Context) graph() gamemap.Graph {
	return c.Map.NewGraph(c.Index.IsBlocked)
}
