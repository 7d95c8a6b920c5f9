package system

import (
	"github.com/gdamore/tcell/v2"

	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
)

// Particle glyphs and colours.
const (
	glyphHit      = "‼"
	glyphMiss     = "‼"
	glyphConfused = "?"
	glyphTrap     = "‼"
	glyphHeal     = "♥"
	glyphLevelUp  = "░"

	particleMs = 200.0
)

var (
	colorHit      = tcell.ColorOrange
	colorMiss     = tcell.ColorBlue
	colorConfused = tcell.ColorFuchsia
	colorTrap     = tcell.ColorOrange
	colorHeal     = tcell.ColorGreen
	colorLevelUp  = tcell.ColorGold
)

// ParticleRequest asks for a short-lived marker at a tile.
type ParticleRequest struct {
	X, Y       int
	Glyph      string
	FG         tcell.Color
	LifetimeMs float64
}

func (c *Context) requestParticle(at ecs.EntityID, glyph string, fg tcell.Color, ms float64) {
	if pos, ok := ecs.Fetch[component.Position](c.World, at); ok {
		c.Particles = append(c.Particles, ParticleRequest{X: pos.X, Y: pos.Y, Glyph: glyph, FG: fg, LifetimeMs: ms})
	}
}

// SpawnParticles turns this tick's requests into entities.
func SpawnParticles(c *Context) {
	for _, p := range c.Particles {
		id := c.World.CreateEntity()
		c.World.Add(id, component.Position{X: p.X, Y: p.Y})
		c.World.Add(id, component.Renderable{Glyph: p.Glyph, FG: p.FG, RenderOrder: -1})
		c.World.Add(id, component.ParticleLifetime{LifetimeMs: p.LifetimeMs})
	}
	c.Particles = c.Particles[:0]
}

// CullParticles ages every particle by ms and deletes the expired ones.
// It runs once per rendered frame rather than per tick.
func CullParticles(c *Context, ms float64) {
	w := c.World
	for _, id := range w.Query(component.CParticleLifetime) {
		p := w.Get(id, component.CParticleLifetime).(component.ParticleLifetime)
		p.LifetimeMs -= ms
		if p.LifetimeMs > 0 {
			w.Add(id, p)
			continue
		}
		c.unindex(id)
		w.DestroyEntity(id)
	}
}

// hungerTurns is how long each hunger stage lasts, in turns.
const hungerTurns = 200

// Hunger advances the hunger clock of every actor that had a turn this
// tick. A starving actor takes one point of damage per turn.
func Hunger(c *Context) {
	w := c.World
	for _, id := range c.Turns.Granted() {
		clock, ok := ecs.Fetch[component.HungerClock](w, id)
		if !ok {
			continue
		}
		clock.Duration--
		if clock.Duration < 1 {
			player := c.isPlayer(id)
			switch clock.State {
			case component.WellFed:
				clock.State, clock.Duration = component.Normal, hungerTurns
				if player {
					c.Log.Add("You are no longer well fed.")
				}
			case component.Normal:
				clock.State, clock.Duration = component.Hungry, hungerTurns
				if player {
					c.Log.Add("You are hungry.")
				}
			case component.Hungry:
				clock.State, clock.Duration = component.Starving, hungerTurns
				if player {
					c.Log.Add("You are starving!")
				}
			case component.Starving:
				clock.Duration = 0
				component.QueueDamage(w, id, 1, false)
				if player {
					c.Log.Add("Your hunger pangs are getting painful! You suffer 1 hp damage.")
				}
			}
		}
		w.Add(id, clock)
	}
}
