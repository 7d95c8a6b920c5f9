package game

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/render"
	"shadoblade/internal/system"
)

// frameInterval paces redraws while particles are alive.
const frameInterval = 50 * time.Millisecond

// Run plays the game on screen until the player quits or acknowledges the
// end of the run. The caller owns the screen and finalises it.
func (s *State) Run(screen tcell.Screen) {
	r := render.NewRenderer(screen)
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			select {
			case events <- ev:
			case <-quit:
				return
			}
			if ev == nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		s.draw(r)
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				r.Resize()
			case *tcell.EventKey:
				if !s.handleKey(ev) {
					return
				}
			case nil:
				return
			}
		case now := <-ticker.C:
			system.CullParticles(s.ctx, float64(now.Sub(last).Milliseconds()))
			last = now
		}
	}
}

// handleKey applies one key press. It reports false when the session
// should end.
func (s *State) handleKey(ev *tcell.EventKey) bool {
	c := s.ctx
	switch c.Mode {
	case system.GameOver:
		return false
	case system.ShowInventory, system.ShowDropItem, system.ShowRemoveItem:
		if i, ok := menuChoice(ev); ok {
			s.Choose(i)
			return true
		}
	}
	a := keyToAction(ev)
	if a == ActionQuit && c.Mode == system.AwaitingInput {
		return false
	}
	s.Act(a)
	return true
}

func (s *State) draw(r *render.Renderer) {
	c := s.ctx
	if pos, ok := s.playerPos(); ok {
		r.CenterOn(pos.X, pos.Y)
	}
	r.DrawFrame(c.World, c.Map)
	switch c.Mode {
	case system.ShowInventory:
		r.DrawMenu("Inventory", s.itemNames(s.MenuItems()))
	case system.ShowDropItem:
		r.DrawMenu("Drop which item?", s.itemNames(s.MenuItems()))
	case system.ShowRemoveItem:
		r.DrawMenu("Remove which item?", s.itemNames(s.MenuItems()))
	case system.ShowTargeting:
		r.DrawCursor(s.cursor.X, s.cursor.Y)
	}
	status := render.StatusLine(c.World, c.Player, c.Map)
	if c.Mode == system.GameOver {
		status = "You are dead. Press any key."
	}
	r.DrawHUD(status, c.Log.Last(4))
}

func (s *State) itemNames(items []ecs.EntityID) []string {
	out := make([]string, 0, len(items))
	for _, id := range items {
		name := "something"
		if n, ok := ecs.Fetch[component.Name](s.ctx.World, id); ok {
			name = n.Name
		}
		if eq, ok := ecs.Fetch[component.Equipped](s.ctx.World, id); ok {
			name = fmt.Sprintf("%s (%s)", name, eq.Slot)
		}
		out = append(out, name)
	}
	return out
}
