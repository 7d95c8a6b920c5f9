package game

import (
	"shadoblade/assets"
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/system"
)

// Act applies one player action and runs the simulation until the player
// is needed again. Actions that make no sense in the current mode are
// ignored.
func (s *State) Act(a Action) {
	c := s.ctx
	switch c.Mode {
	case system.AwaitingInput:
		s.playerAction(a)
	case system.ShowInventory, system.ShowDropItem, system.ShowRemoveItem:
		if a == ActionCancel {
			c.Mode = system.AwaitingInput
		}
		return
	case system.ShowTargeting:
		s.aim(a)
	default:
		return
	}
	if c.Mode == system.Ticking || c.Mode == system.NextLevel || c.Mode == system.PreviousLevel {
		s.stats.Turns++
	}
	s.advance()
}

func (s *State) playerAction(a Action) {
	c := s.ctx
	if dx, dy, ok := direction(a); ok {
		s.tryMove(dx, dy)
		return
	}
	switch a {
	case ActionWait:
		s.skipTurn()
	case ActionPickup:
		s.pickup()
	case ActionInventory:
		c.Mode = system.ShowInventory
	case ActionDrop:
		c.Mode = system.ShowDropItem
	case ActionRemove:
		c.Mode = system.ShowRemoveItem
	case ActionDescend:
		if s.standingOn(gamemap.DownStairs) {
			c.Mode = system.NextLevel
		} else {
			c.Log.Add("There is no way down from here.")
		}
	case ActionAscend:
		if s.standingOn(gamemap.UpStairs) {
			c.Mode = system.PreviousLevel
		} else {
			c.Log.Add("There is no way up from here.")
		}
	}
}

func (s *State) standingOn(t gamemap.TileType) bool {
	pos, ok := s.playerPos()
	return ok && s.ctx.Map.InBounds(pos.X, pos.Y) && s.ctx.Map.At(pos.X, pos.Y) == t
}

// tryMove attacks whatever fights on the destination, opens a closed door
// there, or steps onto it. Bumping into a wall costs nothing.
func (s *State) tryMove(dx, dy int) {
	c := s.ctx
	w, m := c.World, c.Map
	pos, ok := s.playerPos()
	if !ok {
		return
	}
	x, y := pos.X+dx, pos.Y+dy
	if x < 1 || x > m.Width-2 || y < 1 || y > m.Height-2 {
		return
	}
	dest := m.XYIdx(x, y)

	for _, id := range c.Index.TileContent(dest) {
		if id == c.Player {
			continue
		}
		if w.Has(id, component.CPools) {
			w.Add(c.Player, component.WantsToMelee{Target: id})
			c.Mode = system.Ticking
			return
		}
		if door, ok := ecs.Fetch[component.Door](w, id); ok && !door.Open {
			s.openDoor(id, dest)
			c.Mode = system.Ticking
			return
		}
	}
	if c.Index.IsBlocked(dest) {
		return
	}
	w.Add(c.Player, component.ApplyMove{Dest: dest})
	c.Mode = system.Ticking
}

func (s *State) openDoor(door ecs.EntityID, idx int) {
	c := s.ctx
	w := c.World
	w.Add(door, component.Door{Open: true})
	w.Remove(door, component.CBlocksTile)
	w.Remove(door, component.CBlocksVisibility)
	if r, ok := ecs.Fetch[component.Renderable](w, door); ok {
		r.Glyph = assets.GlyphDoorOpen
		w.Add(door, r)
	}
	if _, found := c.Index.RemoveEntity(door, idx); found {
		c.Index.IndexEntity(door, idx, false)
	}
	c.Map.ViewBlocked.Remove(idx)
	if vs, ok := ecs.Fetch[component.Viewshed](w, c.Player); ok {
		vs.Dirty = true
		w.Add(c.Player, vs)
	}
	c.Log.Add("You open the door.")
}

// skipTurn passes the turn, healing a point when nothing hostile is in
// view.
func (s *State) skipTurn() {
	c := s.ctx
	w := c.World
	c.Mode = system.Ticking
	vs, ok := ecs.Fetch[component.Viewshed](w, c.Player)
	if !ok {
		return
	}
	for _, idx := range vs.Visible {
		for _, id := range c.Index.TileContent(idx) {
			f, ok := ecs.Fetch[component.Faction](w, id)
			if ok && id != c.Player && c.Factions.Reaction(assets.PlayerFaction, f.Name) == assets.Attack {
				return
			}
		}
	}
	if pools, ok := ecs.Fetch[component.Pools](w, c.Player); ok && pools.HitPoints.Current < pools.HitPoints.Max {
		pools.HitPoints.Current++
		w.Add(c.Player, pools)
	}
}

// pickup asks to collect an item on the player's tile.
func (s *State) pickup() {
	c := s.ctx
	pos, ok := s.playerPos()
	if !ok {
		return
	}
	for _, id := range c.Index.TileContent(c.Map.XYIdx(pos.X, pos.Y)) {
		if c.World.Has(id, component.CItem) {
			c.World.Add(c.Player, component.WantsToPickupItem{Item: id})
			c.Mode = system.Ticking
			return
		}
	}
	c.Log.Add("There is nothing here to pick up.")
}

// aim moves the targeting cursor, fires at it, or cancels.
func (s *State) aim(a Action) {
	c := s.ctx
	switch a {
	case ActionCancel:
		s.targeting = ecs.NilEntity
		c.Mode = system.AwaitingInput
	case ActionConfirm:
		if !s.inRange(s.cursor) {
			c.Log.Add("That target is out of range.")
			return
		}
		target := s.cursor
		c.World.Add(c.Player, component.WantsToUseItem{Item: s.targeting, Target: &target})
		s.targeting = ecs.NilEntity
		c.Mode = system.Ticking
	default:
		dx, dy, ok := direction(a)
		if !ok {
			return
		}
		if x, y := s.cursor.X+dx, s.cursor.Y+dy; c.Map.InBounds(x, y) {
			s.cursor = gamemap.Point{X: x, Y: y}
		}
	}
}

// inRange reports whether p is visible to the player and within the
// aimed item's range.
func (s *State) inRange(p gamemap.Point) bool {
	c := s.ctx
	pos, ok := s.playerPos()
	if !ok || !c.Map.InBounds(p.X, p.Y) {
		return false
	}
	idx := c.Map.XYIdx(p.X, p.Y)
	if !c.Map.Visible[idx] {
		return false
	}
	r, ok := ecs.Fetch[component.Ranged](c.World, s.targeting)
	if !ok {
		return false
	}
	return c.Map.Distance(c.Map.XYIdx(pos.X, pos.Y), idx) <= float64(r.Range)
}
