package game

import (
	"errors"
	"fmt"

	"shadoblade/assets"
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/factory"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/mapbuilder"
	"shadoblade/internal/store"
	"shadoblade/internal/system"
)

// descend takes the player down the stairs they stand on.
func (s *State) descend() {
	if err := s.changeLevel(s.ctx.Map.Depth+1, nil, gamemap.UpStairs); err != nil {
		s.levelFailed(err)
		return
	}
	c := s.ctx
	if pools, ok := ecs.Fetch[component.Pools](c.World, c.Player); ok {
		pools.HitPoints.Current = max(pools.HitPoints.Current, pools.HitPoints.Max/2)
		c.World.Add(c.Player, pools)
	}
	c.Log.Add("You descend to the next level, and take a moment to heal.")
}

// ascend takes the player up the stairs they stand on.
func (s *State) ascend() {
	depth := s.ctx.Map.Depth - 1
	if depth < 1 {
		s.ctx.Log.Add("There is no way up from here.")
		s.ctx.Mode = system.AwaitingInput
		return
	}
	if err := s.changeLevel(depth, nil, gamemap.DownStairs); err != nil {
		s.levelFailed(err)
		return
	}
	s.ctx.Log.Add("You climb back up the stairs.")
}

// teleport carries out a cross-level teleport requested by a trigger.
func (s *State) teleport() {
	c := s.ctx
	dest := c.PendingTeleport
	c.PendingTeleport = nil
	if dest == nil {
		c.Mode = system.Ticking
		return
	}
	var at *gamemap.Point
	if dest.X >= 0 && dest.Y >= 0 {
		at = &gamemap.Point{X: dest.X, Y: dest.Y}
	}
	if err := s.changeLevel(dest.Depth, at, gamemap.UpStairs); err != nil {
		s.levelFailed(err)
		return
	}
	c.Log.Add("The world shifts around you.")
}

// levelFailed keeps the player where they are when the next level could
// not be loaded.
func (s *State) levelFailed(err error) {
	s.logger.Error("level transition failed", "err", err)
	s.ctx.Log.Add("The way is barred.")
	s.ctx.Mode = system.AwaitingInput
}

// changeLevel freezes the current level, makes depth current and places the
// player. The player lands on at when given, on a tile of kind onto when
// returning to a known level, and on the level start otherwise.
func (s *State) changeLevel(depth int, at *gamemap.Point, onto gamemap.TileType) error {
	c := s.ctx
	m, fresh, err := s.loadLevel(depth)
	if err != nil {
		return err
	}
	if c.Map.Depth > 0 {
		if err := s.store.SaveLevel(s.cfg.Run, c.Map); err != nil {
			return fmt.Errorf("save level %d: %w", c.Map.Depth, err)
		}
		s.freeze()
	}
	if fresh {
		m = s.buildLevel(depth)
	}
	c.SetMap(m)
	start := s.startOf(m)
	s.thaw(depth, start)

	dest := start
	switch {
	case at != nil && m.InBounds(at.X, at.Y):
		dest = *at
	case !fresh:
		if idx, ok := m.Find(onto); ok {
			dest = m.IdxPoint(idx)
		}
	}
	s.placePlayer(dest)

	if depth > s.stats.Deepest {
		s.stats.Deepest = depth
	}
	c.Mode = system.PreRun
	return nil
}

// loadLevel returns the stored level for depth, or fresh=true when the
// depth has not been visited.
func (s *State) loadLevel(depth int) (*gamemap.Map, bool, error) {
	m, err := s.store.LoadLevel(s.cfg.Run, depth)
	switch {
	case err == nil:
		return m, false, nil
	case errors.Is(err, store.ErrLevelNotFound):
		return nil, true, nil
	}
	return nil, false, fmt.Errorf("load level %d: %w", depth, err)
}

// buildLevel generates a new level for depth and spawns its entities.
func (s *State) buildLevel(depth int) *gamemap.Map {
	c := s.ctx
	var chain *mapbuilder.Chain
	if s.cfg.History {
		chain = mapbuilder.LevelWithHistory(depth, c.RNG, s.cfg.Width, s.cfg.Height)
		s.history = chain.Data.History
	} else {
		chain = mapbuilder.LevelBuilder(depth, c.RNG, s.cfg.Width, s.cfg.Height)
	}
	m := chain.Data.Map
	if chain.Data.Start != nil {
		start := *chain.Data.Start
		s.starts[depth] = start
		if depth > 1 && m.At(start.X, start.Y) != gamemap.DownStairs {
			m.Set(start.X, start.Y, gamemap.UpStairs)
		}
	}
	chain.SpawnEntities(factory.LevelSpawner{World: c.World, Map: m, RNG: c.RNG})
	s.logger.Debug("built level", "depth", depth, "name", m.Name, "spawns", len(chain.Data.SpawnList))

	c.Log.Add("You enter %s.", m.Name)
	if lore := assets.LevelLore(depth); len(lore) > 0 {
		c.Log.Add("%s", lore[c.RNG.Intn(len(lore))])
	}
	return m
}

// startOf returns where the player first arrived on m, falling back to
// the first walkable tile for a level restored without one.
func (s *State) startOf(m *gamemap.Map) gamemap.Point {
	if p, ok := s.starts[m.Depth]; ok {
		return p
	}
	for idx, t := range m.Tiles {
		if t.Walkable() {
			p := m.IdxPoint(idx)
			s.starts[m.Depth] = p
			return p
		}
	}
	return gamemap.Point{X: m.Width / 2, Y: m.Height / 2}
}

// freeze parks every positioned entity except the player on the current
// depth. Particles are dropped instead.
func (s *State) freeze() {
	c := s.ctx
	w := c.World
	depth := c.Map.Depth
	for _, id := range w.Query(component.CPosition) {
		if id == c.Player {
			continue
		}
		if w.Has(id, component.CParticleLifetime) {
			w.DestroyEntity(id)
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)
		w.Remove(id, component.CPosition)
		w.Add(id, component.OtherLevelPosition{X: pos.X, Y: pos.Y, Depth: depth})
	}
}

// thaw restores the entities parked on depth. Entities sent there without
// a destination tile land on start.
func (s *State) thaw(depth int, start gamemap.Point) {
	w := s.ctx.World
	for _, id := range w.Query(component.COtherLevelPosition) {
		olp := w.Get(id, component.COtherLevelPosition).(component.OtherLevelPosition)
		if olp.Depth != depth {
			continue
		}
		x, y := olp.X, olp.Y
		if x < 0 || y < 0 {
			x, y = start.X, start.Y
		}
		w.Remove(id, component.COtherLevelPosition)
		w.Add(id, component.Position{X: x, Y: y})
		if vs, ok := ecs.Fetch[component.Viewshed](w, id); ok {
			vs.Dirty = true
			w.Add(id, vs)
		}
	}
}

func (s *State) placePlayer(p gamemap.Point) {
	c := s.ctx
	c.World.Add(c.Player, component.Position{X: p.X, Y: p.Y})
	c.World.Remove(c.Player, component.COtherLevelPosition)
	if vs, ok := ecs.Fetch[component.Viewshed](c.World, c.Player); ok {
		vs.Dirty = true
		c.World.Add(c.Player, vs)
	}
}
