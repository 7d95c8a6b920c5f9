package system

import (
	"shadoblade/assets"
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/pathfind"
)

// fleeDepth bounds the repulsion flood used by fleeing actors.
const fleeDepth = 100.0

// npcTurns returns the non-player actors still holding a turn that have
// every listed component.
func (c *Context) npcTurns(types ...ecs.ComponentType) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range c.Turns.Pending() {
		if c.isPlayer(id) || !c.World.Alive(id) {
			continue
		}
		ok := true
		for _, t := range types {
			if !c.World.Has(id, t) {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, id)
		}
	}
	return out
}

// reaction is how me responds to other. Entities without a faction are
// ignored.
func (c *Context) reaction(me, other ecs.EntityID) assets.Reaction {
	mine, ok := ecs.Fetch[component.Faction](c.World, me)
	if !ok {
		return assets.Ignore
	}
	theirs, ok := ecs.Fetch[component.Faction](c.World, other)
	if !ok {
		return assets.Ignore
	}
	return c.Factions.Reaction(mine.Name, theirs.Name)
}

var neighbours = [8][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// AdjacentAI makes an actor standing next to something it wants to attack
// strike it, claiming the turn.
func AdjacentAI(c *Context) {
	w, m := c.World, c.Map
	for _, id := range c.npcTurns(component.CFaction, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		target := ecs.NilEntity
		for _, d := range neighbours {
			x, y := pos.X+d[0], pos.Y+d[1]
			if !m.InBounds(x, y) {
				continue
			}
			c.Index.ForEachTileContent(m.XYIdx(x, y), func(e ecs.EntityID) bool {
				if e != id && c.reaction(id, e) == assets.Attack {
					target = e
					return false
				}
				return true
			})
			if target != ecs.NilEntity {
				break
			}
		}
		if target != ecs.NilEntity {
			w.Add(id, component.WantsToMelee{Target: target})
			c.Turns.Claim(id)
		}
	}
}

// VisibleAI looks at everything an actor can see. The first thing it would
// attack becomes its approach target and chase quarry; failing that,
// everything it would flee from becomes a flee point. Neither claims the
// turn: ApproachAI and FleeAI do.
func VisibleAI(c *Context) {
	w, m := c.World, c.Map
	for _, id := range c.npcTurns(component.CFaction, component.CViewshed, component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		myIdx := m.XYIdx(pos.X, pos.Y)
		vs := w.Get(id, component.CViewshed).(component.Viewshed)

		attackIdx, quarry := -1, ecs.NilEntity
		var flee []int
		for _, idx := range vs.Visible {
			if idx == myIdx {
				continue
			}
			c.Index.ForEachTileContent(idx, func(e ecs.EntityID) bool {
				switch c.reaction(id, e) {
				case assets.Attack:
					attackIdx, quarry = idx, e
					return false
				case assets.Flee:
					flee = append(flee, idx)
				}
				return true
			})
			if quarry != ecs.NilEntity {
				break
			}
		}

		switch {
		case quarry != ecs.NilEntity:
			w.Add(id, component.WantsToApproach{Idx: attackIdx})
			w.Add(id, component.Chasing{Target: quarry, LastKnown: attackIdx})
		case len(flee) > 0:
			w.Add(id, component.WantsToFlee{Indices: flee})
		}
	}
}

// ApproachAI steps each actor with an approach target one tile along the
// shortest path towards it. The turn is claimed whether or not a path
// exists.
func ApproachAI(c *Context) {
	w := c.World
	for _, id := range c.npcTurns(component.CWantsToApproach, component.CPosition) {
		want := w.Get(id, component.CWantsToApproach).(component.WantsToApproach)
		_, myIdx, _ := c.position(id)
		c.stepTowards(id, myIdx, want.Idx)
		c.Turns.Claim(id)
	}
	w.Clear(component.CWantsToApproach)
}

// stepTowards requests a move to the next tile on the path from 'from' to
// 'to'. It reports whether a path was found.
func (c *Context) stepTowards(id ecs.EntityID, from, to int) bool {
	path := pathfind.AStar(c.graph().WithGoal(to), from, to)
	if !path.Success {
		return false
	}
	if len(path.Steps) > 1 && !c.Index.IsBlocked(path.Steps[1]) {
		c.World.Add(id, component.ApplyMove{Dest: path.Steps[1]})
	}
	return true
}

// FleeAI moves each fleeing actor to the neighbouring tile furthest from
// everything it fears. The terrain blocking is rebuilt for every actor so
// moves requested earlier in the phase are taken into account.
func FleeAI(c *Context) {
	w := c.World
	for _, id := range c.npcTurns(component.CWantsToFlee, component.CPosition) {
		want := w.Get(id, component.CWantsToFlee).(component.WantsToFlee)
		_, myIdx, _ := c.position(id)
		c.Index.PopulateBlockedFromMap(c.Map)
		for _, e := range w.Query(component.CApplyMove) {
			c.Index.SetBlocked(w.Get(e, component.CApplyMove).(component.ApplyMove).Dest, true)
		}
		g := c.graph()
		field := pathfind.NewDijkstraMap(g, want.Indices, fleeDepth)
		if dest, ok := pathfind.FindHighestExit(field, g, myIdx); ok && !c.Index.IsBlocked(dest) {
			w.Add(id, component.ApplyMove{Dest: dest})
		}
		c.Turns.Claim(id)
	}
	c.Index.PopulateBlockedFromMap(c.Map)
	w.Clear(component.CWantsToFlee)
}

// ChaseAI moves actors that lost sight of their quarry towards where they
// last saw it. The chase ends when the actor arrives, the path fails or the
// quarry is gone; a gone quarry leaves the turn for DefaultMoveAI.
func ChaseAI(c *Context) {
	w := c.World
	for _, id := range c.npcTurns(component.CChasing, component.CPosition) {
		chase := w.Get(id, component.CChasing).(component.Chasing)
		if !w.Alive(chase.Target) || !w.Has(chase.Target, component.CPosition) {
			w.Remove(id, component.CChasing)
			continue
		}
		_, myIdx, _ := c.position(id)
		if c.Map.Distance(myIdx, chase.LastKnown) < 1.5 {
			w.Remove(id, component.CChasing)
		} else if !c.stepTowards(id, myIdx, chase.LastKnown) {
			w.Remove(id, component.CChasing)
		}
		c.Turns.Claim(id)
	}
}

// DefaultMoveAI spends the turn of every actor nothing else claimed,
// according to its movement mode.
func DefaultMoveAI(c *Context) {
	w, m := c.World, c.Map
	for _, id := range c.npcTurns(component.CMoveMode, component.CPosition) {
		mode := w.Get(id, component.CMoveMode).(component.MoveMode)
		pos, myIdx, _ := c.position(id)
		switch mode.Mode {
		case component.MoveRandom:
			x, y := pos.X, pos.Y
			switch c.RNG.RollDice(1, 5) {
			case 1:
				x--
			case 2:
				x++
			case 3:
				y--
			case 4:
				y++
			}
			if (x != pos.X || y != pos.Y) && m.InBounds(x, y) {
				if dest := m.XYIdx(x, y); !c.Index.IsBlocked(dest) {
					w.Add(id, component.ApplyMove{Dest: dest})
				}
			}
		case component.MoveRandomWaypoint:
			if len(mode.Path) > 1 && mode.Path[0] == myIdx {
				if next := mode.Path[1]; !c.Index.IsBlocked(next) {
					w.Add(id, component.ApplyMove{Dest: next})
					mode.Path = mode.Path[1:]
				} else {
					mode.Path = nil
				}
			} else {
				mode.Path = nil
				target := c.RNG.Intn(m.Size())
				if m.Tiles[target].Walkable() {
					if path := pathfind.AStar(c.graph(), myIdx, target); path.Success && len(path.Steps) > 1 {
						mode.Path = path.Steps
					}
				}
			}
			w.Add(id, mode)
		}
		c.Turns.Claim(id)
	}
}
