package mapbuilder

import (
	"shadoblade/assets"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/rng"
)

func randomStartPosition(r *rng.RNG) AreaStartingPosition {
	var a AreaStartingPosition
	switch r.RollDice(1, 3) {
	case 1:
		a.X = XLeft
	case 2:
		a.X = XCenter
	default:
		a.X = XRight
	}
	switch r.RollDice(1, 3) {
	case 1:
		a.Y = YBottom
	case 2:
		a.Y = YCenter
	default:
		a.Y = YTop
	}
	return a
}

func roomBuilder(r *rng.RNG, c *Chain) {
	roll := r.RollDice(1, 3)
	switch roll {
	case 1:
		c.StartWith(SimpleMap{})
	case 2:
		c.StartWith(BspDungeon{})
	default:
		c.StartWith(BspInterior{})
	}

	if roll != 3 {
		c.With(RoomSorter{Sort: RoomSort(r.RollDice(1, 5) - 1)})
		c.With(RoomDrawer{})
		if r.RollDice(1, 2) == 1 {
			c.With(Dogleg{})
		} else {
			c.With(BspCorridors{})
		}
		switch r.RollDice(1, 6) {
		case 1:
			c.With(RoomExploder{})
		case 2:
			c.With(RoomCornerRounder{})
		}
	}

	switch r.RollDice(1, 4) {
	case 1:
		c.With(Dogleg{})
	case 2:
		c.With(NearestCorridors{})
	case 3:
		c.With(StraightLineCorridors{})
	default:
		c.With(BspCorridors{})
	}
	if r.RollDice(1, 2) == 1 {
		c.With(CorridorSpawner{})
	}

	if r.RollDice(1, 2) == 1 {
		c.With(RoomBasedStartingPosition{})
	} else {
		c.With(randomStartPosition(r))
	}
	if r.RollDice(1, 2) == 1 {
		c.With(RoomBasedStairs{})
	} else {
		c.With(DistantExit{})
	}
	if r.RollDice(1, 2) == 1 {
		c.With(RoomBasedSpawner{})
	} else {
		c.With(VoronoiSpawning{})
	}
}

func shapeBuilder(r *rng.RNG, c *Chain) {
	switch r.RollDice(1, 16) {
	case 1:
		c.StartWith(CellularAutomata{})
	case 2:
		c.StartWith(OpenArea)
	case 3:
		c.StartWith(OpenHalls)
	case 4:
		c.StartWith(WindingPassages)
	case 5:
		c.StartWith(FatPassages)
	case 6:
		c.StartWith(FearfulSymmetry)
	case 7:
		c.StartWith(Maze{})
	case 8:
		c.StartWith(DLAWalkInwards)
	case 9:
		c.StartWith(DLAWalkOutwards)
	case 10:
		c.StartWith(DLACentralAttractor)
	case 11:
		c.StartWith(DLAInsectoid)
	case 12:
		c.StartWith(VoronoiCells{Seeds: 64, Distance: Pythagoras})
	case 13:
		c.StartWith(VoronoiCells{Seeds: 64, Distance: Manhattan})
	default:
		c.StartWith(PrefabConstant{Level: SunkenRuins})
	}
	c.With(AreaStartingPosition{X: XCenter, Y: YCenter})
	c.With(CullUnreachable{})
	c.With(randomStartPosition(r))
	c.With(VoronoiSpawning{})
	c.With(DistantExit{})
}

// RandomBuilder assembles a chain from the room or shape generators with
// randomly chosen transforms.
func RandomBuilder(depth int, r *rng.RNG, width, height int) *Chain {
	c := NewChain(depth, width, height, assets.LevelName(depth))
	if r.RollDice(1, 2) == 1 {
		roomBuilder(r, c)
	} else {
		shapeBuilder(r, c)
	}

	if r.RollDice(1, 3) == 1 {
		c.With(WaveformCollapse{ChunkSize: 8})
		c.With(randomStartPosition(r))
		c.With(VoronoiSpawning{})
		c.With(DistantExit{})
	}
	if r.RollDice(1, 20) == 1 {
		c.With(PrefabSectional{Section: UndergroundFort})
	}
	c.With(CullUnreachable{})
	c.With(DoorPlacement{})
	c.With(PrefabVaults{})
	return c
}

// ForestBuilder is the outdoor chain used for the first level.
func ForestBuilder(depth int, r *rng.RNG, width, height int) *Chain {
	c := NewChain(depth, width, height, assets.LevelName(depth))
	c.Data.Map.Outdoors = true
	c.StartWith(CellularAutomata{})
	c.With(AreaStartingPosition{X: XCenter, Y: YCenter})
	c.With(CullUnreachable{})
	c.With(AreaStartingPosition{X: XLeft, Y: YCenter})
	c.With(Retheme{From: gamemap.Floor, To: gamemap.Grass})
	c.With(VoronoiSpawning{})
	c.With(YellowBrickRoad{})
	return c
}

// levelAttempts bounds rebuilds of a chain that finished without a start
// or a reachable exit.
const levelAttempts = 20

// LevelBuilder builds the level for depth, choosing the themed chain for
// the depth. A chain whose result is unusable is rebuilt with fresh rolls.
// The returned chain has already been built.
func LevelBuilder(depth int, r *rng.RNG, width, height int) *Chain {
	return buildLevel(depth, r, width, height, false)
}

// LevelWithHistory is LevelBuilder with snapshots recorded after each stage.
func LevelWithHistory(depth int, r *rng.RNG, width, height int) *Chain {
	return buildLevel(depth, r, width, height, true)
}

func buildLevel(depth int, r *rng.RNG, width, height int, snapshots bool) *Chain {
	var c *Chain
	for range levelAttempts {
		if depth <= 1 {
			c = ForestBuilder(depth, r, width, height)
		} else {
			c = RandomBuilder(depth, r, width, height)
		}
		c.Data.Snapshots = snapshots
		c.Build(r)
		if Playable(&c.Data) {
			return c
		}
	}
	return c
}

// Playable reports whether the build has a start position on open ground
// and a down staircase reachable from it.
func Playable(b *BuildData) bool {
	start, ok := b.StartIdx()
	if !ok || !b.Map.Tiles[start].Walkable() {
		return false
	}
	dm, _ := distancesFromStart(b)
	for idx, t := range b.Map.Tiles {
		if t == gamemap.DownStairs && dm.Reachable(idx) {
			return true
		}
	}
	return false
}
