package mapbuilder

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/zyedidia/generic/mapset"

	"shadoblade/internal/gamemap"
	"shadoblade/internal/pathfind"
	"shadoblade/internal/rng"
)

const testW, testH = 80, 50

func expectPanic(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, want) {
			t.Fatalf("panic = %v, want %v", r, want)
		}
	}()
	fn()
}

func TestChainWithoutStarterPanics(t *testing.T) {
	c := NewChain(1, testW, testH, "t")
	expectPanic(t, ErrNoStarter, func() { c.Build(rng.New(1)) })
}

func TestChainSecondStarterPanics(t *testing.T) {
	c := NewChain(1, testW, testH, "t").StartWith(SimpleMap{})
	expectPanic(t, ErrDuplicateStarter, func() { c.StartWith(Maze{}) })
}

func TestRoomStageWithoutRoomsPanics(t *testing.T) {
	c := NewChain(1, testW, testH, "t").StartWith(CellularAutomata{}).With(RoomBasedStairs{})
	expectPanic(t, ErrNoRooms, func() { c.Build(rng.New(1)) })
}

func TestStagesRunInOrder(t *testing.T) {
	var order []string
	stage := func(name string) Builder {
		return BuilderFunc(func(*rng.RNG, *BuildData) { order = append(order, name) })
	}
	NewChain(1, 10, 10, "t").StartWith(stage("start")).With(stage("a")).With(stage("b")).Build(rng.New(1))
	if want := []string{"start", "a", "b"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

type recordingSpawner []Spawn

func (r *recordingSpawner) Spawn(idx int, name string) {
	*r = append(*r, Spawn{Idx: idx, Name: name})
}

func TestSpawnEntitiesKeepsListOrder(t *testing.T) {
	c := NewChain(1, 10, 10, "t")
	c.Data.SpawnList = []Spawn{{Idx: 12, Name: "Rat"}, {Idx: 11, Name: "Door"}}
	var got recordingSpawner
	c.SpawnEntities(&got)
	if !slices.Equal([]Spawn(got), c.Data.SpawnList) {
		t.Errorf("spawned %v, want %v", got, c.Data.SpawnList)
	}
}

func TestSnapshotsOnlyWhenEnabled(t *testing.T) {
	c := NewChain(1, testW, testH, "t").StartWith(CellularAutomata{}).With(AreaStartingPosition{X: XCenter, Y: YCenter}).With(DistantExit{})
	c.Build(rng.New(3))
	if len(c.Data.History) != 0 {
		t.Fatalf("history recorded with snapshots off: %d", len(c.Data.History))
	}
	c = NewChain(1, testW, testH, "t").StartWith(CellularAutomata{}).With(AreaStartingPosition{X: XCenter, Y: YCenter}).With(DistantExit{})
	c.Data.Snapshots = true
	c.Build(rng.New(3))
	if len(c.Data.History) == 0 {
		t.Fatal("no history with snapshots on")
	}
	for _, snap := range c.Data.History {
		if slices.Contains(snap.Revealed, false) {
			t.Fatal("snapshot not fully revealed")
		}
	}
}

func TestLevelBuilderIsDeterministic(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		for seed := int64(0); seed < 5; seed++ {
			a := LevelBuilder(depth, rng.New(seed), testW, testH)
			b := LevelBuilder(depth, rng.New(seed), testW, testH)
			if !slices.Equal(a.Data.Map.Tiles, b.Data.Map.Tiles) {
				t.Fatalf("depth %d seed %d: tiles differ", depth, seed)
			}
			if !slices.Equal(a.Data.SpawnList, b.Data.SpawnList) {
				t.Fatalf("depth %d seed %d: spawns differ", depth, seed)
			}
			if *a.Data.Start != *b.Data.Start {
				t.Fatalf("depth %d seed %d: start %v vs %v", depth, seed, *a.Data.Start, *b.Data.Start)
			}
		}
	}
}

// checkLevel verifies the properties every finished level must have.
func checkLevel(t *testing.T, label string, b *BuildData) {
	t.Helper()
	if !Playable(b) {
		t.Fatalf("%s: not playable", label)
	}
	m := b.Map
	start, _ := b.StartIdx()
	dm := pathfind.NewDijkstraMap(m.NewGraph(nil), []int{start}, pathfind.Unreachable)
	for idx, tile := range m.Tiles {
		x, y := m.IdxXY(idx)
		if (x == 0 || y == 0 || x == m.Width-1 || y == m.Height-1) && tile.Walkable() {
			t.Fatalf("%s: walkable border tile at (%d,%d)", label, x, y)
		}
		if tile.Walkable() && !dm.Reachable(idx) {
			t.Fatalf("%s: %v at (%d,%d) unreachable from start", label, tile, x, y)
		}
	}
	if n := m.Count(gamemap.DownStairs); n != 1 {
		t.Fatalf("%s: %d down staircases, want 1", label, n)
	}
	seen := map[int]bool{}
	for _, s := range b.SpawnList {
		if !m.Tiles[s.Idx].Walkable() {
			t.Fatalf("%s: %s spawned on %v", label, s.Name, m.Tiles[s.Idx])
		}
		if s.Idx == start {
			t.Fatalf("%s: %s spawned on the start", label, s.Name)
		}
		if seen[s.Idx] {
			t.Fatalf("%s: two spawns on tile %d", label, s.Idx)
		}
		seen[s.Idx] = true
	}
}

func TestLevelsAreConnected(t *testing.T) {
	for depth := 1; depth <= 8; depth++ {
		for seed := int64(0); seed < 12; seed++ {
			c := LevelBuilder(depth, rng.New(seed*31+int64(depth)), testW, testH)
			checkLevel(t, fmt.Sprintf("depth %d seed %d", depth, seed), &c.Data)
		}
	}
}

func TestForestLevelIsOutdoorsWithRoad(t *testing.T) {
	c := LevelBuilder(1, rng.New(9), testW, testH)
	m := c.Data.Map
	if !m.Outdoors {
		t.Error("forest level not outdoors")
	}
	if m.Count(gamemap.Floor) != 0 {
		t.Errorf("forest still has %d bare floor tiles", m.Count(gamemap.Floor))
	}
	if m.Count(gamemap.Grass) == 0 {
		t.Error("forest has no grass")
	}
}

func TestDistantExitPicksFarthestTile(t *testing.T) {
	m := gamemap.New(1, 12, 5, "t")
	for x := 1; x <= 10; x++ {
		m.Set(x, 2, gamemap.Floor)
	}
	m.Set(5, 1, gamemap.Floor)
	m.Set(8, 3, gamemap.Floor)
	b := &BuildData{Map: m, Width: 12, Height: 5, Start: &gamemap.Point{X: 1, Y: 2}}
	DistantExit{}.Build(rng.New(1), b)
	if got := m.At(10, 2); got != gamemap.DownStairs {
		t.Fatalf("tile at far end = %v, want down stairs", got)
	}
	if m.Count(gamemap.DownStairs) != 1 {
		t.Errorf("stairs count = %d", m.Count(gamemap.DownStairs))
	}
}

func TestCullUnreachableRepairsExit(t *testing.T) {
	m := gamemap.New(1, 12, 7, "t")
	for x := 1; x <= 4; x++ {
		m.Set(x, 1, gamemap.Floor)
	}
	for x := 7; x <= 10; x++ {
		m.Set(x, 5, gamemap.Floor)
	}
	m.Set(10, 5, gamemap.DownStairs)
	b := &BuildData{
		Map:       m,
		Start:     &gamemap.Point{X: 1, Y: 1},
		SpawnList: []Spawn{{Idx: m.XYIdx(8, 5), Name: "Rat"}, {Idx: m.XYIdx(3, 1), Name: "Rat"}},
	}
	CullUnreachable{}.Build(rng.New(1), b)

	for x := 7; x <= 10; x++ {
		if m.At(x, 5) != gamemap.Wall {
			t.Errorf("(%d,5) = %v, want wall", x, m.At(x, 5))
		}
	}
	if m.At(4, 1) != gamemap.DownStairs {
		t.Errorf("exit not rebuilt at farthest tile: %v", m.At(4, 1))
	}
	if len(b.SpawnList) != 1 || b.SpawnList[0].Idx != m.XYIdx(3, 1) {
		t.Errorf("spawns = %v", b.SpawnList)
	}
}

func TestAreaStartingPositionSkipsStairs(t *testing.T) {
	m := gamemap.New(1, 9, 9, "t")
	m.Set(4, 4, gamemap.DownStairs)
	m.Set(5, 4, gamemap.Floor)
	m.Set(1, 1, gamemap.Floor)
	b := &BuildData{Map: m}
	AreaStartingPosition{X: XCenter, Y: YCenter}.Build(rng.New(1), b)
	if b.Start == nil || *b.Start != (gamemap.Point{X: 5, Y: 4}) {
		t.Fatalf("start = %v, want (5,4)", b.Start)
	}
}

func TestRoomSorterCentral(t *testing.T) {
	b := &BuildData{
		Map: gamemap.New(1, 40, 40, "t"),
		Rooms: []gamemap.Rect{
			gamemap.NewRect(1, 1, 4, 4),
			gamemap.NewRect(18, 18, 4, 4),
			gamemap.NewRect(30, 30, 4, 4),
		},
	}
	RoomSorter{Sort: SortCentral}.Build(rng.New(1), b)
	if b.Rooms[0] != gamemap.NewRect(18, 18, 4, 4) {
		t.Errorf("first room = %v", b.Rooms[0])
	}
	RoomSorter{Sort: SortLeftmost}.Build(rng.New(1), b)
	if b.Rooms[0].X1 != 1 {
		t.Errorf("leftmost first = %v", b.Rooms[0])
	}
}

func TestDoorNeedsWallsOnBothSides(t *testing.T) {
	m := gamemap.New(1, 7, 5, "t")
	for x := 1; x <= 5; x++ {
		m.Set(x, 2, gamemap.Floor)
	}
	b := &BuildData{Map: m}
	if !doorPossible(b, m.XYIdx(3, 2)) {
		t.Error("corridor tile rejected")
	}
	m.Set(3, 1, gamemap.Floor)
	if doorPossible(b, m.XYIdx(3, 2)) {
		t.Error("door allowed beside an opening")
	}
}

func TestVaultsStayOffUsedGround(t *testing.T) {
	m := gamemap.New(6, 30, 20, "t")
	for y := 1; y < 19; y++ {
		for x := 1; x < 29; x++ {
			m.Set(x, y, gamemap.Floor)
		}
	}
	used := mapsetOf(m.XYIdx(10, 10))
	if vaultFits(m, used, 9, 9, 3, 3) {
		t.Error("vault placed over used tile")
	}
	if !vaultFits(m, used, 15, 3, 4, 4) {
		t.Error("open floor rejected")
	}
	m.Set(19, 3, gamemap.Wall)
	if vaultFits(m, used, 15, 3, 4, 4) {
		t.Error("vault margin ignored")
	}
}

func TestPrefabConstantStampsLayout(t *testing.T) {
	c := NewChain(3, testW, testH, "t").StartWith(PrefabConstant{Level: SunkenRuins})
	c.Build(rng.New(1))
	m := c.Data.Map
	if m.Count(gamemap.DeepWater) == 0 {
		t.Error("no deep water stamped")
	}
	for _, s := range c.Data.SpawnList {
		if !m.Tiles[s.Idx].Walkable() {
			t.Errorf("%s on %v", s.Name, m.Tiles[s.Idx])
		}
	}
}

func TestWaveformCollapseResetsPositions(t *testing.T) {
	m := gamemap.New(4, 32, 24, "t")
	b := &BuildData{
		Map:       m,
		Start:     &gamemap.Point{X: 3, Y: 3},
		SpawnList: []Spawn{{Idx: 5, Name: "Rat"}},
		Rooms:     []gamemap.Rect{gamemap.NewRect(1, 1, 4, 4)},
	}
	WaveformCollapse{ChunkSize: 8}.Build(rng.New(5), b)
	if b.Start != nil || b.SpawnList != nil || b.Rooms != nil {
		t.Errorf("positions survived: start=%v spawns=%v rooms=%v", b.Start, b.SpawnList, b.Rooms)
	}
	if m.Count(gamemap.Wall) != m.Size() {
		t.Error("solid map did not stay solid")
	}
}

func TestBuildPatternsDropsMirrorDuplicates(t *testing.T) {
	m := gamemap.New(1, 16, 16, "t")
	for y := 1; y < 15; y++ {
		for x := 1; x < 15; x++ {
			m.Set(x, y, gamemap.Floor)
		}
	}
	// The four corner chunks are mirror images of each other.
	if got := len(buildPatterns(m, 8, true)); got != 4 {
		t.Errorf("patterns = %d, want 4", got)
	}
	if got := len(buildPatterns(m, 8, false)); got != 4 {
		t.Errorf("patterns without flips = %d, want 4", got)
	}
}

func TestConstraintsMatchOpenEdges(t *testing.T) {
	open := make([]gamemap.TileType, 4)
	for i := range open {
		open[i] = gamemap.Floor
	}
	solid := make([]gamemap.TileType, 4)
	chunks := buildConstraints([][]gamemap.TileType{open, solid}, 2)
	if !slices.Equal(chunks[0].compatible[east], []int{0}) {
		t.Errorf("open east = %v, want [0]", chunks[0].compatible[east])
	}
	if !slices.Equal(chunks[1].compatible[east], []int{1}) {
		t.Errorf("solid east = %v, want [1]", chunks[1].compatible[east])
	}
}

func TestDumpMarksStartAndSpawns(t *testing.T) {
	m := gamemap.New(1, 4, 3, "t")
	m.Set(1, 1, gamemap.Floor)
	m.Set(2, 1, gamemap.DownStairs)
	b := &BuildData{Map: m, Start: &gamemap.Point{X: 1, Y: 1}, SpawnList: []Spawn{{Idx: m.XYIdx(2, 1), Name: "Rat"}}}
	var sb strings.Builder
	if err := Dump(&sb, b, false); err != nil {
		t.Fatal(err)
	}
	if want := "####\n#@*#\n####\n"; sb.String() != want {
		t.Errorf("dump =\n%s\nwant\n%s", sb.String(), want)
	}
}

func mapsetOf(idx ...int) mapset.Set[int] {
	s := mapset.New[int]()
	for _, i := range idx {
		s.Put(i)
	}
	return s
}

func TestDistantExitReplacesEarlierStairs(t *testing.T) {
	m := gamemap.New(1, 12, 5, "t")
	for x := 1; x <= 10; x++ {
		m.Set(x, 2, gamemap.Floor)
	}
	m.Set(3, 2, gamemap.DownStairs)
	m.Set(6, 2, gamemap.DownStairs)
	b := &BuildData{Map: m, Width: 12, Height: 5, Start: &gamemap.Point{X: 1, Y: 2}}
	DistantExit{}.Build(rng.New(1), b)
	if m.Count(gamemap.DownStairs) != 1 || m.At(10, 2) != gamemap.DownStairs {
		t.Fatalf("stairs = %d, far end = %v", m.Count(gamemap.DownStairs), m.At(10, 2))
	}
	if m.At(3, 2) != gamemap.Floor || m.At(6, 2) != gamemap.Floor {
		t.Errorf("old stairs not turned to floor: %v %v", m.At(3, 2), m.At(6, 2))
	}
}

func TestDistantExitTieGoesToLowestIndex(t *testing.T) {
	// A corridor that forks into two dead ends of equal length, one up and
	// one down.
	m := gamemap.New(1, 8, 7, "t")
	for x := 1; x <= 5; x++ {
		m.Set(x, 3, gamemap.Floor)
	}
	for _, y := range []int{1, 2, 4, 5} {
		m.Set(5, y, gamemap.Floor)
	}
	b := &BuildData{Map: m, Width: 8, Height: 7, Start: &gamemap.Point{X: 1, Y: 3}}
	DistantExit{}.Build(rng.New(1), b)
	if got := m.At(5, 1); got != gamemap.DownStairs {
		t.Errorf("upper dead end = %v, want down stairs", got)
	}
	if got := m.At(5, 5); got != gamemap.Floor {
		t.Errorf("lower dead end = %v, want floor", got)
	}
}

func TestCullUnreachableKeepsOneExit(t *testing.T) {
	m := gamemap.New(1, 12, 5, "t")
	for x := 1; x <= 10; x++ {
		m.Set(x, 2, gamemap.Floor)
	}
	m.Set(4, 2, gamemap.DownStairs)
	m.Set(7, 2, gamemap.DownStairs)
	b := &BuildData{Map: m, Start: &gamemap.Point{X: 1, Y: 2}}
	CullUnreachable{}.Build(rng.New(1), b)
	if m.Count(gamemap.DownStairs) != 1 || m.At(10, 2) != gamemap.DownStairs {
		t.Errorf("stairs = %d, far end = %v", m.Count(gamemap.DownStairs), m.At(10, 2))
	}
}

func TestWaveformCollapseLearnsNoStairs(t *testing.T) {
	m := gamemap.New(2, 16, 16, "t")
	for y := 1; y < 15; y++ {
		for x := 1; x < 15; x++ {
			m.Set(x, y, gamemap.Floor)
		}
	}
	m.Set(4, 4, gamemap.DownStairs)
	m.Set(11, 11, gamemap.UpStairs)
	for i, p := range buildPatterns(plainFloor(m), 8, true) {
		if slices.Contains(p, gamemap.DownStairs) || slices.Contains(p, gamemap.UpStairs) {
			t.Errorf("pattern %d carries stairs", i)
		}
	}
	if m.At(4, 4) != gamemap.DownStairs {
		t.Error("learning changed the source map")
	}
}

func TestRandomLevelsHaveOneExit(t *testing.T) {
	for seed := int64(1); seed <= 40; seed++ {
		for _, depth := range []int{2, 5} {
			r := rng.New(seed)
			c := RandomBuilder(depth, r, testW, testH)
			c.Build(r)
			if n := c.Data.Map.Count(gamemap.DownStairs); n > 1 {
				t.Fatalf("depth %d seed %d: %d down staircases", depth, seed, n)
			}
		}
	}
}
