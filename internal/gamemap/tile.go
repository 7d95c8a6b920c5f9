package gamemap

// TileType identifies the terrain of a map cell.
type TileType uint8

const (
	Wall TileType = iota
	Stalactite
	Stalagmite
	Floor
	DownStairs
	UpStairs
	Road
	Grass
	ShallowWater
	DeepWater
	WoodFloor
	Bridge
	Gravel
)

type tileInfo struct {
	name     string
	walkable bool
	opaque   bool
	cost     float64
}

var tileTable = [...]tileInfo{
	Wall:         {"wall", false, true, 1.0},
	Stalactite:   {"stalactite", false, true, 1.0},
	Stalagmite:   {"stalagmite", false, true, 1.0},
	Floor:        {"floor", true, false, 1.0},
	DownStairs:   {"down stairs", true, false, 1.0},
	UpStairs:     {"up stairs", true, false, 1.0},
	Road:         {"road", true, false, 0.8},
	Grass:        {"grass", true, false, 1.9},
	ShallowWater: {"shallow water", true, false, 1.2},
	DeepWater:    {"deep water", false, false, 1.0},
	WoodFloor:    {"wooden floor", true, false, 1.0},
	Bridge:       {"bridge", true, false, 1.0},
	Gravel:       {"gravel", true, false, 1.0},
}

func (t TileType) info() tileInfo {
	if int(t) < len(tileTable) {
		return tileTable[t]
	}
	return tileTable[Wall]
}

// Walkable reports whether actors may stand on the tile.
func (t TileType) Walkable() bool { return t.info().walkable }

// Opaque reports whether the tile blocks line of sight.
func (t TileType) Opaque() bool { return t.info().opaque }

// Cost is the movement cost of entering the tile.
func (t TileType) Cost() float64 { return t.info().cost }

func (t TileType) String() string { return t.info().name }
