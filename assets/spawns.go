package assets

import "shadoblade/internal/rng"

// SpawnEntry is one weighted row of the spawn table.
type SpawnEntry struct {
	Name     string
	Weight   int
	MinDepth int
	MaxDepth int
	// AddDepth adds the current depth to the weight.
	AddDepth bool
}

// SpawnTable lists everything that may appear in a room or region.
var SpawnTable = []SpawnEntry{
	{Name: "Rat", Weight: 10, MinDepth: 1, MaxDepth: 3},
	{Name: "Deer", Weight: 8, MinDepth: 1, MaxDepth: 2},
	{Name: "Wolf", Weight: 4, MinDepth: 1, MaxDepth: 4},
	{Name: "Bandit", Weight: 6, MinDepth: 1, MaxDepth: 3},
	{Name: "Goblin", Weight: 10, MinDepth: 2, MaxDepth: 6},
	{Name: "Kobold", Weight: 10, MinDepth: 2, MaxDepth: 5},
	{Name: "Spider", Weight: 4, MinDepth: 3, MaxDepth: 8},
	{Name: "Orc", Weight: 1, MinDepth: 3, MaxDepth: 100, AddDepth: true},
	{Name: "Ogre", Weight: 1, MinDepth: 5, MaxDepth: 100, AddDepth: true},
	{Name: "Health Potion", Weight: 7, MinDepth: 1, MaxDepth: 100},
	{Name: "Rations", Weight: 10, MinDepth: 1, MaxDepth: 100},
	{Name: "Magic Missile Scroll", Weight: 4, MinDepth: 1, MaxDepth: 100},
	{Name: "Fireball Scroll", Weight: 2, MinDepth: 2, MaxDepth: 100, AddDepth: true},
	{Name: "Confusion Scroll", Weight: 2, MinDepth: 2, MaxDepth: 100, AddDepth: true},
	{Name: "Magic Mapping Scroll", Weight: 2, MinDepth: 2, MaxDepth: 100},
	{Name: "Dagger", Weight: 3, MinDepth: 1, MaxDepth: 3},
	{Name: "Shield", Weight: 3, MinDepth: 1, MaxDepth: 100},
	{Name: "Longsword", Weight: 1, MinDepth: 2, MaxDepth: 100, AddDepth: true},
	{Name: "Chain Mail", Weight: 1, MinDepth: 3, MaxDepth: 100, AddDepth: true},
	{Name: "Iron Helm", Weight: 2, MinDepth: 2, MaxDepth: 100},
	{Name: "Leather Gloves", Weight: 2, MinDepth: 1, MaxDepth: 100},
	{Name: "Bear Trap", Weight: 5, MinDepth: 2, MaxDepth: 100},
	{Name: "Spike Pit", Weight: 3, MinDepth: 3, MaxDepth: 100},
	{Name: "Shimmering Portal", Weight: 1, MinDepth: 4, MaxDepth: 100},
	{Name: "Torch", Weight: 2, MinDepth: 2, MaxDepth: 100},
}

// WeightedName is a resolved spawn-table row for one depth.
type WeightedName struct {
	Name   string
	Weight int
}

// SpawnsForDepth returns the rows available at depth with final weights.
func SpawnsForDepth(depth int) []WeightedName {
	var out []WeightedName
	for _, e := range SpawnTable {
		if depth < e.MinDepth || depth > e.MaxDepth {
			continue
		}
		w := e.Weight
		if e.AddDepth {
			w += depth
		}
		out = append(out, WeightedName{Name: e.Name, Weight: w})
	}
	return out
}

// Roll picks a name from table with probability proportional to weight.
// It returns "" when the table has no positive weight.
func Roll(r *rng.RNG, table []WeightedName) string {
	total := 0
	for _, e := range table {
		total += max(e.Weight, 0)
	}
	if total == 0 {
		return ""
	}
	n := r.RollDice(1, total) - 1
	for _, e := range table {
		if e.Weight <= 0 {
			continue
		}
		if n < e.Weight {
			return e.Name
		}
		n -= e.Weight
	}
	return ""
}

// LootDef is a drop table with a percentage chance to drop anything at all.
type LootDef struct {
	Chance int
	Drops  []WeightedName
}

// LootTables is keyed by the table name on a MobDef.
var LootTables = map[string]LootDef{
	"Animal":  {Chance: 50, Drops: []WeightedName{{"Hide", 10}, {"Rations", 5}}},
	"Bandits": {Chance: 40, Drops: []WeightedName{{"Health Potion", 5}, {"Dagger", 3}, {"Leather Gloves", 2}}},
	"Goblins": {Chance: 25, Drops: []WeightedName{{"Rations", 5}, {"Magic Missile Scroll", 2}}},
	"Orcs":    {Chance: 35, Drops: []WeightedName{{"Health Potion", 4}, {"Iron Helm", 2}, {"Battleaxe", 1}}},
}
