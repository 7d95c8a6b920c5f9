package assets

// Stats are an actor's attribute scores.
type Stats struct {
	Might, Fitness, Quickness, Intelligence int
}

// AttackDef is one natural attack written as dice ("1d4+1").
type AttackDef struct {
	Name     string
	HitBonus int
	Damage   string
}

// MobDef describes a spawnable creature.
type MobDef struct {
	Name       string
	Glyph      string
	Color      int32
	Faction    string
	Vision     int
	Movement   string // "static", "random" or "random_waypoint"
	Stats      Stats
	Melee      int
	Defense    int
	Level      int
	ArmorClass int
	Attacks    []AttackDef
	Equipped   []string
	Loot       string
	Gold       string
	Light      int
	LightColor int32
}

// Mobs is the creature table, keyed by spawn tag.
var Mobs = map[string]MobDef{
	"Rat": {
		Name: "Rat", Glyph: GlyphRat, Color: 0x8b7355, Faction: "Mindless",
		Vision: 8, Movement: "random", Stats: Stats{Might: 7, Fitness: 8, Quickness: 12, Intelligence: 3},
		Level: 1, ArmorClass: 11,
		Attacks: []AttackDef{{Name: "bite", HitBonus: 0, Damage: "1d4"}},
	},
	"Deer": {
		Name: "Deer", Glyph: GlyphDeer, Color: 0xc68e17, Faction: "Herbivores",
		Vision: 12, Movement: "random_waypoint", Stats: Stats{Might: 9, Fitness: 11, Quickness: 14, Intelligence: 3},
		Level: 1, ArmorClass: 11,
		Attacks: []AttackDef{{Name: "antlers", Damage: "1d4"}},
		Loot:    "Animal",
	},
	"Wolf": {
		Name: "Wolf", Glyph: GlyphWolf, Color: 0x9e9e9e, Faction: "Carnivores",
		Vision: 12, Movement: "random_waypoint", Stats: Stats{Might: 12, Fitness: 11, Quickness: 14, Intelligence: 3},
		Melee: 1, Level: 2, ArmorClass: 12,
		Attacks: []AttackDef{{Name: "bite", HitBonus: 1, Damage: "1d6"}, {Name: "claw", Damage: "1d4"}},
		Loot:    "Animal",
	},
	"Bandit": {
		Name: "Bandit", Glyph: GlyphBandit, Color: 0xd2691e, Faction: "Bandits",
		Vision: 10, Movement: "random_waypoint", Stats: Stats{Might: 11, Fitness: 11, Quickness: 12, Intelligence: 10},
		Melee: 1, Defense: 1, Level: 1, ArmorClass: 10,
		Equipped: []string{"Dagger"},
		Loot:     "Bandits", Gold: "1d6",
	},
	"Goblin": {
		Name: "Goblin", Glyph: GlyphGoblin, Color: 0x32cd32, Faction: "Cave Goblins",
		Vision: 8, Movement: "static", Stats: Stats{Might: 9, Fitness: 9, Quickness: 12, Intelligence: 8},
		Level: 1, ArmorClass: 11,
		Attacks: []AttackDef{{Name: "claws", Damage: "1d4"}},
		Loot:    "Goblins", Gold: "1d4",
	},
	"Kobold": {
		Name: "Kobold", Glyph: GlyphKobold, Color: 0xb22222, Faction: "Cave Goblins",
		Vision: 8, Movement: "random", Stats: Stats{Might: 8, Fitness: 9, Quickness: 13, Intelligence: 8},
		Level: 1, ArmorClass: 11,
		Attacks: []AttackDef{{Name: "spear jab", HitBonus: 1, Damage: "1d4"}},
		Loot:    "Goblins", Gold: "1d3",
	},
	"Orc": {
		Name: "Orc", Glyph: GlyphOrc, Color: 0xff4500, Faction: "Orcs",
		Vision: 8, Movement: "random_waypoint", Stats: Stats{Might: 13, Fitness: 12, Quickness: 10, Intelligence: 8},
		Melee: 2, Defense: 1, Level: 2, ArmorClass: 12,
		Equipped: []string{"Longsword", "Leather Armor"},
		Loot:     "Orcs", Gold: "2d6",
		Light: 6, LightColor: 0xffa500,
	},
	"Spider": {
		Name: "Cave Spider", Glyph: GlyphSpider, Color: 0x800080, Faction: "Mindless",
		Vision: 6, Movement: "static", Stats: Stats{Might: 8, Fitness: 10, Quickness: 15, Intelligence: 2},
		Melee: 1, Level: 2, ArmorClass: 13,
		Attacks: []AttackDef{{Name: "bite", HitBonus: 2, Damage: "1d6"}},
	},
	"Ogre": {
		Name: "Ogre", Glyph: GlyphOgre, Color: 0x556b2f, Faction: "Orcs",
		Vision: 8, Movement: "random_waypoint", Stats: Stats{Might: 17, Fitness: 16, Quickness: 8, Intelligence: 6},
		Melee: 3, Defense: 1, Level: 4, ArmorClass: 13,
		Attacks: []AttackDef{{Name: "club", HitBonus: 1, Damage: "2d6"}},
		Loot:    "Orcs", Gold: "3d6",
	},
	"Black Dragon": {
		Name: "Black Dragon", Glyph: GlyphDragon, Color: 0x4b0082, Faction: "Wyrms",
		Vision: 12, Movement: "static", Stats: Stats{Might: 20, Fitness: 18, Quickness: 12, Intelligence: 16},
		Melee: 5, Defense: 4, Level: 10, ArmorClass: 17,
		Attacks: []AttackDef{{Name: "bite", HitBonus: 4, Damage: "2d10"}, {Name: "claw", HitBonus: 2, Damage: "2d6"}},
		Gold:    "10d10",
		Light:   4, LightColor: 0x8a2be2,
	},
}
