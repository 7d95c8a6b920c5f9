package assets

// levelLore holds atmospheric snippets shown when a depth is first entered.
var levelLore = [][]string{
	{ // Into the Woods
		"Birdsong stops a few paces past the treeline. The road keeps going anyway.",
		"Someone has nailed a warning to an oak. The warning has been eaten by something.",
	},
	{ // The Shallow Caves
		"Water drips somewhere ahead, patient as a clock.",
		"Scratch marks on the walls count something. You stop counting after forty.",
	},
	{ // Goblin Warrens
		"The tunnels smell of smoke and old stew. Goblins have been here a long time.",
		"A crude drawing of a sword is scrawled in soot. It has been crossed out many times.",
	},
	{ // The Orc Holds
		"The walls are worked stone here. Orcs do not build this well.",
		"War drums echo from somewhere below. They have been echoing for some time.",
	},
	{ // The Deep Dark
		"Your torch seems smaller down here.",
		"Something very large has polished this floor by sliding across it.",
	},
}

// LevelLore returns the snippets for a depth.
func LevelLore(depth int) []string {
	switch {
	case depth <= 1:
		return levelLore[0]
	case depth == 2:
		return levelLore[1]
	case depth <= 4:
		return levelLore[2]
	case depth <= 7:
		return levelLore[3]
	}
	return levelLore[4]
}
