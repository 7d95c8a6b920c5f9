package assets

// Reaction is how one faction responds to another on sight.
type Reaction uint8

const (
	Ignore Reaction = iota
	Attack
	Flee
)

func (r Reaction) String() string {
	switch r {
	case Attack:
		return "attack"
	case Flee:
		return "flee"
	}
	return "ignore"
}

// PlayerFaction is the faction the player belongs to.
const PlayerFaction = "Player"

// FactionTable maps a faction to its reactions towards others. The
// "Default" entry applies to factions not listed explicitly.
type FactionTable map[string]map[string]Reaction

// Reaction looks up how mine responds to theirs. Unknown factions ignore.
func (t FactionTable) Reaction(mine, theirs string) Reaction {
	responses, ok := t[mine]
	if !ok {
		return Ignore
	}
	if r, ok := responses[theirs]; ok {
		return r
	}
	if r, ok := responses["Default"]; ok {
		return r
	}
	return Ignore
}

// Factions is the game's reaction table.
var Factions = FactionTable{
	PlayerFaction:  {"Default": Attack, "Herbivores": Ignore},
	"Mindless":     {"Default": Attack, "Mindless": Ignore},
	"Herbivores":   {"Default": Flee, "Herbivores": Ignore},
	"Carnivores":   {"Default": Attack, "Carnivores": Ignore, "Orcs": Flee, "Wyrms": Flee},
	"Bandits":      {"Default": Attack, "Bandits": Ignore},
	"Cave Goblins": {"Default": Attack, "Cave Goblins": Ignore, "Wyrms": Flee},
	"Orcs":         {"Default": Attack, "Orcs": Ignore, "Wyrms": Ignore},
	"Wyrms":        {"Default": Attack, "Wyrms": Ignore},
}
