package assets

// TriggerDef describes what a trap does to whoever steps on it.
type TriggerDef struct {
	Damage           int
	TeleportDepth    int // relative depth, 0 for none
	PlayerOnly       bool
	SingleActivation bool
}

// PropDef describes a non-creature, non-item entity.
type PropDef struct {
	Name             string
	Glyph            string
	Color            int32
	Hidden           bool
	BlocksTile       bool
	BlocksVisibility bool
	Door             bool
	Trigger          *TriggerDef
	Light            int
	LightColor       int32
}

// Props is the prop table, keyed by spawn tag.
var Props = map[string]PropDef{
	"Door": {
		Name: "Door", Glyph: GlyphDoor, Color: 0x8b4513,
		BlocksTile: true, BlocksVisibility: true, Door: true,
	},
	"Bear Trap": {
		Name: "Bear Trap", Glyph: GlyphTrap, Color: 0xff0000, Hidden: true,
		Trigger: &TriggerDef{Damage: 6, SingleActivation: true},
	},
	"Spike Pit": {
		Name: "Spike Pit", Glyph: GlyphSpikes, Color: 0xff0000, Hidden: true,
		Trigger: &TriggerDef{Damage: 3},
	},
	"Shimmering Portal": {
		Name: "Shimmering Portal", Glyph: GlyphPortal, Color: 0x9370db,
		Trigger: &TriggerDef{TeleportDepth: 1, PlayerOnly: true},
		Light:   3, LightColor: 0x9370db,
	},
	"Torch": {
		Name: "Torch", Glyph: GlyphTorch, Color: 0xffd700,
		Light: 8, LightColor: 0xffd700,
	},
}
