package assets

// Emoji constants used as entity glyphs.
const (
	GlyphPlayer   = "🧝"
	GlyphRat      = "🐀"
	GlyphDeer     = "🦌"
	GlyphWolf     = "🐺"
	GlyphBandit   = "🥷"
	GlyphGoblin   = "👺"
	GlyphKobold   = "🦎"
	GlyphOrc      = "👹"
	GlyphOgre     = "🧌"
	GlyphSpider   = "🕷"
	GlyphDragon   = "🐉"
	GlyphPotion   = "🧪"
	GlyphScroll   = "📜"
	GlyphRations  = "🍖"
	GlyphDagger   = "🗡"
	GlyphSword    = "⚔"
	GlyphShield   = "🛡"
	GlyphHelm     = "⛑"
	GlyphArmor    = "🥋"
	GlyphBoots    = "🥾"
	GlyphGloves   = "🧤"
	GlyphTrap     = "🪤"
	GlyphSpikes   = "📌"
	GlyphPortal   = "🌀"
	GlyphDoor     = "🚪"
	GlyphDoorOpen = "⬚"
	GlyphTorch    = "🔥"
	GlyphGold     = "💰"
	GlyphHit      = "💥"
	GlyphBlood    = "🩸"
	GlyphConfused = "💫"
)

// LoreOpening is shown when a new run begins.
const LoreOpening = `The Shadoblade was lost in the caverns beneath the
Whisperwood a century ago. Every village has its story of who
went down after it, and none of them end well.
You shoulder your pack and step between the trees.
Press any key to begin...`

// LevelName returns the display name of a depth.
func LevelName(depth int) string {
	switch {
	case depth <= 1:
		return "Into the Woods"
	case depth == 2:
		return "The Shallow Caves"
	case depth <= 4:
		return "Goblin Warrens"
	case depth <= 7:
		return "The Orc Holds"
	}
	return "The Deep Dark"
}
