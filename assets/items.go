package assets

// ConsumableDef describes what using an item does.
type ConsumableDef struct {
	Healing      int
	Damage       int
	Range        int
	AreaOfEffect int
	Confusion    int
	MagicMapping bool
	Food         bool
}

// WeaponDef describes a melee weapon.
type WeaponDef struct {
	Attribute string // "might" or "quickness"
	Damage    string
	HitBonus  int
}

// WearableDef describes armour.
type WearableDef struct {
	Slot       string
	ArmorClass float64
}

// ItemDef describes a spawnable item.
type ItemDef struct {
	Name              string
	Glyph             string
	Color             int32
	Weight            float64
	InitiativePenalty float64
	Value             float64
	Consumable        *ConsumableDef
	Weapon            *WeaponDef
	Wearable          *WearableDef
}

// Items is the item table, keyed by spawn tag.
var Items = map[string]ItemDef{
	"Health Potion": {
		Name: "Health Potion", Glyph: GlyphPotion, Color: 0xff00ff, Weight: 0.5, Value: 50,
		Consumable: &ConsumableDef{Healing: 8},
	},
	"Magic Missile Scroll": {
		Name: "Magic Missile Scroll", Glyph: GlyphScroll, Color: 0x00ffff, Weight: 0.5, Value: 50,
		Consumable: &ConsumableDef{Damage: 20, Range: 6},
	},
	"Fireball Scroll": {
		Name: "Fireball Scroll", Glyph: GlyphScroll, Color: 0xffa500, Weight: 0.5, Value: 100,
		Consumable: &ConsumableDef{Damage: 20, Range: 6, AreaOfEffect: 3},
	},
	"Confusion Scroll": {
		Name: "Confusion Scroll", Glyph: GlyphScroll, Color: 0xff69b4, Weight: 0.5, Value: 100,
		Consumable: &ConsumableDef{Range: 6, Confusion: 4},
	},
	"Magic Mapping Scroll": {
		Name: "Magic Mapping Scroll", Glyph: GlyphScroll, Color: 0x00bfff, Weight: 0.5, Value: 50,
		Consumable: &ConsumableDef{MagicMapping: true},
	},
	"Rations": {
		Name: "Rations", Glyph: GlyphRations, Color: 0x32cd32, Weight: 2, Value: 10,
		Consumable: &ConsumableDef{Food: true},
	},
	"Dagger": {
		Name: "Dagger", Glyph: GlyphDagger, Color: 0xc0c0c0, Weight: 1, Value: 2,
		Weapon: &WeaponDef{Attribute: "quickness", Damage: "1d4", HitBonus: 0},
	},
	"Shortsword": {
		Name: "Shortsword", Glyph: GlyphDagger, Color: 0xdcdcdc, Weight: 2, Value: 10,
		Weapon: &WeaponDef{Attribute: "might", Damage: "1d6"},
	},
	"Longsword": {
		Name: "Longsword", Glyph: GlyphSword, Color: 0xffff00, Weight: 3, InitiativePenalty: 1, Value: 15,
		Weapon: &WeaponDef{Attribute: "might", Damage: "1d8"},
	},
	"Battleaxe": {
		Name: "Battleaxe", Glyph: GlyphSword, Color: 0xff8c00, Weight: 6, InitiativePenalty: 2, Value: 30,
		Weapon: &WeaponDef{Attribute: "might", Damage: "1d10", HitBonus: -1},
	},
	"Shield": {
		Name: "Shield", Glyph: GlyphShield, Color: 0x00ffff, Weight: 6, InitiativePenalty: 1, Value: 10,
		Wearable: &WearableDef{Slot: "shield", ArmorClass: 1},
	},
	"Leather Armor": {
		Name: "Leather Armor", Glyph: GlyphArmor, Color: 0xa52a2a, Weight: 10, InitiativePenalty: 1, Value: 10,
		Wearable: &WearableDef{Slot: "torso", ArmorClass: 1},
	},
	"Chain Mail": {
		Name: "Chain Mail", Glyph: GlyphArmor, Color: 0xc0c0c0, Weight: 20, InitiativePenalty: 2, Value: 50,
		Wearable: &WearableDef{Slot: "torso", ArmorClass: 2},
	},
	"Iron Helm": {
		Name: "Iron Helm", Glyph: GlyphHelm, Color: 0xc0c0c0, Weight: 4, InitiativePenalty: 0.5, Value: 20,
		Wearable: &WearableDef{Slot: "head", ArmorClass: 1},
	},
	"Leather Boots": {
		Name: "Leather Boots", Glyph: GlyphBoots, Color: 0xa52a2a, Weight: 2, Value: 5,
		Wearable: &WearableDef{Slot: "feet", ArmorClass: 0.4},
	},
	"Leather Gloves": {
		Name: "Leather Gloves", Glyph: GlyphGloves, Color: 0xa52a2a, Weight: 1, Value: 5,
		Wearable: &WearableDef{Slot: "hands", ArmorClass: 0.2},
	},
	"Hide": {
		Name: "Hide", Glyph: GlyphArmor, Color: 0xd2b48c, Weight: 5, Value: 2,
	},
}

// StartingEquipment is what a new player carries.
var StartingEquipment = struct {
	Equipped []string
	Carried  []string
}{
	Equipped: []string{"Shortsword", "Leather Armor", "Leather Boots"},
	Carried:  []string{"Rations", "Health Potion"},
}
