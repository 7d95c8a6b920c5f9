package mapbuilder

// Template legend:
//
//	' ' floor    '#' wall        '@' start        '>' down stairs
//	'~' deep     '=' shallow     ',' gravel       '"' grass
//	'g' goblin   'k' kobold      'o' orc          'O' ogre
//	'^' trap     '%' rations     '!' potion       '+' door
//	'*' torch

// PrefabLevel is a complete fixed layout.
type PrefabLevel struct {
	Name     string
	Template []string
}

// PrefabSection is a fixed layout stamped onto part of a generated map.
type PrefabSection struct {
	Name     string
	Template []string
	Horiz    HPlacement
	Vert     VPlacement
}

// PrefabRoom is a small vault stamped into open floor.
type PrefabRoom struct {
	Name       string
	Template   []string
	FirstDepth int
	LastDepth  int
}

// HPlacement and VPlacement position a section on the map.
type HPlacement uint8
type VPlacement uint8

const (
	PlaceLeft HPlacement = iota
	PlaceCenterH
	PlaceRight
)

const (
	PlaceTop VPlacement = iota
	PlaceCenterV
	PlaceBottom
)

// SunkenRuins is a populated constant level.
var SunkenRuins = PrefabLevel{
	Name: "Sunken Ruins",
	Template: []string{
		"##########################################",
		"#        #####           ,,,,,     ##   ##",
		"#  g     #   #   ####    ,,,,,  %  #  ! ##",
		"#        # ! #   #  #    ,,,,,     ##   ##",
		"###  #####   #   #  ####       ####### ###",
		"  #  #   ## ##   #     #  ===        #   #",
		"  #  # *  # #    #  g  #  =~~=   ^   # o #",
		"  #       # #    ####  #  =~~=       #   #",
		"  #  #    # #       #  #  ===     ####  ##",
		"  #  ###### ##   #  #  ####       #      #",
		"  #             ##  #       ###   #  k   #",
		"  ####    #######   #####     #   ##    ##",
		"     #    #     #       #  g  #    #    # ",
		"     #  % #  !  #   ^   #     #    ###  # ",
		"     #    #     #       ####  ####   #  # ",
		"     #                           *      # ",
		"     ################################### ",
	},
}

// UndergroundFort is stamped along the right edge of deeper levels.
var UndergroundFort = PrefabSection{
	Name:  "Underground Fort",
	Horiz: PlaceRight,
	Vert:  PlaceTop,
	Template: []string{
		"     ######## ",
		"     #      # ",
		"     #  o   # ",
		"  ####      # ",
		"  #  +  O   ##",
		"  ####   ^  # ",
		"     # o    # ",
		"     #      # ",
		"     ###+#### ",
		"       # #    ",
		"    ^  # #  ^ ",
		"       # #    ",
		"  g  ### ###  ",
		"    *     ! * ",
		"              ",
	},
}

// Vaults are small set pieces. Every floor tile of a vault touches its
// edge or another floor tile that does.
var Vaults = []PrefabRoom{
	{
		Name:       "Totally Not A Trap",
		FirstDepth: 0, LastDepth: 100,
		Template: []string{
			"     ",
			" ^^^ ",
			" ^!^ ",
			" ^ ^ ",
			"     ",
		},
	},
	{
		Name:       "Checkerboard",
		FirstDepth: 0, LastDepth: 100,
		Template: []string{
			"      ",
			" g#%# ",
			" # #  ",
			" #!#g ",
			"      ",
		},
	},
	{
		Name:       "Silly Smile",
		FirstDepth: 0, LastDepth: 100,
		Template: []string{
			"      ",
			" ^  ^ ",
			"  #   ",
			"      ",
			" ###  ",
			"      ",
		},
	},
	{
		Name:       "Ogre Den",
		FirstDepth: 5, LastDepth: 100,
		Template: []string{
			"       ",
			" ##### ",
			" # O % ",
			" #   # ",
			" ## ## ",
			"       ",
		},
	},
}
