package game

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Action is something the player asked for with a key press.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionWait
	ActionPickup
	ActionInventory
	ActionDrop
	ActionRemove
	ActionDescend
	ActionAscend
	ActionConfirm
	ActionCancel
	ActionQuit
)

// steps holds the offset of each movement action.
var steps = map[Action][2]int{
	ActionMoveN:  {0, -1},
	ActionMoveS:  {0, 1},
	ActionMoveE:  {1, 0},
	ActionMoveW:  {-1, 0},
	ActionMoveNE: {1, -1},
	ActionMoveNW: {-1, -1},
	ActionMoveSE: {1, 1},
	ActionMoveSW: {-1, 1},
}

// namedKeys covers the arrows and the keypad's diagonal keys.
var namedKeys = map[tcell.Key]Action{
	tcell.KeyUp:     ActionMoveN,
	tcell.KeyDown:   ActionMoveS,
	tcell.KeyRight:  ActionMoveE,
	tcell.KeyLeft:   ActionMoveW,
	tcell.KeyHome:   ActionMoveNW,
	tcell.KeyPgUp:   ActionMoveNE,
	tcell.KeyEnd:    ActionMoveSW,
	tcell.KeyPgDn:   ActionMoveSE,
	tcell.KeyEnter:  ActionConfirm,
	tcell.KeyEscape: ActionCancel,
}

// runeKeys is matched case-insensitively, except for the stairs.
var runeKeys = map[rune]Action{
	'k': ActionMoveN, 'j': ActionMoveS, 'l': ActionMoveE, 'h': ActionMoveW,
	'y': ActionMoveNW, 'u': ActionMoveNE, 'b': ActionMoveSW, 'n': ActionMoveSE,
	'8': ActionMoveN, '2': ActionMoveS, '6': ActionMoveE, '4': ActionMoveW,
	'7': ActionMoveNW, '9': ActionMoveNE, '1': ActionMoveSW, '3': ActionMoveSE,
	'.': ActionWait, ' ': ActionWait, '5': ActionWait,
	'g': ActionPickup, ',': ActionPickup,
	'i': ActionInventory,
	'd': ActionDrop,
	'r': ActionRemove,
	'>': ActionDescend,
	'<': ActionAscend,
	'q': ActionQuit,
}

func keyToAction(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return namedKeys[ev.Key()]
	}
	return runeKeys[unicode.ToLower(ev.Rune())]
}

// menuChoice maps a letter key to a menu row: 'a' is 0.
func menuChoice(ev *tcell.EventKey) (int, bool) {
	if ev.Key() != tcell.KeyRune {
		return 0, false
	}
	if r := ev.Rune(); r >= 'a' && r <= 'z' {
		return int(r - 'a'), true
	}
	return 0, false
}

// direction returns the step for a movement action.
func direction(a Action) (dx, dy int, ok bool) {
	d, ok := steps[a]
	return d[0], d[1], ok
}
