package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestKeyToAction(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want Action
	}{
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionMoveN},
		{tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), ActionMoveSE},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), ActionConfirm},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), ActionCancel},
		{tcell.NewEventKey(tcell.KeyRune, 'y', tcell.ModNone), ActionMoveNW},
		{tcell.NewEventKey(tcell.KeyRune, 'Y', tcell.ModNone), ActionMoveNW},
		{tcell.NewEventKey(tcell.KeyRune, '3', tcell.ModNone), ActionMoveSE},
		{tcell.NewEventKey(tcell.KeyRune, '5', tcell.ModNone), ActionWait},
		{tcell.NewEventKey(tcell.KeyRune, ',', tcell.ModNone), ActionPickup},
		{tcell.NewEventKey(tcell.KeyRune, '>', tcell.ModNone), ActionDescend},
		{tcell.NewEventKey(tcell.KeyRune, '<', tcell.ModNone), ActionAscend},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), ActionNone},
		{tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), ActionNone},
	}
	for _, tc := range cases {
		if got := keyToAction(tc.ev); got != tc.want {
			t.Errorf("%s: got %d, want %d", tc.ev.Name(), got, tc.want)
		}
	}
}

func TestDirection(t *testing.T) {
	if dx, dy, ok := direction(ActionMoveSW); !ok || dx != -1 || dy != 1 {
		t.Errorf("SW = %d,%d,%v", dx, dy, ok)
	}
	if _, _, ok := direction(ActionWait); ok {
		t.Error("waiting is not a direction")
	}
}

func TestMenuChoice(t *testing.T) {
	if i, ok := menuChoice(tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone)); !ok || i != 2 {
		t.Errorf("c = %d,%v", i, ok)
	}
	if _, ok := menuChoice(tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModNone)); ok {
		t.Error("capitals are not menu rows")
	}
	if _, ok := menuChoice(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)); ok {
		t.Error("enter is not a menu row")
	}
}
