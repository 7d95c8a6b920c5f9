package rng

import "testing"

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 100; i++ {
		if x, y := a.RollDice(3, 6), b.RollDice(3, 6); x != y {
			t.Fatalf("roll %d diverged: %d vs %d", i, x, y)
		}
	}
}

func TestRollDiceBounds(t *testing.T) {
	g := New(1)
	for i := 0; i < 500; i++ {
		v := g.RollDice(2, 6)
		if v < 2 || v > 12 {
			t.Fatalf("2d6 out of range: %d", v)
		}
	}
	if g.RollDice(1, 0) != 0 {
		t.Error("zero-faced die should roll 0")
	}
}

func TestRange(t *testing.T) {
	g := New(3)
	for i := 0; i < 200; i++ {
		if v := g.Range(6, 10); v < 6 || v >= 10 {
			t.Fatalf("Range(6,10) = %d", v)
		}
	}
	if g.Range(5, 5) != 5 {
		t.Error("empty range should return lo")
	}
}

func TestParseDice(t *testing.T) {
	cases := []struct {
		in   string
		want Dice
	}{
		{"1d8", Dice{1, 8, 0}},
		{"2d4+1", Dice{2, 4, 1}},
		{"1d6-2", Dice{1, 6, -2}},
	}
	for _, c := range cases {
		got, err := ParseDice(c.in)
		if err != nil {
			t.Fatalf("ParseDice(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Errorf("ParseDice(%q) = %+v, want %+v", c.in, got, c.want)
		}
		if got.String() != c.in {
			t.Errorf("String() = %q, want %q", got.String(), c.in)
		}
	}
	if _, err := ParseDice("eight"); err == nil {
		t.Error("expected error for malformed dice")
	}
}
