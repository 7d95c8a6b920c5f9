package component

import "testing"

func TestAttrBonus(t *testing.T) {
	cases := map[int]int{10: 0, 11: 0, 12: 1, 18: 4, 8: -1, 3: -3}
	for v, want := range cases {
		if got := AttrBonus(v); got != want {
			t.Errorf("AttrBonus(%d) = %d, want %d", v, got, want)
		}
	}
}

func TestPoolFormulas(t *testing.T) {
	if got := PlayerHPAtLevel(11, 1); got != 14 {
		t.Errorf("PlayerHPAtLevel(11, 1) = %d, want 14", got)
	}
	if got := PlayerHPAtLevel(14, 2); got != 22 {
		t.Errorf("PlayerHPAtLevel(14, 2) = %d, want 22", got)
	}
	if got := ManaAtLevel(3, 2); got != 2 {
		t.Errorf("ManaAtLevel(3, 2) = %d, want 2", got)
	}
	if got := ManaAtLevel(1, 1); got != 0 {
		t.Errorf("ManaAtLevel never goes negative, got %d", got)
	}
	if got := CarryCapacity(NewAttribute(11)); got != 165 {
		t.Errorf("CarryCapacity = %v, want 165", got)
	}
}
