package store

import (
	"errors"
	"path/filepath"
	"testing"

	"shadoblade/internal/gamemap"
)

func level(depth int) *gamemap.Map {
	m := gamemap.New(depth, 10, 8, "Test Level")
	for y := 1; y < 7; y++ {
		for x := 1; x < 9; x++ {
			m.Set(x, y, gamemap.Floor)
		}
	}
	m.Set(5, 5, gamemap.DownStairs)
	m.Revealed[m.XYIdx(5, 5)] = true
	m.Bloodstains.Put(m.XYIdx(2, 2))
	return m
}

func checkLevel(t *testing.T, got *gamemap.Map, depth int) {
	t.Helper()
	if got.Depth != depth || got.Width != 10 || got.Height != 8 || got.Name != "Test Level" {
		t.Fatalf("header = %d %dx%d %q", got.Depth, got.Width, got.Height, got.Name)
	}
	if got.At(5, 5) != gamemap.DownStairs || got.At(0, 0) != gamemap.Wall {
		t.Error("tiles not preserved")
	}
	if !got.Revealed[got.XYIdx(5, 5)] {
		t.Error("revealed tiles not preserved")
	}
	if !got.Bloodstains.Has(got.XYIdx(2, 2)) {
		t.Error("bloodstains not preserved")
	}
}

func exercise(t *testing.T, s Storage) {
	t.Helper()
	if _, err := s.LoadLevel("run", 1); !errors.Is(err, ErrLevelNotFound) {
		t.Fatalf("empty store: err = %v", err)
	}
	if err := s.SaveLevel("run", level(1)); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveLevel("run", level(2)); err != nil {
		t.Fatal(err)
	}
	got, err := s.LoadLevel("run", 1)
	if err != nil {
		t.Fatal(err)
	}
	checkLevel(t, got, 1)

	if _, err := s.LoadLevel("other", 1); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("levels leaked across runs: err = %v", err)
	}

	// Saving again replaces the stored level.
	changed := level(2)
	changed.Set(3, 3, gamemap.Wall)
	if err := s.SaveLevel("run", changed); err != nil {
		t.Fatal(err)
	}
	got, err = s.LoadLevel("run", 2)
	if err != nil {
		t.Fatal(err)
	}
	if got.At(3, 3) != gamemap.Wall {
		t.Error("second save did not replace the first")
	}

	if err := s.DeleteRun("run"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.LoadLevel("run", 2); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("deleted run still loads: err = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exercise(t, NewMemoryStore())
}

func TestMemoryStoreCopies(t *testing.T) {
	s := NewMemoryStore()
	m := level(1)
	if err := s.SaveLevel("run", m); err != nil {
		t.Fatal(err)
	}
	m.Set(4, 4, gamemap.Wall)
	got, _ := s.LoadLevel("run", 1)
	if got.At(4, 4) != gamemap.Floor {
		t.Error("stored level changed with the live one")
	}
	got.Set(6, 6, gamemap.Wall)
	again, _ := s.LoadLevel("run", 1)
	if again.At(6, 6) != gamemap.Floor {
		t.Error("loaded level shares state with the store")
	}
}

func TestJSONStore(t *testing.T) {
	s, err := NewJSONStore(filepath.Join(t.TempDir(), "levels.json"))
	if err != nil {
		t.Fatal(err)
	}
	exercise(t, s)
}

func TestJSONStoreReopens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "levels.json")
	s, err := NewJSONStore(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SaveLevel("run", level(3)); err != nil {
		t.Fatal(err)
	}
	s.Close()

	reopened, err := NewJSONStore(path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := reopened.LoadLevel("run", 3)
	if err != nil {
		t.Fatal(err)
	}
	checkLevel(t, got, 3)
}

func TestOpen(t *testing.T) {
	s, err := Open("", "", "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*MemoryStore); !ok {
		t.Errorf("default kind = %T, want *MemoryStore", s)
	}
	s, err = Open(KindJSON, filepath.Join(t.TempDir(), "l.json"), "", nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*JSONStore); !ok {
		t.Errorf("json kind = %T", s)
	}
	if _, err := Open("sqlite", "", "", nil); err == nil {
		t.Error("unknown kind accepted")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DB_TYPE", KindJSON)
	t.Setenv("DB_FILE", filepath.Join(t.TempDir(), "env.json"))
	s, err := FromEnv(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := s.(*JSONStore); !ok {
		t.Errorf("FromEnv = %T, want *JSONStore", s)
	}
}
