package factory

import (
	"testing"

	"shadoblade/assets"
	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/gamemap"
	"shadoblade/internal/mapbuilder"
	"shadoblade/internal/rng"
)

var _ mapbuilder.Spawner = LevelSpawner{}

func TestNewPlayerComponents(t *testing.T) {
	w := ecs.NewWorld()
	id := NewPlayer(w, 5, 3)

	pos, ok := ecs.Fetch[component.Position](w, id)
	if !ok || pos.X != 5 || pos.Y != 3 {
		t.Fatalf("position = %+v, %v; want (5,3)", pos, ok)
	}
	pools, ok := ecs.Fetch[component.Pools](w, id)
	if !ok {
		t.Fatal("player must have pools")
	}
	if pools.Level != 1 || pools.HitPoints.Current != pools.HitPoints.Max || pools.HitPoints.Max != component.PlayerHPAtLevel(11, 1) {
		t.Errorf("pools = %+v", pools)
	}
	for _, c := range []ecs.ComponentType{component.CPlayer, component.CBlocksTile, component.CViewshed, component.CInitiative, component.CHungerClock, component.CEquipmentChanged} {
		if !w.Has(id, c) {
			t.Errorf("player missing component %d", c)
		}
	}

	equipped, carried := 0, 0
	for _, item := range w.Query(component.CEquipped) {
		if eq, _ := ecs.Fetch[component.Equipped](w, item); eq.Owner == id {
			equipped++
		}
	}
	for _, item := range w.Query(component.CInBackpack) {
		if w.Get(item, component.CInBackpack).(component.InBackpack).Owner == id {
			carried++
		}
	}
	if equipped != len(assets.StartingEquipment.Equipped) || carried != len(assets.StartingEquipment.Carried) {
		t.Errorf("equipped=%d carried=%d", equipped, carried)
	}
}

func TestEveryTagSpawns(t *testing.T) {
	w := ecs.NewWorld()
	r := rng.New(1)
	for _, e := range assets.SpawnTable {
		id, ok := Spawn(w, r, 3, e.Name, At(2, 2))
		if !ok {
			t.Errorf("%s did not spawn", e.Name)
			continue
		}
		if !w.Has(id, component.CPosition) || !w.Has(id, component.CName) {
			t.Errorf("%s lacks position or name", e.Name)
		}
	}
	if _, ok := Spawn(w, r, 3, "Unicorn", At(1, 1)); ok {
		t.Error("unknown tag spawned")
	}
}

func TestMobHitPointsFollowLevel(t *testing.T) {
	w := ecs.NewWorld()
	r := rng.New(4)
	def := assets.Mobs["Rat"]
	for range 50 {
		id := NewMob(w, r, def, 1, 1)
		pools := w.Get(id, component.CPools).(component.Pools)
		if pools.HitPoints.Max < 2 || pools.HitPoints.Max > 9 {
			t.Fatalf("level 1 rat rolled %d hp", pools.HitPoints.Max)
		}
	}
}

func TestMobEquipmentIsWorn(t *testing.T) {
	w := ecs.NewWorld()
	id := NewMob(w, rng.New(1), assets.Mobs["Bandit"], 1, 1)
	found := false
	for _, item := range w.Query(component.CEquipped, component.CMeleeWeapon) {
		if w.Get(item, component.CEquipped).(component.Equipped).Owner == id {
			found = true
		}
	}
	if !found {
		t.Error("bandit is not wielding its dagger")
	}
}

func TestPortalTargetsDeeperLevel(t *testing.T) {
	w := ecs.NewWorld()
	id := NewProp(w, assets.Props["Shimmering Portal"], 4, 3, 3)
	tp, ok := ecs.Fetch[component.TeleportTo](w, id)
	if !ok || tp.Depth != 5 || !tp.PlayerOnly || tp.X >= 0 {
		t.Errorf("teleport = %+v, %v", tp, ok)
	}
	if !w.Has(id, component.CEntryTrigger) {
		t.Error("portal has no trigger")
	}
}

func TestLevelSpawnerPlacesByIndex(t *testing.T) {
	w := ecs.NewWorld()
	m := gamemap.New(2, 10, 10, "t")
	LevelSpawner{World: w, Map: m, RNG: rng.New(1)}.Spawn(m.XYIdx(4, 7), "Health Potion")
	items := w.Query(component.CItem, component.CPosition)
	if len(items) != 1 {
		t.Fatalf("items on map = %d", len(items))
	}
	if p := w.Get(items[0], component.CPosition).(component.Position); p.X != 4 || p.Y != 7 {
		t.Errorf("potion at %+v", p)
	}
}
