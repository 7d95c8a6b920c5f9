package system

import (
	"testing"

	"shadoblade/internal/component"
	"shadoblade/internal/ecs"
	"shadoblade/internal/rng"
)

func TestAttackHits(t *testing.T) {
	cases := []struct {
		name                       string
		natural, modified, defense int
		want                       bool
	}{
		{"natural 1 misses despite bonuses", 1, 51, 5, false},
		{"natural 20 hits despite penalties", 20, -30, 5, true},
		{"beats defence", 12, 16, 15, true},
		{"equal to defence misses", 12, 15, 15, false},
		{"below defence misses", 19, 3, 15, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AttackHits(tc.natural, tc.modified, tc.defense); got != tc.want {
				t.Errorf("AttackHits(%d, %d, %d) = %v, want %v", tc.natural, tc.modified, tc.defense, got, tc.want)
			}
		})
	}
}

func TestArmorClass(t *testing.T) {
	c := newTestContext(t, 5, 5)
	// Base 10, quickness 11 adds 0, defence skill 1, Leather Armor 1 and
	// Leather Boots 0.4 round down together to 1.
	if got := c.armorClass(c.Player); got != 12 {
		t.Errorf("player AC = %d, want 12", got)
	}
	mob := addActor(c, 6, 6, "Orcs")
	c.World.Add(mob, component.NaturalAttackDefense{ArmorClass: 13})
	if got := c.armorClass(mob); got != 13 {
		t.Errorf("natural AC = %d, want 13", got)
	}
}

func TestWeaponOfPrefersEquipped(t *testing.T) {
	c := newTestContext(t, 5, 5)
	c.World.Add(c.Player, component.NaturalAttackDefense{Attacks: []component.NaturalAttack{{Name: "bites", Damage: rng.Dice{N: 1, Faces: 2}}}})
	if wpn := c.weaponOf(c.Player); wpn.damage != (rng.Dice{N: 1, Faces: 6}) {
		t.Errorf("player weapon damage = %v, want the shortsword's 1d6", wpn.damage)
	}

	mob := addActor(c, 6, 6, "Orcs")
	if wpn := c.weaponOf(mob); wpn != fists {
		t.Errorf("unarmed actor weapon = %+v, want fists", wpn)
	}
	claws := []component.NaturalAttack{
		{Name: "claws", Damage: rng.Dice{N: 1, Faces: 3}},
		{Name: "bites", Damage: rng.Dice{N: 1, Faces: 5}},
	}
	c.World.Add(mob, component.NaturalAttackDefense{Attacks: claws})
	seen := map[string]bool{}
	for range 100 {
		seen[c.weaponOf(mob).name] = true
	}
	if !seen["claws"] || !seen["bites"] {
		t.Errorf("natural attacks not both chosen: %v", seen)
	}
}

func TestMeleeQueuesDamage(t *testing.T) {
	c := newTestContext(t, 5, 5)
	target := addActor(c, 6, 5, "Orcs")
	// An AC no roll can beat leaves only natural 20s landing.
	c.World.Add(target, component.NaturalAttackDefense{ArmorClass: 100})
	hits := 0
	for range 400 {
		c.World.Add(c.Player, component.WantsToMelee{Target: target})
		Melee(c)
		if sd, ok := ecs.Fetch[component.SufferDamage](c.World, target); ok {
			hits++
			if len(sd.Amounts) != 1 || !sd.Amounts[0].FromPlayer {
				t.Fatalf("queued damage = %+v", sd)
			}
			c.World.Remove(target, component.CSufferDamage)
		}
		if c.World.Count(component.CWantsToMelee) != 0 {
			t.Fatal("melee intent survived the phase")
		}
	}
	if hits == 0 || hits > 60 {
		t.Errorf("%d hits out of 400 against AC 100, want only natural 20s", hits)
	}
	if hpOf(c, target) != 10 {
		t.Error("melee applied damage directly")
	}
}

func TestMeleeIgnoresDeadTarget(t *testing.T) {
	c := newTestContext(t, 5, 5)
	target := addActor(c, 6, 5, "Orcs")
	pools, _ := ecs.Fetch[component.Pools](c.World, target)
	pools.HitPoints.Current = 0
	c.World.Add(target, pools)
	c.World.Add(c.Player, component.WantsToMelee{Target: target})
	Melee(c)
	if c.World.Has(target, component.CSufferDamage) {
		t.Error("dead target was attacked")
	}
}

func TestApplyDamageSumsPerVictim(t *testing.T) {
	c := newTestContext(t, 5, 5)
	victim := addActor(c, 8, 8, "Orcs")
	IndexMap(c)
	component.QueueDamage(c.World, victim, 3, false)
	component.QueueDamage(c.World, victim, 4, false)
	ApplyDamage(c)
	if hp := hpOf(c, victim); hp != 3 {
		t.Errorf("hp = %d, want 3", hp)
	}
	if !c.Map.Bloodstains.Has(c.Map.XYIdx(8, 8)) {
		t.Error("no bloodstain under the victim")
	}
	if c.World.Count(component.CSufferDamage) != 0 {
		t.Error("queued damage survived the phase")
	}
	if !onTile(c, victim, 8, 8) {
		t.Error("surviving victim left the index")
	}
}

func TestApplyDamageGodMode(t *testing.T) {
	c := newTestContext(t, 5, 5)
	pools, _ := ecs.Fetch[component.Pools](c.World, c.Player)
	pools.GodMode = true
	c.World.Add(c.Player, pools)
	component.QueueDamage(c.World, c.Player, 1000, false)
	ApplyDamage(c)
	if hpOf(c, c.Player) != pools.HitPoints.Current {
		t.Error("god mode took damage")
	}
}

func TestApplyDamageKillRemovesFromIndex(t *testing.T) {
	c := newTestContext(t, 5, 5)
	victim := addActor(c, 6, 5, "Orcs")
	IndexMap(c)
	component.QueueDamage(c.World, victim, 50, true)
	ApplyDamage(c)
	if onTile(c, victim, 6, 5) {
		t.Error("killed entity still reachable through the index")
	}
	if c.Index.IsBlocked(c.Map.XYIdx(6, 5)) {
		t.Error("killed entity still blocks its tile")
	}
	if !c.World.Alive(victim) {
		t.Error("entity deleted before end of tick")
	}
	pools, _ := ecs.Fetch[component.Pools](c.World, c.Player)
	if pools.XP != 100 {
		t.Errorf("xp = %d, want 100", pools.XP)
	}
}

func TestLevelUpAtThousandXP(t *testing.T) {
	c := newTestContext(t, 5, 5)
	pools, _ := ecs.Fetch[component.Pools](c.World, c.Player)
	pools.HitPoints.Current = 3
	pools.Mana.Current = 0
	c.World.Add(c.Player, pools)

	kill := func() {
		victim := addActor(c, 20, 20, "Orcs")
		IndexMap(c)
		component.QueueDamage(c.World, victim, 50, true)
		ApplyDamage(c)
		DeleteTheDead(c)
	}
	for range 9 {
		kill()
	}
	pools, _ = ecs.Fetch[component.Pools](c.World, c.Player)
	if pools.XP != 900 || pools.Level != 1 {
		t.Fatalf("after 9 kills xp=%d level=%d, want 900 and 1", pools.XP, pools.Level)
	}
	if pools.HitPoints.Current != 3 {
		t.Fatal("pools restored before levelling")
	}

	kill()
	pools, _ = ecs.Fetch[component.Pools](c.World, c.Player)
	if pools.XP != 1000 || pools.Level != 2 {
		t.Fatalf("after 10 kills xp=%d level=%d, want 1000 and 2", pools.XP, pools.Level)
	}
	wantHP := component.PlayerHPAtLevel(11, 2)
	wantMana := component.ManaAtLevel(11, 2)
	if pools.HitPoints.Max != wantHP || pools.HitPoints.Current != wantHP {
		t.Errorf("hp = %d/%d, want %d/%d", pools.HitPoints.Current, pools.HitPoints.Max, wantHP, wantHP)
	}
	if pools.Mana.Max != wantMana || pools.Mana.Current != wantMana {
		t.Errorf("mana = %d/%d, want %d/%d", pools.Mana.Current, pools.Mana.Max, wantMana, wantMana)
	}
}

func TestKillCreditsGold(t *testing.T) {
	c := newTestContext(t, 5, 5)
	victim := addActor(c, 6, 5, "Bandits")
	pools, _ := ecs.Fetch[component.Pools](c.World, victim)
	pools.Gold = 7
	pools.Level = 2
	c.World.Add(victim, pools)
	IndexMap(c)
	component.QueueDamage(c.World, victim, 50, true)
	component.QueueDamage(c.World, victim, 50, true)
	ApplyDamage(c)
	player, _ := ecs.Fetch[component.Pools](c.World, c.Player)
	if player.Gold != 7 || player.XP != 200 {
		t.Errorf("gold=%v xp=%d, want 7 and 200", player.Gold, player.XP)
	}
}
