package level

import (
	"errors"
	"testing"

	"chosenoffset.com/quiztasy/internal/core/geom"
)

func TestLoadDefaultCatalog(t *testing.T) {
	r, err := Load(FixedSizer{Width: 90, Height: 80})
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}
	if r.Len() != 21 {
		t.Fatalf("Expected 21 levels, got %d", r.Len())
	}

	spawn, ok := r.Spawn()
	if !ok {
		t.Fatal("Expected a spawn point")
	}
	if spawn.Interactive() {
		t.Error("Expected spawn point to be non-interactive")
	}
	if spawn.Pos != (geom.Point{X: 1930, Y: 1830}) {
		t.Errorf("Expected spawn at (1930, 1830), got %+v", spawn.Pos)
	}

	all := r.All()
	for i, l := range all {
		if l.ID != i {
			t.Errorf("Expected insertion order, index %d has id %d", i, l.ID)
		}
		if l.Width != 90 || l.Height != 80 {
			t.Errorf("Expected marker size 90x80, got %dx%d", l.Width, l.Height)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	r, _ := Load(nil)
	all := r.All()
	all[1].Radius = 0

	l, _ := r.Get(1)
	if l.Radius != 75 {
		t.Error("Expected registry to be unaffected by edits to All()")
	}
}

func TestGetUnknown(t *testing.T) {
	r, _ := Load(nil)
	if _, ok := r.Get(99); ok {
		t.Error("Expected level 99 to be absent")
	}
}

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Placement{{1, "a", 0, 0, 10}, {1, "b", 5, 5, 10}}, nil)
	if err == nil {
		t.Error("Expected duplicate id error")
	}
}

func TestCenterUsesIntegerHalf(t *testing.T) {
	d := Descriptor{Pos: geom.Point{X: 100, Y: 200}, Width: 45, Height: 31}
	c := d.Center()
	if c.X != 122 || c.Y != 215 {
		t.Errorf("Expected center (122, 215), got (%v, %v)", c.X, c.Y)
	}
}

func TestZonesFollowRegistryOrder(t *testing.T) {
	r, _ := Load(FixedSizer{Width: 100, Height: 100})
	zones := r.Zones()
	if len(zones) != r.Len() {
		t.Fatalf("Expected %d zones, got %d", r.Len(), len(zones))
	}
	if zones[1].ID != 1 || zones[1].Center != (geom.Point{X: 3050, Y: 1880}) {
		t.Errorf("Unexpected zone for stage 1: %+v", zones[1])
	}

	id, ok := geom.FindTrigger(geom.Point{X: 3050 + 75, Y: 1880}, zones)
	if !ok || id != 1 {
		t.Errorf("Expected stage 1 at the radius boundary, got id=%d ok=%v", id, ok)
	}
}

func TestCreateEncounterKnown(t *testing.T) {
	enc, err := CreateEncounter(4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if enc.EnemyHP != 8 || enc.EnemyDamage != 2.5 || enc.Difficulty != 1 || enc.TimerSeconds != 10 {
		t.Errorf("Unexpected level 4 tuning: %+v", enc)
	}
	if enc.EnemyKind != KindMiniBoss || enc.LevelID != 4 {
		t.Errorf("Expected level 4 mini-boss, got %+v", enc)
	}
}

func TestCreateEncounterUnknownFallsBack(t *testing.T) {
	want, _ := CreateEncounter(DefaultLevelID)

	for _, id := range []int{0, -1, 21, 999} {
		enc, err := CreateEncounter(id)
		if !errors.Is(err, ErrUnknownLevel) {
			t.Errorf("Level %d: expected ErrUnknownLevel, got %v", id, err)
		}
		if enc != want {
			t.Errorf("Level %d: expected level 1 fallback, got %+v", id, enc)
		}
		if got := EncounterFor(id); got != want {
			t.Errorf("EncounterFor(%d) = %+v, expected level 1 fallback", id, got)
		}
	}
}

func TestEveryStageIsTuned(t *testing.T) {
	r, _ := Load(nil)
	for _, l := range r.All() {
		if !l.Interactive() {
			continue
		}
		if !Tuned(l.ID) {
			t.Errorf("Stage %d has no encounter tuning", l.ID)
		}
		enc := EncounterFor(l.ID)
		if enc.EnemyHP <= 0 || enc.EnemyDamage <= 0 || enc.TimerSeconds <= 0 {
			t.Errorf("Stage %d has unusable tuning: %+v", l.ID, enc)
		}
		if enc.Difficulty < 1 || enc.Difficulty > 3 {
			t.Errorf("Stage %d difficulty out of range: %d", l.ID, enc.Difficulty)
		}
	}
}
