package level

import (
	"errors"
	"fmt"
	"log"
)

// ErrUnknownLevel is returned when no encounter is tuned for a level ID.
var ErrUnknownLevel = errors.New("unknown level")

// DefaultLevelID is the encounter used when a level has no tuning.
const DefaultLevelID = 1

// EnemyKind groups enemies by sprite and presentation.
type EnemyKind string

const (
	KindMinion   EnemyKind = "minion"
	KindMiniBoss EnemyKind = "miniboss"
	KindBoss     EnemyKind = "boss"
)

// Encounter is the battle tuning for one level. It is created when a level is
// entered and consumed by a single battle.
type Encounter struct {
	LevelID      int
	EnemyName    string
	EnemyKind    EnemyKind
	EnemyHP      float64
	EnemyDamage  float64 // Damage dealt to the player per miss or timeout
	Difficulty   int     // Question tier, 1..3
	TimerSeconds float64
	Background   string // Battle background sprite name
}

// encounters is the static tuning table keyed by level ID.
var encounters = map[int]Encounter{
	1:  {EnemyName: "Slime", EnemyKind: KindMinion, EnemyHP: 6, EnemyDamage: 2, Difficulty: 1, TimerSeconds: 15},
	2:  {EnemyName: "Goblin", EnemyKind: KindMinion, EnemyHP: 6, EnemyDamage: 2, Difficulty: 1, TimerSeconds: 12},
	3:  {EnemyName: "Bat", EnemyKind: KindMinion, EnemyHP: 7, EnemyDamage: 2.5, Difficulty: 1, TimerSeconds: 12},
	4:  {EnemyName: "Gatekeeper", EnemyKind: KindMiniBoss, EnemyHP: 8, EnemyDamage: 2.5, Difficulty: 1, TimerSeconds: 10},
	5:  {EnemyName: "Skeleton", EnemyKind: KindMinion, EnemyHP: 9, EnemyDamage: 2.5, Difficulty: 2, TimerSeconds: 12},
	6:  {EnemyName: "Wolf", EnemyKind: KindMinion, EnemyHP: 9, EnemyDamage: 2.5, Difficulty: 2, TimerSeconds: 12},
	7:  {EnemyName: "Orc", EnemyKind: KindMinion, EnemyHP: 10, EnemyDamage: 2.5, Difficulty: 2, TimerSeconds: 11},
	8:  {EnemyName: "Librarian", EnemyKind: KindMiniBoss, EnemyHP: 12, EnemyDamage: 3, Difficulty: 2, TimerSeconds: 10},
	9:  {EnemyName: "Golem", EnemyKind: KindMinion, EnemyHP: 12, EnemyDamage: 3, Difficulty: 2, TimerSeconds: 11},
	10: {EnemyName: "Wraith", EnemyKind: KindMinion, EnemyHP: 12, EnemyDamage: 3, Difficulty: 2, TimerSeconds: 10},
	11: {EnemyName: "Harpy", EnemyKind: KindMinion, EnemyHP: 13, EnemyDamage: 3, Difficulty: 2, TimerSeconds: 10},
	12: {EnemyName: "Proctor", EnemyKind: KindMiniBoss, EnemyHP: 15, EnemyDamage: 3.5, Difficulty: 3, TimerSeconds: 10},
	13: {EnemyName: "Basilisk", EnemyKind: KindMinion, EnemyHP: 15, EnemyDamage: 3.5, Difficulty: 3, TimerSeconds: 10},
	14: {EnemyName: "Minotaur", EnemyKind: KindMinion, EnemyHP: 15, EnemyDamage: 3.5, Difficulty: 3, TimerSeconds: 9},
	15: {EnemyName: "Lich", EnemyKind: KindMinion, EnemyHP: 16, EnemyDamage: 3.5, Difficulty: 3, TimerSeconds: 9},
	16: {EnemyName: "Dean's Shadow", EnemyKind: KindMiniBoss, EnemyHP: 18, EnemyDamage: 4, Difficulty: 3, TimerSeconds: 9},
	17: {EnemyName: "Chimera", EnemyKind: KindMinion, EnemyHP: 18, EnemyDamage: 4, Difficulty: 3, TimerSeconds: 8},
	18: {EnemyName: "Hydra", EnemyKind: KindMinion, EnemyHP: 18, EnemyDamage: 4, Difficulty: 3, TimerSeconds: 8},
	19: {EnemyName: "Wyvern", EnemyKind: KindMinion, EnemyHP: 20, EnemyDamage: 4, Difficulty: 3, TimerSeconds: 8},
	20: {EnemyName: "The Final Examiner", EnemyKind: KindBoss, EnemyHP: 24, EnemyDamage: 5, Difficulty: 3, TimerSeconds: 8},
}

// CreateEncounter returns the tuning for a level. For an ID without tuning it
// returns ErrUnknownLevel together with the default level's encounter, so the
// caller always has a usable configuration.
func CreateEncounter(id int) (Encounter, error) {
	enc, ok := lookup(id)
	if !ok {
		fallback, _ := lookup(DefaultLevelID)
		return fallback, fmt.Errorf("level %d: %w", id, ErrUnknownLevel)
	}
	return enc, nil
}

// EncounterFor is CreateEncounter with the fallback applied: unknown IDs are
// logged and served the default level's encounter.
func EncounterFor(id int) Encounter {
	enc, err := CreateEncounter(id)
	if err != nil {
		log.Printf("Warning: %v, falling back to level %d", err, DefaultLevelID)
	}
	return enc
}

// Tuned reports whether a level has its own encounter tuning.
func Tuned(id int) bool {
	_, ok := encounters[id]
	return ok
}

func lookup(id int) (Encounter, bool) {
	enc, ok := encounters[id]
	if !ok {
		return Encounter{}, false
	}
	enc.LevelID = id
	enc.Background = backgroundFor(id)
	return enc, true
}

// backgroundFor picks one of the battle backdrops; stages share them in
// groups of five.
func backgroundFor(id int) string {
	return fmt.Sprintf("level%d_bg", (id-1)/5+1)
}
