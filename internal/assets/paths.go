package assets

import "fmt"

// Layout of the asset tree, relative to the asset root.
const (
	MapPath   = "images/map/lspu_map.png"
	SFXDir    = "audio/sfx"
	levelDir  = "images/levels"
	walkDir   = "images/characters"
	battleDir = "images/battle"
)

// MarkerPath is the sprite for a level marker, by level name.
func MarkerPath(name string) string {
	return fmt.Sprintf("%s/%s.png", levelDir, name)
}

// HeroSheetPath is the walking sheet for a hero type.
func HeroSheetPath(hero string) string {
	return fmt.Sprintf("%s/%s_walk.png", walkDir, hero)
}

// HeroSheetConfigPath is the optional JSON layout next to a walking sheet.
func HeroSheetConfigPath(hero string) string {
	return fmt.Sprintf("%s/%s_walk.json", walkDir, hero)
}

// HeroPortraitPath is the standing battle sprite for a hero type.
func HeroPortraitPath(hero string) string {
	return fmt.Sprintf("%s/%s/%s_stand.png", battleDir, hero, hero)
}

// EnemyPath is the battle sprite for an enemy kind.
func EnemyPath(kind string) string {
	return fmt.Sprintf("%s/enemies/%s.png", battleDir, kind)
}

// BackgroundPath is a battle backdrop by name (e.g. "level1_bg").
func BackgroundPath(name string) string {
	return fmt.Sprintf("%s/backgrounds/%s.png", battleDir, name)
}

// SFXPath is an optional recorded sound effect.
func SFXPath(name string) string {
	return fmt.Sprintf("%s/%s.mp3", SFXDir, name)
}
