package assets

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"chosenoffset.com/quiztasy/internal/config"
	"chosenoffset.com/quiztasy/internal/placeholders"
	"chosenoffset.com/quiztasy/internal/world/level"
)

// Heroes are the selectable hero types.
var Heroes = []string{"boy", "girl"}

// GeneratePlaceholders writes placeholder art for every image the game looks
// up into root, laid out like a real asset tree. Existing files are kept
// unless overwrite is set. It returns the paths written.
func GeneratePlaceholders(root string, cfg config.Config, overwrite bool) ([]string, error) {
	g := &generator{root: root, overwrite: overwrite}

	// The map is written at source resolution; the game scales it up.
	scale := cfg.Map.Scale
	points := make([]image.Point, 0, len(level.DefaultPlacements))
	for _, pl := range level.DefaultPlacements {
		points = append(points, image.Point{X: int(pl.X / scale), Y: int(pl.Y / scale)})
	}
	g.write(MapPath, func() image.Image {
		return placeholders.CreateMap(int(float64(cfg.Map.Width)/scale), int(float64(cfg.Map.Height)/scale), points)
	})

	// Markers are scaled down by MarkerScale when loaded.
	mw := int(float64(cfg.Map.MarkerWidth) / cfg.Map.MarkerScale)
	mh := int(float64(cfg.Map.MarkerHeight) / cfg.Map.MarkerScale)
	for _, pl := range level.DefaultPlacements {
		spawn := pl.ID == level.SpawnID
		g.write(MarkerPath(pl.Name), func() image.Image {
			return placeholders.CreateMarker(mw, mh, spawn)
		})
	}

	frames := cfg.Movement.FramesPerCycle
	for _, hero := range Heroes {
		g.write(HeroSheetPath(hero), func() image.Image {
			return placeholders.CreateHeroSheet(hero, heroFrameSize, frames)
		})
		g.writeJSON(HeroSheetConfigPath(hero), SheetConfig{
			Name:        hero + "_walk",
			FrameWidth:  heroFrameSize,
			FrameHeight: heroFrameSize,
			Rows:        placeholders.SheetRows,
			Frames:      frames,
		})
		g.write(HeroPortraitPath(hero), func() image.Image {
			return placeholders.CreateHeroPortrait(hero, portraitWidth, portraitHeight)
		})
	}

	for _, kind := range []level.EnemyKind{level.KindMinion, level.KindMiniBoss, level.KindBoss} {
		g.write(EnemyPath(string(kind)), func() image.Image {
			return placeholders.CreateEnemy(string(kind), enemySize)
		})
	}

	seen := make(map[string]bool)
	for _, pl := range level.DefaultPlacements {
		if pl.ID == level.SpawnID {
			continue
		}
		name := level.EncounterFor(pl.ID).Background
		if seen[name] {
			continue
		}
		seen[name] = true
		variant := len(seen) - 1
		g.write(BackgroundPath(name), func() image.Image {
			return placeholders.CreateBackground(backgroundWidth*4, backgroundHeight*4, variant)
		})
	}

	return g.written, g.err
}

type generator struct {
	root      string
	overwrite bool
	written   []string
	err       error
}

// target returns the absolute path for rel, or "" if it should be skipped.
func (g *generator) target(rel string) string {
	if g.err != nil {
		return ""
	}
	path := filepath.Join(g.root, filepath.FromSlash(rel))
	if !g.overwrite {
		if _, err := os.Stat(path); err == nil {
			return ""
		} else if !errors.Is(err, fs.ErrNotExist) {
			g.err = err
			return ""
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		g.err = fmt.Errorf("failed to create directory for %s: %w", rel, err)
		return ""
	}
	return path
}

func (g *generator) write(rel string, create func() image.Image) {
	path := g.target(rel)
	if path == "" {
		return
	}
	if err := placeholders.SavePNG(create(), path); err != nil {
		g.err = fmt.Errorf("failed to write %s: %w", rel, err)
		return
	}
	g.written = append(g.written, rel)
}

func (g *generator) writeJSON(rel string, v any) {
	path := g.target(rel)
	if path == "" {
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		g.err = fmt.Errorf("failed to encode %s: %w", rel, err)
		return
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		g.err = fmt.Errorf("failed to write %s: %w", rel, err)
		return
	}
	g.written = append(g.written, rel)
}
