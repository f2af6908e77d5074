// Package assets loads the game's images relative to the asset root and
// substitutes generated placeholders for anything that is missing, so absent
// art never stops a session.
package assets

import (
	"errors"
	"fmt"
	"image"
	"log"
	"math"
	"path/filepath"

	"chosenoffset.com/quiztasy/internal/config"
	"chosenoffset.com/quiztasy/internal/placeholders"
	"chosenoffset.com/quiztasy/internal/render"
	"chosenoffset.com/quiztasy/internal/world/level"
)

// ErrAssetMissing is returned when an image cannot be loaded.
var ErrAssetMissing = errors.New("asset missing")

// Sizes of generated placeholders
const (
	placeholderSize  = 64
	heroFrameSize    = 64
	portraitWidth    = 160
	portraitHeight   = 240
	enemySize        = 240
	backgroundWidth  = 480
	backgroundHeight = 270
)

// Provider loads and caches images. It is used from the game loop only.
type Provider struct {
	root     string
	loader   render.ResourceLoader
	renderer render.Renderer
	mapCfg   config.MapConfig
	frames   int

	cache   map[string]render.Image
	missing map[string]error
	sheets  map[string]*SpriteSheet
}

var _ level.Sizer = (*Provider)(nil)

// NewProvider creates a provider for the configured asset root.
func NewProvider(cfg config.Config, loader render.ResourceLoader, renderer render.Renderer) *Provider {
	return &Provider{
		root:     cfg.Assets.Root,
		loader:   loader,
		renderer: renderer,
		mapCfg:   cfg.Map,
		frames:   cfg.Movement.FramesPerCycle,
		cache:    make(map[string]render.Image),
		missing:  make(map[string]error),
		sheets:   make(map[string]*SpriteSheet),
	}
}

// Path resolves a path relative to the asset root.
func (p *Provider) Path(rel string) string {
	return filepath.Join(p.root, filepath.FromSlash(rel))
}

// Load returns the image at rel. Failures wrap ErrAssetMissing and are
// logged once per path.
func (p *Provider) Load(rel string) (render.Image, error) {
	if img, ok := p.cache[rel]; ok {
		return img, nil
	}
	if err, ok := p.missing[rel]; ok {
		return nil, err
	}

	img, err := p.loader.LoadImage(p.Path(rel))
	if err != nil {
		err = fmt.Errorf("%w: %s: %v", ErrAssetMissing, rel, err)
		p.missing[rel] = err
		log.Printf("Warning: %v, using placeholder", err)
		return nil, err
	}
	p.cache[rel] = img
	return img, nil
}

// Image returns the image at rel, or a checkerboard placeholder.
func (p *Provider) Image(rel string) render.Image {
	return p.imageOr(rel, func() image.Image {
		return placeholders.CreateChecker(placeholderSize, placeholderSize, 8)
	})
}

// imageOr returns the image at rel or uploads the generated fallback, caching
// whichever was used.
func (p *Provider) imageOr(rel string, fallback func() image.Image) render.Image {
	img, err := p.Load(rel)
	if err == nil {
		return img
	}
	key := "placeholder:" + rel
	if img, ok := p.cache[key]; ok {
		return img
	}
	img = p.renderer.NewImageFromImage(fallback())
	p.cache[key] = img
	return img
}

// Map returns the world map image. There is no placeholder for the map; the
// caller draws a plain backdrop instead.
func (p *Provider) Map() (render.Image, bool) {
	img, err := p.Load(MapPath)
	return img, err == nil
}

// MapSize returns the scaled map size, from the image if present or the
// configured fallback dimensions.
func (p *Provider) MapSize() (int, int) {
	if img, ok := p.Map(); ok {
		w, h := img.Size()
		return scaled(w, p.mapCfg.Scale), scaled(h, p.mapCfg.Scale)
	}
	return p.mapCfg.Width, p.mapCfg.Height
}

// MarkerSize implements level.Sizer: the scaled size of a marker sprite, or
// the configured default when the sprite is missing.
func (p *Provider) MarkerSize(name string) (int, int) {
	img, err := p.Load(MarkerPath(name))
	if err != nil {
		return p.mapCfg.MarkerWidth, p.mapCfg.MarkerHeight
	}
	w, h := img.Size()
	return scaled(w, p.mapCfg.MarkerScale), scaled(h, p.mapCfg.MarkerScale)
}

// Marker returns the sprite for a level marker.
func (p *Provider) Marker(name string) render.Image {
	return p.imageOr(MarkerPath(name), func() image.Image {
		return placeholders.CreateMarker(p.mapCfg.MarkerWidth, p.mapCfg.MarkerHeight, name == "spawn_point")
	})
}

// HeroSheet returns the walking sheet for a hero type. The layout comes from
// the JSON file next to the image when present; otherwise rows are
// placeholders.SheetRows with square frames sized from the image height.
func (p *Provider) HeroSheet(hero string) *SpriteSheet {
	if sheet, ok := p.sheets[hero]; ok {
		return sheet
	}

	sheet, err := p.loadHeroSheet(hero)
	if err != nil {
		log.Printf("Warning: hero sheet %s: %v, using placeholder", hero, err)
		img := p.renderer.NewImageFromImage(placeholders.CreateHeroSheet(hero, heroFrameSize, p.frames))
		p.cache["placeholder:"+HeroSheetPath(hero)] = img
		sheet, _ = NewSpriteSheet(img, p.defaultSheetConfig(hero, heroFrameSize))
	}
	p.sheets[hero] = sheet
	return sheet
}

func (p *Provider) loadHeroSheet(hero string) (*SpriteSheet, error) {
	img, err := p.Load(HeroSheetPath(hero))
	if err != nil {
		return nil, err
	}

	layout, err := LoadSheetConfig(p.Path(HeroSheetConfigPath(hero)))
	if err != nil {
		_, h := img.Size()
		layout = p.defaultSheetConfig(hero, h/len(placeholders.SheetRows))
	}
	return NewSpriteSheet(img, layout)
}

func (p *Provider) defaultSheetConfig(hero string, frameSize int) SheetConfig {
	return SheetConfig{
		Name:        hero + "_walk",
		FrameWidth:  frameSize,
		FrameHeight: frameSize,
		Rows:        placeholders.SheetRows,
		Frames:      p.frames,
	}
}

// HeroPortrait returns the standing battle sprite for a hero type.
func (p *Provider) HeroPortrait(hero string) render.Image {
	return p.imageOr(HeroPortraitPath(hero), func() image.Image {
		return placeholders.CreateHeroPortrait(hero, portraitWidth, portraitHeight)
	})
}

// Enemy returns the battle sprite for an enemy kind.
func (p *Provider) Enemy(kind level.EnemyKind) render.Image {
	return p.imageOr(EnemyPath(string(kind)), func() image.Image {
		return placeholders.CreateEnemy(string(kind), enemySize)
	})
}

// Background returns a battle backdrop by name.
func (p *Provider) Background(name string) render.Image {
	return p.imageOr(BackgroundPath(name), func() image.Image {
		var variant int
		fmt.Sscanf(name, "level%d_bg", &variant)
		return placeholders.CreateBackground(backgroundWidth, backgroundHeight, variant-1)
	})
}

// Dispose frees every cached image.
func (p *Provider) Dispose() {
	for key, img := range p.cache {
		img.Dispose()
		delete(p.cache, key)
	}
	clear(p.sheets)
}

func scaled(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}
