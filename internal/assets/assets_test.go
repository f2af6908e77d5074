package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"chosenoffset.com/quiztasy/internal/config"
	"chosenoffset.com/quiztasy/internal/render/rendertest"
	"chosenoffset.com/quiztasy/internal/world/level"
)

func testProvider() (*Provider, *rendertest.Loader, *rendertest.Renderer) {
	cfg := config.DefaultConfig()
	cfg.Assets.Root = "assets"
	loader := rendertest.NewLoader()
	renderer := &rendertest.Renderer{}
	return NewProvider(cfg, loader, renderer), loader, renderer
}

func TestLoadMissingWrapsErrAssetMissing(t *testing.T) {
	p, loader, _ := testProvider()

	_, err := p.Load("images/nothing.png")
	if !errors.Is(err, ErrAssetMissing) {
		t.Fatalf("Expected ErrAssetMissing, got %v", err)
	}

	// Failures are remembered rather than retried every frame
	p.Load("images/nothing.png")
	if len(loader.Requests) != 1 {
		t.Errorf("Expected 1 load attempt, got %d", len(loader.Requests))
	}
}

func TestImageFallsBackToPlaceholder(t *testing.T) {
	p, _, renderer := testProvider()

	img := p.Image("images/nothing.png")
	if img == nil {
		t.Fatal("Expected a placeholder image")
	}
	if w, h := img.Size(); w != placeholderSize || h != placeholderSize {
		t.Errorf("Expected %dx%d placeholder, got %dx%d", placeholderSize, placeholderSize, w, h)
	}

	if again := p.Image("images/nothing.png"); again != img {
		t.Error("Expected the placeholder to be cached")
	}
	if renderer.Uploads != 1 {
		t.Errorf("Expected 1 placeholder upload, got %d", renderer.Uploads)
	}
}

func TestImageLoadsFromRoot(t *testing.T) {
	p, loader, _ := testProvider()
	loader.Add(filepath.Join("assets", "images", "battle", "enemies", "boss.png"), 300, 300)

	img := p.Enemy(level.KindBoss)
	if w, _ := img.Size(); w != 300 {
		t.Errorf("Expected the real 300px sprite, got width %d", w)
	}
}

func TestMarkerSize(t *testing.T) {
	p, loader, _ := testProvider()
	loader.Add(filepath.Join("assets", MarkerPath("stage_1")), 640, 800)

	// Default marker scale is 0.15
	if w, h := p.MarkerSize("stage_1"); w != 96 || h != 120 {
		t.Errorf("Expected scaled size 96x120, got %dx%d", w, h)
	}
	if w, h := p.MarkerSize("stage_2"); w != 96 || h != 96 {
		t.Errorf("Expected default size 96x96 for a missing marker, got %dx%d", w, h)
	}

	// The provider can size the registry directly
	reg, err := level.Load(p)
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}
	d, _ := reg.Get(1)
	if d.Width != 96 || d.Height != 120 {
		t.Errorf("Expected registry marker 96x120, got %dx%d", d.Width, d.Height)
	}
}

func TestMapSize(t *testing.T) {
	p, _, _ := testProvider()

	if w, h := p.MapSize(); w != 10560 || h != 7200 {
		t.Errorf("Expected configured fallback 10560x7200, got %dx%d", w, h)
	}
	if _, ok := p.Map(); ok {
		t.Error("Expected no map image")
	}

	p2, loader2, _ := testProvider()
	loader2.Add(filepath.Join("assets", MapPath), 3520, 2400)
	if w, h := p2.MapSize(); w != 10560 || h != 7200 {
		t.Errorf("Expected scaled map 10560x7200, got %dx%d", w, h)
	}
}

func TestHeroSheetPlaceholder(t *testing.T) {
	p, _, _ := testProvider()

	sheet := p.HeroSheet("girl")
	if sheet == nil {
		t.Fatal("Expected a placeholder sheet")
	}
	if sheet.Config.Frames != 4 || len(sheet.Config.Rows) != 4 {
		t.Errorf("Expected 4x4 sheet, got %d frames, %d rows", sheet.Config.Frames, len(sheet.Config.Rows))
	}
	if p.HeroSheet("girl") != sheet {
		t.Error("Expected the sheet to be cached")
	}
}

func TestHeroSheetFromImage(t *testing.T) {
	p, loader, _ := testProvider()
	loader.Add(filepath.Join("assets", HeroSheetPath("boy")), 4*48, 4*48)

	sheet := p.HeroSheet("boy")
	if sheet.Config.FrameWidth != 48 || sheet.Config.FrameHeight != 48 {
		t.Errorf("Expected 48px frames derived from the image, got %dx%d",
			sheet.Config.FrameWidth, sheet.Config.FrameHeight)
	}
}

func TestSheetFrames(t *testing.T) {
	img := rendertest.NewImage(128, 64)
	sheet, err := NewSpriteSheet(img, SheetConfig{
		Name: "test", FrameWidth: 32, FrameHeight: 32, Rows: []string{"down", "up"}, Frames: 4,
	})
	if err != nil {
		t.Fatalf("Failed to create sheet: %v", err)
	}

	tests := []struct {
		row   string
		index int
		x, y  int
	}{
		{"down", 0, 0, 0},
		{"down", 3, 96, 0},
		{"up", 1, 32, 32},
		{"up", 5, 32, 32},  // wraps
		{"up", -1, 96, 32}, // wraps backwards
	}
	for _, tt := range tests {
		r, err := sheet.FrameRect(tt.row, tt.index)
		if err != nil {
			t.Errorf("FrameRect(%s, %d) failed: %v", tt.row, tt.index, err)
			continue
		}
		if r.Min.X != tt.x || r.Min.Y != tt.y || r.Dx() != 32 || r.Dy() != 32 {
			t.Errorf("FrameRect(%s, %d): expected 32x32 at (%d,%d), got %v", tt.row, tt.index, tt.x, tt.y, r)
		}
	}

	if _, err := sheet.Frame("left", 0); err == nil {
		t.Error("Expected error for unknown row")
	}

	dst := rendertest.NewImage(100, 100)
	if err := sheet.DrawFrame(dst, "down", 1, 50, 50, 2); err != nil {
		t.Errorf("DrawFrame failed: %v", err)
	}
	if dst.Draws != 1 {
		t.Errorf("Expected 1 draw, got %d", dst.Draws)
	}
}

func TestSheetRejectsSmallImage(t *testing.T) {
	_, err := NewSpriteSheet(rendertest.NewImage(64, 64), SheetConfig{
		FrameWidth: 32, FrameHeight: 32, Rows: []string{"down", "up", "left"}, Frames: 4,
	})
	if err == nil {
		t.Error("Expected error for an image smaller than its layout")
	}
}

func TestParseSheetConfig(t *testing.T) {
	config, err := ParseSheetConfig([]byte(`{
		"name": "boy_walk",
		"frame_width": 64,
		"frame_height": 64,
		"rows": ["down", "up", "left", "right"],
		"frames": 4
	}`))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if config.Name != "boy_walk" || config.FrameWidth != 64 || len(config.Rows) != 4 {
		t.Errorf("Unexpected config: %+v", config)
	}

	if _, err := ParseSheetConfig([]byte(`{"frame_width": 0, "frame_height": 64, "rows": ["down"], "frames": 4}`)); err == nil {
		t.Error("Expected error for zero frame width")
	}
	if _, err := ParseSheetConfig([]byte(`{not json`)); err == nil {
		t.Error("Expected error for invalid JSON")
	}
}

func TestGeneratePlaceholders(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Map.Width, cfg.Map.Height = 600, 300
	cfg.Map.MarkerScale = 1

	written, err := GeneratePlaceholders(dir, cfg, false)
	if err != nil {
		t.Fatalf("Generation failed: %v", err)
	}

	for _, rel := range []string{
		MapPath,
		MarkerPath("spawn_point"),
		MarkerPath("stage_20"),
		HeroSheetPath("girl"),
		HeroSheetConfigPath("boy"),
		EnemyPath("miniboss"),
		BackgroundPath("level4_bg"),
	} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("Expected %s to be written: %v", rel, err)
		}
	}

	layout, err := LoadSheetConfig(filepath.Join(dir, filepath.FromSlash(HeroSheetConfigPath("boy"))))
	if err != nil {
		t.Fatalf("Generated sheet config does not load: %v", err)
	}
	if layout.Frames != cfg.Movement.FramesPerCycle {
		t.Errorf("Expected %d frames, got %d", cfg.Movement.FramesPerCycle, layout.Frames)
	}

	again, err := GeneratePlaceholders(dir, cfg, false)
	if err != nil {
		t.Fatalf("Second generation failed: %v", err)
	}
	if len(again) != 0 {
		t.Errorf("Expected existing files to be kept, rewrote %d", len(again))
	}
	if len(written) == 0 {
		t.Error("Expected files on the first run")
	}
}
