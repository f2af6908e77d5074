package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiztasy.json")
	data := `{"screen": {"width": 1280, "height": 720}, "movement": {"speed": 9}}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("Expected 1280x720, got %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Movement.Speed != 9 {
		t.Errorf("Expected speed 9, got %v", cfg.Movement.Speed)
	}
	// Untouched sections keep their defaults
	if cfg.Screen.FPS != 60 {
		t.Errorf("Expected default FPS 60, got %d", cfg.Screen.FPS)
	}
	if cfg.Battle.HitDamage != 3 {
		t.Errorf("Expected default hit damage 3, got %v", cfg.Battle.HitDamage)
	}
}

func TestLoadInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if cfg != DefaultConfig() {
		t.Error("Expected defaults alongside the parse error")
	}
}

func TestSanitize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Screen.FPS = 0
	cfg.Movement.Speed = -1
	cfg.Hero = "wizard"

	cfg = cfg.sanitize()
	if cfg.Screen.FPS != 60 {
		t.Errorf("Expected FPS reset to 60, got %d", cfg.Screen.FPS)
	}
	if cfg.Movement.Speed != 6 {
		t.Errorf("Expected speed reset to 6, got %v", cfg.Movement.Speed)
	}
	if cfg.Hero != "boy" {
		t.Errorf("Expected hero reset to boy, got %q", cfg.Hero)
	}
}

func TestWithOverrides(t *testing.T) {
	env := map[string]string{
		"QUIZTASY_ASSET_DIR":  "/srv/quiz",
		"QUIZTASY_HERO":       "Girl",
		"QUIZTASY_AUDIO":      "false",
		"QUIZTASY_FULLSCREEN": "not-a-bool",
	}
	cfg := DefaultConfig().WithOverrides(func(k string) string { return env[k] })

	if cfg.Assets.Root != "/srv/quiz" {
		t.Errorf("Expected asset root override, got %q", cfg.Assets.Root)
	}
	if cfg.Hero != "girl" {
		t.Errorf("Expected hero girl, got %q", cfg.Hero)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if !cfg.Screen.Fullscreen {
		t.Error("Expected invalid fullscreen override to be ignored")
	}
}

func TestHeroMusic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Hero = "girl"
	if got := cfg.HeroMusic(); got != "audio/ost/girlOst.mp3" {
		t.Errorf("Expected audio/ost/girlOst.mp3, got %q", got)
	}
}

func TestTickSeconds(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickSeconds(); got != 1.0/60.0 {
		t.Errorf("Expected 1/60, got %v", got)
	}
}
