// Package config holds the immutable settings every component receives at
// construction. Values come from built-in defaults, an optional JSON file and
// finally environment variables (optionally loaded from a .env file).
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all game settings
type Config struct {
	Screen   ScreenConfig   `json:"screen"`
	Map      MapConfig      `json:"map"`
	Movement MovementConfig `json:"movement"`
	Battle   BattleConfig   `json:"battle"`
	Audio    AudioConfig    `json:"audio"`
	Assets   AssetConfig    `json:"assets"`

	// Hero selects the sprite set and map music ("boy" or "girl")
	Hero string `json:"hero"`
}

// ScreenConfig defines the logical screen and tick rate
type ScreenConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	FPS        int    `json:"fps"` // Fixed tick rate; movement is per tick
	Fullscreen bool   `json:"fullscreen"`
	Title      string `json:"title"`
}

// MapConfig defines the world map image and its fallback dimensions
type MapConfig struct {
	ImagePath string  `json:"image_path"` // Relative to Assets.Root
	Scale     float64 `json:"scale"`      // Applied to the loaded map image
	Width     int     `json:"width"`      // Used when the map image is missing
	Height    int     `json:"height"`

	MarkerScale  float64 `json:"marker_scale"`  // Applied to level marker sprites
	MarkerWidth  int     `json:"marker_width"`  // Used when a marker sprite is missing
	MarkerHeight int     `json:"marker_height"`
}

// MovementConfig defines character movement and animation pacing
type MovementConfig struct {
	Speed          float64 `json:"speed"`            // Pixels per tick
	FrameDuration  float64 `json:"frame_duration"`   // Seconds per animation frame
	FramesPerCycle int     `json:"frames_per_cycle"` // Frames in each direction cycle
}

// BattleConfig defines battle pacing. Enemy tuning lives in the level table.
type BattleConfig struct {
	HitDamage       float64 `json:"hit_damage"`       // Damage dealt per correct answer
	IntroSeconds    float64 `json:"intro_seconds"`    // Intro banner duration
	FeedbackSeconds float64 `json:"feedback_seconds"` // Correct/wrong banner duration
}

// AudioConfig defines music and sound effect settings
type AudioConfig struct {
	Enabled   bool    `json:"enabled"`
	Volume    float64 `json:"volume"`     // Linear gain, 1.0 = unchanged
	MusicDir  string  `json:"music_dir"`  // Relative to Assets.Root
	MenuMusic string  `json:"menu_music"` // File inside MusicDir
}

// AssetConfig defines where content is read from
type AssetConfig struct {
	Root         string `json:"root"`
	QuestionBank string `json:"question_bank"` // Optional JSON bank; embedded bank if empty
}

// DefaultConfig returns the settings the game ships with
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:      1920,
			Height:     1080,
			FPS:        60,
			Fullscreen: true,
			Title:      "Final Quiztasy",
		},
		Map: MapConfig{
			ImagePath:    "images/map/lspu_map.png",
			Scale:        3,
			Width:        10560,
			Height:       7200,
			MarkerScale:  0.15,
			MarkerWidth:  96,
			MarkerHeight: 96,
		},
		Movement: MovementConfig{
			Speed:          6,
			FrameDuration:  0.12,
			FramesPerCycle: 4,
		},
		Battle: BattleConfig{
			HitDamage:       3,
			IntroSeconds:    1.5,
			FeedbackSeconds: 1.0,
		},
		Audio: AudioConfig{
			Enabled:   true,
			Volume:    1.0,
			MusicDir:  "audio/ost",
			MenuMusic: "menuOst.mp3",
		},
		Assets: AssetConfig{
			Root: "assets",
		},
		Hero: "boy",
	}
}

// Load reads a JSON config file over the defaults. A missing file is not an
// error: the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg.sanitize(), nil
}

// FromEnvironment builds the runtime config: .env file (if any), then the
// JSON file named by QUIZTASY_CONFIG (default "quiztasy.json"), then the
// individual QUIZTASY_* overrides.
func FromEnvironment() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	path := os.Getenv("QUIZTASY_CONFIG")
	if path == "" {
		path = "quiztasy.json"
	}

	cfg, err := Load(path)
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
	}
	return cfg.WithOverrides(os.Getenv)
}

// WithOverrides applies QUIZTASY_* variables looked up through getenv.
func (c Config) WithOverrides(getenv func(string) string) Config {
	if v := getenv("QUIZTASY_ASSET_DIR"); v != "" {
		c.Assets.Root = v
	}
	if v := getenv("QUIZTASY_QUESTIONS"); v != "" {
		c.Assets.QuestionBank = v
	}
	if v := getenv("QUIZTASY_HERO"); v != "" {
		c.Hero = strings.ToLower(v)
	}
	if v := getenv("QUIZTASY_AUDIO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			log.Printf("Warning: ignoring QUIZTASY_AUDIO=%q: %v", v, err)
		}
	}
	if v := getenv("QUIZTASY_FULLSCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Screen.Fullscreen = b
		} else {
			log.Printf("Warning: ignoring QUIZTASY_FULLSCREEN=%q: %v", v, err)
		}
	}
	return c.sanitize()
}

// sanitize replaces unusable values with defaults so every component can
// trust the numbers it is handed.
func (c Config) sanitize() Config {
	d := DefaultConfig()
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		c.Screen.Width, c.Screen.Height = d.Screen.Width, d.Screen.Height
	}
	if c.Screen.FPS <= 0 {
		c.Screen.FPS = d.Screen.FPS
	}
	if c.Map.Scale <= 0 {
		c.Map.Scale = d.Map.Scale
	}
	if c.Map.Width <= 0 || c.Map.Height <= 0 {
		c.Map.Width, c.Map.Height = d.Map.Width, d.Map.Height
	}
	if c.Map.MarkerScale <= 0 {
		c.Map.MarkerScale = d.Map.MarkerScale
	}
	if c.Map.MarkerWidth <= 0 || c.Map.MarkerHeight <= 0 {
		c.Map.MarkerWidth, c.Map.MarkerHeight = d.Map.MarkerWidth, d.Map.MarkerHeight
	}
	if c.Movement.Speed <= 0 {
		c.Movement.Speed = d.Movement.Speed
	}
	if c.Movement.FrameDuration <= 0 {
		c.Movement.FrameDuration = d.Movement.FrameDuration
	}
	if c.Movement.FramesPerCycle <= 0 {
		c.Movement.FramesPerCycle = d.Movement.FramesPerCycle
	}
	if c.Battle.HitDamage <= 0 {
		c.Battle.HitDamage = d.Battle.HitDamage
	}
	if c.Battle.IntroSeconds < 0 {
		c.Battle.IntroSeconds = d.Battle.IntroSeconds
	}
	if c.Battle.FeedbackSeconds < 0 {
		c.Battle.FeedbackSeconds = d.Battle.FeedbackSeconds
	}
	if c.Audio.Volume < 0 {
		c.Audio.Volume = d.Audio.Volume
	}
	if c.Hero != "boy" && c.Hero != "girl" {
		// Same default as the hero picker
		c.Hero = "boy"
	}
	return c
}

// TickSeconds is the fixed simulated time per tick.
func (c Config) TickSeconds() float64 {
	return 1.0 / float64(c.Screen.FPS)
}

// HeroMusic returns the map soundtrack for the configured hero.
func (c Config) HeroMusic() string {
	return fmt.Sprintf("%s/%sOst.mp3", c.Audio.MusicDir, c.Hero)
}
