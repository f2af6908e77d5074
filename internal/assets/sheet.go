package assets

import (
	"encoding/json"
	"fmt"
	"image"
	"os"

	"chosenoffset.com/quiztasy/internal/render"
)

// SheetConfig defines the JSON layout of a sprite sheet: equally sized
// frames, one named row per animation.
type SheetConfig struct {
	Name        string   `json:"name"`
	FrameWidth  int      `json:"frame_width"`  // Width of each frame in pixels
	FrameHeight int      `json:"frame_height"` // Height of each frame in pixels
	Rows        []string `json:"rows"`         // Row names top to bottom (e.g. "down")
	Frames      int      `json:"frames"`       // Frames per row
}

// Validate checks the layout is usable.
func (c SheetConfig) Validate() error {
	if c.FrameWidth <= 0 || c.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", c.FrameWidth, c.FrameHeight)
	}
	if c.Frames <= 0 {
		return fmt.Errorf("invalid frame count: %d", c.Frames)
	}
	if len(c.Rows) == 0 {
		return fmt.Errorf("sheet %q has no rows", c.Name)
	}
	return nil
}

// ParseSheetConfig decodes and validates a sheet layout.
func ParseSheetConfig(data []byte) (SheetConfig, error) {
	var config SheetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return SheetConfig{}, fmt.Errorf("failed to parse sheet config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return SheetConfig{}, err
	}
	return config, nil
}

// LoadSheetConfig reads a sheet layout from a JSON file
func LoadSheetConfig(path string) (SheetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SheetConfig{}, fmt.Errorf("failed to read sheet config %s: %w", path, err)
	}
	config, err := ParseSheetConfig(data)
	if err != nil {
		return SheetConfig{}, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// SpriteSheet is a loaded sheet image with its layout
type SpriteSheet struct {
	Config    SheetConfig
	Image     render.Image
	rowByName map[string]int
}

// NewSpriteSheet pairs an image with a layout. The image must be large
// enough for every frame.
func NewSpriteSheet(img render.Image, config SheetConfig) (*SpriteSheet, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	w, h := img.Size()
	if w < config.Frames*config.FrameWidth || h < len(config.Rows)*config.FrameHeight {
		return nil, fmt.Errorf("sheet %q: image %dx%d too small for %d frames x %d rows of %dx%d",
			config.Name, w, h, config.Frames, len(config.Rows), config.FrameWidth, config.FrameHeight)
	}

	rows := make(map[string]int, len(config.Rows))
	for i, name := range config.Rows {
		rows[name] = i
	}
	return &SpriteSheet{Config: config, Image: img, rowByName: rows}, nil
}

// FrameRect returns the source rectangle of a frame. The index wraps around
// the row length.
func (s *SpriteSheet) FrameRect(row string, index int) (image.Rectangle, error) {
	r, ok := s.rowByName[row]
	if !ok {
		return image.Rectangle{}, fmt.Errorf("row not found: %s", row)
	}
	index = ((index % s.Config.Frames) + s.Config.Frames) % s.Config.Frames

	x := index * s.Config.FrameWidth
	y := r * s.Config.FrameHeight
	origin := s.Image.Bounds().Min
	return image.Rect(x, y, x+s.Config.FrameWidth, y+s.Config.FrameHeight).Add(origin), nil
}

// Frame returns the sub-image for a frame
func (s *SpriteSheet) Frame(row string, index int) (render.Image, error) {
	rect, err := s.FrameRect(row, index)
	if err != nil {
		return nil, err
	}
	return s.Image.SubImage(rect), nil
}

// DrawFrame draws a frame centered on (cx, cy) at the given scale
func (s *SpriteSheet) DrawFrame(dst render.Image, row string, index int, cx, cy, scale float64) error {
	frame, err := s.Frame(row, index)
	if err != nil {
		return err
	}

	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Translate(-float64(s.Config.FrameWidth)/2, -float64(s.Config.FrameHeight)/2)
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(cx, cy)
	dst.DrawImage(frame, opts)
	return nil
}
