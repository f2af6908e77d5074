// Package rendertest provides in-memory render implementations for tests.
// Nothing is drawn; calls are recorded so tests can assert on them.
package rendertest

import (
	"fmt"
	"image"
	"image/color"
	"io/fs"

	"chosenoffset.com/quiztasy/internal/render"
)

func init() {
	if render.NewGeoM == nil {
		render.NewGeoM = func() render.GeoM { return NewGeoM() }
	}
}

// Image is a render.Image that only tracks its bounds and draw calls.
type Image struct {
	Rect     image.Rectangle
	Draws    int
	Fills    int
	Disposed bool
	Source   string // Path it was loaded from, if any
}

// NewImage creates an image of the given size.
func NewImage(width, height int) *Image {
	return &Image{Rect: image.Rect(0, 0, width, height)}
}

func (i *Image) Bounds() image.Rectangle { return i.Rect }

func (i *Image) Size() (int, int) { return i.Rect.Dx(), i.Rect.Dy() }

func (i *Image) SubImage(r image.Rectangle) render.Image {
	return &Image{Rect: r.Intersect(i.Rect), Source: i.Source}
}

func (i *Image) Fill(color.Color) { i.Fills++ }

func (i *Image) Clear() {}

func (i *Image) DrawImage(render.Image, *render.DrawImageOptions) { i.Draws++ }

func (i *Image) Dispose() { i.Disposed = true }

// GeoM records the accumulated transform.
type GeoM struct {
	TX, TY float64
	SX, SY float64
}

// NewGeoM creates an identity transform.
func NewGeoM() *GeoM {
	return &GeoM{SX: 1, SY: 1}
}

func (g *GeoM) Translate(tx, ty float64) {
	g.TX += tx
	g.TY += ty
}

func (g *GeoM) Scale(sx, sy float64) {
	g.SX *= sx
	g.SY *= sy
	g.TX *= sx
	g.TY *= sy
}

func (g *GeoM) Reset() {
	*g = GeoM{SX: 1, SY: 1}
}

// Renderer records text and counts shapes.
type Renderer struct {
	Texts   []string
	Rects   int
	Circles int
	Uploads int
}

func (r *Renderer) NewImage(width, height int) render.Image {
	return NewImage(width, height)
}

func (r *Renderer) NewImageFromImage(src image.Image) render.Image {
	r.Uploads++
	return &Image{Rect: src.Bounds()}
}

func (r *Renderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {
	r.Rects++
}

func (r *Renderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
	r.Rects++
}

func (r *Renderer) FillCircle(render.Image, float32, float32, float32, color.Color) {
	r.Circles++
}

func (r *Renderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
	r.Circles++
}

func (r *Renderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color, _ float64) {
	r.Texts = append(r.Texts, text)
}

// MeasureText uses the 7x13 metrics of the real backend's font.
func (r *Renderer) MeasureText(text string, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(7*len(text)) * scale), int(13 * scale)
}

// HasText reports whether any drawn string equals text.
func (r *Renderer) HasText(text string) bool {
	for _, t := range r.Texts {
		if t == text {
			return true
		}
	}
	return false
}

// Loader serves images from a map keyed by path.
type Loader struct {
	Images   map[string]*Image
	Requests []string
}

// NewLoader creates a loader that knows the given paths and sizes.
func NewLoader() *Loader {
	return &Loader{Images: make(map[string]*Image)}
}

// Add registers an image at path.
func (l *Loader) Add(path string, width, height int) {
	img := NewImage(width, height)
	img.Source = path
	l.Images[path] = img
}

func (l *Loader) LoadImage(path string) (render.Image, error) {
	l.Requests = append(l.Requests, path)
	img, ok := l.Images[path]
	if !ok {
		return nil, fmt.Errorf("open %s: %w", path, fs.ErrNotExist)
	}
	return img, nil
}

// Input is a scripted render.InputManager.
type Input struct {
	Held map[render.Key]bool
	Just map[render.Key]bool
}

// NewInput creates an input with nothing pressed.
func NewInput() *Input {
	return &Input{Held: make(map[render.Key]bool), Just: make(map[render.Key]bool)}
}

// Press marks a key as pressed this tick.
func (in *Input) Press(keys ...render.Key) {
	for _, k := range keys {
		in.Just[k] = true
		in.Held[k] = true
	}
}

// Release clears every key.
func (in *Input) Release() {
	clear(in.Held)
	clear(in.Just)
}

func (in *Input) IsKeyPressed(k render.Key) bool     { return in.Held[k] }
func (in *Input) IsKeyJustPressed(k render.Key) bool { return in.Just[k] }
func (in *Input) GetCursorPosition() (int, int)      { return 0, 0 }

func (in *Input) IsMouseButtonJustPressed(render.MouseButton) bool { return false }
