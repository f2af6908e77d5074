// Package placeholders draws stand-in sprites for art that has not been made
// yet. The game uses them at runtime when an image is missing, and
// cmd/genplaceholders writes them to disk so artists have files to replace.
package placeholders

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
)

// ColorPalette defines colors for the generated sprites
var ColorPalette = struct {
	// Map
	Grass     color.RGBA
	Path      color.RGBA
	Water     color.RGBA
	Marker    color.RGBA
	Spawn     color.RGBA
	MarkerRim color.RGBA

	// Heroes
	Boy  color.RGBA
	Girl color.RGBA
	Skin color.RGBA

	// Enemies
	Minion   color.RGBA
	MiniBoss color.RGBA
	Boss     color.RGBA
	Crown    color.RGBA

	// UI
	Border     color.RGBA
	Background color.RGBA
	Missing    color.RGBA
}{
	Grass:     color.RGBA{86, 140, 70, 255},
	Path:      color.RGBA{190, 170, 120, 255},
	Water:     color.RGBA{60, 110, 170, 255},
	Marker:    color.RGBA{220, 60, 60, 255},  // Stage flag red
	Spawn:     color.RGBA{70, 160, 230, 255}, // Spawn pad blue
	MarkerRim: color.RGBA{250, 240, 200, 255},

	Boy:  color.RGBA{50, 90, 200, 255},  // Blue tunic
	Girl: color.RGBA{200, 70, 150, 255}, // Pink tunic
	Skin: color.RGBA{240, 200, 160, 255},

	Minion:   color.RGBA{255, 50, 50, 255},  // Bright red
	MiniBoss: color.RGBA{200, 0, 200, 255},  // Magenta
	Boss:     color.RGBA{90, 20, 110, 255},  // Deep purple
	Crown:    color.RGBA{255, 215, 0, 255},  // Gold

	Border:     color.RGBA{200, 200, 200, 255},
	Background: color.RGBA{30, 28, 25, 255},
	Missing:    color.RGBA{255, 0, 255, 255},
}

// CreateSolid creates a solid-colored image
func CreateSolid(width, height int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// CreateTransparent creates an empty image
func CreateTransparent(width, height int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}

// CreateBordered creates a solid image with a border
func CreateBordered(width, height int, fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := CreateSolid(width, height, fillColor)
	StrokeBorder(img, borderColor, borderWidth)
	return img
}

// StrokeBorder draws a border just inside the image edges
func StrokeBorder(img *image.RGBA, col color.RGBA, borderWidth int) {
	b := img.Bounds()
	for i := 0; i < borderWidth; i++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, b.Min.Y+i, col)
			img.Set(x, b.Max.Y-1-i, col)
		}
		for y := b.Min.Y; y < b.Max.Y; y++ {
			img.Set(b.Min.X+i, y, col)
			img.Set(b.Max.X-1-i, y, col)
		}
	}
}

// FillCircle draws a filled circle with a one pixel outline
func FillCircle(img *image.RGBA, cx, cy, radius int, fillColor, outlineColor color.RGBA) {
	for y := cy - radius - 1; y <= cy+radius+1; y++ {
		for x := cx - radius - 1; x <= cx+radius+1; x++ {
			dx := x - cx
			dy := y - cy
			distSq := dx*dx + dy*dy

			if distSq <= radius*radius {
				img.Set(x, y, fillColor)
			} else if distSq <= (radius+1)*(radius+1) {
				img.Set(x, y, outlineColor)
			}
		}
	}
}

// FillRect fills a rectangle, clipped to the image
func FillRect(img *image.RGBA, r image.Rectangle, col color.RGBA) {
	draw.Draw(img, r.Intersect(img.Bounds()), &image.Uniform{col}, image.Point{}, draw.Src)
}

// CreateChecker creates the magenta/black checkerboard used for unknown art
func CreateChecker(width, height, cell int) *image.RGBA {
	if cell <= 0 {
		cell = 8
	}
	img := CreateSolid(width, height, color.RGBA{0, 0, 0, 255})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.Set(x, y, ColorPalette.Missing)
			}
		}
	}
	return img
}

// CreateSheet lays frames out in rows. Every frame must share the size of the
// first non-nil frame; nil frames are left transparent.
func CreateSheet(rows [][]*image.RGBA) *image.RGBA {
	var frameW, frameH, columns int
	for _, row := range rows {
		if len(row) > columns {
			columns = len(row)
		}
		for _, f := range row {
			if f != nil && frameW == 0 {
				frameW, frameH = f.Bounds().Dx(), f.Bounds().Dy()
			}
		}
	}

	sheet := CreateTransparent(columns*frameW, len(rows)*frameH)
	for r, row := range rows {
		for c, frame := range row {
			if frame == nil {
				continue
			}
			dest := image.Rect(c*frameW, r*frameH, (c+1)*frameW, (r+1)*frameH)
			draw.Draw(sheet, dest, frame, frame.Bounds().Min, draw.Src)
		}
	}
	return sheet
}

// SavePNG saves an image to a PNG file
func SavePNG(img image.Image, filepath string) error {
	file, err := os.Create(filepath)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, img)
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}
