package placeholders

import (
	"image"
	"image/color"
)

// SheetRows is the row order of generated walking sheets.
var SheetRows = []string{"down", "up", "left", "right"}

// HeroColor returns the tunic color for a hero type.
func HeroColor(hero string) color.RGBA {
	if hero == "girl" {
		return ColorPalette.Girl
	}
	return ColorPalette.Boy
}

// CreateMarker creates a level marker: a flag on a round base for stages, a
// plain pad for the spawn point.
func CreateMarker(width, height int, spawn bool) *image.RGBA {
	img := CreateTransparent(width, height)
	cx, cy := width/2, height/2
	radius := min(width, height)/2 - 2

	if spawn {
		FillCircle(img, cx, cy, radius, ColorPalette.Spawn, ColorPalette.MarkerRim)
		FillCircle(img, cx, cy, radius/2, Lighten(ColorPalette.Spawn, 0.4), ColorPalette.MarkerRim)
		return img
	}

	FillCircle(img, cx, cy+radius/2, radius/2, Darken(ColorPalette.Path, 0.8), ColorPalette.MarkerRim)

	// Pole and pennant
	pole := image.Rect(cx-1, cy-radius, cx+2, cy+radius/2)
	FillRect(img, pole, ColorPalette.Border)
	for y := 0; y < radius/2; y++ {
		span := (radius / 2) - y
		if y > radius/4 {
			span = y
		}
		FillRect(img, image.Rect(cx+2, cy-radius+y, cx+2+span, cy-radius+y+1), ColorPalette.Marker)
	}
	return img
}

// CreateHeroFrame draws one walking frame. dir is an index into SheetRows;
// odd frames shift the feet to suggest a step.
func CreateHeroFrame(hero string, size, dir, frame int) *image.RGBA {
	img := CreateTransparent(size, size)
	body := HeroColor(hero)
	unit := max(size/8, 1)

	// Head
	FillCircle(img, size/2, unit*2, unit+unit/2, ColorPalette.Skin, Darken(ColorPalette.Skin, 0.6))
	// Tunic
	FillRect(img, image.Rect(unit*2, unit*4, size-unit*2, unit*6), body)
	if hero == "girl" {
		FillRect(img, image.Rect(unit*2-unit/2, unit*5, size-unit*2+unit/2, unit*6+unit/2), body)
	}

	// Feet alternate every other frame
	step := 0
	if frame%2 == 1 {
		step = unit / 2
	}
	FillRect(img, image.Rect(unit*3, unit*6, unit*4, unit*8-step), Darken(body, 0.5))
	FillRect(img, image.Rect(size-unit*4, unit*6, size-unit*3, unit*8-(unit/2-step)), Darken(body, 0.5))

	// Eyes show the facing
	eye := color.RGBA{20, 20, 20, 255}
	switch SheetRows[dir%len(SheetRows)] {
	case "down":
		img.Set(size/2-unit/2, unit*2, eye)
		img.Set(size/2+unit/2, unit*2, eye)
	case "left":
		img.Set(size/2-unit, unit*2, eye)
	case "right":
		img.Set(size/2+unit, unit*2, eye)
	}
	return img
}

// CreateHeroSheet creates a full walking sheet: one row per SheetRows entry,
// frames columns.
func CreateHeroSheet(hero string, size, frames int) *image.RGBA {
	rows := make([][]*image.RGBA, len(SheetRows))
	for dir := range SheetRows {
		rows[dir] = make([]*image.RGBA, frames)
		for f := 0; f < frames; f++ {
			rows[dir][f] = CreateHeroFrame(hero, size, dir, f)
		}
	}
	return CreateSheet(rows)
}

// CreateHeroPortrait creates the standing battle sprite.
func CreateHeroPortrait(hero string, width, height int) *image.RGBA {
	img := CreateTransparent(width, height)
	body := HeroColor(hero)
	unit := max(min(width, height)/10, 1)

	FillCircle(img, width/2, unit*2, unit*2, ColorPalette.Skin, Darken(ColorPalette.Skin, 0.6))
	FillRect(img, image.Rect(width/2-unit*2, unit*4, width/2+unit*2, unit*8), body)
	FillRect(img, image.Rect(width/2-unit*2, unit*8, width/2-unit/2, height), Darken(body, 0.5))
	FillRect(img, image.Rect(width/2+unit/2, unit*8, width/2+unit*2, height), Darken(body, 0.5))
	return img
}

// CreateEnemy creates a battle sprite for an enemy kind ("minion",
// "miniboss" or "boss").
func CreateEnemy(kind string, size int) *image.RGBA {
	img := CreateTransparent(size, size)
	cx, cy := size/2, size/2
	radius := size/2 - 2

	switch kind {
	case "boss":
		FillCircle(img, cx, cy+size/10, radius-size/10, ColorPalette.Boss, Lighten(ColorPalette.Boss, 0.5))
		// Crown
		for i := 0; i < 3; i++ {
			x := cx - size/5 + i*size/5
			FillRect(img, image.Rect(x-size/20, size/20, x+size/20, size/5), ColorPalette.Crown)
		}
		FillRect(img, image.Rect(cx-size/4, size/6, cx+size/4, size/4), ColorPalette.Crown)
	case "miniboss":
		FillCircle(img, cx, cy, radius, ColorPalette.MiniBoss, Darken(ColorPalette.MiniBoss, 0.5))
		FillCircle(img, cx, cy, radius/3, Lighten(ColorPalette.MiniBoss, 0.5), Darken(ColorPalette.MiniBoss, 0.5))
	default:
		FillCircle(img, cx, cy+size/8, radius-size/8, ColorPalette.Minion, Darken(ColorPalette.Minion, 0.5))
	}

	// Eyes
	white := color.RGBA{255, 255, 255, 255}
	FillRect(img, image.Rect(cx-size/6, cy, cx-size/12, cy+size/12), white)
	FillRect(img, image.Rect(cx+size/12, cy, cx+size/6, cy+size/12), white)
	return img
}

// CreateBackground creates a battle backdrop. variant picks the sky tint.
func CreateBackground(width, height, variant int) *image.RGBA {
	skies := []color.RGBA{
		{120, 170, 220, 255},
		{200, 140, 90, 255},
		{70, 60, 110, 255},
		{40, 20, 40, 255},
	}
	sky := skies[((variant%len(skies))+len(skies))%len(skies)]

	img := CreateTransparent(width, height)
	horizon := height * 2 / 3
	for y := 0; y < height; y++ {
		var row color.RGBA
		if y < horizon {
			row = Lighten(sky, 0.4*float64(y)/float64(max(horizon, 1)))
		} else {
			row = Darken(ColorPalette.Grass, 1-0.4*float64(y-horizon)/float64(max(height-horizon, 1)))
		}
		FillRect(img, image.Rect(0, y, width, y+1), row)
	}
	return img
}

// CreateMap creates a world map of grass with a path through the given
// points, in order. Points are in the image's own pixel space.
func CreateMap(width, height int, points []image.Point) *image.RGBA {
	img := CreateSolid(width, height, ColorPalette.Grass)

	// Speckle so scrolling is visible
	dark := Darken(ColorPalette.Grass, 0.85)
	for y := 0; y < height; y += 24 {
		for x := (y / 24 % 2) * 12; x < width; x += 24 {
			FillRect(img, image.Rect(x, y, x+3, y+3), dark)
		}
	}

	FillRect(img, image.Rect(0, height-height/12, width, height), ColorPalette.Water)

	half := max(min(width, height)/200, 2)
	for i := 1; i < len(points); i++ {
		a, b := points[i-1], points[i]
		steps := max(abs(b.X-a.X), abs(b.Y-a.Y))
		for s := 0; s <= steps; s += half {
			x := a.X + (b.X-a.X)*s/max(steps, 1)
			y := a.Y + (b.Y-a.Y)*s/max(steps, 1)
			FillRect(img, image.Rect(x-half, y-half, x+half, y+half), ColorPalette.Path)
		}
	}
	return img
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
