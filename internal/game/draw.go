package game

import (
	"fmt"
	"image/color"
	"log"

	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/placeholders"
	"chosenoffset.com/quiztasy/internal/render"
	"chosenoffset.com/quiztasy/internal/world/level"
)

const heroScale = 1.5

var (
	backgroundColor = placeholders.ColorPalette.Background
	textColor       = color.RGBA{255, 255, 255, 255}
	dimTextColor    = color.RGBA{180, 180, 180, 255}
	hintColor       = color.RGBA{255, 230, 120, 255}
	panelColor      = color.RGBA{0, 0, 0, 180}
	clearedColor    = color.RGBA{90, 220, 110, 255}
)

// drawMap renders the world, the markers, the character and the map HUD.
func (m *Manager) drawMap(screen render.Image) {
	cam := m.Nav.Camera()

	if img, ok := m.Assets.Map(); ok {
		w, h := img.Size()
		opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
		opts.GeoM.Scale(float64(cam.MapSize.W)/float64(w), float64(cam.MapSize.H)/float64(h))
		opts.GeoM.Translate(-cam.Origin.X, -cam.Origin.Y)
		screen.DrawImage(img, opts)
	} else {
		m.drawBackdrop(screen)
	}

	for _, d := range m.Registry.All() {
		m.drawMarker(screen, d)
	}

	m.drawPlayer(screen)
	m.drawMapHUD(screen)
}

// drawBackdrop stands in for a missing map image: the map area in grass with
// a coarse grid so movement is still visible.
func (m *Manager) drawBackdrop(screen render.Image) {
	cam := m.Nav.Camera()
	area := geom.Rect{W: float64(cam.MapSize.W), H: float64(cam.MapSize.H)}
	s := cam.ToScreen(geom.Point{})
	m.Renderer.FillRect(screen, float32(s.X), float32(s.Y), float32(area.W), float32(area.H), placeholders.ColorPalette.Grass)

	const cell = 480.0
	grid := placeholders.Darken(placeholders.ColorPalette.Grass, 0.15)
	for x := 0.0; x <= area.W; x += cell {
		p := cam.ToScreen(geom.Point{X: x})
		m.Renderer.FillRect(screen, float32(p.X), float32(s.Y), 2, float32(area.H), grid)
	}
	for y := 0.0; y <= area.H; y += cell {
		p := cam.ToScreen(geom.Point{Y: y})
		m.Renderer.FillRect(screen, float32(s.X), float32(p.Y), float32(area.W), 2, grid)
	}
}

func (m *Manager) drawMarker(screen render.Image, d level.Descriptor) {
	cam := m.Nav.Camera()
	if !cam.Visible(d.Bounds()) {
		return
	}

	img := m.Assets.Marker(d.Name)
	w, h := img.Size()
	pos := cam.ToScreen(d.Pos)
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	if w > 0 && h > 0 {
		opts.GeoM.Scale(float64(d.Width)/float64(w), float64(d.Height)/float64(h))
	}
	opts.GeoM.Translate(pos.X, pos.Y)
	screen.DrawImage(img, opts)

	if !d.Interactive() {
		return
	}

	c := cam.ToScreen(d.Center())
	label := fmt.Sprintf("Stage %d", d.ID)
	tw, _ := m.Renderer.MeasureText(label, 1)
	labelColor := dimTextColor
	if m.Progress.Cleared(d.ID) {
		m.Renderer.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(d.Radius), 3, clearedColor)
		labelColor = clearedColor
	}
	if id, ok := m.Nav.Near(); ok && id == d.ID {
		m.Renderer.StrokeCircle(screen, float32(c.X), float32(c.Y), float32(d.Radius), 2, hintColor)
		labelColor = hintColor
	}
	m.Renderer.DrawText(screen, label, int(c.X)-tw/2, int(pos.Y)+d.Height+4, labelColor, 1)
}

func (m *Manager) drawPlayer(screen render.Image) {
	sheet := m.Assets.HeroSheet(m.Config.Hero)
	st := m.Nav.Motion()
	p := m.Nav.PlayerScreenPosition()
	if err := sheet.DrawFrame(screen, st.Heading.String(), st.Frame, p.X, p.Y, heroScale); err != nil {
		log.Printf("Warning: failed to draw hero: %v", err)
		m.Renderer.FillCircle(screen, float32(p.X), float32(p.Y), 16, placeholders.HeroColor(m.Config.Hero))
	}
}

func (m *Manager) drawMapHUD(screen render.Image) {
	sw, sh := screen.Size()

	summary := m.Summary()
	tw, th := m.Renderer.MeasureText(summary, 1.5)
	m.Renderer.FillRect(screen, 10, 10, float32(tw+20), float32(th+12), panelColor)
	m.Renderer.DrawText(screen, summary, 20, 16, textColor, 1.5)

	audioText := "Audio: off [M]"
	if m.Audio.Enabled() {
		audioText = "Audio: on [M]"
	}
	aw, _ := m.Renderer.MeasureText(audioText, 1)
	m.Renderer.DrawText(screen, audioText, sw-aw-20, 16, dimTextColor, 1)

	hint := "Arrows/WASD to move, Esc to quit"
	if d, ok := m.NearLevel(); ok {
		enc := level.EncounterFor(d.ID)
		hint = fmt.Sprintf("Press Enter to battle %s (Stage %d)", enc.EnemyName, d.ID)
	}
	hw, hh := m.Renderer.MeasureText(hint, 2)
	x := (sw - hw) / 2
	y := sh - hh - 40
	m.Renderer.FillRect(screen, float32(x-12), float32(y-8), float32(hw+24), float32(hh+16), panelColor)
	m.Renderer.DrawText(screen, hint, x, y, hintColor, 2)
}

func (m *Manager) drawMessages(screen render.Image) {
	y := 60
	for _, msg := range m.Messages {
		alpha := uint8(255 * msg.Alpha())
		m.Renderer.DrawText(screen, msg.Text, 20, y, color.RGBA{255, 255, 255, alpha}, 1.5)
		y += 24
	}
}
