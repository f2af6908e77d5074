package game

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"chosenoffset.com/quiztasy/internal/battle"
	"chosenoffset.com/quiztasy/internal/render"
)

const (
	hpBarWidth  = 360
	hpBarHeight = 18
	choiceCount = 4
)

var (
	hpBackColor   = color.RGBA{60, 20, 20, 255}
	choiceColor   = color.RGBA{40, 40, 60, 220}
	correctColor  = color.RGBA{50, 160, 60, 230}
	wrongColor    = color.RGBA{170, 50, 50, 230}
	bannerColor   = color.RGBA{0, 0, 0, 200}
	victoryColor  = color.RGBA{255, 215, 0, 255}
	defeatColor   = color.RGBA{230, 80, 80, 255}
	timerColor    = color.RGBA{120, 180, 255, 255}
	timerLowColor = color.RGBA{255, 120, 80, 255}
)

// healthColor picks the bar color for a health fraction.
func healthColor(fraction float64) color.RGBA {
	switch {
	case fraction > 0.6:
		return color.RGBA{50, 180, 50, 255} // Green
	case fraction > 0.3:
		return color.RGBA{200, 180, 50, 255} // Yellow
	default:
		return color.RGBA{200, 50, 50, 255} // Red
	}
}

// drawBattle renders the active battle: backdrop, both combatants with their
// HP bars, the question panel and the phase banner.
func (m *Manager) drawBattle(screen render.Image) {
	sw, sh := screen.Size()
	enc := m.Battle.Encounter()
	st := m.Battle.State()

	bg := m.Assets.Background(enc.Background)
	m.drawFitted(screen, bg, 0, 0, float64(sw), float64(sh))

	// Hero on the left, enemy on the right, both standing on the same line
	spriteBox := float64(sh) * 0.4
	groundY := float64(sh) * 0.55
	m.drawFitted(screen, m.Assets.HeroPortrait(m.Config.Hero), float64(sw)*0.12, groundY-spriteBox, spriteBox, spriteBox)
	m.drawFitted(screen, m.Assets.Enemy(enc.EnemyKind), float64(sw)*0.88-spriteBox, groundY-spriteBox, spriteBox, spriteBox)

	m.drawHPBar(screen, "You", st.Player, 40, 30)
	m.drawHPBar(screen, st.Enemy.Name, st.Enemy, sw-hpBarWidth-40, 30)

	title := fmt.Sprintf("Stage %d", enc.LevelID)
	tw, _ := m.Renderer.MeasureText(title, 2)
	m.Renderer.DrawText(screen, title, (sw-tw)/2, 30, textColor, 2)

	switch st.Phase {
	case battle.PhaseIntro:
		m.drawBanner(screen, fmt.Sprintf("%s appears!", enc.EnemyName), textColor)
	case battle.PhasePlayerTurn, battle.PhaseResolve:
		m.drawQuestion(screen, st)
		m.drawTimer(screen, st.Remaining, enc.TimerSeconds)
		if st.Phase == battle.PhaseResolve {
			clr := wrongColor
			if st.LastResult == battle.ResultCorrect {
				clr = correctColor
			}
			m.drawBanner(screen, ResultText(st.LastResult), clr)
		}
	case battle.PhaseVictory:
		m.drawBanner(screen, fmt.Sprintf("Victory! %s is defeated", enc.EnemyName), victoryColor)
	case battle.PhaseDefeat:
		if st.Forfeited {
			m.drawBanner(screen, "You fled the battle", defeatColor)
		} else {
			m.drawBanner(screen, "Defeat...", defeatColor)
		}
	}

	if st.Paused {
		m.Renderer.FillRect(screen, 0, 0, float32(sw), float32(sh), panelColor)
		m.drawBanner(screen, "Paused - press P to resume", textColor)
	}
}

// drawFitted scales img into the box, keeping its aspect ratio.
func (m *Manager) drawFitted(screen, img render.Image, x, y, boxW, boxH float64) {
	w, h := img.Size()
	if w == 0 || h == 0 {
		return
	}
	scale := math.Min(boxW/float64(w), boxH/float64(h))
	opts := &render.DrawImageOptions{GeoM: render.NewGeoM()}
	opts.GeoM.Scale(scale, scale)
	opts.GeoM.Translate(x+(boxW-float64(w)*scale)/2, y+(boxH-float64(h)*scale)/2)
	screen.DrawImage(img, opts)
}

// drawHPBar draws a labeled health bar with the "hp/max HP" readout under it.
func (m *Manager) drawHPBar(screen render.Image, name string, c battle.Combatant, x, y int) {
	m.Renderer.DrawText(screen, name, x, y, textColor, 1.5)
	y += 24

	m.Renderer.FillRect(screen, float32(x), float32(y), hpBarWidth, hpBarHeight, hpBackColor)
	fraction := c.Fraction()
	if fill := float32(hpBarWidth * fraction); fill > 0 {
		m.Renderer.FillRect(screen, float32(x), float32(y), fill, hpBarHeight, healthColor(fraction))
	}
	m.Renderer.StrokeRect(screen, float32(x), float32(y), hpBarWidth, hpBarHeight, 1, dimTextColor)

	m.Renderer.DrawText(screen, FormatHP(c), x, y+hpBarHeight+4, textColor, 1)
}

// drawQuestion draws the prompt and the numbered choices. While resolving,
// the correct choice turns green and a wrong pick turns red.
func (m *Manager) drawQuestion(screen render.Image, st battle.State) {
	sw, sh := screen.Size()
	panelX, panelW := 40, sw-80
	panelY := int(float64(sh) * 0.6)

	m.Renderer.FillRect(screen, float32(panelX), float32(panelY), float32(panelW), float32(sh-panelY-30), panelColor)

	y := panelY + 16
	if st.Question.Topic != "" {
		m.Renderer.DrawText(screen, st.Question.Topic, panelX+20, y, dimTextColor, 1)
		y += 20
	}
	for _, line := range WrapText(m.Renderer, st.Question.Prompt, 2, panelW-40) {
		m.Renderer.DrawText(screen, line, panelX+20, y, textColor, 2)
		y += 30
	}
	y += 10

	colW := (panelW - 60) / 2
	for i, choice := range st.Question.Choices {
		if i >= choiceCount {
			break
		}
		cx := panelX + 20 + (i%2)*(colW+20)
		cy := y + (i/2)*56

		bg := choiceColor
		if st.Phase == battle.PhaseResolve {
			switch {
			case st.Question.IsCorrect(i):
				bg = correctColor
			case i == st.LastChoice:
				bg = wrongColor
			}
		}
		m.Renderer.FillRect(screen, float32(cx), float32(cy), float32(colW), 46, bg)
		m.Renderer.DrawText(screen, fmt.Sprintf("%d) %s", i+1, choice), cx+12, cy+12, textColor, 1.5)
	}
}

func (m *Manager) drawTimer(screen render.Image, remaining, total float64) {
	sw, _ := screen.Size()
	secs := int(math.Ceil(math.Max(remaining, 0)))
	label := fmt.Sprintf("Time: %d", secs)

	clr := timerColor
	if total > 0 && remaining/total <= 0.25 {
		clr = timerLowColor
	}
	lw, _ := m.Renderer.MeasureText(label, 2)
	m.Renderer.DrawText(screen, label, (sw-lw)/2, 70, clr, 2)

	if total > 0 {
		barW := float32(hpBarWidth)
		x := float32(sw)/2 - barW/2
		m.Renderer.FillRect(screen, x, 104, barW, 6, hpBackColor)
		m.Renderer.FillRect(screen, x, 104, barW*float32(math.Max(remaining, 0)/total), 6, clr)
	}
}

func (m *Manager) drawBanner(screen render.Image, text string, clr color.Color) {
	sw, sh := screen.Size()
	tw, th := m.Renderer.MeasureText(text, 3)
	x := (sw - tw) / 2
	y := int(float64(sh)*0.45) - th/2
	m.Renderer.FillRect(screen, float32(x-24), float32(y-12), float32(tw+48), float32(th+24), bannerColor)
	m.Renderer.DrawText(screen, text, x, y, clr, 3)
}

// Measurer is the part of a renderer needed to lay out text.
type Measurer interface {
	MeasureText(text string, scale float64) (width, height int)
}

// WrapText splits text into lines no wider than maxWidth. A single word
// wider than the limit gets a line of its own.
func WrapText(m Measurer, text string, scale float64, maxWidth int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if width, _ := m.MeasureText(candidate, scale); width > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}
	return append(lines, line)
}
