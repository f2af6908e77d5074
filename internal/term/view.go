package term

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/quiztasy/internal/battle"
	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/game"
	"chosenoffset.com/quiztasy/internal/world/level"
)

var (
	styleDefault = tcell.StyleDefault
	styleGround  = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleMarker  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSpawn   = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleCleared = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleNear    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleHero    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGood    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBad     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleWarn    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// hudRows are reserved at the bottom of the map view.
const hudRows = 2

// cells measures text in terminal columns for game.WrapText.
type cells struct{}

func (cells) MeasureText(text string, _ float64) (int, int) {
	return utf8.RuneCountInString(text), 1
}

// Draw renders the session onto the terminal.
func Draw(screen tcell.Screen, s *game.Session) {
	screen.Clear()
	if s.Mode == game.ModeBattle && s.Battle != nil {
		drawBattle(screen, s)
	} else {
		drawMap(screen, s)
	}
	drawMessages(screen, s)
	screen.Show()
}

// cellOf maps a logical screen position into the map area of the terminal.
func cellOf(p geom.Point, logical geom.Size, cols, rows int) (int, int) {
	x := int(math.Floor(p.X * float64(cols) / float64(logical.W)))
	y := int(math.Floor(p.Y * float64(rows) / float64(logical.H)))
	return x, y
}

func drawMap(screen tcell.Screen, s *game.Session) {
	w, h := screen.Size()
	rows := h - hudRows
	if w <= 0 || rows <= 0 {
		return
	}
	cam := s.Nav.Camera()

	// Ground, only where the map is under the camera
	for y := 0; y < rows; y++ {
		for x := 0; x < w; x++ {
			p := geom.Point{
				X: (float64(x) + 0.5) * float64(cam.Screen.W) / float64(w),
				Y: (float64(y) + 0.5) * float64(cam.Screen.H) / float64(rows),
			}
			wp := cam.ToWorld(p)
			if wp.X >= 0 && wp.Y >= 0 && wp.X < float64(cam.MapSize.W) && wp.Y < float64(cam.MapSize.H) {
				screen.SetContent(x, y, '.', nil, styleGround)
			}
		}
	}

	nearID, near := s.Nav.Near()
	for _, d := range s.Registry.All() {
		if !cam.Visible(d.Bounds()) {
			continue
		}
		x, y := cellOf(cam.ToScreen(d.Center()), cam.Screen, w, rows)
		label, style := "S", styleSpawn
		if d.Interactive() {
			label, style = fmt.Sprint(d.ID), styleMarker
			if s.Progress.Cleared(d.ID) {
				style = styleCleared
			}
			if near && nearID == d.ID {
				style = styleNear
			}
		}
		putText(screen, x, y, label, style, rows)
	}

	hx, hy := cellOf(s.Nav.PlayerScreenPosition(), cam.Screen, w, rows)
	putText(screen, hx, hy, "@", styleHero, rows)

	putText(screen, 0, rows, s.Summary(), styleDefault, h)
	hint := "Arrows/WASD move, Esc quits, M toggles audio"
	if d, ok := s.NearLevel(); ok {
		hint = fmt.Sprintf("Enter: battle %s (Stage %d)", level.EncounterFor(d.ID).EnemyName, d.ID)
	}
	putText(screen, 0, rows+1, hint, styleWarn, h)
}

func drawBattle(screen tcell.Screen, s *game.Session) {
	w, h := screen.Size()
	enc := s.Battle.Encounter()
	st := s.Battle.State()

	y := 0
	putText(screen, 0, y, fmt.Sprintf("Stage %d: %s", enc.LevelID, enc.EnemyName), styleHero, h)
	y += 2
	putText(screen, 0, y, hpLine("You", st.Player), styleGood, h)
	y++
	putText(screen, 0, y, hpLine(st.Enemy.Name, st.Enemy), styleBad, h)
	y += 2

	switch st.Phase {
	case battle.PhaseIntro:
		putText(screen, 0, y, fmt.Sprintf("%s appears! Press Enter.", enc.EnemyName), styleWarn, h)
	case battle.PhasePlayerTurn, battle.PhaseResolve:
		timer := fmt.Sprintf("Time: %d", int(math.Ceil(math.Max(st.Remaining, 0))))
		putText(screen, 0, y, timer, styleWarn, h)
		y += 2
		if st.Question.Topic != "" {
			putText(screen, 0, y, st.Question.Topic, styleDim, h)
			y++
		}
		for _, line := range game.WrapText(cells{}, st.Question.Prompt, 1, w) {
			putText(screen, 0, y, line, styleDefault, h)
			y++
		}
		y++
		for i, choice := range st.Question.Choices {
			style := styleDefault
			if st.Phase == battle.PhaseResolve {
				switch {
				case st.Question.IsCorrect(i):
					style = styleGood
				case i == st.LastChoice:
					style = styleBad
				}
			}
			putText(screen, 2, y, fmt.Sprintf("%d) %s", i+1, choice), style, h)
			y++
		}
		if st.Phase == battle.PhaseResolve {
			y++
			style := styleBad
			if st.LastResult == battle.ResultCorrect {
				style = styleGood
			}
			putText(screen, 0, y, game.ResultText(st.LastResult), style, h)
		}
	case battle.PhaseVictory:
		putText(screen, 0, y, fmt.Sprintf("Victory! %s is defeated", enc.EnemyName), styleCleared, h)
	case battle.PhaseDefeat:
		if st.Forfeited {
			putText(screen, 0, y, "You fled the battle", styleBad, h)
		} else {
			putText(screen, 0, y, "Defeat...", styleBad, h)
		}
	}

	if st.Paused {
		putText(screen, 0, h-1, "Paused - press P to resume", styleWarn, h)
	}
}

// hpLine renders "Name [#####-----] 5/10 HP".
func hpLine(name string, c battle.Combatant) string {
	const width = 20
	filled := int(math.Round(c.Fraction() * width))
	return fmt.Sprintf("%-12s [%s%s] %s", name,
		strings.Repeat("#", filled), strings.Repeat("-", width-filled), game.FormatHP(c))
}

func drawMessages(screen tcell.Screen, s *game.Session) {
	w, h := screen.Size()
	for i, msg := range s.Messages {
		x := max(w-utf8.RuneCountInString(msg.Text), 0)
		putText(screen, x, i, msg.Text, styleWarn, h)
	}
}

// putText writes a string starting at (x, y), clipped to the screen width
// and to rows above limit.
func putText(screen tcell.Screen, x, y int, text string, style tcell.Style, limit int) {
	w, _ := screen.Size()
	if y < 0 || y >= limit {
		return
	}
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
