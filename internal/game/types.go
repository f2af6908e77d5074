package game

import (
	"fmt"
	"strconv"

	"chosenoffset.com/quiztasy/internal/battle"
)

// Mode is which modal loop owns the tick
type Mode int

const (
	ModeMap Mode = iota
	ModeBattle
)

func (m Mode) String() string {
	if m == ModeBattle {
		return "battle"
	}
	return "map"
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}

// Alpha returns the fade level of the message, 0..1.
func (m Message) Alpha() float64 {
	if m.MaxTime <= 0 {
		return 0
	}
	return m.TimeLeft / m.MaxTime
}

// FormatHP renders a combatant's health as "7.5/10 HP".
func FormatHP(c battle.Combatant) string {
	return fmt.Sprintf("%s/%s HP", trimFloat(c.HP), trimFloat(c.MaxHP))
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ResultText is the banner shown after a question resolves.
func ResultText(r battle.Result) string {
	switch r {
	case battle.ResultCorrect:
		return "Correct!"
	case battle.ResultIncorrect:
		return "Wrong answer!"
	case battle.ResultTimeout:
		return "Time's up!"
	default:
		return ""
	}
}
