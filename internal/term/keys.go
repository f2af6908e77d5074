package term

import (
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/quiztasy/internal/input"
)

// holdTicks is how long a direction stays held after its last key event.
// Terminals only report key repeats, never key releases.
const holdTicks = 8

// Keys folds tcell key events into per-tick input snapshots.
type Keys struct {
	held  [4]int // Remaining ticks per direction: up, down, left, right
	edges input.Snapshot
	quit  bool
}

// NewKeys creates a key tracker with nothing pressed.
func NewKeys() *Keys {
	return &Keys{edges: input.Empty()}
}

const (
	dirUp = iota
	dirDown
	dirLeft
	dirRight
)

// Handle records one key event until the next Snapshot.
func (k *Keys) Handle(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		k.hold(dirUp)
	case tcell.KeyDown:
		k.hold(dirDown)
	case tcell.KeyLeft:
		k.hold(dirLeft)
	case tcell.KeyRight:
		k.hold(dirRight)
	case tcell.KeyEnter:
		k.edges.Confirm = true
	case tcell.KeyEscape, tcell.KeyBackspace, tcell.KeyBackspace2:
		k.edges.Back = true
	case tcell.KeyCtrlC:
		k.quit = true
	case tcell.KeyRune:
		k.handleRune(ev.Rune())
	}
}

func (k *Keys) handleRune(r rune) {
	switch r {
	case 'w', 'W':
		k.hold(dirUp)
	case 's', 'S':
		k.hold(dirDown)
	case 'a', 'A':
		k.hold(dirLeft)
	case 'd', 'D':
		k.hold(dirRight)
	case ' ':
		k.edges.Confirm = true
	case 'p', 'P':
		k.edges.Pause = true
	case 'm', 'M':
		k.edges.ToggleAudio = true
	case '1', '2', '3', '4':
		k.edges.Choice = int(r - '1')
	}
}

// hold presses a direction and releases the opposite one.
func (k *Keys) hold(dir int) {
	k.held[dir] = holdTicks
	k.held[dir^1] = 0
}

// Snapshot returns the input for this tick and clears the edges.
func (k *Keys) Snapshot() input.Snapshot {
	s := k.edges
	s.Up = k.held[dirUp] > 0
	s.Down = k.held[dirDown] > 0
	s.Left = k.held[dirLeft] > 0
	s.Right = k.held[dirRight] > 0

	for i := range k.held {
		if k.held[i] > 0 {
			k.held[i]--
		}
	}
	k.edges = input.Empty()
	return s
}

// Quit reports whether Ctrl-C was pressed.
func (k *Keys) Quit() bool {
	return k.quit
}
