// Package input turns raw backend key state into the per-tick snapshot that
// the map and battle loops consume.
package input

import "chosenoffset.com/quiztasy/internal/render"

// NoChoice marks a snapshot without an answer selection.
const NoChoice = -1

// Snapshot is the input observed during one tick. Directions are held state;
// everything else is an edge (true only on the tick the action happened).
type Snapshot struct {
	Up, Down, Left, Right bool

	Confirm     bool
	Back        bool
	Pause       bool
	ToggleAudio bool

	// Choice is the zero-based answer picked this tick, or NoChoice.
	Choice int
}

// Empty returns a snapshot with nothing pressed.
func Empty() Snapshot {
	return Snapshot{Choice: NoChoice}
}

// Moving reports whether any direction is held.
func (s Snapshot) Moving() bool {
	return s.Up || s.Down || s.Left || s.Right
}

var choiceKeys = []render.Key{render.Key1, render.Key2, render.Key3, render.Key4}

// FromManager polls the backend once and builds the snapshot for this tick.
func FromManager(m render.InputManager) Snapshot {
	s := Empty()
	s.Up = m.IsKeyPressed(render.KeyUp) || m.IsKeyPressed(render.KeyW)
	s.Down = m.IsKeyPressed(render.KeyDown) || m.IsKeyPressed(render.KeyS)
	s.Left = m.IsKeyPressed(render.KeyLeft) || m.IsKeyPressed(render.KeyA)
	s.Right = m.IsKeyPressed(render.KeyRight) || m.IsKeyPressed(render.KeyD)

	s.Confirm = m.IsKeyJustPressed(render.KeyEnter) || m.IsKeyJustPressed(render.KeySpace)
	s.Back = m.IsKeyJustPressed(render.KeyEscape) || m.IsKeyJustPressed(render.KeyBackspace)
	s.Pause = m.IsKeyJustPressed(render.KeyP)
	s.ToggleAudio = m.IsKeyJustPressed(render.KeyM)

	for i, k := range choiceKeys {
		if m.IsKeyJustPressed(k) {
			s.Choice = i
			break
		}
	}
	return s
}
