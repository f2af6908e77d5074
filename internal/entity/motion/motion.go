// Package motion converts directional input into camera scrolling and drives
// the walking animation of the map character.
//
// The character is drawn at the screen center at all times. Walking moves the
// map underneath it: the camera origin shifts opposite to the direction of
// travel, and the character's world position is recovered from the origin.
package motion

import (
	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/input"
)

// Direction represents the facing of the character
type Direction int

const (
	Idle Direction = iota
	Up
	Down
	Left
	Right
)

// String returns the sprite row name for a direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "idle"
	}
}

// DirectionOf returns the facing selected by the held keys. Keys are checked
// up, down, left, right and the last held one wins, so horizontal movement
// takes precedence when walking diagonally.
func DirectionOf(in input.Snapshot) Direction {
	dir := Idle
	if in.Up {
		dir = Up
	}
	if in.Down {
		dir = Down
	}
	if in.Left {
		dir = Left
	}
	if in.Right {
		dir = Right
	}
	return dir
}

// Bounds is the allowed range of the camera origin on each axis.
type Bounds struct {
	Min, Max geom.Point
}

// CameraBounds computes the origin range that keeps the map covering the
// screen. On an axis where the map is smaller than the screen the range
// collapses to the centered offset.
func CameraBounds(mapSize, screen geom.Size) Bounds {
	var b Bounds
	b.Min.X, b.Max.X = axisBounds(mapSize.W, screen.W)
	b.Min.Y, b.Max.Y = axisBounds(mapSize.H, screen.H)
	return b
}

func axisBounds(mapLen, screenLen int) (float64, float64) {
	if mapLen < screenLen {
		centered := float64((screenLen - mapLen) / 2)
		return centered, centered
	}
	return float64(screenLen - mapLen), 0
}

// Clamp pulls an origin back inside the bounds.
func (b Bounds) Clamp(origin geom.Point) geom.Point {
	return geom.Point{
		X: geom.Clamp(origin.X, b.Min.X, b.Max.X),
		Y: geom.Clamp(origin.Y, b.Min.Y, b.Max.Y),
	}
}

// Contains reports whether origin satisfies the bounds.
func (b Bounds) Contains(origin geom.Point) bool {
	return origin.X >= b.Min.X && origin.X <= b.Max.X &&
		origin.Y >= b.Min.Y && origin.Y <= b.Max.Y
}

// ScreenAnchor is where the character is drawn: the screen center.
func ScreenAnchor(screen geom.Size) geom.Point {
	return geom.Point{X: float64(screen.W / 2), Y: float64(screen.H / 2)}
}

// WorldPosition inverts the camera projection for the character.
func WorldPosition(origin geom.Point, screen geom.Size) geom.Point {
	return ScreenAnchor(screen).Sub(origin)
}

// Controller moves the camera a fixed distance per tick. Speed is not scaled
// by frame time; the loop runs at a fixed tick rate.
type Controller struct {
	Speed float64
}

// NewController creates a movement controller.
func NewController(speed float64) *Controller {
	return &Controller{Speed: speed}
}

// Step applies one tick of input. It returns the clamped camera origin and
// the character's world position derived from it.
func (c *Controller) Step(in input.Snapshot, bounds Bounds, origin geom.Point, screen geom.Size) (geom.Point, geom.Point) {
	var dx, dy float64
	if in.Up {
		dy -= c.Speed
	}
	if in.Down {
		dy += c.Speed
	}
	if in.Left {
		dx -= c.Speed
	}
	if in.Right {
		dx += c.Speed
	}

	// The map scrolls opposite to the character's travel
	next := bounds.Clamp(geom.Point{X: origin.X - dx, Y: origin.Y - dy})
	return next, WorldPosition(next, screen)
}
