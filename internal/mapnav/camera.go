package mapnav

import (
	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/entity/motion"
)

// Camera maps world coordinates to the screen. Origin is where the map's
// top-left corner is drawn, so it is never positive on an axis where the map
// is larger than the screen.
type Camera struct {
	Origin  geom.Point
	MapSize geom.Size
	Screen  geom.Size
}

// NewCamera creates a camera looking at focus (a world position), clamped to
// the map edges.
func NewCamera(mapSize, screen geom.Size, focus geom.Point) Camera {
	c := Camera{MapSize: mapSize, Screen: screen}
	c.CenterOn(focus)
	return c
}

// Bounds returns the allowed origin range.
func (c Camera) Bounds() motion.Bounds {
	return motion.CameraBounds(c.MapSize, c.Screen)
}

// CenterOn moves the camera so focus sits under the screen anchor, as far as
// the map edges allow.
func (c *Camera) CenterOn(focus geom.Point) {
	c.Origin = c.Bounds().Clamp(motion.ScreenAnchor(c.Screen).Sub(focus))
}

// ToScreen converts a world position to screen coordinates.
func (c Camera) ToScreen(world geom.Point) geom.Point {
	return c.Origin.Add(world)
}

// ToWorld converts a screen position to world coordinates.
func (c Camera) ToWorld(screen geom.Point) geom.Point {
	return screen.Sub(c.Origin)
}

// Visible reports whether a world-space rectangle overlaps the screen.
func (c Camera) Visible(r geom.Rect) bool {
	s := r.Translate(c.Origin)
	return s.X+s.W >= 0 && s.Y+s.H >= 0 &&
		s.X <= float64(c.Screen.W) && s.Y <= float64(c.Screen.H)
}
