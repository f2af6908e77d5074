// Package mapnav runs the world map: it scrolls the camera from input, keeps
// the walking animation in step, and watches level markers for the player to
// enter a battle.
package mapnav

import (
	"fmt"

	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/entity/motion"
	"chosenoffset.com/quiztasy/internal/input"
	"chosenoffset.com/quiztasy/internal/world/level"
)

// EventKind identifies what a tick produced
type EventKind int

const (
	EventNone EventKind = iota
	EventLevelTriggered
	EventBackRequested
)

func (k EventKind) String() string {
	switch k {
	case EventLevelTriggered:
		return "level_triggered"
	case EventBackRequested:
		return "back_requested"
	default:
		return "none"
	}
}

// Event is the result of a navigation tick. LevelID is set for
// EventLevelTriggered.
type Event struct {
	Kind    EventKind
	LevelID int
}

func (e Event) String() string {
	if e.Kind == EventLevelTriggered {
		return fmt.Sprintf("%s(%d)", e.Kind, e.LevelID)
	}
	return e.Kind.String()
}

// State is the trigger state of the navigator
type State int

const (
	StateIdle      State = iota // Not inside any marker radius
	StateNearLevel              // Inside a marker radius, confirm enters
)

// Options configure a Navigator.
type Options struct {
	Speed          float64 // Pixels per tick
	FrameDuration  float64 // Seconds per animation frame
	FramesPerCycle int
	TickSeconds    float64 // Simulated time per tick
}

// Navigator owns the camera and the character motion for one map session.
type Navigator struct {
	registry   *level.Registry
	zones      []geom.Zone
	controller *motion.Controller
	animator   *motion.Animator
	camera     Camera
	world      geom.Point
	dt         float64

	state State
	near  int

	// OnNear is called when the character enters or leaves a marker radius.
	// id is the level ID, or -1 when leaving.
	OnNear func(id int)
}

// New creates a navigator with the camera centered on the spawn point.
func New(registry *level.Registry, mapSize, screen geom.Size, opts Options) *Navigator {
	n := &Navigator{
		registry:   registry,
		zones:      registry.Zones(),
		controller: motion.NewController(opts.Speed),
		animator:   motion.NewAnimator(opts.FrameDuration, opts.FramesPerCycle),
		camera:     Camera{MapSize: mapSize, Screen: screen},
		dt:         opts.TickSeconds,
	}
	n.Reset()
	return n
}

// Reset returns the character to the spawn point and clears trigger state.
func (n *Navigator) Reset() {
	focus := geom.Point{X: float64(n.camera.MapSize.W) / 2, Y: float64(n.camera.MapSize.H) / 2}
	if spawn, ok := n.registry.Spawn(); ok {
		focus = spawn.Center()
	}
	n.camera.CenterOn(focus)
	n.world = motion.WorldPosition(n.camera.Origin, n.camera.Screen)
	n.animator.State = motion.State{Facing: motion.Idle, Heading: motion.Down}
	n.state = StateIdle
	n.near = 0
	n.refreshProximity()
}

// Tick advances the map by one frame.
func (n *Navigator) Tick(in input.Snapshot) Event {
	if in.Back {
		return Event{Kind: EventBackRequested}
	}

	n.camera.Origin, n.world = n.controller.Step(in, n.camera.Bounds(), n.camera.Origin, n.camera.Screen)
	n.animator.Update(motion.DirectionOf(in), n.dt)
	n.refreshProximity()

	if n.state == StateNearLevel && in.Confirm {
		return Event{Kind: EventLevelTriggered, LevelID: n.near}
	}
	return Event{Kind: EventNone}
}

func (n *Navigator) refreshProximity() {
	id, ok := geom.FindTrigger(n.world, n.zones)
	switch {
	case ok && (n.state != StateNearLevel || n.near != id):
		n.state = StateNearLevel
		n.near = id
		if n.OnNear != nil {
			n.OnNear(id)
		}
	case !ok && n.state == StateNearLevel:
		n.state = StateIdle
		n.near = 0
		if n.OnNear != nil {
			n.OnNear(-1)
		}
	}
}

// State returns the trigger state.
func (n *Navigator) State() State {
	return n.state
}

// Near returns the level whose marker the character is standing at.
func (n *Navigator) Near() (int, bool) {
	return n.near, n.state == StateNearLevel
}

// Camera returns the current camera.
func (n *Navigator) Camera() Camera {
	return n.camera
}

// Motion returns the animation state of the character.
func (n *Navigator) Motion() motion.State {
	return n.animator.State
}

// WorldPosition returns the character's position on the map.
func (n *Navigator) WorldPosition() geom.Point {
	return n.world
}

// PlayerScreenPosition returns where the character is drawn.
func (n *Navigator) PlayerScreenPosition() geom.Point {
	return motion.ScreenAnchor(n.camera.Screen)
}

// ScreenPosition converts a world position to screen coordinates.
func (n *Navigator) ScreenPosition(world geom.Point) geom.Point {
	return n.camera.ToScreen(world)
}

// Registry returns the level catalog the navigator checks against.
func (n *Navigator) Registry() *level.Registry {
	return n.registry
}
