package mapnav

import (
	"math/rand"
	"testing"

	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/entity/motion"
	"chosenoffset.com/quiztasy/internal/input"
	"chosenoffset.com/quiztasy/internal/world/level"
)

var (
	testMap    = geom.Size{W: 2000, H: 1500}
	testScreen = geom.Size{W: 800, H: 600}
)

func testNavigator(t *testing.T) *Navigator {
	t.Helper()
	reg, err := level.New([]level.Placement{
		{ID: 0, Name: "spawn_point", X: 400, Y: 300},
		{ID: 1, Name: "stage_1", X: 600, Y: 300, Radius: 75},
		{ID: 2, Name: "stage_2", X: 400, Y: 600, Radius: 75},
	}, level.FixedSizer{Width: 100, Height: 100})
	if err != nil {
		t.Fatalf("Failed to build registry: %v", err)
	}
	return New(reg, testMap, testScreen, Options{
		Speed:          10,
		FrameDuration:  0.12,
		FramesPerCycle: 4,
		TickSeconds:    1.0 / 60,
	})
}

func held(dirs ...string) input.Snapshot {
	in := input.Empty()
	for _, d := range dirs {
		switch d {
		case "up":
			in.Up = true
		case "down":
			in.Down = true
		case "left":
			in.Left = true
		case "right":
			in.Right = true
		}
	}
	return in
}

func TestNewCentersOnSpawn(t *testing.T) {
	n := testNavigator(t)

	want := geom.Point{X: 450, Y: 350}
	if got := n.WorldPosition(); got != want {
		t.Errorf("Expected world position %v, got %v", want, got)
	}
	if got := n.Camera().Origin; got != (geom.Point{X: -50, Y: -50}) {
		t.Errorf("Expected origin (-50,-50), got %v", got)
	}
	if n.State() != StateIdle {
		t.Errorf("Expected idle at spawn, got %d", n.State())
	}
	if n.Motion().Heading != motion.Down {
		t.Errorf("Expected to face down at spawn, got %s", n.Motion().Heading)
	}
}

func TestConfirmAwayFromLevelDoesNothing(t *testing.T) {
	n := testNavigator(t)

	in := input.Empty()
	in.Confirm = true
	if ev := n.Tick(in); ev.Kind != EventNone {
		t.Errorf("Expected no event, got %s", ev)
	}
}

func TestWalkingArmsAndConfirmFires(t *testing.T) {
	n := testNavigator(t)

	var nearEvents []int
	n.OnNear = func(id int) { nearEvents = append(nearEvents, id) }

	// Level 1's center is 200px to the right, radius 75.
	for i := 0; i < 12; i++ {
		if ev := n.Tick(held("right")); ev.Kind != EventNone {
			t.Fatalf("Tick %d: walking alone must not trigger, got %s", i, ev)
		}
	}
	if _, ok := n.Near(); ok {
		t.Fatalf("Expected not near at x=%v", n.WorldPosition().X)
	}

	n.Tick(held("right"))
	id, ok := n.Near()
	if !ok || id != 1 {
		t.Fatalf("Expected near level 1 at x=%v, got %d %v", n.WorldPosition().X, id, ok)
	}
	if n.Motion().Heading != motion.Right {
		t.Errorf("Expected heading right, got %s", n.Motion().Heading)
	}

	in := input.Empty()
	in.Confirm = true
	ev := n.Tick(in)
	if ev.Kind != EventLevelTriggered || ev.LevelID != 1 {
		t.Errorf("Expected LevelTriggered(1), got %s", ev)
	}

	// Walk back out of range.
	for i := 0; i < 3; i++ {
		n.Tick(held("left"))
	}
	if n.State() != StateIdle {
		t.Errorf("Expected idle after leaving the marker, got %d", n.State())
	}
	if len(nearEvents) != 2 || nearEvents[0] != 1 || nearEvents[1] != -1 {
		t.Errorf("Expected near events [1 -1], got %v", nearEvents)
	}
}

func TestBackRequested(t *testing.T) {
	n := testNavigator(t)
	before := n.Camera().Origin

	in := held("right")
	in.Back = true
	if ev := n.Tick(in); ev.Kind != EventBackRequested {
		t.Errorf("Expected BackRequested, got %s", ev)
	}
	if n.Camera().Origin != before {
		t.Error("Expected back to skip movement")
	}
}

func TestCameraStaysClampedOnRandomWalk(t *testing.T) {
	n := testNavigator(t)
	rng := rand.New(rand.NewSource(42))
	dirs := []string{"up", "down", "left", "right"}

	minX := float64(testScreen.W - testMap.W)
	minY := float64(testScreen.H - testMap.H)

	for i := 0; i < 5000; i++ {
		var in input.Snapshot
		if rng.Intn(4) == 0 {
			in = held(dirs[rng.Intn(4)], dirs[rng.Intn(4)])
		} else {
			in = held(dirs[rng.Intn(4)])
		}
		n.Tick(in)

		o := n.Camera().Origin
		if o.X < minX || o.X > 0 || o.Y < minY || o.Y > 0 {
			t.Fatalf("Step %d: origin %v escaped [%v,0]x[%v,0]", i, o, minX, minY)
		}
		if got, want := n.WorldPosition(), motion.WorldPosition(o, testScreen); got != want {
			t.Fatalf("Step %d: world position %v drifted from %v", i, got, want)
		}
	}
}

func TestSmallMapIsCentered(t *testing.T) {
	reg, _ := level.New(nil, nil)
	n := New(reg, geom.Size{W: 400, H: 1500}, testScreen, Options{Speed: 10, FrameDuration: 0.1, FramesPerCycle: 4})

	for i := 0; i < 50; i++ {
		n.Tick(held("right"))
	}
	if x := n.Camera().Origin.X; x != 200 {
		t.Errorf("Expected narrow map fixed at x=200, got %v", x)
	}
}

func TestResetReturnsToSpawn(t *testing.T) {
	n := testNavigator(t)
	start := n.WorldPosition()

	for i := 0; i < 30; i++ {
		n.Tick(held("down"))
	}
	if n.WorldPosition() == start {
		t.Fatal("Expected movement before reset")
	}

	n.Reset()
	if n.WorldPosition() != start {
		t.Errorf("Expected reset to %v, got %v", start, n.WorldPosition())
	}
	if n.State() != StateIdle {
		t.Errorf("Expected idle after reset, got %d", n.State())
	}
}

func TestCameraConversions(t *testing.T) {
	c := NewCamera(testMap, testScreen, geom.Point{X: 1000, Y: 750})
	if c.Origin != (geom.Point{X: -600, Y: -450}) {
		t.Errorf("Expected origin (-600,-450), got %v", c.Origin)
	}

	p := geom.Point{X: 1234, Y: 567}
	if got := c.ToWorld(c.ToScreen(p)); got != p {
		t.Errorf("Expected round trip to %v, got %v", p, got)
	}

	if !c.Visible(geom.Rect{X: 900, Y: 700, W: 10, H: 10}) {
		t.Error("Expected rect at the focus to be visible")
	}
	if c.Visible(geom.Rect{X: 0, Y: 0, W: 10, H: 10}) {
		t.Error("Expected map corner to be off screen")
	}
}
