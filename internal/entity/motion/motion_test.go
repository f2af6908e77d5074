package motion

import (
	"math/rand"
	"testing"

	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/input"
)

var (
	testScreen = geom.Size{W: 1920, H: 1080}
	testMap    = geom.Size{W: 4000, H: 3000}
)

func held(up, down, left, right bool) input.Snapshot {
	s := input.Empty()
	s.Up, s.Down, s.Left, s.Right = up, down, left, right
	return s
}

func TestCameraBounds(t *testing.T) {
	b := CameraBounds(testMap, testScreen)
	if b.Min.X != -2080 || b.Max.X != 0 {
		t.Errorf("Expected x range [-2080, 0], got [%v, %v]", b.Min.X, b.Max.X)
	}
	if b.Min.Y != -1920 || b.Max.Y != 0 {
		t.Errorf("Expected y range [-1920, 0], got [%v, %v]", b.Min.Y, b.Max.Y)
	}
}

func TestCameraBoundsSmallMapIsCentered(t *testing.T) {
	b := CameraBounds(geom.Size{W: 1000, H: 3000}, testScreen)
	if b.Min.X != 460 || b.Max.X != 460 {
		t.Errorf("Expected x fixed at 460, got [%v, %v]", b.Min.X, b.Max.X)
	}
}

func TestStepMovesCameraOpposite(t *testing.T) {
	c := NewController(6)
	b := CameraBounds(testMap, testScreen)
	origin := geom.Point{X: -1000, Y: -1000}

	next, world := c.Step(held(false, false, false, true), b, origin, testScreen)
	if next.X != -1006 || next.Y != -1000 {
		t.Errorf("Expected origin (-1006, -1000), got (%v, %v)", next.X, next.Y)
	}
	if world.X != 960+1006 || world.Y != 540+1000 {
		t.Errorf("Expected world (1966, 1540), got (%v, %v)", world.X, world.Y)
	}
}

func TestStepClampsAtEdges(t *testing.T) {
	c := NewController(6)
	b := CameraBounds(testMap, testScreen)

	next, _ := c.Step(held(true, false, true, false), b, geom.Point{X: -2, Y: -3}, testScreen)
	if next.X != 0 || next.Y != 0 {
		t.Errorf("Expected origin clamped to (0, 0), got (%v, %v)", next.X, next.Y)
	}

	next, _ = c.Step(held(false, true, false, true), b, geom.Point{X: -2078, Y: -1918}, testScreen)
	if next.X != -2080 || next.Y != -1920 {
		t.Errorf("Expected origin clamped to (-2080, -1920), got (%v, %v)", next.X, next.Y)
	}
}

func TestStepBoundsInvariantRandomWalk(t *testing.T) {
	c := NewController(17)
	b := CameraBounds(testMap, testScreen)
	rng := rand.New(rand.NewSource(42))
	origin := geom.Point{}

	for i := 0; i < 5000; i++ {
		in := held(rng.Intn(2) == 0, rng.Intn(2) == 0, rng.Intn(2) == 0, rng.Intn(2) == 0)
		var world geom.Point
		origin, world = c.Step(in, b, origin, testScreen)

		if origin.X < float64(testScreen.W-testMap.W) || origin.X > 0 ||
			origin.Y < float64(testScreen.H-testMap.H) || origin.Y > 0 {
			t.Fatalf("Step %d: origin out of bounds: %+v", i, origin)
		}
		if got := ScreenAnchor(testScreen).Sub(origin); got != world {
			t.Fatalf("Step %d: world position drifted: %+v vs %+v", i, got, world)
		}
	}
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		in   input.Snapshot
		want Direction
	}{
		{input.Empty(), Idle},
		{held(true, false, false, false), Up},
		{held(false, true, false, false), Down},
		{held(true, false, true, false), Left},
		{held(false, true, false, true), Right},
	}
	for _, tt := range tests {
		if got := DirectionOf(tt.in); got != tt.want {
			t.Errorf("DirectionOf(%+v) = %v, expected %v", tt.in, got, tt.want)
		}
	}
}

func TestAnimatorAdvancesOnAccumulator(t *testing.T) {
	a := NewAnimator(0.1, 4)
	dt := 0.04

	a.Update(Right, dt) // 0.04
	a.Update(Right, dt) // 0.08
	if a.Frame != 0 {
		t.Errorf("Expected frame 0 before threshold, got %d", a.Frame)
	}
	a.Update(Right, dt) // 0.12 > 0.1
	if a.Frame != 1 {
		t.Errorf("Expected frame 1 after threshold, got %d", a.Frame)
	}
	if a.Elapsed != 0 {
		t.Errorf("Expected accumulator reset, got %v", a.Elapsed)
	}
}

func TestAnimatorWrapsCycle(t *testing.T) {
	a := NewAnimator(0.01, 3)
	for i := 0; i < 3; i++ {
		a.Update(Up, 0.02)
	}
	if a.Frame != 0 {
		t.Errorf("Expected frame to wrap to 0, got %d", a.Frame)
	}
}

func TestAnimatorIdleHoldsFrame(t *testing.T) {
	a := NewAnimator(0.01, 4)
	a.Update(Left, 0.02)
	a.Update(Left, 0.02)
	if a.Frame != 2 {
		t.Fatalf("Expected frame 2, got %d", a.Frame)
	}

	for i := 0; i < 10; i++ {
		a.Update(Idle, 0.02)
	}
	if a.Frame != 2 || a.Heading != Left || a.Facing != Idle {
		t.Errorf("Expected idle to hold frame 2 facing left, got %+v", a.State)
	}
}

func TestAnimatorDirectionChangeRestartsCycle(t *testing.T) {
	a := NewAnimator(0.01, 4)
	a.Update(Left, 0.02)
	a.Update(Down, 0.001)
	if a.Heading != Down || a.Frame != 0 {
		t.Errorf("Expected fresh down cycle, got %+v", a.State)
	}
}
