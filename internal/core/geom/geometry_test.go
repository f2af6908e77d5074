package geom

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	d := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4})
	if d != 5 {
		t.Errorf("Expected distance 5, got %f", d)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, lo, hi, want float64
	}{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{12, 0, 10, 10},
		{-50, -100, 0, -50},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, expected %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 100, Y: 200, W: 50, H: 30}
	c := r.Center()
	if c.X != 125 || c.Y != 215 {
		t.Errorf("Expected center (125, 215), got (%v, %v)", c.X, c.Y)
	}
}

func TestFindTriggerInclusiveBoundary(t *testing.T) {
	zones := []Zone{{ID: 1, Center: Point{X: 100, Y: 100}, Radius: 75}}

	id, ok := FindTrigger(Point{X: 175, Y: 100}, zones)
	if !ok || id != 1 {
		t.Errorf("Expected match on zone 1 at distance == radius, got id=%d ok=%v", id, ok)
	}

	_, ok = FindTrigger(Point{X: 175 + 1e-6, Y: 100}, zones)
	if ok {
		t.Error("Expected no match just outside the radius")
	}
}

func TestFindTriggerSkipsZeroRadius(t *testing.T) {
	zones := []Zone{
		{ID: 0, Center: Point{X: 0, Y: 0}, Radius: 0},
		{ID: 1, Center: Point{X: 500, Y: 500}, Radius: 75},
	}
	if _, ok := FindTrigger(Point{X: 0, Y: 0}, zones); ok {
		t.Error("Expected zero-radius zone to be non-interactive")
	}
}

func TestFindTriggerFirstMatchWins(t *testing.T) {
	// pos is closer to zone 2, but zone 1 is listed first and also contains it
	zones := []Zone{
		{ID: 1, Center: Point{X: 0, Y: 0}, Radius: 100},
		{ID: 2, Center: Point{X: 60, Y: 0}, Radius: 100},
	}
	pos := Point{X: 55, Y: 0}
	for i := 0; i < 10; i++ {
		id, ok := FindTrigger(pos, zones)
		if !ok || id != 1 {
			t.Fatalf("Expected first listed zone 1, got id=%d ok=%v", id, ok)
		}
	}
}

func TestFindTriggerNoZones(t *testing.T) {
	if _, ok := FindTrigger(Point{X: math.Inf(1), Y: 0}, nil); ok {
		t.Error("Expected no match with no zones")
	}
}
