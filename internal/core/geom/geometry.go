package geom

import "math"

// Distance calculates the Euclidean distance between two points
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Clamp limits v to [lo, hi]. If lo > hi the range is empty and lo wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// FindTrigger returns the ID of the first zone (in slice order) whose radius
// contains pos. Zones with a non-positive radius never match. The boundary is
// inclusive: a point at exactly Radius from the center matches.
//
// This is first-match, not nearest-match. When two zones overlap, the one
// listed first wins even if pos is closer to the other.
func FindTrigger(pos Point, zones []Zone) (int, bool) {
	for _, z := range zones {
		if z.Radius <= 0 {
			continue
		}
		if Distance(pos, z.Center) <= z.Radius {
			return z.ID, true
		}
	}
	return 0, false
}
