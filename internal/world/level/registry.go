// Package level holds the catalog of map locations and the per-stage battle
// tuning that is handed to the battle machine when a stage is entered.
package level

import (
	"fmt"

	"chosenoffset.com/quiztasy/internal/core/geom"
)

// SpawnID is the level ID of the non-interactive spawn point.
const SpawnID = 0

// Descriptor describes one location on the world map.
type Descriptor struct {
	ID     int
	Name   string     // Sprite name, e.g. "stage_3"
	Pos    geom.Point // Top-left anchor in map space
	Width  int
	Height int
	Radius float64 // Interaction radius; 0 = not enterable
}

// Center returns the trigger center: anchor plus half the size, with the
// size halved in integer pixels like the sprite placement.
func (d Descriptor) Center() geom.Point {
	return geom.Point{
		X: d.Pos.X + float64(d.Width/2),
		Y: d.Pos.Y + float64(d.Height/2),
	}
}

// Bounds returns the marker rectangle in map space.
func (d Descriptor) Bounds() geom.Rect {
	return geom.Rect{X: d.Pos.X, Y: d.Pos.Y, W: float64(d.Width), H: float64(d.Height)}
}

// Interactive reports whether the level can be entered.
func (d Descriptor) Interactive() bool {
	return d.Radius > 0
}

// Placement is a catalog row before sprite sizes are known.
type Placement struct {
	ID     int
	Name   string
	X, Y   float64
	Radius float64
}

// DefaultPlacements is the world map layout: the spawn point plus 20 stages.
var DefaultPlacements = []Placement{
	{0, "spawn_point", 1930, 1830, 0},
	{1, "stage_1", 3000, 1830, 75},
	{2, "stage_2", 4190, 1450, 75},
	{3, "stage_3", 3375, 550, 75},
	{4, "stage_4", 4715, 2575, 75},
	{5, "stage_5", 5400, 1775, 75},
	{6, "stage_6", 6350, 1225, 75},
	{7, "stage_7", 6350, 2700, 75},
	{8, "stage_8", 6300, 4500, 75},
	{9, "stage_9", 6300, 6400, 75},
	{10, "stage_10", 7880, 6150, 75},
	{11, "stage_11", 9700, 4700, 75},
	{12, "stage_12", 9600, 3050, 75},
	{13, "stage_13", 7550, 4700, 75},
	{14, "stage_14", 6830, 3550, 75},
	{15, "stage_15", 7160, 1735, 75},
	{16, "stage_16", 7975, 1835, 75},
	{17, "stage_17", 8465, 1000, 75},
	{18, "stage_18", 9050, 1835, 75},
	{19, "stage_19", 9825, 1600, 75},
	{20, "stage_20", 9700, 600, 75},
}

// Sizer reports the rendered size of a marker sprite by name.
type Sizer interface {
	MarkerSize(name string) (width, height int)
}

// FixedSizer gives every marker the same size.
type FixedSizer struct {
	Width, Height int
}

// MarkerSize implements Sizer.
func (s FixedSizer) MarkerSize(string) (int, int) {
	return s.Width, s.Height
}

// Registry is the read-only catalog of levels in insertion order.
type Registry struct {
	levels []Descriptor
	byID   map[int]int // ID -> index into levels
}

// Load builds the default catalog, sizing markers through sizer.
func Load(sizer Sizer) (*Registry, error) {
	return New(DefaultPlacements, sizer)
}

// New builds a registry from placements. IDs must be unique.
func New(placements []Placement, sizer Sizer) (*Registry, error) {
	if sizer == nil {
		sizer = FixedSizer{Width: 96, Height: 96}
	}

	r := &Registry{
		levels: make([]Descriptor, 0, len(placements)),
		byID:   make(map[int]int, len(placements)),
	}
	for _, p := range placements {
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate level id %d (%s)", p.ID, p.Name)
		}
		w, h := sizer.MarkerSize(p.Name)
		r.byID[p.ID] = len(r.levels)
		r.levels = append(r.levels, Descriptor{
			ID:     p.ID,
			Name:   p.Name,
			Pos:    geom.Point{X: p.X, Y: p.Y},
			Width:  w,
			Height: h,
			Radius: p.Radius,
		})
	}
	return r, nil
}

// Get returns a level by its ID.
func (r *Registry) Get(id int) (Descriptor, bool) {
	idx, ok := r.byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return r.levels[idx], true
}

// All returns a copy of every level in insertion order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.levels))
	copy(out, r.levels)
	return out
}

// Len returns the number of levels, spawn point included.
func (r *Registry) Len() int {
	return len(r.levels)
}

// Zones returns the trigger circles in insertion order for proximity checks.
func (r *Registry) Zones() []geom.Zone {
	zones := make([]geom.Zone, len(r.levels))
	for i, l := range r.levels {
		zones[i] = geom.Zone{ID: l.ID, Center: l.Center(), Radius: l.Radius}
	}
	return zones
}

// Spawn returns the spawn point. ok is false for catalogs without one.
func (r *Registry) Spawn() (Descriptor, bool) {
	return r.Get(SpawnID)
}
