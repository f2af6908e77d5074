package motion

// State is the animation state of the map character.
type State struct {
	Facing  Direction // Idle when no key is held
	Heading Direction // Last non-idle facing, selects the sprite row
	Frame   int
	Elapsed float64 // Seconds accumulated toward the next frame
}

// Animator advances the walking cycle on a time accumulator. There is no
// dedicated idle cycle: standing still holds the current frame of the last
// heading.
type Animator struct {
	State
	FrameDuration float64
	Frames        int
}

// NewAnimator creates an animator facing down, the spawn pose.
func NewAnimator(frameDuration float64, frames int) *Animator {
	if frames < 1 {
		frames = 1
	}
	return &Animator{
		State:         State{Facing: Idle, Heading: Down},
		FrameDuration: frameDuration,
		Frames:        frames,
	}
}

// Update advances the animation by dt seconds while facing dir.
func (a *Animator) Update(dir Direction, dt float64) {
	a.Facing = dir
	if dir == Idle {
		a.Elapsed = 0
		return
	}

	if dir != a.Heading {
		a.Heading = dir
		a.Frame = 0
		a.Elapsed = 0
	}

	a.Elapsed += dt
	if a.Elapsed > a.FrameDuration {
		a.Frame = (a.Frame + 1) % a.Frames
		a.Elapsed = 0
	}
}
