package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite tone generator.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s with a linear fade in and fade out.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	rel := rate.N(release)
	return &envelope{
		streamer:     s,
		attack:       rate.N(attack),
		release:      rel,
		releaseStart: max(total-rel, 0),
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(float64(e.total-e.position)/float64(e.release), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies a linear gain; 0 silences the stream.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one step of a synthesized effect
type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

func tone(n note, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.duration, n.wave, rate)
	return NewEnvelope(osc, n.duration, 5*time.Millisecond, n.duration/3, rate)
}

// melodies are the built-in effects, played in sequence
var melodies = map[SFX][]note{
	SFXClick: {
		{1200, 40 * time.Millisecond, WaveSquare},
	},
	SFXCorrect: {
		{660, 90 * time.Millisecond, WaveSine},
		{990, 160 * time.Millisecond, WaveSine},
	},
	SFXWrong: {
		{110, 250 * time.Millisecond, WaveSaw},
	},
	SFXEncounter: {
		{0, 120 * time.Millisecond, WaveNoise},
		{196, 200 * time.Millisecond, WaveSquare},
	},
	SFXVictory: {
		{523, 110 * time.Millisecond, WaveSine},
		{659, 110 * time.Millisecond, WaveSine},
		{784, 110 * time.Millisecond, WaveSine},
		{1047, 300 * time.Millisecond, WaveSine},
	},
	SFXDefeat: {
		{392, 160 * time.Millisecond, WaveSaw},
		{330, 160 * time.Millisecond, WaveSaw},
		{262, 400 * time.Millisecond, WaveSaw},
	},
}

// Synthesize builds the built-in sound for an effect. Unknown effects fall
// back to the click.
func Synthesize(id SFX, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := melodies[id]
	if !ok {
		notes = melodies[SFXClick]
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n, rate))
	}
	// Effects sit under the music
	return newVolume(beep.Seq(parts...), 0.3*volume)
}

// SynthLength returns how long a built-in effect plays.
func SynthLength(id SFX) time.Duration {
	notes, ok := melodies[id]
	if !ok {
		notes = melodies[SFXClick]
	}
	var total time.Duration
	for _, n := range notes {
		total += n.duration
	}
	return total
}
