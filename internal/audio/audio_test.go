package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"chosenoffset.com/quiztasy/internal/config"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if v > peak {
					peak = v
				}
				if -v > peak {
					peak = -v
				}
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("Streamer never ended")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(t, osc)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 1.0 {
		t.Errorf("Expected samples within [-1, 1], peak %f", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got %v", osc.Err())
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, time.Second, WaveSquare, rate)
	env := NewEnvelope(osc, time.Second, 100*time.Millisecond, 100*time.Millisecond, rate)

	buf := make([][2]float64, 1000)
	n, _ := env.Stream(buf)
	if n != 1000 {
		t.Fatalf("Expected 1000 samples, got %d", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if buf[500][0] != 1 {
		t.Errorf("Expected full level mid-note, got %f", buf[500][0])
	}
	if buf[999][0] >= buf[950][0] {
		t.Errorf("Expected release to fade out, got %f then %f", buf[950][0], buf[999][0])
	}
}

func TestSynthesizedEffectsAreFinite(t *testing.T) {
	ids := []SFX{SFXClick, SFXCorrect, SFXWrong, SFXEncounter, SFXVictory, SFXDefeat, SFX("unknown")}
	for _, id := range ids {
		n, peak := drain(t, Synthesize(id, sampleRate, 1))
		want := sampleRate.N(SynthLength(id))
		// Notes are rounded to whole samples individually
		if n < want-len(melodies[SFXVictory]) || n > want+len(melodies[SFXVictory]) {
			t.Errorf("%s: expected about %d samples, got %d", id, want, n)
		}
		if peak > 1.0 {
			t.Errorf("%s: peak %f clips", id, peak)
		}
	}
}

func TestMutedEffectIsSilent(t *testing.T) {
	_, peak := drain(t, Synthesize(SFXVictory, sampleRate, 0))
	if peak != 0 {
		t.Errorf("Expected silence at volume 0, got peak %f", peak)
	}
}

func TestPlayerWithoutDevice(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Player panicked without a device: %v", r)
		}
	}()

	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)

	p.PlaySFX(SFXClick)
	p.PlayMusic("audio/ost/boyOst.mp3")
	if p.MusicPath() != "audio/ost/boyOst.mp3" {
		t.Errorf("Expected music path to be tracked, got %q", p.MusicPath())
	}

	p.Pause()
	if !p.Paused() {
		t.Error("Expected paused")
	}
	p.Resume()
	if p.Paused() {
		t.Error("Expected resumed")
	}

	p.StopMusic()
	if p.MusicPath() != "" {
		t.Errorf("Expected music cleared, got %q", p.MusicPath())
	}
	p.Close()
}

func TestToggleKeepsTrack(t *testing.T) {
	cfg := config.DefaultConfig()
	p := NewPlayer(cfg)

	if !p.Enabled() {
		t.Fatal("Expected audio enabled by default")
	}
	p.PlayMusic("audio/ost/menuOst.mp3")

	if p.ToggleEnabled() {
		t.Error("Expected toggle to disable")
	}
	if p.MusicPath() != "audio/ost/menuOst.mp3" {
		t.Errorf("Expected the track to be remembered while muted, got %q", p.MusicPath())
	}

	p.PlayMusic("audio/ost/girlOst.mp3")
	if !p.ToggleEnabled() {
		t.Error("Expected toggle to enable")
	}
	if p.MusicPath() != "audio/ost/girlOst.mp3" {
		t.Errorf("Expected the latest track, got %q", p.MusicPath())
	}
}

func TestNop(t *testing.T) {
	var s Service = &Nop{}
	s.PlaySFX(SFXVictory)
	s.PlayMusic("x.mp3")
	if s.Enabled() {
		t.Error("Expected zero Nop to be disabled")
	}
	if !s.ToggleEnabled() || !s.Enabled() {
		t.Error("Expected toggle to enable")
	}
}
