// Package audio plays the soundtrack and sound effects. Everything is fire
// and forget: failures are logged and the game carries on silently.
package audio

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"chosenoffset.com/quiztasy/internal/config"
)

const sampleRate = beep.SampleRate(44100)

// SFX identifies a sound effect
type SFX string

const (
	SFXClick     SFX = "click_sound_button"
	SFXCorrect   SFX = "correct"
	SFXWrong     SFX = "wrong"
	SFXEncounter SFX = "encounter"
	SFXVictory   SFX = "victory"
	SFXDefeat    SFX = "defeat"
)

// Service is what the game needs from audio.
type Service interface {
	PlaySFX(id SFX)
	PlayMusic(path string)
	StopMusic()
	Pause()
	Resume()
	ToggleEnabled() bool
	Enabled() bool
	Close()
}

// Player is the beep-backed Service. Until Init succeeds it only tracks
// state, so it is safe to use without an audio device.
type Player struct {
	mu          sync.Mutex
	root        string
	sfxDir      string
	volume      float64
	enabled     bool
	paused      bool
	initialized bool

	mixer     *beep.Mixer
	music     *beep.Ctrl
	musicSrc  beep.StreamSeekCloser
	musicPath string

	recorded map[SFX]*beep.Buffer
	tried    map[SFX]bool
}

// NewPlayer creates a player for the configured asset tree.
func NewPlayer(cfg config.Config) *Player {
	return &Player{
		root:     cfg.Assets.Root,
		sfxDir:   "audio/sfx",
		volume:   cfg.Audio.Volume,
		enabled:  cfg.Audio.Enabled,
		mixer:    &beep.Mixer{},
		recorded: make(map[SFX]*beep.Buffer),
		tried:    make(map[SFX]bool),
	}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// PlaySFX plays an effect over the music. A recorded file in audio/sfx
// replaces the built-in sound.
func (p *Player) PlaySFX(id SFX) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.initialized {
		return
	}

	var s beep.Streamer
	if buf := p.recordedLocked(id); buf != nil {
		s = newVolume(buf.Streamer(0, buf.Len()), p.volume)
		if buf.Format().SampleRate != sampleRate {
			s = beep.Resample(4, buf.Format().SampleRate, sampleRate, s)
		}
	} else {
		s = Synthesize(id, sampleRate, p.volume)
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// recordedLocked decodes audio/sfx/<id>.mp3 once. Returns nil if there is
// no usable file.
func (p *Player) recordedLocked(id SFX) *beep.Buffer {
	if buf, ok := p.recorded[id]; ok {
		return buf
	}
	if p.tried[id] {
		return nil
	}
	p.tried[id] = true

	f, err := os.Open(filepath.Join(p.root, filepath.FromSlash(p.sfxDir), string(id)+".mp3"))
	if err != nil {
		return nil
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		log.Printf("Warning: failed to decode sound effect %s: %v", id, err)
		return nil
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	p.recorded[id] = buf
	return buf
}

// PlayMusic loops an mp3 from the asset root, replacing the current track.
// While audio is disabled the track is remembered and starts when enabled.
func (p *Player) PlayMusic(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopMusicLocked()
	p.musicPath = path
	p.paused = false
	if p.enabled {
		p.startMusicLocked()
	}
}

func (p *Player) startMusicLocked() {
	if !p.initialized || p.musicPath == "" {
		return
	}

	f, err := os.Open(filepath.Join(p.root, filepath.FromSlash(p.musicPath)))
	if err != nil {
		log.Printf("Warning: failed to open music %s: %v", p.musicPath, err)
		return
	}
	streamer, format, err := mp3.Decode(f)
	if err != nil {
		log.Printf("Warning: failed to decode music %s: %v", p.musicPath, err)
		f.Close()
		return
	}

	var s beep.Streamer = beep.Loop(-1, streamer)
	if format.SampleRate != sampleRate {
		s = beep.Resample(4, format.SampleRate, sampleRate, s)
	}
	ctrl := &beep.Ctrl{Streamer: newVolume(s, p.volume), Paused: p.paused}

	speaker.Lock()
	p.mixer.Add(ctrl)
	speaker.Unlock()

	p.music = ctrl
	p.musicSrc = streamer
}

// StopMusic stops the current track and forgets it.
func (p *Player) StopMusic() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopMusicLocked()
	p.musicPath = ""
}

func (p *Player) stopMusicLocked() {
	if p.music == nil {
		return
	}

	// A Ctrl without a streamer reports drained and the mixer drops it
	speaker.Lock()
	p.music.Streamer = nil
	speaker.Unlock()

	if err := p.musicSrc.Close(); err != nil {
		log.Printf("Warning: failed to close music %s: %v", p.musicPath, err)
	}
	p.music = nil
	p.musicSrc = nil
}

// Pause holds the music, e.g. while a battle is paused.
func (p *Player) Pause() {
	p.setPaused(true)
}

// Resume continues paused music.
func (p *Player) Resume() {
	p.setPaused(false)
}

func (p *Player) setPaused(paused bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.paused = paused
	if p.music != nil {
		speaker.Lock()
		p.music.Paused = paused
		speaker.Unlock()
	}
}

// ToggleEnabled mutes or unmutes all audio and returns the new state.
func (p *Player) ToggleEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.enabled = !p.enabled
	if p.enabled {
		p.startMusicLocked()
	} else {
		path := p.musicPath
		p.stopMusicLocked()
		p.musicPath = path
	}
	return p.enabled
}

// Enabled reports whether audio is on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// MusicPath returns the track that is playing, or would play if enabled.
func (p *Player) MusicPath() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.musicPath
}

// Paused reports whether the music is held.
func (p *Player) Paused() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.paused
}

// Close stops all sound and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.stopMusicLocked()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// Nop is a silent Service used when no audio device is available.
type Nop struct {
	On bool
}

func (n *Nop) PlaySFX(SFX)      {}
func (n *Nop) PlayMusic(string) {}
func (n *Nop) StopMusic()       {}
func (n *Nop) Pause()           {}
func (n *Nop) Resume()          {}
func (n *Nop) Close()           {}
func (n *Nop) Enabled() bool    { return n.On }

func (n *Nop) ToggleEnabled() bool {
	n.On = !n.On
	return n.On
}

var (
	_ Service = (*Player)(nil)
	_ Service = (*Nop)(nil)
)

// Open creates the game's audio service. If the device cannot be opened the
// Player still works but never makes a sound.
func Open(cfg config.Config) *Player {
	p := NewPlayer(cfg)
	if err := p.Init(); err != nil {
		log.Printf("Warning: %v, audio disabled", err)
	}
	return p
}
