package game

import (
	"fmt"
	"log"

	"chosenoffset.com/quiztasy/internal/audio"
	"chosenoffset.com/quiztasy/internal/battle"
	"chosenoffset.com/quiztasy/internal/config"
	"chosenoffset.com/quiztasy/internal/core/geom"
	"chosenoffset.com/quiztasy/internal/core/progress"
	"chosenoffset.com/quiztasy/internal/input"
	"chosenoffset.com/quiztasy/internal/mapnav"
	"chosenoffset.com/quiztasy/internal/render"
	"chosenoffset.com/quiztasy/internal/world/level"
)

const (
	messageSeconds = 3.0
	// OutcomeSeconds is how long the victory or defeat banner stays up
	// before the map takes over again.
	OutcomeSeconds = 2.5
)

// Session is the backend-independent game: it owns the map navigator, the
// active battle and the player's progress, and switches between the two
// modal loops. Both the windowed and the terminal front ends drive it.
type Session struct {
	Config   config.Config
	Registry *level.Registry
	Nav      *mapnav.Navigator
	Battle   *battle.Machine // nil while on the map
	Deck     battle.Deck
	Audio    audio.Service
	Progress *progress.Record

	Mode     Mode
	Messages []Message

	outcomeElapsed float64

	// Callbacks
	OnVictory func(levelID int)
	OnDefeat  func(levelID int, forfeited bool)
}

// NewSession creates a session positioned at the spawn point with the hero's
// map music playing.
func NewSession(cfg config.Config, registry *level.Registry, mapSize geom.Size, deck battle.Deck, svc audio.Service) *Session {
	if svc == nil {
		svc = &audio.Nop{}
	}
	s := &Session{
		Config:   cfg,
		Registry: registry,
		Deck:     deck,
		Audio:    svc,
		Progress: progress.New(),
		Mode:     ModeMap,
	}
	s.Nav = mapnav.New(registry, mapSize, ScreenSize(cfg), mapnav.Options{
		Speed:          cfg.Movement.Speed,
		FrameDuration:  cfg.Movement.FrameDuration,
		FramesPerCycle: cfg.Movement.FramesPerCycle,
		TickSeconds:    cfg.TickSeconds(),
	})
	s.Audio.PlayMusic(cfg.HeroMusic())
	return s
}

// ScreenSize returns the logical screen of a config.
func ScreenSize(cfg config.Config) geom.Size {
	return geom.Size{W: cfg.Screen.Width, H: cfg.Screen.Height}
}

// Step advances the session by one tick. It returns render.ErrQuit when the
// player backs out of the map.
func (s *Session) Step(in input.Snapshot) error {
	dt := s.Config.TickSeconds()
	s.updateMessages(dt)

	if in.ToggleAudio {
		if s.Audio.ToggleEnabled() {
			s.ShowMessage("Audio on")
		} else {
			s.ShowMessage("Audio off")
		}
	}

	switch s.Mode {
	case ModeBattle:
		s.stepBattle(dt, in)
	default:
		ev := s.Nav.Tick(in)
		switch ev.Kind {
		case mapnav.EventBackRequested:
			s.Audio.PlaySFX(audio.SFXClick)
			log.Println("Leaving the map")
			return render.ErrQuit
		case mapnav.EventLevelTriggered:
			s.Audio.PlaySFX(audio.SFXClick)
			s.EnterLevel(ev.LevelID)
		}
	}
	return nil
}

func (s *Session) stepBattle(dt float64, in input.Snapshot) {
	if s.Battle == nil {
		s.Mode = ModeMap
		return
	}

	if s.Battle.Done() {
		s.outcomeElapsed += dt
		if in.Confirm || in.Back || s.outcomeElapsed >= OutcomeSeconds {
			s.ReturnToMap()
		}
		return
	}

	if in.Confirm || in.Choice != input.NoChoice {
		s.Audio.PlaySFX(audio.SFXClick)
	}
	s.Battle.Update(dt, in)
}

// EnterLevel starts the battle for a level. The map stays where it was and
// resumes when the battle ends.
func (s *Session) EnterLevel(id int) {
	enc := level.EncounterFor(id)
	m := battle.New(enc, s.Deck, battle.Options{
		HitDamage:       s.Config.Battle.HitDamage,
		IntroSeconds:    s.Config.Battle.IntroSeconds,
		FeedbackSeconds: s.Config.Battle.FeedbackSeconds,
	})

	m.OnResolve = func(result battle.Result, _ battle.State) {
		s.Progress.RecordAnswer(result == battle.ResultCorrect, result == battle.ResultTimeout)
		if result == battle.ResultCorrect {
			s.Audio.PlaySFX(audio.SFXCorrect)
		} else {
			s.Audio.PlaySFX(audio.SFXWrong)
		}
	}
	m.OnFinish = func(victory bool, st battle.State) {
		s.Progress.RecordBattle(enc.LevelID, victory, st.Forfeited)
		if victory {
			s.Audio.PlaySFX(audio.SFXVictory)
			if s.OnVictory != nil {
				s.OnVictory(enc.LevelID)
			}
		} else {
			s.Audio.PlaySFX(audio.SFXDefeat)
			if s.OnDefeat != nil {
				s.OnDefeat(enc.LevelID, st.Forfeited)
			}
		}
	}
	m.OnPause = func(paused bool) {
		if paused {
			s.Audio.Pause()
		} else {
			s.Audio.Resume()
		}
	}

	log.Printf("Entering level %d: %s (%.0f HP, difficulty %d)", enc.LevelID, enc.EnemyName, enc.EnemyHP, enc.Difficulty)
	s.Battle = m
	s.Mode = ModeBattle
	s.outcomeElapsed = 0
	s.Audio.PlaySFX(audio.SFXEncounter)
}

// ReturnToMap discards the battle and hands the tick back to the navigator.
func (s *Session) ReturnToMap() {
	if s.Battle != nil {
		enc := s.Battle.Encounter()
		st := s.Battle.State()
		switch {
		case s.Battle.Outcome() == battle.Victory:
			s.ShowMessage(fmt.Sprintf("Stage %d cleared! %s was defeated.", enc.LevelID, enc.EnemyName))
		case st.Forfeited:
			s.ShowMessage(fmt.Sprintf("You fled from %s.", enc.EnemyName))
		case s.Battle.Done():
			s.ShowMessage(fmt.Sprintf("%s defeated you. Try stage %d again!", enc.EnemyName, enc.LevelID))
		}
	}
	s.Battle = nil
	s.Mode = ModeMap
	s.outcomeElapsed = 0
	s.Audio.Resume()
}

// ShowMessage displays a message that fades out over a few seconds.
func (s *Session) ShowMessage(text string) {
	s.Messages = append(s.Messages, Message{
		Text:     text,
		TimeLeft: messageSeconds,
		MaxTime:  messageSeconds,
	})
}

func (s *Session) updateMessages(dt float64) {
	active := s.Messages[:0]
	for _, msg := range s.Messages {
		msg.TimeLeft -= dt
		if msg.TimeLeft > 0 {
			active = append(active, msg)
		}
	}
	s.Messages = active
}

// NearLevel returns the level whose marker the character stands at.
func (s *Session) NearLevel() (level.Descriptor, bool) {
	id, ok := s.Nav.Near()
	if !ok {
		return level.Descriptor{}, false
	}
	return s.Registry.Get(id)
}

// Summary is the one-line progress readout shown on the map.
func (s *Session) Summary() string {
	stages := 0
	for _, d := range s.Registry.All() {
		if d.Interactive() {
			stages++
		}
	}
	return s.Progress.Summary(stages)
}
