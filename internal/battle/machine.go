// Package battle implements the turn-based quiz battle: the player answers
// timed multiple-choice questions, correct answers damage the enemy and
// misses or timeouts damage the player, until one side runs out of HP.
package battle

import (
	"errors"
	"fmt"
	"log"

	"chosenoffset.com/quiztasy/internal/input"
	"chosenoffset.com/quiztasy/internal/quiz"
	"chosenoffset.com/quiztasy/internal/world/level"
)

// DefaultHitDamage is dealt to the enemy per correct answer. It does not
// depend on question difficulty.
const DefaultHitDamage = 3.0

var (
	// ErrNotAwaitingAnswer is returned when an answer arrives outside a turn.
	ErrNotAwaitingAnswer = errors.New("battle is not waiting for an answer")
	// ErrInvalidChoice is returned for a choice index the question doesn't have.
	ErrInvalidChoice = errors.New("invalid choice")
)

// Phase represents the current phase of a battle
type Phase int

const (
	PhaseIntro      Phase = iota // Banner before the first question
	PhasePlayerTurn              // Question shown, countdown running
	PhaseResolve                 // Showing the result of the last answer
	PhaseVictory                 // Enemy defeated (terminal)
	PhaseDefeat                  // Player defeated or fled (terminal)
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlayerTurn:
		return "player_turn"
	case PhaseResolve:
		return "resolve"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether the battle is over.
func (p Phase) Terminal() bool {
	return p == PhaseVictory || p == PhaseDefeat
}

// Result is how a single question turn ended
type Result int

const (
	ResultNone Result = iota
	ResultCorrect
	ResultIncorrect
	ResultTimeout
)

func (r Result) String() string {
	switch r {
	case ResultCorrect:
		return "correct"
	case ResultIncorrect:
		return "incorrect"
	case ResultTimeout:
		return "timeout"
	default:
		return "none"
	}
}

// Outcome is the verdict of a battle
type Outcome int

const (
	InProgress Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	default:
		return "in_progress"
	}
}

// Deck supplies questions for a difficulty tier. It must always return a
// question; *quiz.Bank recycles its decks to guarantee that.
type Deck interface {
	Next(difficulty int) quiz.Question
}

// Options tune battle pacing.
type Options struct {
	HitDamage       float64
	IntroSeconds    float64
	FeedbackSeconds float64
}

// State is a snapshot of the battle for drawing.
type State struct {
	Phase      Phase
	Player     Combatant
	Enemy      Combatant
	Question   quiz.Question
	Remaining  float64 // Seconds left on the current question
	Turn       int     // Questions asked so far
	LastResult Result
	LastChoice int
	Paused     bool
	Forfeited  bool
}

// Machine runs a single encounter. It is created from an encounter, driven by
// Update once per tick, and discarded when Done reports true.
type Machine struct {
	encounter level.Encounter
	deck      Deck
	opts      Options
	state     State
	elapsed   float64 // Time spent in the intro or resolve phase

	// Callbacks
	OnResolve func(result Result, state State)
	OnFinish  func(victory bool, state State)
	OnPause   func(paused bool)
}

// New creates a battle for an encounter. The player always starts with
// PlayerMaxHP; the enemy with the encounter's HP.
func New(enc level.Encounter, deck Deck, opts Options) *Machine {
	if opts.HitDamage <= 0 {
		opts.HitDamage = DefaultHitDamage
	}
	return &Machine{
		encounter: enc,
		deck:      deck,
		opts:      opts,
		state: State{
			Phase:      PhaseIntro,
			Player:     NewCombatant("Player", PlayerMaxHP),
			Enemy:      NewCombatant(enc.EnemyName, enc.EnemyHP),
			LastChoice: input.NoChoice,
		},
	}
}

// Encounter returns the configuration this battle was created from.
func (m *Machine) Encounter() level.Encounter {
	return m.encounter
}

// State returns a snapshot of the battle.
func (m *Machine) State() State {
	return m.state
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.state.Phase
}

// Done reports whether the battle reached Victory or Defeat.
func (m *Machine) Done() bool {
	return m.state.Phase.Terminal()
}

// Outcome returns the verdict, or InProgress while the battle runs.
func (m *Machine) Outcome() Outcome {
	switch m.state.Phase {
	case PhaseVictory:
		return Victory
	case PhaseDefeat:
		return Defeat
	default:
		return InProgress
	}
}

// Begin leaves the intro and asks the first question.
func (m *Machine) Begin() error {
	if m.state.Phase != PhaseIntro {
		return fmt.Errorf("cannot begin battle in phase %s", m.state.Phase)
	}
	m.nextQuestion()
	return nil
}

// Answer resolves the current question with the chosen option.
func (m *Machine) Answer(choice int) (Result, error) {
	if m.state.Phase != PhasePlayerTurn {
		return ResultNone, ErrNotAwaitingAnswer
	}
	if choice < 0 || choice >= len(m.state.Question.Choices) {
		return ResultNone, fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}

	m.state.LastChoice = choice
	result := ResultIncorrect
	if m.state.Question.IsCorrect(choice) {
		result = ResultCorrect
	}
	m.resolve(result)
	return result, nil
}

// Expire resolves the current question as a timeout.
func (m *Machine) Expire() (Result, error) {
	if m.state.Phase != PhasePlayerTurn {
		return ResultNone, ErrNotAwaitingAnswer
	}
	m.state.LastChoice = input.NoChoice
	m.state.Remaining = 0
	m.resolve(ResultTimeout)
	return ResultTimeout, nil
}

// Continue leaves the resolve phase and asks a fresh question.
func (m *Machine) Continue() error {
	if m.state.Phase != PhaseResolve {
		return fmt.Errorf("cannot continue battle in phase %s", m.state.Phase)
	}
	m.nextQuestion()
	return nil
}

// TogglePause freezes or resumes the countdown. Has no effect once the
// battle is over.
func (m *Machine) TogglePause() bool {
	if m.Done() {
		return m.state.Paused
	}
	m.state.Paused = !m.state.Paused
	if m.OnPause != nil {
		m.OnPause(m.state.Paused)
	}
	return m.state.Paused
}

// Forfeit ends the battle as a defeat without further damage.
func (m *Machine) Forfeit() {
	if m.Done() {
		return
	}
	m.state.Forfeited = true
	m.state.Paused = false
	m.finish(PhaseDefeat)
}

// Update advances the battle by one tick.
func (m *Machine) Update(dt float64, in input.Snapshot) {
	if m.Done() {
		return
	}
	if in.Back {
		m.Forfeit()
		return
	}
	if in.Pause {
		m.TogglePause()
	}
	if m.state.Paused {
		return
	}

	switch m.state.Phase {
	case PhaseIntro:
		m.elapsed += dt
		if in.Confirm || m.elapsed >= m.opts.IntroSeconds {
			m.nextQuestion()
		}
	case PhasePlayerTurn:
		if in.Choice != input.NoChoice {
			if _, err := m.Answer(in.Choice); err == nil {
				return
			}
		}
		m.state.Remaining -= dt
		if m.state.Remaining <= 0 {
			m.Expire()
		}
	case PhaseResolve:
		m.elapsed += dt
		if in.Confirm || m.elapsed >= m.opts.FeedbackSeconds {
			m.nextQuestion()
		}
	}
}

func (m *Machine) nextQuestion() {
	m.state.Question = m.deck.Next(m.encounter.Difficulty)
	m.state.Remaining = m.encounter.TimerSeconds
	m.state.Turn++
	m.state.LastResult = ResultNone
	m.state.LastChoice = input.NoChoice
	m.state.Phase = PhasePlayerTurn
	m.elapsed = 0
}

// resolve applies damage for a result and checks for the end of the battle.
func (m *Machine) resolve(result Result) {
	m.state.LastResult = result

	switch result {
	case ResultCorrect:
		m.state.Enemy.TakeDamage(m.opts.HitDamage)
	default:
		m.state.Player.TakeDamage(m.encounter.EnemyDamage)
	}

	if m.OnResolve != nil {
		m.OnResolve(result, m.state)
	}

	switch {
	case m.state.Enemy.Defeated():
		m.finish(PhaseVictory)
	case m.state.Player.Defeated():
		m.finish(PhaseDefeat)
	default:
		m.state.Phase = PhaseResolve
		m.elapsed = 0
	}
}

func (m *Machine) finish(phase Phase) {
	m.state.Phase = phase
	log.Printf("Battle at level %d ended: %s after %d question(s) (player %.1f/%.0f, enemy %.1f/%.0f)",
		m.encounter.LevelID, phase, m.state.Turn,
		m.state.Player.HP, m.state.Player.MaxHP, m.state.Enemy.HP, m.state.Enemy.MaxHP)
	if m.OnFinish != nil {
		m.OnFinish(phase == PhaseVictory, m.state)
	}
}
