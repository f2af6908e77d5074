// Package quiz holds the multiple-choice question bank used by battles.
//
// Questions are grouped into difficulty tiers. Each tier is dealt from a
// shuffled deck; when a deck runs dry it is reshuffled, so a battle can ask
// any number of questions.
package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"os"
	"sort"
)

// Difficulty tiers
const (
	MinDifficulty = 1
	MaxDifficulty = 3
)

var (
	// ErrBankExhausted means a tier's deck has been fully dealt.
	ErrBankExhausted = errors.New("question bank exhausted")
	// ErrEmptyBank means no valid questions were supplied.
	ErrEmptyBank = errors.New("question bank is empty")
)

//go:embed questions.json
var defaultBankJSON []byte

// Question is a single multiple-choice question.
type Question struct {
	ID         string   `json:"id" jsonschema:"title=Question ID,description=Unique identifier used in logs,minLength=1,required"`
	Topic      string   `json:"topic,omitempty" jsonschema:"description=Subject shown above the prompt"`
	Difficulty int      `json:"difficulty" jsonschema:"title=Difficulty tier,minimum=1,maximum=3,required"`
	Prompt     string   `json:"prompt" jsonschema:"minLength=1,required"`
	Choices    []string `json:"choices" jsonschema:"minItems=2,maxItems=4,required"`
	Answer     int      `json:"answer" jsonschema:"description=Zero-based index of the correct choice,minimum=0,maximum=3,required"`
}

// Validate checks that the question can be asked.
func (q Question) Validate() error {
	if q.Prompt == "" {
		return fmt.Errorf("question %q: empty prompt", q.ID)
	}
	if len(q.Choices) < 2 || len(q.Choices) > 4 {
		return fmt.Errorf("question %q: need 2-4 choices, got %d", q.ID, len(q.Choices))
	}
	if q.Answer < 0 || q.Answer >= len(q.Choices) {
		return fmt.Errorf("question %q: answer index %d out of range", q.ID, q.Answer)
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return fmt.Errorf("question %q: difficulty %d out of range", q.ID, q.Difficulty)
	}
	return nil
}

// IsCorrect reports whether choice is the right answer.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.Answer
}

// File is the on-disk layout of a question bank.
type File struct {
	Name      string     `json:"name,omitempty" jsonschema:"description=Human readable bank name"`
	Questions []Question `json:"questions" jsonschema:"minItems=1,required"`
}

// Bank deals questions per difficulty tier.
type Bank struct {
	tiers map[int][]Question
	decks map[int][]int // Remaining indexes into tiers[d], dealt from the end
	last  map[int]int   // Last dealt index per tier, -1 if none
	rng   *rand.Rand
}

// NewBank builds a bank from questions. Invalid questions are skipped with a
// warning; if none remain ErrEmptyBank is returned.
func NewBank(questions []Question, rng *rand.Rand) (*Bank, error) {
	b := &Bank{
		tiers: make(map[int][]Question),
		decks: make(map[int][]int),
		last:  make(map[int]int),
		rng:   rng,
	}
	for _, q := range questions {
		if err := q.Validate(); err != nil {
			log.Printf("Warning: skipping question: %v", err)
			continue
		}
		b.tiers[q.Difficulty] = append(b.tiers[q.Difficulty], q)
	}
	if len(b.tiers) == 0 {
		return nil, ErrEmptyBank
	}
	for tier := range b.tiers {
		b.last[tier] = -1
		b.reshuffle(tier)
	}
	return b, nil
}

// Parse decodes a bank file.
func Parse(data []byte, rng *rand.Rand) (*Bank, error) {
	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse question bank: %w", err)
	}
	return NewBank(f.Questions, rng)
}

// Load reads a bank file from disk.
func Load(path string, rng *rand.Rand) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read question bank %s: %w", path, err)
	}
	return Parse(data, rng)
}

// Default returns the bank compiled into the binary.
func Default(rng *rand.Rand) *Bank {
	b, err := Parse(defaultBankJSON, rng)
	if err != nil {
		panic(fmt.Sprintf("embedded question bank is broken: %v", err))
	}
	return b
}

// LoadOrDefault loads path, or the embedded bank if path is empty or fails.
func LoadOrDefault(path string, rng *rand.Rand) *Bank {
	if path == "" {
		return Default(rng)
	}
	b, err := Load(path, rng)
	if err != nil {
		log.Printf("Warning: %v, using built-in questions", err)
		return Default(rng)
	}
	return b
}

// Size returns the number of questions in a tier.
func (b *Bank) Size(difficulty int) int {
	return len(b.tiers[difficulty])
}

// Tiers returns the difficulty tiers that have questions, ascending.
func (b *Bank) Tiers() []int {
	tiers := make([]int, 0, len(b.tiers))
	for t := range b.tiers {
		tiers = append(tiers, t)
	}
	sort.Ints(tiers)
	return tiers
}

// Next deals the next question for a difficulty. A tier with no questions is
// served from the closest tier that has some; an exhausted deck is reshuffled.
func (b *Bank) Next(difficulty int) Question {
	tier := b.resolveTier(difficulty)

	q, err := b.draw(tier)
	if errors.Is(err, ErrBankExhausted) {
		log.Printf("Difficulty %d: %v, reshuffling %d questions", tier, err, len(b.tiers[tier]))
		b.reshuffle(tier)
		q, _ = b.draw(tier)
	}
	return q
}

// Remaining returns how many questions are left in a tier's current deck.
func (b *Bank) Remaining(difficulty int) int {
	return len(b.decks[difficulty])
}

func (b *Bank) draw(tier int) (Question, error) {
	deck := b.decks[tier]
	if len(deck) == 0 {
		return Question{}, ErrBankExhausted
	}
	idx := deck[len(deck)-1]
	b.decks[tier] = deck[:len(deck)-1]
	b.last[tier] = idx
	return b.tiers[tier][idx], nil
}

func (b *Bank) reshuffle(tier int) {
	n := len(b.tiers[tier])
	deck := make([]int, n)
	for i := range deck {
		deck[i] = i
	}
	b.rng.Shuffle(n, func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	// Don't repeat the question that was just asked
	if n > 1 && deck[n-1] == b.last[tier] {
		deck[n-1], deck[0] = deck[0], deck[n-1]
	}
	b.decks[tier] = deck
}

func (b *Bank) resolveTier(difficulty int) int {
	if _, ok := b.tiers[difficulty]; ok {
		return difficulty
	}
	best, bestGap := 0, -1
	for _, t := range b.Tiers() {
		gap := t - difficulty
		if gap < 0 {
			gap = -gap
		}
		if bestGap < 0 || gap < bestGap {
			best, bestGap = t, gap
		}
	}
	return best
}
