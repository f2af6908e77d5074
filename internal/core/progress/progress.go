// Package progress keeps the session record: which stages were cleared and
// running battle counters. It lives in memory only and resets every run.
package progress

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Counter names a tally kept for the session
type Counter string

const (
	Battles   Counter = "battles"
	Victories Counter = "victories"
	Defeats   Counter = "defeats"
	Forfeits  Counter = "forfeits"
	Correct   Counter = "correct"
	Wrong     Counter = "wrong"
	Timeouts  Counter = "timeouts"
)

// Record holds the session progress
type Record struct {
	mu sync.RWMutex

	// Cleared marks stages whose enemy was defeated at least once
	cleared map[int]bool

	// Counters are session tallies (e.g. victories, correct answers)
	counters map[Counter]int

	// LastLevel is the most recently fought stage, 0 if none
	lastLevel int
}

// New creates an empty record
func New() *Record {
	return &Record{
		cleared:  make(map[int]bool),
		counters: make(map[Counter]int),
	}
}

// --- Stage operations ---

// MarkCleared records a stage as cleared
func (r *Record) MarkCleared(levelID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cleared[levelID] = true
}

// Cleared reports whether a stage has been cleared
func (r *Record) Cleared(levelID int) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.cleared[levelID]
}

// ClearedCount returns the number of distinct cleared stages
func (r *Record) ClearedCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.cleared)
}

// ClearedLevels returns the cleared stage IDs in ascending order
func (r *Record) ClearedLevels() []int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]int, 0, len(r.cleared))
	for id := range r.cleared {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// --- Counter operations ---

// Count returns the value of a counter (0 if not set)
func (r *Record) Count(c Counter) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counters[c]
}

// Increment adds delta to a counter and returns the new value
func (r *Record) Increment(c Counter, delta int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[c] += delta
	return r.counters[c]
}

// --- Battle bookkeeping ---

// RecordAnswer tallies one resolved question.
func (r *Record) RecordAnswer(correct, timedOut bool) {
	switch {
	case correct:
		r.Increment(Correct, 1)
	case timedOut:
		r.Increment(Timeouts, 1)
	default:
		r.Increment(Wrong, 1)
	}
}

// RecordBattle tallies a finished battle and marks the stage cleared on a
// victory.
func (r *Record) RecordBattle(levelID int, victory, forfeited bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastLevel = levelID
	r.counters[Battles]++
	switch {
	case victory:
		r.counters[Victories]++
		r.cleared[levelID] = true
	case forfeited:
		r.counters[Forfeits]++
	default:
		r.counters[Defeats]++
	}
}

// LastLevel returns the most recently fought stage.
func (r *Record) LastLevel() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastLevel
}

// Accuracy returns the share of answered questions that were correct, 0 when
// nothing was answered.
func (r *Record) Accuracy() float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	answered := r.counters[Correct] + r.counters[Wrong] + r.counters[Timeouts]
	if answered == 0 {
		return 0
	}
	return float64(r.counters[Correct]) / float64(answered)
}

// Reset clears all progress
func (r *Record) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cleared = make(map[int]bool)
	r.counters = make(map[Counter]int)
	r.lastLevel = 0
}

// Summary returns a one-line description for the HUD and logs
func (r *Record) Summary(total int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Cleared %d/%d", len(r.cleared), total)
	if b := r.counters[Battles]; b > 0 {
		fmt.Fprintf(&sb, "  Battles %d (W%d L%d)", b, r.counters[Victories], r.counters[Defeats]+r.counters[Forfeits])
	}
	return sb.String()
}
