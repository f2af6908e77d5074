package progress

import (
	"reflect"
	"testing"
)

func TestRecordBattle(t *testing.T) {
	r := New()

	r.RecordBattle(3, true, false)
	r.RecordBattle(1, false, false)
	r.RecordBattle(2, false, true)
	r.RecordBattle(3, true, false)

	if !r.Cleared(3) {
		t.Error("Expected stage 3 cleared")
	}
	if r.Cleared(1) || r.Cleared(2) {
		t.Error("Expected lost stages to stay uncleared")
	}
	if r.ClearedCount() != 1 {
		t.Errorf("Expected 1 cleared stage, got %d", r.ClearedCount())
	}

	want := map[Counter]int{Battles: 4, Victories: 2, Defeats: 1, Forfeits: 1}
	for c, n := range want {
		if got := r.Count(c); got != n {
			t.Errorf("Expected %s=%d, got %d", c, n, got)
		}
	}
	if r.LastLevel() != 3 {
		t.Errorf("Expected last level 3, got %d", r.LastLevel())
	}
}

func TestClearedLevelsSorted(t *testing.T) {
	r := New()
	for _, id := range []int{12, 4, 20, 4} {
		r.MarkCleared(id)
	}

	if got := r.ClearedLevels(); !reflect.DeepEqual(got, []int{4, 12, 20}) {
		t.Errorf("Expected [4 12 20], got %v", got)
	}
}

func TestAccuracy(t *testing.T) {
	r := New()
	if r.Accuracy() != 0 {
		t.Errorf("Expected 0 accuracy with no answers, got %f", r.Accuracy())
	}

	r.RecordAnswer(true, false)
	r.RecordAnswer(true, false)
	r.RecordAnswer(false, false)
	r.RecordAnswer(false, true)

	if r.Accuracy() != 0.5 {
		t.Errorf("Expected 0.5 accuracy, got %f", r.Accuracy())
	}
	if r.Count(Timeouts) != 1 || r.Count(Wrong) != 1 {
		t.Errorf("Expected 1 wrong and 1 timeout, got %d and %d", r.Count(Wrong), r.Count(Timeouts))
	}
}

func TestSummaryAndReset(t *testing.T) {
	r := New()
	if got := r.Summary(20); got != "Cleared 0/20" {
		t.Errorf("Unexpected summary: %q", got)
	}

	r.RecordBattle(1, true, false)
	r.RecordBattle(2, false, false)
	if got := r.Summary(20); got != "Cleared 1/20  Battles 2 (W1 L1)" {
		t.Errorf("Unexpected summary: %q", got)
	}

	r.Reset()
	if r.ClearedCount() != 0 || r.Count(Battles) != 0 || r.LastLevel() != 0 {
		t.Error("Expected reset to clear everything")
	}
}
