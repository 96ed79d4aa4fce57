package model

import (
	"testing"
	"time"

	"precisionpercent/calc"
)

func result(a float64) calc.Result {
	return calc.Result{Mode: calc.Standard, A: a, B: 10, Value: a / 10, ComputedAt: time.Now()}
}

func TestHistoryPushNewestFirst(t *testing.T) {
	var h History
	h.Push(result(1))
	h.Push(result(2))
	h.Push(result(3))

	entries := h.Entries()
	if len(entries) != 3 {
		t.Fatalf("Len = %d, want 3", len(entries))
	}
	for i, want := range []float64{3, 2, 1} {
		if entries[i].A != want {
			t.Errorf("entries[%d].A = %v, want %v", i, entries[i].A, want)
		}
	}
}

func TestHistoryEvictsOldest(t *testing.T) {
	var h History
	for i := 1; i <= HistoryLimit; i++ {
		h.Push(result(float64(i)))
	}
	if h.Len() != HistoryLimit {
		t.Fatalf("Len = %d, want %d", h.Len(), HistoryLimit)
	}

	h.Push(result(6))

	entries := h.Entries()
	if len(entries) != HistoryLimit {
		t.Fatalf("Len after 6th push = %d, want %d", len(entries), HistoryLimit)
	}
	if entries[0].A != 6 {
		t.Errorf("newest = %v, want 6", entries[0].A)
	}
	if entries[HistoryLimit-1].A != 2 {
		t.Errorf("oldest = %v, want 2 (1 evicted)", entries[HistoryLimit-1].A)
	}
}

func TestHistoryNoDedup(t *testing.T) {
	var h History
	first := h.Push(result(5))
	second := h.Push(result(5))

	if h.Len() != 2 {
		t.Fatalf("Len = %d, want 2", h.Len())
	}
	if first.ID == second.ID {
		t.Error("identical computations must get distinct IDs")
	}
	if h.Entries()[0].ID != second.ID {
		t.Error("most recent entry should be first")
	}
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	var h History
	h.Push(result(1))

	entries := h.Entries()
	entries[0].A = 99

	if h.Entries()[0].A != 1 {
		t.Error("mutating Entries() result changed the history")
	}
}
