package model

import (
	"github.com/google/uuid"

	"precisionpercent/calc"
)

// HistoryLimit is the number of results kept.
const HistoryLimit = 5

// HistoryEntry is one recorded computation.
type HistoryEntry struct {
	ID uuid.UUID `json:"id"`
	calc.Result
}

// History keeps the most recent results, newest first. It is not safe for
// concurrent use.
type History struct {
	entries []HistoryEntry
}

// Push records r at the front and drops anything past HistoryLimit.
func (h *History) Push(r calc.Result) HistoryEntry {
	entry := HistoryEntry{ID: uuid.New(), Result: r}

	entries := make([]HistoryEntry, 0, HistoryLimit)
	entries = append(entries, entry)
	entries = append(entries, h.entries...)
	if len(entries) > HistoryLimit {
		entries = entries[:HistoryLimit]
	}
	h.entries = entries

	return entry
}

// Entries returns a copy of the recorded results, newest first.
func (h *History) Entries() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) Len() int {
	return len(h.entries)
}
