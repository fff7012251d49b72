// Package history retains per-session summaries and answers the
// analytical queries built on them: personal bests, progress trends,
// and practice recommendations.
package history

import (
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

// MaxRecords caps the tracker; the oldest record is evicted first.
const MaxRecords = 50

// Record is the snapshot of one finished session.
type Record struct {
	Score     int
	Accuracy  int // percent, 0-100
	Op        question.Operation
	Level     question.Level
	MaxStreak int
	TotalTime time.Duration
	Grade     string
	Stars     int
	Timestamp time.Time
}

// Tracker holds up to MaxRecords session records, oldest first.
// Long-term persistence is the caller's job; the tracker only remembers
// what it was given this process lifetime.
type Tracker struct {
	records []Record
}

// NewTracker creates an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// NewTrackerWith creates a Tracker pre-loaded with records, e.g. from
// the store at startup. Excess records beyond MaxRecords are dropped
// from the front.
func NewTrackerWith(records []Record) *Tracker {
	t := &Tracker{records: append([]Record(nil), records...)}
	t.trim()
	return t
}

// Record appends a session record, evicting the oldest when full.
func (t *Tracker) Record(r Record) {
	t.records = append(t.records, r)
	t.trim()
}

func (t *Tracker) trim() {
	if len(t.records) > MaxRecords {
		t.records = t.records[len(t.records)-MaxRecords:]
	}
}

// Len returns the number of retained records.
func (t *Tracker) Len() int {
	return len(t.records)
}

// Records returns a copy of the retained records, oldest first.
func (t *Tracker) Records() []Record {
	return append([]Record(nil), t.records...)
}

// filtered returns records matching the optional operation and level
// filters. Zero values match everything.
func (t *Tracker) filtered(op question.Operation, level question.Level) []Record {
	var out []Record
	for _, r := range t.records {
		if op != "" && r.Op != op {
			continue
		}
		if level != 0 && r.Level != level {
			continue
		}
		out = append(out, r)
	}
	return out
}
