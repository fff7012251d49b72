package history

import (
	"fmt"
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

// Recommendation kinds.
const (
	RecommendWelcome   = "welcome"
	RecommendAccuracy  = "accuracy"
	RecommendChallenge = "challenge"
	RecommendSpeed     = "speed"
	RecommendOperation = "operation"
)

// Recommendation is a rule-based practice suggestion.
type Recommendation struct {
	Type       string
	Message    string
	Suggestion string

	// Op is set for operation-targeted recommendations.
	Op question.Operation
}

// Recommendations derives practice suggestions from the retained
// history. Multiple suggestions may apply at once; with no history it
// returns a single welcome entry.
func (t *Tracker) Recommendations() []Recommendation {
	best := t.PersonalBest("", 0)
	if best == nil {
		return []Recommendation{{
			Type:       RecommendWelcome,
			Message:    "Welcome to your math journey!",
			Suggestion: "Start with some easy addition",
		}}
	}

	var recs []Recommendation

	switch {
	case best.AverageAccuracy < 70:
		recs = append(recs, Recommendation{
			Type:       RecommendAccuracy,
			Message:    "The basics could use some work",
			Suggestion: "Try a lower level and nail the fundamentals first",
		})
	case best.AverageAccuracy > 90:
		recs = append(recs, Recommendation{
			Type:       RecommendChallenge,
			Message:    "Your foundation is rock solid!",
			Suggestion: "Move up a level or try a new operation",
		})
	}

	if avg := t.averageTimePerQuestion(); avg > 10*time.Second {
		recs = append(recs, Recommendation{
			Type:       RecommendSpeed,
			Message:    "You could answer faster",
			Suggestion: "Regular practice speeds up mental math",
		})
	}

	// Per-operation weak spots.
	for _, op := range question.Operations() {
		opBest := t.PersonalBest(op, 0)
		if opBest == nil {
			continue
		}
		if opBest.AverageAccuracy < 70 {
			recs = append(recs, Recommendation{
				Type:       RecommendOperation,
				Op:         op,
				Message:    fmt.Sprintf("%s needs more practice", op.DisplayName()),
				Suggestion: fmt.Sprintf("Do a few more %s sessions", op.DisplayName()),
			})
		}
	}

	return recs
}

// averageTimePerQuestion estimates the per-question pace from the best
// speed record, assuming the standard batch size.
func (t *Tracker) averageTimePerQuestion() time.Duration {
	best := t.PersonalBest("", 0)
	if best == nil || best.BestSpeed.TotalTime == 0 {
		return 0
	}
	return best.BestSpeed.TotalTime / question.DefaultBatchSize
}
