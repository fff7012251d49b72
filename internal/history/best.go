package history

import "github.com/rohanverma/arithmo/internal/question"

// PersonalBest aggregates the standout records across matching
// sessions.
type PersonalBest struct {
	BestScore    Record // highest score
	BestAccuracy Record // highest accuracy
	BestSpeed    Record // lowest total time

	TotalGames      int
	AverageScore    int
	AverageAccuracy int
}

// PersonalBest computes bests over the records matching the optional
// filters (zero values match all). Returns nil when no record matches;
// callers must handle that explicitly.
func (t *Tracker) PersonalBest(op question.Operation, level question.Level) *PersonalBest {
	records := t.filtered(op, level)
	if len(records) == 0 {
		return nil
	}

	best := &PersonalBest{
		BestScore:    records[0],
		BestAccuracy: records[0],
		BestSpeed:    records[0],
		TotalGames:   len(records),
	}

	var scoreSum, accuracySum int
	for _, r := range records {
		if r.Score > best.BestScore.Score {
			best.BestScore = r
		}
		if r.Accuracy > best.BestAccuracy.Accuracy {
			best.BestAccuracy = r
		}
		if r.TotalTime < best.BestSpeed.TotalTime {
			best.BestSpeed = r
		}
		scoreSum += r.Score
		accuracySum += r.Accuracy
	}

	best.AverageScore = roundDiv(scoreSum, len(records))
	best.AverageAccuracy = roundDiv(accuracySum, len(records))
	return best
}

// roundDiv divides with rounding to nearest.
func roundDiv(sum, n int) int {
	return (sum + n/2) / n
}
