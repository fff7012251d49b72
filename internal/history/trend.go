package history

import "math"

// Trend directions.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// DefaultTrendWindow is the number of recent sessions compared against
// the window before them.
const DefaultTrendWindow = 10

// Trend is the outcome of comparing recent sessions to older ones.
type Trend struct {
	HasTrend  bool
	Direction string
	Message   string

	// ScoreChangePct is the percent change in average score between
	// the two windows, rounded.
	ScoreChangePct int

	// AccuracyChangePts is the change in average accuracy in
	// percentage points, rounded.
	AccuracyChangePts int

	RecentAvgScore int
	OlderAvgScore  int
}

// ProgressTrend compares the mean score and accuracy of the most
// recent `recent` sessions against the window before them. With fewer
// than two sessions, or no older window at all, there is no verdict.
func (t *Tracker) ProgressTrend(recent int) Trend {
	if recent <= 0 {
		recent = DefaultTrendWindow
	}
	if len(t.records) < 2 {
		return Trend{Message: "Play more games to see your trend"}
	}

	recentRecords := t.records[max(0, len(t.records)-recent):]
	olderEnd := len(t.records) - len(recentRecords)
	olderStart := max(0, olderEnd-recent)
	olderRecords := t.records[olderStart:olderEnd]

	if len(olderRecords) == 0 {
		return Trend{Message: "Not enough history to compare yet"}
	}

	recentScore, recentAccuracy := averages(recentRecords)
	olderScore, olderAccuracy := averages(olderRecords)

	scoreChange := 0.0
	if olderScore > 0 {
		scoreChange = (recentScore - olderScore) / olderScore * 100
	}
	accuracyChange := recentAccuracy - olderAccuracy

	direction := TrendStable
	message := "Holding steady"
	switch {
	case scoreChange > 10 || accuracyChange > 5:
		direction = TrendImproving
		message = "You keep getting better!"
	case scoreChange < -10 || accuracyChange < -5:
		direction = TrendDeclining
		message = "A dip lately; more practice will turn it around"
	}

	return Trend{
		HasTrend:          true,
		Direction:         direction,
		Message:           message,
		ScoreChangePct:    int(math.Round(scoreChange)),
		AccuracyChangePts: int(math.Round(accuracyChange)),
		RecentAvgScore:    int(math.Round(recentScore)),
		OlderAvgScore:     int(math.Round(olderScore)),
	}
}

func averages(records []Record) (score, accuracy float64) {
	for _, r := range records {
		score += float64(r.Score)
		accuracy += float64(r.Accuracy)
	}
	n := float64(len(records))
	return score / n, accuracy / n
}
