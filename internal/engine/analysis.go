package engine

import "github.com/rohanverma/arithmo/internal/question"

// Proximity buckets for AnswerProximity.
const (
	ProximityExact         = "exact"
	ProximityVeryClose     = "very_close"
	ProximityClose         = "close"
	ProximitySomewhatClose = "somewhat_close"
	ProximityFar           = "far"
)

// ProximityResult describes how close an answer is to the correct one.
type ProximityResult struct {
	IsClose   bool
	Proximity string
	Message   string
}

// AnswerProximity classifies a candidate answer against the current
// question without consuming it. Useful for live "warmer/colder" UI.
func (e *Engine) AnswerProximity(userAnswer int) ProximityResult {
	q := e.CurrentQuestion()
	if q == nil {
		return ProximityResult{}
	}

	diff := userAnswer - q.Answer
	if diff < 0 {
		diff = -diff
	}

	switch {
	case diff == 0:
		return ProximityResult{IsClose: true, Proximity: ProximityExact, Message: "Spot on!"}
	case diff == 1:
		return ProximityResult{IsClose: true, Proximity: ProximityVeryClose, Message: "So close!"}
	case diff <= 3:
		return ProximityResult{IsClose: true, Proximity: ProximityClose, Message: "Nearly there!"}
	case diff <= 5:
		return ProximityResult{IsClose: true, Proximity: ProximitySomewhatClose, Message: "Getting warm"}
	default:
		return ProximityResult{Proximity: ProximityFar, Message: "Think again"}
	}
}

// ErrorAnalysis lists the likely mistakes behind a wrong answer.
type ErrorAnalysis struct {
	HasAnalysis    bool
	PossibleErrors []string
	Suggestions    []string
}

// AnalyzeError looks for common operator confusions in a wrong answer
// to the current question: adding instead of subtracting, reversed
// operands, and so on.
func (e *Engine) AnalyzeError(userAnswer int) ErrorAnalysis {
	q := e.CurrentQuestion()
	if q == nil {
		return ErrorAnalysis{}
	}

	a := ErrorAnalysis{HasAnalysis: true}

	switch q.Op {
	case question.Addition:
		if userAnswer == q.Num1 || userAnswer == q.Num2 {
			a.PossibleErrors = append(a.PossibleErrors, "forgot to add")
			a.Suggestions = append(a.Suggestions, "Remember to put both numbers together")
		} else if diff := q.Num1 - q.Num2; userAnswer == diff || userAnswer == -diff {
			a.PossibleErrors = append(a.PossibleErrors, "subtracted instead of adding")
			a.Suggestions = append(a.Suggestions, "This one uses the plus sign")
		}
	case question.Subtraction:
		if userAnswer == q.Num1+q.Num2 {
			a.PossibleErrors = append(a.PossibleErrors, "added instead of subtracting")
			a.Suggestions = append(a.Suggestions, "This one uses the minus sign")
		} else if userAnswer == q.Num2-q.Num1 {
			a.PossibleErrors = append(a.PossibleErrors, "swapped the numbers")
			a.Suggestions = append(a.Suggestions, "Take the smaller number away from the bigger one")
		}
	case question.Multiplication:
		if userAnswer == q.Num1+q.Num2 {
			a.PossibleErrors = append(a.PossibleErrors, "added instead of multiplying")
			a.Suggestions = append(a.Suggestions, "Multiplying means adding the same number again and again")
		}
	case question.Division:
		if userAnswer == q.Num1-q.Num2 {
			a.PossibleErrors = append(a.PossibleErrors, "subtracted instead of dividing")
			a.Suggestions = append(a.Suggestions, "Dividing means sharing into equal groups")
		}
	}

	if len(a.PossibleErrors) == 0 {
		a.Suggestions = append(a.Suggestions, "Check each step of your working")
	}

	return a
}

// DifficultyStats buckets the session's questions by answer size.
type DifficultyStats struct {
	Easy   int // answer <= 10
	Medium int // answer 11-50
	Hard   int // answer > 50
}

// DifficultyStats summarizes the current batch.
func (e *Engine) DifficultyStats() DifficultyStats {
	var stats DifficultyStats
	for _, q := range e.questions {
		switch {
		case q.Answer <= 10:
			stats.Easy++
		case q.Answer <= 50:
			stats.Medium++
		default:
			stats.Hard++
		}
	}
	return stats
}
