package scoring

import "time"

// Grade is the letter-and-stars summary of a session.
type Grade struct {
	Letter  string
	Stars   int
	Message string
}

// GradeFor maps session accuracy (percent, 0-100) and average time per
// question to a grade. Fast sessions with solid accuracy earn a bonus
// star, capped at 5.
func GradeFor(accuracy int, avgTime time.Duration) Grade {
	var g Grade
	switch {
	case accuracy >= 95:
		g = Grade{Letter: "A+", Stars: 5, Message: "Perfect performance!"}
	case accuracy >= 90:
		g = Grade{Letter: "A", Stars: 4, Message: "Excellent!"}
	case accuracy >= 80:
		g = Grade{Letter: "B+", Stars: 4, Message: "Great job!"}
	case accuracy >= 70:
		g = Grade{Letter: "B", Stars: 3, Message: "Nicely done!"}
	case accuracy >= 60:
		g = Grade{Letter: "C+", Stars: 2, Message: "Not bad!"}
	case accuracy >= 50:
		g = Grade{Letter: "C", Stars: 2, Message: "Keep practicing!"}
	default:
		g = Grade{Letter: "D", Stars: 1, Message: "More practice will help!"}
	}

	if avgTime < 5*time.Second && accuracy >= 80 {
		g.Stars = min(g.Stars+1, 5)
		g.Message += " So fast!"
	}

	return g
}
