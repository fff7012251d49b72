// Package scoring computes per-answer points and end-of-session grades
// and rewards. Everything here is a pure function of its inputs so the
// engine's state transitions can be tested without a live session.
package scoring

import (
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

const (
	basePoints = 10

	// maxStreakBonus caps the streak contribution per answer.
	maxStreakBonus = 20
)

// Points computes the score for a single answer. Wrong answers are
// always worth zero. All bonuses are additive and independent.
func Points(correct bool, level question.Level, op question.Operation, streak int, elapsed time.Duration) int {
	if !correct {
		return 0
	}

	points := basePoints

	// Difficulty bonus.
	switch level {
	case question.Level3:
		points += 5
	case question.Level2:
		points += 2
	}

	// Streak bonus, only once a streak is actually running.
	if streak > 1 {
		points += min(streak*2, maxStreakBonus)
	}

	// Speed bonus.
	switch {
	case elapsed < 3*time.Second:
		points += 10
	case elapsed < 5*time.Second:
		points += 5
	case elapsed < 10*time.Second:
		points += 2
	}

	// Multiplication and division pay a little extra.
	if op == question.Multiplication || op == question.Division {
		points += 3
	}

	return points
}
