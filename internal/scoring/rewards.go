package scoring

import (
	"fmt"
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

// Reward is an achievement badge earned in a single session.
type Reward struct {
	Name        string
	Title       string
	Description string
	Icon        string
}

// Rewards evaluates every badge independently; any subset may apply.
func Rewards(accuracy, maxStreak int, avgTime time.Duration, level question.Level, op question.Operation) []Reward {
	var rewards []Reward

	switch {
	case accuracy == 100:
		rewards = append(rewards, Reward{
			Name:        "perfect_score",
			Title:       "Perfect Score",
			Description: "Every answer correct!",
			Icon:        "🏆",
		})
	case accuracy >= 90:
		rewards = append(rewards, Reward{
			Name:        "excellent",
			Title:       "Excellent Work",
			Description: "Over 90% accuracy",
			Icon:        "⭐",
		})
	}

	switch {
	case maxStreak >= 10:
		rewards = append(rewards, Reward{
			Name:        "streak_master",
			Title:       "Streak Master",
			Description: fmt.Sprintf("%d correct in a row", maxStreak),
			Icon:        "🔥",
		})
	case maxStreak >= 5:
		rewards = append(rewards, Reward{
			Name:        "combo_king",
			Title:       "Combo King",
			Description: fmt.Sprintf("%d correct in a row", maxStreak),
			Icon:        "⚡",
		})
	}

	switch {
	case avgTime < 3*time.Second:
		rewards = append(rewards, Reward{
			Name:        "speed_demon",
			Title:       "Lightning Fast",
			Description: "Under 3 seconds per question",
			Icon:        "💨",
		})
	case avgTime < 5*time.Second:
		rewards = append(rewards, Reward{
			Name:        "quick_thinker",
			Title:       "Quick Thinker",
			Description: "Under 5 seconds per question",
			Icon:        "🧠",
		})
	}

	if level == question.Level3 && accuracy >= 80 {
		rewards = append(rewards, Reward{
			Name:        "challenge_master",
			Title:       "Challenge Master",
			Description: "Strong performance at the hardest level",
			Icon:        "🎯",
		})
	}

	if (op == question.Multiplication || op == question.Division) && accuracy >= 80 {
		rewards = append(rewards, Reward{
			Name:        "math_expert",
			Title:       "Math Expert",
			Description: fmt.Sprintf("%s whiz", op.DisplayName()),
			Icon:        "🔢",
		})
	}

	return rewards
}
