package scoring

import (
	"testing"
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

func TestPointsWrongAnswerIsZero(t *testing.T) {
	got := Points(false, question.Level3, question.Multiplication, 10, time.Second)
	if got != 0 {
		t.Errorf("Points(wrong) = %d, want 0", got)
	}
}

func TestPoints(t *testing.T) {
	tests := []struct {
		name    string
		level   question.Level
		op      question.Operation
		streak  int
		elapsed time.Duration
		want    int
	}{
		// base 10, no bonuses
		{"slow level1 addition", question.Level1, question.Addition, 1, 15 * time.Second, 10},
		// base 10 + speed 10
		{"fast level1 addition", question.Level1, question.Addition, 1, time.Second, 20},
		// base 10 + speed 5
		{"4s level1 addition", question.Level1, question.Addition, 1, 4 * time.Second, 15},
		// base 10 + speed 2
		{"8s level1 addition", question.Level1, question.Addition, 1, 8 * time.Second, 12},
		// base 10 + difficulty 2
		{"slow level2", question.Level2, question.Addition, 1, 15 * time.Second, 12},
		// base 10 + difficulty 5
		{"slow level3", question.Level3, question.Addition, 1, 15 * time.Second, 15},
		// base 10 + streak 3*2
		{"streak of 3", question.Level1, question.Addition, 3, 15 * time.Second, 16},
		// streak bonus caps at 20
		{"huge streak", question.Level1, question.Addition, 50, 15 * time.Second, 30},
		// streak of exactly 1 earns nothing extra
		{"streak of 1", question.Level1, question.Addition, 1, 15 * time.Second, 10},
		// base 10 + op bonus 3
		{"slow multiplication", question.Level1, question.Multiplication, 1, 15 * time.Second, 13},
		{"slow division", question.Level1, question.Division, 1, 15 * time.Second, 13},
		// everything at once: 10 + 5 + 20 + 10 + 3
		{"max bonuses", question.Level3, question.Division, 12, time.Second, 48},
	}

	for _, tt := range tests {
		got := Points(true, tt.level, tt.op, tt.streak, tt.elapsed)
		if got != tt.want {
			t.Errorf("%s: Points() = %d, want %d", tt.name, got, tt.want)
		}
	}
}
