package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

var praisePool = []string{
	"Awesome!",
	"You got it!",
	"Well done!",
	"Correct!",
	"You're so smart!",
	"Nice work!",
	"Keep it up!",
}

// positiveFeedback composes praise plus conditional speed and streak
// add-ons for a correct answer.
func (e *Engine) positiveFeedback(elapsed time.Duration, streak int) string {
	parts := []string{praisePool[e.gen.IntN(len(praisePool))]}

	if elapsed < 3*time.Second {
		parts = append(parts, "Lightning reaction!")
	} else if elapsed < 5*time.Second {
		parts = append(parts, "Good speed!")
	}

	if streak >= 5 {
		parts = append(parts, fmt.Sprintf("%d in a row, amazing!", streak))
	} else if streak >= 3 {
		parts = append(parts, fmt.Sprintf("Combo x%d!", streak))
	}

	return strings.Join(parts, " ")
}

// constructiveFeedback tiers the hint by how close the answer was,
// then names the operands with an operation-specific nudge.
func constructiveFeedback(q *question.Question, userAnswer int) string {
	diff := userAnswer - q.Answer
	if diff < 0 {
		diff = -diff
	}

	var b strings.Builder
	b.WriteString("Give it another thought! ")

	switch {
	case diff == 1:
		b.WriteString("You were very close!")
	case diff <= 5:
		b.WriteString("You're nearby, think again.")
	case diff <= 10:
		b.WriteString("Recalculate carefully.")
	default:
		b.WriteString("Let's work it out together.")
	}

	switch q.Op {
	case question.Addition:
		fmt.Fprintf(&b, " Hint: %d plus %d", q.Num1, q.Num2)
	case question.Subtraction:
		fmt.Fprintf(&b, " Hint: %d minus %d", q.Num1, q.Num2)
	case question.Multiplication:
		fmt.Fprintf(&b, " Hint: %d times %d", q.Num1, q.Num2)
	case question.Division:
		fmt.Fprintf(&b, " Hint: %d divided by %d", q.Num1, q.Num2)
	}

	return b.String()
}

// Hint is pre-answer help for the current question, distinct from the
// post-answer feedback.
type Hint struct {
	HasHint  bool
	Message  string
	Question *question.Question
}

// Hint returns operation-specific help for the current question.
func (e *Engine) Hint() Hint {
	q := e.CurrentQuestion()
	if q == nil {
		return Hint{Message: "No hint available"}
	}

	var msg string
	switch q.Op {
	case question.Addition:
		if q.Num1 <= 10 && q.Num2 <= 10 {
			msg = fmt.Sprintf("Count on your fingers: first %d, then %d more", q.Num1, q.Num2)
		} else {
			msg = fmt.Sprintf("Try it in steps: %d + %d", q.Num1, q.Num2)
		}
	case question.Subtraction:
		if q.Num1 <= 10 {
			msg = fmt.Sprintf("Start at %d and count back %d steps", q.Num1, q.Num2)
		} else {
			msg = fmt.Sprintf("What is %d take away %d?", q.Num1, q.Num2)
		}
	case question.Multiplication:
		if q.Num1 <= 5 && q.Num2 <= 5 {
			msg = fmt.Sprintf("Draw %d rows of %d dots and count them all", q.Num1, q.Num2)
		} else {
			msg = fmt.Sprintf("Remember your times tables: %d × %d", q.Num1, q.Num2)
		}
	case question.Division:
		msg = fmt.Sprintf("Think: %d × ? = %d, and ? is your answer", q.Num2, q.Num1)
	default:
		msg = "Think it through, you can do it!"
	}

	return Hint{HasHint: true, Message: msg, Question: q}
}
