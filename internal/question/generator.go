package question

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
)

const (
	// maxGenAttempts bounds the per-question regeneration loop before
	// the static fallback is used.
	maxGenAttempts = 10

	// tableLimit caps multiplication and division operands regardless
	// of level, to keep products and quotients learnable.
	tableLimit = 10
)

// Generator produces arithmetic questions for an operation and level.
// It is not safe for concurrent use; each engine owns its own Generator.
type Generator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewGenerator creates a Generator with a time-seeded random source.
func NewGenerator() *Generator {
	return &Generator{
		rng: rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().UnixNano())>>32)),
		now: time.Now,
	}
}

// NewGeneratorWithRand creates a Generator with the given random source.
// Used by tests that need reproducible sequences.
func NewGeneratorWithRand(rng *rand.Rand) *Generator {
	return &Generator{rng: rng, now: time.Now}
}

// IntN draws from the generator's random source. Exposed so callers
// that already own a Generator (feedback phrasing, template picks)
// don't need a second seeded source.
func (g *Generator) IntN(n int) int {
	return g.rng.IntN(n)
}

// Question generates one valid question for the operation and level.
// Generation retries on quality-gate failures and degrades to a static
// fallback question after maxGenAttempts, so it never fails outward.
func (g *Generator) Question(op Operation, level Level) *Question {
	q, _ := g.question(op, level)
	return q
}

// question is the diagnostics-aware generation path. The second return
// value is true when the static fallback had to be used.
func (g *Generator) question(op Operation, level Level) (*Question, bool) {
	for attempt := 0; attempt < maxGenAttempts; attempt++ {
		q := g.generate(op, level)
		if q.Check() == nil {
			g.stamp(q, level)
			return q, false
		}
	}
	q := Fallback(op)
	g.stamp(q, level)
	return q, true
}

// stamp fills in the per-instance fields after generation.
func (g *Generator) stamp(q *Question, level Level) {
	q.ID = uuid.New().String()
	q.Level = level
	q.AskedAt = g.now()
}

func (g *Generator) generate(op Operation, level Level) *Question {
	maxNumber := level.MaxNumber()
	switch op {
	case Subtraction:
		return g.subtraction(maxNumber)
	case Multiplication:
		return g.multiplication(min(maxNumber, tableLimit))
	case Division:
		return g.division(min(maxNumber, tableLimit))
	default:
		return g.addition(maxNumber)
	}
}

// addition draws num1 first, then num2 so the sum stays within the
// level ceiling.
func (g *Generator) addition(maxNumber int) *Question {
	var num1, num2 int
	switch {
	case maxNumber <= 10:
		num1 = g.rng.IntN(9) + 1
		num2 = g.rng.IntN(10-num1) + 1
	case maxNumber <= 20:
		num1 = g.rng.IntN(19) + 1
		num2 = g.rng.IntN(20-num1) + 1
	default:
		num1 = g.rng.IntN(99) + 1
		num2 = g.rng.IntN(100-num1) + 1
	}
	return g.build(num1, num2, Addition, num1+num2)
}

// subtraction guarantees num2 <= num1 so the result is never negative.
func (g *Generator) subtraction(maxNumber int) *Question {
	num1 := g.rng.IntN(maxNumber) + 1
	num2 := g.rng.IntN(num1) + 1
	return g.build(num1, num2, Subtraction, num1-num2)
}

// multiplication mixes difficulty: 70% of questions draw both operands
// from the full table range, 30% stick to [1,5] to keep some easy wins.
func (g *Generator) multiplication(limit int) *Question {
	var num1, num2 int
	if g.rng.Float64() < 0.7 {
		num1 = g.rng.IntN(limit) + 1
		num2 = g.rng.IntN(limit) + 1
	} else {
		num1 = g.rng.IntN(5) + 1
		num2 = g.rng.IntN(5) + 1
	}
	return g.build(num1, num2, Multiplication, num1*num2)
}

// division picks divisor and quotient independently and derives the
// dividend, guaranteeing exact division. Oversized dividends are
// regenerated from a tighter range.
func (g *Generator) division(limit int) *Question {
	num2 := g.rng.IntN(limit) + 1
	answer := g.rng.IntN(limit) + 1
	num1 := num2 * answer
	if num1 > 100 {
		num2 = g.rng.IntN(5) + 1
		answer = g.rng.IntN(5) + 1
		num1 = num2 * answer
	}
	return g.build(num1, num2, Division, answer)
}

func (g *Generator) build(num1, num2 int, op Operation, answer int) *Question {
	return &Question{
		Num1:   num1,
		Num2:   num2,
		Op:     op,
		Answer: answer,
		Text:   fmt.Sprintf("%d %s %d = ?", num1, op.Symbol(), num2),
		Story:  g.story(op, num1, num2),
	}
}

// Fallback returns the static safe question for the operation. Used
// when repeated generation attempts fail the quality gate.
func Fallback(op Operation) *Question {
	switch op {
	case Subtraction:
		return &Question{
			Num1: 2, Num2: 1, Op: Subtraction, Answer: 1,
			Text:  "2 - 1 = ?",
			Story: "You have 2 cookies and eat 1. How many are left?",
		}
	case Multiplication:
		return &Question{
			Num1: 2, Num2: 2, Op: Multiplication, Answer: 4,
			Text:  "2 × 2 = ?",
			Story: "2 rows of flowers with 2 in each row. How many flowers?",
		}
	case Division:
		return &Question{
			Num1: 4, Num2: 2, Op: Division, Answer: 2,
			Text:  "4 ÷ 2 = ?",
			Story: "4 slices of cake shared between 2 friends. How many each?",
		}
	default:
		return &Question{
			Num1: 1, Num2: 1, Op: Addition, Answer: 2,
			Text:  "1 + 1 = ?",
			Story: "1 apple plus 1 apple. How many apples?",
		}
	}
}
