package question

import (
	"fmt"
	"time"
)

// Operation identifies one of the four arithmetic operations.
type Operation string

const (
	Addition       Operation = "addition"
	Subtraction    Operation = "subtraction"
	Multiplication Operation = "multiplication"
	Division       Operation = "division"
)

// Operations returns all operations in display order.
func Operations() []Operation {
	return []Operation{Addition, Subtraction, Multiplication, Division}
}

// Symbol returns the display symbol for the operation.
func (o Operation) Symbol() string {
	switch o {
	case Addition:
		return "+"
	case Subtraction:
		return "-"
	case Multiplication:
		return "×"
	case Division:
		return "÷"
	default:
		return "?"
	}
}

// DisplayName returns a human-readable label for the operation.
func (o Operation) DisplayName() string {
	switch o {
	case Addition:
		return "Addition"
	case Subtraction:
		return "Subtraction"
	case Multiplication:
		return "Multiplication"
	case Division:
		return "Division"
	default:
		return string(o)
	}
}

// Valid reports whether o is one of the four known operations.
func (o Operation) Valid() bool {
	switch o {
	case Addition, Subtraction, Multiplication, Division:
		return true
	}
	return false
}

// Apply computes `a op b`. The second return value is false when the
// result is not a non-negative integer (inexact division, division by
// zero, or a negative difference).
func (o Operation) Apply(a, b int) (int, bool) {
	switch o {
	case Addition:
		return a + b, true
	case Subtraction:
		if b > a {
			return 0, false
		}
		return a - b, true
	case Multiplication:
		return a * b, true
	case Division:
		if b == 0 || a%b != 0 {
			return 0, false
		}
		return a / b, true
	default:
		return 0, false
	}
}

// Level is the difficulty tier controlling operand ranges.
type Level int

const (
	Level1 Level = 1 // numbers up to 10
	Level2 Level = 2 // numbers up to 20
	Level3 Level = 3 // numbers up to 100
)

// MaxNumber returns the nominal numeric ceiling for the level.
func (l Level) MaxNumber() int {
	switch l {
	case Level1:
		return 10
	case Level2:
		return 20
	default:
		return 100
	}
}

// Valid reports whether l is a known difficulty level.
func (l Level) Valid() bool {
	return l >= Level1 && l <= Level3
}

// Question is a single arithmetic problem. Immutable once created.
type Question struct {
	// ID is a unique identifier used for UI keying only.
	ID string

	// Num1 and Num2 are the operand values.
	Num1 int
	Num2 int

	// Op is the operation applied to the operands.
	Op Operation

	// Answer is the correct result. Always a non-negative integer;
	// division questions are constructed to divide exactly.
	Answer int

	// Text is the symbolic prompt, e.g. "3 + 4 = ?".
	Text string

	// Story is a narrative phrasing of the same problem, chosen at
	// random from a per-operation template set.
	Story string

	// Level is the difficulty tier the question was generated for.
	Level Level

	// AskedAt is the creation timestamp, used to measure answer latency.
	AskedAt time.Time
}

// Key returns the uniqueness key for in-session deduplication.
func (q *Question) Key() string {
	return fmt.Sprintf("%d_%s_%d", q.Num1, q.Op.Symbol(), q.Num2)
}

// Check verifies the question against its own invariants: operands are
// positive, the answer is non-negative, and the answer is re-derivable
// by applying the operation to the operands (exactly, for division).
// Returns nil if the question is well-formed.
func (q *Question) Check() error {
	if q.Num1 <= 0 || q.Num2 <= 0 {
		return fmt.Errorf("operands must be positive, got %d and %d", q.Num1, q.Num2)
	}
	if q.Answer < 0 {
		return fmt.Errorf("answer must be non-negative, got %d", q.Answer)
	}
	want, ok := q.Op.Apply(q.Num1, q.Num2)
	if !ok {
		return fmt.Errorf("%d %s %d has no whole-number result", q.Num1, q.Op.Symbol(), q.Num2)
	}
	if want != q.Answer {
		return fmt.Errorf("stored answer %d, recomputed %d", q.Answer, want)
	}
	return nil
}
