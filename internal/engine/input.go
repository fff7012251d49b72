package engine

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

// ErrorKind classifies a rejected answer. These are structured results,
// never Go errors: the engine is designed to never fail outward.
type ErrorKind string

const (
	ErrNone           ErrorKind = ""
	ErrEmptyAnswer    ErrorKind = "EMPTY_ANSWER"
	ErrInvalidNumber  ErrorKind = "INVALID_NUMBER"
	ErrNotInteger     ErrorKind = "NOT_INTEGER"
	ErrNegativeNumber ErrorKind = "NEGATIVE_NUMBER"
	ErrNumberTooLarge ErrorKind = "NUMBER_TOO_LARGE"
	ErrNoQuestion     ErrorKind = "NO_QUESTION"
	ErrInvalidDrag    ErrorKind = "INVALID_DRAG_DATA"
	ErrUnknownOp      ErrorKind = "UNKNOWN_OPERATION"
)

// maxAnswer is the largest accepted input value. Anything bigger is a
// typo, not a calculation.
const maxAnswer = 10000

// Result is the outcome of one answer validation.
type Result struct {
	IsCorrect     bool
	CorrectAnswer int
	UserAnswer    int
	RawAnswer     string
	Points        int
	TimeSpent     time.Duration
	Streak        int
	Feedback      string
	Error         ErrorKind
	Question      *question.Question
	Progress      Progress
}

// parseUserInput validates raw input in a fixed order: empty, not a
// number, not an integer, negative, too large. The returned value is
// the input rounded to the nearest integer.
func parseUserInput(raw string) (int, ErrorKind, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrEmptyAnswer, "Please type an answer"
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, ErrInvalidNumber, "Please type a valid number"
	}
	if f != math.Trunc(f) {
		return 0, ErrNotInteger, "Please type a whole number"
	}
	if f < 0 {
		return 0, ErrNegativeNumber, "The answer can't be negative"
	}
	if f > maxAnswer {
		return 0, ErrNumberTooLarge, "That's too big; check your math"
	}

	return int(math.Round(f)), ErrNone, ""
}

// ValidateAnswer checks raw user input against the current question.
// Input errors short-circuit before touching session state: the cursor
// does not advance and the streak is untouched. A valid answer, right
// or wrong, consumes the question.
func (e *Engine) ValidateAnswer(raw string) Result {
	value, kind, feedback := parseUserInput(raw)
	if kind != ErrNone {
		return Result{
			RawAnswer: raw,
			Streak:    e.streak,
			Error:     kind,
			Feedback:  feedback,
			Progress:  e.Progress(),
		}
	}

	return e.checkAnswer(value, raw)
}

// checkAnswer is the single correctness path shared by typed and
// drag-based answers.
func (e *Engine) checkAnswer(value int, raw string) Result {
	q := e.CurrentQuestion()
	if q == nil {
		return Result{
			RawAnswer: raw,
			Streak:    e.streak,
			Error:     ErrNoQuestion,
			Feedback:  "No question to answer",
			Progress:  e.Progress(),
		}
	}

	correct := value == q.Answer
	elapsed := e.now().Sub(q.AskedAt)
	points := e.applyAnswer(q, correct, elapsed)

	var feedback string
	if correct {
		feedback = e.positiveFeedback(elapsed, e.streak)
	} else {
		feedback = constructiveFeedback(q, value)
	}

	return Result{
		IsCorrect:     correct,
		CorrectAnswer: q.Answer,
		UserAnswer:    value,
		RawAnswer:     raw,
		Points:        points,
		TimeSpent:     elapsed,
		Streak:        e.streak,
		Feedback:      feedback,
		Question:      q,
		Progress:      e.Progress(),
	}
}
