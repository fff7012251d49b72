package engine

import (
	"math/rand/v2"
	"strconv"
	"testing"
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

func testEngine(opts ...Option) *Engine {
	gen := question.NewGeneratorWithRand(rand.New(rand.NewPCG(7, 11)))
	return New(gen, opts...)
}

// freezeTime pins the engine clock so that every answer appears to take
// exactly elapsed.
func freezeTime(e *Engine, elapsed time.Duration) {
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	e.startedAt = base
	for _, q := range e.questions {
		q.AskedAt = base
	}
	e.now = func() time.Time { return base.Add(elapsed) }
}

func TestInitGeneratesFullBatch(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)

	if !e.HasMoreQuestions() {
		t.Fatal("expected questions after Init")
	}
	if got := e.Progress(); got.Current != 0 || got.Total != 10 {
		t.Errorf("Progress() = %+v, want {0 10}", got)
	}
	if e.SessionID() == "" {
		t.Error("expected a session ID")
	}
	if e.CurrentQuestion() == nil {
		t.Error("expected a current question")
	}
}

func TestValidateAnswerCorrectAdvancesAndScores(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)
	freezeTime(e, 2*time.Second)

	q := e.CurrentQuestion()
	res := e.ValidateAnswer(strconv.Itoa(q.Answer))

	if !res.IsCorrect {
		t.Fatalf("expected correct, got %+v", res)
	}
	if res.Points == 0 {
		t.Error("correct answer must score points")
	}
	if res.Streak != 1 {
		t.Errorf("Streak = %d, want 1", res.Streak)
	}
	if res.Progress.Current != 1 {
		t.Errorf("Progress.Current = %d, want 1", res.Progress.Current)
	}
	if res.Feedback == "" {
		t.Error("expected feedback text")
	}
}

func TestValidateAnswerWrongResetsStreakAndAdvances(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)
	freezeTime(e, 2*time.Second)

	// Build a streak of 2 first.
	for i := 0; i < 2; i++ {
		q := e.CurrentQuestion()
		e.ValidateAnswer(strconv.Itoa(q.Answer))
	}

	q := e.CurrentQuestion()
	res := e.ValidateAnswer(strconv.Itoa(q.Answer + 1))

	if res.IsCorrect {
		t.Fatal("expected wrong answer")
	}
	if res.Points != 0 {
		t.Errorf("Points = %d, want 0", res.Points)
	}
	if res.Streak != 0 {
		t.Errorf("Streak = %d, want 0 after a miss", res.Streak)
	}
	// The question is consumed regardless of correctness.
	if res.Progress.Current != 3 {
		t.Errorf("Progress.Current = %d, want 3", res.Progress.Current)
	}
	if res.CorrectAnswer != q.Answer {
		t.Errorf("CorrectAnswer = %d, want %d", res.CorrectAnswer, q.Answer)
	}
}

func TestInputErrorsDoNotTouchSessionState(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)
	freezeTime(e, 2*time.Second)

	// Earn a streak first so a reset would be visible.
	q := e.CurrentQuestion()
	e.ValidateAnswer(strconv.Itoa(q.Answer))

	tests := []struct {
		raw  string
		want ErrorKind
	}{
		{"", ErrEmptyAnswer},
		{"   ", ErrEmptyAnswer},
		{"banana", ErrInvalidNumber},
		{"3.5", ErrNotInteger},
		{"-5", ErrNegativeNumber},
		{"10001", ErrNumberTooLarge},
	}

	for _, tt := range tests {
		res := e.ValidateAnswer(tt.raw)
		if res.IsCorrect {
			t.Errorf("%q: expected rejection", tt.raw)
		}
		if res.Error != tt.want {
			t.Errorf("%q: Error = %q, want %q", tt.raw, res.Error, tt.want)
		}
		if res.Progress.Current != 1 {
			t.Errorf("%q: cursor moved to %d on input error", tt.raw, res.Progress.Current)
		}
		if res.Streak != 1 {
			t.Errorf("%q: streak changed to %d on input error", tt.raw, res.Streak)
		}
	}
}

func TestInputValidationIsIdempotent(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)

	first := e.ValidateAnswer("-5")
	second := e.ValidateAnswer("-5")
	if first.Error != second.Error {
		t.Errorf("classification changed: %q then %q", first.Error, second.Error)
	}
}

func TestCursorIsMonotonicAndBounded(t *testing.T) {
	e := testEngine()
	e.Init(question.Subtraction, question.Level2)
	freezeTime(e, 2*time.Second)

	prev := 0
	answers := []string{"bad", "0", "", "7", "-1", "3", "1", "2", "9999", "4", "5", "6", "1", "0", "2"}
	for _, raw := range answers {
		res := e.ValidateAnswer(raw)
		cur := res.Progress.Current
		if cur < prev {
			t.Fatalf("cursor went backwards: %d -> %d", prev, cur)
		}
		if cur > res.Progress.Total {
			t.Fatalf("cursor %d exceeds total %d", cur, res.Progress.Total)
		}
		prev = cur
	}
}

func TestNoQuestionAfterExhaustion(t *testing.T) {
	e := testEngine(WithBatchSize(2))
	e.Init(question.Addition, question.Level1)
	freezeTime(e, 2*time.Second)

	e.ValidateAnswer("0")
	e.ValidateAnswer("0")

	if e.HasMoreQuestions() {
		t.Fatal("expected exhausted session")
	}
	if q := e.CurrentQuestion(); q != nil {
		t.Errorf("CurrentQuestion() = %v, want nil", q)
	}

	res := e.ValidateAnswer("3")
	if res.Error != ErrNoQuestion {
		t.Errorf("Error = %q, want %q", res.Error, ErrNoQuestion)
	}
}

func TestPerfectFastSession(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)
	freezeTime(e, 2*time.Second)

	for e.HasMoreQuestions() {
		q := e.CurrentQuestion()
		res := e.ValidateAnswer(strconv.Itoa(q.Answer))
		if !res.IsCorrect {
			t.Fatalf("unexpected wrong answer for %s", q.Text)
		}
	}

	r := e.Results()
	if r.Accuracy != 100 {
		t.Errorf("Accuracy = %d, want 100", r.Accuracy)
	}
	if r.Grade.Letter != "A+" {
		t.Errorf("Grade = %q, want A+", r.Grade.Letter)
	}
	if r.Grade.Stars != 5 {
		t.Errorf("Stars = %d, want 5", r.Grade.Stars)
	}
	if r.MaxStreak != 10 {
		t.Errorf("MaxStreak = %d, want 10", r.MaxStreak)
	}

	names := make(map[string]bool)
	for _, reward := range r.Rewards {
		names[reward.Name] = true
	}
	if !names["perfect_score"] {
		t.Error("missing perfect_score reward")
	}
	if !names["speed_demon"] {
		t.Error("missing speed_demon reward")
	}
}

func TestResultsStatistics(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)
	freezeTime(e, 100*time.Second)

	// Answer 6 right, 4 wrong.
	for i := 0; i < 10; i++ {
		q := e.CurrentQuestion()
		if i < 6 {
			e.ValidateAnswer(strconv.Itoa(q.Answer))
		} else {
			e.ValidateAnswer(strconv.Itoa(q.Answer + 100))
		}
	}

	r := e.Results()
	if r.CorrectAnswers != 6 {
		t.Errorf("CorrectAnswers = %d, want 6", r.CorrectAnswers)
	}
	if r.Accuracy != 60 {
		t.Errorf("Accuracy = %d, want 60", r.Accuracy)
	}
	if r.Statistics.WrongAnswers != 4 {
		t.Errorf("WrongAnswers = %d, want 4", r.Statistics.WrongAnswers)
	}
	if r.TotalTime != 100*time.Second {
		t.Errorf("TotalTime = %v, want 100s", r.TotalTime)
	}
	if r.AverageTime != 10*time.Second {
		t.Errorf("AverageTime = %v, want 10s", r.AverageTime)
	}
}

func TestResetClearsSession(t *testing.T) {
	e := testEngine()
	e.Init(question.Multiplication, question.Level3)
	freezeTime(e, 2*time.Second)
	q := e.CurrentQuestion()
	e.ValidateAnswer(strconv.Itoa(q.Answer))

	e.Reset()

	if e.HasMoreQuestions() {
		t.Error("expected no questions after Reset")
	}
	if e.Score() != 0 {
		t.Errorf("Score = %d, want 0", e.Score())
	}
	if e.Streak() != 0 {
		t.Errorf("Streak = %d, want 0", e.Streak())
	}
	if e.SessionID() != "" {
		t.Errorf("SessionID = %q, want empty", e.SessionID())
	}
}

func TestHintForCurrentQuestion(t *testing.T) {
	e := testEngine()
	e.Init(question.Division, question.Level1)

	h := e.Hint()
	if !h.HasHint {
		t.Fatal("expected a hint")
	}
	if h.Message == "" {
		t.Error("empty hint message")
	}
	if h.Question != e.CurrentQuestion() {
		t.Error("hint must reference the current question")
	}
}

func TestHintWhenExhausted(t *testing.T) {
	e := testEngine(WithBatchSize(1))
	e.Init(question.Addition, question.Level1)
	freezeTime(e, 2*time.Second)
	e.ValidateAnswer("0")

	h := e.Hint()
	if h.HasHint {
		t.Error("expected no hint after exhaustion")
	}
}
