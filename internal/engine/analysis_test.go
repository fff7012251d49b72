package engine

import (
	"strconv"
	"testing"
	"time"

	"github.com/rohanverma/arithmo/internal/question"
)

// plant replaces the engine's batch with a single known question.
func plant(e *Engine, q *question.Question) {
	q.AskedAt = time.Now()
	e.questions = []*question.Question{q}
	e.index = 0
}

func TestAnswerProximity(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)
	plant(e, &question.Question{Num1: 5, Num2: 5, Op: question.Addition, Answer: 10})

	tests := []struct {
		answer    int
		proximity string
		isClose   bool
	}{
		{10, ProximityExact, true},
		{9, ProximityVeryClose, true},
		{12, ProximityClose, true},
		{15, ProximitySomewhatClose, true},
		{30, ProximityFar, false},
	}

	for _, tt := range tests {
		got := e.AnswerProximity(tt.answer)
		if got.Proximity != tt.proximity {
			t.Errorf("AnswerProximity(%d) = %q, want %q", tt.answer, got.Proximity, tt.proximity)
		}
		if got.IsClose != tt.isClose {
			t.Errorf("AnswerProximity(%d).IsClose = %v, want %v", tt.answer, got.IsClose, tt.isClose)
		}
	}
}

func TestAnalyzeErrorOperatorConfusions(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)

	tests := []struct {
		name   string
		q      question.Question
		answer int
		want   string
	}{
		{"addition forgotten", question.Question{Num1: 3, Num2: 4, Op: question.Addition, Answer: 7}, 3, "forgot to add"},
		{"addition as subtraction", question.Question{Num1: 7, Num2: 4, Op: question.Addition, Answer: 11}, 3, "subtracted instead of adding"},
		{"subtraction as addition", question.Question{Num1: 7, Num2: 4, Op: question.Subtraction, Answer: 3}, 11, "added instead of subtracting"},
		{"multiplication as addition", question.Question{Num1: 3, Num2: 4, Op: question.Multiplication, Answer: 12}, 7, "added instead of multiplying"},
		{"division as subtraction", question.Question{Num1: 8, Num2: 2, Op: question.Division, Answer: 4}, 6, "subtracted instead of dividing"},
	}

	for _, tt := range tests {
		q := tt.q
		plant(e, &q)
		a := e.AnalyzeError(tt.answer)
		if !a.HasAnalysis {
			t.Errorf("%s: expected analysis", tt.name)
			continue
		}
		found := false
		for _, pe := range a.PossibleErrors {
			if pe == tt.want {
				found = true
			}
		}
		if !found {
			t.Errorf("%s: PossibleErrors = %v, want %q", tt.name, a.PossibleErrors, tt.want)
		}
	}
}

func TestAnalyzeErrorUnrecognized(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)
	plant(e, &question.Question{Num1: 3, Num2: 4, Op: question.Addition, Answer: 7})

	a := e.AnalyzeError(100)
	if len(a.PossibleErrors) != 0 {
		t.Errorf("PossibleErrors = %v, want none", a.PossibleErrors)
	}
	if len(a.Suggestions) == 0 {
		t.Error("expected a generic suggestion")
	}
}

func TestDifficultyStatsBuckets(t *testing.T) {
	e := testEngine()
	e.Init(question.Addition, question.Level1)
	e.questions = []*question.Question{
		{Answer: 5},
		{Answer: 10},
		{Answer: 11},
		{Answer: 50},
		{Answer: 51},
	}

	stats := e.DifficultyStats()
	if stats.Easy != 2 || stats.Medium != 2 || stats.Hard != 1 {
		t.Errorf("DifficultyStats() = %+v, want {2 2 1}", stats)
	}
}

func TestHistoryRecordConversion(t *testing.T) {
	e := testEngine()
	e.Init(question.Division, question.Level2)
	freezeTime(e, 2*time.Second)

	for e.HasMoreQuestions() {
		q := e.CurrentQuestion()
		e.ValidateAnswer(strconv.Itoa(q.Answer))
	}

	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	r := e.Results()
	rec := r.HistoryRecord(at)

	if rec.Score != r.Score {
		t.Errorf("Score = %d, want %d", rec.Score, r.Score)
	}
	if rec.Op != question.Division || rec.Level != question.Level2 {
		t.Errorf("Op/Level = %s/%d, want division/2", rec.Op, rec.Level)
	}
	if rec.Grade != r.Grade.Letter || rec.Stars != r.Grade.Stars {
		t.Errorf("Grade/Stars = %s/%d, want %s/%d", rec.Grade, rec.Stars, r.Grade.Letter, r.Grade.Stars)
	}
	if !rec.Timestamp.Equal(at) {
		t.Errorf("Timestamp = %v, want %v", rec.Timestamp, at)
	}
}
