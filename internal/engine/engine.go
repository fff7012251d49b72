// Package engine owns a practice session: a pre-generated batch of
// questions, the running totals, and the answer validation that is the
// sole way session state moves forward. It has no presentation
// dependencies; screens hold a reference to the engine, never the
// reverse.
package engine

import (
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
	"github.com/rohanverma/arithmo/internal/scoring"
)

// Engine runs one session at a time. It is single-threaded by design:
// drive it from one event loop, one call at a time.
type Engine struct {
	gen    *question.Generator
	logger *log.Logger

	sessionID string
	op        question.Operation
	level     question.Level

	batch     *question.Batch
	questions []*question.Question
	index     int

	score          int
	correctAnswers int
	streak         int
	maxStreak      int
	startedAt      time.Time

	totalQuestions int

	// now is swappable for tests.
	now func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the diagnostics logger. Without one the engine stays
// silent.
func WithLogger(logger *log.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithBatchSize overrides the number of questions per session.
func WithBatchSize(n int) Option {
	return func(e *Engine) { e.totalQuestions = n }
}

// New creates an Engine around the given generator.
func New(gen *question.Generator, opts ...Option) *Engine {
	e := &Engine{
		gen:            gen,
		totalQuestions: question.DefaultBatchSize,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init starts a new session: clears all running totals and eagerly
// generates the full question batch.
func (e *Engine) Init(op question.Operation, level question.Level) {
	e.Reset()
	e.sessionID = uuid.New().String()
	e.op = op
	e.level = level
	e.startedAt = e.now()
	e.batch = e.gen.Batch(op, level, e.totalQuestions)
	e.questions = e.batch.Questions

	if e.logger != nil && (e.batch.Duplicates > 0 || e.batch.Fallbacks > 0) {
		e.logger.Warn("degraded question batch",
			"operation", op,
			"level", level,
			"duplicates", e.batch.Duplicates,
			"fallbacks", e.batch.Fallbacks,
		)
	}
}

// Reset clears session state. History is not touched.
func (e *Engine) Reset() {
	e.sessionID = ""
	e.batch = nil
	e.questions = nil
	e.index = 0
	e.score = 0
	e.correctAnswers = 0
	e.streak = 0
	e.maxStreak = 0
	e.startedAt = time.Time{}
}

// SessionID returns the identifier of the running session, or "" when
// no session is active.
func (e *Engine) SessionID() string {
	return e.sessionID
}

// Operation returns the session's operation.
func (e *Engine) Operation() question.Operation {
	return e.op
}

// Level returns the session's difficulty level.
func (e *Engine) Level() question.Level {
	return e.level
}

// CurrentQuestion returns the question at the cursor, or nil when the
// session is exhausted or not started.
func (e *Engine) CurrentQuestion() *question.Question {
	if e.index < len(e.questions) {
		return e.questions[e.index]
	}
	return nil
}

// HasMoreQuestions reports whether the cursor has questions left.
func (e *Engine) HasMoreQuestions() bool {
	return e.index < len(e.questions)
}

// Progress reports the answered/total counters for display.
func (e *Engine) Progress() Progress {
	return Progress{Current: e.index, Total: e.totalQuestions}
}

// Streak returns the current run of consecutive correct answers.
func (e *Engine) Streak() int {
	return e.streak
}

// Score returns the running session score.
func (e *Engine) Score() int {
	return e.score
}

// BatchDiagnostics exposes the generation degradation counters for the
// current session's batch.
func (e *Engine) BatchDiagnostics() (duplicates, fallbacks int) {
	if e.batch == nil {
		return 0, 0
	}
	return e.batch.Duplicates, e.batch.Fallbacks
}

// applyAnswer advances session state for an answered question and
// returns the points granted. The cursor always advances: one attempt
// per question, right or wrong.
func (e *Engine) applyAnswer(q *question.Question, correct bool, elapsed time.Duration) int {
	var points int
	if correct {
		e.correctAnswers++
		e.streak++
		if e.streak > e.maxStreak {
			e.maxStreak = e.streak
		}
		points = scoring.Points(true, e.level, e.op, e.streak, elapsed)
		e.score += points
	} else {
		e.streak = 0
	}
	e.index++
	return points
}

// Results finalizes the session totals into a SessionResult. It does
// not mutate state; call it once the batch is exhausted (or early, for
// a partial snapshot).
func (e *Engine) Results() SessionResult {
	totalTime := e.now().Sub(e.startedAt)
	accuracy := int(math.Round(float64(e.correctAnswers) / float64(e.totalQuestions) * 100))
	averageTime := totalTime / time.Duration(e.totalQuestions)

	grade := scoring.GradeFor(accuracy, averageTime)
	rewards := scoring.Rewards(accuracy, e.maxStreak, averageTime, e.level, e.op)

	return SessionResult{
		SessionID:      e.sessionID,
		Score:          e.score,
		CorrectAnswers: e.correctAnswers,
		TotalQuestions: e.totalQuestions,
		Accuracy:       accuracy,
		TotalTime:      totalTime,
		AverageTime:    averageTime,
		MaxStreak:      e.maxStreak,
		Op:             e.op,
		Level:          e.level,
		Grade:          grade,
		Rewards:        rewards,
		Statistics:     e.statistics(totalTime),
	}
}

// statistics builds the detailed statistics block.
func (e *Engine) statistics(totalTime time.Duration) Statistics {
	avgScore := 0
	if e.totalQuestions > 0 {
		avgScore = int(math.Round(float64(e.score) / float64(e.totalQuestions)))
	}
	perMinute := 0.0
	if totalTime > 0 {
		perMinute = math.Round(float64(e.totalQuestions)/totalTime.Minutes()*10) / 10
	}
	return Statistics{
		WrongAnswers:            e.totalQuestions - e.correctAnswers,
		AverageScorePerQuestion: avgScore,
		QuestionsPerMinute:      perMinute,
	}
}

// HistoryRecord converts a finalized result into a history record.
func (r SessionResult) HistoryRecord(at time.Time) history.Record {
	return history.Record{
		Score:     r.Score,
		Accuracy:  r.Accuracy,
		Op:        r.Op,
		Level:     r.Level,
		MaxStreak: r.MaxStreak,
		TotalTime: r.TotalTime,
		Grade:     r.Grade.Letter,
		Stars:     r.Grade.Stars,
		Timestamp: at,
	}
}

// Progress is the answered/total pair reported with every validation.
type Progress struct {
	Current int
	Total   int
}

// SessionResult is the end-of-session summary handed to the
// presentation and persistence layers.
type SessionResult struct {
	SessionID      string
	Score          int
	CorrectAnswers int
	TotalQuestions int
	Accuracy       int // percent, 0-100
	TotalTime      time.Duration
	AverageTime    time.Duration
	MaxStreak      int
	Op             question.Operation
	Level          question.Level
	Grade          scoring.Grade
	Rewards        []scoring.Reward
	Statistics     Statistics
}

// Statistics is the detailed breakdown attached to a SessionResult.
type Statistics struct {
	WrongAnswers            int
	AverageScorePerQuestion int
	QuestionsPerMinute      float64
}
