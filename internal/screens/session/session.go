package session

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/rohanverma/arithmo/internal/engine"
	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
	"github.com/rohanverma/arithmo/internal/router"
	"github.com/rohanverma/arithmo/internal/screen"
	"github.com/rohanverma/arithmo/internal/screens/summary"
	"github.com/rohanverma/arithmo/internal/store"
	"github.com/rohanverma/arithmo/internal/ui/components"
	"github.com/rohanverma/arithmo/internal/ui/layout"
)

// trayCapacity caps the counting tray. Tray answers are only practical
// for small numbers; typing covers the rest.
const trayCapacity = 20

// SessionScreen drives one game: it feeds answers to the engine and
// renders questions, feedback, and the running score.
type SessionScreen struct {
	eng     *engine.Engine
	repo    *store.ResultRepo
	tracker *history.Tracker
	logger  *log.Logger

	op    question.Operation
	level question.Level

	input    components.TextInput
	tray     components.BlockTray
	trayMode bool

	last            engine.Result
	showingFeedback bool
	hint            engine.Hint
	showingHint     bool
	showingQuit     bool
	inputError      string

	startedAt time.Time
	elapsed   time.Duration
	finishing bool
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)

// New creates a SessionScreen for the chosen operation and level.
func New(gen *question.Generator, repo *store.ResultRepo, tracker *history.Tracker, op question.Operation, level question.Level, logger *log.Logger) *SessionScreen {
	opts := []engine.Option{}
	if logger != nil {
		opts = append(opts, engine.WithLogger(logger))
	}
	return &SessionScreen{
		eng:     engine.New(gen, opts...),
		repo:    repo,
		tracker: tracker,
		logger:  logger,
		op:      op,
		level:   level,
		input:   components.NewTextInput("Type your answer...", false, 6),
		tray:    components.NewBlockTray(trayCapacity),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.eng.Init(s.op, s.level)
	s.startedAt = time.Now()
	return tea.Batch(s.input.Init(), tickCmd())
}

func (s *SessionScreen) Title() string {
	return s.op.DisplayName()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	if s.showingQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit game"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback || s.showingHint {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Blocks/typing"},
		{Key: "?", Description: "Hint"},
		{Key: "Esc", Description: "Quit"},
	}
	return hints
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		if s.finishing {
			return s, nil
		}
		s.elapsed = time.Since(s.startedAt)
		return s, tickCmd()

	case finishedMsg:
		return s.finish()

	case resultSavedMsg:
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.acceptingAnswer() && !s.trayMode {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// acceptingAnswer reports whether keystrokes should edit the answer.
func (s *SessionScreen) acceptingAnswer() bool {
	return !s.showingFeedback && !s.showingHint && !s.showingQuit && !s.finishing
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.showingQuit {
		switch key {
		case "y", "Y":
			// Abandoned games are not recorded.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuit = false
		}
		return s, nil
	}

	if s.showingHint {
		s.showingHint = false
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		if !s.eng.HasMoreQuestions() {
			s.finishing = true
			return s, func() tea.Msg { return finishedMsg{} }
		}
		s.input = components.NewTextInput("Type your answer...", false, 6)
		s.tray.Reset()
		return s, s.input.Init()
	}

	if s.finishing {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuit = true
		return s, nil
	case "tab":
		s.trayMode = !s.trayMode
		s.inputError = ""
		return s, nil
	case "?":
		s.hint = s.eng.Hint()
		s.showingHint = true
		return s, nil
	case "enter":
		return s.submit()
	}

	if s.trayMode {
		var cmd tea.Cmd
		s.tray, cmd = s.tray.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// submit hands the answer to the engine. Input problems show inline and
// keep the question; a real answer moves the game forward.
func (s *SessionScreen) submit() (screen.Screen, tea.Cmd) {
	var res engine.Result
	if s.trayMode {
		res = s.eng.ValidateDragAnswer(s.tray.Items(), s.eng.Operation())
	} else {
		res = s.eng.ValidateAnswer(s.input.Value())
	}

	if res.Error != engine.ErrNone {
		s.inputError = res.Feedback
		return s, nil
	}

	s.inputError = ""
	s.last = res
	s.showingFeedback = true
	return s, nil
}

// finish finalizes the engine, records history, persists the result,
// and swaps in the summary screen.
func (s *SessionScreen) finish() (screen.Screen, tea.Cmd) {
	result := s.eng.Results()
	record := result.HistoryRecord(time.Now())

	if s.tracker != nil {
		s.tracker.Record(record)
	}

	saveCmd := func() tea.Msg { return resultSavedMsg{} }
	if s.repo != nil {
		repo, logger := s.repo, s.logger
		sessionID := result.SessionID
		saveCmd = func() tea.Msg {
			err := repo.Save(context.Background(), sessionID, record)
			if err != nil && logger != nil {
				logger.Error("saving session result", "session", sessionID, "err", err)
			}
			return resultSavedMsg{Err: err}
		}
	}

	replaceCmd := func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(result)}
	}

	return s, tea.Batch(saveCmd, replaceCmd)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
