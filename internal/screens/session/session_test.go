package session

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
	"github.com/rohanverma/arithmo/internal/router"
	"github.com/rohanverma/arithmo/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testSessionScreen() (*SessionScreen, *history.Tracker) {
	gen := question.NewGeneratorWithRand(rand.New(rand.NewPCG(3, 9)))
	tracker := history.NewTracker()
	s := New(gen, nil, tracker, question.Addition, question.Level1, nil)
	s.Init()
	return s, tracker
}

func TestSessionScreen_InitStartsGame(t *testing.T) {
	s, _ := testSessionScreen()

	if s.Title() != "Addition" {
		t.Errorf("Title = %q, want %q", s.Title(), "Addition")
	}
	if !s.eng.HasMoreQuestions() {
		t.Error("expected questions after Init")
	}
	if got := s.eng.Progress().Total; got != question.DefaultBatchSize {
		t.Errorf("total questions = %d, want %d", got, question.DefaultBatchSize)
	}
}

func TestSessionScreen_EmptySubmitKeepsQuestion(t *testing.T) {
	s, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if ss.showingFeedback {
		t.Error("empty input should not advance to feedback")
	}
	if ss.inputError == "" {
		t.Error("expected an inline input error")
	}
	if got := ss.eng.Progress().Current; got != 0 {
		t.Errorf("cursor moved to %d on invalid input", got)
	}
}

func TestSessionScreen_CorrectTypedAnswer(t *testing.T) {
	s, _ := testSessionScreen()

	answer := s.eng.CurrentQuestion().Answer
	s.input.Model.SetValue(strconv.Itoa(answer))

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Fatal("expected feedback after submit")
	}
	if !ss.last.IsCorrect {
		t.Error("expected correct answer")
	}
	if ss.last.Points <= 0 {
		t.Errorf("points = %d, want > 0", ss.last.Points)
	}
	if got := ss.eng.Progress().Current; got != 1 {
		t.Errorf("cursor = %d after answer, want 1", got)
	}
}

func TestSessionScreen_TrayAnswer(t *testing.T) {
	s, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyTab))
	ss := scr.(*SessionScreen)
	if !ss.trayMode {
		t.Fatal("expected tray mode after tab")
	}

	// Level 1 addition answers never exceed the tray capacity.
	answer := ss.eng.CurrentQuestion().Answer
	for i := 0; i < answer; i++ {
		scr, _ = scr.Update(keyPress('+'))
	}
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss = scr.(*SessionScreen)

	if !ss.showingFeedback {
		t.Fatal("expected feedback after tray submit")
	}
	if !ss.last.IsCorrect {
		t.Errorf("tray answer %d judged wrong", answer)
	}
}

func TestSessionScreen_FeedbackDismissAdvances(t *testing.T) {
	s, _ := testSessionScreen()

	s.input.Model.SetValue(strconv.Itoa(s.eng.CurrentQuestion().Answer))
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress(' '))
	ss := scr.(*SessionScreen)

	if ss.showingFeedback {
		t.Error("expected feedback dismissed")
	}
	if ss.eng.CurrentQuestion() == nil {
		t.Error("expected a next question")
	}
}

func TestSessionScreen_QuitConfirm(t *testing.T) {
	s, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*SessionScreen)
	if !ss.showingQuit {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = scr.Update(keyPress('n'))
	ss = scr.(*SessionScreen)
	if ss.showingQuit {
		t.Error("expected quit confirmation dismissed")
	}

	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	_, cmd := scr.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected quit to pop back home")
	}
}

func TestSessionScreen_HintOverlay(t *testing.T) {
	s, _ := testSessionScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('?'))
	ss := scr.(*SessionScreen)
	if !ss.showingHint {
		t.Fatal("expected hint overlay")
	}
	if ss.hint.Message == "" {
		t.Error("expected a hint message")
	}

	scr, _ = scr.Update(keyPress(' '))
	ss = scr.(*SessionScreen)
	if ss.showingHint {
		t.Error("expected hint dismissed")
	}
}

func TestSessionScreen_FullGameRecordsHistory(t *testing.T) {
	s, tracker := testSessionScreen()

	var scr screen.Screen = s
	for s.eng.HasMoreQuestions() {
		s.input.Model.SetValue(strconv.Itoa(s.eng.CurrentQuestion().Answer))
		scr, _ = scr.Update(specialKey(tea.KeyEnter))
		scr, _ = scr.Update(keyPress(' '))
	}

	if !s.finishing {
		t.Fatal("expected session to be finishing after last question")
	}

	_, cmd := scr.Update(finishedMsg{})
	if cmd == nil {
		t.Fatal("expected a command from finish")
	}

	if tracker.Len() != 1 {
		t.Fatalf("tracker records = %d, want 1", tracker.Len())
	}
	rec := tracker.Records()[0]
	if rec.Accuracy != 100 {
		t.Errorf("accuracy = %d, want 100", rec.Accuracy)
	}
	if rec.Op != question.Addition {
		t.Errorf("op = %q, want addition", rec.Op)
	}
}

func TestSessionScreen_ViewShowsQuestionOnce(t *testing.T) {
	s, _ := testSessionScreen()

	text := s.eng.CurrentQuestion().Text
	view := s.View(80, 24)
	if n := strings.Count(view, text); n != 1 {
		t.Errorf("question %q rendered %d times, want 1", text, n)
	}
	if n := strings.Count(view, "= ?"); n != 1 {
		t.Errorf("%q contains %d \"= ?\" suffixes, want 1", text, n)
	}
}

func TestSessionScreen_ViewStates(t *testing.T) {
	s, _ := testSessionScreen()

	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty question view")
	}

	s.showingQuit = true
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty quit view")
	}
	s.showingQuit = false

	s.hint = s.eng.Hint()
	s.showingHint = true
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty hint view")
	}
}
