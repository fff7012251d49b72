package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/log"

	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
	"github.com/rohanverma/arithmo/internal/router"
	"github.com/rohanverma/arithmo/internal/screen"
	historyscreen "github.com/rohanverma/arithmo/internal/screens/history"
	sessionscreen "github.com/rohanverma/arithmo/internal/screens/session"
	"github.com/rohanverma/arithmo/internal/store"
	"github.com/rohanverma/arithmo/internal/ui/components"
)

// operations in menu order.
var operations = []question.Operation{
	question.Addition,
	question.Subtraction,
	question.Multiplication,
	question.Division,
}

var levelLabels = []string{
	"1  EASY (up to 10)",
	"2  MEDIUM (up to 20)",
	"3  HARD (up to 100)",
}

// HomeScreen is the main menu: pick an operation and level, review
// history, or quit.
type HomeScreen struct {
	gen     *question.Generator
	repo    *store.ResultRepo
	tracker *history.Tracker
	logger  *log.Logger

	menu       components.Menu
	menuLabels []string

	// pickingLevel is set after an operation is chosen; the menu then
	// shows the three difficulty levels for pendingOp.
	pickingLevel  bool
	pendingOp     question.Operation
	levelSelected int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(gen *question.Generator, repo *store.ResultRepo, tracker *history.Tracker, logger *log.Logger) *HomeScreen {
	h := &HomeScreen{
		gen:     gen,
		repo:    repo,
		tracker: tracker,
		logger:  logger,
	}

	menuLabels := []string{
		"ADDITION", "SUBTRACTION", "MULTIPLICATION", "DIVISION",
		"HISTORY", "EXIT GAME",
	}

	items := make([]components.MenuItem, 0, len(menuLabels))
	for i, op := range operations {
		op := op
		items = append(items, components.MenuItem{
			Label: menuLabels[i],
			Action: func() tea.Cmd {
				h.pickingLevel = true
				h.pendingOp = op
				h.levelSelected = 0
				return nil
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: menuLabels[4],
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(tracker)}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label:  menuLabels[5],
		Action: func() tea.Cmd { return tea.Quit },
	})

	h.menu = components.NewMenu(items)
	h.menuLabels = menuLabels
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if h.pickingLevel {
		return h.updateLevelPicker(msg)
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) updateLevelPicker(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "esc":
		h.pickingLevel = false
		return h, nil
	case "up", "k":
		if h.levelSelected > 0 {
			h.levelSelected--
		}
	case "down", "j":
		if h.levelSelected < len(levelLabels)-1 {
			h.levelSelected++
		}
	case "1":
		return h, h.startSession(question.Level1)
	case "2":
		return h, h.startSession(question.Level2)
	case "3":
		return h, h.startSession(question.Level3)
	case "enter":
		return h, h.startSession(question.Level(h.levelSelected + 1))
	}
	return h, nil
}

func (h *HomeScreen) startSession(level question.Level) tea.Cmd {
	op := h.pendingOp
	h.pickingLevel = false
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: sessionscreen.New(h.gen, h.repo, h.tracker, op, level, h.logger),
		}
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}

	games, best, acc := h.headlineStats()
	sections = append(sections, renderStatsBar(games, best, acc, cw, compact))

	if h.pickingLevel {
		sections = append(sections, renderLevelPicker(
			h.pendingOp.DisplayName(), levelLabels, h.levelSelected, cw))
	} else if compact {
		sections = append(sections, renderMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// headlineStats pulls the dashboard numbers from the tracker.
func (h *HomeScreen) headlineStats() (games, bestScore, avgAccuracy int) {
	if h.tracker == nil {
		return 0, 0, 0
	}
	pb := h.tracker.PersonalBest("", 0)
	if pb == nil {
		return 0, 0, 0
	}
	return pb.TotalGames, pb.BestScore.Score, pb.AverageAccuracy
}

// mascotVariant picks the mascot mood from recent results.
func (h *HomeScreen) mascotVariant() MascotVariant {
	if h.tracker == nil || h.tracker.Len() == 0 {
		return MascotIdle
	}

	records := h.tracker.Records()
	last := records[len(records)-1]
	if last.Grade == "A+" || last.Grade == "A" {
		return MascotCelebrating
	}

	trend := h.tracker.ProgressTrend(history.DefaultTrendWindow)
	if trend.HasTrend && trend.Direction == history.TrendDeclining {
		return MascotNudging
	}
	return MascotIdle
}
