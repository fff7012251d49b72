package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/log"

	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
	"github.com/rohanverma/arithmo/internal/router"
	"github.com/rohanverma/arithmo/internal/screen"
	"github.com/rohanverma/arithmo/internal/screens/home"
	"github.com/rohanverma/arithmo/internal/screens/welcome"
	"github.com/rohanverma/arithmo/internal/store"
	"github.com/rohanverma/arithmo/internal/ui/layout"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Generator *question.Generator
	Results   *store.ResultRepo
	Tracker   *history.Tracker
	Logger    *log.Logger

	// SkipSplash starts directly on the home screen.
	SkipSplash bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	tracker *history.Tracker
	width   int
	height  int
}

// newAppModel creates a new AppModel with the welcome or home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Generator, opts.Results, opts.Tracker, opts.Logger)
	}

	var first screen.Screen
	if opts.SkipSplash {
		first = homeFactory()
	} else {
		first = welcome.New(homeFactory)
	}

	return AppModel{
		router:  router.New(first),
		tracker: opts.Tracker,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	// Splash screens render without the frame.
	if title == "" {
		v.SetContent(m.router.View(m.width, m.height))
		return v
	}

	games, best := m.headerStats()
	header := layout.RenderHeader(title, games, best, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerStats pulls the header counters from the tracker.
func (m AppModel) headerStats() (games, best int) {
	if m.tracker == nil {
		return 0, 0
	}
	pb := m.tracker.PersonalBest("", 0)
	if pb == nil {
		return 0, 0
	}
	return pb.TotalGames, pb.BestScore.Score
}

// footerHints asks the active screen for hints, with a sensible default.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); hints != nil {
			return hints
		}
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
