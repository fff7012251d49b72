package history

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rohanverma/arithmo/internal/history"
	"github.com/rohanverma/arithmo/internal/question"
	"github.com/rohanverma/arithmo/internal/router"
	"github.com/rohanverma/arithmo/internal/screen"
	"github.com/rohanverma/arithmo/internal/ui/layout"
	"github.com/rohanverma/arithmo/internal/ui/theme"
)

// maxVisibleGames caps the games list so the analysis sections stay on
// screen.
const maxVisibleGames = 10

// HistoryScreen displays past games, personal bests, the progress
// trend, and practice recommendations.
type HistoryScreen struct {
	tracker *history.Tracker

	// filter cycles through: all, then each operation.
	filterIdx int
}

var filters = []question.Operation{
	"", // all operations
	question.Addition,
	question.Subtraction,
	question.Multiplication,
	question.Division,
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen over an already-loaded tracker.
func New(tracker *history.Tracker) *HistoryScreen {
	return &HistoryScreen{tracker: tracker}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Filter"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			s.filterIdx = (s.filterIdx + 1) % len(filters)
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.tracker == nil || s.tracker.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games yet. Go play one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	filterOp := filters[s.filterIdx]
	filterName := "All operations"
	if filterOp != "" {
		filterName = filterOp.DisplayName()
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
			Render(fmt.Sprintf("Showing: %s", filterName))))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Personal bests for the active filter.
	pb := s.tracker.PersonalBest(filterOp, 0)
	if pb == nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
				Render("No games for this operation yet")))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(sectionHeader(width, divider, "Personal best"))
	bestLines := []string{
		fmt.Sprintf("  Top score: %d (%s)", pb.BestScore.Score, pb.BestScore.Grade),
		fmt.Sprintf("  Top accuracy: %d%%", pb.BestAccuracy.Accuracy),
		fmt.Sprintf("  Fastest game: %s", formatDuration(pb.BestSpeed.TotalTime)),
		fmt.Sprintf("  Games played: %d, average score %d, average accuracy %d%%",
			pb.TotalGames, pb.AverageScore, pb.AverageAccuracy),
	}
	for _, line := range bestLines {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Trend and recommendations only make sense across all games.
	if filterOp == "" {
		trend := s.tracker.ProgressTrend(history.DefaultTrendWindow)
		if trend.HasTrend {
			b.WriteString(sectionHeader(width, divider, "Trend"))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				trendStyle(trend.Direction).Render("  "+trend.Message)))
			b.WriteString("\n\n")
		}

		if recs := s.tracker.Recommendations(); len(recs) > 0 {
			b.WriteString(sectionHeader(width, divider, "Tips"))
			for _, rec := range recs {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.Accent).Render("  "+rec.Message)))
				b.WriteString("\n")
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+rec.Suggestion)))
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}

	// Recent games, newest first.
	b.WriteString(sectionHeader(width, divider, "Recent games"))
	records := s.filteredRecords(filterOp)
	shown := 0
	for i := len(records) - 1; i >= 0 && shown < maxVisibleGames; i-- {
		rec := records[i]
		line := fmt.Sprintf("  %s  %s L%d  score %d  %d%%  %s  %s",
			rec.Timestamp.Format("Jan 02 15:04"),
			rec.Op.Symbol(),
			rec.Level,
			rec.Score,
			rec.Accuracy,
			rec.Grade,
			formatDuration(rec.TotalTime),
		)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
		shown++
	}

	return b.String()
}

func (s *HistoryScreen) filteredRecords(op question.Operation) []history.Record {
	all := s.tracker.Records()
	if op == "" {
		return all
	}
	var out []history.Record
	for _, r := range all {
		if r.Op == op {
			out = append(out, r)
		}
	}
	return out
}

func sectionHeader(width int, divider, label string) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)) +
		"\n" +
		lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) +
		"\n\n"
}

func trendStyle(direction string) lipgloss.Style {
	switch direction {
	case history.TrendImproving:
		return lipgloss.NewStyle().Foreground(theme.Success).Bold(true)
	case history.TrendDeclining:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
}

func formatDuration(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
