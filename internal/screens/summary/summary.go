package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rohanverma/arithmo/internal/engine"
	"github.com/rohanverma/arithmo/internal/router"
	"github.com/rohanverma/arithmo/internal/screen"
	"github.com/rohanverma/arithmo/internal/ui/layout"
	"github.com/rohanverma/arithmo/internal/ui/theme"
)

// SummaryScreen displays the end-of-game results.
type SummaryScreen struct {
	result engine.SessionResult
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(result engine.SessionResult) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Game Over"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	res := s.result

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Game complete!"))
	b.WriteString("\n\n")

	// Grade and stars.
	stars := strings.Repeat("★", res.Grade.Stars) + strings.Repeat("☆", 5-res.Grade.Stars)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%s   %s", res.Grade.Letter, stars)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(res.Grade.Message))
	b.WriteString("\n\n")

	// Core stats line.
	mins := int(res.TotalTime.Minutes())
	secs := int(res.TotalTime.Seconds()) % 60
	statsLine := fmt.Sprintf("Score: %d      Correct: %d/%d      Accuracy: %d%%      Time: %d:%02d",
		res.Score, res.CorrectAnswers, res.TotalQuestions, res.Accuracy, mins, secs)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Detailed breakdown.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Details")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	details := []string{
		fmt.Sprintf("  Best streak: %d", res.MaxStreak),
		fmt.Sprintf("  Wrong answers: %d", res.Statistics.WrongAnswers),
		fmt.Sprintf("  Points per question: %d", res.Statistics.AverageScorePerQuestion),
		fmt.Sprintf("  Questions per minute: %.1f", res.Statistics.QuestionsPerMinute),
	}
	for _, line := range details {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
		b.WriteString("\n")
	}

	// Badges earned this game.
	if len(res.Rewards) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badges")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, reward := range res.Rewards {
			line := fmt.Sprintf("  %s %s — %s", reward.Icon, reward.Title, reward.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
