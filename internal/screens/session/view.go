package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rohanverma/arithmo/internal/ui/components"
	"github.com/rohanverma/arithmo/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	if s.showingQuit {
		return renderQuitConfirm(width)
	}
	if s.showingHint {
		return s.renderHint(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	if s.finishing {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Adding up your score...")
	}
	return s.renderQuestionView(width)
}

// renderQuestionView renders the active question display.
func (s *SessionScreen) renderQuestionView(width int) string {
	q := s.eng.CurrentQuestion()
	if q == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  No questions left")
	}

	var b strings.Builder

	// Info line: progress, score, streak, timer.
	progress := s.eng.Progress()
	mins := int(s.elapsed.Minutes())
	secs := int(s.elapsed.Seconds()) % 60

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · Level %d", s.op.DisplayName(), s.level))

	streakStr := ""
	if streak := s.eng.Streak(); streak > 1 {
		streakStr = lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("  🔥%d", streak))
	}

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d%s  %d:%02d",
			progress.Current+1,
			progress.Total,
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render("★"),
			s.eng.Score(),
			streakStr,
			mins, secs,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	// Progress bar across answered questions.
	pct := 0.0
	if progress.Total > 0 {
		pct = float64(progress.Current) / float64(progress.Total)
	}
	bar := components.NewProgressBar("", pct, false, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Story line gives the numbers a face.
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(q.Story))
	b.WriteString("\n\n")

	// The sum itself, big and centered in a card.
	sum := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text)
	card := components.ArcadeCard(sum, min(width-4, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
	b.WriteString("\n\n")

	// Answer area: counting tray or typed input.
	if s.trayMode {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render(s.tray.View()))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("%d blocks — ←/→ to change, Enter to answer", s.tray.Count)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View()))
	}

	if s.inputError != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.inputError))
	}

	return b.String()
}

// renderFeedback renders the post-answer overlay.
func (s *SessionScreen) renderFeedback(width int) string {
	res := s.last

	var b strings.Builder
	b.WriteString("\n\n")

	if res.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Correct!  +%d points", res.Points)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("The answer was %d, you said %d", res.CorrectAnswer, res.UserAnswer)))
	}

	b.WriteString("\n\n")

	// Praise or a nudge, from the engine.
	if res.Feedback != "" {
		fbStyle := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Align(lipgloss.Center).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fbStyle.Render(res.Feedback)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderHint renders the pre-answer hint overlay.
func (s *SessionScreen) renderHint(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Hint"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(s.hint.Message))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to go back..."))

	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Quit this game?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("An unfinished game isn't saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

