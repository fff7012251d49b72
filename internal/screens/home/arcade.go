package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/rohanverma/arithmo/internal/ui/components"
	"github.com/rohanverma/arithmo/internal/ui/theme"
)

// Block-letter title for the cabinet marquee.
const arcadeTitleFull = ` █████╗ ██████╗ ██╗████████╗██╗  ██╗███╗   ███╗ ██████╗
██╔══██╗██╔══██╗██║╚══██╔══╝██║  ██║████╗ ████║██╔═══██╗
███████║██████╔╝██║   ██║   ███████║██╔████╔██║██║   ██║
██╔══██║██╔══██╗██║   ██║   ██╔══██║██║╚██╔╝██║██║   ██║
██║  ██║██║  ██║██║   ██║   ██║  ██║██║ ╚═╝ ██║╚██████╔╝
╚═╝  ╚═╝╚═╝  ╚═╝╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝     ╚═╝ ╚═════╝`

const arcadeTitleCompact = "A · R · I · T · H · M · O"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact || cw < 58 {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title))
}

// renderStatsBar renders the dashboard stats in a bordered box matching content width.
func renderStatsBar(games, bestScore, avgAccuracy, cw int, compact bool) string {
	gamesStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	accStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var stats string
	if games == 0 {
		stats = dimStyle.Render("NO GAMES YET — PICK AN OPERATION!")
		if compact {
			stats = dimStyle.Render("NO GAMES YET")
		}
	} else if compact {
		stats = fmt.Sprintf("%s %s %s",
			gamesStyle.Render(fmt.Sprintf("▶%d", games)),
			bestStyle.Render(fmt.Sprintf("★%d", bestScore)),
			accStyle.Render(fmt.Sprintf("◎%d%%", avgAccuracy)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			gamesStyle.Render(fmt.Sprintf("▶ %d GAMES", games)),
			bestStyle.Render(fmt.Sprintf("★ BEST %d", bestScore)),
			accStyle.Render(fmt.Sprintf("◎ %d%% ACCURACY", avgAccuracy)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected, cw int) string {
	var buttons []string
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, components.ArcadeButton(label, true, buttonWidth))
		} else {
			buttons = append(buttons, components.ArcadeButton(label, false, buttonWidth))
		}
	}
	block := strings.Join(buttons, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}
	block := strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(block)
}

// renderLevelPicker renders the difficulty choices for the chosen operation.
func renderLevelPicker(opName string, labels []string, selected, cw int) string {
	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("%s — pick a level", opName))

	var buttons []string
	for i, label := range labels {
		if i == selected {
			buttons = append(buttons, components.ArcadeButton(label, true, buttonWidth))
		} else {
			buttons = append(buttons, components.ArcadeButton(label, false, buttonWidth))
		}
	}
	block := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))

	hint := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("Press 1-3, or Esc to go back")

	return heading + "\n\n" + block + "\n\n" + hint
}

// renderMascotBox renders the mascot centered in a box matching content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
