package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/rohanverma/arithmo/internal/ui/theme"
)

const bannerArt = `
  █████╗ ██████╗ ██╗████████╗██╗  ██╗███╗   ███╗ ██████╗
 ██╔══██╗██╔══██╗██║╚══██╔══╝██║  ██║████╗ ████║██╔═══██╗
 ███████║██████╔╝██║   ██║   ███████║██╔████╔██║██║   ██║
 ██╔══██║██╔══██╗██║   ██║   ██╔══██║██║╚██╔╝██║██║   ██║
 ██║  ██║██║  ██║██║   ██║   ██║  ██║██║ ╚═╝ ██║╚██████╔╝
 ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝     ╚═╝ ╚═════╝`

const bannerCompact = "A R I T H M O"

// RenderBanner returns the ARITHMO banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 60 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 60 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
