package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rohanverma/arithmo/internal/ui/theme"
)

// BlockTray is a counting tray: the player adds and removes blocks
// instead of typing a number. It is the keyboard stand-in for dragging
// items onto an answer zone.
type BlockTray struct {
	Count int
	Max   int
}

// NewBlockTray creates an empty tray holding at most max blocks.
func NewBlockTray(max int) BlockTray {
	if max < 1 {
		max = 1
	}
	return BlockTray{Max: max}
}

// Update handles add/remove keys. Left/minus removes, right/plus adds.
func (b BlockTray) Update(msg tea.Msg) (BlockTray, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}

	switch kmsg.String() {
	case "right", "l", "+", "=", "space":
		if b.Count < b.Max {
			b.Count++
		}
	case "left", "h", "-", "backspace":
		if b.Count > 0 {
			b.Count--
		}
	}
	return b, nil
}

// Items returns one placeholder item per block, the shape the answer
// checker expects for a dragged answer.
func (b BlockTray) Items() []string {
	items := make([]string, b.Count)
	for i := range items {
		items[i] = "block"
	}
	return items
}

// Reset empties the tray.
func (b *BlockTray) Reset() {
	b.Count = 0
}

// View renders the tray as a row of filled and empty slots.
func (b BlockTray) View() string {
	filled := lipgloss.NewStyle().Foreground(theme.Secondary).
		Render(strings.Repeat("■ ", b.Count))
	empty := lipgloss.NewStyle().Foreground(theme.Border).
		Render(strings.Repeat("· ", b.Max-b.Count))

	return strings.TrimRight(filled+empty, " ")
}
