package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arena/internal/core"
)

// colorStyles caches one lipgloss style per distinct core.Color.
var (
	colorStyles   = map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	colorStylesMu sync.Mutex
)

// styleFor returns the foreground style for c, creating it on first use.
func styleFor(c core.Color) lipgloss.Style {
	colorStylesMu.Lock()
	defer colorStylesMu.Unlock()

	if style, ok := colorStyles[c]; ok {
		return style
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	colorStyles[c] = style
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
