package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/orb-sort/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run.
func RenderScreen(s *core.Screen) string {
	return renderWithPalette(s, GetTheme().Palette)
}

func renderWithPalette(s *core.Screen, palette map[core.Color]lipgloss.Style) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	flush := func(c core.Color) {
		if run.Len() == 0 {
			return
		}
		style, ok := palette[c]
		if !ok || c == core.ColorDefault {
			sb.WriteString(run.String())
		} else {
			sb.WriteString(style.Render(run.String()))
		}
		run.Reset()
	}

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		runColor := core.ColorDefault
		for x := range s.Width() {
			cell := s.GetCell(x, y)
			// Blank cells carry no visible color
			if cell.Rune == ' ' {
				cell.Color = runColor
			}
			if cell.Color != runColor {
				flush(runColor)
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush(runColor)
	}
	return sb.String()
}
