package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/frame-arcade/internal/core"
)

// cellStyles holds one lipgloss style per core color, indexed by value.
var cellStyles = buildCellStyles()

func buildCellStyles() []lipgloss.Style {
	colors := core.Colors()
	styles := make([]lipgloss.Style, len(colors))
	for _, c := range colors {
		style := lipgloss.NewStyle()
		if code := c.ANSI(); code != "" {
			style = style.Foreground(lipgloss.Color(code))
		}
		styles[c] = style
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is emitted as runs of equal color so a run costs one escape
// sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runColor := core.ColorDefault
		flush := func() {
			if run.Len() > 0 {
				sb.WriteString(styleFor(runColor).Render(run.String()))
				run.Reset()
			}
		}

		for x := range s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != runColor {
				flush()
				runColor = cell.Color
			}
			run.WriteRune(cell.Rune)
		}
		flush()
	}
	return sb.String()
}
