package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// styles caches one lipgloss style per buffer color. Named colors use the
// palette's RGB values, so the terminal and window frontends agree; lipgloss
// downsamples them to what the terminal supports.
var styles = func() map[core.Color]lipgloss.Style {
	m := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		rgba := c.ToRGBA()
		hex := fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
		m[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return m
}()

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one style run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		writeRow(&sb, s, y)
	}
	return sb.String()
}

func writeRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	for x := 0; x < s.Width(); {
		color := s.GetCell(x, y).Color
		run.Reset()
		for ; x < s.Width() && s.GetCell(x, y).Color == color; x++ {
			run.WriteRune(s.GetCell(x, y).Rune)
		}

		style, ok := styles[color]
		if !ok {
			style = styles[core.ColorDefault]
		}
		sb.WriteString(style.Render(run.String()))
	}
}
