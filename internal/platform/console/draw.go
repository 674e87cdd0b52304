package console

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// styleFor returns the tcell style of a buffer color. Named colors use the
// same RGB values as the window frontend.
func styleFor(c core.Color) tcell.Style {
	if c == core.ColorDefault {
		return tcell.StyleDefault
	}
	rgba := c.ToRGBA()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(rgba.R), int32(rgba.G), int32(rgba.B)))
}

// blit copies buf onto the screen. Cells outside the screen are skipped.
func blit(screen tcell.Screen, buf *core.Screen) {
	sw, sh := screen.Size()
	w := min(sw, buf.Width())
	h := min(sh, buf.Height())

	screen.Clear()
	for y := range h {
		for x := range w {
			cell := buf.GetCell(x, y)
			screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
}
