package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// Each board cell takes two terminal columns so the board looks square.
const cellCols = 2

// hudHeight is the status line above the board.
const hudHeight = 1

var (
	glyphHead     = [cellCols]rune{'@', '@'}
	glyphHeadOpen = [cellCols]rune{'O', 'O'}
	glyphBody     = [cellCols]rune{'█', '█'}
	glyphFood     = [cellCols]rune{'(', ')'}
)

// RenderOptions controls terminal rendering.
type RenderOptions struct {
	SnakeColor core.Color
	FoodColor  core.Color
	MouthOpen  bool
}

// DefaultRenderOptions returns the default palette.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		SnakeColor: core.ColorGreen,
		FoodColor:  core.ColorBrightRed,
	}
}

// RequiredSize returns the terminal size needed to draw grid.
func RequiredSize(grid Grid) (w, h int) {
	return grid.CellsAcross()*cellCols + 2, grid.CellsDown() + 2 + hudHeight
}

// RenderSnapshot draws snap to dst: a status line, the boxed board, and an
// overlay for every phase except Running.
func RenderSnapshot(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()
	renderHUD(dst, snap)

	needW, needH := RequiredSize(snap.Grid)
	if dst.Width() < needW || dst.Height() < needH {
		renderOverlay(dst, "Window too small", fmt.Sprintf("Resize to %dx%d", needW, needH))
		return
	}

	board := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, needH-hudHeight)
	dst.DrawBox(board, core.ColorGray)
	origin := board.Inset(1)

	if len(snap.Snake) > 0 {
		drawCell(dst, origin, snap.Grid, snap.Food, glyphFood, opts.FoodColor)

		// Body first so the head wins if they overlap at game over
		for i := len(snap.Snake) - 1; i >= 1; i-- {
			drawCell(dst, origin, snap.Grid, snap.Snake[i], glyphBody, opts.SnakeColor)
		}
		head := glyphHead
		if opts.MouthOpen {
			head = glyphHeadOpen
		}
		drawCell(dst, origin, snap.Grid, snap.Snake[0], head, opts.SnakeColor)
	}

	switch snap.Phase {
	case PhaseIdle:
		renderOverlay(dst, "Snake", "Press Enter to start")
	case PhasePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		title := "Game Over"
		switch snap.Cause {
		case CauseWall:
			title = "Game Over: hit the wall"
		case CauseSelf:
			title = "Game Over: bit yourself"
		}
		renderOverlay(dst, title, fmt.Sprintf("Score %d  Enter to play again", snap.Score))
	}
}

func drawCell(dst *core.Screen, origin core.Rect, grid Grid, c Cell, glyph [cellCols]rune, color core.Color) {
	if !grid.Contains(c) {
		return
	}
	col, row := grid.ColRow(c)
	for i, r := range glyph {
		dst.SetWithColor(origin.X+col*cellCols+i, origin.Y+row, r, color)
	}
}

// renderHUD draws the top status line.
func renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake  Score: %d  Best: %d", snap.Score, snap.HighScore)
	if snap.Phase == PhaseRunning || snap.Phase == PhasePaused {
		hud += fmt.Sprintf("  Speed: %dms", int(math.Round(snap.IntervalMs)))
	}
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
}

// renderOverlay draws a centered overlay message.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
