package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

var (
	backgroundColor = color.RGBA{0x10, 0x10, 0x18, 0xff}
	hudColor        = color.RGBA{34, 32, 52, 255}
	gridLineColor   = color.RGBA{0x4c, 0x4c, 0x4c, 0x4c} // white at 30%, premultiplied
	stemColor       = color.RGBA{0x00, 0x80, 0x00, 0xff}
	eyeColor        = color.RGBA{0xff, 0xff, 0xff, 0xff}
	mouthColor      = color.RGBA{0xff, 0x00, 0x00, 0xff}
	dimColor        = color.RGBA{0x00, 0x00, 0x00, 0x99}
)

// Draw renders the board, the score bar and the phase overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.engine.Snapshot()
	screen.Fill(backgroundColor)

	g.drawHUD(screen, snap)

	oy := float32(hudHeight)
	g.drawGrid(screen, oy)
	if len(snap.Snake) > 0 {
		g.drawFood(screen, oy, snap.Food)
		g.drawSnake(screen, oy, snap)
	}

	switch snap.Phase {
	case snake.PhaseIdle:
		g.drawOverlay(screen, "SNAKE", "ENTER: Start  Q: Quit")
	case snake.PhasePaused:
		g.drawOverlay(screen, "PAUSED", "P: Continue  R: Restart")
	case snake.PhaseGameOver:
		g.drawOverlay(screen, "GAME OVER: "+causeText(snap.Cause), fmt.Sprintf("Score %d  ENTER: Play again", snap.Score))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap snake.Snapshot) {
	w := float32(screen.Bounds().Dx())
	vector.DrawFilledRect(screen, 0, 0, w, hudHeight, hudColor, false)

	txt := fmt.Sprintf("Score: %d  Best: %d", snap.Score, snap.HighScore)
	if snap.Phase == snake.PhaseRunning || snap.Phase == snake.PhasePaused {
		txt += fmt.Sprintf("  Speed: %dms", snap.Interval().Milliseconds())
	}
	ebitenutil.DebugPrintAt(screen, txt, 4, 0)
}

// drawGrid draws the faint cell lines across the board.
func (g *Game) drawGrid(dst *ebiten.Image, oy float32) {
	w := float32(g.grid.Width)
	h := float32(g.grid.Height)
	size := g.grid.Size
	for x := 0; x <= g.grid.Width; x += size {
		vector.StrokeLine(dst, float32(x), oy, float32(x), oy+h, 1, gridLineColor, false)
	}
	for y := 0; y <= g.grid.Height; y += size {
		vector.StrokeLine(dst, 0, oy+float32(y), w, oy+float32(y), 1, gridLineColor, false)
	}
}

// drawFood draws an apple with a stem.
func (g *Game) drawFood(dst *ebiten.Image, oy float32, food snake.Cell) {
	s := float32(g.grid.Size)
	cx := float32(food.X) + s/2
	cy := oy + float32(food.Y) + s/2
	vector.DrawFilledCircle(dst, cx, cy, s/3, g.foodColor, true)
	vector.DrawFilledRect(dst, cx-s/10, cy-s/2, s/5, s*0.3, stemColor, false)
}

// drawSnake draws the body as one thick rounded line from head to tail,
// then the eyes and, right after eating, the open mouth.
func (g *Game) drawSnake(dst *ebiten.Image, oy float32, snap snake.Snapshot) {
	s := float32(g.grid.Size)
	width := s - 4
	center := func(c snake.Cell) (float32, float32) {
		return float32(c.X) + s/2, oy + float32(c.Y) + s/2
	}

	for i, c := range snap.Snake {
		x, y := center(c)
		vector.DrawFilledCircle(dst, x, y, width/2, g.snakeColor, true)
		if i == 0 {
			continue
		}
		px, py := center(snap.Snake[i-1])
		vector.StrokeLine(dst, px, py, x, y, width, g.snakeColor, true)
	}

	head := snap.Snake[0]
	hx := float32(head.X)
	hy := oy + float32(head.Y)
	unit := s / 20
	vector.DrawFilledRect(dst, hx+4*unit, hy+6*unit, 4*unit, 4*unit, eyeColor, false)
	vector.DrawFilledRect(dst, hx+12*unit, hy+6*unit, 4*unit, 4*unit, eyeColor, false)

	if g.flash.Active(snap.Session, g.now()) {
		vector.DrawFilledRect(dst, hx+6*unit, hy+12*unit, 8*unit, 5*unit, mouthColor, false)
	}
}

// drawOverlay dims the board and prints a title and a hint.
func (g *Game) drawOverlay(screen *ebiten.Image, title, hint string) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, hudHeight, float32(b.Dx()), float32(b.Dy()-hudHeight), dimColor, false)

	mid := hudHeight + (b.Dy()-hudHeight)/2
	drawText(screen, title, mid-16)
	drawText(screen, hint, mid+4)
}

func causeText(c snake.Cause) string {
	switch c {
	case snake.CauseWall:
		return "HIT THE WALL"
	case snake.CauseSelf:
		return "BIT YOURSELF"
	}
	return ""
}
