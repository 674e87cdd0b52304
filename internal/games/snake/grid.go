package snake

import "github.com/vovakirdan/gridsnake/internal/core"

// Direction represents the snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite checks if two directions are opposite.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Cell is a grid-aligned position in pixel units.
type Cell struct {
	X, Y int
}

// Grid is a fixed-size board measured in pixels and divided into square
// cells of Size pixels. Cells never wrap around the edges.
type Grid struct {
	Width  int
	Height int
	Size   int
}

// NewGrid creates a grid for a board of the given pixel size.
func NewGrid(width, height, size int) Grid {
	return Grid{Width: width, Height: height, Size: size}
}

// CellsAcross returns the number of columns.
func (g Grid) CellsAcross() int {
	return g.Width / g.Size
}

// CellsDown returns the number of rows.
func (g Grid) CellsDown() int {
	return g.Height / g.Size
}

// Step returns the displacement of one move in direction d.
func (g Grid) Step(d Direction) Cell {
	switch d {
	case DirUp:
		return Cell{X: 0, Y: -g.Size}
	case DirDown:
		return Cell{X: 0, Y: g.Size}
	case DirLeft:
		return Cell{X: -g.Size, Y: 0}
	default:
		return Cell{X: g.Size, Y: 0}
	}
}

// Advance returns the cell one step away from c. The result may lie
// outside the board.
func (g Grid) Advance(c Cell, d Direction) Cell {
	step := g.Step(d)
	return Cell{X: c.X + step.X, Y: c.Y + step.Y}
}

// Bounds returns the board rectangle in pixels.
func (g Grid) Bounds() core.Rect {
	return core.NewRect(0, 0, g.Width, g.Height)
}

// Contains reports whether c lies on the board.
func (g Grid) Contains(c Cell) bool {
	return g.Bounds().Contains(c.X, c.Y)
}

// CellAt converts a column and row into a cell.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.Size, Y: row * g.Size}
}

// ColRow converts a cell into its column and row.
func (g Grid) ColRow(c Cell) (col, row int) {
	return c.X / g.Size, c.Y / g.Size
}
