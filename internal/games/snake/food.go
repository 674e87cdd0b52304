package snake

import "math/rand"

// FoodSpawner places food on random cells.
type FoodSpawner struct {
	grid       Grid
	rng        *rand.Rand
	avoidSnake bool
}

// NewFoodSpawner creates a spawner drawing from rng. With avoidSnake set,
// Spawn only returns cells not listed as occupied.
func NewFoodSpawner(grid Grid, rng *rand.Rand, avoidSnake bool) *FoodSpawner {
	return &FoodSpawner{grid: grid, rng: rng, avoidSnake: avoidSnake}
}

// Spawn picks a column and a row uniformly at random. By default it does
// not look at occupied, so food may land on the snake or on the cell it
// replaces.
func (s *FoodSpawner) Spawn(occupied []Cell) Cell {
	if s.avoidSnake {
		if c, ok := s.spawnFree(occupied); ok {
			return c
		}
	}
	col := s.rng.Intn(s.grid.CellsAcross())
	row := s.rng.Intn(s.grid.CellsDown())
	return s.grid.CellAt(col, row)
}

// spawnFree picks uniformly among unoccupied cells.
// It reports false when the snake fills the board.
func (s *FoodSpawner) spawnFree(occupied []Cell) (Cell, bool) {
	taken := make(map[Cell]struct{}, len(occupied))
	for _, c := range occupied {
		taken[c] = struct{}{}
	}

	var emptyCells []Cell
	for row := range s.grid.CellsDown() {
		for col := range s.grid.CellsAcross() {
			c := s.grid.CellAt(col, row)
			if _, ok := taken[c]; !ok {
				emptyCells = append(emptyCells, c)
			}
		}
	}

	if len(emptyCells) == 0 {
		return Cell{}, false
	}
	return emptyCells[s.rng.Intn(len(emptyCells))], true
}
