package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxFoodAttempts bounds rejection sampling before falling back to a scan.
const maxFoodAttempts = 100

// PlaceFood picks a uniformly random cell not covered by the snake.
// ok is false when the snake covers every cell of the grid.
func PlaceFood(rng *rand.Rand, grid core.Grid, s *Snake) (cell core.Cell, ok bool) {
	if grid.Area() == 0 {
		return core.Cell{}, false
	}

	// Cheap on a sparse board
	for range maxFoodAttempts {
		c := core.Cell{X: rng.Intn(grid.Width()), Y: rng.Intn(grid.Height())}
		if !s.Occupies(c) {
			return c, true
		}
	}

	// Crowded board: collect all empty cells
	occupied := make(map[core.Cell]bool, s.Len())
	for _, seg := range s.Body() {
		occupied[seg] = true
	}
	empty := make([]core.Cell, 0, max(grid.Area()-len(occupied), 0))
	for y := range grid.Height() {
		for x := range grid.Width() {
			c := core.Cell{X: x, Y: y}
			if !occupied[c] {
				empty = append(empty, c)
			}
		}
	}

	if len(empty) == 0 {
		return core.Cell{}, false
	}
	return empty[rng.Intn(len(empty))], true
}
