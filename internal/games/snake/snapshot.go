package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot is a read-only copy of the session for drawing and for
// determinism checks. Mutating it has no effect on the session.
type Snapshot struct {
	Tick          uint64
	GridW         int
	GridH         int
	Body          []core.Cell // Head first
	Dir           core.Direction
	PendingGrowth int
	Food          core.Cell
	HasFood       bool // False once the board is full
	Score         int
	HighScore     int
	Speed         int // ms per tick
	State         State
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:          s.ticks,
		GridW:         s.grid.Width(),
		GridH:         s.grid.Height(),
		Body:          s.snake.Body(),
		Dir:           s.snake.Direction(),
		PendingGrowth: s.snake.PendingGrowth(),
		Food:          s.food,
		HasFood:       s.hasFood,
		Score:         s.score,
		HighScore:     s.highScore,
		Speed:         s.speed,
		State:         s.state,
	}
}

// Head returns the first body cell, or the zero cell for an empty body.
func (snap Snapshot) Head() core.Cell {
	if len(snap.Body) == 0 {
		return core.Cell{}
	}
	return snap.Body[0]
}
