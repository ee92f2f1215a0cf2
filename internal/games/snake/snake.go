// Package snake implements the snake simulation: the body and its movement
// rule, food placement, collision and scoring, and the session state machine.
// It has no knowledge of terminals or key codes; the platform drives it with
// core.Command values and reads it back through Snapshot.
package snake

import (
	"github.com/gammazero/deque"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snake is an ordered body, head first, plus its heading and owed growth.
type Snake struct {
	body          deque.Deque[core.Cell] // Front is the head
	direction     core.Direction         // Direction of the last applied step
	next          core.Direction         // Direction the next step will use
	pendingGrowth int
}

// Spawn creates a straight horizontal snake whose head is at start and whose
// body extends leftwards. Lengths below 1 are raised to 1.
func Spawn(start core.Cell, length int) *Snake {
	s := &Snake{
		direction: core.DirRight,
		next:      core.DirRight,
	}
	for i := range max(length, 1) {
		s.body.PushBack(core.Cell{X: start.X - i, Y: start.Y})
	}
	return s
}

// SetDirection requests a turn for the next step. A direct reversal of the
// last applied heading is ignored while the snake has a neck, so turning
// twice between steps cannot fold the head back into the body.
// Returns whether the request was accepted.
func (s *Snake) SetDirection(d core.Direction) bool {
	if s.body.Len() >= 2 && d == s.direction.Opposite() {
		return false
	}
	s.next = d
	return true
}

// Direction returns the direction the next step will take.
func (s *Snake) Direction() core.Direction {
	return s.next
}

// Step moves the head one cell and returns the new head. The tail is dropped
// unless growth is owed, in which case one unit of growth is paid instead.
func (s *Snake) Step() core.Cell {
	s.direction = s.next
	head := s.Head().Add(s.direction)
	s.body.PushFront(head)

	if s.pendingGrowth > 0 {
		s.pendingGrowth--
	} else {
		s.body.PopBack()
	}
	return head
}

// Grow owes n more segments, paid one per step.
func (s *Snake) Grow(n int) {
	if n > 0 {
		s.pendingGrowth += n
	}
}

// PendingGrowth returns the number of segments still owed.
func (s *Snake) PendingGrowth() int {
	return s.pendingGrowth
}

// Head returns the first body cell.
func (s *Snake) Head() core.Cell {
	return s.body.Front()
}

// Len returns the number of body segments.
func (s *Snake) Len() int {
	return s.body.Len()
}

// Occupies reports whether any segment is on c.
func (s *Snake) Occupies(c core.Cell) bool {
	for i := range s.body.Len() {
		if s.body.At(i) == c {
			return true
		}
	}
	return false
}

// BitesItself reports whether the head shares a cell with the rest of the body.
func (s *Snake) BitesItself() bool {
	head := s.Head()
	for i := 1; i < s.body.Len(); i++ {
		if s.body.At(i) == head {
			return true
		}
	}
	return false
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Cell {
	cells := make([]core.Cell, s.body.Len())
	for i := range cells {
		cells[i] = s.body.At(i)
	}
	return cells
}
