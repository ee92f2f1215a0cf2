package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxTicksPerAdvance caps catch-up after a long frame; leftover time is dropped.
const maxTicksPerAdvance = 4

// Outcome describes what a single tick did.
type Outcome int

const (
	OutcomeIdle      Outcome = iota // Not playing, nothing moved
	OutcomeMoved                    // Plain step
	OutcomeAte                      // Step onto food
	OutcomeWall                     // Head left the grid
	OutcomeSelf                     // Head hit the body
	OutcomeBoardFull                // Ate the last free cell's food, nowhere to place more
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIdle:
		return "idle"
	case OutcomeMoved:
		return "moved"
	case OutcomeAte:
		return "ate"
	case OutcomeWall:
		return "wall"
	case OutcomeSelf:
		return "self"
	case OutcomeBoardFull:
		return "board_full"
	default:
		return "unknown"
	}
}

// Session owns everything that changes during play: the snake, the food and
// the lifecycle state with score, high score and speed. It is the only
// mutator of these and is driven from a single host loop.
type Session struct {
	cfg   config.SnakeConfig
	grid  core.Grid
	curve config.SpeedCurve
	rng   *rand.Rand

	snake   *Snake
	food    core.Cell
	hasFood bool

	state     State
	score     int
	highScore int // Survives resets for the process lifetime
	speed     int // Tick interval in ms
	ticks     uint64
	elapsed   time.Duration // Accumulated play time not yet spent on ticks
}

// NewSession validates cfg and creates a session on the title screen with
// the snake and food already placed.
func NewSession(cfg config.SnakeConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("snake: %w", err)
	}
	cols, rows := cfg.Board.GridSize()

	s := &Session{
		cfg:   cfg,
		grid:  core.NewGrid(cols, rows),
		curve: config.NewSpeedCurve(cfg.Speed),
		rng:   rand.New(rand.NewSource(seed)),
	}
	s.newRound()
	s.state = StateStart
	return s, nil
}

// newRound respawns the snake and food and reinitialises score and speed.
func (s *Session) newRound() {
	s.score = 0
	s.speed = s.curve.Initial()
	s.ticks = 0
	s.elapsed = 0
	s.snake = Spawn(s.grid.Center(), s.cfg.Snake.InitialLength)
	s.food, s.hasFood = PlaceFood(s.rng, s.grid, s.snake)
}

// HandleCommand applies an input command. Direction commands steer the
// snake while playing and are ignored otherwise; lifecycle commands follow
// Transition. Commands with no effect in the current state are ignored.
func (s *Session) HandleCommand(cmd core.Command) {
	if d, ok := cmd.Direction(); ok {
		if s.state == StatePlaying {
			s.snake.SetDirection(d)
		}
		return
	}

	next, reset := Transition(s.state, cmd)
	if reset {
		s.newRound()
	}
	s.state = next

	// A grid too small to hold any food is full from the start.
	if s.state == StatePlaying && !s.hasFood {
		s.state = StateWon
	}
}

// Tick advances the simulation by one step: move, then check walls, the
// body and food, in that order. It is a no-op unless the state is Playing.
func (s *Session) Tick() Outcome {
	if s.state != StatePlaying {
		return OutcomeIdle
	}
	s.ticks++

	head := s.snake.Step()

	if !s.grid.InBounds(head) {
		s.state = StateGameOver
		return OutcomeWall
	}
	if s.snake.BitesItself() {
		s.state = StateGameOver
		return OutcomeSelf
	}
	if !s.hasFood || head != s.food {
		return OutcomeMoved
	}

	s.score += s.cfg.Scoring.FoodPoints
	s.snake.Grow(s.cfg.Scoring.GrowthPerFood)
	s.food, s.hasFood = PlaceFood(s.rng, s.grid, s.snake)
	if s.score > s.highScore {
		s.highScore = s.score
	}
	s.speed = s.curve.Speed(s.score)

	if !s.hasFood {
		s.state = StateWon
		return OutcomeBoardFull
	}
	return OutcomeAte
}

// Advance feeds elapsed wall time into the fixed-step clock and runs as many
// ticks as whole intervals have accumulated. Time only accrues while
// playing. Returns the number of ticks run.
func (s *Session) Advance(dt time.Duration) int {
	if s.state != StatePlaying || dt <= 0 {
		return 0
	}
	s.elapsed += dt

	ticks := 0
	for s.state == StatePlaying && s.elapsed >= s.Interval() {
		s.elapsed -= s.Interval()
		s.Tick()
		ticks++
		if ticks == maxTicksPerAdvance {
			s.elapsed = 0
			break
		}
	}
	return ticks
}

// Interval returns the current tick interval.
func (s *Session) Interval() time.Duration {
	return time.Duration(s.speed) * time.Millisecond
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Score returns the score of the current play-through.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen by this session.
func (s *Session) HighScore() int {
	return s.highScore
}

// Speed returns the tick interval in milliseconds.
func (s *Session) Speed() int {
	return s.speed
}

// Ticks returns the number of ticks in the current play-through.
func (s *Session) Ticks() uint64 {
	return s.ticks
}

// Grid returns the playing field.
func (s *Session) Grid() core.Grid {
	return s.grid
}

// SnakeLen returns the current body length.
func (s *Session) SnakeLen() int {
	return s.snake.Len()
}
