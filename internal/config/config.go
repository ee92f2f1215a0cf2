// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Board   SnakeBoard   `yaml:"board"`
	Snake   SnakePlayer  `yaml:"snake"`
	Speed   SnakeSpeed   `yaml:"speed"`
	Scoring SnakeScoring `yaml:"scoring"`
}

// SnakeBoard describes the playing field. The grid is derived from the
// window size the way a pixel renderer would lay it out; Cols and Rows
// override the derived dimensions when non-zero.
type SnakeBoard struct {
	WindowWidth  int `yaml:"window_width"`
	WindowHeight int `yaml:"window_height"`
	HUDHeight    int `yaml:"hud_height"` // Strip below the board reserved for the score panel
	CellSize     int `yaml:"cell_size"`
	Cols         int `yaml:"cols"`
	Rows         int `yaml:"rows"`
}

// SnakePlayer defines the snake at spawn time.
type SnakePlayer struct {
	InitialLength int `yaml:"initial_length"`
}

// SnakeSpeed defines the tick interval in milliseconds and how it ramps.
type SnakeSpeed struct {
	Enabled       bool `yaml:"enabled"`         // false keeps the interval at Initial
	Initial       int  `yaml:"initial"`         // ms per tick at score 0
	Min           int  `yaml:"min"`             // fastest allowed ms per tick
	RampFromScore int  `yaml:"ramp_from_score"` // score at which speed-up starts
	ScorePerStep  int  `yaml:"score_per_step"`  // points per 1 ms of speed-up
}

// SnakeScoring defines what eating food is worth.
type SnakeScoring struct {
	FoodPoints    int `yaml:"food_points"`
	GrowthPerFood int `yaml:"growth_per_food"`
}

// GridSize returns the grid dimensions in cells.
func (b SnakeBoard) GridSize() (cols, rows int) {
	if b.CellSize > 0 {
		cols = b.WindowWidth / b.CellSize
		rows = (b.WindowHeight - b.HUDHeight) / b.CellSize
	}
	if b.Cols > 0 {
		cols = b.Cols
	}
	if b.Rows > 0 {
		rows = b.Rows
	}
	return cols, rows
}

// Validate reports whether the simulation can run with this configuration.
func (c SnakeConfig) Validate() error {
	if c.Board.CellSize <= 0 && (c.Board.Cols <= 0 || c.Board.Rows <= 0) {
		return fmt.Errorf("%w: board.cell_size must be positive", ErrInvalid)
	}
	cols, rows := c.Board.GridSize()
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: grid is %dx%d", ErrInvalid, cols, rows)
	}
	if c.Snake.InitialLength < 1 {
		return fmt.Errorf("%w: snake.initial_length must be at least 1", ErrInvalid)
	}
	// The body extends leftwards from the centre column.
	if c.Snake.InitialLength > cols/2+1 {
		return fmt.Errorf("%w: snake.initial_length %d does not fit a %d-column grid",
			ErrInvalid, c.Snake.InitialLength, cols)
	}
	if c.Speed.Initial <= 0 || c.Speed.Min <= 0 {
		return fmt.Errorf("%w: speed.initial and speed.min must be positive", ErrInvalid)
	}
	if c.Speed.Min > c.Speed.Initial {
		return fmt.Errorf("%w: speed.min %d exceeds speed.initial %d", ErrInvalid, c.Speed.Min, c.Speed.Initial)
	}
	if c.Speed.Enabled && c.Speed.ScorePerStep <= 0 {
		return fmt.Errorf("%w: speed.score_per_step must be positive", ErrInvalid)
	}
	if c.Scoring.FoodPoints < 0 || c.Scoring.GrowthPerFood < 0 {
		return fmt.Errorf("%w: scoring values must not be negative", ErrInvalid)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}
