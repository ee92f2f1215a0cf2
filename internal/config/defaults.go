package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: SnakeBoard{
			WindowWidth:  800,
			WindowHeight: 600,
			HUDHeight:    100,
			CellSize:     20,
		},
		Snake: SnakePlayer{
			InitialLength: 4,
		},
		Speed: SnakeSpeed{
			Enabled:       true,
			Initial:       150,
			Min:           50,
			RampFromScore: 100,
			ScorePerStep:  10,
		},
		Scoring: SnakeScoring{
			FoodPoints:    10,
			GrowthPerFood: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
