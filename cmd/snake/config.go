package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the config file,
difficulty preset and --cols/--rows overrides are applied.

Examples:
  snake config
  snake config --difficulty hard > ~/.arcade/configs/snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.SnakeConfig, error) {
	return loadConfigWith(flagDifficulty)
}

// loadConfigWith resolves the configuration with the given preset name in
// place of --difficulty.
func loadConfigWith(difficulty string) (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagCols > 0 {
		cfg.Board.Cols = flagCols
	}
	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
