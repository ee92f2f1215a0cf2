package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Show a difficulty picker and start the game with the chosen preset.
The --difficulty flag is ignored; every other flag applies.

Examples:
  snake menu
  snake menu --cols 30 --rows 20`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(cmd *cobra.Command, args []string) error {
	base, err := loadConfigWith("")
	if err != nil {
		return err
	}

	result, err := tui.RunMenu(base, terminalConfig())
	if err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	if result.Quit {
		return nil
	}

	cfg, err := loadConfigWith(string(result.Preset))
	if err != nil {
		return err
	}
	return play(cmd, cfg, result.Config)
}
