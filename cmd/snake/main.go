// snake is a single-player snake game for the terminal.
//
// Usage:
//
//	snake                - Play (same as snake play)
//	snake play           - Play
//	snake menu           - Pick a difficulty, then play
//	snake config         - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>      - Custom config YAML
//	--difficulty <name>  - Speed preset: easy, normal, hard, fixed
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--fps <rate>         - Set render/input rate (default: 60)
//	--cols, --rows       - Override the grid size
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagFPS        int
	flagCols       int
	flagRows       int
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer, eat, grow",
	Long: `Snake is the classic snake game in your terminal.

Steer the snake around a walled grid, eat food to grow and score, and
avoid the walls and your own tail. The game speeds up as the score rises.

Available commands:
  play     - Play the game (default)
  menu     - Pick a difficulty, then play
  config   - Print the effective configuration

Examples:
  snake
  snake play --difficulty hard
  snake play --cols 30 --rows 20 --seed 42
  snake config --difficulty easy`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.IntVar(&flagFPS, "fps", 60, "Render and input rate (frames per second)")
	pf.IntVar(&flagCols, "cols", 0, "Grid width in cells (0 = from config)")
	pf.IntVar(&flagRows, "rows", 0, "Grid height in cells (0 = from config)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discarded)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}
