package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Steer
  Enter        - Start, play again after game over
  Space        - Pause/resume (also starts)
  R            - Restart after game over
  Tab          - Run history for this session
  Esc/Q/Ctrl+C - Quit

Difficulty options:
  easy   - Slower start, speeds up later
  normal - 150 ms per step, faster from 100 points on
  hard   - Faster start, speeds up sooner
  fixed  - No speed-up

Examples:
  snake play
  snake play --difficulty easy
  snake play --seed 42 --log-file snake.log --log-level debug
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return play(cmd, cfg, terminalConfig())
}

// terminalConfig returns the runtime settings for the current terminal.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// play runs one game session in the terminal and prints its summary.
func play(cmd *cobra.Command, cfg config.SnakeConfig, rt core.RuntimeConfig) error {
	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	session, err := snake.NewSession(cfg, rt.Seed)
	if err != nil {
		return err
	}

	// The ledger is optional; the game still works without it
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history disabled", "error", err)
		store = nil
	}

	cols, rows := cfg.Board.GridSize()
	logger.Info("starting", "grid", fmt.Sprintf("%dx%d", cols, rows), "seed", rt.Seed, "speed", session.Speed())

	runErr := tui.Run(session, store, logger, rt)

	if store != nil {
		printSummary(cmd.OutOrStdout(), session, store)
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// printSummary writes the runs of this session once the terminal is restored.
func printSummary(w io.Writer, session *snake.Session, store *storage.Store) {
	stats, err := store.Stats()
	if err != nil || stats.Runs == 0 {
		return
	}

	fmt.Fprintf(w, "Runs: %d  Best: %d  High score: %d\n", stats.Runs, stats.BestScore, session.HighScore())

	runs, err := store.RecentRuns(10)
	if err != nil {
		return
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-10s  %s\n", "#", "Score", "Length", "Outcome", "Time")
	fmt.Fprintf(w, "  %-4s  %-6s  %-6s  %-10s  %s\n", "-", "-----", "------", "-------", "----")
	for i, r := range runs {
		fmt.Fprintf(w, "  %-4d  %-6d  %-6d  %-10s  %s\n",
			len(runs)-i, r.Score, r.Length, r.Outcome, r.Duration().Round(time.Second))
	}
}

// newLogger builds the logger. Nothing may reach the terminal while the
// alternate screen is up, so without a log file the output is discarded.
func newLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           lvl,
	})
	return logger, closeFn, nil
}
