package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// helpRows is the height of the help bar below the board.
const helpRows = 1

// Model is the Bubble Tea model hosting a snake session.
type Model struct {
	session *snake.Session
	screen  *core.Screen
	store   *storage.Store // May be nil; runs are then not recorded
	logger  *log.Logger
	config  core.RuntimeConfig

	keys        KeyMap
	help        help.Model
	history     HistoryModel
	showHistory bool

	lastTick  time.Time // Time of the previous TickMsg; zero before the first
	runStart  time.Time
	lastState snake.State
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given session.
// store and logger may be nil.
func NewModel(session *snake.Session, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false

	return Model{
		session:   session,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpRows),
		store:     store,
		logger:    logger,
		config:    cfg,
		keys:      DefaultKeyMap(),
		help:      h,
		history:   NewHistoryModel(store, cfg.ScreenW, cfg.ScreenH),
		lastState: session.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHistory {
		return m.handleHistoryKey(msg)
	}

	if key.Matches(msg, m.keys.History) {
		// Opening the table pauses a running game; it stays paused on close
		if m.session.State() == snake.StatePlaying {
			m.session.HandleCommand(core.CmdPauseToggle)
			m.observe()
		}
		m.history.Refresh()
		m.showHistory = true
		return m, nil
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CmdNone {
		return m, nil
	}
	m.session.HandleCommand(cmd)
	return m.afterCommand()
}

func (m Model) handleHistoryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.history.Keys()
	switch {
	case key.Matches(msg, keys.Quit):
		m.session.HandleCommand(core.CmdQuit)
		return m.afterCommand()
	case key.Matches(msg, keys.Close):
		m.showHistory = false
		return m, nil
	}

	var cmd tea.Cmd
	m.history, cmd = m.history.Update(msg)
	return m, cmd
}

// afterCommand records state changes and stops the program on exit.
func (m Model) afterCommand() (tea.Model, tea.Cmd) {
	m.observe()
	if m.session.State() == snake.StateExit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-helpRows)
	m.history.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick feeds the wall time since the previous tick into the session.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if n := m.session.Advance(dt); n > 0 {
		m.observe()
	}
	return m, tickCmd(m.config.TickRate)
}

// observe logs state transitions and records finished runs.
func (m *Model) observe() {
	prev, cur := m.lastState, m.session.State()
	if prev == cur {
		return
	}
	m.lastState = cur
	m.logger.Debug("state change", "from", prev, "to", cur)

	switch {
	case cur == snake.StatePlaying && (prev == snake.StateStart || prev.Ended()):
		m.runStart = time.Now()
	case cur == snake.StateGameOver:
		m.logger.Info("game over", "score", m.session.Score(), "length", m.session.SnakeLen(), "ticks", m.session.Ticks())
		m.recordRun(storage.OutcomeGameOver)
	case cur == snake.StateWon:
		m.logger.Info("board full", "score", m.session.Score(), "length", m.session.SnakeLen(), "ticks", m.session.Ticks())
		m.recordRun(storage.OutcomeWon)
	case cur == snake.StateExit && (prev == snake.StatePlaying || prev == snake.StatePaused):
		if m.session.Ticks() > 0 {
			m.recordRun(storage.OutcomeAbandoned)
		}
	}
}

// recordRun saves the current play-through to the ledger.
func (m *Model) recordRun(outcome storage.Outcome) {
	if m.store == nil {
		return
	}
	run, err := m.store.SaveRun(storage.RunRecord{
		Score:     m.session.Score(),
		Length:    m.session.SnakeLen(),
		Ticks:     m.session.Ticks(),
		Outcome:   outcome,
		StartedAt: m.runStart,
		EndedAt:   time.Now(),
	})
	if err != nil {
		m.logger.Warn("cannot record run", "error", err)
		return
	}
	m.logger.Debug("run recorded", "id", run.ID, "outcome", outcome)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	if m.showHistory {
		b.WriteString(m.history.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(m.help.View(m.history.Keys())))
		return b.String()
	}

	DrawBoard(m.screen, m.session.Snapshot())
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(centerText(m.help.View(m.keys), m.screen.Width())))
	return b.String()
}

// Run starts the Bubble Tea program and blocks until the session exits.
func Run(session *snake.Session, store *storage.Store, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(session, store, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
