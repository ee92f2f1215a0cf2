package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

// History layout constants
const (
	maxHistoryRuns = 100 // Max runs to load
	historyChrome  = 8   // Rows taken by title, stats, borders and help
)

// HistoryKeyMap defines the key bindings for the run history view.
type HistoryKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Close key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Close, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Close, k.Quit}}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Close: key.NewBinding(
			key.WithKeys("tab", "esc", "b"),
			key.WithHelp("tab/esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel shows the runs of this process in a table.
type HistoryModel struct {
	store  *storage.Store // May be nil when the ledger failed to open
	runs   []storage.RunRecord
	stats  storage.Stats
	err    error
	table  table.Model
	keys   HistoryKeyMap
	width  int
	height int
}

// NewHistoryModel creates a history view backed by store.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	m := HistoryModel{
		store:  store,
		keys:   DefaultHistoryKeyMap(),
		width:  width,
		height: height,
	}
	m.table = m.createTable()
	return m
}

// createTable creates a new table sized to the current window.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 7},
		{Title: "Length", Width: 7},
		{Title: "Ticks", Width: 7},
		{Title: "Outcome", Width: 10},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-historyChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// Refresh reloads runs and stats from the ledger.
func (m *HistoryModel) Refresh() {
	m.runs, m.stats, m.err = nil, storage.Stats{}, nil
	if m.store != nil {
		m.runs, m.err = m.store.RecentRuns(maxHistoryRuns)
		if m.err == nil {
			m.stats, m.err = m.store.Stats()
		}
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("%d", len(m.runs)-i),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Length),
			fmt.Sprintf("%d", r.Ticks),
			outcomeLabel(r.Outcome),
			r.Duration().Round(time.Second).String(),
			r.EndedAt.Format("15:04:05"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func outcomeLabel(o storage.Outcome) string {
	switch o {
	case storage.OutcomeGameOver:
		return "game over"
	case storage.OutcomeWon:
		return "won"
	case storage.OutcomeAbandoned:
		return "quit"
	default:
		return string(o)
	}
}

// Runs returns the runs currently shown, newest first.
func (m HistoryModel) Runs() []storage.RunRecord {
	return m.runs
}

// SetSize resizes the view.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table = m.createTable()
	m.updateTableRows()
}

// Update scrolls the table. Closing and quitting are handled by the caller
// through Keys.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// Keys returns the bindings of the history view.
func (m HistoryModel) Keys() HistoryKeyMap {
	return m.keys
}

// View renders the history screen without the help bar.
func (m HistoryModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("RUN HISTORY", m.width)))
	b.WriteString("\n")

	statsStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	stats := fmt.Sprintf("Runs: %d  Best: %d  Wins: %d  Avg: %.1f",
		m.stats.Runs, m.stats.BestScore, m.stats.Wins, m.stats.AverageScore)
	b.WriteString(statsStyle.Render(centerText(stats, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(1, 4)

	switch {
	case m.store == nil:
		return emptyStyle.Render("Run history is unavailable.")
	case m.err != nil:
		return emptyStyle.Render("Could not load runs: " + m.err.Error())
	case len(m.runs) == 0:
		return emptyStyle.Render("No runs finished yet.\nPlay a game to fill the table!")
	}
	return m.table.View()
}

// centerText pads text with spaces to center it within width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
