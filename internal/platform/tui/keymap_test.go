package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.CmdMoveUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.CmdMoveDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.CmdMoveLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.CmdMoveRight},
		{"w", runeKey('w'), core.CmdMoveUp},
		{"s", runeKey('s'), core.CmdMoveDown},
		{"a", runeKey('a'), core.CmdMoveLeft},
		{"d", runeKey('d'), core.CmdMoveRight},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CmdStart},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.CmdPauseToggle},
		{"r", runeKey('r'), core.CmdRestart},
		{"q", runeKey('q'), core.CmdQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.CmdQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CmdQuit},
		{"unbound", runeKey('x'), core.CmdNone},
		{"tab is not a game command", tea.KeyMsg{Type: tea.KeyTab}, core.CmdNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Command(tc.msg); got != tc.expected {
				t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp() is empty")
	}

	n := 0
	for _, group := range keys.FullHelp() {
		n += len(group)
	}
	if n != 9 {
		t.Errorf("FullHelp() lists %d bindings, expected 9", n)
	}
}
