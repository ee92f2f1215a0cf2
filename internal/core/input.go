package core

// Command is a semantic input event, abstracted from physical key presses.
// The platform maps raw keys to commands; the simulation only sees commands.
type Command int

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdStart       // Enter - leave the title screen, restart after the game ended
	CmdPauseToggle // Space - start, pause, resume, or restart depending on state
	CmdRestart     // R - restart after game over
	CmdQuit        // Esc, Q, Ctrl+C - stop the host loop
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdNone:
		return "None"
	case CmdMoveUp:
		return "MoveUp"
	case CmdMoveDown:
		return "MoveDown"
	case CmdMoveLeft:
		return "MoveLeft"
	case CmdMoveRight:
		return "MoveRight"
	case CmdStart:
		return "Start"
	case CmdPauseToggle:
		return "PauseToggle"
	case CmdRestart:
		return "Restart"
	case CmdQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction returns the movement direction carried by a Move* command.
// ok is false for every other command.
func (c Command) Direction() (d Direction, ok bool) {
	switch c {
	case CmdMoveUp:
		return DirUp, true
	case CmdMoveDown:
		return DirDown, true
	case CmdMoveLeft:
		return DirLeft, true
	case CmdMoveRight:
		return DirRight, true
	}
	return DirRight, false
}
