package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// State is the session lifecycle state.
type State int

const (
	StateStart State = iota
	StatePlaying
	StatePaused
	StateGameOver
	StateWon  // Board full: no cell left for food
	StateExit // Quit requested; the host loop stops
)

func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateWon:
		return "won"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Ended reports whether the play-through is over and waits for a restart.
func (s State) Ended() bool {
	return s == StateGameOver || s == StateWon
}

// transitions lists the command-driven edges of the state machine.
// Collision edges (Playing -> GameOver/Won) are taken by Tick, and Quit
// leaves every state for StateExit.
var transitions = map[State]map[core.Command]State{
	StateStart: {
		core.CmdStart:       StatePlaying,
		core.CmdPauseToggle: StatePlaying,
	},
	StatePlaying: {
		core.CmdPauseToggle: StatePaused,
	},
	StatePaused: {
		core.CmdPauseToggle: StatePlaying,
	},
	StateGameOver: {
		core.CmdStart:       StatePlaying,
		core.CmdPauseToggle: StatePlaying,
		core.CmdRestart:     StatePlaying,
	},
	StateWon: {
		core.CmdStart:       StatePlaying,
		core.CmdPauseToggle: StatePlaying,
		core.CmdRestart:     StatePlaying,
	},
}

// Transition returns the state reached from s on cmd. reset is true when the
// edge starts a new play-through, which the session must reinitialise.
// Commands without an edge leave the state unchanged.
func Transition(s State, cmd core.Command) (next State, reset bool) {
	if cmd == core.CmdQuit {
		return StateExit, false
	}
	next, ok := transitions[s][cmd]
	if !ok {
		return s, false
	}
	return next, s.Ended() && next == StatePlaying
}
