package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const (
	hudRows    = 1 // Score line above the board
	borderSize = 1
)

// Glyphs used on the board.
const (
	glyphHead  = '█'
	glyphBody  = '▓'
	glyphFood  = '●'
	glyphEmpty = ' '
)

// Layout places the board on a screen of a given size.
type Layout struct {
	CellW int       // Terminal columns per grid cell, 2 when there is room
	Board core.Rect // Border box around the grid
	HUDY  int       // Row of the score line
	Fits  bool      // False when the screen cannot hold the board
	NeedW int       // Smallest screen that fits the board
	NeedH int
}

// ComputeLayout centres a gridW x gridH board with its HUD on the screen.
// Cells are drawn two columns wide when that fits, which keeps them roughly
// square in a terminal.
func ComputeLayout(screenW, screenH, gridW, gridH int) Layout {
	l := Layout{
		CellW: 2,
		NeedW: gridW + 2*borderSize,
		NeedH: gridH + 2*borderSize + hudRows,
	}
	if gridW*2+2*borderSize > screenW {
		l.CellW = 1
	}

	boardW := gridW*l.CellW + 2*borderSize
	boardH := gridH + 2*borderSize
	l.Fits = boardW <= screenW && l.NeedH <= screenH

	x := max((screenW-boardW)/2, 0)
	y := max((screenH-l.NeedH)/2, 0) + hudRows
	l.Board = core.NewRect(x, y, boardW, boardH)
	l.HUDY = y - hudRows
	return l
}

// cellX returns the screen column of grid column gx.
func (l Layout) cellX(gx int) int {
	return l.Board.X + borderSize + gx*l.CellW
}

// cellY returns the screen row of grid row gy.
func (l Layout) cellY(gy int) int {
	return l.Board.Y + borderSize + gy
}

// DrawBoard draws a snapshot onto the screen: the HUD, the bordered grid
// with food and snake, and the overlay for the current state.
func DrawBoard(scr *core.Screen, snap snake.Snapshot) {
	scr.Clear()

	l := ComputeLayout(scr.Width(), scr.Height(), snap.GridW, snap.GridH)
	if !l.Fits {
		drawTooSmall(scr, l)
		return
	}

	drawHUD(scr, l, snap)
	scr.DrawBox(l.Board, core.ColorGrid)

	if snap.HasFood {
		drawCell(scr, l, snap.Food, glyphFood, core.ColorFood)
	}
	// Tail first so the head is never hidden by a body segment under it
	for i := len(snap.Body) - 1; i >= 0; i-- {
		c := snap.Body[i]
		if i == 0 {
			drawCell(scr, l, c, glyphHead, core.ColorSnakeHead)
		} else {
			drawCell(scr, l, c, glyphBody, core.ColorSnakeBody)
		}
	}

	drawOverlay(scr, l, snap)
}

func drawCell(scr *core.Screen, l Layout, c core.Cell, r rune, color core.Color) {
	// A head that just left the grid is not drawn over the border
	if c.X < 0 || c.Y < 0 || c.X >= (l.Board.W-2*borderSize)/l.CellW || c.Y >= l.Board.H-2*borderSize {
		return
	}
	x, y := l.cellX(c.X), l.cellY(c.Y)
	for i := range l.CellW {
		g := r
		if r == glyphFood && i > 0 {
			g = glyphEmpty
		}
		scr.SetColored(x+i, y, g, color)
	}
}

func drawHUD(scr *core.Screen, l Layout, snap snake.Snapshot) {
	left := fmt.Sprintf("Score: %d", snap.Score)
	right := fmt.Sprintf("High: %d  Speed: %d", snap.HighScore, config.Level(snap.Speed))

	scr.DrawText(l.Board.X, l.HUDY, left, core.ColorAccent)
	if len(left)+len(right)+2 > l.Board.W {
		scr.DrawText(l.Board.X+len(left)+2, l.HUDY, right, core.ColorText)
		return
	}
	scr.DrawText(l.Board.Right()-len(right), l.HUDY, right, core.ColorText)
}

func drawOverlay(scr *core.Screen, l Layout, snap snake.Snapshot) {
	var lines []string
	switch snap.State {
	case snake.StateStart:
		lines = []string{"S N A K E", "", "Enter or Space to start"}
	case snake.StatePaused:
		lines = []string{"PAUSED", "", "Space to resume"}
	case snake.StateGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d", snap.Score), "", "Enter to play again"}
	case snake.StateWon:
		lines = []string{"YOU WIN!", fmt.Sprintf("Score: %d", snap.Score), "", "Enter to play again"}
	default:
		return
	}

	w := 0
	for _, s := range lines {
		w = max(w, len([]rune(s)))
	}
	box := core.NewRect(0, 0, w+4, len(lines)+2)
	box.X = core.Clamp(l.Board.X+(l.Board.W-box.W)/2, 0, max(scr.Width()-box.W, 0))
	box.Y = core.Clamp(l.Board.Y+(l.Board.H-box.H)/2, 0, max(scr.Height()-box.H, 0))

	scr.FillRect(box, ' ', core.ColorDefault)
	scr.DrawBox(box, core.ColorAlert)
	for i, s := range lines {
		x := box.X + (box.W-len([]rune(s)))/2
		color := core.ColorText
		if i == 0 {
			color = core.ColorAlert
		}
		scr.DrawText(x, box.Y+1+i, s, color)
	}
}

func drawTooSmall(scr *core.Screen, l Layout) {
	y := scr.Height()/2 - 1
	scr.DrawTextCentered(y, "Terminal too small", core.ColorAlert)
	scr.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d, have %dx%d", l.NeedW, l.NeedH, scr.Width(), scr.Height()), core.ColorText)
}
