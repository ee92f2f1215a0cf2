package core

// Color is a foreground colour for a screen glyph.
// The platform maps it to an ANSI 256-colour code.
type Color uint8

// Colours used by the board renderer.
const (
	ColorDefault Color = iota
	ColorSnakeHead
	ColorSnakeBody
	ColorFood
	ColorGrid
	ColorText
	ColorAlert
	ColorAccent
)
