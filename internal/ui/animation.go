package ui

import "github.com/gdamore/tcell/v2"

// ticksPerFrame slows animations relative to the host tick rate.
const ticksPerFrame = 3

// animation is a transient cell effect: a frame sequence played at one
// board cell and discarded when exhausted.
type animation struct {
	row, col int
	frames   []rune
	style    tcell.Style
	tick     int
}

func newExplosion(row, col int, style tcell.Style) *animation {
	return &animation{
		row:    row,
		col:    col,
		frames: []rune{'*', 'X', '#', '+'},
		style:  style,
	}
}

func newSplash(row, col int, style tcell.Style) *animation {
	return &animation{
		row:    row,
		col:    col,
		frames: []rune{'o', 'O', '~'},
		style:  style,
	}
}

// advance moves the animation forward one tick; it returns false once the
// frame sequence is exhausted.
func (a *animation) advance() bool {
	a.tick++
	return a.tick < len(a.frames)*ticksPerFrame
}

// frame returns the current frame rune.
func (a *animation) frame() rune {
	i := a.tick / ticksPerFrame
	if i >= len(a.frames) {
		i = len(a.frames) - 1
	}
	return a.frames[i]
}
