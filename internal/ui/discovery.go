package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/broadside/internal/game"
)

// Discovery is the battle phase peer: it owns the targeting cursor and
// forwards fire commands into the core. Whose turn it is never lives
// here; the session decides whether a fire command is accepted.
type Discovery struct {
	game     *game.Controller
	screen   *Screen
	renderer *Renderer

	cursorRow int
	cursorCol int
}

// NewDiscovery creates the battle peer.
func NewDiscovery(g *game.Controller, s *Screen, r *Renderer) *Discovery {
	return &Discovery{game: g, screen: s, renderer: r}
}

// HandleInput implements game.InputHandler.
func (d *Discovery) HandleInput(ctx context.Context) {
	size := 0
	if human := d.game.HumanPlayer(); human != nil {
		size = human.Grid.Size()
	}

	for _, ev := range drainKeys(d.screen, d.game) {
		switch {
		case ev.Key() == tcell.KeyEscape:
			d.game.AddNewState(game.PhaseGameMenu)
		case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
			d.moveCursor(-1, 0, size)
		case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
			d.moveCursor(1, 0, size)
		case ev.Key() == tcell.KeyLeft || ev.Rune() == 'h':
			d.moveCursor(0, -1, size)
		case ev.Key() == tcell.KeyRight || ev.Rune() == 'l':
			d.moveCursor(0, 1, size)
		case ev.Key() == tcell.KeyEnter || ev.Rune() == ' ':
			d.game.Attack(ctx, d.cursorRow, d.cursorCol)
		}
	}
}

// moveCursor clamps the targeting cursor to the grid.
func (d *Discovery) moveCursor(dr, dc, size int) {
	if size == 0 {
		return
	}
	d.cursorRow = clamp(d.cursorRow+dr, 0, size-1)
	d.cursorCol = clamp(d.cursorCol+dc, 0, size-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Draw implements game.Drawer.
func (d *Discovery) Draw() {
	r := d.renderer
	session := d.game.Session()
	if session == nil {
		return
	}
	human := session.Human()
	computer := session.Computer()

	ox, oy := ownGridOrigin()
	tx, ty := targetGridOrigin(human.Grid.Size())

	r.DrawText(ox, 2, "Your fleet", r.accentStyle())
	r.DrawOwnGrid(human.Grid, ox, oy)

	r.DrawText(tx, 2, "Enemy waters", r.accentStyle())
	r.DrawTargetGrid(computer.Grid, tx, ty, d.cursorRow, d.cursorCol)

	// The computer's salvo resolves inside the human's fire command, so by
	// draw time it is always the human's move.
	r.DrawText(ox, oy+human.Grid.Size()+1,
		"Your move - arrows aim, Enter fires, Esc pauses", r.textStyle())
	r.DrawText(ox, oy+human.Grid.Size()+2,
		fmt.Sprintf("Shots: you %d, enemy %d", human.ShotCount, computer.ShotCount),
		r.textStyle())
	r.DrawStatus(d.game.Message())
}
