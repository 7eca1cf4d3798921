package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/broadside/internal/game"
)

// Deployment is the fleet placement peer. Placement itself is randomized;
// the player re-rolls until the layout suits them, then locks it in.
type Deployment struct {
	game     *game.Controller
	screen   *Screen
	renderer *Renderer
}

// NewDeployment creates the deployment peer.
func NewDeployment(g *game.Controller, s *Screen, r *Renderer) *Deployment {
	return &Deployment{game: g, screen: s, renderer: r}
}

// HandleInput implements game.InputHandler.
func (d *Deployment) HandleInput(ctx context.Context) {
	for _, ev := range drainKeys(d.screen, d.game) {
		switch {
		case ev.Rune() == 'r' || ev.Rune() == 'R':
			if err := d.game.RandomizeDeployment(); err != nil {
				d.game.SetMessage(err.Error())
			}
		case ev.Key() == tcell.KeyEnter || ev.Rune() == 'd' || ev.Rune() == 'D':
			d.game.EndDeployment()
		case ev.Key() == tcell.KeyEscape:
			// Abandon the fresh match, back to the main menu.
			d.game.EndCurrentState()
		}
	}
}

// Draw implements game.Drawer.
func (d *Deployment) Draw() {
	r := d.renderer
	human := d.game.HumanPlayer()
	if human == nil {
		return
	}

	r.DrawText(boardLeft, 2, "Deploy your fleet", r.accentStyle())
	ox, oy := ownGridOrigin()
	r.DrawOwnGrid(human.Grid, ox, oy)

	infoX := ox + human.Grid.Size()*cellWidth + gridGap
	r.DrawText(infoX, boardTop, "R     - Shuffle placement", r.textStyle())
	r.DrawText(infoX, boardTop+1, "Enter - Begin battle", r.textStyle())
	r.DrawText(infoX, boardTop+2, "Esc   - Abandon game", r.textStyle())
	r.DrawStatus(d.game.Message())
}
