package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/broadside/internal/game"
	"github.com/samdwyer/broadside/internal/highscore"
)

// scoreRows is how many entries the score table shows.
const scoreRows = 10

// HighScores is the score table peer.
type HighScores struct {
	game     *game.Controller
	screen   *Screen
	renderer *Renderer
	scores   *highscore.Store
}

// NewHighScores creates the score table peer.
func NewHighScores(g *game.Controller, s *Screen, r *Renderer, scores *highscore.Store) *HighScores {
	return &HighScores{game: g, screen: s, renderer: r, scores: scores}
}

// HandleInput implements game.InputHandler.
func (h *HighScores) HandleInput(ctx context.Context) {
	for _, ev := range drainKeys(h.screen, h.game) {
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter {
			h.game.EndCurrentState()
		}
	}
}

// Draw implements game.Drawer.
func (h *HighScores) Draw() {
	r := h.renderer
	r.DrawText(boardLeft, menuTop, "High Scores - fewest shots to win", r.accentStyle())

	var top []highscore.Entry
	if h.scores != nil {
		top = h.scores.Top(scoreRows)
	}
	if len(top) == 0 {
		r.DrawText(boardLeft, menuTop+2, "No victories recorded yet.", r.textStyle())
	}
	for i, e := range top {
		line := fmt.Sprintf("%2d. %-12s %3d shots  %s",
			i+1, e.Name, e.Shots, e.When.Format("2006-01-02"))
		r.DrawText(boardLeft, menuTop+2+i, line, r.textStyle())
	}
	r.DrawText(boardLeft, menuTop+4+len(top), "Esc - Back", r.textStyle())
}
