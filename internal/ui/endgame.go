package ui

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/broadside/internal/game"
	"github.com/samdwyer/broadside/internal/highscore"
)

// EndGame is the match result peer. It records the finished match into
// the score store once, when the player moves on.
type EndGame struct {
	game     *game.Controller
	screen   *Screen
	renderer *Renderer
	scores   *highscore.Store

	recordedSession string
}

// NewEndGame creates the match result peer.
func NewEndGame(g *game.Controller, s *Screen, r *Renderer, scores *highscore.Store) *EndGame {
	return &EndGame{game: g, screen: s, renderer: r, scores: scores}
}

// HandleInput implements game.InputHandler.
func (e *EndGame) HandleInput(ctx context.Context) {
	for _, ev := range drainKeys(e.screen, e.game) {
		switch {
		case ev.Key() == tcell.KeyEnter:
			e.record()
			e.game.SwitchState(game.PhaseHighScores)
		case ev.Key() == tcell.KeyEscape:
			e.record()
			e.game.EndCurrentState()
		}
	}
}

// record saves the match result, at most once per session.
func (e *EndGame) record() {
	session := e.game.Session()
	if e.scores == nil || session == nil || session.ID == e.recordedSession {
		return
	}
	e.recordedSession = session.ID

	human := session.Human()
	e.scores.Add(highscore.Entry{
		Name:  human.Name,
		Shots: human.ShotCount,
		Won:   !human.IsDestroyed(),
		When:  time.Now(),
	})
	if err := e.scores.Save(); err != nil {
		log.Printf("saving scores: %v", err)
	}
}

// Draw implements game.Drawer.
func (e *EndGame) Draw() {
	r := e.renderer
	session := e.game.Session()
	if session == nil {
		return
	}
	human := session.Human()

	headline := "Victory! The enemy fleet is at the bottom of the sea."
	if human.IsDestroyed() {
		headline = "Defeat. Your fleet has been sunk."
	}
	r.DrawText(boardLeft, menuTop, headline, r.accentStyle())
	r.DrawText(boardLeft, menuTop+2,
		fmt.Sprintf("You fired %d shots; the enemy fired %d.",
			human.ShotCount, session.Computer().ShotCount),
		r.textStyle())
	r.DrawText(boardLeft, menuTop+4, "Enter - High scores", r.textStyle())
	r.DrawText(boardLeft, menuTop+5, "Esc   - Main menu", r.textStyle())
	r.DrawStatus(e.game.Message())
}
