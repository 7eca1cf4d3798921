package ui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/broadside/internal/game"
)

// menuTop is the row the first menu line is drawn on.
const menuTop = 6

// drainKeys collects this tick's pending key events, routing Ctrl-C to
// application quit for every phase.
func drainKeys(s *Screen, g *game.Controller) []*tcell.EventKey {
	var keys []*tcell.EventKey
	for {
		ev, ok := s.NextEvent()
		if !ok {
			return keys
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyCtrlC {
				g.Quit()
				return keys
			}
			keys = append(keys, ev)
		case *tcell.EventResize:
			s.Sync()
		}
	}
}

// MainMenu is the opening menu peer.
type MainMenu struct {
	game     *game.Controller
	screen   *Screen
	renderer *Renderer
}

// NewMainMenu creates the main menu peer.
func NewMainMenu(g *game.Controller, s *Screen, r *Renderer) *MainMenu {
	return &MainMenu{game: g, screen: s, renderer: r}
}

// HandleInput implements game.InputHandler.
func (m *MainMenu) HandleInput(ctx context.Context) {
	for _, ev := range drainKeys(m.screen, m.game) {
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q' || ev.Rune() == 'Q':
			// Popping the main menu reveals the Quitting sentinel.
			m.game.EndCurrentState()
		case ev.Rune() == 'n' || ev.Rune() == 'N':
			if err := m.game.StartGame(ctx); err != nil {
				m.game.SetMessage(err.Error())
			}
		case ev.Rune() == 's' || ev.Rune() == 'S':
			m.game.AddNewState(game.PhaseSettings)
		case ev.Rune() == 'h' || ev.Rune() == 'H':
			m.game.AddNewState(game.PhaseHighScores)
		}
	}
}

// Draw implements game.Drawer.
func (m *MainMenu) Draw() {
	r := m.renderer
	r.DrawText(boardLeft, menuTop, "N - New Game", r.textStyle())
	r.DrawText(boardLeft, menuTop+1, "S - Settings", r.textStyle())
	r.DrawText(boardLeft, menuTop+2, "H - High Scores", r.textStyle())
	r.DrawText(boardLeft, menuTop+3, "Q - Quit", r.textStyle())
	r.DrawStatus(m.game.Message())
}

// GameMenu is the in-match menu peer, pushed over the battle phase so
// closing it returns exactly where the player left off.
type GameMenu struct {
	game     *game.Controller
	screen   *Screen
	renderer *Renderer
}

// NewGameMenu creates the in-match menu peer.
func NewGameMenu(g *game.Controller, s *Screen, r *Renderer) *GameMenu {
	return &GameMenu{game: g, screen: s, renderer: r}
}

// HandleInput implements game.InputHandler.
func (m *GameMenu) HandleInput(ctx context.Context) {
	for _, ev := range drainKeys(m.screen, m.game) {
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Rune() == 'r' || ev.Rune() == 'R':
			m.game.EndCurrentState()
		case ev.Rune() == 's' || ev.Rune() == 'S':
			m.game.AddNewState(game.PhaseSettings)
		case ev.Rune() == 'q' || ev.Rune() == 'Q':
			// Pop the menu and the battle beneath it, back to the main menu.
			m.game.EndCurrentState()
			m.game.EndCurrentState()
		}
	}
}

// Draw implements game.Drawer.
func (m *GameMenu) Draw() {
	r := m.renderer
	r.DrawText(boardLeft, menuTop, "Paused", r.accentStyle())
	r.DrawText(boardLeft, menuTop+2, "R - Return to battle", r.textStyle())
	r.DrawText(boardLeft, menuTop+3, "S - Settings", r.textStyle())
	r.DrawText(boardLeft, menuTop+4, "Q - Surrender to main menu", r.textStyle())
}

// Settings is the difficulty settings peer.
type Settings struct {
	game     *game.Controller
	screen   *Screen
	renderer *Renderer
}

// NewSettings creates the settings peer.
func NewSettings(g *game.Controller, s *Screen, r *Renderer) *Settings {
	return &Settings{game: g, screen: s, renderer: r}
}

// HandleInput implements game.InputHandler.
func (m *Settings) HandleInput(ctx context.Context) {
	for _, ev := range drainKeys(m.screen, m.game) {
		switch {
		case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyEnter:
			m.game.EndCurrentState()
		case ev.Rune() == '1':
			m.game.SetDifficulty(game.DifficultyEasy)
		case ev.Rune() == '2':
			m.game.SetDifficulty(game.DifficultyMedium)
		case ev.Rune() == '3':
			m.game.SetDifficulty(game.DifficultyHard)
		}
	}
}

// Draw implements game.Drawer.
func (m *Settings) Draw() {
	r := m.renderer
	r.DrawText(boardLeft, menuTop, "Difficulty", r.accentStyle())
	options := []struct {
		d     game.Difficulty
		label string
	}{
		{game.DifficultyEasy, "1 - Easy"},
		{game.DifficultyMedium, "2 - Medium"},
		{game.DifficultyHard, "3 - Hard"},
	}
	for i, opt := range options {
		style := r.textStyle()
		label := opt.label
		if m.game.Difficulty() == opt.d {
			style = r.accentStyle()
			label = fmt.Sprintf("%s  <", opt.label)
		}
		r.DrawText(boardLeft, menuTop+2+i, label, style)
	}
	r.DrawText(boardLeft, menuTop+6, "Takes effect when the next game starts.", r.textStyle())
	r.DrawText(boardLeft, menuTop+7, "Esc - Back", r.textStyle())
}
