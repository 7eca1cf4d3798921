package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/broadside/internal/board"
	"github.com/samdwyer/broadside/internal/gamedata"
)

// Board layout constants. Cells are two characters wide so the grid reads
// roughly square in a terminal.
const (
	boardLeft = 3
	boardTop  = 4
	cellWidth = 2
	gridGap   = 8
)

// ownGridOrigin is the screen position of the player's own grid.
func ownGridOrigin() (x, y int) { return boardLeft, boardTop }

// targetGridOrigin is the screen position of the enemy grid during battle.
// Queued shot animations are drawn relative to it.
func targetGridOrigin(size int) (x, y int) {
	return boardLeft + size*cellWidth + gridGap, boardTop
}

// Renderer draws the game to the screen and carries the in-flight shot
// animations. It implements the core's Presenter surface.
type Renderer struct {
	screen    *Screen
	theme     gamedata.Theme
	anims     []*animation
	gridSize  int
	needsSync bool
}

// NewRenderer creates a renderer for the given screen and theme.
func NewRenderer(screen *Screen, theme gamedata.Theme, gridSize int) *Renderer {
	return &Renderer{screen: screen, theme: theme, gridSize: gridSize}
}

// DrawBackground paints the sea backdrop and the title bar.
func (r *Renderer) DrawBackground() {
	r.screen.Fill(' ', tcell.StyleDefault.Background(r.theme.Water))
	w, _ := r.screen.Size()
	title := " BROADSIDE "
	r.DrawText((w-len(title))/2, 0, title,
		tcell.StyleDefault.Background(r.theme.Accent).Foreground(tcell.ColorBlack).Bold(true))
}

// AddExplosion queues an impact animation at an enemy-grid cell.
func (r *Renderer) AddExplosion(row, col int) {
	style := tcell.StyleDefault.Background(r.theme.Water).Foreground(r.theme.Hit).Bold(true)
	r.anims = append(r.anims, newExplosion(row, col, style))
}

// AddSplash queues a splash animation at an enemy-grid cell.
func (r *Renderer) AddSplash(row, col int) {
	style := tcell.StyleDefault.Background(r.theme.Water).Foreground(r.theme.Miss)
	r.anims = append(r.anims, newSplash(row, col, style))
}

// UpdateAnimations advances in-flight animations and drops finished ones.
func (r *Renderer) UpdateAnimations() {
	alive := r.anims[:0]
	for _, a := range r.anims {
		if a.advance() {
			alive = append(alive, a)
		}
	}
	r.anims = alive
}

// DrawAnimations draws in-flight animations over the enemy grid.
func (r *Renderer) DrawAnimations() {
	ox, oy := targetGridOrigin(r.gridSize)
	for _, a := range r.anims {
		r.screen.SetContent(ox+a.col*cellWidth, oy+a.row, a.frame(), a.style)
	}
}

// Present flushes the composed frame, forcing a full redraw when the
// surface was invalidated by a grid mutation.
func (r *Renderer) Present() {
	if r.needsSync {
		r.needsSync = false
		r.screen.Sync()
		return
	}
	r.screen.Show()
}

// Invalidate marks the surface stale; the next Present does a full sync.
func (r *Renderer) Invalidate() {
	r.needsSync = true
}

// DrawText draws a string at the given position.
func (r *Renderer) DrawText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

// textStyle is the default body text style.
func (r *Renderer) textStyle() tcell.Style {
	return tcell.StyleDefault.Background(r.theme.Water).Foreground(r.theme.Text)
}

// accentStyle highlights headings and selections.
func (r *Renderer) accentStyle() tcell.Style {
	return tcell.StyleDefault.Background(r.theme.Water).Foreground(r.theme.Accent).Bold(true)
}

// DrawStatus draws the transient status message beneath the boards.
func (r *Renderer) DrawStatus(msg string) {
	if msg == "" {
		return
	}
	_, h := r.screen.Size()
	r.DrawText(boardLeft, h-2, msg, r.textStyle())
}

// DrawOwnGrid draws a grid from the owner's view: ships visible, enemy
// shots marked.
func (r *Renderer) DrawOwnGrid(g *board.Grid, x, y int) {
	r.drawGridFrame(g, x, y)
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			ch := ' '
			style := r.textStyle()
			switch {
			case g.HitAt(row, col):
				ch, style = 'X', style.Foreground(r.theme.Hit).Bold(true)
			case g.Tried(row, col):
				ch, style = '.', style.Foreground(r.theme.Miss)
			case g.ShipAt(row, col) != nil:
				ch, style = '#', style.Foreground(r.theme.Ship)
			}
			r.screen.SetContent(x+col*cellWidth, y+row, ch, style)
		}
	}
}

// DrawTargetGrid draws a grid from the attacker's view: only shot history
// is revealed. A negative cursor row hides the cursor.
func (r *Renderer) DrawTargetGrid(g *board.Grid, x, y, cursorRow, cursorCol int) {
	r.drawGridFrame(g, x, y)
	for row := 0; row < g.Size(); row++ {
		for col := 0; col < g.Size(); col++ {
			ch := ' '
			style := r.textStyle()
			switch {
			case g.SunkAt(row, col):
				ch, style = '#', style.Foreground(r.theme.Hit).Bold(true)
			case g.HitAt(row, col):
				ch, style = 'X', style.Foreground(r.theme.Hit)
			case g.Tried(row, col):
				ch, style = '.', style.Foreground(r.theme.Miss)
			}
			if row == cursorRow && col == cursorCol {
				style = style.Background(r.theme.Cursor).Foreground(tcell.ColorBlack)
				if ch == ' ' {
					ch = '+'
				}
			}
			r.screen.SetContent(x+col*cellWidth, y+row, ch, style)
		}
	}
}

// drawGridFrame draws row letters and column numbers around a grid.
func (r *Renderer) drawGridFrame(g *board.Grid, x, y int) {
	style := r.textStyle().Foreground(r.theme.Accent)
	for row := 0; row < g.Size(); row++ {
		r.screen.SetContent(x-2, y+row, rune('A'+row), style)
	}
	for col := 0; col < g.Size(); col++ {
		label := fmt.Sprintf("%d", col+1)
		r.DrawText(x+col*cellWidth, y-1, label, style)
	}
}
