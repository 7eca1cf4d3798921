// Package entity provides the two participants of a match: the human
// player and the computer opponent.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/broadside/internal/ai"
	"github.com/samdwyer/broadside/internal/board"
)

// Player is one side of a match. The grid is exclusively owned by its
// player; opponents only ever reach it through the session's shot path.
type Player struct {
	ID        string
	Name      string
	Grid      *board.Grid
	Strategy  ai.Strategy // targeting strategy; nil for the human role
	ShotCount int         // shots fired by this player (rejected shots excluded)
}

// NewPlayer creates a human player with an empty grid.
func NewPlayer(name string, gridSize int) *Player {
	return &Player{
		ID:   uuid.NewString(),
		Name: name,
		Grid: board.NewGrid(gridSize),
	}
}

// NewComputer creates a computer player driven by the given strategy.
func NewComputer(name string, gridSize int, strategy ai.Strategy) *Player {
	p := NewPlayer(name, gridSize)
	p.Strategy = strategy
	return p
}

// IsComputer reports whether this player is the computer role.
func (p *Player) IsComputer() bool { return p.Strategy != nil }

// IsDestroyed reports whether the player's entire fleet has been sunk.
func (p *Player) IsDestroyed() bool { return p.Grid.AllSunk() }
