// Package board provides the battleship grid model: ship placement,
// shot resolution, and the attacker's view of a target grid.
package board

import "fmt"

// Outcome classifies the result of a single shot.
type Outcome int

const (
	// OutcomeMiss - the shot landed in open water.
	OutcomeMiss Outcome = iota
	// OutcomeHit - the shot struck a ship without sinking it.
	OutcomeHit
	// OutcomeDestroyed - the shot sank a ship.
	OutcomeDestroyed
	// OutcomeShotAlready - the cell was targeted before; the shot is rejected.
	OutcomeShotAlready
	// OutcomeGameOver - the shot sank the defender's last ship.
	OutcomeGameOver
)

// String returns a machine-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeDestroyed:
		return "destroyed"
	case OutcomeShotAlready:
		return "shot_already"
	case OutcomeGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// AttackResult is the immutable record of a resolved shot: the targeted
// cell, what happened there, and the name of the ship involved when one
// was sunk.
type AttackResult struct {
	Row     int
	Col     int
	Outcome Outcome
	Ship    string // name of the sunk ship for Destroyed/GameOver, else ""
}

// Cell returns the targeted cell in battleship notation (e.g., "B4").
func (r AttackResult) Cell() string {
	if r.Row < 0 || r.Row >= 26 {
		return fmt.Sprintf("(%d,%d)", r.Row, r.Col)
	}
	return fmt.Sprintf("%c%d", rune('A'+r.Row), r.Col+1)
}
