package board

import (
	"fmt"
	"math/rand"
)

// DefaultSize is the classic 10x10 battleship grid.
const DefaultSize = 10

// placementAttempts bounds the random search in PlaceFleet.
const placementAttempts = 1000

// Grid is one player's sea: placed ships plus the record of every shot
// taken against it. A Grid is exclusively owned by its player and is not
// safe for concurrent use.
type Grid struct {
	size     int
	ships    []*Ship
	occupant [][]*Ship // nil = open water
	tried    [][]bool
}

// NewGrid creates an empty grid of the given size (DefaultSize if size <= 0).
func NewGrid(size int) *Grid {
	if size <= 0 {
		size = DefaultSize
	}
	g := &Grid{size: size}
	g.occupant = make([][]*Ship, size)
	g.tried = make([][]bool, size)
	for i := 0; i < size; i++ {
		g.occupant[i] = make([]*Ship, size)
		g.tried[i] = make([]bool, size)
	}
	return g
}

// Size returns the grid edge length.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// Ships returns the placed ships.
func (g *Grid) Ships() []*Ship { return g.ships }

// PlaceShip places a ship at the given anchor cell and orientation.
// It fails if any cell would fall off the grid or overlap another ship.
func (g *Grid) PlaceShip(spec ShipSpec, row, col int, horizontal bool) error {
	ship := &Ship{
		Name:       spec.Name,
		Length:     spec.Length,
		Row:        row,
		Col:        col,
		Horizontal: horizontal,
	}

	for i := 0; i < ship.Length; i++ {
		r, c := ship.CellAt(i)
		if !g.InBounds(r, c) {
			return fmt.Errorf("ship %s at (%d,%d): cell (%d,%d) off the grid", spec.Name, row, col, r, c)
		}
		if g.occupant[r][c] != nil {
			return fmt.Errorf("ship %s at (%d,%d): cell (%d,%d) overlaps %s", spec.Name, row, col, r, c, g.occupant[r][c].Name)
		}
	}

	for i := 0; i < ship.Length; i++ {
		r, c := ship.CellAt(i)
		g.occupant[r][c] = ship
	}
	g.ships = append(g.ships, ship)
	return nil
}

// PlaceFleet clears the grid and places the whole fleet at random valid
// positions. Shot history is discarded along with any previous placement.
func (g *Grid) PlaceFleet(rng *rand.Rand, fleet []ShipSpec) error {
	g.clear()
	for _, spec := range fleet {
		placed := false
		for attempt := 0; attempt < placementAttempts; attempt++ {
			row := rng.Intn(g.size)
			col := rng.Intn(g.size)
			horizontal := rng.Intn(2) == 0
			if g.PlaceShip(spec, row, col, horizontal) == nil {
				placed = true
				break
			}
		}
		if !placed {
			return fmt.Errorf("no room for ship %s (length %d) on a %dx%d grid", spec.Name, spec.Length, g.size, g.size)
		}
	}
	return nil
}

// clear removes all ships and shot history.
func (g *Grid) clear() {
	g.ships = nil
	for r := 0; r < g.size; r++ {
		for c := 0; c < g.size; c++ {
			g.occupant[r][c] = nil
			g.tried[r][c] = false
		}
	}
}

// Shoot resolves a shot against this grid. Repeated or out-of-bounds
// shots are rejected as OutcomeShotAlready and mutate nothing.
//
// Shoot never returns OutcomeGameOver itself; upgrading the final hit is
// session-level policy (the grid does not know it is the last one standing).
func (g *Grid) Shoot(row, col int) AttackResult {
	result := AttackResult{Row: row, Col: col}

	if !g.InBounds(row, col) || g.tried[row][col] {
		result.Outcome = OutcomeShotAlready
		return result
	}
	g.tried[row][col] = true

	ship := g.occupant[row][col]
	if ship == nil {
		result.Outcome = OutcomeMiss
		return result
	}

	ship.hits++
	if ship.IsSunk() {
		result.Outcome = OutcomeDestroyed
		result.Ship = ship.Name
	} else {
		result.Outcome = OutcomeHit
	}
	return result
}

// AllSunk reports whether every placed ship has been sunk. An empty grid
// is never "all sunk" so an undeployed player cannot lose.
func (g *Grid) AllSunk() bool {
	if len(g.ships) == 0 {
		return false
	}
	for _, s := range g.ships {
		if !s.IsSunk() {
			return false
		}
	}
	return true
}

// Tried reports whether the cell has been shot at.
func (g *Grid) Tried(row, col int) bool {
	return g.InBounds(row, col) && g.tried[row][col]
}

// HitAt reports whether a tried cell held a ship. This is the attacker's
// view: it reveals nothing about untried cells.
func (g *Grid) HitAt(row, col int) bool {
	return g.Tried(row, col) && g.occupant[row][col] != nil
}

// SunkAt reports whether the cell belongs to a ship that has been sunk.
func (g *Grid) SunkAt(row, col int) bool {
	return g.HitAt(row, col) && g.occupant[row][col].IsSunk()
}

// ShipAt returns the ship occupying the cell, or nil. Owner's view only;
// attackers should use Tried/HitAt/SunkAt.
func (g *Grid) ShipAt(row, col int) *Ship {
	if !g.InBounds(row, col) {
		return nil
	}
	return g.occupant[row][col]
}
