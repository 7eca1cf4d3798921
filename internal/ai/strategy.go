// Package ai provides computer targeting strategies for battleship.
//
// A strategy reads the attacker's view of the target grid (tried cells,
// hits, sunk ships) and proposes the next shot. Strategies never propose
// a cell that has already been tried: the controller fires AI shots
// synchronously and a rejected shot would stall the computer's turn.
package ai

import (
	"math/rand"

	"github.com/samdwyer/broadside/internal/board"
)

// Strategy chooses the computer's next shot against a target grid.
type Strategy interface {
	// Name identifies the strategy for telemetry and tests.
	Name() string
	// ChooseShot returns an untried cell on the target grid.
	ChooseShot(target *board.Grid) (row, col int)
}

// neighbors are the four orthogonally adjacent offsets.
var neighbors = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// openHits returns cells that are hits on ships not yet sunk. These are
// the leads a targeting strategy follows up on.
func openHits(target *board.Grid) [][2]int {
	var hits [][2]int
	for r := 0; r < target.Size(); r++ {
		for c := 0; c < target.Size(); c++ {
			if target.HitAt(r, c) && !target.SunkAt(r, c) {
				hits = append(hits, [2]int{r, c})
			}
		}
	}
	return hits
}

// untriedNeighbors returns the untried cells orthogonally adjacent to any
// of the given cells.
func untriedNeighbors(target *board.Grid, cells [][2]int) [][2]int {
	var out [][2]int
	seen := make(map[[2]int]bool)
	for _, cell := range cells {
		for _, d := range neighbors {
			r, c := cell[0]+d[0], cell[1]+d[1]
			key := [2]int{r, c}
			if target.InBounds(r, c) && !target.Tried(r, c) && !seen[key] {
				seen[key] = true
				out = append(out, key)
			}
		}
	}
	return out
}

// untriedCells returns every untried cell for which keep returns true.
// A nil keep accepts all cells.
func untriedCells(target *board.Grid, keep func(r, c int) bool) [][2]int {
	var out [][2]int
	for r := 0; r < target.Size(); r++ {
		for c := 0; c < target.Size(); c++ {
			if !target.Tried(r, c) && (keep == nil || keep(r, c)) {
				out = append(out, [2]int{r, c})
			}
		}
	}
	return out
}

// pick returns a random element of cells.
func pick(rng *rand.Rand, cells [][2]int) (int, int) {
	cell := cells[rng.Intn(len(cells))]
	return cell[0], cell[1]
}
