package ai

import (
	"math/rand"

	"github.com/samdwyer/broadside/internal/board"
)

// Medium hunts at random until it hits something, then works through the
// untried neighbors of any open hit until the ship goes down.
type Medium struct {
	rng *rand.Rand
}

// NewMedium creates the medium-difficulty strategy.
func NewMedium(rng *rand.Rand) *Medium {
	return &Medium{rng: rng}
}

// Name implements Strategy.
func (m *Medium) Name() string { return "medium" }

// ChooseShot implements Strategy.
func (m *Medium) ChooseShot(target *board.Grid) (int, int) {
	if hits := openHits(target); len(hits) > 0 {
		if cells := untriedNeighbors(target, hits); len(cells) > 0 {
			return pick(m.rng, cells)
		}
	}
	return pick(m.rng, untriedCells(target, nil))
}
