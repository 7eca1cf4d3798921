package ai

import (
	"math/rand"

	"github.com/samdwyer/broadside/internal/board"
)

// Hard hunts on checkerboard parity (every ship spans at least two cells,
// so half the board never needs probing) and, once two hits line up,
// locks onto the ship's axis and extends the line until it sinks.
type Hard struct {
	rng *rand.Rand
}

// NewHard creates the hard-difficulty strategy.
func NewHard(rng *rand.Rand) *Hard {
	return &Hard{rng: rng}
}

// Name implements Strategy.
func (h *Hard) Name() string { return "hard" }

// ChooseShot implements Strategy.
func (h *Hard) ChooseShot(target *board.Grid) (int, int) {
	if hits := openHits(target); len(hits) > 0 {
		if cells := lineExtensions(target, hits); len(cells) > 0 {
			return pick(h.rng, cells)
		}
		if cells := untriedNeighbors(target, hits); len(cells) > 0 {
			return pick(h.rng, cells)
		}
	}

	if cells := untriedCells(target, func(r, c int) bool { return (r+c)%2 == 0 }); len(cells) > 0 {
		return pick(h.rng, cells)
	}
	return pick(h.rng, untriedCells(target, nil))
}

// lineExtensions returns untried cells that extend a straight run of two
// or more open hits, at either end of the run.
func lineExtensions(target *board.Grid, hits [][2]int) [][2]int {
	open := func(r, c int) bool {
		return target.HitAt(r, c) && !target.SunkAt(r, c)
	}

	var out [][2]int
	seen := make(map[[2]int]bool)
	axes := [2][2]int{{0, 1}, {1, 0}}

	for _, hit := range hits {
		for _, d := range axes {
			r, c := hit[0], hit[1]
			// Only runs of length >= 2 qualify as an axis lock.
			if !open(r+d[0], c+d[1]) && !open(r-d[0], c-d[1]) {
				continue
			}
			for _, sign := range [2]int{1, -1} {
				er, ec := r, c
				for open(er+sign*d[0], ec+sign*d[1]) {
					er += sign * d[0]
					ec += sign * d[1]
				}
				er += sign * d[0]
				ec += sign * d[1]
				key := [2]int{er, ec}
				if target.InBounds(er, ec) && !target.Tried(er, ec) && !seen[key] {
					seen[key] = true
					out = append(out, key)
				}
			}
		}
	}
	return out
}
