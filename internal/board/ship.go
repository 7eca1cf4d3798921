package board

// ShipSpec names a ship class to be placed on a grid.
type ShipSpec struct {
	Name   string
	Length int
}

// Ship is a placed ship: its anchor cell, orientation, and accumulated hits.
type Ship struct {
	Name       string
	Length     int
	Row, Col   int // anchor cell (topmost/leftmost)
	Horizontal bool
	hits       int
}

// Hits returns the number of cells of this ship that have been hit.
func (s *Ship) Hits() int { return s.hits }

// IsSunk returns true once every cell of the ship has been hit.
func (s *Ship) IsSunk() bool { return s.hits >= s.Length }

// CellAt returns the grid coordinates of the ship's i-th cell.
func (s *Ship) CellAt(i int) (row, col int) {
	if s.Horizontal {
		return s.Row, s.Col + i
	}
	return s.Row + i, s.Col
}
