package mines

// Pos is a cell position, x column and y row, zero-based.
type Pos struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Snapshot is a read-only view of the player's knowledge of the board:
// cell statuses and revealed counts, no mine positions. It is what the
// solver consumes. A snapshot is taken fresh for every deduction call
// and never mutated.
type Snapshot struct {
	Width, Height int
	Cells         Grid
}

func (s *GameState) Snapshot() Snapshot {
	cells := make(Grid, len(s.PlayerGrid))
	copy(cells, s.PlayerGrid)
	return Snapshot{
		Width:  s.Width,
		Height: s.Height,
		Cells:  cells,
	}
}

func (s Snapshot) InBounds(x, y int) bool {
	return 0 <= x && x < s.Width && 0 <= y && y < s.Height
}

func (s Snapshot) StatusOf(x, y int) CellStatus {
	return s.Cells[y*s.Width+x].Status()
}

// CountOf returns the revealed mine count of a cell. Asking for the
// count of a hidden or flagged cell is a contract violation and returns
// [ErrInvalidState].
func (s Snapshot) CountOf(x, y int) (int, error) {
	c := s.Cells[y*s.Width+x]
	if c.Status() != Revealed {
		return 0, ErrInvalidState
	}
	return int(c), nil
}

// Neighbors returns the positions of the up to 8 cells adjacent to
// (x, y), clipped to the board, in row-major order.
func (s Snapshot) Neighbors(x, y int) []Pos {
	ns := make([]Pos, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if s.InBounds(x+dx, y+dy) {
				ns = append(ns, Pos{x + dx, y + dy})
			}
		}
	}
	return ns
}
