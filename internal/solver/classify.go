package solver

import "github.com/ashabalin/autosweeper/internal/mines"

// neighborhood is the partition of a revealed cell's neighbors by
// status. hidden keeps row-major order; for the flagged and revealed
// parts only the tallies matter.
type neighborhood struct {
	flagged  int
	revealed int
	hidden   []mines.Pos
}

func classify(s mines.Snapshot, x, y int) (neighborhood, error) {
	if s.StatusOf(x, y) != mines.Revealed {
		return neighborhood{}, mines.ErrInvalidState
	}
	var nb neighborhood
	for _, p := range s.Neighbors(x, y) {
		switch s.StatusOf(p.X, p.Y) {
		case mines.FlaggedCell:
			nb.flagged++
		case mines.Revealed:
			nb.revealed++
		default:
			nb.hidden = append(nb.hidden, p)
		}
	}
	return nb, nil
}
