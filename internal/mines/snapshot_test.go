package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsACopy(t *testing.T) {
	t.Parallel()

	game := &GameState{
		GameParams: GameParams{Width: 2, Height: 1, MineCount: 1},
		Mines:      []bool{true, false},
		PlayerGrid: Grid{Unknown, CellState(1)},
	}

	s := game.Snapshot()
	game.PlayerGrid[0] = Flagged

	assert.Equal(t, Unknown, s.Cells[0])
	assert.Equal(t, 2, s.Width)
	assert.Equal(t, 1, s.Height)
}

func TestSnapshotStatusOf(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Width:  2,
		Height: 2,
		Cells:  Grid{Unknown, Flagged, CellState(3), Question},
	}

	assert.Equal(t, Hidden, s.StatusOf(0, 0))
	assert.Equal(t, FlaggedCell, s.StatusOf(1, 0))
	assert.Equal(t, Revealed, s.StatusOf(0, 1))
	// question marks count as hidden for deduction purposes
	assert.Equal(t, Hidden, s.StatusOf(1, 1))
}

func TestSnapshotCountOf(t *testing.T) {
	t.Parallel()

	s := Snapshot{
		Width:  2,
		Height: 2,
		Cells:  Grid{Unknown, Flagged, CellState(0), CellState(8)},
	}

	count, err := s.CountOf(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	count, err = s.CountOf(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 8, count)

	_, err = s.CountOf(0, 0)
	assert.ErrorIs(t, err, ErrInvalidState)

	_, err = s.CountOf(1, 0)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestSnapshotNeighbors(t *testing.T) {
	t.Parallel()

	s := Snapshot{Width: 3, Height: 3, Cells: make(Grid, 9)}

	assert.Equal(t, []Pos{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}, s.Neighbors(1, 1))

	// corners clip to three neighbors
	assert.Equal(t, []Pos{{1, 0}, {0, 1}, {1, 1}}, s.Neighbors(0, 0))
	assert.Equal(t, []Pos{{1, 1}, {2, 1}, {1, 2}}, s.Neighbors(2, 2))
}

func TestCellStateString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, " ", Unknown.String())
	assert.Equal(t, "*", Flagged.String())
	assert.Equal(t, "?", Question.String())
	assert.Equal(t, "5", CellState(5).String())
	assert.Equal(t, "!", ExplodedMine.String())
}
