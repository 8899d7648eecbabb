package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashabalin/autosweeper/internal/mines"
)

// parseSnapshot builds a board from rows of cell runes: '#' hidden,
// '*' flagged, '0'-'8' revealed with that count.
func parseSnapshot(t *testing.T, rows ...string) mines.Snapshot {
	t.Helper()
	height := len(rows)
	width := len(rows[0])
	cells := make(mines.Grid, 0, width*height)
	for _, row := range rows {
		require.Len(t, row, width)
		for _, ch := range row {
			switch {
			case ch == '#':
				cells = append(cells, mines.Unknown)
			case ch == '*':
				cells = append(cells, mines.Flagged)
			case '0' <= ch && ch <= '8':
				cells = append(cells, mines.CellState(ch-'0'))
			default:
				t.Fatalf("unexpected cell rune %q", ch)
			}
		}
	}
	return mines.Snapshot{Width: width, Height: height, Cells: cells}
}

func TestSafeReveal(t *testing.T) {
	t.Parallel()

	// all mines around the 1 are accounted for by the flag
	s := parseSnapshot(t, "*1#")

	move, err := Propose(s)
	require.NoError(t, err)
	assert.Equal(t, Move{X: 2, Y: 0, Kind: Reveal}, move)
}

func TestForcedFlag(t *testing.T) {
	t.Parallel()

	// the single hidden neighbor must hold the single remaining mine
	s := parseSnapshot(t, "1#")

	move, err := Propose(s)
	require.NoError(t, err)
	assert.Equal(t, Move{X: 1, Y: 0, Kind: Flag}, move)
}

func TestSafeRevealCenterCount1(t *testing.T) {
	t.Parallel()

	s := parseSnapshot(t,
		"*##",
		"#1#",
		"###",
	)

	move, err := Propose(s)
	require.NoError(t, err)
	assert.Equal(t, Reveal, move.Kind)
	assert.False(t, move.Guess)
	// first hidden neighbor of the 1 in row-major order
	assert.Equal(t, 1, move.X)
	assert.Equal(t, 0, move.Y)
	assert.Equal(t, mines.Hidden, s.StatusOf(move.X, move.Y))
}

func TestSafeRevealCenterCount2(t *testing.T) {
	t.Parallel()

	s := parseSnapshot(t,
		"**#",
		"#2#",
		"###",
	)

	move, err := Propose(s)
	require.NoError(t, err)
	assert.Equal(t, Reveal, move.Kind)
	assert.Equal(t, 2, move.X)
	assert.Equal(t, 0, move.Y)
}

func TestForcedFlagCount3(t *testing.T) {
	t.Parallel()

	// F=1 and H=2 around the 3, so both hidden cells are mines
	s := parseSnapshot(t,
		"*3#",
		"00#",
		"000",
	)

	move, err := Propose(s)
	require.NoError(t, err)
	assert.Equal(t, Flag, move.Kind)
	assert.Equal(t, 2, move.X)
	assert.Equal(t, 0, move.Y)
	assert.Equal(t, mines.Hidden, s.StatusOf(move.X, move.Y))
}

func TestFirstMatchWins(t *testing.T) {
	t.Parallel()

	// the forced-flag at the leftmost 1 fires before the safe-reveal
	// at the 1 further right
	s := parseSnapshot(t, "1#*1#")

	move, err := Propose(s)
	require.NoError(t, err)
	assert.Equal(t, Flag, move.Kind)
	assert.Equal(t, 1, move.X)
	assert.Equal(t, 0, move.Y)
}

func TestFallbackGuess(t *testing.T) {
	t.Parallel()

	// neither rule can resolve a lone 1 with 8 hidden neighbors
	s := parseSnapshot(t,
		"###",
		"#1#",
		"###",
	)

	move, err := Propose(s)
	require.NoError(t, err)
	assert.Equal(t, Move{X: 0, Y: 0, Kind: Reveal, Guess: true}, move)
}

func TestNoMovesOnResolvedBoard(t *testing.T) {
	t.Parallel()

	s := parseSnapshot(t,
		"11",
		"*1",
	)

	_, err := Propose(s)
	assert.ErrorIs(t, err, ErrNoMoves)
}

func TestProposeIsDeterministic(t *testing.T) {
	t.Parallel()

	boards := [][]string{
		{"*1#"},
		{"1#"},
		{"###", "#1#", "###"},
		{"*##", "#1#", "###"},
	}
	for _, rows := range boards {
		s := parseSnapshot(t, rows...)
		first, err := Propose(s)
		require.NoError(t, err)
		for range 10 {
			move, err := Propose(s)
			require.NoError(t, err)
			assert.Equal(t, first, move)
		}
	}
}

func TestProposeDoesNotMutate(t *testing.T) {
	t.Parallel()

	s := parseSnapshot(t, "*1#", "###")
	before := make(mines.Grid, len(s.Cells))
	copy(before, s.Cells)

	_, err := Propose(s)
	require.NoError(t, err)
	assert.Equal(t, before, s.Cells)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	s := parseSnapshot(t,
		"*1#",
		"02#",
	)

	nb, err := classify(s, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, nb.flagged)
	assert.Equal(t, 2, nb.revealed)
	assert.Equal(t, []mines.Pos{{X: 2, Y: 0}, {X: 2, Y: 1}}, nb.hidden)
}

func TestClassifyRejectsUnrevealed(t *testing.T) {
	t.Parallel()

	s := parseSnapshot(t, "*1#")

	_, err := classify(s, 0, 0)
	assert.ErrorIs(t, err, mines.ErrInvalidState)

	_, err = classify(s, 2, 0)
	assert.ErrorIs(t, err, mines.ErrInvalidState)
}
