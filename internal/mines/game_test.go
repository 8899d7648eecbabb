package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T, params *GameParams, x, y int, seed uint64) *GameState {
	t.Helper()
	rnd := rand.New(rand.NewPCG(seed, seed+1))
	game, err := NewGame(params, x, y, rnd)
	require.NoError(t, err)
	return game
}

func TestNewGameMineCount(t *testing.T) {
	t.Parallel()

	params := &GameParams{Width: 9, Height: 9, MineCount: 10}
	game := newTestGame(t, params, 4, 4, 1)

	placed := 0
	for _, mine := range game.Mines {
		if mine {
			placed++
		}
	}
	assert.Equal(t, params.MineCount, placed)
}

func TestNewGameSafeZone(t *testing.T) {
	t.Parallel()

	// the densest allowed board leaves only the 3x3 first-click zone
	// mine-free, so every cell of the zone gets exercised
	params := &GameParams{Width: 5, Height: 5, MineCount: 16}

	for seed := range uint64(20) {
		game := newTestGame(t, params, 2, 2, seed)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := 2+dx, 2+dy
				assert.False(t, game.Mines[y*params.Width+x],
					"mine in the safe zone at %d:%d (seed %d)", x, y, seed)
			}
		}
		assert.False(t, game.Dead)
		assert.Equal(t, Revealed, game.PlayerGrid[2*params.Width+2].Status())
	}
}

func TestOpenCellFloodFill(t *testing.T) {
	t.Parallel()

	// a single mine in the corner: opening the opposite corner floods
	// the whole board and wins outright
	params := &GameParams{Width: 4, Height: 4, MineCount: 1}

	game := &GameState{
		GameParams: *params,
		Mines:      make([]bool, 16),
		PlayerGrid: make(Grid, 16),
	}
	game.Mines[0] = true
	for i := range game.PlayerGrid {
		game.PlayerGrid[i] = Unknown
	}

	game.OpenCell(3, 3)

	assert.True(t, game.Won)
	assert.False(t, game.Dead)
	assert.Equal(t, Flagged, game.PlayerGrid[0])
	assert.Equal(t, CellState(1), game.PlayerGrid[1])
	assert.Equal(t, CellState(0), game.PlayerGrid[2])
}

func TestOpenCellMine(t *testing.T) {
	t.Parallel()

	game := &GameState{
		GameParams: GameParams{Width: 2, Height: 2, MineCount: 1},
		Mines:      []bool{true, false, false, false},
		PlayerGrid: Grid{Unknown, Unknown, Unknown, Unknown},
	}

	game.OpenCell(0, 0)

	assert.True(t, game.Dead)
	assert.Equal(t, ExplodedMine, game.PlayerGrid[0])
	assert.Equal(t, Unknown, game.PlayerGrid[1])
}

func TestFlagCellToggle(t *testing.T) {
	t.Parallel()

	game := &GameState{
		GameParams: GameParams{Width: 2, Height: 1, MineCount: 1},
		Mines:      []bool{true, false},
		PlayerGrid: Grid{Unknown, Unknown},
	}

	game.FlagCell(0, 0)
	assert.Equal(t, Flagged, game.PlayerGrid[0])

	// a flagged cell cannot be opened
	game.OpenCell(0, 0)
	assert.False(t, game.Dead)
	assert.Equal(t, Flagged, game.PlayerGrid[0])

	game.FlagCell(0, 0)
	assert.Equal(t, Unknown, game.PlayerGrid[0])
}

func TestFlagCellIgnoresRevealed(t *testing.T) {
	t.Parallel()

	game := &GameState{
		GameParams: GameParams{Width: 2, Height: 1, MineCount: 1},
		Mines:      []bool{true, false},
		PlayerGrid: Grid{Unknown, CellState(1)},
	}

	game.FlagCell(1, 0)
	assert.Equal(t, CellState(1), game.PlayerGrid[1])
}

func TestChordCell(t *testing.T) {
	t.Parallel()

	// 1 at the center, the single mine flagged: chording opens the
	// remaining neighbors
	game := &GameState{
		GameParams: GameParams{Width: 3, Height: 3, MineCount: 1},
		Mines: []bool{
			true, false, false,
			false, false, false,
			false, false, false,
		},
		PlayerGrid: Grid{
			Flagged, Unknown, Unknown,
			Unknown, CellState(1), Unknown,
			Unknown, Unknown, Unknown,
		},
	}

	game.ChordCell(1, 1)

	assert.Equal(t, Revealed, game.PlayerGrid[1].Status())
	assert.Equal(t, Revealed, game.PlayerGrid[3].Status())
	assert.True(t, game.Won)
}

func TestForfeit(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, &GameParams{Width: 9, Height: 9, MineCount: 10}, 4, 4, 3)

	game.Forfeit()

	assert.True(t, game.Dead)
	for i, mine := range game.Mines {
		if mine {
			assert.Equal(t, UnflaggedMine, game.PlayerGrid[i])
		}
	}
}

func TestRevealMinesMarkers(t *testing.T) {
	t.Parallel()

	game := &GameState{
		GameParams: GameParams{Width: 3, Height: 1, MineCount: 2},
		Mines:      []bool{true, true, false},
		PlayerGrid: Grid{Flagged, Unknown, Flagged},
		Dead:       true,
	}

	game.RevealMines()

	assert.Equal(t, CorrectlyFlagged, game.PlayerGrid[0])
	assert.Equal(t, UnflaggedMine, game.PlayerGrid[1])
	assert.Equal(t, FalselyFlagged, game.PlayerGrid[2])
}

func TestGameStateGobRoundtrip(t *testing.T) {
	t.Parallel()

	game := newTestGame(t, &GameParams{Width: 9, Height: 9, MineCount: 10}, 4, 4, 5)
	game.FlagCell(0, 0)
	game.UsedSolve = true

	buf, err := game.Bytes()
	require.NoError(t, err)

	decoded, err := ParseGameStateFromBytes(buf)
	require.NoError(t, err)
	assert.Equal(t, game, decoded)
}

func TestValidateParams(t *testing.T) {
	t.Parallel()

	assert.NoError(t, (&GameParams{Width: 9, Height: 9, MineCount: 10}).Validate())
	assert.Error(t, (&GameParams{Width: 1, Height: 9, MineCount: 1}).Validate())
	assert.Error(t, (&GameParams{Width: 9, Height: 9, MineCount: 0}).Validate())
	// must leave room for the mine-free first-click zone
	assert.Error(t, (&GameParams{Width: 3, Height: 3, MineCount: 1}).Validate())
	assert.Error(t, (&GameParams{Width: 5, Height: 5, MineCount: 17}).Validate())
}
