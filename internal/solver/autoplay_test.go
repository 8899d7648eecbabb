package solver

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashabalin/autosweeper/internal/mines"
)

type recordedStep struct {
	move Move
}

type testRecorder struct {
	steps []recordedStep
}

func (r *testRecorder) Record(move Move, grid mines.Grid) {
	r.steps = append(r.steps, recordedStep{move})
}

// Rule-derived moves must be sound: a non-guess reveal never hits a
// mine, a flag always covers one.
func TestAutoplaySoundness(t *testing.T) {
	t.Parallel()

	params := &mines.GameParams{Width: 9, Height: 9, MineCount: 10}

	for seed := range uint64(25) {
		rnd := rand.New(rand.NewPCG(seed, seed+1))
		game, err := mines.NewGame(params, 4, 4, rnd)
		require.NoError(t, err)

		auto := NewAutoplay(game, nil)
		for !game.Dead && !game.Won {
			move, err := auto.Step()
			if err != nil {
				assert.ErrorIs(t, err, ErrNoMoves)
				break
			}
			switch move.Kind {
			case Flag:
				assert.True(t, game.Mines[move.Y*game.Width+move.X],
					"flagged a mine-free cell at %d:%d (seed %d)", move.X, move.Y, seed)
			case Reveal:
				if !move.Guess {
					assert.False(t, game.Dead,
						"safe reveal at %d:%d hit a mine (seed %d)", move.X, move.Y, seed)
				}
			}
		}
		assert.True(t, game.UsedSolve)
	}
}

func TestAutoplayRunTerminates(t *testing.T) {
	t.Parallel()

	params := &mines.GameParams{Width: 6, Height: 6, MineCount: 4}
	rnd := rand.New(rand.NewPCG(7, 8))
	game, err := mines.NewGame(params, 3, 3, rnd)
	require.NoError(t, err)

	rec := &testRecorder{}
	auto := NewAutoplay(game, rec)

	won, err := auto.Run()
	require.NoError(t, err)
	assert.Equal(t, game.Won, won)
	assert.True(t, game.Won || game.Dead)
	assert.Equal(t, len(rec.steps), len(auto.History()))
}

func TestAutoplayStepAfterGameOver(t *testing.T) {
	t.Parallel()

	params := &mines.GameParams{Width: 5, Height: 5, MineCount: 3}
	rnd := rand.New(rand.NewPCG(1, 2))
	game, err := mines.NewGame(params, 2, 2, rnd)
	require.NoError(t, err)

	auto := NewAutoplay(game, nil)
	_, err = auto.Run()
	require.NoError(t, err)

	_, err = auto.Step()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestAutoplayHistoryIsBounded(t *testing.T) {
	t.Parallel()

	params := &mines.GameParams{Width: 16, Height: 16, MineCount: 40}
	rnd := rand.New(rand.NewPCG(3, 4))
	game, err := mines.NewGame(params, 8, 8, rnd)
	require.NoError(t, err)

	auto := NewAutoplay(game, nil)
	_, err = auto.Run()
	require.NoError(t, err)

	assert.LessOrEqual(t, len(auto.History()), historyCap)
}
