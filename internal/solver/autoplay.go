package solver

import (
	"errors"

	"github.com/gammazero/deque"

	"github.com/ashabalin/autosweeper/internal/mines"
)

// ErrGameOver is returned by [Autoplay.Step] once the game is won or
// lost.
var ErrGameOver = errors.New("game is over")

// historyCap bounds the in-memory move history; older moves are dropped
// from the front.
const historyCap = 512

// Recorder receives every applied auto step. Implementations must not
// mutate the grid.
type Recorder interface {
	Record(move Move, grid mines.Grid)
}

// Autoplay drives a game with the deduction engine, one [Propose] call
// per step. It owns no solver state between steps: every step rescans a
// fresh snapshot, so moves made by the player in between are picked up.
type Autoplay struct {
	game     *mines.GameState
	recorder Recorder
	history  deque.Deque[Move]
}

func NewAutoplay(game *mines.GameState, recorder Recorder) *Autoplay {
	return &Autoplay{game: game, recorder: recorder}
}

// Step proposes one move and applies it to the game. The move is
// returned along with any terminal condition: [ErrGameOver] when the
// game has already ended, [ErrNoMoves] when no hidden cells remain.
func (a *Autoplay) Step() (Move, error) {
	if a.game.Dead || a.game.Won {
		return Move{}, ErrGameOver
	}

	move, err := Propose(a.game.Snapshot())
	if err != nil {
		return Move{}, err
	}

	a.game.UsedSolve = true
	switch move.Kind {
	case Reveal:
		a.game.OpenCell(move.X, move.Y)
	case Flag:
		a.game.FlagCell(move.X, move.Y)
	}

	a.history.PushBack(move)
	for a.history.Len() > historyCap {
		a.history.PopFront()
	}
	if a.recorder != nil {
		a.recorder.Record(move, a.game.PlayerGrid)
	}

	return move, nil
}

// Run steps until the game ends or the engine runs out of cells, and
// reports whether the game was won.
func (a *Autoplay) Run() (bool, error) {
	for {
		_, err := a.Step()
		if errors.Is(err, ErrGameOver) || errors.Is(err, ErrNoMoves) {
			return a.game.Won, nil
		}
		if err != nil {
			return false, err
		}
		if a.game.Dead || a.game.Won {
			return a.game.Won, nil
		}
	}
}

// History returns the retained moves, oldest first.
func (a *Autoplay) History() []Move {
	moves := make([]Move, a.history.Len())
	for i := range moves {
		moves[i] = a.history.At(i)
	}
	return moves
}
