// Package solver implements the Auto Step deduction engine: one provably
// correct move per call when the revealed numbers allow it, an arbitrary
// hidden cell otherwise.
//
// The engine is deliberately local: each revealed numbered cell is
// treated as an independent constraint over its own neighborhood, and no
// reasoning across overlapping neighborhoods is attempted. This bounds
// Auto Step to moves a player could spot by inspecting one number at a
// time.
package solver

import (
	"errors"

	"github.com/ashabalin/autosweeper/internal/mines"
)

type MoveKind int

const (
	Reveal MoveKind = iota
	Flag
)

func (k MoveKind) String() string {
	if k == Flag {
		return "flag"
	}
	return "reveal"
}

// Move is the single action proposed by one deduction call. Guess is set
// when no rule fired and the target is an arbitrary hidden cell rather
// than a proven-safe one.
type Move struct {
	X     int      `json:"x"`
	Y     int      `json:"y"`
	Kind  MoveKind `json:"kind"`
	Guess bool     `json:"guess"`
}

// ErrNoMoves is returned by [Propose] when the board has no hidden cells
// left. It marks a fully resolved board, not a failure.
var ErrNoMoves = errors.New("no hidden cells left")

// Propose scans the board in row-major order and returns the first move
// one of the two local rules proves:
//
//   - safe-reveal: a revealed cell with count N and exactly N flagged
//     neighbors cannot have mines among its remaining hidden neighbors;
//     reveal the first of them.
//   - forced-flag: a revealed cell with count N whose flagged plus
//     hidden-unflagged neighbors number exactly N must have mines under
//     every hidden neighbor; flag the first of them.
//
// If no rule fires anywhere, the first hidden cell in row-major order is
// proposed as a guess. With no hidden cells at all, Propose returns
// [ErrNoMoves]. Propose never mutates the snapshot and repeated calls on
// the same board return the same move.
func Propose(s mines.Snapshot) (Move, error) {
	for y := range s.Height {
		for x := range s.Width {
			if s.StatusOf(x, y) != mines.Revealed {
				continue
			}
			n, err := s.CountOf(x, y)
			if err != nil {
				return Move{}, err
			}
			nb, err := classify(s, x, y)
			if err != nil {
				return Move{}, err
			}
			if len(nb.hidden) == 0 {
				continue
			}
			if nb.flagged == n {
				return Move{X: nb.hidden[0].X, Y: nb.hidden[0].Y, Kind: Reveal}, nil
			}
			if nb.flagged+len(nb.hidden) == n {
				return Move{X: nb.hidden[0].X, Y: nb.hidden[0].Y, Kind: Flag}, nil
			}
		}
	}

	/*
	 * No cell is provably safe or provably mined. Fall back to the
	 * first hidden cell: a deterministic best-effort guess.
	 */
	for y := range s.Height {
		for x := range s.Width {
			if s.StatusOf(x, y) == mines.Hidden {
				return Move{X: x, Y: y, Kind: Reveal, Guess: true}, nil
			}
		}
	}

	return Move{}, ErrNoMoves
}
