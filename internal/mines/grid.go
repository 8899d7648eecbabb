package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type CellState int8

const (
	Question         CellState = -3
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * Each item in a `Grid' is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is open and has a surrounding mine
	 * 	  count.
	 *
	 *  - -1 means the cell is flagged as a mine.
	 *
	 *  - -2 means the cell is unknown.
	 *
	 * 	- -3 means the cell is marked with a question mark.
	 *
	 * 	- 64 and up are post-game-over markers set when the real
	 * 	  mine layout is revealed.
	 */
)

func (s CellState) String() string {
	switch {
	case s == Question:
		return "?"
	case s == Unknown:
		return " "
	case s == Flagged:
		return "*"
	case 0 <= s && s <= 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// CellStatus is the player-visible status of a cell, with revealed mine
// counts folded into a single value.
type CellStatus int

const (
	Hidden CellStatus = iota
	FlaggedCell
	Revealed
)

func (s CellState) Status() CellStatus {
	switch {
	case 0 <= s && s <= 8:
		return Revealed
	case s == Flagged:
		return FlaggedCell
	default:
		return Hidden
	}
}

type Grid []CellState

func (g Grid) ToString(width int) string {
	var b strings.Builder
	for y := range len(g) / width {
		for x := range width {
			i := y*width + x
			if i >= len(g) {
				break
			}
			fmt.Fprint(&b, g[i].String()+" ")
		}
		fmt.Fprint(&b, "\n")

	}
	return b.String()
}
