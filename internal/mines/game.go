package mines

import (
	"bytes"
	"encoding/gob"
	"math/rand/v2"
)

type GameState struct {
	Dead, Won, UsedSolve bool
	Mines                []bool /* real mine positions */
	PlayerGrid           Grid   /* player knowledge */
	GameParams
}

func ParseGameStateFromBytes(buf []byte) (*GameState, error) {
	var game GameState
	err := gob.NewDecoder(bytes.NewBuffer(buf)).Decode(&game)
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (s GameState) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(s)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewGame places mines randomly, keeping the 3x3 zone around the first
// opened cell (x, y) mine-free, then opens that cell.
func NewGame(params *GameParams, x, y int, r *rand.Rand) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	width, height, mineCount := params.Unpack()
	mines := make([]bool, width*height)

	/*
	 * Write down the list of possible mine positions, then pick n off
	 * the list at random.
	 */
	candidates := make([]int, 0, width*height)
	for yy := range height {
		for xx := range width {
			if absDiff(y, yy) > 1 || absDiff(x, xx) > 1 {
				candidates = append(candidates, yy*width+xx)
			}
		}
	}
	k := len(candidates)
	for range mineCount {
		i := r.IntN(k)
		mines[candidates[i]] = true
		k--
		candidates[i] = candidates[k]
	}

	playerGrid := make(Grid, len(mines))
	for i := range playerGrid {
		playerGrid[i] = Unknown
	}

	state := &GameState{
		GameParams: *params,
		Mines:      mines,
		PlayerGrid: playerGrid,
	}
	state.OpenCell(x, y)
	return state, nil
}

func (s GameState) mineAt(x, y int) bool {
	return s.Mines[y*s.Width+x]
}

func (s GameState) countAround(x, y int) (count int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			xx, yy := x+dx, y+dy
			if (dx != 0 || dy != 0) &&
				s.ValidatePosition(xx, yy) && s.mineAt(xx, yy) {
				count++
			}
		}
	}
	return
}

func (s *GameState) OpenCell(x, y int) int {
	i := y*s.Width + x
	if s.PlayerGrid[i] != Unknown {
		return 0
	}
	if s.Mines[i] {
		/*
		 * The player has landed on a mine. Bad luck. Expose the mine
		 * that killed them, but not the rest.
		 */
		s.Dead = true
		s.PlayerGrid[i] = ExplodedMine
		return -1
	}

	/*
	 * Otherwise, the player has opened a safe cell. Flood-open it: every
	 * time an opened cell turns out to have no neighbouring mines, its
	 * unopened neighbours are opened as well.
	 */
	stack := []int{i}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.PlayerGrid[j] != Unknown {
			continue
		}
		jx, jy := j%s.Width, j/s.Width
		v := s.countAround(jx, jy)
		s.PlayerGrid[j] = CellState(v)
		if v == 0 {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					xx, yy := jx+dx, jy+dy
					if s.ValidatePosition(xx, yy) &&
						s.PlayerGrid[yy*s.Width+xx] == Unknown {
						stack = append(stack, yy*s.Width+xx)
					}
				}
			}
		}
	}

	/*
	 * Finally, scan the grid and see if exactly as many cells are still
	 * covered as there are mines. If so, set the `won' flag and fill in
	 * mine markers on all covered cells.
	 */
	var nmines, ncovered int
	for j := range s.PlayerGrid {
		if s.PlayerGrid[j] < 0 {
			ncovered++
		}
		if s.Mines[j] {
			nmines++
		}
	}
	if ncovered == nmines {
		for j := range s.PlayerGrid {
			if s.PlayerGrid[j] < 0 {
				s.PlayerGrid[j] = Flagged
			}
		}
		s.Won = true
	}

	return 0
}

func (s *GameState) FlagCell(x, y int) {
	i := y*s.Width + x
	if s.PlayerGrid[i] == Unknown {
		s.PlayerGrid[i] = Flagged
	} else if s.PlayerGrid[i] == Flagged {
		s.PlayerGrid[i] = Unknown
	}
}

func (s *GameState) ChordCell(x, y int) {
	i := y*s.Width + x
	if !(0 <= s.PlayerGrid[i] && s.PlayerGrid[i] <= 8) {
		return
	}
	c := int(s.PlayerGrid[i])
	js := make([]int, 0, 8-c)
	m := 0
	for dy := -1; dy <= +1; dy++ {
		for dx := -1; dx <= +1; dx++ {
			if s.ValidatePosition(x+dx, y+dy) && (dx != 0 || dy != 0) {
				j := (y+dy)*s.Width + (x + dx)
				if s.PlayerGrid[j] == Flagged {
					m++
				} else if s.PlayerGrid[j] == Unknown {
					js = append(js, j)
				}
			}
		}
	}
	if c == m {
		for _, j := range js {
			s.OpenCell(j%s.Width, j/s.Width)
			if s.Dead || s.Won {
				return
			}
		}
	}
}

func (s *GameState) Forfeit() {
	if !(s.Dead || s.Won) {
		s.Dead = true
	}
	s.RevealMines()
}

// RevealMines fills the player grid with post-game-over markers. Only
// meaningful once the game has ended.
func (s *GameState) RevealMines() {
	for i := range s.Mines {
		switch {
		case s.PlayerGrid[i] == Flagged:
			if s.Mines[i] {
				s.PlayerGrid[i] = CorrectlyFlagged
			} else {
				s.PlayerGrid[i] = FalselyFlagged
			}
		case s.PlayerGrid[i] == Unknown || s.PlayerGrid[i] == Question:
			if s.Mines[i] {
				s.PlayerGrid[i] = UnflaggedMine
			} else {
				s.PlayerGrid[i] = CellState(s.countAround(i%s.Width, i/s.Width))
			}
		}
	}
}
