package mines

import "fmt"

type GameParams struct {
	Width     int `json:"width"`
	Height    int `json:"height"`
	MineCount int `json:"mine_count"`
}

func (p GameParams) Unpack() (int, int, int) {
	return p.Width, p.Height, p.MineCount
}

func (p GameParams) Validate() error {
	if p.Width < 2 || p.Height < 2 {
		return fmt.Errorf("board must be at least 2x2")
	}
	if p.MineCount < 1 {
		return fmt.Errorf("board must have at least 1 mine")
	}
	// the 3x3 zone around the first opened cell stays mine-free
	if p.MineCount > p.Width*p.Height-9 {
		return fmt.Errorf(
			"%dx%d board fits at most %d mines",
			p.Width, p.Height, p.Width*p.Height-9,
		)
	}
	return nil
}

func (p GameParams) ValidatePosition(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}
