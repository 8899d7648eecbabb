package handlers

import (
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ashabalin/autosweeper/internal/mines"
	"github.com/ashabalin/autosweeper/internal/solver"
)

type CreateNewGameDTO struct {
	Width     int `schema:"width,required"`
	Height    int `schema:"height,required"`
	MineCount int `schema:"mine_count,required"`
}

func ParseCreateNewGameDTO(src url.Values) (CreateNewGameDTO, error) {
	var dto CreateNewGameDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type PositionDTO struct {
	X int `schema:"x,required"`
	Y int `schema:"y,required"`
}

func ParsePosition(src url.Values) (PositionDTO, error) {
	var dto PositionDTO
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	err := dec.Decode(&dto, src)
	return dto, err
}

type GameMove int

const (
	Open GameMove = iota
	Flag
	Chord
)

func ParseGameMove(s string) (GameMove, error) {
	switch s {
	case "open":
		return Open, nil
	case "flag":
		return Flag, nil
	case "chord":
		return Chord, nil
	}
	return 0, fmt.Errorf("move must be one of \"open\", \"flag\", \"chord\"")
}

type GameSessionDTO struct {
	GameSessionID string     `json:"game_session_id"`
	Grid          mines.Grid `json:"grid"`
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	MineCount     int        `json:"mine_count"`
	Dead          bool       `json:"dead"`
	Won           bool       `json:"won"`
	UsedSolve     bool       `json:"used_solve"`
	StartedAt     int64      `json:"started_at"`
	EndedAt       *int64     `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	gameSessionId int64,
	startedAt pgtype.Timestamptz,
	endedAt pgtype.Timestamptz,
	game *mines.GameState,
) GameSessionDTO {
	dto := GameSessionDTO{
		GameSessionID: fmt.Sprint(gameSessionId),
		Grid:          game.PlayerGrid,
		Width:         game.Width,
		Height:        game.Height,
		MineCount:     game.MineCount,
		Dead:          game.Dead,
		Won:           game.Won,
		UsedSolve:     game.UsedSolve,
		StartedAt:     startedAt.Time.UnixMilli(),
	}
	if endedAt.Valid {
		ms := endedAt.Time.UnixMilli()
		dto.EndedAt = &ms
	}
	return dto
}

// StepDTO is the auto step response: the proposed (and possibly applied)
// move plus the session it was computed against.
type StepDTO struct {
	Move    *solver.Move   `json:"move,omitempty"`
	Done    bool           `json:"done"`
	Session GameSessionDTO `json:"session"`
}
