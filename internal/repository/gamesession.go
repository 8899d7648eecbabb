package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ashabalin/autosweeper/internal/mines"
)

type GameSession struct {
	GameSessionID int64
	PlayerID      *int64
	Width         int32
	Height        int32
	MineCount     int32
	Dead          bool
	Won           bool
	UsedSolve     bool
	State         []byte
	StartedAt     pgtype.Timestamptz
	EndedAt       pgtype.Timestamptz
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}

type CreateSessionParams struct {
	PlayerID *int64
	State    *mines.GameState
}

func (q *Queries) CreateSession(
	ctx context.Context, params CreateSessionParams,
) (*GameSession, error) {
	state, err := params.State.Bytes()
	if err != nil {
		return nil, err
	}

	args := pgx.NamedArgs{
		"player_id":  params.PlayerID,
		"width":      params.State.Width,
		"height":     params.State.Height,
		"mine_count": params.State.MineCount,
		"dead":       params.State.Dead,
		"won":        params.State.Won,
		"used_solve": params.State.UsedSolve,
		"state":      state,
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (
			player_id, width, height, mine_count, dead, won, used_solve, state
		)
		VALUES (
			@player_id, @width, @height, @mine_count, @dead, @won, @used_solve, @state
		)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q *Queries) GetSession(ctx context.Context, gameSessionId int64) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateSessionParams struct {
	EndedAt *time.Time
	State   *mines.GameState
}

func (p UpdateSessionParams) setClause() (string, pgx.NamedArgs, error) {
	parts := []string{
		"dead = @dead",
		"won = @won",
		"used_solve = @used_solve",
		"state = @state",
		"updated_at = now()",
	}
	state, err := p.State.Bytes()
	if err != nil {
		return "", nil, err
	}
	args := pgx.NamedArgs{
		"dead":       p.State.Dead,
		"won":        p.State.Won,
		"used_solve": p.State.UsedSolve,
		"state":      state,
	}
	if p.EndedAt != nil {
		parts = append(parts, "ended_at = @ended_at")
		args["ended_at"] = *p.EndedAt
	}
	return strings.Join(parts, ", "), args, nil
}

func (q *Queries) UpdateSession(
	ctx context.Context, gameSessionId int64, params UpdateSessionParams,
) (*GameSession, error) {
	setClause, args, err := params.setClause()
	if err != nil {
		return nil, err
	}
	args["game_session_id"] = gameSessionId
	rows, _ := q.db.Query(
		ctx,
		"UPDATE game_session SET "+setClause+
			" WHERE game_session_id = @game_session_id RETURNING *",
		args,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
