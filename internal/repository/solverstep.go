package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ashabalin/autosweeper/internal/solver"
)

// SolverStep is the persistent record of one applied Auto Step.
type SolverStep struct {
	SolverStepID  int64
	GameSessionID int64
	X             int32
	Y             int32
	Kind          string
	Guess         bool
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) CreateSolverStep(
	ctx context.Context, gameSessionId int64, move solver.Move,
) (*SolverStep, error) {
	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO solver_step (game_session_id, x, y, kind, guess)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING *;`,
		gameSessionId, move.X, move.Y, move.Kind.String(), move.Guess,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[SolverStep])
}

func (q *Queries) ListSolverSteps(
	ctx context.Context, gameSessionId int64,
) ([]SolverStep, error) {
	rows, err := q.db.Query(
		ctx,
		`SELECT * FROM solver_step
		WHERE game_session_id = $1
		ORDER BY solver_step_id;`,
		gameSessionId,
	)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[SolverStep])
}
