package handlers

import (
	"errors"
	"net/http"

	"github.com/ashabalin/autosweeper/internal/solver"
)

// Hint computes one deduction without applying it: the pure proposeMove
// surface. A fully resolved board yields done=true and no move.
func (g GameHandler) Hint(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	dto := StepDTO{
		Session: NewGameSessionDTO(
			session.GameSessionID, session.StartedAt, session.EndedAt, game,
		),
	}

	move, err := solver.Propose(game.Snapshot())
	switch {
	case errors.Is(err, solver.ErrNoMoves):
		dto.Done = true
	case err != nil:
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to compute a hint", "error", err)
		return
	default:
		dto.Move = &move
	}

	sendJSONOrLog(w, g.logger, dto)
}

// Step performs one Auto Step: propose a move, apply it, persist the
// session and the step record. One call per button activation.
func (g GameHandler) Step(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	auto := solver.NewAutoplay(game, g.steps.ForSession(session.GameSessionID))
	move, err := auto.Step()
	if errors.Is(err, solver.ErrGameOver) || errors.Is(err, solver.ErrNoMoves) {
		sendJSONOrLog(w, g.logger, StepDTO{
			Done: true,
			Session: NewGameSessionDTO(
				session.GameSessionID, session.StartedAt, session.EndedAt, game,
			),
		})
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to perform an auto step", "error", err)
		return
	}

	if game.Won || game.Dead {
		game.RevealMines()
	}

	if _, err := g.repo.CreateSolverStep(
		r.Context(), session.GameSessionID, move,
	); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to record solver step", "error", err)
		return
	}

	params := updateParamsFor(session, game)
	updated, err := g.repo.UpdateSession(r.Context(), session.GameSessionID, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, StepDTO{
		Move: &move,
		Session: NewGameSessionDTO(
			updated.GameSessionID, updated.StartedAt, updated.EndedAt, game,
		),
	})
}

// Steps lists the persisted auto steps of a session, oldest first.
func (g GameHandler) Steps(w http.ResponseWriter, r *http.Request) {
	session, _, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	steps, err := g.repo.ListSolverSteps(r.Context(), session.GameSessionID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to list solver steps", "error", err)
		return
	}

	moves := make([]solver.Move, len(steps))
	for i, s := range steps {
		kind := solver.Reveal
		if s.Kind == "flag" {
			kind = solver.Flag
		}
		moves[i] = solver.Move{X: int(s.X), Y: int(s.Y), Kind: kind, Guess: s.Guess}
	}

	sendJSONOrLog(w, g.logger, moves)
}
