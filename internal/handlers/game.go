package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashabalin/autosweeper/internal/config"
	"github.com/ashabalin/autosweeper/internal/middleware"
	"github.com/ashabalin/autosweeper/internal/mines"
	"github.com/ashabalin/autosweeper/internal/repository"
	"github.com/ashabalin/autosweeper/internal/steplog"
)

type GameHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
	steps  *steplog.Logger
	rnd    *rand.Rand
}

func NewGameHandler(
	logger *slog.Logger,
	db *pgxpool.Pool,
	ws *config.WebSocket,
	steps *steplog.Logger,
	rnd *rand.Rand,
) *GameHandler {
	return &GameHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
		steps:  steps,
		rnd:    rnd,
	}
}

func (g GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dto, err := ParseCreateNewGameDTO(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	gameParams := mines.GameParams(dto)

	pos, err := ParsePosition(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	if !gameParams.ValidatePosition(pos.X, pos.Y) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(fmt.Errorf("invalid cell position")))
		return
	}

	game, err := mines.NewGame(&gameParams, pos.X, pos.Y, g.rnd)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	params := repository.CreateSessionParams{State: game}
	if claims, ok := r.Context().Value(middleware.CtxPlayerClaims).(*config.PlayerClaims); ok {
		g.logger.Debug("creating player session", "claims", claims)
		params.PlayerID = &claims.PlayerId
	} else {
		g.logger.Debug("creating anonymous session")
	}

	session, err := g.repo.CreateSession(r.Context(), params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.StartedAt, session.EndedAt, game,
	))
}

// fetchSession loads a session and its deserialized game state, writing
// the appropriate status code on failure.
func (g GameHandler) fetchSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *mines.GameState, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.GetSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", "error", err)
		return nil, nil, false
	}

	game, err := mines.ParseGameStateFromBytes(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", "error", err)
		return nil, nil, false
	}

	return session, game, true
}

func updateParamsFor(
	session *repository.GameSession, game *mines.GameState,
) repository.UpdateSessionParams {
	params := repository.UpdateSessionParams{State: game}
	if (game.Won || game.Dead) && !session.EndedAt.Valid {
		endedAt := time.Now().UTC()
		params.EndedAt = &endedAt
	}
	return params
}

// saveSession persists the mutated game state and replies with the
// session DTO.
func (g GameHandler) saveSession(
	w http.ResponseWriter, r *http.Request,
	session *repository.GameSession, game *mines.GameState,
) {
	updated, err := g.repo.UpdateSession(
		r.Context(), session.GameSessionID, updateParamsFor(session, game),
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		updated.GameSessionID, updated.StartedAt, updated.EndedAt, game,
	))
}

func (g GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(
		session.GameSessionID, session.StartedAt, session.EndedAt, game,
	))
}

func (g GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseGameMove(query.Get("move"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	pos, err := ParsePosition(query)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	if !game.ValidatePosition(pos.X, pos.Y) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch move {
	case Open:
		game.OpenCell(pos.X, pos.Y)
	case Flag:
		game.FlagCell(pos.X, pos.Y)
	case Chord:
		game.ChordCell(pos.X, pos.Y)
	}

	if game.Won || game.Dead {
		game.RevealMines()
	}

	g.saveSession(w, r, session, game)
}

func (g GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	game.Forfeit()

	g.saveSession(w, r, session, game)
}
