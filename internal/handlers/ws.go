package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/ashabalin/autosweeper/internal/mines"
	"github.com/ashabalin/autosweeper/internal/solver"
)

func parseXY(twoStrings []string) (x int, y int, err error) {
	if x, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if y, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

var commandNargs = map[string]int{
	"g": 0, // fetch
	"o": 2, // open x y
	"f": 2, // flag x y
	"c": 2, // chord x y
	"s": 0, // auto step
	"r": 0, // forfeit
}

// executeCommand applies one text command to the game. The auto step
// command reports the applied move back through the returned pointer.
func (g GameHandler) executeCommand(
	game *mines.GameState, sessionId int64, c string,
) (*solver.Move, error) {
	parts := strings.Split(strings.TrimSpace(c), " ")

	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return nil, fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return nil, fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil, nil
	case "o", "f", "c":
		x, y, err := parseXY(parts[1:])
		if err != nil {
			return nil, err
		}
		if !game.ValidatePosition(x, y) {
			return nil, fmt.Errorf("invalid cell position")
		}
		switch parts[0] {
		case "o":
			game.OpenCell(x, y)
		case "f":
			game.FlagCell(x, y)
		case "c":
			game.ChordCell(x, y)
		}
		return nil, nil
	case "s":
		auto := solver.NewAutoplay(game, g.steps.ForSession(sessionId))
		move, err := auto.Step()
		if errors.Is(err, solver.ErrGameOver) || errors.Is(err, solver.ErrNoMoves) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return &move, nil
	case "r":
		game.Forfeit()
		return nil, nil
	}
	return nil, fmt.Errorf("invalid command")
}

// ConnectWS upgrades to a websocket carrying newline-separated text
// commands; each message is answered with the updated session.
func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.fetchSession(w, r)
	if !ok {
		return
	}

	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade connection", "error", err)
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("unable to read ws message", "error", err)
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		var lastMove *solver.Move
		for _, line := range strings.Split(strings.TrimSpace(string(message)), "\n") {
			move, err := g.executeCommand(game, session.GameSessionID, line)
			if err != nil {
				if werr := c.WriteJSON(wrapError(err)); werr != nil {
					g.logger.Error("unable to write ws message", "error", werr)
				}
				return
			}
			if move != nil {
				lastMove = move
				if _, err := g.repo.CreateSolverStep(
					r.Context(), session.GameSessionID, *move,
				); err != nil {
					g.logger.Error("unable to record solver step", "error", err)
				}
			}
			if game.Won || game.Dead {
				game.RevealMines()
				break
			}
		}

		updated, err := g.repo.UpdateSession(
			r.Context(), session.GameSessionID, updateParamsFor(session, game),
		)
		if err != nil {
			g.logger.Error("unable to update session in db", "error", err)
			break
		}
		session = updated

		dto := StepDTO{
			Move: lastMove,
			Session: NewGameSessionDTO(
				session.GameSessionID, session.StartedAt, session.EndedAt, game,
			),
		}
		if err := c.WriteJSON(dto); err != nil {
			g.logger.Error("unable to write ws message", "error", err)
			break
		}
	}
}
