package handlers

import (
	"net/http"
	"strconv"

	"github.com/ashabalin/autosweeper/internal/mines"
	"github.com/ashabalin/autosweeper/internal/repository"
)

func (g GameHandler) Highscores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter repository.HighscoreFilter
	if username := query.Get("username"); username != "" {
		filter.Username = &username
	}
	if query.Has("width") || query.Has("height") || query.Has("mine_count") {
		dto, err := ParseCreateNewGameDTO(query)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			sendJSONOrLog(w, g.logger, wrapError(err))
			return
		}
		params := mines.GameParams(dto)
		filter.GameParams = &params
	}
	if noSolve, err := strconv.ParseBool(query.Get("no_solve")); err == nil {
		filter.NoSolve = noSolve
	}

	highscores, err := g.repo.GetHighscores(r.Context(), filter)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch highscores", "error", err)
		return
	}

	sendJSONOrLog(w, g.logger, highscores)
}
