package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/JacquesMo/PlayoffsFantasyHype/controller"
	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

type apiError struct {
	Error string `json:"error"`
}

func rootHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lb, err := ctrl.Leaderboard(r.Context())
		if err != nil {
			log.WithError(err).Error("error building leaderboard")
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"league":      ctrl.League(),
			"leaderboard": lb,
		}
		render.HTML(w, http.StatusOK, "leaderboard", data)
	}
}

func teamHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manager, err := managerParam(r)
		if err != nil {
			render.HTML(w, http.StatusNotFound, "404", "manager not found")
			return
		}

		team, err := ctrl.TeamBreakdown(r.Context(), manager)
		if err != nil {
			if errors.Is(err, controller.ErrUnknownManager) {
				render.HTML(w, http.StatusNotFound, "404", "manager not found")
			} else {
				log.WithError(err).WithField("manager", manager).Error("error building team breakdown")
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		data := map[string]any{
			"league": ctrl.League(),
			"team":   team,
		}
		render.HTML(w, http.StatusOK, "team", data)
	}
}

func playersHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query().Get("q")

		rows, err := ctrl.PlayerStats(r.Context(), query)
		if err != nil {
			log.WithError(err).Error("error building player stats")
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"league": ctrl.League(),
			"q":      query,
			"rows":   rows,
		}
		render.HTML(w, http.StatusOK, "players", data)
	}
}

func notFoundHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.HTML(w, http.StatusNotFound, "404", "page not found")
	}
}

func apiScoreboardHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		board, err := ctrl.Scoreboard(r.Context())
		if err != nil {
			log.WithError(err).Error("error loading scoreboard")
			render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, board)
	}
}

func apiLeaderboardHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lb, err := ctrl.Leaderboard(r.Context())
		if err != nil {
			log.WithError(err).Error("error building leaderboard")
			render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, lb)
	}
}

func apiTeamHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		manager, err := managerParam(r)
		if err != nil {
			render.JSON(w, http.StatusNotFound, apiError{Error: "manager not found"})
			return
		}

		team, err := ctrl.TeamBreakdown(r.Context(), manager)
		if err != nil {
			if errors.Is(err, controller.ErrUnknownManager) {
				render.JSON(w, http.StatusNotFound, apiError{Error: err.Error()})
			} else {
				log.WithError(err).WithField("manager", manager).Error("error building team breakdown")
				render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			}
			return
		}
		render.JSON(w, http.StatusOK, team)
	}
}

func apiPlayersHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := ctrl.PlayerStats(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			log.WithError(err).Error("error building player stats")
			render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			return
		}
		render.JSON(w, http.StatusOK, rows)
	}
}

// refreshHandler answers with the refresh report. Failed rounds are part of
// the report and do not change the status code.
func refreshHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ctrl.Refresh(r.Context())
		if err != nil {
			if errors.Is(err, controller.ErrRefreshInProgress) {
				render.JSON(w, http.StatusConflict, apiError{Error: err.Error()})
			} else {
				log.WithError(err).Error("error refreshing scoreboard")
				render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			}
			return
		}
		render.JSON(w, http.StatusOK, report)
	}
}

func resetHandler(ctrl controller.C, render *render.Render, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.Reset(r.Context()); err != nil {
			if errors.Is(err, controller.ErrRefreshInProgress) {
				render.JSON(w, http.StatusConflict, apiError{Error: err.Error()})
			} else {
				log.WithError(err).Error("error resetting scoreboard")
				render.JSON(w, http.StatusInternalServerError, apiError{Error: err.Error()})
			}
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "reset"})
	}
}

// managerParam reads the {manager} segment. chi matches on the escaped path
// when one is present, so a name like "Jacq/MG3" arrives as "Jacq%2FMG3".
func managerParam(r *http.Request) (string, error) {
	return url.PathUnescape(chi.URLParam(r, "manager"))
}
