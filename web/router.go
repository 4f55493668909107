package web

import (
	"time"

	"github.com/JacquesMo/PlayoffsFantasyHype/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

const (
	pageTimeout  = 10 * time.Second
	adminTimeout = 2 * time.Minute
)

// getRouter builds the routes. The /admin routes are only mounted when admin
// has at least one account.
func getRouter(ctrl controller.C, render *render.Render, admin map[string]string, log logrus.FieldLogger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.NotFound(notFoundHandler(render))

	r.Group(func(r chi.Router) {
		// Set a timeout value on the request context (ctx), that will signal
		// through ctx.Done() that the request has timed out and further
		// processing should be stopped.
		r.Use(middleware.Timeout(pageTimeout))

		r.Get("/", rootHandler(ctrl, render, log))
		r.Get("/teams/{manager}", teamHandler(ctrl, render, log))
		r.Get("/players", playersHandler(ctrl, render, log))

		r.Route("/api", func(r chi.Router) {
			r.Get("/scoreboard", apiScoreboardHandler(ctrl, render, log))
			r.Get("/leaderboard", apiLeaderboardHandler(ctrl, render, log))
			r.Get("/teams/{manager}", apiTeamHandler(ctrl, render, log))
			r.Get("/players", apiPlayersHandler(ctrl, render, log))
		})
	})

	if len(admin) > 0 {
		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.BasicAuth("playoffs", admin))
			// A refresh makes a request per game. The page timeout is not
			// applied here, a parent deadline would cap this one.
			r.Use(middleware.Timeout(adminTimeout))

			r.Post("/refresh", refreshHandler(ctrl, render, log))
			r.Post("/reset", resetHandler(ctrl, render, log))
		})
	}

	return r
}
