package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/JacquesMo/PlayoffsFantasyHype/config"
	"github.com/JacquesMo/PlayoffsFantasyHype/controller"
	"github.com/sirupsen/logrus"
	"github.com/unrolled/render"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
	log    logrus.FieldLogger
}

func NewServer(cfg *config.Config, ctrl controller.C, log logrus.FieldLogger) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render, adminAccounts(cfg), log)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.Port),
			Handler: router,
		},
		log: log,
	}
	return s, nil
}

// adminAccounts returns nil when the admin routes should not be served.
func adminAccounts(cfg *config.Config) map[string]string {
	if !cfg.AdminEnabled() {
		return nil
	}
	return map[string]string{cfg.AdminUser: cfg.AdminPassword}
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.log.WithError(err).Error("error shutting down server")
		}
	}()

	s.log.Infof("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.log.WithError(err).Fatal("fatal error with server")
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"date":        dateFormatter,
				"points":      pointsFormatter,
				"managerPath": managerPath,
			},
		},
	})
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Never"
	}
	return t.UTC().Format("2006-01-02 15:04 MST")
}

func pointsFormatter(p float64) string {
	return fmt.Sprintf("%.2f", p)
}

// managerPath links to a manager's team page. Manager names may contain a
// slash, so the name is escaped as a single path segment.
func managerPath(manager string) string {
	return "/teams/" + url.PathEscape(manager)
}
