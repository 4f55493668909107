package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"

	"github.com/go-chi/chi/v5"
)

//go:embed tank01data
var tank01data embed.FS

// FakeTank01Key is the only api key the fake server accepts.
const FakeTank01Key = "fake-tank01-key"

// FakeTank01Server serves the postseason from the fixtures in tank01data:
//
//   - week 1 (Wild Card): two completed games
//   - week 2 (Divisional): one completed game
//   - week 3: always fails with a 500
//   - week 4: no games scheduled yet
type FakeTank01Server struct {
	s     *httptest.Server
	calls atomic.Int32
}

func NewFakeTank01Server() *FakeTank01Server {
	f := &FakeTank01Server{}

	r := chi.NewRouter()
	r.Use(f.countCalls)
	r.Use(requireAPIKey)
	r.Get("/getNFLGamesForWeek", gamesForWeekHandler)
	r.Get("/getNFLBoxScore", boxScoreHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeTank01Server) Close() {
	f.s.Close()
}

func (f *FakeTank01Server) URL() string {
	return f.s.URL
}

// Calls returns the number of requests the server has received.
func (f *FakeTank01Server) Calls() int {
	return int(f.calls.Load())
}

func (f *FakeTank01Server) countCalls(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		next.ServeHTTP(w, r)
	})
}

func requireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-rapidapi-key") != FakeTank01Key {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte(`{"message":"You are not subscribed to this API."}`))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func gamesForWeekHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("seasonType") != "post" || q.Get("season") != "2025" {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"statusCode":200,"body":[]}`))
		return
	}

	switch week := q.Get("week"); week {
	case "1", "2":
		serveFile(w, fmt.Sprintf("games_week%s.json", week))
	case "3":
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"message":"upstream timed out"}`))
	case "4":
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"statusCode":200,"body":[]}`))
	default:
		// tank01 answers unknown weeks with an error string as the body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"statusCode":200,"body":"Invalid week"}`))
	}
}

func boxScoreHandler(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameID")
	if gameID == "" || strings.Contains(gameID, "/") {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	serveFile(w, fmt.Sprintf("boxscore_%s.json", strings.ReplaceAll(gameID, "@", "_at_")))
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := tank01data.ReadFile(fmt.Sprintf("tank01data/%s", name))
	if err != nil {
		log.Printf("error reading tank01data/%s: %v", name, err)
		w.WriteHeader(http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
