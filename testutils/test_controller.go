package testutils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/JacquesMo/PlayoffsFantasyHype/config"
	"github.com/JacquesMo/PlayoffsFantasyHype/db"
	"github.com/itbasis/go-clock"
)

// TestController bundles what a controller needs in tests: a mock clock, a
// fake tank01 server, a file backed store in a temp dir and the test league.
type TestController struct {
	Clock      *clock.Mock
	League     *config.League
	DB         db.DB
	StorePath  string
	fakeTank01 *FakeTank01Server
}

func (c *TestController) Close() {
	c.fakeTank01.Close()
}

func (c *TestController) Tank01URL() string {
	return c.fakeTank01.URL()
}

func (c *TestController) Tank01Calls() int {
	return c.fakeTank01.Calls()
}

func NewTestController(t *testing.T) *TestController {
	t.Helper()

	c := clock.NewMock()
	c.Set(time.Date(2026, 1, 18, 23, 30, 0, 0, time.UTC))

	path := filepath.Join(t.TempDir(), "playoff_data.json")
	return &TestController{
		Clock:      c,
		League:     TestLeague(),
		DB:         db.NewFileDB(path),
		StorePath:  path,
		fakeTank01: NewFakeTank01Server(),
	}
}
