package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/JacquesMo/PlayoffsFantasyHype/config"
	"github.com/JacquesMo/PlayoffsFantasyHype/db"
	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/JacquesMo/PlayoffsFantasyHype/platforms/tank01"
	"github.com/JacquesMo/PlayoffsFantasyHype/scoring"
	"github.com/itbasis/go-clock"
	"github.com/sirupsen/logrus"
)

var (
	ErrRefreshInProgress = errors.New("a refresh is already running")
	ErrUnknownManager    = errors.New("unknown manager")
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Refresh pulls every round of the league from tank01, rescores it and
	// saves the scoreboard once at the end. A round that can't be fetched is
	// reported as failed and keeps its stored values. Only one refresh runs
	// at a time, a second caller gets ErrRefreshInProgress.
	Refresh(ctx context.Context) (*model.RefreshReport, error)
	// Reset replaces the stored scoreboard with an all zero one.
	Reset(ctx context.Context) error
	// StartScheduledRefreshes runs Refresh on a cron schedule until shutdown
	// is closed.
	StartScheduledRefreshes(schedule string, shutdown chan bool, wg *sync.WaitGroup) error

	League() *config.League
	Scoreboard(ctx context.Context) (*model.Scoreboard, error)
	Leaderboard(ctx context.Context) (*model.Leaderboard, error)
	TeamBreakdown(ctx context.Context, manager string) (*model.TeamBreakdown, error)
	// PlayerStats lists every rostered player with their stats summed over
	// all rounds, most receptions first. A non empty query keeps only the
	// rows whose player or manager fuzzily matches it.
	PlayerStats(ctx context.Context, query string) ([]model.PlayerStatsRow, error)
}

type controller struct {
	clock    clock.Clock
	league   *config.League
	resolver *scoring.Resolver
	tank01   tank01.Client
	db       db.DB
	log      logrus.FieldLogger

	// Held for the whole of a refresh or reset.
	mu sync.Mutex
}

func New(clock clock.Clock, league *config.League, tank01 tank01.Client, db db.DB, log logrus.FieldLogger) (C, error) {
	if err := league.Validate(); err != nil {
		return nil, fmt.Errorf("error validating league: %w", err)
	}

	c := &controller{
		clock:    clock,
		league:   league,
		resolver: scoring.NewResolver(league.Nicknames),
		tank01:   tank01,
		db:       db,
		log:      log,
	}
	return c, nil
}

func (c *controller) League() *config.League {
	return c.league
}

func (c *controller) Reset(ctx context.Context) error {
	if !c.mu.TryLock() {
		return ErrRefreshInProgress
	}
	defer c.mu.Unlock()

	board := db.Fresh(c.league)
	board.Updated = c.clock.Now()
	if err := db.Save(ctx, c.db, board); err != nil {
		return err
	}

	c.log.Info("scoreboard reset")
	return nil
}

// load reads the scoreboard for display. A corrupt store is shown as an empty
// scoreboard, the next refresh or reset replaces it.
func (c *controller) load(ctx context.Context) (*model.Scoreboard, error) {
	board, migrated, err := db.Load(ctx, c.db, c.league)
	if err != nil {
		if errors.Is(err, db.ErrCorruptStore) {
			c.log.WithError(err).Warn("stored scoreboard is corrupt, showing an empty one")
			return board, nil
		}
		return nil, fmt.Errorf("error loading scoreboard: %w", err)
	}
	if migrated {
		c.log.Debug("stored scoreboard is in an old layout, it will be migrated on the next save")
	}
	return board, nil
}
