package mockcontroller

import (
	"context"
	"sync"

	"github.com/JacquesMo/PlayoffsFantasyHype/config"
	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) Refresh(ctx context.Context) (*model.RefreshReport, error) {
	args := c.Called(ctx)

	var r *model.RefreshReport
	if args.Get(0) != nil {
		r = args.Get(0).(*model.RefreshReport)
	}

	return r, args.Error(1)
}

func (c *C) Reset(ctx context.Context) error {
	args := c.Called(ctx)
	return args.Error(0)
}

func (c *C) StartScheduledRefreshes(schedule string, shutdown chan bool, wg *sync.WaitGroup) error {
	args := c.Called(schedule, shutdown, wg)
	return args.Error(0)
}

func (c *C) League() *config.League {
	args := c.Called()

	var l *config.League
	if args.Get(0) != nil {
		l = args.Get(0).(*config.League)
	}

	return l
}

func (c *C) Scoreboard(ctx context.Context) (*model.Scoreboard, error) {
	args := c.Called(ctx)

	var s *model.Scoreboard
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Scoreboard)
	}

	return s, args.Error(1)
}

func (c *C) Leaderboard(ctx context.Context) (*model.Leaderboard, error) {
	args := c.Called(ctx)

	var l *model.Leaderboard
	if args.Get(0) != nil {
		l = args.Get(0).(*model.Leaderboard)
	}

	return l, args.Error(1)
}

func (c *C) TeamBreakdown(ctx context.Context, manager string) (*model.TeamBreakdown, error) {
	args := c.Called(ctx, manager)

	var t *model.TeamBreakdown
	if args.Get(0) != nil {
		t = args.Get(0).(*model.TeamBreakdown)
	}

	return t, args.Error(1)
}

func (c *C) PlayerStats(ctx context.Context, query string) ([]model.PlayerStatsRow, error) {
	args := c.Called(ctx, query)

	var res []model.PlayerStatsRow
	if args.Get(0) != nil {
		res = args.Get(0).([]model.PlayerStatsRow)
	}

	return res, args.Error(1)
}
