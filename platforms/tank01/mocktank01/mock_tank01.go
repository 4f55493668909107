package mocktank01

import (
	"context"

	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetGamesForWeek(ctx context.Context, week int, seasonType, season string) ([]model.Game, error) {
	args := c.Called(ctx, week, seasonType, season)

	var res []model.Game
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Game)
	}

	return res, args.Error(1)
}

func (c *Client) GetBoxScore(ctx context.Context, gameID string) ([]model.StatLine, error) {
	args := c.Called(ctx, gameID)

	var res []model.StatLine
	if args.Get(0) != nil {
		res = args.Get(0).([]model.StatLine)
	}

	return res, args.Error(1)
}
