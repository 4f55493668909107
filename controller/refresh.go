package controller

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/JacquesMo/PlayoffsFantasyHype/config"
	"github.com/JacquesMo/PlayoffsFantasyHype/db"
	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/JacquesMo/PlayoffsFantasyHype/scoring"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func (c *controller) Refresh(ctx context.Context) (*model.RefreshReport, error) {
	if !c.mu.TryLock() {
		return nil, ErrRefreshInProgress
	}
	defer c.mu.Unlock()

	report := &model.RefreshReport{
		ID:      uuid.NewString(),
		Started: c.clock.Now(),
	}
	log := c.log.WithField("refresh_id", report.ID)

	board, migrated, err := db.Load(ctx, c.db, c.league)
	if err != nil {
		if !errors.Is(err, db.ErrCorruptStore) {
			return nil, fmt.Errorf("error loading scoreboard: %w", err)
		}
		log.WithError(err).Warn("stored scoreboard is corrupt, starting from an empty one")
		report.Warnings = append(report.Warnings, "the stored scoreboard could not be read and was replaced by an empty one")
	}
	if migrated {
		log.Info("migrating stored scoreboard to the current layout")
	}

	scored := 0
	for _, r := range c.league.Rounds {
		rr := c.refreshRound(ctx, log, board, r)
		if rr.Status == model.RoundScored {
			scored++
		}
		report.Rounds = append(report.Rounds, rr)
	}

	// Nothing new means nothing to write, the stored scoreboard stays as is.
	if scored > 0 {
		board.Updated = c.clock.Now()
		if err := db.Save(ctx, c.db, board); err != nil {
			return nil, err
		}
		report.Saved = true
	}

	report.Finished = c.clock.Now()
	log.WithFields(logrus.Fields{
		"scored": scored,
		"failed": len(report.Failed()),
		"saved":  report.Saved,
	}).Info("refresh finished")
	return report, nil
}

// refreshRound fetches and scores one round and merges it into board. board
// is only changed when the round has player data.
func (c *controller) refreshRound(ctx context.Context, log logrus.FieldLogger, board *model.Scoreboard, r config.Round) model.RoundReport {
	rr := model.RoundReport{Round: r.Name, Week: r.Week}
	log = log.WithFields(logrus.Fields{"round": r.Name, "week": r.Week})

	lines, games, err := c.fetchRound(ctx, r)
	if err != nil {
		log.WithError(err).Warn("error fetching round, keeping stored values")
		rr.Status = model.RoundFailed
		rr.Error = err.Error()
		return rr
	}

	agg := scoring.Aggregate(r.Name, lines)
	agg.Games = games
	rr.Games = games
	rr.Status = agg.Status
	rr.Players = len(agg.Scores)

	if agg.Status == model.RoundNoData {
		log.WithField("games", games).Debug("no player data for round yet")
		return rr
	}

	names := make([]string, 0, len(agg.Scores))
	for name := range agg.Scores {
		names = append(names, name)
	}
	sort.Strings(names)

	totals := make(map[string]model.TeamRoundTotal, len(c.league.Managers))
	for _, m := range c.league.Managers {
		res := scoring.Totalize(m.Name, m.Players, c.resolver, agg.Scores)
		totals[m.Name] = res.TeamRoundTotal()

		for _, p := range res.Players {
			if p.Status != model.ScoreNoRecord {
				continue
			}
			mp := model.MissingPlayer{
				Manager:     m.Name,
				Nickname:    p.Nickname,
				Name:        p.Canonical,
				Suggestions: c.resolver.Suggest(p.Nickname, names),
			}
			rr.Missing = append(rr.Missing, mp)

			plog := log.WithFields(logrus.Fields{"manager": m.Name, "player": p.Nickname})
			if len(mp.Suggestions) > 0 {
				plog.WithField("suggestions", mp.Suggestions).Warn("no stats for player, check the nickname")
			} else {
				plog.Debug("no stats for player")
			}
		}
	}

	db.Merge(board, r.Name, totals, agg.Detail, agg.Teams)

	log.WithFields(logrus.Fields{"games": games, "players": rr.Players}).Info("round scored")
	return rr
}

// fetchRound returns the stat lines of every game of the round. Any failed
// call fails the whole round, a partial round would store wrong totals.
func (c *controller) fetchRound(ctx context.Context, r config.Round) ([]model.StatLine, int, error) {
	games, err := c.tank01.GetGamesForWeek(ctx, r.Week, c.league.SeasonType, c.league.Season)
	if err != nil {
		return nil, 0, err
	}

	var lines []model.StatLine
	for _, g := range games {
		box, err := c.tank01.GetBoxScore(ctx, g.ID)
		if err != nil {
			return nil, 0, err
		}
		lines = append(lines, box...)
	}
	return lines, len(games), nil
}
