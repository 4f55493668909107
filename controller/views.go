package controller

import (
	"context"
	"fmt"
	"sort"

	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/JacquesMo/PlayoffsFantasyHype/scoring"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

func (c *controller) Scoreboard(ctx context.Context) (*model.Scoreboard, error) {
	return c.load(ctx)
}

// Leaderboard ranks the managers by their total over all rounds. Managers
// with equal totals share a rank and keep league order.
func (c *controller) Leaderboard(ctx context.Context) (*model.Leaderboard, error) {
	board, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	rounds := c.league.RoundNames()
	res := &model.Leaderboard{
		Rounds:  rounds,
		Entries: make([]model.LeaderboardEntry, 0, len(c.league.Managers)),
		Updated: board.Updated,
	}

	for _, m := range c.league.Managers {
		e := model.LeaderboardEntry{
			Manager:     m.Name,
			RoundTotals: make([]float64, len(rounds)),
		}
		for i, r := range rounds {
			e.RoundTotals[i] = board.Managers[m.Name][r].Total
		}
		e.Total = scoring.Sum(e.RoundTotals...)
		res.Entries = append(res.Entries, e)
	}

	sort.SliceStable(res.Entries, func(i, j int) bool {
		return res.Entries[i].Total > res.Entries[j].Total
	})
	for i := range res.Entries {
		if i > 0 && res.Entries[i].Total == res.Entries[i-1].Total {
			res.Entries[i].Rank = res.Entries[i-1].Rank
		} else {
			res.Entries[i].Rank = i + 1
		}
	}
	return res, nil
}

func (c *controller) TeamBreakdown(ctx context.Context, manager string) (*model.TeamBreakdown, error) {
	m, ok := c.league.Manager(manager)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownManager, manager)
	}

	board, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	rounds := c.league.RoundNames()
	stored := board.Managers[m.Name]
	res := &model.TeamBreakdown{
		Manager:     m.Name,
		Rounds:      rounds,
		Players:     make([]model.PlayerBreakdown, 0, len(m.Players)),
		RoundTotals: make([]float64, len(rounds)),
	}

	for _, nickname := range m.Players {
		name := c.resolver.Resolve(nickname)
		team := board.PlayerTeams[name]
		p := model.PlayerBreakdown{
			Nickname:   nickname,
			Name:       name,
			Team:       team,
			Eliminated: c.league.IsEliminated(team),
			Points:     make([]float64, len(rounds)),
		}
		for i, r := range rounds {
			p.Points[i] = stored[r].Players[nickname]
		}
		p.Total = scoring.Sum(p.Points...)
		res.Players = append(res.Players, p)
	}

	for i, r := range rounds {
		res.RoundTotals[i] = stored[r].Total
	}
	res.Total = scoring.Sum(res.RoundTotals...)
	return res, nil
}

func (c *controller) PlayerStats(ctx context.Context, query string) ([]model.PlayerStatsRow, error) {
	board, err := c.load(ctx)
	if err != nil {
		return nil, err
	}

	rounds := c.league.RoundNames()
	var res []model.PlayerStatsRow
	for _, m := range c.league.Managers {
		for _, nickname := range m.Players {
			name := c.resolver.Resolve(nickname)
			if query != "" && !matches(query, nickname, name, m.Name) {
				continue
			}

			team := board.PlayerTeams[name]
			row := model.PlayerStatsRow{
				Manager:    m.Name,
				Nickname:   nickname,
				Name:       name,
				Team:       team,
				Eliminated: c.league.IsEliminated(team),
			}

			ppr := make([]float64, 0, len(rounds))
			for _, r := range rounds {
				d, ok := board.WeeklyStats[r][name]
				if !ok {
					continue
				}
				row.Stats.AddCounters(d)
				ppr = append(ppr, d.PPR)
			}
			row.Stats.PPR = scoring.Sum(ppr...)

			res = append(res, row)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Stats.Receptions > res[j].Stats.Receptions
	})
	return res, nil
}

func matches(query string, targets ...string) bool {
	for _, t := range targets {
		if fuzzy.MatchNormalizedFold(query, t) {
			return true
		}
	}
	return false
}
