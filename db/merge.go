package db

import "github.com/JacquesMo/PlayoffsFantasyHype/model"

// Merge writes the freshly computed results of one round into the scoreboard.
// The round's team totals and weekly stats are replaced as a whole; no other
// round is touched. Player teams are merged: new entries are added or
// overwritten and players missing from teams keep their last known team.
//
// Merging the same values twice leaves the scoreboard unchanged.
func Merge(board *model.Scoreboard, round string, totals map[string]model.TeamRoundTotal,
	detail map[string]model.DetailStats, teams map[string]string) {

	if board.Managers == nil {
		board.Managers = make(map[string]map[string]model.TeamRoundTotal)
	}
	for m, t := range totals {
		if board.Managers[m] == nil {
			board.Managers[m] = make(map[string]model.TeamRoundTotal)
		}
		board.Managers[m][round] = copyTotal(t)
	}

	if board.WeeklyStats == nil {
		board.WeeklyStats = make(map[string]map[string]model.DetailStats)
	}
	stats := make(map[string]model.DetailStats, len(detail))
	for name, d := range detail {
		stats[name] = d
	}
	board.WeeklyStats[round] = stats

	if board.PlayerTeams == nil {
		board.PlayerTeams = make(map[string]string)
	}
	for name, team := range teams {
		board.PlayerTeams[name] = team
	}
}

func copyTotal(t model.TeamRoundTotal) model.TeamRoundTotal {
	res := model.TeamRoundTotal{
		Players: make(map[string]float64, len(t.Players)),
		Total:   t.Total,
	}
	for k, v := range t.Players {
		res.Players[k] = v
	}
	return res
}
