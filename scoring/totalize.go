package scoring

import "github.com/JacquesMo/PlayoffsFantasyHype/model"

// Totalize scores a manager's roster for one round. Every roster player gets
// an entry, in roster order; a player with no upstream record scores 0 and is
// marked ScoreNoRecord rather than left out.
func Totalize(manager string, roster []string, r *Resolver, scores map[string]float64) *model.RosterResult {
	res := &model.RosterResult{
		Manager: manager,
		Players: make([]model.PlayerRoundScore, 0, len(roster)),
	}

	vals := make([]float64, 0, len(roster))
	for _, nickname := range roster {
		p := model.PlayerRoundScore{
			Nickname:  nickname,
			Canonical: r.Resolve(nickname),
			Status:    model.ScoreNoRecord,
		}
		if v, ok := scores[p.Canonical]; ok {
			p.Points = v
			p.Status = model.ScorePlayed
		}
		res.Players = append(res.Players, p)
		vals = append(vals, p.Points)
	}

	res.Total = Sum(vals...)
	return res
}
