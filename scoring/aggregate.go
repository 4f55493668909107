package scoring

import (
	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/shopspring/decimal"
)

// Aggregate rolls up every game line of a round by canonical player name.
// Counters and points are summed over all games the player appears in. The
// result is built from scratch each time, it never adds to earlier refreshes.
//
// A round without any lines is RoundNoData: the caller must leave whatever is
// stored for it alone.
func Aggregate(round string, lines []model.StatLine) *model.RoundAggregate {
	agg := &model.RoundAggregate{
		Round:  round,
		Status: model.RoundNoData,
		Scores: make(map[string]float64),
		Detail: make(map[string]model.DetailStats),
		Teams:  make(map[string]string),
	}

	pts := make(map[string]decimal.Decimal)
	for i := range lines {
		l := &lines[i]
		if l.Name == "" {
			continue
		}

		pts[l.Name] = pts[l.Name].Add(points(l).Round(pointsPlaces))

		d := agg.Detail[l.Name]
		d.AddLine(l)
		agg.Detail[l.Name] = d

		if l.Team != "" {
			agg.Teams[l.Name] = l.Team
		}
	}

	for name, p := range pts {
		v := p.Round(pointsPlaces).InexactFloat64()
		agg.Scores[name] = v

		d := agg.Detail[name]
		d.PPR = v
		agg.Detail[name] = d
	}

	if len(agg.Scores) > 0 {
		agg.Status = model.RoundScored
	}
	return agg
}
