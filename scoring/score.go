// Package scoring turns raw box score lines into PPR fantasy points and rolls
// them up by round and by roster. Everything here is pure; fetching and
// persistence live in the controller and db packages.
package scoring

import (
	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/shopspring/decimal"
)

// Points are rounded to this many decimal places, half away from zero.
const pointsPlaces = 2

var (
	passYdPts     = decimal.RequireFromString("0.04")
	passTDPts     = decimal.NewFromInt(4)
	interceptPts  = decimal.NewFromInt(-2)
	rushYdPts     = decimal.RequireFromString("0.1")
	rushTDPts     = decimal.NewFromInt(6)
	recYdPts      = decimal.RequireFromString("0.1")
	recTDPts      = decimal.NewFromInt(6)
	receptionPts  = decimal.NewFromInt(1)
	twoPtPts      = decimal.NewFromInt(2)
	fumbleLostPts = decimal.NewFromInt(-2)
)

// Score is the PPR value of a single game line, rounded to 2 decimal places.
// It is the only place a point value is derived from raw stats; upstream
// fantasy point fields are never trusted.
func Score(s *model.StatLine) float64 {
	return points(s).Round(pointsPlaces).InexactFloat64()
}

func points(s *model.StatLine) decimal.Decimal {
	twoPt := s.TwoPtPass + s.TwoPtRush + s.TwoPtRec

	return term(s.PassYds, passYdPts).
		Add(term(s.PassTD, passTDPts)).
		Add(term(s.Interceptions, interceptPts)).
		Add(term(s.RushYds, rushYdPts)).
		Add(term(s.RushTD, rushTDPts)).
		Add(term(s.RecYds, recYdPts)).
		Add(term(s.RecTD, recTDPts)).
		Add(term(s.Receptions, receptionPts)).
		Add(term(twoPt, twoPtPts)).
		Add(term(s.FumblesLost, fumbleLostPts))
}

func term(n int, pts decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(n)).Mul(pts)
}

// Sum adds already rounded point values and rounds the result the same way
// Score does, so totals never pick up binary floating point noise.
func Sum(vals ...float64) float64 {
	total := decimal.Zero
	for _, v := range vals {
		total = total.Add(decimal.NewFromFloat(v))
	}
	return total.Round(pointsPlaces).InexactFloat64()
}
