package model

import "time"

// LeaderboardEntry is one manager's row on the leaderboard. RoundTotals are in
// league round order.
type LeaderboardEntry struct {
	Rank        int       `json:"rank"`
	Manager     string    `json:"manager"`
	RoundTotals []float64 `json:"roundTotals"`
	Total       float64   `json:"total"`
}

type Leaderboard struct {
	Rounds  []string           `json:"rounds"`
	Entries []LeaderboardEntry `json:"entries"`
	Updated time.Time          `json:"updated"`
}

// PlayerBreakdown is a roster player's points for each round of the league.
type PlayerBreakdown struct {
	Nickname   string    `json:"nickname"`
	Name       string    `json:"name"`
	Team       string    `json:"team,omitempty"`
	Eliminated bool      `json:"eliminated"`
	Points     []float64 `json:"points"`
	Total      float64   `json:"total"`
}

type TeamBreakdown struct {
	Manager     string            `json:"manager"`
	Rounds      []string          `json:"rounds"`
	Players     []PlayerBreakdown `json:"players"`
	RoundTotals []float64         `json:"roundTotals"`
	Total       float64           `json:"total"`
}

// PlayerStatsRow is a rostered player's counters summed over every stored round.
type PlayerStatsRow struct {
	Manager    string      `json:"manager"`
	Nickname   string      `json:"nickname"`
	Name       string      `json:"name"`
	Team       string      `json:"team,omitempty"`
	Eliminated bool        `json:"eliminated"`
	Stats      DetailStats `json:"stats"`
}

// MissingPlayer is a roster player without an upstream record in a round that
// has data. Suggestions are upstream names that look similar.
type MissingPlayer struct {
	Manager     string   `json:"manager"`
	Nickname    string   `json:"nickname"`
	Name        string   `json:"name"`
	Suggestions []string `json:"suggestions,omitempty"`
}

type RoundReport struct {
	Round   string          `json:"round"`
	Week    int             `json:"week"`
	Status  RoundStatus     `json:"status"`
	Games   int             `json:"games"`
	Players int             `json:"players"`
	Error   string          `json:"error,omitempty"`
	Missing []MissingPlayer `json:"missing,omitempty"`
}

// RefreshReport describes what a refresh did, round by round.
type RefreshReport struct {
	ID       string        `json:"id"`
	Started  time.Time     `json:"started"`
	Finished time.Time     `json:"finished"`
	Rounds   []RoundReport `json:"rounds"`
	Warnings []string      `json:"warnings,omitempty"`
	Saved    bool          `json:"saved"`
}

// Failed returns the rounds that could not be read from the upstream source.
func (r *RefreshReport) Failed() []RoundReport {
	var res []RoundReport
	for _, rr := range r.Rounds {
		if rr.Status == RoundFailed {
			res = append(res, rr)
		}
	}
	return res
}
