package model

// StatLine is one player's raw box score line for a single game. Name is the
// canonical name used by the upstream source (tank01's longName).
type StatLine struct {
	PlayerID string
	Name     string
	Team     string

	PassYds       int
	PassTD        int
	Interceptions int
	RushYds       int
	RushTD        int
	RecYds        int
	RecTD         int
	Receptions    int
	FumblesLost   int
	TwoPtPass     int
	TwoPtRush     int
	TwoPtRec      int
}

// DetailStats are the per round counters shown on the player stats page. The
// JSON names match the columns of the persisted document.
type DetailStats struct {
	PassingYards int     `json:"Passing Yards"`
	RushRecYards int     `json:"Rush/Rec Yards"`
	PassingTD    int     `json:"Passing TD"`
	RushRecTD    int     `json:"Rush/Rec TD"`
	Receptions   int     `json:"Receptions"`
	FumblePick   int     `json:"Fumble/Pick"`
	TwoPtConv    int     `json:"2Pt Conv"`
	PPR          float64 `json:"PPR"`
}

// AddLine adds the raw counters of a game to the running totals. PPR is not
// touched, it is owned by the scoring package.
func (d *DetailStats) AddLine(s *StatLine) {
	d.PassingYards += s.PassYds
	d.RushRecYards += s.RushYds + s.RecYds
	d.PassingTD += s.PassTD
	d.RushRecTD += s.RushTD + s.RecTD
	d.Receptions += s.Receptions
	d.FumblePick += s.Interceptions + s.FumblesLost
	d.TwoPtConv += s.TwoPtPass + s.TwoPtRush + s.TwoPtRec
}

// AddCounters adds another set of counters, again leaving PPR alone.
func (d *DetailStats) AddCounters(o DetailStats) {
	d.PassingYards += o.PassingYards
	d.RushRecYards += o.RushRecYards
	d.PassingTD += o.PassingTD
	d.RushRecTD += o.RushRecTD
	d.Receptions += o.Receptions
	d.FumblePick += o.FumblePick
	d.TwoPtConv += o.TwoPtConv
}

// Game is one scheduled or played game for a week.
type Game struct {
	ID     string
	Away   string
	Home   string
	Status string
}

type RoundStatus string

const (
	// The upstream source has no player data for the round yet.
	RoundNoData RoundStatus = "no_data"
	// The round has player data, even if every score is zero.
	RoundScored RoundStatus = "scored"
	// The upstream source could not be read for the round.
	RoundFailed RoundStatus = "failed"
)

type ScoreStatus string

const (
	ScorePlayed   ScoreStatus = "played"
	ScoreNoRecord ScoreStatus = "no_record"
)

// RoundAggregate is everything learned about one round from the upstream
// source. Maps are keyed by canonical player name.
type RoundAggregate struct {
	Round  string
	Status RoundStatus
	Games  int
	Scores map[string]float64
	Detail map[string]DetailStats
	Teams  map[string]string
}

// PlayerRoundScore is a roster player's result for a round.
type PlayerRoundScore struct {
	Nickname  string
	Canonical string
	Points    float64
	Status    ScoreStatus
}

// RosterResult is a manager's roster scored for one round, in roster order.
type RosterResult struct {
	Manager string
	Players []PlayerRoundScore
	Total   float64
}

// TeamRoundTotal converts the result into the persisted shape.
func (r *RosterResult) TeamRoundTotal() TeamRoundTotal {
	t := TeamRoundTotal{
		Players: make(map[string]float64, len(r.Players)),
		Total:   r.Total,
	}
	for _, p := range r.Players {
		t.Players[p.Nickname] = p.Points
	}
	return t
}
