package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Reserved top level keys of the persisted document. Every other top level key
// is a manager name.
const (
	KeyWeeklyStats = "WeeklyStats"
	KeyPlayerTeams = "PlayerTeams"
	KeyVersion     = "Version"
	KeyUpdated     = "Updated"

	// The team total inside a manager's round.
	KeyTotal = "Total"
)

// SchemaVersion is the current document layout. Documents without a version
// are from the original single-file tracker.
const SchemaVersion = 2

func IsReservedKey(k string) bool {
	switch k {
	case KeyWeeklyStats, KeyPlayerTeams, KeyVersion, KeyUpdated:
		return true
	}
	return false
}

// TeamRoundTotal is a manager's points for a round: the points of each roster
// player by nickname plus the team total.
type TeamRoundTotal struct {
	Players map[string]float64
	Total   float64
}

func (t TeamRoundTotal) MarshalJSON() ([]byte, error) {
	m := make(map[string]float64, len(t.Players)+1)
	for k, v := range t.Players {
		m[k] = v
	}
	m[KeyTotal] = t.Total
	return json.Marshal(m)
}

func (t *TeamRoundTotal) UnmarshalJSON(b []byte) error {
	var m map[string]float64
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	total, ok := m[KeyTotal]
	if !ok {
		return fmt.Errorf("round is missing its %s", KeyTotal)
	}
	delete(m, KeyTotal)
	t.Players = m
	t.Total = total
	return nil
}

// Scoreboard is the persisted state of the competition.
type Scoreboard struct {
	Version int
	Updated time.Time
	// manager -> round -> totals
	Managers map[string]map[string]TeamRoundTotal
	// round -> canonical player name -> stats
	WeeklyStats map[string]map[string]DetailStats
	// canonical player name -> team abbreviation
	PlayerTeams map[string]string
}

func NewScoreboard() *Scoreboard {
	return &Scoreboard{
		Version:     SchemaVersion,
		Managers:    make(map[string]map[string]TeamRoundTotal),
		WeeklyStats: make(map[string]map[string]DetailStats),
		PlayerTeams: make(map[string]string),
	}
}

// MarshalJSON flattens the managers into the top level object. Map keys are
// sorted by encoding/json, so equal scoreboards encode to equal bytes.
func (s *Scoreboard) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(s.Managers)+4)
	for m, rounds := range s.Managers {
		if IsReservedKey(m) {
			return nil, fmt.Errorf("manager name %q is a reserved key", m)
		}
		doc[m] = rounds
	}
	doc[KeyVersion] = s.Version
	if !s.Updated.IsZero() {
		doc[KeyUpdated] = s.Updated.UTC()
	}
	doc[KeyWeeklyStats] = nonNilStats(s.WeeklyStats)
	doc[KeyPlayerTeams] = nonNilTeams(s.PlayerTeams)
	return json.Marshal(doc)
}

// UnmarshalJSON only understands the current layout. Older documents go
// through db.Migrate.
func (s *Scoreboard) UnmarshalJSON(b []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return err
	}

	res := NewScoreboard()
	// A document without a version is not in this layout.
	res.Version = 0
	for k, raw := range doc {
		var err error
		switch k {
		case KeyVersion:
			err = json.Unmarshal(raw, &res.Version)
		case KeyUpdated:
			err = json.Unmarshal(raw, &res.Updated)
		case KeyWeeklyStats:
			err = json.Unmarshal(raw, &res.WeeklyStats)
		case KeyPlayerTeams:
			err = json.Unmarshal(raw, &res.PlayerTeams)
		default:
			var rounds map[string]TeamRoundTotal
			err = json.Unmarshal(raw, &rounds)
			res.Managers[k] = rounds
		}
		if err != nil {
			return fmt.Errorf("error parsing %q: %w", k, err)
		}
	}

	if res.Version != SchemaVersion {
		return fmt.Errorf("unsupported scoreboard version %d", res.Version)
	}
	res.WeeklyStats = nonNilStats(res.WeeklyStats)
	res.PlayerTeams = nonNilTeams(res.PlayerTeams)
	for m, rounds := range res.Managers {
		if rounds == nil {
			res.Managers[m] = make(map[string]TeamRoundTotal)
		}
	}

	*s = *res
	return nil
}

func nonNilStats(m map[string]map[string]DetailStats) map[string]map[string]DetailStats {
	if m == nil {
		return make(map[string]map[string]DetailStats)
	}
	return m
}

func nonNilTeams(m map[string]string) map[string]string {
	if m == nil {
		return make(map[string]string)
	}
	return m
}
