package model

import (
	"fmt"
	"strings"
)

// NFLTeam is a franchise. The name is the abbreviation tank01 reports in box
// scores, e.g. SF or JAX, so affiliations can be matched without translation.
type NFLTeam struct {
	name   string
	loc    string
	mascot string
	alias  []string // Other abbreviations seen in the wild, e.g. SFO or JAC
	nick   []string // Any other nicknames that are used for the team, e.g. Philly for PHI
}

func (t *NFLTeam) String() string {
	return t.name
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.name
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

func (t *NFLTeam) Equals(o *NFLTeam) bool {
	if o == nil {
		return false
	}
	return t == o || t.name == o.name
}

var (
	TEAM_UNK *NFLTeam = &NFLTeam{name: "UNK", nick: []string{"FA", "FA*"}}

	// NFC
	TEAM_ARI *NFLTeam = &NFLTeam{name: "ARI", loc: "Arizona", mascot: "Cardinals", nick: []string{"Cards"}}
	TEAM_ATL *NFLTeam = &NFLTeam{name: "ATL", loc: "Atlanta", mascot: "Falcons"}
	TEAM_CAR *NFLTeam = &NFLTeam{name: "CAR", loc: "Carolina", mascot: "Panthers"}
	TEAM_CHI *NFLTeam = &NFLTeam{name: "CHI", loc: "Chicago", mascot: "Bears"}
	TEAM_DAL *NFLTeam = &NFLTeam{name: "DAL", loc: "Dallas", mascot: "Cowboys"}
	TEAM_DET *NFLTeam = &NFLTeam{name: "DET", loc: "Detroit", mascot: "Lions"}
	TEAM_GB  *NFLTeam = &NFLTeam{name: "GB", loc: "Green Bay", mascot: "Packers", alias: []string{"GBP"}}
	TEAM_LAR *NFLTeam = &NFLTeam{name: "LAR", loc: "Los Angeles", mascot: "Rams", alias: []string{"LA"}}
	TEAM_MIN *NFLTeam = &NFLTeam{name: "MIN", loc: "Minnesota", mascot: "Vikings"}
	TEAM_NO  *NFLTeam = &NFLTeam{name: "NO", loc: "New Orleans", mascot: "Saints", alias: []string{"NOS"}}
	TEAM_NYG *NFLTeam = &NFLTeam{name: "NYG", loc: "New York", mascot: "Giants"}
	TEAM_PHI *NFLTeam = &NFLTeam{name: "PHI", loc: "Philadelphia", mascot: "Eagles", nick: []string{"Philly"}}
	TEAM_SF  *NFLTeam = &NFLTeam{name: "SF", loc: "San Francisco", mascot: "49ers", alias: []string{"SFO"}, nick: []string{"Niners", "9ers"}}
	TEAM_SEA *NFLTeam = &NFLTeam{name: "SEA", loc: "Seattle", mascot: "Seahawks", nick: []string{"Hawks"}}
	TEAM_TB  *NFLTeam = &NFLTeam{name: "TB", loc: "Tampa Bay", mascot: "Buccaneers", alias: []string{"TBB"}, nick: []string{"Bucs"}}
	TEAM_WSH *NFLTeam = &NFLTeam{name: "WSH", loc: "Washington", mascot: "Commanders", alias: []string{"WAS"}}

	// AFC
	TEAM_BAL *NFLTeam = &NFLTeam{name: "BAL", loc: "Baltimore", mascot: "Ravens"}
	TEAM_BUF *NFLTeam = &NFLTeam{name: "BUF", loc: "Buffalo", mascot: "Bills"}
	TEAM_CIN *NFLTeam = &NFLTeam{name: "CIN", loc: "Cincinnati", mascot: "Bengals"}
	TEAM_CLE *NFLTeam = &NFLTeam{name: "CLE", loc: "Cleveland", mascot: "Browns"}
	TEAM_DEN *NFLTeam = &NFLTeam{name: "DEN", loc: "Denver", mascot: "Broncos"}
	TEAM_HOU *NFLTeam = &NFLTeam{name: "HOU", loc: "Houston", mascot: "Texans"}
	TEAM_IND *NFLTeam = &NFLTeam{name: "IND", loc: "Indianapolis", mascot: "Colts", nick: []string{"Indy"}}
	TEAM_JAX *NFLTeam = &NFLTeam{name: "JAX", loc: "Jacksonville", mascot: "Jaguars", alias: []string{"JAC"}, nick: []string{"Jags"}}
	TEAM_KC  *NFLTeam = &NFLTeam{name: "KC", loc: "Kansas City", mascot: "Chiefs", alias: []string{"KCC"}}
	TEAM_LV  *NFLTeam = &NFLTeam{name: "LV", loc: "Las Vegas", mascot: "Raiders", alias: []string{"LVR"}}
	TEAM_LAC *NFLTeam = &NFLTeam{name: "LAC", loc: "Los Angeles", mascot: "Chargers"}
	TEAM_MIA *NFLTeam = &NFLTeam{name: "MIA", loc: "Miami", mascot: "Dolphins"}
	TEAM_NE  *NFLTeam = &NFLTeam{name: "NE", loc: "New England", mascot: "Patriots", alias: []string{"NEP"}, nick: []string{"Pats"}}
	TEAM_NYJ *NFLTeam = &NFLTeam{name: "NYJ", loc: "New York", mascot: "Jets"}
	TEAM_PIT *NFLTeam = &NFLTeam{name: "PIT", loc: "Pittsburgh", mascot: "Steelers", nick: []string{"Pitt"}}
	TEAM_TEN *NFLTeam = &NFLTeam{name: "TEN", loc: "Tennessee", mascot: "Titans"}

	teamMap map[string]*NFLTeam = buildTeamMap()
)

// ParseTeam accepts an abbreviation, city, mascot or nickname. Anything it
// does not recognize is TEAM_UNK. "Los Angeles" and "New York" are ambiguous
// and resolve to whichever team registered last; use abbreviations for those.
func ParseTeam(name string) *NFLTeam {
	t := teamMap[strings.ToLower(strings.TrimSpace(name))]
	if t == nil {
		return TEAM_UNK
	}
	return t
}

func buildTeamMap() map[string]*NFLTeam {
	teams := []*NFLTeam{
		// NFC
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GB, TEAM_LAR,
		TEAM_MIN, TEAM_NO, TEAM_NYG, TEAM_PHI, TEAM_SF, TEAM_SEA, TEAM_TB, TEAM_WSH,
		// AFC
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAX,
		TEAM_KC, TEAM_LV, TEAM_LAC, TEAM_MIA, TEAM_NE, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
	}

	m := make(map[string]*NFLTeam)
	for _, t := range teams {
		keys := []string{t.name, t.loc, t.mascot}
		keys = append(keys, t.alias...)
		keys = append(keys, t.nick...)
		for _, k := range keys {
			if k != "" {
				m[strings.ToLower(k)] = t
			}
		}
	}
	// Abbreviations must win over ambiguous cities
	for _, t := range teams {
		m[strings.ToLower(t.name)] = t
	}
	for _, n := range TEAM_UNK.nick {
		m[strings.ToLower(n)] = TEAM_UNK
	}
	return m
}
