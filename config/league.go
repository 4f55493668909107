package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"gopkg.in/yaml.v3"
)

//go:embed league.yaml
var defaultLeague []byte

var ErrInvalidLeague = errors.New("invalid league")

// League is the static definition of the competition. It is loaded once at
// startup and never changed afterwards.
type League struct {
	Name       string            `yaml:"name"`
	Season     string            `yaml:"season"`
	SeasonType string            `yaml:"seasonType"`
	Rounds     []Round           `yaml:"rounds"`
	Managers   []Manager         `yaml:"managers"`
	Nicknames  map[string]string `yaml:"nicknames"`
	// Teams already knocked out. Only used to highlight players.
	Eliminated []string `yaml:"eliminated"`
}

// Round maps a round name to the upstream week number.
type Round struct {
	Name string `yaml:"name"`
	Week int    `yaml:"week"`
}

type Manager struct {
	Name    string   `yaml:"name"`
	Players []string `yaml:"players"`
}

// LoadLeague reads the league from path, or the built in league when path is
// empty.
func LoadLeague(path string) (*League, error) {
	if path == "" {
		return ParseLeague(bytes.NewReader(defaultLeague))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening league file: %w", err)
	}
	defer f.Close()

	return ParseLeague(f)
}

func ParseLeague(r io.Reader) (*League, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var l League
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("error parsing league: %w", err)
	}
	if l.SeasonType == "" {
		l.SeasonType = "post"
	}
	if l.Nicknames == nil {
		l.Nicknames = make(map[string]string)
	}

	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks that the league can be stored: manager names become top
// level keys of the scoreboard and nicknames become keys next to the team
// total.
func (l *League) Validate() error {
	if l.Season == "" {
		return fmt.Errorf("%w: season is required", ErrInvalidLeague)
	}
	if len(l.Rounds) == 0 {
		return fmt.Errorf("%w: at least one round is required", ErrInvalidLeague)
	}
	if len(l.Managers) == 0 {
		return fmt.Errorf("%w: at least one manager is required", ErrInvalidLeague)
	}

	rounds := make(map[string]bool)
	for _, r := range l.Rounds {
		if r.Name == "" {
			return fmt.Errorf("%w: round for week %d has no name", ErrInvalidLeague, r.Week)
		}
		if rounds[r.Name] {
			return fmt.Errorf("%w: duplicate round %q", ErrInvalidLeague, r.Name)
		}
		if r.Week <= 0 {
			return fmt.Errorf("%w: round %q needs a positive week", ErrInvalidLeague, r.Name)
		}
		rounds[r.Name] = true
	}

	managers := make(map[string]bool)
	for _, m := range l.Managers {
		if m.Name == "" {
			return fmt.Errorf("%w: manager without a name", ErrInvalidLeague)
		}
		if model.IsReservedKey(m.Name) {
			return fmt.Errorf("%w: %q is reserved and can not be a manager name", ErrInvalidLeague, m.Name)
		}
		if managers[m.Name] {
			return fmt.Errorf("%w: duplicate manager %q", ErrInvalidLeague, m.Name)
		}
		managers[m.Name] = true

		players := make(map[string]bool)
		for _, p := range m.Players {
			if p == "" || p == model.KeyTotal {
				return fmt.Errorf("%w: invalid player %q on %s's roster", ErrInvalidLeague, p, m.Name)
			}
			if players[p] {
				return fmt.Errorf("%w: %q is on %s's roster twice", ErrInvalidLeague, p, m.Name)
			}
			players[p] = true
		}
	}

	for _, t := range l.Eliminated {
		if model.ParseTeam(t) == model.TEAM_UNK {
			return fmt.Errorf("%w: unknown eliminated team %q", ErrInvalidLeague, t)
		}
	}
	return nil
}

// Manager returns the manager with the given name.
func (l *League) Manager(name string) (*Manager, bool) {
	for i := range l.Managers {
		if l.Managers[i].Name == name {
			return &l.Managers[i], true
		}
	}
	return nil, false
}

func (l *League) ManagerNames() []string {
	res := make([]string, 0, len(l.Managers))
	for _, m := range l.Managers {
		res = append(res, m.Name)
	}
	return res
}

func (l *League) RoundNames() []string {
	res := make([]string, 0, len(l.Rounds))
	for _, r := range l.Rounds {
		res = append(res, r.Name)
	}
	return res
}

// IsEliminated reports whether the team, in any form ParseTeam understands,
// is out of the playoffs.
func (l *League) IsEliminated(team string) bool {
	t := model.ParseTeam(team)
	if t == model.TEAM_UNK {
		return false
	}
	for _, e := range l.Eliminated {
		if t.Equals(model.ParseTeam(e)) {
			return true
		}
	}
	return false
}
