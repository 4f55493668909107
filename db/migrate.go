package db

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JacquesMo/PlayoffsFantasyHype/model"
)

// keyLegacyPlayerStats held un-rounded stats summed over every round. It
// can't be split back into rounds so it is dropped.
const keyLegacyPlayerStats = "PlayerStats"

var ErrUnsupportedVersion = errors.New("unsupported scoreboard version")

// Migrate parses a stored document of any known layout. migrated is true when
// the document was not already in the current layout.
func Migrate(raw []byte) (board *model.Scoreboard, migrated bool, err error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, false, fmt.Errorf("error parsing scoreboard: %w", err)
	}
	if doc == nil {
		return nil, false, errors.New("scoreboard is not an object")
	}

	v, ok := doc[model.KeyVersion]
	if !ok {
		board, err := migrateV1(doc)
		if err != nil {
			return nil, false, err
		}
		return board, true, nil
	}

	var version int
	if err := json.Unmarshal(v, &version); err != nil {
		return nil, false, fmt.Errorf("error parsing version: %w", err)
	}
	switch {
	case version == model.SchemaVersion:
		board = model.NewScoreboard()
		if err := json.Unmarshal(raw, board); err != nil {
			return nil, false, err
		}
		return board, false, nil
	case version < model.SchemaVersion:
		// Older tags share the untagged layout.
		delete(doc, model.KeyVersion)
		board, err := migrateV1(doc)
		if err != nil {
			return nil, false, err
		}
		return board, true, nil
	default:
		return nil, false, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
}

// migrateV1 converts the untagged layout. Rounds were either a bare team
// total or an object of player points next to the total.
func migrateV1(doc map[string]json.RawMessage) (*model.Scoreboard, error) {
	board := model.NewScoreboard()

	for k, raw := range doc {
		var err error
		switch k {
		case keyLegacyPlayerStats:
			continue
		case model.KeyUpdated:
			err = json.Unmarshal(raw, &board.Updated)
		case model.KeyWeeklyStats:
			err = json.Unmarshal(raw, &board.WeeklyStats)
		case model.KeyPlayerTeams:
			err = json.Unmarshal(raw, &board.PlayerTeams)
		default:
			board.Managers[k], err = migrateV1Rounds(raw)
		}
		if err != nil {
			return nil, fmt.Errorf("error migrating %q: %w", k, err)
		}
	}

	if board.WeeklyStats == nil {
		board.WeeklyStats = make(map[string]map[string]model.DetailStats)
	}
	if board.PlayerTeams == nil {
		board.PlayerTeams = make(map[string]string)
	}
	return board, nil
}

func migrateV1Rounds(raw json.RawMessage) (map[string]model.TeamRoundTotal, error) {
	var rounds map[string]json.RawMessage
	if err := json.Unmarshal(raw, &rounds); err != nil {
		return nil, err
	}

	res := make(map[string]model.TeamRoundTotal, len(rounds))
	for r, v := range rounds {
		var t model.TeamRoundTotal
		if bytes.HasPrefix(bytes.TrimSpace(v), []byte("{")) {
			if err := json.Unmarshal(v, &t); err != nil {
				return nil, fmt.Errorf("round %q: %w", r, err)
			}
		} else {
			if err := json.Unmarshal(v, &t.Total); err != nil {
				return nil, fmt.Errorf("round %q: %w", r, err)
			}
			t.Players = make(map[string]float64)
		}
		res[r] = t
	}
	return res, nil
}
