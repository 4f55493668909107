package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/JacquesMo/PlayoffsFantasyHype/config"
	"github.com/JacquesMo/PlayoffsFantasyHype/model"
)

// Load reads the scoreboard from d and brings it to the current layout.
//
//   - Nothing stored yet: a fresh seeded scoreboard.
//   - Unreadable document: a fresh seeded scoreboard along with an error
//     wrapping ErrCorruptStore. Callers may carry on with the fresh one.
//   - Older layout: migrated, and migrated is true.
//
// Any other error means the store could not be reached and no scoreboard is
// returned.
func Load(ctx context.Context, d DB, league *config.League) (board *model.Scoreboard, migrated bool, err error) {
	raw, err := d.Read(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Fresh(league), false, nil
		}
		return nil, false, err
	}

	board, migrated, err = Migrate(raw)
	if err != nil {
		if errors.Is(err, ErrUnsupportedVersion) {
			return nil, false, err
		}
		return Fresh(league), false, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}

	Seed(board, league)
	return board, migrated, nil
}

// Fresh returns an all zero scoreboard for the league.
func Fresh(league *config.League) *model.Scoreboard {
	board := model.NewScoreboard()
	Seed(board, league)
	return board
}

// Seed adds an entry for every manager and round of the league that does not
// have one yet. A missing round gets a zero for every roster player and a
// zero total. Existing entries are never changed.
func Seed(board *model.Scoreboard, league *config.League) {
	if board.Managers == nil {
		board.Managers = make(map[string]map[string]model.TeamRoundTotal)
	}

	for _, m := range league.Managers {
		rounds, ok := board.Managers[m.Name]
		if !ok || rounds == nil {
			rounds = make(map[string]model.TeamRoundTotal, len(league.Rounds))
			board.Managers[m.Name] = rounds
		}

		for _, r := range league.Rounds {
			if _, ok := rounds[r.Name]; ok {
				continue
			}
			t := model.TeamRoundTotal{Players: make(map[string]float64, len(m.Players))}
			for _, p := range m.Players {
				t.Players[p] = 0
			}
			rounds[r.Name] = t
		}
	}
}

// Encode serializes the scoreboard. Equal scoreboards encode to equal bytes.
func Encode(board *model.Scoreboard) ([]byte, error) {
	b, err := json.MarshalIndent(board, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("error encoding scoreboard: %w", err)
	}
	return b, nil
}

// Save replaces the stored scoreboard. The document is fully encoded before
// the store is touched.
func Save(ctx context.Context, d DB, board *model.Scoreboard) error {
	b, err := Encode(board)
	if err != nil {
		return err
	}
	if err := d.Write(ctx, b); err != nil {
		return fmt.Errorf("error saving scoreboard: %w", err)
	}
	return nil
}
