package db

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/JacquesMo/PlayoffsFantasyHype/config"
	"github.com/JacquesMo/PlayoffsFantasyHype/db/mockdb"
	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/stretchr/testify/mock"
)

var testLeague = &config.League{
	Season:     "2025",
	SeasonType: "post",
	Rounds: []config.Round{
		{Name: "Wild Card", Week: 1},
		{Name: "Divisional", Week: 2},
		{Name: "Conference Championship", Week: 3},
		{Name: "Super Bowl", Week: 4},
	},
	Managers: []config.Manager{
		{Name: "Max", Players: []string{"Puka", "Josh Allen"}},
		{Name: "Jacq/MG3", Players: []string{"CMC", "Kenneth"}},
	},
}

func TestLoad_missing(t *testing.T) {
	d := NewFileDB(filepath.Join(t.TempDir(), "playoff_data.json"))

	board, migrated, err := Load(context.Background(), d, testLeague)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if migrated {
		t.Errorf("a fresh scoreboard is not migrated")
	}
	assertSeeded(t, board)

	want := model.TeamRoundTotal{Players: map[string]float64{"CMC": 0, "Kenneth": 0}}
	if got := board.Managers["Jacq/MG3"]["Super Bowl"]; !reflect.DeepEqual(want, got) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLoad_corrupt(t *testing.T) {
	tests := map[string]string{
		"truncated":        `{"Version": 2, "Max": {"Wild Ca`,
		"not an object":    `[1, 2, 3]`,
		"null":             `null`,
		"round not a dict": `{"Max": {"Wild Card": "lots"}}`,
		"missing total":    `{"Version": 2, "Max": {"Wild Card": {"Puka": 3}}}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			d := &mockdb.DB{}
			d.On("Read", mock.Anything).Return([]byte(doc), nil)

			board, _, err := Load(context.Background(), d, testLeague)
			if !errors.Is(err, ErrCorruptStore) {
				t.Errorf("expected ErrCorruptStore, got %v", err)
			}
			if board == nil {
				t.Fatalf("expected a fresh scoreboard along with the error")
			}
			assertSeeded(t, board)
			if board.Managers["Max"]["Wild Card"].Total != 0 {
				t.Errorf("expected a zero scoreboard, got %v", board.Managers["Max"])
			}
		})
	}
}

func TestLoad_readError(t *testing.T) {
	readErr := errors.New("connection refused")
	d := &mockdb.DB{}
	d.On("Read", mock.Anything).Return(nil, readErr)

	board, _, err := Load(context.Background(), d, testLeague)
	if !errors.Is(err, readErr) {
		t.Errorf("expected the read error, got %v", err)
	}
	if errors.Is(err, ErrCorruptStore) {
		t.Errorf("a read error is not a corrupt store")
	}
	if board != nil {
		t.Errorf("expected no scoreboard, got %v", board)
	}
}

func TestLoad_futureVersion(t *testing.T) {
	d := &mockdb.DB{}
	d.On("Read", mock.Anything).Return([]byte(`{"Version": 7}`), nil)

	board, _, err := Load(context.Background(), d, testLeague)
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("expected ErrUnsupportedVersion, got %v", err)
	}
	if board != nil {
		t.Errorf("a newer scoreboard must not be replaced by a fresh one")
	}
}

func TestLoad_olderVersionTag(t *testing.T) {
	tests := map[string]string{
		"version 0": `{"Version": 0, "Max": {"Wild Card": 14.5}}`,
		"version 1": `{"Version": 1, "Max": {"Wild Card": {"Puka": 14.5, "Total": 14.5}}}`,
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			d := &mockdb.DB{}
			d.On("Read", mock.Anything).Return([]byte(doc), nil)

			board, migrated, err := Load(context.Background(), d, testLeague)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !migrated {
				t.Errorf("expected the scoreboard to be migrated")
			}
			if board.Version != model.SchemaVersion {
				t.Errorf("expected version %d, got %d", model.SchemaVersion, board.Version)
			}
			if _, ok := board.Managers[model.KeyVersion]; ok {
				t.Errorf("the version tag must not become a manager")
			}
			if got := board.Managers["Max"]["Wild Card"].Total; got != 14.5 {
				t.Errorf("expected 14.5, got %v", got)
			}
		})
	}
}

func TestLoad_legacy(t *testing.T) {
	doc := `{
		"Max": {"Wild Card": 14.5, "Divisional": {"Puka": 20, "Josh Allen": 3.25, "Total": 23.25}},
		"PlayerStats": {"Puka Nacua": {"Receptions": 8, "Passing Yards": 0}}
	}`
	d := &mockdb.DB{}
	d.On("Read", mock.Anything).Return([]byte(doc), nil)

	board, migrated, err := Load(context.Background(), d, testLeague)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !migrated {
		t.Errorf("expected the scoreboard to be migrated")
	}
	if board.Version != model.SchemaVersion {
		t.Errorf("expected version %d, got %d", model.SchemaVersion, board.Version)
	}
	assertSeeded(t, board)

	tests := map[string]model.TeamRoundTotal{
		"Wild Card":  {Players: map[string]float64{}, Total: 14.5},
		"Divisional": {Players: map[string]float64{"Puka": 20, "Josh Allen": 3.25}, Total: 23.25},
	}
	for round, want := range tests {
		if got := board.Managers["Max"][round]; !reflect.DeepEqual(want, got) {
			t.Errorf("%s: expected %v, got %v", round, want, got)
		}
	}

	b, err := Encode(board)
	if err != nil {
		t.Fatalf("error encoding: %v", err)
	}
	if bytes.Contains(b, []byte("PlayerStats")) {
		t.Errorf("expected the legacy player stats to be dropped: %s", b)
	}
	if !bytes.Contains(b, []byte(`"Wild Card": {
            "Total": 14.5
        }`)) {
		t.Errorf("expected the bare total to become an object: %s", b)
	}
}

func TestLoad_keepsUnknownManagers(t *testing.T) {
	doc := `{"Version": 2, "Ovi": {"Wild Card": {"CMC": 4, "Total": 4}}}`
	d := &mockdb.DB{}
	d.On("Read", mock.Anything).Return([]byte(doc), nil)

	board, _, err := Load(context.Background(), d, testLeague)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if board.Managers["Ovi"]["Wild Card"].Total != 4 {
		t.Errorf("expected Ovi's history to be kept, got %v", board.Managers["Ovi"])
	}
	assertSeeded(t, board)
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	d := NewFileDB(filepath.Join(t.TempDir(), "playoff_data.json"))

	board := Fresh(testLeague)
	Merge(board, "Wild Card",
		map[string]model.TeamRoundTotal{"Max": {Players: map[string]float64{"Puka": 25, "Josh Allen": 28.42}, Total: 53.42}},
		map[string]model.DetailStats{"Puka Nacua": {Receptions: 8, RushRecYards: 110, RushRecTD: 1, PPR: 25}},
		map[string]string{"Puka Nacua": "LAR"})

	if err := Save(ctx, d, board); err != nil {
		t.Fatalf("error saving: %v", err)
	}

	back, migrated, err := Load(ctx, d, testLeague)
	if err != nil {
		t.Fatalf("error loading: %v", err)
	}
	if migrated {
		t.Errorf("a current scoreboard is not migrated")
	}
	if !reflect.DeepEqual(board, back) {
		t.Errorf("expected %v, got %v", board, back)
	}
}

func TestSave_writeError(t *testing.T) {
	writeErr := errors.New("disk full")
	d := &mockdb.DB{}
	d.On("Write", mock.Anything, mock.Anything).Return(writeErr)

	if err := Save(context.Background(), d, Fresh(testLeague)); !errors.Is(err, writeErr) {
		t.Errorf("expected the write error, got %v", err)
	}
}

func TestSave_reservedManager(t *testing.T) {
	d := &mockdb.DB{}
	board := Fresh(testLeague)
	board.Managers[model.KeyPlayerTeams] = map[string]model.TeamRoundTotal{}

	if err := Save(context.Background(), d, board); err == nil {
		t.Errorf("expected an error encoding a reserved manager name")
	}
	d.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
}

func TestSeed_keepsExisting(t *testing.T) {
	board := model.NewScoreboard()
	board.Managers["Max"] = map[string]model.TeamRoundTotal{
		"Wild Card": {Players: map[string]float64{"Puka": 25}, Total: 25},
	}

	Seed(board, testLeague)

	want := model.TeamRoundTotal{Players: map[string]float64{"Puka": 25}, Total: 25}
	if got := board.Managers["Max"]["Wild Card"]; !reflect.DeepEqual(want, got) {
		t.Errorf("expected %v, got %v", want, got)
	}
	assertSeeded(t, board)
}

func assertSeeded(t *testing.T, board *model.Scoreboard) {
	t.Helper()
	for _, m := range testLeague.Managers {
		for _, r := range testLeague.Rounds {
			if _, ok := board.Managers[m.Name][r.Name]; !ok {
				t.Errorf("expected an entry for %s / %s", m.Name, r.Name)
			}
		}
	}
}
