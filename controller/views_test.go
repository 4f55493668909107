package controller

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/JacquesMo/PlayoffsFantasyHype/db"
	"github.com/JacquesMo/PlayoffsFantasyHype/model"
)

func TestLeaderboard(t *testing.T) {
	ctx := context.Background()
	c, tc, _ := newTestController(t)

	if _, err := c.Refresh(ctx); err != nil {
		t.Fatalf("error refreshing: %v", err)
	}

	lb, err := c.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("error getting leaderboard: %v", err)
	}

	want := []model.LeaderboardEntry{
		{Rank: 1, Manager: "Max", RoundTotals: []float64{53.42, 0, 0, 0}, Total: 53.42},
		{Rank: 2, Manager: "Jacq/MG3", RoundTotals: []float64{0, 46.8, 0, 0}, Total: 46.8},
	}
	if !reflect.DeepEqual(want, lb.Entries) {
		t.Errorf("expected %+v, got %+v", want, lb.Entries)
	}
	if !reflect.DeepEqual(tc.League.RoundNames(), lb.Rounds) {
		t.Errorf("expected rounds %v, got %v", tc.League.RoundNames(), lb.Rounds)
	}
	if !lb.Updated.Equal(tc.Clock.Now()) {
		t.Errorf("expected updated %v, got %v", tc.Clock.Now(), lb.Updated)
	}
}

func TestLeaderboard_ties(t *testing.T) {
	ctx := context.Background()
	c, tc, _ := newTestController(t)

	board := db.Fresh(tc.League)
	db.Merge(board, "Wild Card", map[string]model.TeamRoundTotal{
		"Max":      {Total: 10.1},
		"Jacq/MG3": {Total: 10},
	}, nil, nil)
	db.Merge(board, "Divisional", map[string]model.TeamRoundTotal{
		"Max":      {Total: 0.2},
		"Jacq/MG3": {Total: 0.3},
	}, nil, nil)
	if err := db.Save(ctx, tc.DB, board); err != nil {
		t.Fatalf("error saving: %v", err)
	}

	lb, err := c.Leaderboard(ctx)
	if err != nil {
		t.Fatalf("error getting leaderboard: %v", err)
	}

	// 10.1 + 0.2 and 10 + 0.3 are equal once rounded
	for i, m := range []string{"Max", "Jacq/MG3"} {
		e := lb.Entries[i]
		if e.Manager != m || e.Rank != 1 || e.Total != 10.3 {
			t.Errorf("entry %d: expected %s ranked 1 with 10.3, got %+v", i, m, e)
		}
	}
}

func TestTeamBreakdown(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if _, err := c.Refresh(ctx); err != nil {
		t.Fatalf("error refreshing: %v", err)
	}

	tb, err := c.TeamBreakdown(ctx, "Jacq/MG3")
	if err != nil {
		t.Fatalf("error getting team: %v", err)
	}

	want := []model.PlayerBreakdown{
		{Nickname: "CMC", Name: "Christian McCaffrey", Team: "SF", Points: []float64{0, 24, 0, 0}, Total: 24},
		{Nickname: "Saquon Barkley", Name: "Saquon Barkley", Points: []float64{0, 0, 0, 0}, Total: 0},
		{Nickname: "Kenneth", Name: "Kenneth Walker III", Team: "SEA", Points: []float64{0, 22.8, 0, 0}, Total: 22.8},
	}
	if !reflect.DeepEqual(want, tb.Players) {
		t.Errorf("expected %+v, got %+v", want, tb.Players)
	}
	if !reflect.DeepEqual([]float64{0, 46.8, 0, 0}, tb.RoundTotals) || tb.Total != 46.8 {
		t.Errorf("unexpected totals %v %v", tb.RoundTotals, tb.Total)
	}
}

func TestTeamBreakdown_eliminated(t *testing.T) {
	ctx := context.Background()
	c, tc, _ := newTestController(t)

	tc.League.Eliminated = []string{"Buffalo"}
	if _, err := c.Refresh(ctx); err != nil {
		t.Fatalf("error refreshing: %v", err)
	}

	tb, err := c.TeamBreakdown(ctx, "Max")
	if err != nil {
		t.Fatalf("error getting team: %v", err)
	}

	got := map[string]bool{}
	for _, p := range tb.Players {
		got[p.Nickname] = p.Eliminated
	}
	want := map[string]bool{"Puka": false, "Josh Allen": true, "Nico": false}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestTeamBreakdown_unknownManager(t *testing.T) {
	c, _, _ := newTestController(t)

	if _, err := c.TeamBreakdown(context.Background(), "Ovi"); !errors.Is(err, ErrUnknownManager) {
		t.Errorf("expected ErrUnknownManager, got %v", err)
	}
}

func TestPlayerStats(t *testing.T) {
	ctx := context.Background()
	c, _, _ := newTestController(t)

	if _, err := c.Refresh(ctx); err != nil {
		t.Fatalf("error refreshing: %v", err)
	}

	tests := map[string]struct {
		query string
		want  []string
	}{
		"all":      {query: "", want: []string{"Puka", "CMC", "Kenneth", "Josh Allen", "Nico", "Saquon Barkley"}},
		"nickname": {query: "kenn", want: []string{"Kenneth"}},
		"manager":  {query: "max", want: []string{"Puka", "Josh Allen", "Nico"}},
		"no match": {query: "zzz", want: nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rows, err := c.PlayerStats(ctx, tc.query)
			if err != nil {
				t.Fatalf("error getting stats: %v", err)
			}
			var got []string
			for _, r := range rows {
				got = append(got, r.Nickname)
			}
			if !reflect.DeepEqual(tc.want, got) {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}

	rows, _ := c.PlayerStats(ctx, "")
	wantCMC := model.PlayerStatsRow{
		Manager:  "Jacq/MG3",
		Nickname: "CMC",
		Name:     "Christian McCaffrey",
		Team:     "SF",
		Stats:    model.DetailStats{RushRecYards: 130, RushRecTD: 1, Receptions: 5, PPR: 24},
	}
	if rows[1] != wantCMC {
		t.Errorf("expected %+v, got %+v", wantCMC, rows[1])
	}
}

func TestPlayerStats_sumsRounds(t *testing.T) {
	ctx := context.Background()
	c, tc, _ := newTestController(t)

	board := db.Fresh(tc.League)
	db.Merge(board, "Wild Card", nil, map[string]model.DetailStats{
		"Puka Nacua": {RushRecYards: 110, Receptions: 8, RushRecTD: 1, PPR: 25},
	}, map[string]string{"Puka Nacua": "LAR"})
	db.Merge(board, "Divisional", nil, map[string]model.DetailStats{
		"Puka Nacua": {RushRecYards: 33, Receptions: 3, PPR: 6.3},
	}, nil)
	if err := db.Save(ctx, tc.DB, board); err != nil {
		t.Fatalf("error saving: %v", err)
	}

	rows, err := c.PlayerStats(ctx, "Puka")
	if err != nil {
		t.Fatalf("error getting stats: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %v", rows)
	}

	want := model.DetailStats{RushRecYards: 143, RushRecTD: 1, Receptions: 11, PPR: 31.3}
	if rows[0].Stats != want {
		t.Errorf("expected %+v, got %+v", want, rows[0].Stats)
	}
	if rows[0].Team != "LAR" {
		t.Errorf("expected team LAR, got %s", rows[0].Team)
	}
}
