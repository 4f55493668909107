package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestTeamRoundTotal_json(t *testing.T) {
	in := TeamRoundTotal{Players: map[string]float64{"CMC": 24, "Puka": 0}, Total: 24}

	b, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("error marshaling: %v", err)
	}
	if string(b) != `{"CMC":24,"Puka":0,"Total":24}` {
		t.Errorf("unexpected json: %s", b)
	}

	var out TeamRoundTotal
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("error unmarshaling: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Errorf("expected %v, got %v", in, out)
	}
}

func TestTeamRoundTotal_missingTotal(t *testing.T) {
	var out TeamRoundTotal
	if err := json.Unmarshal([]byte(`{"CMC": 3}`), &out); err == nil {
		t.Errorf("expected an error for a round without a total")
	}
}

func TestScoreboard_marshal(t *testing.T) {
	s := NewScoreboard()
	s.Updated = time.Date(2026, 1, 11, 20, 0, 0, 0, time.UTC)
	s.Managers["Max"] = map[string]TeamRoundTotal{
		"Wild Card": {Players: map[string]float64{"Puka": 25}, Total: 25},
	}
	s.WeeklyStats["Wild Card"] = map[string]DetailStats{"Puka Nacua": {Receptions: 8, PPR: 25}}
	s.PlayerTeams["Puka Nacua"] = "LAR"

	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("error marshaling: %v", err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		t.Fatalf("error reading document back: %v", err)
	}
	for _, k := range []string{"Max", KeyVersion, KeyUpdated, KeyWeeklyStats, KeyPlayerTeams} {
		if _, ok := doc[k]; !ok {
			t.Errorf("expected top level key %s in %s", k, b)
		}
	}

	var back Scoreboard
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("error unmarshaling: %v", err)
	}
	if !reflect.DeepEqual(s.Managers, back.Managers) {
		t.Errorf("managers changed, expected %v, got %v", s.Managers, back.Managers)
	}
	if !back.Updated.Equal(s.Updated) {
		t.Errorf("expected updated %v, got %v", s.Updated, back.Updated)
	}

	again, err := json.Marshal(&back)
	if err != nil {
		t.Fatalf("error marshaling again: %v", err)
	}
	if string(again) != string(b) {
		t.Errorf("encoding is not stable:\n%s\n%s", b, again)
	}
}

func TestScoreboard_reservedManager(t *testing.T) {
	s := NewScoreboard()
	s.Managers[KeyWeeklyStats] = map[string]TeamRoundTotal{}

	if _, err := json.Marshal(s); err == nil || !strings.Contains(err.Error(), "reserved") {
		t.Errorf("expected a reserved key error, got %v", err)
	}
}

func TestScoreboard_unmarshalVersion(t *testing.T) {
	tests := map[string]struct {
		doc     string
		wantErr bool
	}{
		"current":     {doc: `{"Version": 2, "Max": {"Wild Card": {"Total": 1}}}`},
		"no version":  {doc: `{"Max": {"Wild Card": {"Total": 1}}}`, wantErr: true},
		"future":      {doc: `{"Version": 3}`, wantErr: true},
		"bare number": {doc: `{"Version": 2, "Max": {"Wild Card": 14.5}}`, wantErr: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var s Scoreboard
			err := json.Unmarshal([]byte(tc.doc), &s)
			if tc.wantErr != (err != nil) {
				t.Errorf("expected error: %v, got: %v", tc.wantErr, err)
			}
		})
	}
}
