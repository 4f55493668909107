package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Response is the envelope around every tank01 reply. body is a string when
// tank01 reports an error, so it is decoded separately.
type Response struct {
	StatusCode int             `json:"statusCode"`
	Body       json.RawMessage `json:"body"`
	Error      string          `json:"error"`
}

type Game struct {
	GameID     string `json:"gameID"`
	Away       string `json:"away"`
	Home       string `json:"home"`
	GameStatus string `json:"gameStatus"`
}

type BoxScore struct {
	GameID      string                 `json:"gameID"`
	GameStatus  string                 `json:"gameStatus"`
	PlayerStats map[string]PlayerStats `json:"playerStats"`
}

// PlayerStats is one player's line in a box score. tank01 also sends its own
// fantasy points, which are deliberately not decoded.
type PlayerStats struct {
	PlayerID    string     `json:"playerID"`
	LongName    string     `json:"longName"`
	Team        string     `json:"team"`
	TeamAbv     string     `json:"teamAbv"`
	Passing     *Passing   `json:"Passing"`
	Rushing     *Rushing   `json:"Rushing"`
	Receiving   *Receiving `json:"Receiving"`
	FumblesLost Number     `json:"fumblesLost"`
}

type Passing struct {
	PassYds   Number `json:"passYds"`
	PassTD    Number `json:"passTD"`
	Int       Number `json:"int"`
	TwoPtPass Number `json:"twoPtPass"`
}

type Rushing struct {
	RushYds   Number `json:"rushYds"`
	RushTD    Number `json:"rushTD"`
	TwoPtRush Number `json:"twoPtRush"`
}

type Receiving struct {
	RecYds     Number `json:"recYds"`
	RecTD      Number `json:"recTD"`
	Receptions Number `json:"receptions"`
	TwoPtRec   Number `json:"twoPtRec"`
}

// Number is a counting stat. tank01 sends them as strings most of the time,
// as plain numbers sometimes, and as an empty string when there is nothing to
// count.
type Number int

func (n *Number) UnmarshalJSON(b []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		*n = 0
		return nil
	}

	if i, err := strconv.Atoi(s); err == nil {
		*n = Number(i)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q", s)
	}
	*n = Number(math.Round(f))
	return nil
}
