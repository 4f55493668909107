package tank01

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/JacquesMo/PlayoffsFantasyHype/model"
	"github.com/JacquesMo/PlayoffsFantasyHype/platforms/tank01/internal"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

const (
	tank01URL = "https://tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"

	headerRapidApiHost = "x-rapidapi-host"
	headerRapidApiKey  = "x-rapidapi-key"

	rapidApiHost = "tank01-nfl-live-in-game-real-time-statistics-nfl.p.rapidapi.com"

	pathGamesForWeek = "/getNFLGamesForWeek"
	pathBoxScore     = "/getNFLBoxScore"

	// The breaker opens after this many failed calls in a row and lets a
	// single call through again after breakerCooldown.
	breakerFailures = 5
	breakerCooldown = time.Minute

	// A refresh fans out to a box score per game, keep it under the RapidAPI
	// per second quota.
	requestsPerSecond = 5
)

// ErrUpstreamUnavailable wraps every failure to get usable data from tank01:
// transport errors, non 200 responses, malformed bodies and calls rejected
// while the circuit breaker is open.
var ErrUpstreamUnavailable = errors.New("tank01 unavailable")

type Client interface {
	// GetGamesForWeek lists the games of a week. An empty list means the
	// week has not been scheduled yet.
	GetGamesForWeek(ctx context.Context, week int, seasonType, season string) ([]model.Game, error)
	// GetBoxScore returns one line per player in the game, ordered by
	// player id.
	GetBoxScore(ctx context.Context, gameID string) ([]model.StatLine, error)
}

type client struct {
	url        string
	key        string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	limiter    *rate.Limiter
}

func New(key string, timeout time.Duration, log logrus.FieldLogger) Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &client{
		url: tank01URL,
		key: key,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		breaker: newBreaker(log),
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

func NewForTest(url, key string) Client {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	return &client{
		url:        url,
		key:        key,
		httpClient: http.DefaultClient,
		breaker:    newBreaker(log),
		limiter:    rate.NewLimiter(rate.Inf, 0),
	}
}

func newBreaker(log logrus.FieldLogger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "tank01",
		MaxRequests: 1,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker":    name,
				"from_state": from.String(),
				"to_state":   to.String(),
			}).Warn("tank01 circuit breaker state changed")
		},
	})
}

func (c *client) GetGamesForWeek(ctx context.Context, week int, seasonType, season string) ([]model.Game, error) {
	args := url.Values{}
	args.Set("week", strconv.Itoa(week))
	args.Set("seasonType", seasonType)
	args.Set("season", season)

	var games []internal.Game
	if err := c.tank01Request(ctx, &games, pathGamesForWeek, args); err != nil {
		return nil, fmt.Errorf("error getting games for week %d: %w", week, err)
	}

	result := make([]model.Game, 0, len(games))
	for _, g := range games {
		if g.GameID == "" {
			continue
		}
		result = append(result, model.Game{
			ID:     g.GameID,
			Away:   g.Away,
			Home:   g.Home,
			Status: g.GameStatus,
		})
	}
	return result, nil
}

func (c *client) GetBoxScore(ctx context.Context, gameID string) ([]model.StatLine, error) {
	args := url.Values{}
	args.Set("gameID", gameID)
	args.Set("fantasyPoints", "true")

	var box internal.BoxScore
	if err := c.tank01Request(ctx, &box, pathBoxScore, args); err != nil {
		return nil, fmt.Errorf("error getting box score for %s: %w", gameID, err)
	}

	result := make([]model.StatLine, 0, len(box.PlayerStats))
	for id, p := range box.PlayerStats {
		result = append(result, convertPlayerStats(id, &p))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].PlayerID < result[j].PlayerID
	})
	return result, nil
}

func convertPlayerStats(id string, p *internal.PlayerStats) model.StatLine {
	s := model.StatLine{
		PlayerID:    id,
		Name:        p.LongName,
		Team:        p.Team,
		FumblesLost: int(p.FumblesLost),
	}
	if p.PlayerID != "" {
		s.PlayerID = p.PlayerID
	}
	if s.Team == "" {
		s.Team = p.TeamAbv
	}
	if p.Passing != nil {
		s.PassYds = int(p.Passing.PassYds)
		s.PassTD = int(p.Passing.PassTD)
		s.Interceptions = int(p.Passing.Int)
		s.TwoPtPass = int(p.Passing.TwoPtPass)
	}
	if p.Rushing != nil {
		s.RushYds = int(p.Rushing.RushYds)
		s.RushTD = int(p.Rushing.RushTD)
		s.TwoPtRush = int(p.Rushing.TwoPtRush)
	}
	if p.Receiving != nil {
		s.RecYds = int(p.Receiving.RecYds)
		s.RecTD = int(p.Receiving.RecTD)
		s.Receptions = int(p.Receiving.Receptions)
		s.TwoPtRec = int(p.Receiving.TwoPtRec)
	}
	return s
}

// tank01Request calls path and decodes the body of the reply into res. Calls
// wait for the rate limiter and then go through the circuit breaker.
func (c *client) tank01Request(ctx context.Context, res any, path string, args url.Values) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}

	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.do(ctx, res, path, args)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
	return nil
}

func (c *client) do(ctx context.Context, res any, path string, args url.Values) error {
	u := fmt.Sprintf("%s%s", c.url, path)
	if len(args) > 0 {
		u = fmt.Sprintf("%s?%s", u, args.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("error creating tank01 http request: %w", err)
	}
	req.Header.Add(headerRapidApiHost, rapidApiHost)
	req.Header.Add(headerRapidApiKey, c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending tank01 http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code from tank01: %d", resp.StatusCode)
	}

	var envelope internal.Response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("error parsing response from tank01: %w", err)
	}
	if envelope.StatusCode != 0 && envelope.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code in tank01 body: %d", envelope.StatusCode)
	}
	if envelope.Error != "" {
		return fmt.Errorf("tank01 error: %s", envelope.Error)
	}
	if len(envelope.Body) == 0 {
		// tank01 leaves the body out for a week with nothing scheduled yet.
		if path == pathGamesForWeek {
			return nil
		}
		return errors.New("tank01 response has no body")
	}

	if err := json.Unmarshal(envelope.Body, res); err != nil {
		return fmt.Errorf("error parsing body from tank01: %w", err)
	}
	return nil
}
