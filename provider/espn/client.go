// Package espn fetches NFL game results from the ESPN scoreboard API and
// maps them onto the engine's raw result shape.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/jwillison/gbupool/engine"
)

const defaultTimeout = 30 * time.Second

// regularSeason is ESPN's seasontype query value for regular-season games.
const regularSeason = 2

// Config controls how the client reaches the scoreboard API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is an engine.ResultProvider over the ESPN scoreboard endpoint.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a scoreboard client.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
	}
}

var _ engine.ResultProvider = (*Client)(nil)

// FetchResults retrieves one week's games. Any transport, status, or decode
// failure is returned whole so the caller can abort its cycle cleanly.
func (c *Client) FetchResults(ctx context.Context, year, week int) ([]engine.RawResult, error) {
	url := fmt.Sprintf("%s/scoreboard?dates=%d&seasontype=%d&week=%d", c.baseURL, year, regularSeason, week)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("espn: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("espn: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("espn: decoding scoreboard: %w", err)
	}

	results := make([]engine.RawResult, 0, len(payload.Events))
	for _, ev := range payload.Events {
		raw, ok := mapEvent(ev, week)
		if !ok {
			continue
		}
		results = append(results, raw)
	}
	return results, nil
}

type scoreboardResponse struct {
	Events []scoreboardEvent `json:"events"`
}

type scoreboardEvent struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Status struct {
		Type struct {
			Completed bool `json:"completed"`
		} `json:"type"`
	} `json:"status"`
	Competitions []struct {
		Competitors []competitor `json:"competitors"`
	} `json:"competitions"`
}

type competitor struct {
	HomeAway string `json:"homeAway"`
	Score    string `json:"score"`
	Team     struct {
		DisplayName string `json:"displayName"`
	} `json:"team"`
}

// mapEvent flattens one scoreboard event. Events without a home and away
// competitor are dropped.
func mapEvent(ev scoreboardEvent, week int) (engine.RawResult, bool) {
	if len(ev.Competitions) == 0 {
		return engine.RawResult{}, false
	}

	var home, away *competitor
	for i := range ev.Competitions[0].Competitors {
		c := &ev.Competitions[0].Competitors[i]
		switch c.HomeAway {
		case "home":
			home = c
		case "away":
			away = c
		}
	}
	if home == nil || away == nil {
		return engine.RawResult{}, false
	}

	return engine.RawResult{
		ProviderGameID: ev.ID,
		Date:           parseEventDate(ev.Date),
		Week:           week,
		HomeTeamName:   home.Team.DisplayName,
		AwayTeamName:   away.Team.DisplayName,
		HomeScore:      parseScore(home.Score),
		AwayScore:      parseScore(away.Score),
		Completed:      ev.Status.Type.Completed,
	}, true
}

// parseScore returns nil for missing or unparsable scores, matching the
// engine's "not yet reported" meaning.
func parseScore(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// ESPN event dates carry minute precision ("2025-09-05T00:20Z"); some feeds
// include seconds.
var eventDateLayouts = []string{
	"2006-01-02T15:04Z07:00",
	time.RFC3339,
}

func parseEventDate(s string) time.Time {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
