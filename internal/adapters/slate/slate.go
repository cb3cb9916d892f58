// Package slate loads the day's games with probable pitchers and lineups.
package slate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
)

// ErrBadSlate reports an unreadable or malformed slate.
var ErrBadSlate = errors.New("invalid slate")

// DefaultFetchTimeout bounds a remote slate request.
const DefaultFetchTimeout = 30 * time.Second

// Game is one scheduled game as published by the slate source. Pitcher and
// lineup entries are raw display strings.
type Game struct {
	AwayTeam    string   `json:"away_team"`
	HomeTeam    string   `json:"home_team"`
	AwayPitcher string   `json:"away_pitcher"`
	HomePitcher string   `json:"home_pitcher"`
	AwayLineup  []string `json:"away_lineup"`
	HomeLineup  []string `json:"home_lineup"`
}

// Label renders "AWY @ HOM".
func (g Game) Label() string { return g.AwayTeam + " @ " + g.HomeTeam }

// Decode parses a JSON list of games.
func Decode(r io.Reader) ([]Game, error) {
	var games []Game
	if err := json.NewDecoder(r).Decode(&games); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSlate, err)
	}
	for i, g := range games {
		if strings.TrimSpace(g.AwayTeam) == "" || strings.TrimSpace(g.HomeTeam) == "" {
			return nil, fmt.Errorf("%w: game %d has no teams", ErrBadSlate, i)
		}
	}
	return games, nil
}

// Loader reads the slate from a file path or an http(s) URL.
type Loader struct {
	client *http.Client
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the client used for remote slates.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) {
		if c != nil {
			l.client = c
		}
	}
}

// NewLoader returns a Loader with a bounded HTTP client.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{client: &http.Client{Timeout: DefaultFetchTimeout}}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the games published at source.
func (l *Loader) Load(ctx context.Context, source string) ([]Game, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: no source configured", ErrBadSlate)
	}
	if isRemote(source) {
		return l.fetch(ctx, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("open slate: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build slate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch slate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: %s returned status %d", ErrBadSlate, url, resp.StatusCode)
	}
	return Decode(resp.Body)
}

func isRemote(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
