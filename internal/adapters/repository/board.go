package repository

import (
	"sort"
	"strings"
	"sync/atomic"

	"github.com/okian/matchup/internal/domain/model"
)

// Entry is one scored matchup with its rank on the board.
type Entry struct {
	Rank    int           `json:"rank"`
	Game    string        `json:"matchup"`
	Matchup model.Matchup `json:"entry"`
}

// snapshot is an immutable, rank-ordered view of one run.
type snapshot struct {
	date    string
	entries []Entry
}

// Board ranks every scored matchup of the latest run by composite score,
// best for the batter first. Readers see a consistent snapshot while a new
// run is published.
type Board struct {
	current atomic.Pointer[snapshot]
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	b := &Board{}
	b.current.Store(&snapshot{})
	return b
}

// Publish replaces the board with the matchups of r. Ordering is composite
// score desc, then batter name, then game order.
func (b *Board) Publish(r model.RunReport) { //nolint:gocritic // read-only copy
	var entries []Entry
	for _, g := range r.Reports {
		for _, m := range g.KeyMatchups {
			entries = append(entries, Entry{Game: g.Matchup, Matchup: m})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		a, c := entries[i].Matchup, entries[j].Matchup
		if a.MatchupScore != c.MatchupScore {
			return a.MatchupScore > c.MatchupScore
		}
		return a.Batter < c.Batter
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}
	b.current.Store(&snapshot{date: r.Date, entries: entries})
}

// Date returns the slate date of the board.
func (b *Board) Date() string { return b.current.Load().date }

// Len returns the number of ranked matchups.
func (b *Board) Len() int { return len(b.current.Load().entries) }

// TopN returns the n best matchups for batters.
func (b *Board) TopN(n int) ([]Entry, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}
	e := b.current.Load().entries
	n = min(n, len(e))
	return append([]Entry(nil), e[:n]...), nil
}

// BottomN returns the n worst matchups for batters, worst first.
func (b *Board) BottomN(n int) ([]Entry, error) {
	if n <= 0 {
		return nil, ErrInvalidLimit
	}
	e := b.current.Load().entries
	n = min(n, len(e))
	out := make([]Entry, 0, n)
	for i := len(e) - 1; i >= len(e)-n; i-- {
		out = append(out, e[i])
	}
	return out, nil
}

// Find returns every ranked matchup of a batter, matched case-insensitively
// on the "Last, First" key.
func (b *Board) Find(batter string) ([]Entry, error) {
	var out []Entry
	for _, e := range b.current.Load().entries {
		if strings.EqualFold(e.Matchup.Batter, batter) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out, nil
}
