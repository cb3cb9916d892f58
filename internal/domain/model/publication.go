package model

import (
	"time"

	"github.com/google/uuid"
)

// ListKind names one of the published ranking lists.
type ListKind string

// Published lists, in posting order.
const (
	ListStrikeoutWatch ListKind = "strikeout_watch"
	ListStrikeoutFades ListKind = "strikeout_fades"
	ListHitterTargets  ListKind = "hitter_targets"
)

// ListKinds returns the lists in posting order.
func ListKinds() []ListKind {
	return []ListKind{ListStrikeoutWatch, ListStrikeoutFades, ListHitterTargets}
}

// Publication is one ranking list ready for delivery. Exactly one of
// Pitchers or Hitters is populated, according to Kind.
type Publication struct {
	ID        uuid.UUID      `json:"id"`
	RunID     uuid.UUID      `json:"run_id"`
	Date      string         `json:"date"`
	Kind      ListKind       `json:"kind"`
	Pitchers  []PitcherBoost `json:"pitchers,omitempty"`
	Hitters   []BatterTarget `json:"hitters,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Len returns the number of list entries.
func (p Publication) Len() int { return len(p.Pitchers) + len(p.Hitters) }

// Publications builds the messages for a run's rankings. Empty strikeout
// lists are skipped; the hitter list is always included.
func Publications(run RunReport) []Publication {
	now := run.Timestamp
	mk := func(kind ListKind) Publication {
		return Publication{ID: uuid.New(), RunID: run.RunID, Date: run.Date, Kind: kind, CreatedAt: now}
	}

	var out []Publication
	if len(run.Rankings.StrikeoutWatch) > 0 {
		p := mk(ListStrikeoutWatch)
		p.Pitchers = run.Rankings.StrikeoutWatch
		out = append(out, p)
	}
	if len(run.Rankings.StrikeoutFades) > 0 {
		p := mk(ListStrikeoutFades)
		p.Pitchers = run.Rankings.StrikeoutFades
		out = append(out, p)
	}
	p := mk(ListHitterTargets)
	p.Hitters = run.Rankings.HitterTargets
	if p.Hitters == nil {
		p.Hitters = []BatterTarget{}
	}
	out = append(out, p)
	return out
}
