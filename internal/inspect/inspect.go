package inspect

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/okian/matchup/internal/adapters/slate"
	"github.com/okian/matchup/internal/adapters/statcast"
	"github.com/okian/matchup/internal/domain/arsenal"
	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/scoring"
	"github.com/okian/matchup/pkg/logger"
)

// ErrNoPitcher is returned when no pitcher was requested.
var ErrNoPitcher = errors.New("a pitcher name is required")

// Run inspects the configured pitcher and batter and writes the result as
// JSON to w. With BaseURL set the bot's latest run is queried instead of the
// local tables.
func Run(ctx context.Context, cfg *Config, w io.Writer) error {
	var (
		out any
		err error
	)
	if cfg.BaseURL != "" {
		out, err = fetchRemote(ctx, cfg)
	} else {
		out, err = Local(ctx, cfg)
	}
	if err != nil {
		return err
	}
	return write(w, out, cfg.Compact)
}

// Local scores the request against the exported tables.
func Local(ctx context.Context, cfg *Config) (Result, error) {
	if cfg.Pitcher == "" {
		return Result{}, ErrNoPitcher
	}
	tables, err := statcast.LoadFiles(statcast.Paths{
		Arsenals:    cfg.ArsenalCSV,
		BatterPitch: cfg.BatterPitchCSV,
		SeasonLines: cfg.SeasonCSV,
	})
	if err != nil {
		return Result{}, fmt.Errorf("load tables: %w", err)
	}

	name := keyOf(cfg.Pitcher, slate.ParsePitcherName)
	row, err := tables.Arsenals.Find(name)
	if err != nil {
		return Result{}, err
	}
	ars, err := arsenal.Normalize(row.Name, row.Pitches)
	if err != nil {
		return Result{}, err
	}
	res := Result{Pitcher: PitcherView{Name: row.Name, Mix: ars.Mix(), Arsenal: ars}}
	cfg.log().Debug(ctx, "arsenal normalized", logger.String("pitcher", row.Name), logger.Int("pitches", ars.Len()))

	if cfg.Batter == "" {
		return res, nil
	}

	batter := keyOf(cfg.Batter, slate.ParseBatterName)
	stats, err := tables.BatterPitch.Find(batter, ars.Types())
	if err != nil {
		res.Missing = model.ReasonNotFound
		return res, nil
	}

	th := scoring.DefaultThresholds()
	if cfg.MediumPA > 0 && cfg.HighPA > cfg.MediumPA {
		th = scoring.Thresholds{MediumPA: cfg.MediumPA, HighPA: cfg.HighPA}
	}
	wr, tier, err := scoring.NewScorer(scoring.WithThresholds(th)).Score(stats, ars)
	if err != nil {
		res.Missing = model.ReasonNoOverlap
		return res, nil
	}
	m := scoring.Record(wr, tier, batter, "", row.Name)
	if line, err := tables.Seasons.Find(batter); err == nil {
		m.Baseline = &line
	}
	res.Matchup = &m
	return res, nil
}

// keyOf accepts either the "Last, First" key or a display name.
func keyOf(name string, parse func(string) string) string {
	if strings.Contains(name, ",") {
		return strings.TrimSpace(name)
	}
	return parse(name)
}

func write(w io.Writer, v any, compact bool) error {
	var (
		b   []byte
		err error
	)
	if compact {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	_, err = w.Write(append(b, '\n'))
	return err
}
