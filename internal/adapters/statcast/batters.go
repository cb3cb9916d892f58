package statcast

import (
	"fmt"
	"io"
	"strings"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/internal/domain/pitch"
)

const batterTableName = "batter pitch-type"

// Batter pitch-type columns.
const (
	colPitchType = "pitch_type"
	colBA        = "ba"
	colEstBA     = "est_ba"
	colSLG       = "slg"
	colHardHit   = "hard_hit_percent"
	colWhiff     = "whiff_percent"
	colK         = "k_percent"
	colPA        = "pa"
	colPitches   = "pitches"
)

// BatterPitchRow is one batter's line against one pitch type.
type BatterPitchRow struct {
	Name string
	Stat model.PitchStat
}

// BatterPitchTable holds one season of batter-vs-pitch-type rows.
type BatterPitchTable struct {
	rows []BatterPitchRow
}

// LoadBatterPitchStats parses the batter pitch-arsenal leaderboard.
func LoadBatterPitchStats(r io.Reader) (*BatterPitchTable, error) {
	t, err := readTable(batterTableName, r,
		NameColumn, colPitchType, colBA, colEstBA, colSLG, colHardHit, colWhiff, colK, colPA)
	if err != nil {
		return nil, err
	}

	out := &BatterPitchTable{rows: make([]BatterPitchRow, 0, len(t.rows))}
	for i, rec := range t.rows {
		row := i + 1
		code := t.cell(rec, colPitchType)
		if code == "" {
			return nil, &InputShapeError{Table: batterTableName, Row: row, Column: colPitchType, Detail: "empty pitch type"}
		}
		pt, _ := pitch.Parse(code)

		st := model.PitchStat{PitchType: pt}
		if st.BattingAverage, err = t.stat(rec, row, colBA); err != nil {
			return nil, err
		}
		if st.EstimatedBattingAverage, err = t.stat(rec, row, colEstBA); err != nil {
			return nil, err
		}
		if st.Slugging, err = t.stat(rec, row, colSLG); err != nil {
			return nil, err
		}
		if st.HardHitRate, err = t.stat(rec, row, colHardHit); err != nil {
			return nil, err
		}
		if st.WhiffRate, err = t.stat(rec, row, colWhiff); err != nil {
			return nil, err
		}
		if st.StrikeoutRate, err = t.stat(rec, row, colK); err != nil {
			return nil, err
		}
		if st.PlateAppearances, err = t.count(rec, row, colPA); err != nil {
			return nil, err
		}
		if st.PitchesSeen, err = t.count(rec, row, colPitches); err != nil {
			return nil, err
		}
		out.rows = append(out.rows, BatterPitchRow{Name: t.cell(rec, NameColumn), Stat: st})
	}
	return out, nil
}

// Len returns the number of batter x pitch-type rows.
func (t *BatterPitchTable) Len() int { return len(t.rows) }

// Find resolves name to the first matching player key and returns that
// player's rows for the requested pitch types, in table order. Rows of other
// players sharing the surname are not blended in. A resolved player with no
// rows for the pitch types yields an empty slice and no error.
func (t *BatterPitchTable) Find(name string, types []pitch.Type) ([]model.PitchStat, error) {
	key, ok := t.resolve(name)
	if !ok {
		return nil, fmt.Errorf("batter %q: %w", name, ErrNotFound)
	}

	want := make(map[pitch.Type]struct{}, len(types))
	for _, p := range types {
		want[p] = struct{}{}
	}

	out := []model.PitchStat{}
	for _, row := range t.rows {
		if row.Name != key {
			continue
		}
		if _, ok := want[row.Stat.PitchType]; ok {
			out = append(out, row.Stat)
		}
	}
	return out, nil
}

func (t *BatterPitchTable) resolve(name string) (string, bool) {
	for _, row := range t.rows {
		if nameMatches(row.Name, name) {
			return row.Name, true
		}
	}
	return "", false
}

// Names returns the distinct player keys in table order.
func (t *BatterPitchTable) Names() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, row := range t.rows {
		k := strings.TrimSpace(row.Name)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
