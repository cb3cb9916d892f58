package statcast

import (
	"fmt"
	"io"

	"github.com/okian/matchup/internal/domain/arsenal"
	"github.com/okian/matchup/internal/domain/pitch"
)

const arsenalTableName = "pitch arsenal"

// ArsenalRow is one pitcher's raw leaderboard line.
type ArsenalRow struct {
	Name    string
	Pitches []arsenal.RawPitch
}

// ArsenalTable holds one season of pitcher arsenal rows.
type ArsenalTable struct {
	rows []ArsenalRow
}

func speedColumn(t pitch.Type) string { return t.Abbr() + "_avg_speed" }
func usageColumn(t pitch.Type) string { return t.Abbr() + "_usage_rate" }

// LoadArsenals parses the arsenal leaderboard. Each pitch type contributes a
// "<code>_avg_speed" and "<code>_usage_rate" column pair; a half-present pair
// or a table with no pair at all is an InputShapeError.
func LoadArsenals(r io.Reader) (*ArsenalTable, error) {
	t, err := readTable(arsenalTableName, r, NameColumn)
	if err != nil {
		return nil, err
	}

	var present []pitch.Type
	var missing []string
	for _, p := range pitch.All() {
		hasSpeed, hasUsage := t.has(speedColumn(p)), t.has(usageColumn(p))
		switch {
		case hasSpeed && hasUsage:
			present = append(present, p)
		case hasSpeed:
			missing = append(missing, usageColumn(p))
		case hasUsage:
			missing = append(missing, speedColumn(p))
		}
	}
	if len(missing) > 0 {
		return nil, &InputShapeError{Table: arsenalTableName, Missing: missing}
	}
	if len(present) == 0 {
		return nil, &InputShapeError{Table: arsenalTableName, Detail: "no pitch-type columns"}
	}

	out := &ArsenalTable{rows: make([]ArsenalRow, 0, len(t.rows))}
	for i, rec := range t.rows {
		row := ArsenalRow{Name: t.cell(rec, NameColumn)}
		for _, p := range present {
			speed, err := t.stat(rec, i+1, speedColumn(p))
			if err != nil {
				return nil, err
			}
			usage, err := t.stat(rec, i+1, usageColumn(p))
			if err != nil {
				return nil, err
			}
			row.Pitches = append(row.Pitches, arsenal.RawPitch{Type: p, Velocity: speed, UsagePercent: usage})
		}
		out.rows = append(out.rows, row)
	}
	return out, nil
}

// Len returns the number of pitchers.
func (t *ArsenalTable) Len() int { return len(t.rows) }

// Find returns the first pitcher whose key contains name's last name.
func (t *ArsenalTable) Find(name string) (ArsenalRow, error) {
	for _, row := range t.rows {
		if nameMatches(row.Name, name) {
			return row, nil
		}
	}
	return ArsenalRow{}, fmt.Errorf("pitcher %q: %w", name, ErrNotFound)
}
