package statcast

import (
	"fmt"
	"io"

	"github.com/okian/matchup/internal/domain/model"
)

const seasonTableName = "season batting"

const colBattingAvg = "batting_avg"

// SeasonTable holds full-season batting lines keyed by player.
type SeasonTable struct {
	names []string
	lines []model.SeasonLine
}

// LoadSeasonLines parses the season batting leaderboard.
func LoadSeasonLines(r io.Reader) (*SeasonTable, error) {
	t, err := readTable(seasonTableName, r, NameColumn, colPA, colK, colBattingAvg)
	if err != nil {
		return nil, err
	}

	out := &SeasonTable{}
	for i, rec := range t.rows {
		row := i + 1
		var line model.SeasonLine
		if line.PlateAppearances, err = t.count(rec, row, colPA); err != nil {
			return nil, err
		}
		if line.StrikeoutRate, err = t.stat(rec, row, colK); err != nil {
			return nil, err
		}
		if line.BattingAverage, err = t.stat(rec, row, colBattingAvg); err != nil {
			return nil, err
		}
		out.names = append(out.names, t.cell(rec, NameColumn))
		out.lines = append(out.lines, line)
	}
	return out, nil
}

// Len returns the number of players.
func (t *SeasonTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.lines)
}

// Find returns the first season line whose key contains name's last name.
// A nil table finds nothing.
func (t *SeasonTable) Find(name string) (model.SeasonLine, error) {
	if t != nil {
		for i, key := range t.names {
			if nameMatches(key, name) {
				return t.lines[i], nil
			}
		}
	}
	return model.SeasonLine{}, fmt.Errorf("season line %q: %w", name, ErrNotFound)
}
