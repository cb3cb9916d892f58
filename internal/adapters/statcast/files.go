package statcast

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Paths locates the leaderboard exports for one season. Seasons is optional.
type Paths struct {
	Arsenals    string
	BatterPitch string
	SeasonLines string
}

// Tables is the full set of inputs for a scoring run.
type Tables struct {
	Arsenals    *ArsenalTable
	BatterPitch *BatterPitchTable
	Seasons     *SeasonTable // nil when no season export is configured
}

// LoadFiles opens and parses every configured table.
func LoadFiles(p Paths) (*Tables, error) {
	if p.Arsenals == "" || p.BatterPitch == "" {
		return nil, errors.New("statcast: arsenal and batter pitch-type paths are required")
	}

	var out Tables
	var err error
	if out.Arsenals, err = loadFile(p.Arsenals, LoadArsenals); err != nil {
		return nil, err
	}
	if out.BatterPitch, err = loadFile(p.BatterPitch, LoadBatterPitchStats); err != nil {
		return nil, err
	}
	if p.SeasonLines != "" {
		if out.Seasons, err = loadFile(p.SeasonLines, LoadSeasonLines); err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func loadFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
