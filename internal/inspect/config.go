// Package inspect backs the matchup-inspect tool: it prints one pitcher's
// normalized arsenal and, optionally, one batter's weighted matchup against
// it, either from local tables or from a running bot.
package inspect

import (
	"time"

	"github.com/okian/matchup/internal/domain/model"
	"github.com/okian/matchup/pkg/logger"
)

// Config holds configuration for one inspection.
type Config struct {
	ArsenalCSV     string        // Pitch arsenal export
	BatterPitchCSV string        // Batter pitch-type export
	SeasonCSV      string        // Optional season export
	Pitcher        string        // Pitcher "Last, First" or display name
	Batter         string        // Optional batter "Last, First" or display name
	BaseURL        string        // Running bot to query instead of local tables
	Timeout        time.Duration // HTTP request timeout
	MediumPA       int           // Reliability boundary LOW/MEDIUM
	HighPA         int           // Reliability boundary MEDIUM/HIGH
	Compact        bool          // Print single-line JSON
	Logger         logger.Logger // Defaults to a no-op logger
}

func (c *Config) log() logger.Logger {
	if c.Logger == nil {
		return logger.Nop()
	}
	return c.Logger
}

// PitcherView is the arsenal section of the output.
type PitcherView struct {
	Name    string               `json:"name"`
	Mix     string               `json:"arsenal_desc"`
	Arsenal model.PitcherArsenal `json:"arsenal"`
}

// Result is what the tool prints.
type Result struct {
	Pitcher PitcherView    `json:"pitcher"`
	Matchup *model.Matchup `json:"matchup,omitempty"`
	Missing string         `json:"missing_reason,omitempty"`
}
