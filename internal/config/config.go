// Package config defines the bot's configuration and how it is loaded.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Loading layers defaults, an optional YAML file and MATCHUP_ env vars.
// - Errors are wrapped with this package's sentinel kinds.
package config

import (
	"context"
	"time"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects the log handler: text or json.
	LogFormat string `koanf:"log_format"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Season is the leaderboard season the tables were exported for.
	Season int `koanf:"season"`

	// Input tables. SeasonCSV is optional.
	ArsenalCSV     string `koanf:"arsenal_csv"`
	BatterPitchCSV string `koanf:"batter_pitch_csv"`
	SeasonCSV      string `koanf:"season_csv"`

	// SlatePath is a JSON file or an http(s) URL listing the day's games.
	SlatePath string `koanf:"slate_path"`

	// ArchiveDir receives one JSON report per run; empty disables archiving.
	ArchiveDir string `koanf:"archive_dir"`

	// Schedule is a standard five-field cron spec evaluated in Timezone.
	Schedule string `koanf:"schedule"`
	Timezone string `koanf:"timezone"`

	// RunOnStart triggers a run at startup; RunOnce exits after it.
	RunOnStart bool `koanf:"run_on_start"`
	RunOnce    bool `koanf:"run_once"`

	// WebhookURL receives the published lists; empty logs them instead.
	WebhookURL       string `koanf:"webhook_url"`
	WebhookTimeoutMS int    `koanf:"webhook_timeout_ms"`

	// PublishSpacingMS separates consecutive posts.
	PublishSpacingMS int `koanf:"publish_spacing_ms"`

	OutboxSize  int `koanf:"outbox_size"`
	HistorySize int `koanf:"history_size"`
	LedgerSize  int `koanf:"ledger_size"`

	// Ranking.
	KBoostThreshold        float64 `koanf:"k_boost_threshold"`
	LeagueKRate            float64 `koanf:"league_k_rate"`
	LeagueBattingAverage   float64 `koanf:"league_batting_average"`
	ExcludeMissingBaseline bool    `koanf:"exclude_missing_baseline"`
	StrikeoutTopN          int     `koanf:"strikeout_top_n"`
	BatterTopN             int     `koanf:"batter_top_n"`

	// Reliability tiers by total plate appearances.
	ReliabilityMediumPA int `koanf:"reliability_medium_pa"`
	ReliabilityHighPA   int `koanf:"reliability_high_pa"`
}

// New creates a Config with defaults. Context is accepted first by project
// convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:             "info",
		LogFormat:            "text",
		Addr:                 ":9080",
		Season:               2025,
		ArsenalCSV:           "data/pitch_arsenals.csv",
		BatterPitchCSV:       "data/batter_pitch_stats.csv",
		SlatePath:            "data/slate.json",
		ArchiveDir:           "archive",
		Schedule:             "0 15 * * *",
		Timezone:             "UTC",
		WebhookTimeoutMS:     10_000,
		PublishSpacingMS:     60_000,
		OutboxSize:           64,
		HistorySize:          30,
		LedgerSize:           4096,
		KBoostThreshold:      5.0,
		LeagueKRate:          22.5,
		LeagueBattingAverage: 0.250,
		StrikeoutTopN:        3,
		BatterTopN:           5,
		ReliabilityMediumPA:  10,
		ReliabilityHighPA:    50,
	}
}

// WebhookTimeout returns the webhook timeout as a duration.
func (c *Config) WebhookTimeout() time.Duration {
	return time.Duration(c.WebhookTimeoutMS) * time.Millisecond
}

// PublishSpacing returns the pause between posts as a duration.
func (c *Config) PublishSpacing() time.Duration {
	return time.Duration(c.PublishSpacingMS) * time.Millisecond
}

// Location resolves Timezone. Callers run Validate first.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
