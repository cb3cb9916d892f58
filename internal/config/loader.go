package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/robfig/cron/v3"
)

// Environment conventions.
const (
	EnvPrefix  = "MATCHUP_"
	EnvConfig  = "MATCHUP_CONFIG"
	DotEnvFile = ".env"
)

// LoadDotEnv loads KEY=VALUE pairs from the given files into the process
// environment without overriding variables already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{DotEnvFile}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("%w: %s: %w", ErrLoadConfig, f, err)
		}
	}
	return nil
}

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if MATCHUP_CONFIG is set
//  3. env (prefix MATCHUP_)
func Load(ctx context.Context) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path := os.Getenv(EnvConfig); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// MATCHUP_WEBHOOK_URL -> webhook_url (flat keys, underscores kept).
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, EnvPrefix)
		return strings.ToLower(s)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field ranges and that the schedule and timezone parse.
func (c *Config) Validate() error {
	var problems []string
	if c.Addr == "" {
		problems = append(problems, "addr must not be empty")
	}
	if c.ArsenalCSV == "" || c.BatterPitchCSV == "" {
		problems = append(problems, "arsenal_csv and batter_pitch_csv are required")
	}
	if c.SlatePath == "" {
		problems = append(problems, "slate_path is required")
	}
	if _, err := cron.ParseStandard(c.Schedule); err != nil {
		problems = append(problems, fmt.Sprintf("schedule %q: %v", c.Schedule, err))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("timezone %q: %v", c.Timezone, err))
	}
	if c.KBoostThreshold <= 0 {
		problems = append(problems, "k_boost_threshold must be positive")
	}
	if c.LeagueKRate <= 0 || c.LeagueBattingAverage <= 0 {
		problems = append(problems, "league averages must be positive")
	}
	if c.ReliabilityMediumPA <= 0 || c.ReliabilityHighPA <= c.ReliabilityMediumPA {
		problems = append(problems, "reliability thresholds must satisfy 0 < medium < high")
	}
	if c.StrikeoutTopN <= 0 || c.BatterTopN <= 0 {
		problems = append(problems, "top-N limits must be positive")
	}
	if c.PublishSpacingMS < 0 || c.WebhookTimeoutMS <= 0 {
		problems = append(problems, "publish_spacing_ms must be >= 0 and webhook_timeout_ms > 0")
	}
	if c.OutboxSize <= 0 || c.HistorySize <= 0 {
		problems = append(problems, "outbox_size and history_size must be positive")
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
	}
	return nil
}
