package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/matchup/internal/config"
	"github.com/okian/matchup/internal/inspect"
	"github.com/okian/matchup/pkg/logger"
)

const defaultTimeout = 30 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Table paths default to the bot's own configuration.
	_ = config.LoadDotEnv()
	cfg, err := config.Load(ctx)
	if err != nil {
		cfg = config.New(ctx)
	}

	var (
		pitcher  = flag.String("pitcher", "", `Pitcher as "Last, First" or "First Last"`)
		batter   = flag.String("batter", "", `Batter as "Last, First" or "First Last"`)
		arsenals = flag.String("arsenals", cfg.ArsenalCSV, "Pitch arsenal CSV")
		batters  = flag.String("batters", cfg.BatterPitchCSV, "Batter pitch-type CSV")
		seasons  = flag.String("seasons", cfg.SeasonCSV, "Optional season CSV")
		baseURL  = flag.String("url", "", "Query a running bot instead of local tables")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		compact  = flag.Bool("compact", false, "Print single-line JSON")
		verbose  = flag.Bool("verbose", false, "Enable debug logging")
		help     = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help || (*pitcher == "" && *baseURL == "") {
		inspect.ShowHelp(os.Stdout)
		return
	}

	if err := logger.Init(logger.WithWriter(os.Stderr)); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	err = inspect.Run(ctx, &inspect.Config{
		ArsenalCSV:     *arsenals,
		BatterPitchCSV: *batters,
		SeasonCSV:      *seasons,
		Pitcher:        *pitcher,
		Batter:         *batter,
		BaseURL:        *baseURL,
		Timeout:        *timeout,
		MediumPA:       cfg.ReliabilityMediumPA,
		HighPA:         cfg.ReliabilityHighPA,
		Compact:        *compact,
		Logger:         logger.Named("inspect"),
	}, os.Stdout)
	if err != nil {
		logger.Get().Error(ctx, "inspection failed", logger.Error(err))
		os.Exit(1)
	}
}
