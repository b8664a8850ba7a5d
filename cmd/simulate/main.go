package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"daifugo/internal/config"
	"daifugo/internal/sim"
)

var (
	configPath = flag.String("config", "", "path to configuration file")
	matches    = flag.Int("matches", 100, "number of matches to simulate")
	seed       = flag.Int64("seed", time.Now().UnixNano(), "base seed; match i runs with seed+i")
	workers    = flag.Int("workers", 0, "worker goroutines, 0 means NumCPU")
	maxTurns   = flag.Int("max-turns", 2000, "turn cap per match before truncation")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := initLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting simulation batch",
		zap.Int("matches", *matches),
		zap.Int64("seed", *seed),
		zap.Int("workers", *workers),
	)

	runner := sim.NewRunner(logger, sim.Options{
		Matches:  *matches,
		Seed:     *seed,
		Workers:  *workers,
		MaxTurns: *maxTurns,
		Rules:    cfg.RuleSettings(),
	})

	start := time.Now()
	summary := runner.RunBatch()

	avgTurns := 0.0
	if summary.Matches > 0 {
		avgTurns = float64(summary.TotalTurns) / float64(summary.Matches)
	}
	logger.Info("simulation batch finished",
		zap.Int("matches", summary.Matches),
		zap.Int("failures", summary.Failures),
		zap.Int("truncated", summary.Truncated),
		zap.Float64("avg_turns", avgTurns),
		zap.Ints("wins_by_seat", summary.WinsBySeat[:]),
		zap.Duration("elapsed", time.Since(start)),
	)

	if summary.Failures > 0 {
		os.Exit(1)
	}
}

func initLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build()
}
