// Command persistence searches for multiplicative persistence records:
// integers needing a record number of multiply-all-digits steps to reach a
// single digit. Records go to stdout, one line each; progress diagnostics
// and logs go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jekstrand/persistence/internal/config"
	"github.com/jekstrand/persistence/internal/search"
)

// Injected at build time via -ldflags; defaults to "dev".
var version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	maxDigits := flag.Int("max-digits", 0, "largest digit count to search (overrides config)")
	workers := flag.Int("workers", -1, "search goroutines; 0 = one per CPU, 1 = sequential (overrides config)")
	flag.Parse()

	// ── Logging (initial — overridden below once config is loaded) ─────────
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// ── Config ─────────────────────────────────────────────────────────────
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}
	if *maxDigits > 0 {
		cfg.MaxDigits = *maxDigits
	}
	if *workers >= 0 {
		cfg.Workers = *workers
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Re-configure logging with the level from config (default: info).
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("persistence search starting",
		"version", version,
		"max_digits", cfg.MaxDigits,
		"workers", cfg.Workers,
		"progress_block", cfg.ProgressBlock,
		"min_persistence", cfg.MinPersistence)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := search.New(search.Config{
		MaxDigits:      cfg.MaxDigits,
		Workers:        cfg.Workers,
		ProgressBlock:  cfg.ProgressBlock,
		MinPersistence: cfg.MinPersistence,
	}, os.Stdout, os.Stderr)

	start := time.Now()
	best, err := s.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Warn("search interrupted",
				"best_persistence", best,
				"digit_counts_done", s.Progress().DigitCountsDone.Load(),
				"elapsed", time.Since(start))
		} else {
			slog.Error("search failed", "error", err)
		}
		os.Exit(1)
	}

	slog.Info("search finished",
		"best_persistence", best,
		"digit_counts_done", s.Progress().DigitCountsDone.Load(),
		"candidates", s.Progress().Candidates.Load(),
		"records", s.Progress().Records.Load(),
		"elapsed", time.Since(start))
}

// parseLogLevel converts a config string ("debug", "info", "warn", "error")
// to its slog.Level equivalent. Unknown values default to Info.
func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
