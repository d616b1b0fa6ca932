// Package search enumerates canonical candidate numbers in order of digit
// count and reports every new multiplicative-persistence record.
//
// Candidates are generated per Matt Parker's construction (see prefix.go):
// one of six fixed prefixes followed by trailing digits drawn from {5,7,9}
// or {7,8,9}. The subfamily is believed, not proven, to contain all
// persistence records; the search deliberately preserves that heuristic
// rather than widening to an exhaustive walk.
package search

import (
	"context"
	"io"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Config holds search tuning parameters.
type Config struct {
	// MaxDigits is the largest candidate digit count searched.
	MaxDigits int
	// Workers is the number of concurrent search goroutines. 0 means
	// GOMAXPROCS. 1 is the sequential mode: digit counts are searched in
	// ascending order and record output is deterministic.
	Workers int
	// ProgressBlock is the number of consecutive digit counts grouped per
	// progress diagnostic.
	ProgressBlock int
	// MinPersistence is the record floor: candidates at or below it are
	// never reported.
	MinPersistence int
}

// DefaultConfig returns the parameters of the reference search: every
// digit count up to 100, records above persistence 2.
func DefaultConfig() Config {
	return Config{
		MaxDigits:      100,
		Workers:        0,
		ProgressBlock:  100,
		MinPersistence: 2,
	}
}

// Searcher owns the shared state of one search run: the record log and the
// live progress counters. Create one per run.
type Searcher struct {
	cfg      Config
	records  *recordLog
	progress *Progress
	diag     io.Writer
}

// New creates a Searcher writing record lines to records and block
// diagnostics to diag.
func New(cfg Config, records, diag io.Writer) *Searcher {
	return &Searcher{
		cfg:      cfg,
		records:  newRecordLog(records, cfg.MinPersistence),
		progress: &Progress{},
		diag:     diag,
	}
}

// Progress returns the live counters for this run.
func (s *Searcher) Progress() *Progress {
	return s.progress
}

// Best returns the highest persistence accepted so far.
func (s *Searcher) Best() int {
	return s.records.best()
}

// Run searches every digit count from 2 through MaxDigits and returns the
// best persistence found. Digit counts are claimed dynamically from a
// shared counter so that large digit counts, which carry combinatorially
// more candidates, spread across workers. Run blocks until the search
// completes or ctx is cancelled; on cancellation it returns ctx's error
// and whatever maximum had been reached.
func (s *Searcher) Run(ctx context.Context) (int, error) {
	workers := s.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	blocks := newBlockTracker(s.cfg.MaxDigits, s.cfg.ProgressBlock, s.diag)

	// next holds the last claimed digit count; the first Add yields 2.
	var next atomic.Int64
	next.Store(1)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			w := newWorker(s.records, s.progress)
			for {
				digitCount := int(next.Add(1))
				if digitCount > s.cfg.MaxDigits {
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				w.searchDigitCount(digitCount)
				s.progress.DigitCountsDone.Add(1)
				blocks.finished(digitCount)
			}
		})
	}
	if err := g.Wait(); err != nil {
		return s.records.best(), err
	}
	return s.records.best(), nil
}
