package tally

import (
	"context"
	"fmt"
	"time"

	"github.com/idelchi/ftwstat/internal/walk"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 500 * time.Millisecond

// Run walks the tree at opt.Path and returns the aggregated statistics.
//
// Every regular file whose full path contains opt.Pattern is counted, its
// size added to the byte total and, if opt.Out is set, reported as it is found.
// Stat failures and unreadable directories are reported to opt.Err and the
// walk continues with the next entry.
//
// The walk stops early only when ctx is cancelled or an internal consistency
// violation is detected; in both cases no Stats are returned.
func Run(ctx context.Context, opt Options, progressHook func(Progress)) (*Stats, error) {
	log := logger{w: opt.Err, enabled: opt.Debug}

	interval := opt.ProgressInterval
	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	vis := &visitor{
		ctx:      ctx,
		pattern:  opt.Pattern,
		out:      opt.Out,
		errs:     opt.Err,
		log:      log,
		progress: progressHook,
		interval: interval,
		matches:  make([]Match, 0),
	}

	walker := walk.Walker{
		Fs:   opt.Fs,
		Warn: vis.warn,
	}

	log.printf("starting path: %q\n", opt.Path)
	log.printf("pattern: %q\n", opt.Pattern)

	start := time.Now()

	if err := walker.Walk(opt.Path, vis); err != nil {
		return nil, fmt.Errorf("walking %q: %w", opt.Path, err)
	}

	elapsed := time.Since(start)

	log.printf("visited %d entries in %v\n", vis.entries, elapsed)

	return &Stats{
		Path:       opt.Path,
		Pattern:    opt.Pattern,
		Counts:     vis.counts,
		Matches:    vis.matches,
		ErrorCount: vis.errorCount,
		Elapsed:    elapsed,
	}, nil
}
