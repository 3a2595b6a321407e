package main

import (
	"context"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/graph-guard/mrxhash"
	"github.com/graph-guard/mrxhash/pkg/cli"
	"github.com/graph-guard/mrxhash/pkg/quality"
	"github.com/phuslu/log"
)

// runQuality scans every aligned 8 bit input window against every
// contiguous 16 bit digest window and reports collision counts, then
// digests the embedded word corpus and reports duplicate digests.
func runQuality(w io.Writer, c cli.CommandQuality) {
	l := log.Logger{
		Level:  log.InfoLevel,
		Writer: &log.IOWriter{Writer: w},
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	l.Info().
		Int("parallelism", c.Parallelism).
		Msg("scanning digest windows")

	start := time.Now()
	reports, err := quality.ScanWindows(ctx, mrxhash.Sum64Uint, c.Parallelism)
	if err != nil {
		l.Error().Err(err).Msg("scan aborted")
		return
	}

	collided := 0
	for i := range reports {
		if reports[i].Collisions > 0 {
			collided++
			l.Warn().
				Int("inputShift", reports[i].InputShift).
				Int("outputShift", reports[i].OutputShift).
				Int("collisions", reports[i].Collisions).
				Msg("window collisions")
		}
	}

	worst := quality.Worst(reports)
	l.Info().
		Dur("took", time.Since(start)).
		Int("windows", len(reports)).
		Int("collidedWindows", collided).
		Int("worstCollisions", worst.Collisions).
		Msg("scan complete")

	words, err := readWords()
	if err != nil {
		l.Error().Err(err).Msg("reading word corpus")
		return
	}
	set := quality.NewDigestSet()
	for _, w := range words {
		set.Add(mrxhash.Sum64(w))
	}
	l.Info().
		Uint64("words", set.Total()).
		Uint64("distinct", set.Distinct()).
		Uint64("collisions", set.Collisions()).
		Msg("word corpus digested")
}
