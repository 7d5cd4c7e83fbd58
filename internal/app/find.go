package app

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/dispatch"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/logsource"
	"github.com/andrzej-bieniek/pkg-gst-debug-viewer/internal/search"
)

// FindResult summarises a headless search.
type FindResult struct {
	Matches int
	Lines   int
	Steps   int
}

// Find scans opts.Path for query without a terminal and writes each match as
// "line:text" to w, numbering lines from 1. It runs the same sentinel and
// dispatch loop as the viewer and stops between batches when ctx is done.
func Find(ctx context.Context, opts Options, query string, w io.Writer) (FindResult, error) {
	cfg, logger, closeLog, err := setup(opts)
	if err != nil {
		return FindResult{}, err
	}
	defer func() { _ = closeLog() }()
	log := logger.WithField("logger", "main.find")

	var src *logsource.Lines
	if opts.TailLines > 0 {
		src, err = logsource.Tail(opts.Path, opts.TailLines)
	} else {
		src, err = logsource.Load(opts.Path)
	}
	if err != nil {
		return FindResult{}, fmt.Errorf("load log: %w", err)
	}

	loop := dispatch.NewLoop()
	sentinel := search.NewSentinel(loop, cfg.YieldBatch)

	res := FindResult{Lines: src.Len()}
	var writeErr error
	sentinel.OnMatch = func(_ *search.Operation, line int) {
		res.Matches++
		if _, err := fmt.Fprintf(w, "%d:%s\n", line+1, src.Line(line)); err != nil {
			writeErr = err
			sentinel.Abort()
		}
	}
	sentinel.OnComplete = func(op *search.Operation) {
		log.WithFields(logrus.Fields{
			"query":   op.Query.Text,
			"matches": res.Matches,
		}).Debug("search complete")
	}

	op := search.NewOperation(src, query, true, search.DefaultStart).
		WithMatcher(search.NewMatcher(cfg.MatchMode, query))
	if err := sentinel.RunFor(op); err != nil {
		return res, err
	}

	err = drive(ctx, loop)
	res.Steps = loop.Steps()
	if err != nil {
		sentinel.Abort()
		return res, err
	}
	if writeErr != nil {
		return res, fmt.Errorf("write match: %w", writeErr)
	}
	return res, nil
}

// drive runs loop steps until it is idle or ctx is done. The context is
// checked between batches only.
func drive(ctx context.Context, loop *dispatch.Loop) error {
	for loop.Pending() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		loop.Iterate()
	}
	return nil
}
