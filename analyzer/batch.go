package analyzer

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Run analyzes sources with up to Options.Workers files in flight.
// The results in the report are in the order of sources.
//
// Without Options.ContinueOnError the first failure stops the batch,
// files which have not been started by then are reported as skipped.
// The returned error is only set if ctx was cancelled.
func (a *Analyzer) Run(ctx context.Context, sources []string) (*Report, error) {
	report := &Report{
		RunID:   uuid.NewString(),
		Started: time.Now(),
		Files:   make([]Result, len(sources)),
	}

	log := a.log.With("run", report.RunID)
	log.Info("starting batch", "files", len(sources), "workers", a.opts.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.Workers)

	for i, source := range sources {
		i, source := i, source
		g.Go(func() error {
			res := a.AnalyzeFile(gctx, source)
			report.Files[i] = res

			if res.Status.Failed() && !a.opts.ContinueOnError {
				return fmt.Errorf("stopping batch after %s: %w", source, res.Err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("batch stopped early", "error", err)
	}

	report.Duration = time.Since(report.Started)
	report.Totals = totals(report.Files)

	log.Info("finished batch",
		"ok", report.Totals.OK,
		"failed", report.Totals.Failed,
		"skipped", report.Totals.Skipped,
		"duration", report.Duration,
	)

	return report, ctx.Err()
}
