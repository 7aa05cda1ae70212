package world

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// Runner generates every chunk of a region with a bounded worker pool.
type Runner struct {
	world   *World
	workers int
	log     *slog.Logger
}

// NewRunner creates a Runner. workers below 1 means a single worker.
func NewRunner(w *World, workers int, log *slog.Logger) *Runner {
	return &Runner{world: w, workers: max(workers, 1), log: log}
}

// Run generates the region. It stops scheduling chunks at the first error or
// when ctx is cancelled; chunks already being generated run to completion.
func (r *Runner) Run(ctx context.Context, region Region) error {
	start := time.Now()
	chunks := region.Chunks()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for _, pos := range chunks {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := r.world.GetOrGenerateChunk(pos.X, pos.Z); err != nil {
				return err
			}
			r.log.Debug("chunk generated", "x", pos.X, "z", pos.Z)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("generate region: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("generate region: %w", err)
	}

	r.log.Info("region generated",
		"chunks", len(chunks),
		"workers", r.workers,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return nil
}
