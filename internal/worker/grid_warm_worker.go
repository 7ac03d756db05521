package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mobelio/estimator_api/internal/service"
)

// GridWarmWorker periodically rebuilds the combination grid into the cache so
// the first admin render after a catalog change is served warm.
type GridWarmWorker struct {
	combinationService *service.CombinationService
	interval           time.Duration
}

// NewGridWarmWorker constructs a GridWarmWorker.
func NewGridWarmWorker(combinationService *service.CombinationService, interval time.Duration) *GridWarmWorker {
	return &GridWarmWorker{
		combinationService: combinationService,
		interval:           interval,
	}
}

// Start begins the periodic warm loop and listens for context cancellation.
func (w *GridWarmWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting grid warm worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Grid warm worker stopped")
			return
		}
	}
}

func (w *GridWarmWorker) run(ctx context.Context) {
	start := time.Now()
	grid := w.combinationService.Grid(ctx)
	log.Info().
		Int("combinations", len(grid)).
		Dur("duration", time.Since(start)).
		Msg("Combination grid warmed")
}
