// Package workers runs the background jobs of the progress server. Today
// that is the day rollover, which records a missed day for every user who
// never touched it once 04:00 has passed.
package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-progress-keeper/internal/config"
	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
)

// Worker is a background job. Run returns once ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Workers is the set of jobs enabled by [config.Workers].
type Workers struct {
	workers []Worker
}

// NewWorkers builds the enabled background workers.
func NewWorkers(services *service.Services, calc *streak.Calculator, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if !cfg.DisableRollover {
		w.workers = append(w.workers, NewRolloverWorker(services.ProgressService, calc, logger))
	} else {
		logger.Info().Msg("rollover worker disabled")
	}

	return w
}

// Run starts every worker in its own goroutine and waits for all of them to
// return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
