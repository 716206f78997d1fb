package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-progress-keeper/internal/logger"
	"github.com/MKhiriev/go-progress-keeper/internal/service"
	"github.com/MKhiriev/go-progress-keeper/internal/streak"
)

const defaultRetryDelay = time.Minute

// RolloverWorker closes each day when the 04:00 boundary passes: every user
// without a completion entry for the finished day gets an explicit
// not-completed entry, so gaps in the history are visible.
type RolloverWorker struct {
	progress service.ProgressService
	calc     *streak.Calculator

	// after is time.After outside of tests.
	after      func(time.Duration) <-chan time.Time
	retryDelay time.Duration

	logger *logger.Logger
}

func NewRolloverWorker(progress service.ProgressService, calc *streak.Calculator, logger *logger.Logger) *RolloverWorker {
	return &RolloverWorker{
		progress:   progress,
		calc:       calc,
		after:      time.After,
		retryDelay: defaultRetryDelay,
		logger:     logger,
	}
}

// Run waits for the next day boundary, closes the day that just ended and
// repeats until ctx is cancelled. A failed close is retried after
// retryDelay. Days missed meanwhile are closed one by one before the worker
// waits again.
func (w *RolloverWorker) Run(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)
	w.logger.Info().Msg("rollover worker started")

	day := w.calc.Today()
	wait := w.calc.UntilNextDay()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info().Msg("rollover worker stopped")
			return
		case <-w.after(wait):
		}

		if _, err := w.progress.CloseDay(ctx, day); err != nil {
			w.logger.Err(err).Str("day", streak.FormatDay(day)).Msg("error closing day, will retry")
			wait = w.retryDelay
			continue
		}

		today := w.calc.Today()
		if next := streak.NextDayStart(day); next.Before(today) {
			day, wait = next, 0
			continue
		}

		day, wait = today, w.calc.UntilNextDay()
	}
}
