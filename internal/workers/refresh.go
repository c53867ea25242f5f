package workers

import (
	"context"
	"sync"
	"time"

	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/models"
)

// StatusChecker is the slice of the orchestrator the refresh worker needs.
type StatusChecker interface {
	CheckStatus(ctx context.Context) (models.SyncSession, error)
}

type refreshWorker struct {
	checker  StatusChecker
	interval time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshWorker creates a worker that re-checks the session status every
// interval. A single ticker drives it, so after the process wakes from a
// long suspend at most one catch-up check fires instead of one per missed
// interval. If interval is zero or negative it defaults to 5 minutes.
func NewRefreshWorker(checker StatusChecker, interval time.Duration, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &refreshWorker{checker: checker, interval: interval, logger: log}
}

func (w *refreshWorker) Run() {
	w.Stop()

	w.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if _, err := w.checker.CheckStatus(ctx); err != nil {
					w.logger.Err(err).Str("func", "refreshWorker.Run").Msg("periodic status check failed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the worker is not running.
func (w *refreshWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
