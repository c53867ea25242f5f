package workers

import (
	"context"
	"sync"

	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/models"
)

// OnlineNotifier delivers a signal each time network connectivity returns.
// The platform shell owns the channel; closing it stops the worker.
type OnlineNotifier interface {
	Online() <-chan struct{}
}

// RecoveryHandler is the slice of the orchestrator the recovery worker needs.
type RecoveryHandler interface {
	HandleOnline(ctx context.Context) (models.SyncRun, bool)
}

type recoveryWorker struct {
	notifier OnlineNotifier
	handler  RecoveryHandler
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRecoveryWorker creates a worker that reacts to connectivity-restored
// signals by running the orchestrator's recovery path.
func NewRecoveryWorker(notifier OnlineNotifier, handler RecoveryHandler, log *logger.Logger) Worker {
	return &recoveryWorker{notifier: notifier, handler: handler, logger: log}
}

func (w *recoveryWorker) Run() {
	w.Stop()

	w.mu.Lock()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-w.notifier.Online():
				if !ok {
					return
				}
				run, started := w.handler.HandleOnline(ctx)
				if started {
					w.logger.Info().
						Str("run", run.ID).
						Str("outcome", string(run.Outcome)).
						Msg("network recovery sync completed")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the worker is not running.
func (w *recoveryWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
