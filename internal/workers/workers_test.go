package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run()  { m.runCount++ }
func (m *mockWorker) Stop() { m.stopCount++ }

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Stop_AllWorkersAreStopped(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}

	ws := NewWorkers(w1, w2)
	ws.Run()
	ws.Stop()

	for i, w := range []*mockWorker{w1, w2} {
		if w.stopCount != 1 {
			t.Errorf("worker[%d]: expected stopCount=1, got %d", i, w.stopCount)
		}
	}
}

// checkerSpy counts CheckStatus calls.
type checkerSpy struct {
	mu    sync.Mutex
	calls int
}

func (c *checkerSpy) CheckStatus(context.Context) (models.SyncSession, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
	return models.SyncSession{}, nil
}

func (c *checkerSpy) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}

func TestRefreshWorker_TicksPeriodically(t *testing.T) {
	spy := &checkerSpy{}
	w := NewRefreshWorker(spy, 15*time.Millisecond, logger.Nop())

	w.Run()
	defer w.Stop()

	require.Eventually(t, func() bool {
		return spy.count() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestRefreshWorker_StopHaltsTicking(t *testing.T) {
	spy := &checkerSpy{}
	w := NewRefreshWorker(spy, 10*time.Millisecond, logger.Nop())

	w.Run()
	require.Eventually(t, func() bool {
		return spy.count() >= 1
	}, time.Second, 5*time.Millisecond)
	w.Stop()

	after := spy.count()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, spy.count(), "no ticks after Stop")
}

func TestRefreshWorker_StopWithoutRun(t *testing.T) {
	w := NewRefreshWorker(&checkerSpy{}, time.Minute, logger.Nop())

	// Safe to call when the worker never started.
	w.Stop()
}

// handlerSpy records HandleOnline invocations.
type handlerSpy struct {
	mu    sync.Mutex
	calls int
}

func (h *handlerSpy) HandleOnline(context.Context) (models.SyncRun, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.calls++
	return models.SyncRun{ID: "run-1", Outcome: models.OutcomeSuccess}, true
}

func (h *handlerSpy) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

// chanNotifier exposes a plain channel as an OnlineNotifier.
type chanNotifier chan struct{}

func (c chanNotifier) Online() <-chan struct{} { return c }

func TestRecoveryWorker_HandlesOnlineSignal(t *testing.T) {
	notifier := make(chanNotifier, 1)
	spy := &handlerSpy{}
	w := NewRecoveryWorker(notifier, spy, logger.Nop())

	w.Run()
	defer w.Stop()

	notifier <- struct{}{}
	require.Eventually(t, func() bool {
		return spy.count() == 1
	}, time.Second, 5*time.Millisecond)

	// One signal, one recovery pass.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, spy.count())
}

func TestRecoveryWorker_StopsOnClosedChannel(t *testing.T) {
	notifier := make(chanNotifier)
	spy := &handlerSpy{}
	w := NewRecoveryWorker(notifier, spy, logger.Nop())

	w.Run()
	close(notifier)

	// The goroutine exits on channel close; Stop then returns immediately.
	w.Stop()
	assert.Zero(t, spy.count())
}
