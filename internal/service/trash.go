package service

import (
	"strings"
	"sync"
	"time"

	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/models"
)

type pendingEntry struct {
	timer *time.Timer
	meta  models.PendingDeletion
}

type trashScheduler struct {
	remover      AssetRemover
	defaultGrace time.Duration
	logger       *logger.Logger

	// mu guards the pending map only; removal I/O runs outside the lock so
	// operations on different keys never block one another.
	mu      sync.Mutex
	pending map[string]*pendingEntry
}

// NewTrashScheduler constructs the [TrashScheduler]. The scheduler is the
// sole owner of the pending-deletions map; removal goes through remover.
// defaultGrace is used for Schedule calls that pass a non-positive grace.
func NewTrashScheduler(remover AssetRemover, defaultGrace time.Duration, log *logger.Logger) TrashScheduler {
	if defaultGrace <= 0 {
		defaultGrace = 10 * time.Second
	}
	return &trashScheduler{
		remover:      remover,
		defaultGrace: defaultGrace,
		logger:       log,
		pending:      make(map[string]*pendingEntry),
	}
}

func (t *trashScheduler) Schedule(resourceKey string, grace time.Duration) {
	if !isLocalResource(resourceKey) {
		t.logger.Debug().Str("resource", resourceKey).Msg("refusing to schedule non-local resource")
		return
	}
	if grace <= 0 {
		grace = t.defaultGrace
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Reset-the-clock semantics: an existing timer for the same key is
	// cancelled before the new one starts, never stacked.
	if prev, ok := t.pending[resourceKey]; ok {
		prev.timer.Stop()
	}

	entry := &pendingEntry{
		meta: models.PendingDeletion{
			ResourceKey: resourceKey,
			ScheduledAt: time.Now(),
			Grace:       grace,
		},
	}
	entry.timer = time.AfterFunc(grace, func() {
		t.expire(resourceKey, entry)
	})
	t.pending[resourceKey] = entry

	t.logger.Debug().
		Str("resource", resourceKey).
		Dur("grace", grace).
		Msg("scheduled deletion")
}

// expire is the timer callback. The entry is removed from the map under the
// mutex before any I/O happens: from that point a Restore for the key is a
// provable no-op, and a racing Schedule has already replaced the entry so
// the identity check below drops this callback.
func (t *trashScheduler) expire(resourceKey string, entry *pendingEntry) {
	t.mu.Lock()
	current, ok := t.pending[resourceKey]
	if !ok || current != entry {
		t.mu.Unlock()
		return
	}
	delete(t.pending, resourceKey)
	t.mu.Unlock()

	// Removal failure is logged, not retried: the entry is gone either way.
	if err := t.remover.Remove(resourceKey); err != nil {
		t.logger.Err(err).Str("resource", resourceKey).Msg("failed to remove trashed asset")
		return
	}
	t.logger.Info().Str("resource", resourceKey).Msg("trashed asset removed")
}

func (t *trashScheduler) Restore(resourceKey string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	entry, ok := t.pending[resourceKey]
	if !ok {
		return
	}

	entry.timer.Stop()
	delete(t.pending, resourceKey)

	t.logger.Debug().Str("resource", resourceKey).Msg("pending deletion restored")
}

func (t *trashScheduler) Pending() []models.PendingDeletion {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.PendingDeletion, 0, len(t.pending))
	for _, entry := range t.pending {
		out = append(out, entry.meta)
	}
	return out
}

func (t *trashScheduler) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	for key, entry := range t.pending {
		entry.timer.Stop()
		delete(t.pending, key)
	}
}

// isLocalResource reports whether resourceKey addresses a locally-stored
// file. Remote URLs and embedded data URIs have no local file to remove.
func isLocalResource(resourceKey string) bool {
	if resourceKey == "" {
		return false
	}
	for _, prefix := range []string{"http://", "https://", "data:"} {
		if strings.HasPrefix(resourceKey, prefix) {
			return false
		}
	}
	return true
}
