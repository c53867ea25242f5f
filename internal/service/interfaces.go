package service

import (
	"context"
	"time"

	"github.com/nekotick/synccore/models"
)

// Vault key identifiers for the session credentials.
const (
	VaultKeyAccessToken  = "auth.access_token"
	VaultKeyRefreshToken = "auth.refresh_token"
	VaultKeyAccountID    = "auth.account_id"
)

// CredentialVault manages account secrets across the storage-format
// migration: secrets written by pre-vault releases live in the legacy
// keyring until they are copied, exactly once, into the encrypted store.
type CredentialVault interface {
	// MigrateIfNeeded copies every legacy secret into the encrypted store.
	// It is safe to invoke on every startup: once the durable completion
	// flag is set the call is a cheap no-op, and an invocation interrupted
	// midway resumes where it left off (per-key bookkeeping). A key that
	// fails to copy is logged and retried on the next invocation; it never
	// aborts the migration of other keys.
	MigrateIfNeeded(ctx context.Context) (models.MigrationOutcome, error)

	// Get returns the secret for key. Before migration completes, keys not
	// yet migrated are read through from the legacy keyring. Returns
	// store.ErrSecretNotFound when the key exists in neither generation.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key in the encrypted store.
	Set(ctx context.Context, key string, value []byte) error

	// Clear removes key from the encrypted store. Clearing an absent key
	// is a no-op.
	Clear(ctx context.Context, key string) error
}

// TrashScheduler manages delayed, cancellable removals of locally-stored
// binary assets: marking an asset for deletion starts a grace window during
// which the action can be undone.
type TrashScheduler interface {
	// Schedule marks the asset at resourceKey for deletion once grace
	// elapses. A second Schedule for the same key restarts the full grace
	// window; timers never stack. Remote (http, https) and embedded (data:)
	// resource keys are refused; the scheduler only owns local files.
	Schedule(resourceKey string, grace time.Duration)

	// Restore cancels the pending deletion for resourceKey, if any. The
	// asset is never removed after a successful restore. Calling Restore
	// for a key with no pending deletion, including a key whose removal
	// has already started, is a no-op, not an error.
	Restore(resourceKey string)

	// Pending returns a snapshot of all pending deletions, for UI display.
	Pending() []models.PendingDeletion

	// Stop cancels every pending timer without removing anything. Called
	// on shutdown; scheduled deletions are re-issued by the owning feature
	// on next start.
	Stop()
}

// SyncOrchestrator owns the sync session: connectivity and auth state, the
// durable pending-sync flag, and the decision when a sync run is triggered.
// It guarantees that at most one sync run is in flight process-wide.
type SyncOrchestrator interface {
	// Bootstrap restores the session from the vault (tokens) and the state
	// store (pending flag). Called once at startup, before any other
	// method.
	Bootstrap(ctx context.Context) error

	// CheckStatus validates the session against the remote backend,
	// refreshing the access token in place when it is about to expire.
	// Overlapping calls collapse to one in-flight status check whose
	// result all callers share. Returns the resulting session snapshot.
	CheckStatus(ctx context.Context) (models.SyncSession, error)

	// TriggerSync is the single entry point for starting a sync run. If a
	// run is already in flight the call coalesces into it and returns a
	// run with models.OutcomeCoalesced. Sessions without the sync
	// entitlement never start a run (ErrNotEntitled). The durable pending
	// flag is cleared only when the run's outcome is success.
	TriggerSync(ctx context.Context, trigger models.SyncTrigger) (models.SyncRun, error)

	// MarkPendingWork durably records that local changes await
	// reconciliation.
	MarkPendingWork(ctx context.Context) error

	// HandleOnline is the connectivity-restored path: it re-checks status
	// and, when pending work exists on a connected entitled session,
	// triggers a networkRecovery sync run. Reports whether a run was
	// triggered.
	HandleOnline(ctx context.Context) (models.SyncRun, bool)

	// SignOut clears the session tokens from the vault and resets the
	// in-memory session. The pending flag is left untouched so local work
	// is not silently forgotten.
	SignOut(ctx context.Context) error

	// Status returns the current session snapshot without any I/O, so UI
	// can reflect "syncing", "offline, will retry", or "needs sign-in" at
	// all times.
	Status() models.SyncSession
}

// AssetRemover is the storage collaborator the trash scheduler deletes
// through. store.FileSystem satisfies it.
type AssetRemover interface {
	Remove(path string) error
}
