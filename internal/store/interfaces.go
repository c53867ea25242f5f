package store

import (
	"context"
)

// Durable flag names persisted in the app_flags table.
const (
	// FlagPendingSync marks that local changes exist that have not yet been
	// reconciled with the remote backend.
	FlagPendingSync = "pending_sync"

	// FlagVaultMigrated marks that the legacy-keyring to encrypted-vault
	// migration has fully completed for this installation.
	FlagVaultMigrated = "vault_migration_complete"
)

// FlagRepository persists durable boolean flags and the per-key migration
// bookkeeping. A flag that was never set reads as false, not as an error.
type FlagRepository interface {
	// GetFlag returns the value of the named flag, false when unset.
	GetFlag(ctx context.Context, name string) (bool, error)

	// SetFlag durably sets the named flag.
	SetFlag(ctx context.Context, name string, value bool) error

	// IsKeyMigrated reports whether the given credential key has already
	// been copied to the encrypted vault.
	IsKeyMigrated(ctx context.Context, key string) (bool, error)

	// MarkKeyMigrated durably records that the given credential key has
	// been copied. Idempotent.
	MarkKeyMigrated(ctx context.Context, key string) error
}

// LegacyKeyringRepository is the legacy plaintext keyring the vault migrates
// away from. Only the credential vault may mutate it.
type LegacyKeyringRepository interface {
	// ListKeys returns every key still present in the legacy keyring.
	ListKeys(ctx context.Context) ([]string, error)

	// Read returns the stored value for key, or [ErrLegacyKeyNotFound].
	Read(ctx context.Context, key string) ([]byte, error)

	// Put stores a value under key. Used by data imports from older
	// installations; new secrets never land here.
	Put(ctx context.Context, key string, value []byte) error

	// Clear removes the entry for key. Clearing an absent key is a no-op.
	Clear(ctx context.Context, key string) error
}

// SecretRepository is the encrypted-at-rest store for credential secrets.
// Values are sealed with the installation's vault key before touching disk.
// Only the credential vault may mutate it.
type SecretRepository interface {
	// Read returns the plaintext secret for key, or [ErrSecretNotFound].
	Read(ctx context.Context, key string) ([]byte, error)

	// Write seals value and stores it under key, replacing any prior value.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes the secret for key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
}
