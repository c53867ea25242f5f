package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/internal/store"
	"github.com/nekotick/synccore/models"
)

type credentialVault struct {
	legacy  store.LegacyKeyringRepository
	secrets store.SecretRepository
	flags   store.FlagRepository
	logger  *logger.Logger

	// migrateMu serializes MigrateIfNeeded; migrated caches the durable
	// completion flag once it has been observed true (it never unsets).
	migrateMu sync.Mutex
	migrated  atomic.Bool
}

// NewCredentialVault constructs the [CredentialVault] over the sqlite-backed
// stores. The vault is the sole mutator of the legacy keyring and the
// encrypted secret store.
func NewCredentialVault(storages *store.Storages, log *logger.Logger) CredentialVault {
	return &credentialVault{
		legacy:  storages.LegacyKeyring,
		secrets: storages.Secrets,
		flags:   storages.Flags,
		logger:  log,
	}
}

func (v *credentialVault) MigrateIfNeeded(ctx context.Context) (models.MigrationOutcome, error) {
	v.migrateMu.Lock()
	defer v.migrateMu.Unlock()

	done, err := v.isMigrated(ctx)
	if err != nil {
		return models.MigrationOutcome{}, fmt.Errorf("read migration flag: %w", err)
	}
	if done {
		return models.MigrationOutcome{AlreadyDone: true}, nil
	}

	keys, err := v.legacy.ListKeys(ctx)
	if err != nil {
		return models.MigrationOutcome{}, fmt.Errorf("list legacy keys: %w", err)
	}

	var outcome models.MigrationOutcome
	for _, key := range keys {
		copied, err := v.migrateKey(ctx, key)
		if err != nil {
			// Per-key failure: logged, retried on the next invocation,
			// never aborts the remaining keys.
			v.logger.Err(err).Str("key", key).Msg("credential migration failed for key")
			outcome.Failed++
			continue
		}
		if copied {
			outcome.Migrated++
		}
	}

	if !outcome.Complete() {
		v.logger.Warn().
			Int("migrated", outcome.Migrated).
			Int("failed", outcome.Failed).
			Msg("credential migration partially complete, will retry")
		return outcome, nil
	}

	if err = v.flags.SetFlag(ctx, store.FlagVaultMigrated, true); err != nil {
		return outcome, fmt.Errorf("persist migration flag: %w", err)
	}
	v.migrated.Store(true)

	// The completion flag is durable; only now may the legacy store be
	// emptied. Clearing is best-effort: a stale legacy value is harmless
	// because Get never consults the keyring again.
	for _, key := range keys {
		if err := v.legacy.Clear(ctx, key); err != nil {
			v.logger.Err(err).Str("key", key).Msg("failed to clear migrated legacy key")
		}
	}

	v.logger.Info().Int("migrated", outcome.Migrated).Msg("credential migration complete")
	return outcome, nil
}

// migrateKey copies one legacy secret into the encrypted store, idempotently:
// a key already marked migrated is skipped, and re-writing an already-copied
// value replaces it with the same bytes. Reports whether a copy happened.
func (v *credentialVault) migrateKey(ctx context.Context, key string) (bool, error) {
	already, err := v.flags.IsKeyMigrated(ctx, key)
	if err != nil {
		return false, fmt.Errorf("check key migration state: %w", err)
	}
	if already {
		return false, nil
	}

	value, err := v.legacy.Read(ctx, key)
	if err != nil {
		return false, fmt.Errorf("read legacy secret: %w", err)
	}

	if err = v.secrets.Write(ctx, key, value); err != nil {
		return false, fmt.Errorf("write encrypted secret: %w", err)
	}

	// The mark is set only after the encrypted copy is durable; a crash
	// between the two repeats the copy, which is idempotent.
	if err = v.flags.MarkKeyMigrated(ctx, key); err != nil {
		return false, fmt.Errorf("mark key migrated: %w", err)
	}

	return true, nil
}

func (v *credentialVault) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := v.secrets.Read(ctx, key)
	if err == nil {
		return value, nil
	}
	if !errors.Is(err, store.ErrSecretNotFound) {
		return nil, err
	}

	done, ferr := v.isMigrated(ctx)
	if ferr != nil {
		return nil, fmt.Errorf("read migration flag: %w", ferr)
	}
	if done {
		return nil, err
	}

	// Migration still in progress: fall back to the legacy keyring for
	// keys that have not been copied yet.
	value, lerr := v.legacy.Read(ctx, key)
	if errors.Is(lerr, store.ErrLegacyKeyNotFound) {
		return nil, store.ErrSecretNotFound
	}
	if lerr != nil {
		return nil, lerr
	}
	return value, nil
}

func (v *credentialVault) Set(ctx context.Context, key string, value []byte) error {
	return v.secrets.Write(ctx, key, value)
}

func (v *credentialVault) Clear(ctx context.Context, key string) error {
	return v.secrets.Delete(ctx, key)
}

func (v *credentialVault) isMigrated(ctx context.Context) (bool, error) {
	if v.migrated.Load() {
		return true, nil
	}

	done, err := v.flags.GetFlag(ctx, store.FlagVaultMigrated)
	if err != nil {
		return false, err
	}
	if done {
		v.migrated.Store(true)
	}
	return done, nil
}
