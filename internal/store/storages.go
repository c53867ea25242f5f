package store

import (
	"context"
	"fmt"

	"github.com/nekotick/synccore/internal/config"
	"github.com/nekotick/synccore/internal/crypto"
	"github.com/nekotick/synccore/internal/logger"
)

// Storages groups all local storage backends into a single value that can be
// passed around the service layer.
type Storages struct {
	// Flags persists the durable pending-sync flag and the vault migration
	// bookkeeping.
	Flags FlagRepository

	// LegacyKeyring is the plaintext keyring left behind by pre-vault
	// releases, consumed by the credential migration.
	LegacyKeyring LegacyKeyringRepository

	// Secrets is the encrypted-at-rest credential store.
	Secrets SecretRepository

	// Assets writes binary assets with the temp-file + rename pattern.
	Assets *AssetWriter

	// FS is the filesystem the asset writer and trash scheduler operate on.
	FS FileSystem
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens the sqlite state database at cfg.Storage.DB.DSN, creating the
//     file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Loads (or generates) the vault key material from cfg.Vault.KeyFile.
//  4. Constructs a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established, the
// migration fails, or the vault key cannot be loaded.
func NewStorages(ctx context.Context, cfg *config.Config, keychain crypto.KeychainService, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	fsys := NewOSFileSystem()
	writer := NewAssetWriter(fsys, log)

	vaultKey, err := LoadOrCreateVaultKey(cfg.Vault.KeyFile, keychain, writer)
	if err != nil {
		return nil, fmt.Errorf("vault key error: %w", err)
	}

	return &Storages{
		Flags:         NewFlagRepository(db, log),
		LegacyKeyring: NewLegacyKeyringRepository(db, log),
		Secrets:       NewSecretRepository(db, keychain, vaultKey, log),
		Assets:        writer,
		FS:            fsys,
	}, nil
}
