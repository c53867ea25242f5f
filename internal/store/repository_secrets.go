package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nekotick/synccore/internal/crypto"
	"github.com/nekotick/synccore/internal/logger"
)

type secretRepository struct {
	*DB
	keychain crypto.KeychainService
	vaultKey []byte
	logger   *logger.Logger
}

// NewSecretRepository constructs the encrypted [SecretRepository]. Values are
// sealed with vaultKey (AES-256-GCM via the keychain) before being stored, so
// the state database never holds a secret in the clear.
func NewSecretRepository(db *DB, keychain crypto.KeychainService, vaultKey []byte, log *logger.Logger) SecretRepository {
	return &secretRepository{DB: db, keychain: keychain, vaultKey: vaultKey, logger: log}
}

func (r *secretRepository) Read(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From("vault_secrets").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var sealed string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSecretNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "secretRepository.Read").
			Str("key", key).
			Msg("failed to read vault secret")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	plaintext, err := r.keychain.Open(sealed, r.vaultKey)
	if err != nil {
		return nil, fmt.Errorf("unseal vault secret %s: %w", key, err)
	}

	return plaintext, nil
}

func (r *secretRepository) Write(ctx context.Context, key string, value []byte) error {
	sealed, err := r.keychain.Seal(value, r.vaultKey)
	if err != nil {
		return fmt.Errorf("seal vault secret %s: %w", key, err)
	}

	query, args, err := sq.Insert("vault_secrets").
		Columns("key", "value").
		Values(key, sealed).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "secretRepository.Write").
			Str("key", key).
			Msg("failed to upsert vault secret")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *secretRepository) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("vault_secrets").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "secretRepository.Delete").
			Str("key", key).
			Msg("failed to delete vault secret")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
