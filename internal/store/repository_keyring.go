package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nekotick/synccore/internal/logger"
)

type legacyKeyringRepository struct {
	*DB
	logger *logger.Logger
}

// NewLegacyKeyringRepository constructs the sqlite-backed
// [LegacyKeyringRepository]. The backing table holds the plaintext secrets
// written by pre-vault releases; it only ever shrinks.
func NewLegacyKeyringRepository(db *DB, log *logger.Logger) LegacyKeyringRepository {
	return &legacyKeyringRepository{DB: db, logger: log}
}

func (r *legacyKeyringRepository) ListKeys(ctx context.Context) ([]string, error) {
	query, args, err := sq.Select("key").
		From("legacy_keyring").
		OrderBy("key").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "legacyKeyringRepository.ListKeys").
			Msg("failed to list legacy keyring keys")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err = rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrScanningRow, err)
		}
		keys = append(keys, key)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return keys, nil
}

func (r *legacyKeyringRepository) Read(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").
		From("legacy_keyring").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value []byte
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLegacyKeyNotFound
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "legacyKeyringRepository.Read").
			Str("key", key).
			Msg("failed to read legacy keyring entry")
		return nil, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *legacyKeyringRepository) Put(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert("legacy_keyring").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *legacyKeyringRepository) Clear(ctx context.Context, key string) error {
	query, args, err := sq.Delete("legacy_keyring").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "legacyKeyringRepository.Clear").
			Str("key", key).
			Msg("failed to clear legacy keyring entry")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
