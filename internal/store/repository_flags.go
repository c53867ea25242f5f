package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nekotick/synccore/internal/logger"
)

type flagRepository struct {
	*DB
	logger *logger.Logger
}

// NewFlagRepository constructs the sqlite-backed [FlagRepository].
func NewFlagRepository(db *DB, log *logger.Logger) FlagRepository {
	return &flagRepository{DB: db, logger: log}
}

func (r *flagRepository) GetFlag(ctx context.Context, name string) (bool, error) {
	query, args, err := sq.Select("value").
		From("app_flags").
		Where(sq.Eq{"name": name}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value bool
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "flagRepository.GetFlag").
			Str("flag", name).
			Msg("failed to query flag")
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *flagRepository) SetFlag(ctx context.Context, name string, value bool) error {
	query, args, err := sq.Insert("app_flags").
		Columns("name", "value").
		Values(name, value).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "flagRepository.SetFlag").
			Str("flag", name).
			Bool("value", value).
			Msg("failed to upsert flag")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (r *flagRepository) IsKeyMigrated(ctx context.Context, key string) (bool, error) {
	query, args, err := sq.Select("1").
		From("vault_migrated_keys").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var one int
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *flagRepository) MarkKeyMigrated(ctx context.Context, key string) error {
	query, args, err := sq.Insert("vault_migrated_keys").
		Columns("key").
		Values(key).
		Suffix("ON CONFLICT(key) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "flagRepository.MarkKeyMigrated").
			Str("key", key).
			Msg("failed to record migrated key")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}
