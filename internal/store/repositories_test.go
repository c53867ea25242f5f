package store

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/nekotick/synccore/internal/logger"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return &DB{DB: db, logger: logger.Nop()}, mock, db
}

// ── FlagRepository ──────────────────────────────────────────────────────────

func TestFlagRepository_GetFlag_Unset(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewFlagRepository(tdb, logger.Nop())

	mock.ExpectQuery("SELECT value FROM app_flags").
		WithArgs("pending_sync").
		WillReturnError(sql.ErrNoRows)

	value, err := repo.GetFlag(context.Background(), FlagPendingSync)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value {
		t.Fatalf("an unset flag must read as false")
	}
}

func TestFlagRepository_GetFlag_Set(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewFlagRepository(tdb, logger.Nop())

	mock.ExpectQuery("SELECT value FROM app_flags").
		WithArgs("pending_sync").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(true))

	value, err := repo.GetFlag(context.Background(), FlagPendingSync)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !value {
		t.Fatalf("expected flag to read as true")
	}
}

func TestFlagRepository_SetFlag_Upserts(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewFlagRepository(tdb, logger.Nop())

	mock.ExpectExec("INSERT INTO app_flags").
		WithArgs("pending_sync", true).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetFlag(context.Background(), FlagPendingSync, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFlagRepository_SetFlag_DBError(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewFlagRepository(tdb, logger.Nop())

	mock.ExpectExec("INSERT INTO app_flags").
		WithArgs("pending_sync", false).
		WillReturnError(errors.New("disk I/O error"))

	err := repo.SetFlag(context.Background(), FlagPendingSync, false)
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestFlagRepository_IsKeyMigrated(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewFlagRepository(tdb, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery("SELECT 1 FROM vault_migrated_keys").
		WithArgs("auth.access_token").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM vault_migrated_keys").
		WithArgs("auth.account_id").
		WillReturnError(sql.ErrNoRows)

	migrated, err := repo.IsKeyMigrated(ctx, "auth.access_token")
	if err != nil || !migrated {
		t.Fatalf("expected migrated=true, got %v, %v", migrated, err)
	}

	migrated, err = repo.IsKeyMigrated(ctx, "auth.account_id")
	if err != nil || migrated {
		t.Fatalf("expected migrated=false, got %v, %v", migrated, err)
	}
}

func TestFlagRepository_MarkKeyMigrated_Idempotent(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewFlagRepository(tdb, logger.Nop())

	// ON CONFLICT DO NOTHING: re-marking affects zero rows and still succeeds.
	mock.ExpectExec("INSERT INTO vault_migrated_keys").
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.MarkKeyMigrated(context.Background(), "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ── LegacyKeyringRepository ─────────────────────────────────────────────────

func TestLegacyKeyringRepository_ListKeys(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewLegacyKeyringRepository(tdb, logger.Nop())

	mock.ExpectQuery("SELECT key FROM legacy_keyring").
		WillReturnRows(sqlmock.NewRows([]string{"key"}).
			AddRow("auth.access_token").
			AddRow("auth.refresh_token"))

	keys, err := repo.ListKeys(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 2 || keys[0] != "auth.access_token" || keys[1] != "auth.refresh_token" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestLegacyKeyringRepository_ListKeys_Empty(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewLegacyKeyringRepository(tdb, logger.Nop())

	mock.ExpectQuery("SELECT key FROM legacy_keyring").
		WillReturnRows(sqlmock.NewRows([]string{"key"}))

	keys, err := repo.ListKeys(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("expected no keys, got %v", keys)
	}
}

func TestLegacyKeyringRepository_Read_NotFound(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewLegacyKeyringRepository(tdb, logger.Nop())

	mock.ExpectQuery("SELECT value FROM legacy_keyring").
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Read(context.Background(), "absent")
	if !errors.Is(err, ErrLegacyKeyNotFound) {
		t.Fatalf("expected ErrLegacyKeyNotFound, got %v", err)
	}
}

func TestLegacyKeyringRepository_ReadAndClear(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewLegacyKeyringRepository(tdb, logger.Nop())
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM legacy_keyring").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("plain-secret")))
	mock.ExpectExec("DELETE FROM legacy_keyring").
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 1))

	value, err := repo.Read(ctx, "k")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(value) != "plain-secret" {
		t.Fatalf("unexpected value: %q", value)
	}

	if err = repo.Clear(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// ── SecretRepository ────────────────────────────────────────────────────────

// stubKeychain seals by base64-encoding, so tests can assert the stored
// value without real crypto.
type stubKeychain struct{}

func (stubKeychain) GenerateSalt() ([]byte, error)   { return make([]byte, 16), nil }
func (stubKeychain) GenerateSecret() ([]byte, error) { return make([]byte, 32), nil }
func (stubKeychain) DeriveKey(_, _ []byte) []byte    { return make([]byte, 32) }

func (stubKeychain) Seal(plaintext, _ []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(plaintext), nil
}

func (stubKeychain) Open(sealed string, _ []byte) ([]byte, error) {
	if strings.HasPrefix(sealed, "corrupt") {
		return nil, errors.New("decryption failed")
	}
	return base64.StdEncoding.DecodeString(sealed)
}

func TestSecretRepository_Write_StoresSealedValue(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewSecretRepository(tdb, stubKeychain{}, make([]byte, 32), logger.Nop())

	sealed := base64.StdEncoding.EncodeToString([]byte("token-value"))
	mock.ExpectExec("INSERT INTO vault_secrets").
		WithArgs("auth.access_token", sealed).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Write(context.Background(), "auth.access_token", []byte("token-value"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("plaintext must never reach the database: %v", err)
	}
}

func TestSecretRepository_Read_Unseals(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewSecretRepository(tdb, stubKeychain{}, make([]byte, 32), logger.Nop())

	sealed := base64.StdEncoding.EncodeToString([]byte("token-value"))
	mock.ExpectQuery("SELECT value FROM vault_secrets").
		WithArgs("auth.access_token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(sealed))

	value, err := repo.Read(context.Background(), "auth.access_token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(value) != "token-value" {
		t.Fatalf("unexpected value: %q", value)
	}
}

func TestSecretRepository_Read_NotFound(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewSecretRepository(tdb, stubKeychain{}, make([]byte, 32), logger.Nop())

	mock.ExpectQuery("SELECT value FROM vault_secrets").
		WithArgs("absent").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Read(context.Background(), "absent")
	if !errors.Is(err, ErrSecretNotFound) {
		t.Fatalf("expected ErrSecretNotFound, got %v", err)
	}
}

func TestSecretRepository_Read_CorruptedBlob(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewSecretRepository(tdb, stubKeychain{}, make([]byte, 32), logger.Nop())

	mock.ExpectQuery("SELECT value FROM vault_secrets").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("corrupt-blob"))

	if _, err := repo.Read(context.Background(), "k"); err == nil {
		t.Fatalf("expected unseal failure for a corrupted blob")
	}
}

func TestSecretRepository_Delete(t *testing.T) {
	tdb, mock, db := newTestDB(t)
	defer db.Close()
	repo := NewSecretRepository(tdb, stubKeychain{}, make([]byte, 32), logger.Nop())

	mock.ExpectExec("DELETE FROM vault_secrets").
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "k"); err != nil {
		t.Fatalf("deleting an absent key must be a no-op, got %v", err)
	}
}
