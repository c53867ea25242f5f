package store

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nekotick/synccore/internal/crypto"
	"github.com/nekotick/synccore/internal/logger"
)

func TestLoadOrCreateVaultKey_FirstUseGeneratesMaterial(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.key")
	keychain := crypto.NewKeychainService()
	writer := NewAssetWriter(NewOSFileSystem(), logger.Nop())

	key, err := LoadOrCreateVaultKey(path, keychain, writer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("key length = %d, want 32", len(key))
	}

	material, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("key file must exist after first use: %v", err)
	}
	if len(material) != keyFileSaltLen+keyFileSecretLen {
		t.Fatalf("key file length = %d, want %d", len(material), keyFileSaltLen+keyFileSecretLen)
	}
}

func TestLoadOrCreateVaultKey_StableAcrossRestarts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.key")
	keychain := crypto.NewKeychainService()
	writer := NewAssetWriter(NewOSFileSystem(), logger.Nop())

	k1, err := LoadOrCreateVaultKey(path, keychain, writer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	k2, err := LoadOrCreateVaultKey(path, keychain, writer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(k1, k2) {
		t.Fatalf("the derived key must be stable across restarts")
	}
}

func TestLoadOrCreateVaultKey_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vault.key")
	if err := os.WriteFile(path, []byte("truncated"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	writer := NewAssetWriter(NewOSFileSystem(), logger.Nop())
	if _, err := LoadOrCreateVaultKey(path, crypto.NewKeychainService(), writer); err == nil {
		t.Fatalf("expected error for a truncated key file")
	}
}
