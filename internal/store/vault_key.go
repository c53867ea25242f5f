package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/nekotick/synccore/internal/crypto"
)

// Key material file layout: 16-byte salt followed by the 32-byte local
// secret. The derived vault key itself never touches disk.
const (
	keyFileSaltLen   = 16
	keyFileSecretLen = 32
)

// LoadOrCreateVaultKey returns the installation's vault key, deriving it
// from the key material at path. On first use the material is generated from
// the OS CSPRNG and committed with the atomic writer, so a crash mid-write
// can never leave a truncated key file behind.
func LoadOrCreateVaultKey(path string, keychain crypto.KeychainService, writer *AssetWriter) ([]byte, error) {
	material, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read vault key file: %w", err)
	}

	if errors.Is(err, os.ErrNotExist) {
		salt, err := keychain.GenerateSalt()
		if err != nil {
			return nil, fmt.Errorf("generate vault salt: %w", err)
		}
		secret, err := keychain.GenerateSecret()
		if err != nil {
			return nil, fmt.Errorf("generate vault secret: %w", err)
		}

		material = append(salt, secret...)
		if err = writer.Write(path, material); err != nil {
			return nil, fmt.Errorf("persist vault key file: %w", err)
		}
	}

	if len(material) != keyFileSaltLen+keyFileSecretLen {
		return nil, fmt.Errorf("vault key file %s is corrupted (%d bytes)", path, len(material))
	}

	salt, secret := material[:keyFileSaltLen], material[keyFileSaltLen:]
	return keychain.DeriveKey(secret, salt), nil
}
