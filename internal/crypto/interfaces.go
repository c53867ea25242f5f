// Package crypto implements the key material handling for the encrypted
// credential vault: Argon2id key derivation from the local vault secret and
// AES-256-GCM sealing of individual secret values.
package crypto

// KeychainService is the contract for deriving the vault key and sealing
// secret values for encrypted-at-rest storage.
type KeychainService interface {
	// GenerateSalt returns a fresh 16-byte random salt from the OS CSPRNG.
	GenerateSalt() ([]byte, error)

	// GenerateSecret returns a fresh 32-byte random vault secret from the
	// OS CSPRNG. Generated once per installation and persisted locally.
	GenerateSecret() ([]byte, error)

	// DeriveKey derives the 256-bit vault key from the local secret and
	// salt using Argon2id. The key exists only in process memory.
	DeriveKey(secret, salt []byte) []byte

	// Seal encrypts plaintext with key using AES-256-GCM and returns a
	// Base64 string of nonce ‖ ciphertext, ready for storage.
	Seal(plaintext, key []byte) (string, error)

	// Open decrypts a Base64 blob produced by Seal. Returns an error if the
	// blob is malformed, the key is wrong, or the ciphertext is corrupted
	// (authentication-tag mismatch).
	Open(sealedB64 string, key []byte) ([]byte, error)
}
