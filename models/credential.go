package models

// StorageGeneration is the storage format a credential currently resides in.
type StorageGeneration string

const (
	// GenerationLegacyKeyring marks secrets still held by the legacy
	// keyring-style store.
	GenerationLegacyKeyring StorageGeneration = "legacyKeyring"

	// GenerationEncryptedVault marks secrets held by the encrypted-at-rest
	// store. Once a key reaches this generation it never moves back.
	GenerationEncryptedVault StorageGeneration = "encryptedVault"
)

// CredentialRecord is a secret bound to an account, together with the
// generation of the store it currently lives in.
type CredentialRecord struct {
	Key        string            `json:"key"`
	Value      []byte            `json:"-"`
	Generation StorageGeneration `json:"generation"`
}

// MigrationOutcome summarises one MigrateIfNeeded invocation.
type MigrationOutcome struct {
	// AlreadyDone is true when the completion flag was set before this
	// invocation and no work was performed.
	AlreadyDone bool `json:"already_done"`

	// Migrated counts keys copied to the encrypted store by this invocation.
	Migrated int `json:"migrated"`

	// Failed counts keys whose copy failed; they remain in the legacy store
	// and are retried on the next invocation.
	Failed int `json:"failed"`
}

// Complete reports whether every known legacy key has reached the encrypted
// vault, i.e. the durable completion flag may be set.
func (o MigrationOutcome) Complete() bool {
	return o.Failed == 0
}
