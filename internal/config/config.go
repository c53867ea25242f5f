package config

import (
	"time"
)

// Config is the top-level configuration container for the synccore daemon.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type Config struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local persistence backends: the
	// sqlite state database and the binary asset directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the remote backend address and timeout settings used by
	// the outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Vault holds settings for the encrypted credential store.
	Vault Vault `envPrefix:"VAULT_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all local storage backends.
type Storage struct {
	// DB holds the sqlite state database settings.
	DB DB `envPrefix:"DB_"`

	// Assets holds the file-system settings for locally-stored binary
	// assets (images and other attachments).
	Assets Assets `envPrefix:"ASSETS_"`
}

// DB holds connection settings for the local state database.
type DB struct {
	// DSN is the sqlite file path (or DSN) used to open the state database
	// (e.g. "~/.synccore/state.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Assets holds file-system settings for the local binary asset store.
type Assets struct {
	// Dir is the directory where binary assets are written and swept.
	// Env: STORAGE_ASSETS_DIR
	Dir string `env:"DIR"`

	// OrphanTTL is the minimum age of a temp artifact before the startup
	// sweep removes it (e.g. "24h"). Temp files younger than this may still
	// belong to an in-flight write.
	// Env: STORAGE_ASSETS_ORPHAN_TTL
	OrphanTTL time.Duration `env:"ORPHAN_TTL"`
}

// Adapter holds network settings for the outbound transport to the remote
// sync backend.
type Adapter struct {
	// BaseURL is the remote backend base URL (e.g. "https://sync.example.com").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for outbound requests
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Vault holds settings for the encrypted-at-rest credential store.
type Vault struct {
	// KeyFile is the path of the local key material file. Created with a
	// fresh random secret on first use.
	// Env: VAULT_KEY_FILE
	KeyFile string `env:"KEY_FILE"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the periodic status check runs.
	// Must be below RefreshWindow so a refresh attempt always precedes
	// token expiry under normal operation.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`

	// RefreshWindow is how long before token expiry a refresh is attempted.
	// Env: WORKERS_REFRESH_WINDOW
	RefreshWindow time.Duration `env:"REFRESH_WINDOW"`

	// TrashGrace is the default undo window for scheduled asset deletions.
	// Env: WORKERS_TRASH_GRACE
	TrashGrace time.Duration `env:"TRASH_GRACE"`
}

// GetConfig loads, merges, and validates the daemon configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *Config or an error if any source fails to load
// or the final config fails validation.
func GetConfig() (*Config, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
