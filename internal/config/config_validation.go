package config

import (
	"strings"
	"time"
)

// Fallbacks applied after merging, before validation. Anything security- or
// durability-sensitive has no fallback and must be configured explicitly.
const (
	defaultRequestTimeout  = 15 * time.Second
	defaultOrphanTTL       = 24 * time.Hour
	defaultRefreshInterval = 5 * time.Minute
	defaultRefreshWindow   = 10 * time.Minute
	defaultTrashGrace      = 10 * time.Second
)

func (cfg *Config) applyDefaults() {
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Storage.Assets.OrphanTTL == 0 {
		cfg.Storage.Assets.OrphanTTL = defaultOrphanTTL
	}
	if cfg.Workers.RefreshInterval == 0 {
		cfg.Workers.RefreshInterval = defaultRefreshInterval
	}
	if cfg.Workers.RefreshWindow == 0 {
		cfg.Workers.RefreshWindow = defaultRefreshWindow
	}
	if cfg.Workers.TrashGrace == 0 {
		cfg.Workers.TrashGrace = defaultTrashGrace
	}
}

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}
	if cfg.Storage.Assets.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Vault.KeyFile == "" {
		return ErrInvalidVaultConfigs
	}

	// The refresh cadence must sit below the expiry warning window, so a
	// refresh attempt always lands before the token expires.
	if cfg.Workers.RefreshInterval <= 0 || cfg.Workers.RefreshInterval >= cfg.Workers.RefreshWindow {
		return ErrInvalidWorkerConfigs
	}
	if cfg.Workers.TrashGrace <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
