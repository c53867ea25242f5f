package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-base-url remote backend base URL
//	-request-timeout outbound request timeout (e.g., "15s")
//	-d state database DSN (sqlite file path)
//	-assets-dir binary asset directory
//	-orphan-ttl minimum temp artifact age before the sweep removes it
//	-vault-key-file encrypted vault key material path
//	-refresh-interval periodic status check cadence (e.g., "5m")
//	-refresh-window pre-expiry token refresh window (e.g., "10m")
//	-trash-grace default undo window for asset deletion (e.g., "10s")
//	-c/-config json file path with configs
func ParseFlags() *Config {
	var baseURL string
	var requestTimeout time.Duration
	var databaseDSN string
	var assetsDir string
	var orphanTTL time.Duration
	var vaultKeyFile string
	var refreshInterval time.Duration
	var refreshWindow time.Duration
	var trashGrace time.Duration
	var jsonConfigPath string

	flag.StringVar(&baseURL, "base-url", "", "Remote backend base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.StringVar(&databaseDSN, "d", "", "State database DSN")
	flag.StringVar(&assetsDir, "assets-dir", "", "Binary asset directory")
	flag.DurationVar(&orphanTTL, "orphan-ttl", 0, "Temp artifact age threshold for the orphan sweep")
	flag.StringVar(&vaultKeyFile, "vault-key-file", "", "Vault key material path")
	flag.DurationVar(&refreshInterval, "refresh-interval", 0, "Periodic status check cadence (e.g., 5m)")
	flag.DurationVar(&refreshWindow, "refresh-window", 0, "Pre-expiry token refresh window (e.g., 10m)")
	flag.DurationVar(&trashGrace, "trash-grace", 0, "Default undo window for asset deletion")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &Config{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
			Assets: Assets{
				Dir:       assetsDir,
				OrphanTTL: orphanTTL,
			},
		},
		Vault: Vault{KeyFile: vaultKeyFile},
		Workers: Workers{
			RefreshInterval: refreshInterval,
			RefreshWindow:   refreshWindow,
			TrashGrace:      trashGrace,
		},
		JSONFilePath: jsonConfigPath,
	}
}
