package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/nekotick/synccore/internal/adapter"
	"github.com/nekotick/synccore/internal/client"
	"github.com/nekotick/synccore/internal/config"
	"github.com/nekotick/synccore/internal/crypto"
	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/internal/service"
	"github.com/nekotick/synccore/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewFileLogger("synccore")
	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	backend := adapter.NewHTTPRemoteBackend(adapter.HTTPClientConfig{
		BaseURL: cfg.Adapter.BaseURL,
		Timeout: cfg.Adapter.RequestTimeout,
	})

	keychain := crypto.NewKeychainService()

	storages, err := store.NewStorages(ctx, cfg, keychain, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewServices(cfg, storages, backend, log)

	app, err := client.NewApp(cfg, storages, services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
