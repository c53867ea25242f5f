package client

import (
	"context"
	"fmt"

	"github.com/nekotick/synccore/internal/config"
	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/internal/service"
	"github.com/nekotick/synccore/internal/store"
	"github.com/nekotick/synccore/internal/workers"
	"github.com/nekotick/synccore/models"
)

type App struct {
	cfg      *config.Config
	storages *store.Storages
	services *service.Services
	workers  *workers.Workers
	online   *onlineNotifier
	logger   *logger.Logger
}

// NewApp wires the application from its already-constructed layers and
// prepares the background workers. The app is idle until Run is called.
func NewApp(cfg *config.Config, storages *store.Storages, services *service.Services, log *logger.Logger) (*App, error) {
	if cfg == nil || storages == nil || services == nil {
		return nil, fmt.Errorf("init app: nil dependency")
	}

	online := newOnlineNotifier()
	ws := workers.NewWorkers(
		workers.NewRefreshWorker(services.Orchestrator, cfg.Workers.RefreshInterval, log),
		workers.NewRecoveryWorker(online, services.Orchestrator, log),
	)

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		workers:  ws,
		online:   online,
		logger:   log,
	}, nil
}

// Run executes the startup sequence and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	outcome, err := a.services.Vault.MigrateIfNeeded(ctx)
	if err != nil {
		return fmt.Errorf("vault migration: %w", err)
	}
	if outcome.Failed > 0 {
		// Startup continues on a partial migration; failed keys retry on
		// the next launch.
		a.logger.Warn().
			Int("migrated", outcome.Migrated).
			Int("failed", outcome.Failed).
			Msg("vault migration incomplete")
	}

	if err = a.services.Orchestrator.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap session: %w", err)
	}

	removed, err := a.storages.Assets.SweepOrphans(a.cfg.Storage.Assets.Dir, a.cfg.Storage.Assets.OrphanTTL)
	if err != nil {
		a.logger.Err(err).Msg("orphan sweep failed")
	} else if removed > 0 {
		a.logger.Info().Int("removed", removed).Msg("swept orphaned temp files")
	}

	session, err := a.services.Orchestrator.CheckStatus(ctx)
	if err != nil {
		// Offline start is normal; the recovery worker picks it up later.
		a.logger.Err(err).Msg("initial status check failed")
	}

	if session.Connected && session.Entitled && session.PendingSync {
		if _, err = a.services.Orchestrator.TriggerSync(ctx, models.TriggerStartup); err != nil {
			a.logger.Err(err).Msg("startup sync failed")
		}
	}

	a.workers.Run()
	defer a.workers.Stop()
	defer a.services.Trash.Stop()

	a.logger.Info().Str("version", a.cfg.App.Version).Msg("sync core running")
	<-ctx.Done()
	a.logger.Info().Msg("sync core shutting down")
	return nil
}

// NotifyOnline signals the recovery worker that network connectivity has
// returned. The platform shell calls this from its connectivity hook.
func (a *App) NotifyOnline() {
	a.online.Notify()
}

// onlineNotifier is a non-blocking edge-triggered connectivity signal.
type onlineNotifier struct {
	ch chan struct{}
}

func newOnlineNotifier() *onlineNotifier {
	return &onlineNotifier{ch: make(chan struct{}, 1)}
}

// Notify coalesces: a signal raised while one is already pending is
// dropped, so a burst of connectivity flaps yields a single recovery pass.
func (n *onlineNotifier) Notify() {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func (n *onlineNotifier) Online() <-chan struct{} {
	return n.ch
}
