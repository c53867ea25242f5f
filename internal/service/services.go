package service

import (
	"github.com/nekotick/synccore/internal/adapter"
	"github.com/nekotick/synccore/internal/config"
	"github.com/nekotick/synccore/internal/logger"
	"github.com/nekotick/synccore/internal/store"
)

// Services bundles every service the application wires at startup.
type Services struct {
	Vault        CredentialVault
	Trash        TrashScheduler
	Orchestrator SyncOrchestrator
}

// NewServices builds the service layer on top of the storage layer and the
// remote backend.
func NewServices(cfg *config.Config, storages *store.Storages, backend adapter.RemoteBackend, log *logger.Logger) *Services {
	vault := NewCredentialVault(storages, log)
	trash := NewTrashScheduler(assetRemover{fs: storages.FS}, cfg.Workers.TrashGrace, log)
	orchestrator := NewSyncOrchestrator(backend, vault, storages.Flags, cfg.Workers.RefreshWindow, log)

	return &Services{
		Vault:        vault,
		Trash:        trash,
		Orchestrator: orchestrator,
	}
}

// assetRemover adapts the filesystem to the [AssetRemover] the trash
// scheduler expects.
type assetRemover struct {
	fs store.FileSystem
}

func (r assetRemover) Remove(path string) error {
	return r.fs.Remove(path)
}
