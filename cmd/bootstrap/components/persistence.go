package components

import (
	"context"
	"log/slog"

	"lounge-scheduler/internal/infra/db"
	"lounge-scheduler/internal/infra/memory"
	"lounge-scheduler/internal/infra/uow"
	"lounge-scheduler/internal/pkg/config"
	"lounge-scheduler/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork selects the storage backend named by STORAGE_DRIVER. The
// postgres pool is opened here so the memory driver never dials a database.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		logger.Warn("using in-memory storage, data is lost on restart")
		return memory.NewUoW(memory.NewStore(logger)), nil
	}

	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	logger.Info("connected to postgres", "host", cfg.DB.Host, "database", cfg.DB.DBName)
	return uow.NewPostgresUoW(pool, logger), nil
}
