package bootstrap

import (
	"context"
	"fmt"

	"nexus-store/internal/infra/storage"
	"nexus-store/internal/pkg/config"

	"go.uber.org/fx"
)

var StorageModule = fx.Module("storage",
	fx.Provide(
		NewSnapshots,
	),
)

// NewSnapshots picks the snapshot driver from config: a directory of JSON
// files by default, or a Postgres key-value table when a DSN is configured.
func NewSnapshots(lc fx.Lifecycle, cfg config.Config) (storage.Snapshots, error) {
	switch cfg.Storage.Driver {
	case "file":
		return storage.NewFileSnapshots(cfg.Storage.Dir)
	case "postgres":
		snaps, cleanup, err := storage.NewPostgresSnapshots(context.Background(), cfg.Storage.DSN)
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
		return snaps, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
