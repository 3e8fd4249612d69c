package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/scout-schedule/internal/config"
	"github.com/riskibarqy/scout-schedule/internal/infrastructure/repository/file"
	"github.com/riskibarqy/scout-schedule/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scout-schedule/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/scout-schedule/internal/platform/kv"
	"github.com/riskibarqy/scout-schedule/internal/platform/logging"
)

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.StorageDriver {
	case config.StorageMemory:
		logger.Info("storage ready", "driver", config.StorageMemory)
		return memory.NewKVStore(), noop, nil
	case config.StoragePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("storage ready", "driver", config.StoragePostgres, "db_name", dbNameFromURL(cfg.DBURL), "dsn", redactDBURL(cfg.DBURL))
		return postgres.NewKVStore(db), db.Close, nil
	case config.StorageFile, "":
		store, err := file.NewKVStore(cfg.StorageDir)
		if err != nil {
			return nil, nil, fmt.Errorf("open file storage: %w", err)
		}
		logger.Info("storage ready", "driver", config.StorageFile, "dir", store.Dir())
		return store, noop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
