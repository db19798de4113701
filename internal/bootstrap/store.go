package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/osse101/IdleFarm_Go/internal/config"
	"github.com/osse101/IdleFarm_Go/internal/database"
	"github.com/osse101/IdleFarm_Go/internal/database/postgres"
	"github.com/osse101/IdleFarm_Go/internal/handler"
	"github.com/osse101/IdleFarm_Go/internal/metrics"
	"github.com/osse101/IdleFarm_Go/internal/store"
	"github.com/osse101/IdleFarm_Go/internal/store/filestore"
	"github.com/osse101/IdleFarm_Go/internal/store/sqlstore"
)

// OpenStore opens the save store selected by cfg.StoreDriver. The returned
// checker queries the backend directly, bypassing the cache.
func OpenStore(ctx context.Context, cfg *config.Config) (store.Store, handler.HealthChecker, error) {
	raw, err := openDriver(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenStore, err)
	}
	slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "key", cfg.SaveKey)

	ready := storeHealthCheck(raw, cfg.SaveKey)
	if cfg.CacheSize <= 0 {
		return raw, ready, nil
	}

	cached := store.NewCached(raw, store.CacheConfig{Size: cfg.CacheSize, TTL: cfg.CacheTTL})
	metrics.RegisterCacheStats(
		func() float64 { return float64(cached.GetStats().Hits) },
		func() float64 { return float64(cached.GetStats().Misses) },
	)
	slog.Info(LogMsgCacheEnabled, "size", cfg.CacheSize, "ttl", cfg.CacheTTL)
	return cached, ready, nil
}

func openDriver(ctx context.Context, cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		return store.NewMemory(), nil
	case config.DriverFile:
		return filestore.New(cfg.StorePath)
	case config.DriverSQLite:
		return sqlstore.OpenSQLite(sqlitePath(cfg.StorePath))
	case config.DriverMySQL:
		return sqlstore.OpenMySQL(cfg.MySQLDSN)
	case config.DriverPostgres:
		pool, err := database.NewPool(cfg.DatabaseURL, cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsAdded)
		return postgres.NewSaveRepository(pool), nil
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, cfg.StoreDriver)
	}
}

// sqlitePath lets STORE_PATH name either the database file or its directory.
func sqlitePath(p string) string {
	switch filepath.Ext(p) {
	case ".db", ".sqlite", ".sqlite3":
		return p
	}
	return filepath.Join(p, config.SQLiteFileName)
}

// storeHealthCheck reads the save key; a missing save still means the store answered.
func storeHealthCheck(st store.Store, key string) handler.HealthChecker {
	return handler.HealthCheckFunc(func(ctx context.Context) error {
		_, err := st.Get(ctx, key)
		if err == nil || errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	})
}
