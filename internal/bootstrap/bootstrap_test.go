package bootstrap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/config"
	"github.com/osse101/IdleFarm_Go/internal/store"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Port:             0,
		BindAddr:         config.DefaultBindAddr,
		LogLevel:         "error",
		LogFormat:        "text",
		Environment:      config.EnvDev,
		ServiceName:      config.DefaultServiceName,
		Version:          "test",
		StoreDriver:      driver,
		StorePath:        filepath.Join(dir, "saves"),
		SaveKey:          config.DefaultSaveKey,
		AutosaveInterval: time.Hour,
		CacheSize:        4,
		CacheTTL:         time.Minute,
		DeadLetterPath:   filepath.Join(dir, "dl", "deadletter.jsonl"),
		WorkerCount:      1,
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Run("default catalog", func(t *testing.T) {
		cfg := testConfig(t, config.DriverMemory)
		cat, err := LoadCatalog(cfg)
		require.NoError(t, err)
		assert.NotEmpty(t, cat.Crops())
		assert.NotEmpty(t, cat.Machinery())
	})

	t.Run("tick override", func(t *testing.T) {
		cfg := testConfig(t, config.DriverMemory)
		cfg.TickInterval = 250 * time.Millisecond
		cat, err := LoadCatalog(cfg)
		require.NoError(t, err)
		assert.Equal(t, 250*time.Millisecond, cat.TickPeriod())
	})

	t.Run("yaml overrides", func(t *testing.T) {
		cfg := testConfig(t, config.DriverMemory)
		cfg.CatalogPath = filepath.Join(t.TempDir(), "catalog.yaml")
		yaml := "economy:\n  expand_cost: 10\n  maintenance_cost: 5\n  resale_percent: 25\n  tick_interval_ms: 500\n"
		require.NoError(t, os.WriteFile(cfg.CatalogPath, []byte(yaml), 0o600))

		cat, err := LoadCatalog(cfg)
		require.NoError(t, err)
		assert.Equal(t, 25, cat.Economy().ResalePercent)
		assert.Equal(t, 500*time.Millisecond, cat.TickPeriod())
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := testConfig(t, config.DriverMemory)
		cfg.CatalogPath = filepath.Join(t.TempDir(), "missing.yaml")
		_, err := LoadCatalog(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgFailedLoadCatalog)
	})
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	t.Run("memory without cache", func(t *testing.T) {
		cfg := testConfig(t, config.DriverMemory)
		cfg.CacheSize = 0
		st, ready, err := OpenStore(ctx, cfg)
		require.NoError(t, err)
		defer st.Close()

		_, isCached := st.(*store.Cached)
		assert.False(t, isCached)
		assert.NoError(t, ready.CheckHealth(ctx), "a missing save is still healthy")
	})

	t.Run("file with cache", func(t *testing.T) {
		cfg := testConfig(t, config.DriverFile)
		st, ready, err := OpenStore(ctx, cfg)
		require.NoError(t, err)
		defer st.Close()

		_, isCached := st.(*store.Cached)
		assert.True(t, isCached)

		require.NoError(t, st.Set(ctx, cfg.SaveKey, []byte(`{}`)))
		got, err := st.Get(ctx, cfg.SaveKey)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{}`), got)
		assert.NoError(t, ready.CheckHealth(ctx))

		_, err = os.Stat(cfg.StorePath)
		assert.NoError(t, err, "save dir created")
	})

	t.Run("sqlite under a directory", func(t *testing.T) {
		cfg := testConfig(t, config.DriverSQLite)
		st, _, err := OpenStore(ctx, cfg)
		require.NoError(t, err)
		defer st.Close()

		_, err = os.Stat(filepath.Join(cfg.StorePath, config.SQLiteFileName))
		assert.NoError(t, err)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := testConfig(t, "etcd")
		_, _, err := OpenStore(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownDriver)
	})
}

type failingStore struct{ store.Store }

func (failingStore) Get(context.Context, string) ([]byte, error) {
	return nil, errors.New("connection refused")
}

func TestStoreHealthCheck_ReportsBackendErrors(t *testing.T) {
	check := storeHealthCheck(failingStore{}, "k")
	assert.EqualError(t, check.CheckHealth(context.Background()), "connection refused")
}

func TestSQLitePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"data", filepath.Join("data", config.SQLiteFileName)},
		{"data/farm.db", "data/farm.db"},
		{"saves.sqlite", "saves.sqlite"},
		{"/var/lib/farm.sqlite3", "/var/lib/farm.sqlite3"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sqlitePath(tt.in))
		})
	}
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	names := []string{
		"session_2026-01-01_00-00-00.log",
		"session_2026-01-02_00-00-00.log",
		"session_2026-01-03_00-00-00.log",
		"session_2026-01-04_00-00-00.log",
	}
	for _, n := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{names[2], names[3], "notes.txt"}, left)
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	cfg := testConfig(t, config.DriverMemory)
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	assert.FileExists(t, f.Name())
	assert.Equal(t, cfg.LogDir, filepath.Dir(f.Name()))
}

func TestInitializeEventSystem_CreatesDeadLetterDir(t *testing.T) {
	cfg := testConfig(t, config.DriverMemory)
	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	defer publisher.Shutdown(context.Background())

	assert.DirExists(t, filepath.Dir(cfg.DeadLetterPath))
}

func TestNewApp_Lifecycle(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t, config.DriverFile)

	app, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	app.Start()

	_, err = app.Game.BuySeeds(ctx, "wheat", 1)
	require.NoError(t, err)
	coins := app.Game.State().World.Coins
	assert.Equal(t, 45, coins)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	GracefulShutdown(shutdownCtx, app.Components())

	// A second app on the same store resumes the flushed farm
	again, err := NewApp(ctx, cfg)
	require.NoError(t, err)
	defer GracefulShutdown(shutdownCtx, again.Components())
	world := again.Game.State().World
	assert.Equal(t, coins, world.Coins)
	assert.Equal(t, 1, world.Warehouse["wheat"])
}

func TestGracefulShutdown_SkipsNilComponents(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
