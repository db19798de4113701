package main

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/osse101/IdleFarm_Go/internal/bootstrap"
	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/config"
	"github.com/osse101/IdleFarm_Go/internal/game"
	"github.com/osse101/IdleFarm_Go/internal/logger"
	"github.com/osse101/IdleFarm_Go/internal/market"
	"github.com/osse101/IdleFarm_Go/internal/savegame"
	"github.com/osse101/IdleFarm_Go/internal/store"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// loadConfig applies the command line overrides on top of the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if storeDriver != "" {
		cfg.StoreDriver = storeDriver
	}
	if storePath != "" {
		cfg.StorePath = storePath
	}
	if saveKey != "" {
		cfg.SaveKey = saveKey
	}
	// Read-through caching only helps a long running process
	cfg.CacheSize = 0
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Keep stdout for tables
	logCfg := logger.DefaultConfig()
	logCfg.Level = logger.LogLevelWarn
	logCfg.ServiceName, logCfg.Version = cfg.ServiceName, cfg.Version
	logger.InitLoggerWithWriter(logCfg, os.Stderr)
	return cfg, nil
}

// session is a game service over the configured store, without workers or
// event delivery.
type session struct {
	cfg   *config.Config
	cat   *catalog.Catalog
	store store.Store
	game  game.Service
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}
	st, _, err := bootstrap.OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	codec, err := savegame.NewCodec(cat)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	svc := game.NewService(cat, savegame.NewManager(codec, st, cfg.SaveKey), nil, nil, nil, market.DefaultConfig())
	if err := svc.Init(ctx); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("load %s: %w", cfg.SaveKey, err)
	}
	return &session{cfg: cfg, cat: cat, store: st, game: svc}, nil
}

func (s *session) Close() error {
	return s.store.Close()
}

func displayName(id, name string) string {
	if name != "" {
		return name
	}
	return titler.String(id)
}
