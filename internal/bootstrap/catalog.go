package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/config"
)

// LoadCatalog reads the YAML overrides at cfg.CatalogPath, or the built-in
// catalog when no path is set, then applies TICK_INTERVAL_MS if given.
func LoadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.Load(cfg.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
		}
		cat = loaded
	}

	if cfg.TickInterval > 0 {
		economy := cat.Economy()
		economy.TickIntervalMs = int(cfg.TickInterval.Milliseconds())
		overridden, err := catalog.New(cat.Crops(), cat.Machinery(), cat.Expansions(), economy)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgInvalidTickOverride, err)
		}
		cat = overridden
	}

	slog.Info(LogMsgCatalogLoaded,
		"path", cfg.CatalogPath,
		"crops", len(cat.Crops()),
		"machinery", len(cat.Machinery()),
		"tick", cat.TickPeriod())
	return cat, nil
}
