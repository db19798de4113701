package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/IdleFarm_Go/internal/catalog"
	"github.com/osse101/IdleFarm_Go/internal/config"
	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/game"
	"github.com/osse101/IdleFarm_Go/internal/handler"
	"github.com/osse101/IdleFarm_Go/internal/market"
	"github.com/osse101/IdleFarm_Go/internal/observer"
	"github.com/osse101/IdleFarm_Go/internal/savegame"
	"github.com/osse101/IdleFarm_Go/internal/scheduler"
	"github.com/osse101/IdleFarm_Go/internal/server"
	"github.com/osse101/IdleFarm_Go/internal/sse"
	"github.com/osse101/IdleFarm_Go/internal/store"
	"github.com/osse101/IdleFarm_Go/internal/worker"
)

// App is the fully wired daemon. Build it with NewApp, run background work
// with Start and serve with Server.Start.
type App struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Store     store.Store
	Game      game.Service
	Publisher *event.ResilientPublisher
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Ticker    *worker.TickWorker
	Hub       *sse.Hub
	Observer  *observer.Server
	Server    *server.Server
}

// NewApp wires every component and loads the saved farm. Nothing runs until
// Start is called.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	cat, err := LoadCatalog(cfg)
	if err != nil {
		return nil, err
	}

	st, ready, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	codec, err := savegame.NewCodec(cat)
	if err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateCodec, err)
	}

	bus, publisher, err := InitializeEventSystem(cfg)
	if err != nil {
		_ = st.Close()
		return nil, err
	}

	pool := worker.NewPool(cfg.WorkerCount, SaveQueueSize)
	svc := game.NewService(cat, savegame.NewManager(codec, st, cfg.SaveKey), publisher, pool, nil, market.DefaultConfig())
	if err := svc.Init(ctx); err != nil {
		_ = publisher.Shutdown(ctx)
		_ = st.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedInitGame, err)
	}

	ticker := worker.NewTickWorker(game.Engine(svc))
	game.SetWaker(svc, ticker.Wake)

	hub := sse.NewHub()
	obs := observer.NewServer(svc)
	if err := RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, Hub: hub, Observer: obs}); err != nil {
		_ = publisher.Shutdown(ctx)
		_ = st.Close()
		return nil, err
	}

	srv := server.NewServer(server.Options{
		Addr:     cfg.Addr(),
		APIKey:   cfg.APIKey,
		Version:  cfg.Version,
		DevTools: cfg.Environment != config.EnvProduction,
		Farm:     handler.NewFarmHandler(svc),
		Ready:    ready,
		Events:   sse.Handler(hub),
		Observer: obs.Handler(),
	})

	return &App{
		Config:    cfg,
		Catalog:   cat,
		Store:     st,
		Game:      svc,
		Publisher: publisher,
		Pool:      pool,
		Scheduler: scheduler.New(pool),
		Ticker:    ticker,
		Hub:       hub,
		Observer:  obs,
		Server:    srv,
	}, nil
}

// Start launches the save pool, the stream hub, the automation ticker and
// the periodic autosave.
func (a *App) Start() {
	a.Pool.Start()
	a.Hub.Start()
	a.Ticker.Start()
	a.Scheduler.Schedule(JobNameAutosave, a.Config.AutosaveInterval, worker.JobFunc(a.Game.Flush))
	slog.Info(LogMsgWorkersStarted,
		"workers", a.Config.WorkerCount,
		"autosave", a.Config.AutosaveInterval)
}

// Components lists what GracefulShutdown has to stop.
func (a *App) Components() ShutdownComponents {
	return ShutdownComponents{
		Server:             a.Server,
		Observer:           a.Observer,
		Hub:                a.Hub,
		TickWorker:         a.Ticker,
		Scheduler:          a.Scheduler,
		GameService:        a.Game,
		Pool:               a.Pool,
		ResilientPublisher: a.Publisher,
		Store:              a.Store,
	}
}
