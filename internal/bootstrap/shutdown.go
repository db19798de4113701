package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/game"
	"github.com/osse101/IdleFarm_Go/internal/observer"
	"github.com/osse101/IdleFarm_Go/internal/scheduler"
	"github.com/osse101/IdleFarm_Go/internal/server"
	"github.com/osse101/IdleFarm_Go/internal/sse"
	"github.com/osse101/IdleFarm_Go/internal/store"
	"github.com/osse101/IdleFarm_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil fields are skipped.
type ShutdownComponents struct {
	Server             *server.Server
	Observer           *observer.Server
	Hub                *sse.Hub
	TickWorker         *worker.TickWorker
	Scheduler          *scheduler.Scheduler
	GameService        game.Service
	Pool               *worker.Pool
	ResilientPublisher *event.ResilientPublisher
	Store              store.Store
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in the correct order:
// 1. Streams, then the HTTP server (stop accepting new requests)
// 2. Tick worker and scheduler (no new automation passes or autosaves)
// 3. Game service (final flush of the latest state)
// 4. Save pool, event publisher, then the store itself
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Streams hold their requests open, so end them before draining the server
	if components.Observer != nil {
		components.Observer.Close()
	}
	if components.Hub != nil {
		components.Hub.Stop()
	}
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	// Cancel pending timers before the final flush
	if components.TickWorker != nil {
		if err := components.TickWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgTickWorkerShutdownFailed, "error", err)
		}
	}
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.GameService != nil {
		shutdownService(ctx, ServiceNameGame, components.GameService)
	}

	if components.Pool != nil {
		components.Pool.Stop()
	}

	// Shutdown resilient publisher after the game so the last save event is delivered
	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.Store != nil {
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}

// shutdownService is a helper that shuts down a service and logs any errors.
type shutdownableService interface {
	Shutdown(context.Context) error
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
