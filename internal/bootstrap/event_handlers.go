package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/metrics"
	"github.com/osse101/IdleFarm_Go/internal/observer"
	"github.com/osse101/IdleFarm_Go/internal/sse"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Hub      *sse.Hub
	Observer *observer.Server
}

// RegisterEventHandlers sets up all event handlers and subscribers:
// - Metrics collector (feedback, state and save counters)
// - SSE subscriber (notification stream for /events)
// - State observer (snapshot push for /ws)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, deps.EventBus).Subscribe()
	}
	if deps.Observer != nil {
		deps.Observer.Subscribe(deps.EventBus)
	}
	slog.Info(LogMsgStreamSubscribersAttached)

	return nil
}
