package metrics

import (
	"context"

	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.FeedbackTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	bus.Subscribe(event.StateChanged, e.HandleEvent)
	bus.Subscribe(event.SaveComplete, e.HandleEvent)
	bus.Subscribe(event.SaveFailed, e.HandleEvent)
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.StateChanged:
		err = recordState(evt)
	case event.SaveComplete, event.SaveFailed:
		err = recordSave(evt)
	default:
		err = recordFeedback(evt)
	}
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func recordFeedback(evt event.Event) error {
	p, err := event.DecodePayload[domain.FeedbackPayload](evt.Payload)
	if err != nil {
		return err
	}

	FarmActions.WithLabelValues(p.Action, p.Source).Inc()
	Coins.Set(float64(p.Coins))
	Crypto.Set(float64(p.Crypto))

	switch p.Action {
	case domain.EventTypePlant:
		CropsPlanted.WithLabelValues(p.SeedID).Inc()
	case domain.EventTypeHarvest:
		CropsHarvested.WithLabelValues(p.SeedID).Inc()
	case domain.EventTypeSell:
		if p.SeedID != "" {
			ProduceSold.WithLabelValues(p.SeedID).Add(float64(p.Amount))
		}
	}
	return nil
}

func recordState(evt event.Event) error {
	p, err := event.DecodePayload[event.StateChangedPayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	Coins.Set(float64(p.Coins))
	Crypto.Set(float64(p.Crypto))
	Revision.Set(float64(p.Revision))
	return nil
}

func recordSave(evt event.Event) error {
	p, err := event.DecodePayload[event.SavePayloadV1](evt.Payload)
	if err != nil {
		return err
	}
	result := ResultOK
	if evt.Type == event.SaveFailed {
		result = ResultError
	}
	Saves.WithLabelValues(result).Inc()
	SaveDuration.Observe(float64(p.DurationMs) / 1000)
	return nil
}
