package sse

import (
	"context"

	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	types := make([]string, 0, len(event.FeedbackTypes())+1)
	for _, t := range event.FeedbackTypes() {
		s.bus.Subscribe(t, s.handleFeedback)
		types = append(types, string(t))
	}

	s.bus.Subscribe(event.StateChanged, s.handleStateChanged)
	types = append(types, string(event.StateChanged))

	logger.FromContext(context.Background()).Info(LogMsgSubscribed, "types", types)
}

// handleFeedback forwards action feedback under its sound kind
func (s *Subscriber) handleFeedback(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.FeedbackPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(string(evt.Type), FeedbackPayload{
		Sound:  payload.Action,
		Haptic: payload.Haptic,
		Source: payload.Source,
		SeedID: payload.SeedID,
		Kind:   payload.Kind,
		Plot:   payload.Plot,
		Amount: payload.Amount,
		Coins:  payload.Coins,
		Crypto: payload.Crypto,
	})

	logger.FromContext(ctx).Debug(LogMsgEventBroadcast, "event_type", evt.Type, "source", payload.Source)
	return nil
}

func (s *Subscriber) handleStateChanged(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.StateChangedPayloadV1](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgInvalidPayload, "event_type", evt.Type, "error", err)
		return nil
	}

	s.hub.Broadcast(EventTypeStateChanged, StateChangedPayload{
		Revision: payload.Revision,
		Coins:    payload.Coins,
		Crypto:   payload.Crypto,
	})
	return nil
}
