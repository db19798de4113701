package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata map[string]interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// Feedback event types. Each one names the sound cue for the action.
const (
	Buy       = Type(domain.EventTypeBuy)
	Sell      = Type(domain.EventTypeSell)
	Plant     = Type(domain.EventTypePlant)
	Fertilize = Type(domain.EventTypeFertilize)
	Weed      = Type(domain.EventTypeWeed)
	Water     = Type(domain.EventTypeWater)
	Collect   = Type(domain.EventTypeCollect)
	Harvest   = Type(domain.EventTypeHarvest)
	Expand    = Type(domain.EventTypeExpand)
	Deploy    = Type(domain.EventTypeDeploy)
	Recall    = Type(domain.EventTypeRecall)
	Maintain  = Type(domain.EventTypeMaintain)
	Reset     = Type(domain.EventTypeReset)
)

// Lifecycle event types
const (
	StateChanged Type = "state.changed"
	SaveComplete Type = "save.completed"
	SaveFailed   Type = "save.failed"
)

// FeedbackTypes lists every feedback event type.
func FeedbackTypes() []Type {
	return []Type{Buy, Sell, Plant, Fertilize, Weed, Water, Collect, Harvest, Expand, Deploy, Recall, Maintain, Reset}
}

// StateChangedPayloadV1 is the payload of StateChanged events
type StateChangedPayloadV1 struct {
	Revision  uint64 `json:"revision"`
	Coins     int    `json:"coins"`
	Crypto    int    `json:"crypto"`
	Timestamp int64  `json:"timestamp"`
}

// SavePayloadV1 is the payload of SaveComplete and SaveFailed events
type SavePayloadV1 struct {
	Key        string `json:"key"`
	Revision   uint64 `json:"revision"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// NewFeedbackEvent creates a feedback event for a completed action
func NewFeedbackEvent(payload domain.FeedbackPayload) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     Type(payload.Action),
		Payload:  payload,
		Metadata: Metadata{"source": payload.Source},
	}
}

// NewStateChangedEvent creates a state changed event
func NewStateChangedEvent(revision uint64, coins, crypto int, at time.Time) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    StateChanged,
		Payload: StateChangedPayloadV1{
			Revision:  revision,
			Coins:     coins,
			Crypto:    crypto,
			Timestamp: at.UnixMilli(),
		},
	}
}

// NewSaveEvent creates a SaveComplete event, or SaveFailed when err is set
func NewSaveEvent(key string, revision uint64, took time.Duration, err error) Event {
	payload := SavePayloadV1{Key: key, Revision: revision, DurationMs: took.Milliseconds()}
	typ := SaveComplete
	if err != nil {
		typ = SaveFailed
		payload.Error = err.Error()
	}
	return Event{Version: EventSchemaVersion, Type: typ, Payload: payload}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously on the publisher's goroutine.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
