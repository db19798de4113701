package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/domain"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestNewFeedbackEvent(t *testing.T) {
	plot := 3
	evt := NewFeedbackEvent(domain.FeedbackPayload{
		Action: domain.EventTypeHarvest,
		Source: domain.SourceMachinery,
		Haptic: domain.HapticMedium,
		SeedID: "wheat",
		Plot:   &plot,
	})

	assert.Equal(t, Harvest, evt.Type)
	assert.Equal(t, EventSchemaVersion, evt.Version)
	assert.Equal(t, domain.SourceMachinery, evt.GetMetadataValue("source"))
	assert.Nil(t, evt.GetMetadataValue("missing"))

	payload, err := DecodePayload[domain.FeedbackPayload](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, "wheat", payload.SeedID)
	assert.Equal(t, 3, *payload.Plot)
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]interface{}{"action": "sell", "source": "player", "amount": 4, "coins": 60, "crypto": 0}
	payload, err := DecodePayload[domain.FeedbackPayload](raw)
	require.NoError(t, err)
	assert.Equal(t, domain.FeedbackPayload{Action: "sell", Source: "player", Amount: 4, Coins: 60}, payload)
}

func TestNewSaveEvent(t *testing.T) {
	ok := NewSaveEvent("slot", 7, 12*time.Millisecond, nil)
	assert.Equal(t, SaveComplete, ok.Type)
	assert.Equal(t, SavePayloadV1{Key: "slot", Revision: 7, DurationMs: 12}, ok.Payload)

	failed := NewSaveEvent("slot", 8, time.Millisecond, errors.New("disk full"))
	assert.Equal(t, SaveFailed, failed.Type)
	assert.Equal(t, "disk full", failed.Payload.(SavePayloadV1).Error)
}

func TestFeedbackTypes(t *testing.T) {
	seen := map[Type]bool{}
	for _, typ := range FeedbackTypes() {
		assert.False(t, seen[typ], "duplicate %s", typ)
		seen[typ] = true
	}
	assert.True(t, seen[Collect])
	assert.True(t, seen[Reset])
	assert.False(t, seen[StateChanged])
}

func TestDecodePayload_Pointer(t *testing.T) {
	in := &StateChangedPayloadV1{Revision: 4, Coins: 10}
	got, err := DecodePayload[StateChangedPayloadV1](in)
	require.NoError(t, err)
	assert.Equal(t, *in, got)

	_, err = DecodePayload[StateChangedPayloadV1](nil)
	assert.Error(t, err)
}

func TestCalculateRetryDelay(t *testing.T) {
	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, 2 * time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{5, 32 * time.Second},
		{6, MaxRetryDelay},
		{40, MaxRetryDelay},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CalculateRetryDelay(2*time.Second, tt.attempt), "attempt %d", tt.attempt)
	}
}
