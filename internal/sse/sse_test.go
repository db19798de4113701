package sse

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/domain"
	"github.com/osse101/IdleFarm_Go/internal/event"
)

func waitForClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return h.ClientCount() == n }, time.Second, 5*time.Millisecond)
}

func receive(t *testing.T, c *Client) Event {
	t.Helper()
	select {
	case evt := <-c.EventChannel:
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_FiltersByType(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	all := h.Register(nil)
	harvestOnly := h.Register([]string{"harvest"})
	waitForClients(t, h, 2)

	h.Broadcast("plant", "p")
	h.Broadcast("harvest", "h")

	assert.Equal(t, "plant", receive(t, all).Type)
	assert.Equal(t, "harvest", receive(t, all).Type)
	assert.Equal(t, "harvest", receive(t, harvestOnly).Type)

	h.Unregister(all.ID)
	waitForClients(t, h, 1)
}

func TestHub_StopClosesClients(t *testing.T) {
	h := NewHub()
	h.Start()
	c := h.Register(nil)
	waitForClients(t, h, 1)

	h.Stop()
	h.Stop()

	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Equal(t, 0, h.ClientCount())
}

func TestSubscriber_ForwardsFeedback(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()
	bus := event.NewMemoryBus()
	NewSubscriber(h, bus).Subscribe()

	c := h.Register(nil)
	waitForClients(t, h, 1)

	plot := 2
	require.NoError(t, bus.Publish(context.Background(), event.NewFeedbackEvent(domain.FeedbackPayload{
		Action: domain.EventTypePlant,
		Source: domain.SourceMachinery,
		Haptic: domain.HapticLight,
		SeedID: "wheat",
		Plot:   &plot,
		Coins:  50,
	})))
	require.NoError(t, bus.Publish(context.Background(), event.NewStateChangedEvent(4, 50, 0, time.Now())))

	evt := receive(t, c)
	assert.Equal(t, "plant", evt.Type)
	payload := evt.Payload.(FeedbackPayload)
	assert.Equal(t, "plant", payload.Sound)
	assert.Equal(t, domain.HapticLight, payload.Haptic)
	assert.Equal(t, 2, *payload.Plot)

	evt = receive(t, c)
	assert.Equal(t, EventTypeStateChanged, evt.Type)
	assert.Equal(t, StateChangedPayload{Revision: 4, Coins: 50}, evt.Payload)
}

func TestFormatSSEMessage(t *testing.T) {
	msg, err := FormatSSEMessage(Event{ID: "1", Type: "sell", Timestamp: 5, Payload: map[string]int{"coins": 3}})
	require.NoError(t, err)
	assert.Equal(t, "id: 1\nevent: sell\ndata: {\"id\":\"1\",\"type\":\"sell\",\"timestamp\":5,\"payload\":{\"coins\":3}}\n\n", string(msg))
}

func TestHandler_StreamsEvents(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()

	srv := httptest.NewServer(Handler(h))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"?types=sell", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readEvent := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "event: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "event: "))
			}
		}
	}

	assert.Equal(t, EventTypeConnected, readEvent())
	waitForClients(t, h, 1)

	h.Broadcast("plant", nil)
	h.Broadcast("sell", map[string]int{"coins": 12})
	assert.Equal(t, "sell", readEvent())
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"", nil},
		{"sell", []string{"sell"}},
		{"sell, buy ,,", []string{"sell", "buy"}},
		{" , ", nil},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTypes(tt.raw))
		})
	}
}

func TestHub_SequentialIDs(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()
	c := h.Register(nil)

	h.Broadcast("buy", nil)
	h.Broadcast("sell", nil)

	assert.Equal(t, "1", receive(t, c).ID)
	assert.Equal(t, "2", receive(t, c).ID)
}

func TestHub_SlowClientDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub()
	h.Start()
	defer h.Stop()
	slow := h.Register(nil)
	fast := h.Register([]string{"sell"})

	total := ClientEventBuffer + 5
	for i := 0; i < total; i++ {
		h.Broadcast("plant", i)
	}
	h.Broadcast("sell", nil)

	assert.Equal(t, "sell", receive(t, fast).Type)
	require.Eventually(t, func() bool { return slow.Dropped() >= 6 }, time.Second, 5*time.Millisecond)
	assert.Equal(t, slow.Dropped(), h.Dropped())
	assert.Zero(t, fast.Dropped())
}

func TestHub_RegisterAfterStop(t *testing.T) {
	h := NewHub()
	h.Start()
	h.Stop()

	c := h.Register(nil)
	_, ok := <-c.EventChannel
	assert.False(t, ok)
	assert.Zero(t, h.ClientCount())
	h.Unregister(c.ID)
}
