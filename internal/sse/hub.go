package sse

import (
	"bytes"
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Event is one message on a stream. IDs increase by one per broadcast, so a
// client that sees a gap knows it missed events and should refetch state.
// Timestamp is Unix milliseconds.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one open stream
type Client struct {
	ID           string
	EventChannel chan Event

	// types is nil for clients that want everything
	types   map[string]struct{}
	dropped atomic.Int64
}

func (c *Client) wants(eventType string) bool {
	if c.types == nil {
		return true
	}
	_, ok := c.types[eventType]
	return ok
}

// Dropped counts events this client missed because its buffer was full
func (c *Client) Dropped() int64 {
	return c.dropped.Load()
}

// Hub fans broadcast events out to registered clients. A slow client loses
// events instead of holding up the game loop or other clients.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
	stopped bool

	events   chan Event
	seq      atomic.Uint64
	dropped  atomic.Int64
	now      func() time.Time
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		events:  make(chan Event, BroadcastBufferSize),
		now:     time.Now,
		done:    make(chan struct{}),
	}
}

// Start runs the fan-out loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case evt := <-h.events:
				h.fanOut(evt)
			case <-h.done:
				return
			}
		}
	}()
}

// Stop ends the fan-out loop and closes every client channel, which ends
// their streams. Safe to call more than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		h.stopped = true
		for id, c := range h.clients {
			close(c.EventChannel)
			delete(h.clients, id)
		}
	})
}

func (h *Hub) fanOut(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.wants(evt.Type) {
			continue
		}
		select {
		case c.EventChannel <- evt:
		default:
			c.dropped.Add(1)
			h.dropped.Add(1)
		}
	}
}

// Register opens a client that receives the given event types, or every
// type when eventTypes is empty. After Stop the returned channel is closed.
func (h *Hub) Register(eventTypes []string) *Client {
	c := &Client{
		ID:           uuid.New().String(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	if len(eventTypes) > 0 {
		c.types = make(map[string]struct{}, len(eventTypes))
		for _, t := range eventTypes {
			c.types[t] = struct{}{}
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(c.EventChannel)
		return c
	}
	h.clients[c.ID] = c
	return c
}

// Unregister closes and forgets the client. Unknown ids are ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.EventChannel)
		delete(h.clients, clientID)
	}
}

// Broadcast queues an event for every interested client. It never blocks;
// when the queue is full the event is counted as dropped.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := Event{
		ID:        strconv.FormatUint(h.seq.Add(1), 10),
		Type:      eventType,
		Timestamp: h.now().UnixMilli(),
		Payload:   payload,
	}
	select {
	case h.events <- evt:
	default:
		h.dropped.Add(1)
	}
}

// Dropped counts every skipped delivery across the hub
func (h *Hub) Dropped() int64 {
	return h.dropped.Load()
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing with the whole
// event as the JSON data line.
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	b.Grow(len(data) + len(evt.ID) + len(evt.Type) + 20)
	b.WriteString("id: ")
	b.WriteString(evt.ID)
	b.WriteString("\nevent: ")
	b.WriteString(evt.Type)
	b.WriteString("\ndata: ")
	b.Write(data)
	b.WriteString("\n\n")
	return b.Bytes(), nil
}
