package sse

import "time"

const (
	// BroadcastBufferSize bounds events waiting for the hub loop
	BroadcastBufferSize = 100

	// ClientEventBuffer bounds events waiting for one slow client; beyond
	// it the client misses events and catches up from state.changed
	ClientEventBuffer = 50
)

const (
	KeepaliveInterval = 30 * time.Second
	WriteTimeout      = 10 * time.Second

	// RetryHint asks browsers to reconnect after three seconds
	RetryHint = "retry: 3000\n\n"

	// KeepaliveComment is an SSE comment line; EventSource ignores it
	KeepaliveComment = ": keepalive\n\n"
)

// Stream event types. Feedback events are forwarded under their sound kind
// (buy, sell, plant, ...).
const (
	EventTypeStateChanged = "state.changed"
	EventTypeConnected    = "connected"
)

const ErrMsgStreamingUnsupported = "streaming unsupported"

const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Broadcasting SSE event"
	LogMsgWriteError         = "Failed to write SSE event"
	LogMsgSubscribed         = "Stream subscriber registered"
	LogMsgInvalidPayload     = "Invalid event payload for stream"
)
