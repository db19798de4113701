package observer

import "time"

// Connection settings
const (
	ReadBufferSize  = 4 * 1024
	WriteBufferSize = 64 * 1024

	// PingInterval must stay below PongWait so a healthy client never times out.
	PingInterval = 25 * time.Second
	PongWait     = 60 * time.Second
	WriteWait    = 5 * time.Second
)

// Message types
const (
	MessageTypeState = "state"
)

// Log messages
const (
	LogMsgForbidden       = "Observer connection rejected: remote is not loopback"
	LogMsgUpgradeFailed   = "Observer websocket upgrade failed"
	LogMsgClientConnected = "Observer client connected"
	LogMsgClientGone      = "Observer client disconnected"
	LogMsgWriteFailed     = "Observer write failed"
)
