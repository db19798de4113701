// Package observer streams full game state snapshots to local WebSocket
// clients. A snapshot is pushed on connect and after every committed change;
// bursts of changes collapse into a single snapshot per client.
package observer

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/game"
	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// StateSource supplies the snapshot sent to observers.
type StateSource interface {
	State() game.View
}

// Message is one frame on the observer stream.
type Message struct {
	Type string    `json:"type"`
	Data game.View `json:"data"`
}

type Server struct {
	source   StateSource
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[uint64]chan struct{}
	nextID  atomic.Uint64

	done      chan struct{}
	closeOnce sync.Once
}

func NewServer(source StateSource) *Server {
	return &Server{
		source: source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  ReadBufferSize,
			WriteBufferSize: WriteBufferSize,
			CheckOrigin:     allowOrigin,
		},
		clients: make(map[uint64]chan struct{}),
		done:    make(chan struct{}),
	}
}

// Subscribe pushes a snapshot to every observer whenever the state changes.
func (s *Server) Subscribe(bus event.Bus) {
	bus.Subscribe(event.StateChanged, func(_ context.Context, _ event.Event) error {
		s.Notify()
		return nil
	})
}

// Notify marks every client dirty. It never blocks.
func (s *Server) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, dirty := range s.clients {
		select {
		case dirty <- struct{}{}:
		default:
		}
	}
}

func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close disconnects all observers.
func (s *Server) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Server) register() (uint64, chan struct{}) {
	id := s.nextID.Add(1)
	dirty := make(chan struct{}, 1)
	s.mu.Lock()
	s.clients[id] = dirty
	s.mu.Unlock()
	return id, dirty
}

func (s *Server) unregister(id uint64) {
	s.mu.Lock()
	delete(s.clients, id)
	s.mu.Unlock()
}

func (s *Server) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		if !isLoopbackRemote(r.RemoteAddr) {
			log.Warn(LogMsgForbidden, "remote", r.RemoteAddr)
			http.Error(rw, "forbidden", http.StatusForbidden)
			return
		}

		conn, err := s.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			log.Debug(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		id, dirty := s.register()
		defer s.unregister(id)
		log.Info(LogMsgClientConnected, "client_id", id)
		defer log.Info(LogMsgClientGone, "client_id", id)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		writeErr := make(chan error, 1)
		go func() {
			writeErr <- s.writeLoop(ctx, conn, dirty)
		}()

		// Clients only send control frames; the read loop keeps pongs flowing
		// and notices disconnects.
		_ = conn.SetReadDeadline(time.Now().Add(PongWait))
		conn.SetPongHandler(func(string) error {
			return conn.SetReadDeadline(time.Now().Add(PongWait))
		})
		readDone := make(chan struct{})
		go func() {
			defer close(readDone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		select {
		case <-readDone:
			cancel()
			if err := <-writeErr; err != nil && !errors.Is(err, context.Canceled) {
				log.Debug(LogMsgWriteFailed, "client_id", id, "error", err)
			}
		case err := <-writeErr:
			if err != nil {
				log.Debug(LogMsgWriteFailed, "client_id", id, "error", err)
			}
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"),
				time.Now().Add(time.Second))
			select {
			case <-readDone:
			case <-time.After(500 * time.Millisecond):
			}
		}
	}
}

// writeLoop owns all data writes to conn. It returns nil when the server closes.
func (s *Server) writeLoop(ctx context.Context, conn *websocket.Conn, dirty <-chan struct{}) error {
	ping := time.NewTicker(PingInterval)
	defer ping.Stop()

	if err := s.sendState(conn); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-dirty:
			if err := s.sendState(conn); err != nil {
				return err
			}
		case <-ping.C:
			_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}

func (s *Server) sendState(conn *websocket.Conn) error {
	_ = conn.SetWriteDeadline(time.Now().Add(WriteWait))
	return conn.WriteJSON(Message{Type: MessageTypeState, Data: s.source.State()})
}

// allowOrigin accepts non-browser clients and pages served from a loopback host.
func allowOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return isLoopbackHost(u.Hostname())
}

func isLoopbackRemote(remoteAddr string) bool {
	host := remoteAddr
	if h, _, err := net.SplitHostPort(remoteAddr); err == nil {
		host = h
	}
	host = strings.TrimPrefix(host, "[")
	host = strings.TrimSuffix(host, "]")
	return isLoopbackHost(host)
}

func isLoopbackHost(host string) bool {
	if host == "localhost" {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}
