package observer

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/IdleFarm_Go/internal/event"
	"github.com/osse101/IdleFarm_Go/internal/game"
)

type fakeSource struct {
	revision atomic.Uint64
}

func (f *fakeSource) State() game.View {
	return game.View{Revision: f.revision.Load()}
}

func startServer(t *testing.T) (*Server, *fakeSource, string) {
	t.Helper()
	src := &fakeSource{}
	src.revision.Store(1)
	srv := NewServer(src)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		srv.Close()
		ts.Close()
	})
	return srv, src, "ws" + strings.TrimPrefix(ts.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg Message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestServer_SnapshotOnConnect(t *testing.T) {
	srv, _, url := startServer(t)
	conn := dial(t, url)

	msg := readMessage(t, conn)
	assert.Equal(t, MessageTypeState, msg.Type)
	assert.Equal(t, uint64(1), msg.Data.Revision)
	assert.Eventually(t, func() bool { return srv.ClientCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestServer_PushesOnStateChanged(t *testing.T) {
	srv, src, url := startServer(t)
	bus := event.NewMemoryBus()
	srv.Subscribe(bus)

	conn := dial(t, url)
	readMessage(t, conn)

	src.revision.Store(7)
	require.NoError(t, bus.Publish(context.Background(), event.NewStateChangedEvent(7, 50, 0, time.Now())))

	msg := readMessage(t, conn)
	assert.Equal(t, uint64(7), msg.Data.Revision)
}

func TestServer_NotifyCoalesces(t *testing.T) {
	srv, src, url := startServer(t)
	conn := dial(t, url)
	readMessage(t, conn)
	require.Eventually(t, func() bool { return srv.ClientCount() == 1 }, time.Second, 10*time.Millisecond)

	src.revision.Store(3)
	for i := 0; i < 10; i++ {
		srv.Notify()
	}

	msg := readMessage(t, conn)
	assert.Equal(t, uint64(3), msg.Data.Revision)
}

func TestServer_CloseDisconnectsClients(t *testing.T) {
	srv, _, url := startServer(t)
	conn := dial(t, url)
	readMessage(t, conn)

	srv.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseGoingAway), "got %v", err)
	assert.Eventually(t, func() bool { return srv.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}

func TestServer_RejectsRemoteClients(t *testing.T) {
	srv := NewServer(&fakeSource{})
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.RemoteAddr = "192.0.2.10:5555"
	rec := httptest.NewRecorder()

	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 0, srv.ClientCount())
}

func TestAllowOrigin(t *testing.T) {
	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"http://localhost:5173", true},
		{"http://127.0.0.1:8080", true},
		{"http://[::1]:8080", true},
		{"https://evil.example.com", false},
		{"::not a url", false},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			assert.Equal(t, tt.want, allowOrigin(req))
		})
	}
}

func TestIsLoopbackRemote(t *testing.T) {
	assert.True(t, isLoopbackRemote("127.0.0.1:1234"))
	assert.True(t, isLoopbackRemote("[::1]:1234"))
	assert.False(t, isLoopbackRemote("10.1.2.3:80"))
	assert.False(t, isLoopbackRemote("garbage"))
}
