package sse

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/IdleFarm_Go/internal/logger"
)

// Handler streams hub events to one client. The optional "types" query
// parameter is a comma-separated list of event types to receive.
func Handler(hub *Hub) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())
		rc := http.NewResponseController(w)

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")
		if err := rc.Flush(); err != nil {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		eventTypes := parseTypes(r.URL.Query().Get("types"))
		client := hub.Register(eventTypes)
		log.Info(LogMsgClientConnected, "client_id", client.ID, "filters", eventTypes, "total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected, "client_id", client.ID, "total_clients", hub.ClientCount())
		}()

		s := &stream{w: w, rc: rc}
		if err := s.writeRaw([]byte(RetryHint)); err != nil {
			return
		}
		hello := Event{
			ID:        client.ID,
			Type:      EventTypeConnected,
			Timestamp: time.Now().UnixMilli(),
			Payload:   map[string]interface{}{"client_id": client.ID, "filters": eventTypes},
		}
		if err := s.send(hello); err != nil {
			return
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-r.Context().Done():
				return
			case evt, ok := <-client.EventChannel:
				if !ok {
					// hub stopped
					return
				}
				if err := s.send(evt); err != nil {
					log.Warn(LogMsgWriteError, "client_id", client.ID, "error", err)
					return
				}
			case <-ticker.C:
				if err := s.writeRaw([]byte(KeepaliveComment)); err != nil {
					return
				}
			}
		}
	}
}

type stream struct {
	w  http.ResponseWriter
	rc *http.ResponseController
}

func (s *stream) send(evt Event) error {
	msg, err := FormatSSEMessage(evt)
	if err != nil {
		// an unencodable payload only costs this one event
		return nil
	}
	return s.writeRaw(msg)
}

// writeRaw writes under a deadline so a stalled client cannot pin the handler.
func (s *stream) writeRaw(msg []byte) error {
	if err := s.rc.SetWriteDeadline(time.Now().Add(WriteTimeout)); err != nil && !errors.Is(err, http.ErrNotSupported) {
		return err
	}
	if _, err := s.w.Write(msg); err != nil {
		return err
	}
	return s.rc.Flush()
}

func parseTypes(raw string) []string {
	if raw == "" {
		return nil
	}
	var types []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
