package sse

import (
	"net/http"
	"time"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// Handler returns an HTTP handler for SSE observers. Each observer gets a
// connected event, then the current snapshot, then every later snapshot.
func Handler(hub *Hub, welcomer Welcomer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		// Check for flusher support
		if _, ok := w.(http.Flusher); !ok {
			http.Error(w, "SSE not supported", http.StatusInternalServerError)
			return
		}
		rc := http.NewResponseController(w)

		// Set SSE headers
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.Header().Set("X-Accel-Buffering", "no")

		client := hub.Register(TransportSSE)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", TransportSSE,
			"total_clients", hub.ClientCount())

		// Ensure cleanup on disconnect
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"total_clients", hub.ClientCount())
		}()

		write := func(event Event) bool {
			msg, err := FormatSSEMessage(event)
			if err != nil {
				log.Error(LogMsgWriteError, "error", err)
				return true
			}
			_ = rc.SetWriteDeadline(time.Now().Add(WriteTimeout))
			if _, err := w.Write(msg); err != nil {
				log.Debug(LogMsgWriteError, "client_id", client.ID, "error", err)
				return false
			}
			if err := rc.Flush(); err != nil {
				return false
			}
			return true
		}

		if !write(newEvent(domain.EventTypeConnected, client.ID, ConnectedPayload{
			ClientID:  client.ID,
			Transport: TransportSSE,
		})) {
			return
		}

		if welcomer != nil {
			if err := welcomer.Welcome(r.Context(), client.ID); err != nil {
				log.Warn(LogMsgWelcomeFailed, "client_id", client.ID, "error", err)
			}
		}

		// Keepalive ticker
		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					// Dropped for falling behind, or the hub is shutting down
					return
				}
				if !write(event) {
					return
				}

			case <-ticker.C:
				if !write(Event{Type: domain.EventTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
