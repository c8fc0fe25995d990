package sse

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/logger"
)

// NewUpgrader returns a websocket upgrader accepting the given origins.
// An empty list accepts any origin; the feed is public and read-only.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowed) == 0 {
				return true
			}
			return allowed[r.Header.Get("Origin")]
		},
	}
}

// WebSocketHandler returns an HTTP handler for WebSocket observers. It sends
// the same event sequence as the SSE handler, one JSON text frame per event.
func WebSocketHandler(hub *Hub, welcomer Welcomer, upgrader *websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already wrote an HTTP error response
			log.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}
		defer conn.Close()

		client := hub.Register(TransportWebSocket)
		log.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", TransportWebSocket,
			"total_clients", hub.ClientCount())
		defer func() {
			hub.Unregister(client.ID)
			log.Info(LogMsgClientDisconnected,
				"client_id", client.ID,
				"total_clients", hub.ClientCount())
		}()

		// The reader only services control frames and notices the peer leaving
		gone := make(chan struct{})
		go func() {
			defer close(gone)
			conn.SetReadLimit(MaxInboundMessageSize)
			_ = conn.SetReadDeadline(time.Now().Add(PongWait))
			conn.SetPongHandler(func(string) error {
				return conn.SetReadDeadline(time.Now().Add(PongWait))
			})
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
						log.Debug(LogMsgWriteError, "client_id", client.ID, "error", err)
					}
					return
				}
			}
		}()

		write := func(event Event) bool {
			_ = conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				log.Debug(LogMsgWriteError, "client_id", client.ID, "error", err)
				return false
			}
			return true
		}

		if !write(newEvent(domain.EventTypeConnected, client.ID, ConnectedPayload{
			ClientID:  client.ID,
			Transport: TransportWebSocket,
		})) {
			return
		}

		if welcomer != nil {
			if err := welcomer.Welcome(r.Context(), client.ID); err != nil {
				log.Warn(LogMsgWelcomeFailed, "client_id", client.ID, "error", err)
			}
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		for {
			select {
			case <-gone:
				return

			case event, ok := <-client.EventChannel:
				if !ok {
					_ = conn.WriteControl(websocket.CloseMessage,
						websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "observer dropped"),
						time.Now().Add(WriteTimeout))
					return
				}
				if !write(event) {
					return
				}

			case <-ticker.C:
				if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(WriteTimeout)); err != nil {
					return
				}
			}
		}
	}
}
