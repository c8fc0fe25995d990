package sse

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/UrbanPark_Go/internal/domain"
	"github.com/osse101/UrbanPark_Go/internal/testing/leaktest"
)

func dialWS(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	resp.Body.Close()
	return conn
}

func readWSEvent(t *testing.T, conn *websocket.Conn) Event {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	var event Event
	require.NoError(t, conn.ReadJSON(&event))
	return event
}

func TestWebSocketHandler_EventSequence(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub()
	hub.Start()

	srv := httptest.NewServer(WebSocketHandler(hub, &hubWelcomer{hub: hub}, NewUpgrader(nil)))

	conn := dialWS(t, srv)

	connected := readWSEvent(t, conn)
	assert.Equal(t, domain.EventTypeConnected, connected.Type)
	payload, ok := connected.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, TransportWebSocket, payload["transport"])

	snapshot := readWSEvent(t, conn)
	assert.Equal(t, domain.EventTypeSnapshot, snapshot.Type)
	assert.Equal(t, "snapshot-1", snapshot.ID)

	require.True(t, hub.Broadcast(domain.EventTypeSnapshot, "snapshot-2", nil))
	assert.Equal(t, "snapshot-2", readWSEvent(t, conn).ID)

	require.NoError(t, conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
	conn.Close()

	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)

	srv.Close()
	hub.Stop()
	checker.Check(1)
}

func TestWebSocketHandler_DroppedClientGetsCloseFrame(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(WebSocketHandler(hub, nil, NewUpgrader(nil)))
	defer srv.Close()

	conn := dialWS(t, srv)
	defer conn.Close()

	connected := readWSEvent(t, conn)
	hub.Unregister(connected.ID)

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, _, err := conn.ReadMessage()
	require.Error(t, err)
	assert.True(t, websocket.IsCloseError(err, websocket.CloseTryAgainLater), "unexpected error: %v", err)
}

func TestNewUpgrader_CheckOrigin(t *testing.T) {
	tests := []struct {
		name    string
		allowed []string
		origin  string
		want    bool
	}{
		{"any origin when unrestricted", nil, "https://elsewhere.example", true},
		{"listed origin", []string{"https://app.example"}, "https://app.example", true},
		{"unlisted origin", []string{"https://app.example"}, "https://elsewhere.example", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/ws", nil)
			req.Header.Set("Origin", tt.origin)
			assert.Equal(t, tt.want, NewUpgrader(tt.allowed).CheckOrigin(req))
		})
	}
}
