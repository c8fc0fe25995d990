package sse

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/UrbanPark_Go/internal/domain"
)

// hubWelcomer queues a fixed snapshot event for each new client
type hubWelcomer struct {
	hub *Hub
	err error
}

func (w *hubWelcomer) Welcome(_ context.Context, clientID string) error {
	if w.err != nil {
		return w.err
	}
	w.hub.SendTo(clientID, domain.EventTypeSnapshot, "snapshot-1", "state")
	return nil
}

// readSSEEvent parses one "id/event/data" block from the stream
func readSSEEvent(t *testing.T, r *bufio.Reader) Event {
	t.Helper()
	var event Event
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		if line == "" {
			return event
		}
		if data, ok := strings.CutPrefix(line, "data: "); ok {
			require.NoError(t, json.Unmarshal([]byte(data), &event))
		}
	}
}

func openSSE(t *testing.T, url string) (*bufio.Reader, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	return bufio.NewReader(resp.Body), cancel
}

func TestHandler_ConnectedThenSnapshotThenBroadcast(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub, &hubWelcomer{hub: hub}))
	defer srv.Close()

	r, cancel := openSSE(t, srv.URL)
	defer cancel()

	connected := readSSEEvent(t, r)
	assert.Equal(t, domain.EventTypeConnected, connected.Type)
	payload, ok := connected.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, TransportSSE, payload["transport"])

	snapshot := readSSEEvent(t, r)
	assert.Equal(t, domain.EventTypeSnapshot, snapshot.Type)
	assert.Equal(t, "snapshot-1", snapshot.ID)

	require.True(t, hub.Broadcast(domain.EventTypeSnapshot, "snapshot-2", "next"))
	next := readSSEEvent(t, r)
	assert.Equal(t, "snapshot-2", next.ID)
	assert.Equal(t, "next", next.Payload)

	cancel()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestHandler_WelcomeFailureKeepsStream(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub, &hubWelcomer{hub: hub, err: errors.New("store down")}))
	defer srv.Close()

	r, cancel := openSSE(t, srv.URL)
	defer cancel()

	assert.Equal(t, domain.EventTypeConnected, readSSEEvent(t, r).Type)

	require.True(t, hub.Broadcast(domain.EventTypeSnapshot, "after", nil))
	assert.Equal(t, "after", readSSEEvent(t, r).ID)
}

func TestHandler_DroppedClientEndsStream(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	srv := httptest.NewServer(Handler(hub, nil))
	defer srv.Close()

	r, cancel := openSSE(t, srv.URL)
	defer cancel()

	connected := readSSEEvent(t, r)
	hub.Unregister(connected.ID)

	_, err := io.ReadAll(r)
	assert.NoError(t, err, "stream should end cleanly")
}

// plainWriter is a ResponseWriter without Flush support
type plainWriter struct {
	header http.Header
	code   int
}

func (w *plainWriter) Header() http.Header         { return w.header }
func (w *plainWriter) Write(b []byte) (int, error) { return len(b), nil }
func (w *plainWriter) WriteHeader(code int)        { w.code = code }

func TestHandler_RequiresFlusher(t *testing.T) {
	hub := NewHub()
	w := &plainWriter{header: http.Header{}}

	Handler(hub, nil)(w, httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, http.StatusInternalServerError, w.code)
	assert.Equal(t, 0, hub.ClientCount())
}
