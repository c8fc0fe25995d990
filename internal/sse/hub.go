package sse

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/UrbanPark_Go/internal/metrics"
)

// Event represents an event sent to an observer
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client represents a connected observer. EventChannel is closed when the
// client is unregistered, dropped for falling behind, or the hub stops.
type Client struct {
	ID           string
	Transport    string
	EventChannel chan Event
}

// delivery is one queued event; an empty target means every client
type delivery struct {
	target string
	event  Event
}

// Hub is the registry of connected observers. All deliveries pass through one
// FIFO queue, so every client sees events in the order they were queued.
type Hub struct {
	clients    map[string]*Client
	deliveries chan delivery
	mu         sync.Mutex
	shutdown   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	bufferSize int
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return NewHubWithBuffer(ClientEventBuffer)
}

// NewHubWithBuffer creates a Hub whose clients buffer up to size events before being dropped
func NewHubWithBuffer(size int) *Hub {
	if size < 1 {
		size = 1
	}
	return &Hub{
		clients:    make(map[string]*Client),
		deliveries: make(chan delivery, BroadcastBufferSize),
		shutdown:   make(chan struct{}),
		bufferSize: size,
	}
}

// Start starts the hub's delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts down the delivery loop and closes every client channel
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
	})
	h.wg.Wait()

	h.mu.Lock()
	for id, client := range h.clients {
		close(client.EventChannel)
		delete(h.clients, id)
		metrics.ObserversConnected.Dec()
	}
	h.mu.Unlock()
}

// run is the main delivery loop
func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case d := <-h.deliveries:
			h.deliver(d)
		case <-h.shutdown:
			return
		}
	}
}

func (h *Hub) deliver(d delivery) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if d.target != "" {
		if client, ok := h.clients[d.target]; ok {
			h.sendLocked(client, d.event)
		}
		return
	}
	for _, client := range h.clients {
		h.sendLocked(client, d.event)
	}
}

// sendLocked never blocks. A client whose buffer is full is dropped; its
// transport sees the closed channel and ends the connection.
func (h *Hub) sendLocked(client *Client, event Event) {
	select {
	case client.EventChannel <- event:
	default:
		close(client.EventChannel)
		delete(h.clients, client.ID)
		metrics.ObserversConnected.Dec()
		metrics.ObserversDropped.Inc()
		slog.Warn(LogMsgClientDropped, "client_id", client.ID, "transport", client.Transport, "event_type", event.Type)
	}
}

// Register adds a new client to the hub. The client is visible to the next delivery.
func (h *Hub) Register(transport string) *Client {
	client := &Client{
		ID:           uuid.New().String(),
		Transport:    transport,
		EventChannel: make(chan Event, h.bufferSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.shutdown:
		// Stopped hubs hand out closed clients so late streams end at once
		close(client.EventChannel)
		return client
	default:
	}
	h.clients[client.ID] = client
	metrics.ObserversConnected.Inc()
	return client
}

// Unregister removes a client from the hub. It is safe to call concurrently
// with deliveries and more than once.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.EventChannel)
		delete(h.clients, clientID)
		metrics.ObserversConnected.Dec()
	}
}

// Broadcast queues an event for every client. It returns false when the
// delivery queue is full or the hub is stopped.
func (h *Hub) Broadcast(eventType, id string, payload interface{}) bool {
	return h.enqueue(delivery{event: newEvent(eventType, id, payload)})
}

// SendTo queues an event for one client, in order with broadcasts
func (h *Hub) SendTo(clientID, eventType, id string, payload interface{}) bool {
	return h.enqueue(delivery{target: clientID, event: newEvent(eventType, id, payload)})
}

func (h *Hub) enqueue(d delivery) bool {
	select {
	case <-h.shutdown:
		return false
	default:
	}
	select {
	case h.deliveries <- d:
		return true
	default:
		slog.Warn(LogMsgDeliveryQueueFull, "event_type", d.event.Type)
		return false
	}
}

func newEvent(eventType, id string, payload interface{}) Event {
	if id == "" {
		id = uuid.New().String()
	}
	return Event{
		ID:        id,
		Type:      eventType,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// FormatSSEMessage formats an SSE event for transmission
func FormatSSEMessage(event Event) ([]byte, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	// SSE format: "id: <id>\nevent: <type>\ndata: <json>\n\n"
	msg := "id: " + event.ID + "\n"
	msg += "event: " + event.Type + "\n"
	msg += "data: " + string(data) + "\n\n"

	return []byte(msg), nil
}
