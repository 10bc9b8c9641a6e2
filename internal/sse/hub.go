package sse

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/PackSim_Go/internal/logger"
	"github.com/osse101/PackSim_Go/internal/metrics"
)

// Event is one message on the stream.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is a single stream subscriber. EventChannel is closed when the client
// is unregistered or the hub stops.
type Client struct {
	ID           string
	EventChannel chan Event
	EventFilter  map[string]bool // nil: every type

	dropped atomic.Int64
}

func (c *Client) wants(eventType string) bool {
	return c.EventFilter == nil || c.EventFilter[eventType]
}

// Dropped counts events this client missed because its buffer was full.
func (c *Client) Dropped() int64 { return c.dropped.Load() }

// Hub fans events out to clients from a single goroutine. Neither a full hub
// queue nor a slow client ever blocks the publisher; both drop and count.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client

	queue    chan Event
	done     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	now      func() time.Time
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]*Client),
		queue:   make(chan Event, BroadcastBufferSize),
		done:    make(chan struct{}),
		now:     time.Now,
	}
}

// Start launches the fan-out loop.
func (h *Hub) Start() {
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		for {
			select {
			case evt := <-h.queue:
				h.fanOut(evt)
			case <-h.done:
				return
			}
		}
	}()
}

// Stop ends the loop and disconnects every client. Idempotent.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.done)
		h.wg.Wait()

		h.mu.Lock()
		defer h.mu.Unlock()
		for id, c := range h.clients {
			h.removeLocked(id, c)
		}
	})
}

func (h *Hub) fanOut(evt Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if !c.wants(evt.Type) {
			continue
		}
		select {
		case c.EventChannel <- evt:
		default:
			c.dropped.Add(1)
			metrics.SSEEventsDropped.WithLabelValues(metrics.DropReasonClientSlow).Inc()
		}
	}
}

// Register adds a client filtered to eventTypes; blank entries are ignored
// and an empty filter means every type. Returns nil after Stop.
func (h *Hub) Register(eventTypes []string) *Client {
	c := &Client{
		ID:           uuid.NewString(),
		EventChannel: make(chan Event, ClientEventBuffer),
	}
	for _, t := range eventTypes {
		if t = strings.TrimSpace(t); t != "" {
			if c.EventFilter == nil {
				c.EventFilter = make(map[string]bool, len(eventTypes))
			}
			c.EventFilter[t] = true
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	select {
	case <-h.done:
		return nil
	default:
	}
	h.clients[c.ID] = c
	metrics.SSEClients.Inc()
	return c
}

// Unregister disconnects clientID. Unknown ids are ignored.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		h.removeLocked(clientID, c)
	}
}

func (h *Hub) removeLocked(id string, c *Client) {
	close(c.EventChannel)
	delete(h.clients, id)
	metrics.SSEClients.Dec()
}

// Broadcast stamps and queues an event for interested clients.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	evt := Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: h.now().Unix(),
		Payload:   payload,
	}

	select {
	case h.queue <- evt:
	default:
		metrics.SSEEventsDropped.WithLabelValues(metrics.DropReasonHubFull).Inc()
		logger.FromContext(context.Background()).Warn(LogMsgEventDropped, "event_type", eventType)
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// FormatSSEMessage renders evt in text/event-stream framing.
func FormatSSEMessage(evt Event) ([]byte, error) {
	data, err := json.Marshal(evt)
	if err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.Grow(len(data) + len(evt.ID) + len(evt.Type) + 24)
	if evt.ID != "" {
		b.WriteString("id: ")
		b.WriteString(evt.ID)
		b.WriteByte('\n')
	}
	b.WriteString("event: ")
	b.WriteString(evt.Type)
	b.WriteString("\ndata: ")
	b.Write(data)
	b.WriteString("\n\n")
	return b.Bytes(), nil
}
