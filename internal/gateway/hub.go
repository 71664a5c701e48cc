package gateway

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtcast/internal/metrics"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	writeTimeout   = 10 * time.Second
	pongTimeout    = 60 * time.Second
	pingInterval   = 30 * time.Second
	maxMessageSize = 64 * 1024
	sendBufferSize = 256
)

// hub tracks every connected client and fans outbound messages out to all of
// them. Broadcasts are fire-and-forget: a client whose send buffer is full
// is dropped rather than applying backpressure to the caller.
type hub struct {
	mu      sync.RWMutex
	clients map[*client]bool
	metrics metrics.Metrics
}

// client is one websocket connection. All writes go through the buffered
// send channel so the write pump is the only goroutine touching the socket.
// closed is guarded by hub.mu; send is closed exactly once, by unregister,
// while holding it.
type client struct {
	id     string
	conn   *websocket.Conn
	send   chan []byte
	hub    *hub
	closed bool
}

func newHub(m metrics.Metrics) *hub {
	return &hub{
		clients: make(map[*client]bool),
		metrics: m,
	}
}

func (h *hub) register(conn *websocket.Conn) *client {
	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBufferSize),
		hub:  h,
	}

	h.mu.Lock()
	h.clients[c] = true
	h.mu.Unlock()

	h.metrics.IncConnection()
	log.Info("Client connected", "clientID", c.id, "remote", conn.RemoteAddr())
	return c
}

func (h *hub) unregister(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; !ok {
		h.mu.Unlock()
		return
	}
	delete(h.clients, c)
	c.closed = true
	close(c.send)
	h.mu.Unlock()

	h.metrics.DecConnection()
	log.Info("Client disconnected", "clientID", c.id)
}

// broadcast sends msg to every connected client, the original requester
// included. The envelope is marshalled once.
func (h *hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("Failed to marshal broadcast", "event", msg.Event, "error", err)
		return
	}

	h.mu.RLock()
	targets := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		c.push(data)
	}
	h.metrics.IncBroadcast()
	log.Debug("Broadcast sent", "event", msg.Event, "clients", len(targets))
}

// push queues data for the client, dropping the connection if its buffer is
// full. The send happens under the hub's read lock so it can never race the
// close in unregister, which requires the write lock: a client that
// disconnects mid-broadcast is skipped instead of panicking the process.
func (c *client) push(data []byte) {
	c.hub.mu.RLock()
	if c.closed {
		c.hub.mu.RUnlock()
		return
	}
	var full bool
	select {
	case c.send <- data:
	default:
		full = true
	}
	c.hub.mu.RUnlock()

	if full {
		log.Warn("Client send buffer full, dropping connection", "clientID", c.id)
		c.hub.metrics.IncBroadcastDropped()
		c.hub.unregister(c)
		c.conn.Close()
	}
}

// sendMessage addresses one envelope to this client only.
func (c *client) sendMessage(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Error("Failed to marshal message", "event", msg.Event, "error", err)
		return
	}
	c.push(data)
}

// writePump drains the send channel onto the socket and keeps the
// connection alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
		c.hub.unregister(c)
	}()

	for {
		select {
		case data, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug("Write failed", "clientID", c.id, "error", err)
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump reads inbound envelopes and hands them to dispatch until the
// connection drops. A request in flight when that happens is simply
// abandoned; there is no compensating action.
func (c *client) readPump(dispatch func(*client, []byte)) {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Warn("Unexpected close", "clientID", c.id, "error", err)
			}
			return
		}
		dispatch(c, data)
		c.conn.SetReadDeadline(time.Now().Add(pongTimeout))
	}
}
