package gateway

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/courtside/courtcast/internal/metrics"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"
)

// wsPair upgrades one connection on a throwaway server and returns the
// server side of it.
func wsPair(t *testing.T) *websocket.Conn {
	t.Helper()

	upgrader := websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}
	serverConns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err == nil {
			serverConns <- conn
		}
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil {
		resp.Body.Close()
	}
	t.Cleanup(func() { client.Close() })

	conn := <-serverConns
	t.Cleanup(func() { conn.Close() })
	return conn
}

// A client can disconnect between the broadcast's registry snapshot and the
// push to its send channel. The push must observe the closed client and skip
// it rather than send on the closed channel and take the process down.
func TestBroadcastSurvivesClientChurn(t *testing.T) {
	h := newHub(&metrics.MockMetrics{})

	steady := h.register(wsPair(t))
	t.Cleanup(func() { h.unregister(steady) })
	go func() {
		for range steady.send {
		}
	}()

	churnConn := wsPair(t)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 500; i++ {
			c := h.register(churnConn)
			h.unregister(c)
		}
	}()

	for {
		select {
		case <-done:
			return
		default:
			h.broadcast(Message{Event: "scoreboards:response"})
		}
	}
}

func TestUnregisterTwiceIsIdempotent(t *testing.T) {
	h := newHub(&metrics.MockMetrics{})

	c := h.register(wsPair(t))
	h.unregister(c)
	h.unregister(c)

	// A push after unregister is a no-op, not a panic.
	c.push([]byte(`{}`))
}
