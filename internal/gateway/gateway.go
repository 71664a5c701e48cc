// Package gateway is the real-time hub bridging store mutations to every
// connected websocket client. Inbound request envelopes are dispatched to
// the stores and answered on the requesting connection; the resulting
// domain events reach all clients through a single bus subscription, the
// same path mutations made over HTTP take.
package gateway

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtcast/internal/auth"
	"github.com/courtside/courtcast/internal/events"
	"github.com/courtside/courtcast/internal/metrics"
	"github.com/courtside/courtcast/internal/scoreboard"
	"github.com/courtside/courtcast/internal/tennis"
	"github.com/gorilla/websocket"
)

// Gateway upgrades websocket connections and speaks the envelope protocol.
type Gateway struct {
	hub         *hub
	scoreboards scoreboard.Store
	matches     tennis.Store
	guard       *auth.Guard
	metrics     metrics.Metrics
	upgrader    websocket.Upgrader
}

// New wires a Gateway to the stores and subscribes it to the change bus so
// every successful mutation, whichever transport it entered through, is
// broadcast to all connected clients.
func New(
	scoreboards scoreboard.Store,
	matches tennis.Store,
	guard *auth.Guard,
	m metrics.Metrics,
	bus *events.Bus,
	checkOrigin func(r *http.Request) bool,
) *Gateway {
	g := &Gateway{
		hub:         newHub(m),
		scoreboards: scoreboards,
		matches:     matches,
		guard:       guard,
		metrics:     m,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}

	bus.Subscribe(func(e events.Event) {
		g.hub.broadcast(Message{
			Event:     string(e.Type),
			Data:      e.Payload,
			Timestamp: time.Now(),
		})
	})

	return g
}

// ServeHTTP upgrades the request and starts the connection's pumps.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade websocket connection", "error", err)
		return
	}

	c := g.hub.register(conn)
	go c.writePump()
	go c.readPump(g.dispatch)
}

// dispatch handles one inbound envelope. Every operation re-checks the
// shared secret; a store failure inside a handler becomes an error response
// to the requester only, with no broadcast.
func (g *Gateway) dispatch(c *client, raw []byte) {
	g.metrics.IncMessageHandled()

	var req Request
	if err := json.Unmarshal(raw, &req); err != nil {
		log.Warn("Discarding malformed envelope", "clientID", c.id, "error", err)
		return
	}

	switch req.Event {
	case EventGetScoreboards, EventCreateScoreboard, EventDeleteScoreboard,
		EventGetTennisMatch, EventUpdateTennisMatch:
	default:
		log.Debug("Ignoring unknown event", "event", req.Event, "clientID", c.id)
		return
	}

	if err := g.guard.Authorize(req.APIKey); err != nil {
		g.fail(c, req.RequestID, CodeUnauthorized, "Unauthorized", err)
		return
	}

	switch req.Event {
	case EventGetScoreboards:
		g.handleGetScoreboards(c, req)
	case EventCreateScoreboard:
		g.handleCreateScoreboard(c, req)
	case EventDeleteScoreboard:
		g.handleDeleteScoreboard(c, req)
	case EventGetTennisMatch:
		g.handleGetTennisMatch(c, req)
	case EventUpdateTennisMatch:
		g.handleUpdateTennisMatch(c, req)
	}
}

func (g *Gateway) handleGetScoreboards(c *client, req Request) {
	g.respond(c, EventScoreboardsResponse, req.RequestID, g.scoreboards.FindAll())
}

func (g *Gateway) handleCreateScoreboard(c *client, req Request) {
	var data CreateScoreboardData
	if err := json.Unmarshal(req.Data, &data); err != nil {
		g.fail(c, req.RequestID, CodeCreateScoreboardFailed, "Failed to create scoreboard", err)
		return
	}
	if data.Name == "" {
		g.fail(c, req.RequestID, CodeCreateScoreboardFailed, "Failed to create scoreboard",
			fmt.Errorf("name is required"))
		return
	}

	sb, err := g.scoreboards.Create(data.Name)
	if err != nil {
		g.fail(c, req.RequestID, CodeCreateScoreboardFailed, "Failed to create scoreboard", err)
		return
	}
	// The scoreboard:created broadcast follows via the change bus.
	g.respond(c, EventScoreboardsResponse, req.RequestID, sb)
}

func (g *Gateway) handleDeleteScoreboard(c *client, req Request) {
	var data DeleteScoreboardData
	if err := json.Unmarshal(req.Data, &data); err != nil {
		g.fail(c, req.RequestID, CodeDeleteScoreboardFailed, "Failed to delete scoreboard", err)
		return
	}

	// The scoreboard:deleted broadcast fires whether or not a record was
	// found; the store publishes it unconditionally.
	found := g.scoreboards.Delete(data.ID)
	message := "Scoreboard not found"
	if found {
		message = "Scoreboard deleted successfully"
	}
	g.respond(c, EventScoreboardsResponse, req.RequestID, map[string]any{
		"success": found,
		"message": message,
	})
}

func (g *Gateway) handleGetTennisMatch(c *client, req Request) {
	var data GetTennisMatchData
	if err := json.Unmarshal(req.Data, &data); err != nil {
		g.fail(c, req.RequestID, CodeGetTennisMatchFailed, "Failed to fetch tennis match", err)
		return
	}

	// No match is an explicit data null, not an omitted key.
	var payload any = json.RawMessage("null")
	if match, found := g.matches.FindByScoreboard(data.ScoreboardID); found {
		payload = match
	}
	g.respond(c, EventTennisMatchResponse, req.RequestID, payload)
}

// handleUpdateTennisMatch requires an existing match for the scoreboard.
// Unlike the HTTP upsert, a missing match is an error and nothing is
// created; the two surfaces intentionally disagree here.
func (g *Gateway) handleUpdateTennisMatch(c *client, req Request) {
	var data UpdateTennisMatchData
	if err := json.Unmarshal(req.Data, &data); err != nil {
		g.fail(c, req.RequestID, CodeUpdateTennisMatchFailed, "Failed to update tennis match", err)
		return
	}

	existing, found := g.matches.FindByScoreboard(data.ScoreboardID)
	if !found {
		g.fail(c, req.RequestID, CodeUpdateTennisMatchFailed, "Failed to update tennis match",
			fmt.Errorf("no tennis match found for this scoreboard"))
		return
	}

	merged := data.MatchData.mergeOver(existing, data.ScoreboardID)
	updated, ok := g.matches.Update(existing.ID, merged)
	if !ok {
		g.fail(c, req.RequestID, CodeUpdateTennisMatchFailed, "Failed to update tennis match",
			fmt.Errorf("match %s disappeared during update", existing.ID))
		return
	}
	// The tennis:match:updated broadcast follows via the change bus.
	g.respond(c, EventTennisMatchResponse, req.RequestID, updated)
}

func (g *Gateway) respond(c *client, event EventName, requestID string, data any) {
	success := true
	c.sendMessage(Message{
		Event:     string(event),
		Data:      data,
		Timestamp: time.Now(),
		RequestID: requestID,
		Success:   &success,
	})
}

// fail addresses an error envelope to the requesting connection alone.
func (g *Gateway) fail(c *client, requestID, code, message string, cause error) {
	log.Warn("Request failed", "clientID", c.id, "code", code, "error", cause)
	success := false
	details := ""
	if cause != nil {
		details = cause.Error()
	}
	c.sendMessage(Message{
		Event:     string(EventErrorResponse),
		Timestamp: time.Now(),
		RequestID: requestID,
		Success:   &success,
		Error: &WireError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}
