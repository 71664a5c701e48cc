package http

import (
	"net/http"

	"github.com/courtside/courtcast/internal/auth"
	"github.com/courtside/courtcast/internal/config"
	"github.com/courtside/courtcast/internal/http/handlers"
	"github.com/courtside/courtcast/internal/metrics"
	"github.com/courtside/courtcast/internal/scoreboard"
	"github.com/courtside/courtcast/internal/tennis"
)

func NewServer(
	scoreboards scoreboard.Store,
	matches tennis.Store,
	guard *auth.Guard,
	metricsSvc metrics.Metrics,
	metricsHandler http.Handler,
	realtime http.Handler,
	cfg config.Config,
) *Server {
	server := &Server{
		Scoreboards:    scoreboards,
		Matches:        matches,
		Guard:          guard,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Realtime:       realtime,
		Cfg:            cfg,
		Router:         http.NewServeMux(),
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// The websocket handshake is not guarded; the gateway checks the key on
	// every guarded message instead.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/ws", s.Realtime)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), loggingMiddleware))

	// Every API route runs the shared-secret check before its handler.
	guarded := func(h http.Handler) http.Handler {
		return Chain(h, loggingMiddleware, s.Guard.Middleware)
	}

	s.Router.Handle("GET /scoreboards", guarded(handlers.ListScoreboardsHandler(s.Scoreboards)))
	s.Router.Handle("POST /scoreboards", guarded(handlers.CreateScoreboardHandler(s.Scoreboards)))
	s.Router.Handle("PUT /scoreboards", guarded(handlers.ReplaceScoreboardsHandler(s.Scoreboards)))
	s.Router.Handle("GET /scoreboards/{id}", guarded(handlers.GetScoreboardHandler(s.Scoreboards)))
	s.Router.Handle("DELETE /scoreboards/{id}", guarded(handlers.DeleteScoreboardHandler(s.Scoreboards)))
	s.Router.Handle("GET /scoreboards/{id}/tennis", guarded(handlers.GetScoreboardMatchHandler(s.Scoreboards, s.Matches)))
	s.Router.Handle("POST /scoreboards/{id}/tennis", guarded(handlers.UpsertScoreboardMatchHandler(s.Scoreboards, s.Matches)))

	s.Router.Handle("GET /tennis", guarded(handlers.ListMatchesHandler(s.Matches)))
	s.Router.Handle("GET /tennis/current", guarded(handlers.CurrentMatchHandler(s.Matches)))
	s.Router.Handle("GET /tennis/{id}", guarded(handlers.GetMatchHandler(s.Matches)))
	s.Router.Handle("POST /tennis", guarded(handlers.CreateMatchHandler(s.Matches)))
	s.Router.Handle("PUT /tennis/{id}", guarded(handlers.UpdateMatchHandler(s.Matches)))
	s.Router.Handle("DELETE /tennis/{id}", guarded(handlers.DeleteMatchHandler(s.Matches)))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
