package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// Service holds the registered Prometheus collectors.
type Service struct {
	ConnectionsActive  prometheus.Gauge
	MessagesHandled    prometheus.Counter
	BroadcastsSent     prometheus.Counter
	BroadcastsDropped  prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ConnectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtcast_ws_connections_active",
			Help: "The number of currently connected websocket clients.",
		}),
		MessagesHandled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtcast_ws_messages_handled_total",
			Help: "The total number of inbound websocket messages dispatched.",
		}),
		BroadcastsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtcast_broadcasts_sent_total",
			Help: "The total number of events broadcast to websocket clients.",
		}),
		BroadcastsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "courtcast_broadcasts_dropped_total",
			Help: "The total number of broadcast sends dropped due to slow consumers.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "courtcast_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ConnectionsActive,
		s.MessagesHandled,
		s.BroadcastsSent,
		s.BroadcastsDropped,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncConnection() {
	s.ConnectionsActive.Inc()
}

func (s *Service) DecConnection() {
	s.ConnectionsActive.Dec()
}

func (s *Service) IncMessageHandled() {
	s.MessagesHandled.Inc()
}

func (s *Service) IncBroadcast() {
	s.BroadcastsSent.Inc()
}

func (s *Service) IncBroadcastDropped() {
	s.BroadcastsDropped.Inc()
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
