package http

import (
	"net/http"

	"github.com/courtside/courtcast/internal/auth"
	"github.com/courtside/courtcast/internal/config"
	"github.com/courtside/courtcast/internal/metrics"
	"github.com/courtside/courtcast/internal/scoreboard"
	"github.com/courtside/courtcast/internal/tennis"
)

type Server struct {
	Scoreboards    scoreboard.Store
	Matches        tennis.Store
	Guard          *auth.Guard
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Realtime       http.Handler
	Cfg            config.Config
	Router         *http.ServeMux
}
