package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/courtside/courtcast/internal/auth"
	"github.com/courtside/courtcast/internal/config"
	"github.com/courtside/courtcast/internal/events"
	"github.com/courtside/courtcast/internal/gateway"
	server "github.com/courtside/courtcast/internal/http"
	"github.com/courtside/courtcast/internal/metrics"
	"github.com/courtside/courtcast/internal/scoreboard"
	"github.com/courtside/courtcast/internal/storage"
	"github.com/courtside/courtcast/internal/tennis"
	"github.com/rs/cors"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	bus := events.NewBus()
	scoreboards := scoreboard.New(storage.NewJSONFile(filepath.Join(cfg.DataDir, "scoreboards-data.json")), bus)
	matches := tennis.New(storage.NewJSONFile(filepath.Join(cfg.DataDir, "tennis-matches-data.json")), bus)
	if err := scoreboards.Load(); err != nil {
		log.Fatalf("Failed to load scoreboards: %s", err)
	}
	if err := matches.Load(); err != nil {
		log.Fatalf("Failed to load matches: %s", err)
	}

	guard := auth.New(cfg.APIKey)
	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()

	allowed := map[string]bool{}
	for _, origin := range cfg.AllowedOrigins {
		allowed[origin] = true
	}
	gw := gateway.New(scoreboards, matches, guard, metricsSvc, bus, func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		return origin == "" || allowed[origin]
	})

	s := server.NewServer(scoreboards, matches, guard, metricsSvc, metricsHandler, gw, cfg)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-API-Key"},
		AllowCredentials: true,
	}).Handler(s)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: corsHandler,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
