package config

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from environment variables and .env file.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get an env var with a fallback for local development.
	getEnv := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		return fallback
	}

	cfg := Config{
		Port:    getEnv("PORT", "3000"),
		APIKey:  getEnv("API_KEY", "dev-api-key-12345"),
		DataDir: getEnv("DATA_DIR", "./data"),
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS",
			"http://localhost:1420,http://localhost:3000,tauri://localhost")),
	}
	if cfg.APIKey == "dev-api-key-12345" {
		log.Warn("Using default development API key, set API_KEY in production")
	}
	return cfg
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
