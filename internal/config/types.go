package config

// Config holds all configuration for the application.
type Config struct {
	Port           string
	APIKey         string
	DataDir        string
	AllowedOrigins []string
}
