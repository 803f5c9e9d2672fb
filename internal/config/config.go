package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Admin API the CLI talks to
	API APIConfig

	// Logging Configuration
	Logging LoggingConfig

	// Contract stub backend
	Stub StubConfig
}

// APIConfig holds admin API client configuration
type APIConfig struct {
	URL string // empty means "not set by the environment"
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string // empty means "use the binary's default"
	Format string // json, console
}

// StubConfig holds stub backend configuration
type StubConfig struct {
	Addr          string
	AdminEmail    string
	AdminPassword string
	JWTSecret     string
	AllowOrigins  []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env files (fails silently if files don't exist)
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	return &Config{
		API: APIConfig{
			URL: os.Getenv("PLAYERA_API_URL"),
		},
		Logging: LoggingConfig{
			Level:  os.Getenv("LOG_LEVEL"),
			Format: getenv("LOG_FORMAT", "console"),
		},
		Stub: StubConfig{
			Addr:          getenv("STUB_ADDR", ":8080"),
			AdminEmail:    getenv("STUB_ADMIN_EMAIL", "admin@playera.lk"),
			AdminPassword: getenv("STUB_ADMIN_PASSWORD", "admin123"),
			JWTSecret:     getenv("STUB_JWT_SECRET", "playera-stub-secret"),
			AllowOrigins:  []string{"http://localhost:3000", "http://localhost:5173"},
		},
	}, nil
}

// LevelOr returns the configured log level, or def when none is set
func (l LoggingConfig) LevelOr(def string) string {
	if l.Level == "" {
		return def
	}
	return l.Level
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
