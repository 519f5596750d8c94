// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server      ServerConfig
	Timeouts    TimeoutConfig
	Cache       CacheConfig
	Limits      LimitConfig
	Credentials CredentialConfig
	Logging     LoggingConfig
	App         AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"120s"`
}

// TimeoutConfig holds per-upstream HTTP timeouts. Each outbound call carries
// a short fixed timeout; on expiry the call is treated like any other adapter
// failure and falls through.
type TimeoutConfig struct {
	PrimaryFlights   time.Duration `env:"TIMEOUT_PRIMARY_FLIGHTS" envDefault:"10s"`
	SecondaryFlights time.Duration `env:"TIMEOUT_SECONDARY_FLIGHTS" envDefault:"15s"`
	Places           time.Duration `env:"TIMEOUT_PLACES" envDefault:"5s"`
	Search           time.Duration `env:"TIMEOUT_SEARCH" envDefault:"5s"`
	TextGen          time.Duration `env:"TIMEOUT_TEXTGEN" envDefault:"60s"`
}

// CacheConfig holds the adapter result cache settings.
type CacheConfig struct {
	// TTL is how long a cached adapter result stays fresh.
	TTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`
}

// LimitConfig holds fixed result-count caps per category.
type LimitConfig struct {
	CheapestFlights int `env:"LIMIT_CHEAPEST_FLIGHTS" envDefault:"3"`
	Restaurants     int `env:"LIMIT_RESTAURANTS" envDefault:"3"`
	Attractions     int `env:"LIMIT_ATTRACTIONS" envDefault:"3"`
	Venues          int `env:"LIMIT_VENUES" envDefault:"4"`
	Events          int `env:"LIMIT_EVENTS" envDefault:"12"`
}

// CredentialConfig holds API credentials for the upstream services.
// A missing required credential halts startup; a missing optional credential
// routes that adapter through its synthetic-fallback path instead.
type CredentialConfig struct {
	// AmadeusClientID and AmadeusClientSecret authenticate the primary
	// flight-offer search service (required).
	AmadeusClientID     string `env:"AMADEUS_CLIENT_ID"`
	AmadeusClientSecret string `env:"AMADEUS_CLIENT_SECRET"`

	// PlacesAPIKey authenticates geocoding and place lookups (required).
	PlacesAPIKey string `env:"PLACES_API_KEY"`

	// TextGenAPIKey authenticates the text-generation service (required).
	TextGenAPIKey string `env:"TEXTGEN_API_KEY"`

	// RapidAPIKey authenticates the secondary price-comparison flight
	// service (optional).
	RapidAPIKey string `env:"RAPIDAPI_KEY"`

	// SerpAPIKey authenticates the web-search service for local info and
	// live events (optional).
	SerpAPIKey string `env:"SERPAPI_KEY"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// MissingRequired returns the names of required credentials that are absent.
// An empty result means the core pipeline can run against real services.
func (c *CredentialConfig) MissingRequired() []string {
	required := []struct {
		name  string
		value string
	}{
		{"AMADEUS_CLIENT_ID", c.AmadeusClientID},
		{"AMADEUS_CLIENT_SECRET", c.AmadeusClientSecret},
		{"PLACES_API_KEY", c.PlacesAPIKey},
		{"TEXTGEN_API_KEY", c.TextGenAPIKey},
	}

	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.name)
		}
	}
	return missing
}

// HasAmadeus reports whether the primary flight adapter has credentials.
func (c *CredentialConfig) HasAmadeus() bool {
	return c.AmadeusClientID != "" && c.AmadeusClientSecret != ""
}

// HasPlaces reports whether the place-lookup adapter has credentials.
// A commented-out key (leading '#') counts as absent.
func (c *CredentialConfig) HasPlaces() bool {
	return c.PlacesAPIKey != "" && !strings.HasPrefix(c.PlacesAPIKey, "#")
}

// SetupInstructions renders the missing-credential help text shown when the
// application refuses to start.
func SetupInstructions(missing []string) string {
	var b strings.Builder
	b.WriteString("Missing required API keys:\n")
	for _, key := range missing {
		b.WriteString("  - " + key + "\n")
	}
	b.WriteString("\nCreate a .env file in the working directory (or export the\n")
	b.WriteString("variables) with the keys above. Optional keys RAPIDAPI_KEY and\n")
	b.WriteString("SERPAPI_KEY enable the secondary flight source and live-event\n")
	b.WriteString("search; without them those adapters use fallback data.\n")
	return b.String()
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	timeouts := map[string]time.Duration{
		"TIMEOUT_PRIMARY_FLIGHTS":   cfg.Timeouts.PrimaryFlights,
		"TIMEOUT_SECONDARY_FLIGHTS": cfg.Timeouts.SecondaryFlights,
		"TIMEOUT_PLACES":            cfg.Timeouts.Places,
		"TIMEOUT_SEARCH":            cfg.Timeouts.Search,
		"TIMEOUT_TEXTGEN":           cfg.Timeouts.TextGen,
	}
	for name, d := range timeouts {
		if d <= 0 {
			return fmt.Errorf("%s must be positive", name)
		}
	}

	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	limits := map[string]int{
		"LIMIT_CHEAPEST_FLIGHTS": cfg.Limits.CheapestFlights,
		"LIMIT_RESTAURANTS":      cfg.Limits.Restaurants,
		"LIMIT_ATTRACTIONS":      cfg.Limits.Attractions,
		"LIMIT_VENUES":           cfg.Limits.Venues,
		"LIMIT_EVENTS":           cfg.Limits.Events,
	}
	for name, n := range limits {
		if n < 1 {
			return fmt.Errorf("%s must be at least 1", name)
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
