// Package main is the entry point for the travel plan aggregation service.
//
//	@title						Travel Plan Aggregation API
//	@version					1.0.0
//	@description				A travel planning service that aggregates flights, places, local insights and live events into a complete AI-assisted travel plan.
//
//	@contact.name				API Support
//	@contact.url				https://github.com/trip-planner/travel-plan-aggregation-service/issues
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/api/v1
//
//	@schemes					http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/config"

	// Import generated docs for swagger
	_ "github.com/trip-planner/travel-plan-aggregation-service/docs"

	// Application layers
	planhttp "github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/http"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/http/middleware"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/provider/amadeus"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/provider/kiwi"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/provider/places"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/provider/serp"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/provider/synthetic"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/textgen"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/cache"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/timeutil"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Refuse to start without the core credentials. The optional keys only
	// degrade individual adapters to their fallback data.
	if missing := cfg.Credentials.MissingRequired(); len(missing) > 0 {
		fmt.Fprint(os.Stderr, config.SetupInstructions(missing))
		os.Exit(1)
	}

	// Initialize logger with config
	setupLogger(cfg)

	log.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Bool("secondary_flights", cfg.Credentials.RapidAPIKey != "").
		Bool("live_events", cfg.Credentials.SerpAPIKey != "").
		Msg("Configuration loaded")

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Configure server timeouts from config
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Setup middleware
	middleware.Setup(e, log.Logger)

	// Setup routes
	setupRoutes(e, cfg)

	// Start server with graceful shutdown
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		log.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	gracefulShutdown(e)
}

// setupLogger configures the global zerolog logger based on config.
func setupLogger(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	// Use console writer for non-JSON format
	if cfg.Logging.Format != "json" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}

	// Set log level from config
	switch cfg.Logging.Level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// setupRoutes wires the provider adapters, use cases and HTTP handlers.
func setupRoutes(e *echo.Echo, cfg *config.Config) {
	clock := timeutil.NewRealClock()

	// Flight providers, in fallback order
	amadeusClient := amadeus.NewClient(
		cfg.Credentials.AmadeusClientID,
		cfg.Credentials.AmadeusClientSecret,
		"",
		cfg.Timeouts.PrimaryFlights,
	)
	primary := amadeus.NewAdapter(amadeusClient, log.Logger)
	secondary := kiwi.NewAdapter(cfg.Credentials.RapidAPIKey, "", cfg.Timeouts.SecondaryFlights, log.Logger)
	fallback := synthetic.NewGenerator(time.Now().UnixNano())

	store := cache.New(clock)
	flightsUC := usecase.NewFlightSearchUseCase(primary, secondary, fallback, store, cfg.Cache.TTL, log.Logger)

	// Place, search and text-generation services
	placesAdapter := places.NewAdapter(
		places.NewClient(cfg.Credentials.PlacesAPIKey, "", cfg.Timeouts.Places),
		places.Limits{
			Restaurants: cfg.Limits.Restaurants,
			Attractions: cfg.Limits.Attractions,
			Venues:      cfg.Limits.Venues,
		},
		log.Logger,
	)
	serpAdapter := serp.NewAdapter(
		serp.NewClient(cfg.Credentials.SerpAPIKey, "", cfg.Timeouts.Search),
		cfg.Limits.Events,
		log.Logger,
	)
	generator := textgen.NewClient(cfg.Credentials.TextGenAPIKey, "", cfg.Timeouts.TextGen, log.Logger)

	plansUC := usecase.NewPlanUseCase(flightsUC, placesAdapter, serpAdapter, generator, cfg.Limits.CheapestFlights, log.Logger)
	sessionsUC := usecase.NewSessionUseCase(plansUC, clock, log.Logger)

	handler := planhttp.NewHandler(sessionsUC, flightsUC, plansUC, cfg.Limits.CheapestFlights)
	planhttp.RegisterRoutes(e, handler)

	// Swagger documentation endpoint
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// gracefulShutdown handles graceful server shutdown on interrupt signals.
func gracefulShutdown(e *echo.Echo) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
