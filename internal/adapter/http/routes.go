package http

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers all travel plan API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	// Health check endpoint (no version prefix)
	e.GET("/health", h.Health)

	// API v1 group
	api := e.Group("/api/v1")

	// Sessions group
	sessions := api.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.GET("/:id", h.GetSession)
	sessions.POST("/:id/reset", h.ResetSession)

	// Plans
	api.POST("/plans", h.GeneratePlan)

	// Flights group
	flights := api.Group("/flights")
	flights.POST("/search", h.SearchFlights)
}
