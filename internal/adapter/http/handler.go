package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/http/response"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/usecase"
)

// HeaderSessionID carries the session identifier for FSM-gated plan generation.
const HeaderSessionID = "X-Session-ID"

// Handler handles HTTP requests for the travel plan endpoints.
type Handler struct {
	sessions  usecase.SessionUseCase
	flights   usecase.FlightSearchUseCase
	plans     usecase.PlanUseCase
	cheapestN int
}

// NewHandler creates a new Handler with the given use cases. cheapestN caps
// the flight search response when the request does not ask for a limit.
func NewHandler(sessions usecase.SessionUseCase, flights usecase.FlightSearchUseCase, plans usecase.PlanUseCase, cheapestN int) *Handler {
	return &Handler{
		sessions:  sessions,
		flights:   flights,
		plans:     plans,
		cheapestN: cheapestN,
	}
}

// CreateSession handles POST /api/v1/sessions
//
// @Summary Create a planning session
// @Description Sign up with an email and open a new planning session
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Signup details"
// @Success 201 {object} SessionDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/sessions [post]
func (h *Handler) CreateSession(c echo.Context) error {
	var req CreateSessionRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	sess, err := h.sessions.Create(c.Request().Context(), req.Email)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Created(c, ToSessionDTO(sess))
}

// GetSession handles GET /api/v1/sessions/:id
//
// @Summary Get a planning session
// @Description Fetch the current state of a planning session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Router /api/v1/sessions/{id} [get]
func (h *Handler) GetSession(c echo.Context) error {
	sess, err := h.sessions.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSessionDTO(sess))
}

// ResetSession handles POST /api/v1/sessions/:id/reset
//
// @Summary Reset a planning session
// @Description Discard the displayed plan and return the session to the form state
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} SessionDTO
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 409 {object} response.ErrorDetail "Session holds no plan"
// @Router /api/v1/sessions/{id}/reset [post]
func (h *Handler) ResetSession(c echo.Context) error {
	sess, err := h.sessions.Reset(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToSessionDTO(sess))
}

// GeneratePlan handles POST /api/v1/plans
//
// @Summary Generate a travel plan
// @Description Run the full aggregation pipeline and return a complete travel plan. With an X-Session-ID header the plan is attached to the session and served from it on repeat calls.
// @Tags plans
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session ID"
// @Param request body GeneratePlanRequest true "Trip details"
// @Success 200 {object} domain.TravelPlan
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 404 {object} response.ErrorDetail "Session not found"
// @Failure 409 {object} response.ErrorDetail "Session not accepting a plan"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/plans [post]
func (h *Handler) GeneratePlan(c echo.Context) error {
	var req GeneratePlanRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	planReq := ToPlanRequest(&req)
	ctx := c.Request().Context()

	var (
		plan *domain.TravelPlan
		err  error
	)
	if sessionID := c.Request().Header.Get(HeaderSessionID); sessionID != "" {
		plan, err = h.sessions.GeneratePlan(ctx, sessionID, planReq)
	} else {
		plan, err = h.plans.Generate(ctx, planReq)
	}
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, plan)
}

// SearchFlights handles POST /api/v1/flights/search
//
// @Summary Search for flights
// @Description Search for flights through the layered provider chain
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search criteria"
// @Success 200 {object} SearchResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/flights/search [post]
func (h *Handler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	route := ToRouteRequest(&req)

	result, err := h.flights.Search(c.Request().Context(), route)
	if err != nil {
		return h.handleError(c, err)
	}

	n := req.Cheapest
	if n <= 0 {
		n = h.cheapestN
	}
	if n > 0 {
		result.Offers = usecase.Cheapest(result.Offers, n)
	}

	return response.OK(c, ToSearchResponseDTO(route, result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrSessionNotFound) {
		return response.NotFound(c, err.Error())
	}

	if errors.Is(err, domain.ErrInvalidTransition) {
		return response.Conflict(c, err.Error())
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}

	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	return response.InternalServerError(c)
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}
