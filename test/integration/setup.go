// Package integration provides helpers and integration tests for the travel
// plan aggregation service. Integration tests verify that components work
// together correctly, including HTTP handlers, use cases, the result cache
// and the provider fallback chain.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/http"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/provider/synthetic"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/cache"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/timeutil"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/usecase"
	"github.com/trip-planner/travel-plan-aggregation-service/test/mock"
)

// Stack holds the configurable test doubles behind a fully wired server.
type Stack struct {
	Primary   *mock.FlightProvider
	Secondary *mock.FlightProvider
	Places    *mock.PlaceService
	Search    *mock.SearchService
	Generator *mock.TextGenerator
	Clock     *timeutil.MockClock
	Cache     *cache.Store
}

// TestServer wraps an Echo instance and provides helper methods for
// integration testing.
type TestServer struct {
	Echo  *echo.Echo
	Stack *Stack
}

// NewTestServer wires real use cases over configurable mocks. The flight
// fallback chain ends in the real synthetic generator so searches never
// come back empty.
func NewTestServer() *TestServer {
	clock := timeutil.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	store := cache.New(clock)
	log := logger.Nop()

	stack := &Stack{
		Primary:   mock.NewFlightProvider("primary", domain.ProvenancePrimary),
		Secondary: mock.NewFlightProvider("secondary", domain.ProvenanceSecondary),
		Places:    &mock.PlaceService{},
		Search:    &mock.SearchService{},
		Generator: &mock.TextGenerator{Text: "Generated itinerary text."},
		Clock:     clock,
		Cache:     store,
	}

	flightsUC := usecase.NewFlightSearchUseCase(
		stack.Primary,
		stack.Secondary,
		synthetic.NewGenerator(1),
		store,
		cache.DefaultTTL,
		log,
	)
	plansUC := usecase.NewPlanUseCase(flightsUC, stack.Places, stack.Search, stack.Generator, 3, log)
	sessionsUC := usecase.NewSessionUseCase(plansUC, clock, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewHandler(sessionsUC, flightsUC, plansUC, 3)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:  e,
		Stack: stack,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method  string
	Path    string
	Body    interface{}
	Headers map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Decode unmarshals the response body into out.
func (r Response) Decode(out interface{}) error {
	return json.Unmarshal(r.Body, out)
}

// searchBody returns a valid flight search request body.
func searchBody() map[string]interface{} {
	return map[string]interface{}{
		"origin":        "DUR",
		"destination":   "JNB",
		"departureDate": "2026-09-10",
		"returnDate":    "2026-09-14",
		"passengers":    2,
	}
}

// planBody returns a valid plan generation request body.
func planBody() map[string]interface{} {
	return map[string]interface{}{
		"source":        "Durban, South Africa",
		"destination":   "Cape Town, South Africa",
		"departureDate": "2026-09-10",
		"returnDate":    "2026-09-14",
		"travelers":     2,
		"theme":         "couple",
		"budget":        "standard",
	}
}
