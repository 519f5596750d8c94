package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/adapter/http/response"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

// mockSessions is a mock implementation of SessionUseCase for testing.
type mockSessions struct {
	createFunc       func(ctx context.Context, email string) (*domain.Session, error)
	getFunc          func(ctx context.Context, id string) (*domain.Session, error)
	resetFunc        func(ctx context.Context, id string) (*domain.Session, error)
	generatePlanFunc func(ctx context.Context, id string, req domain.PlanRequest) (*domain.TravelPlan, error)
}

func (m *mockSessions) Create(ctx context.Context, email string) (*domain.Session, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, email)
	}
	return &domain.Session{
		ID:        "sess-1",
		Email:     email,
		State:     domain.StateForm,
		CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
	}, nil
}

func (m *mockSessions) Get(ctx context.Context, id string) (*domain.Session, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
}

func (m *mockSessions) Reset(ctx context.Context, id string) (*domain.Session, error) {
	if m.resetFunc != nil {
		return m.resetFunc(ctx, id)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
}

func (m *mockSessions) GeneratePlan(ctx context.Context, id string, req domain.PlanRequest) (*domain.TravelPlan, error) {
	if m.generatePlanFunc != nil {
		return m.generatePlanFunc(ctx, id, req)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
}

// mockFlights is a mock implementation of FlightSearchUseCase for testing.
type mockFlights struct {
	searchFunc func(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error)
}

func (m *mockFlights) Search(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return &domain.FlightResult{
		Offers:       []domain.FlightOffer{},
		Provenance:   domain.ProvenanceSynthetic,
		SearchTimeMs: 12,
	}, nil
}

// mockPlans is a mock implementation of PlanUseCase for testing.
type mockPlans struct {
	generateFunc func(ctx context.Context, req domain.PlanRequest) (*domain.TravelPlan, error)
}

func (m *mockPlans) Generate(ctx context.Context, req domain.PlanRequest) (*domain.TravelPlan, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return &domain.TravelPlan{Request: req}, nil
}

// setupTestHandler creates a test Echo instance with all routes registered.
func setupTestHandler(sessions *mockSessions, flights *mockFlights, plans *mockPlans) *echo.Echo {
	if sessions == nil {
		sessions = &mockSessions{}
	}
	if flights == nil {
		flights = &mockFlights{}
	}
	if plans == nil {
		plans = &mockPlans{}
	}
	e := echo.New()
	h := NewHandler(sessions, flights, plans, 3)
	RegisterRoutes(e, h)
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var reqBody []byte
	if body != nil {
		reqBody, _ = json.Marshal(body)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func validSearchBody() map[string]interface{} {
	return map[string]interface{}{
		"origin":        "DUR",
		"destination":   "JNB",
		"departureDate": "2026-09-10",
		"returnDate":    "2026-09-14",
		"passengers":    2,
	}
}

func validPlanBody() map[string]interface{} {
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

func TestHealthEndpoint(t *testing.T) {
	e := setupTestHandler(nil, nil, nil)

	rec := makeRequest(e, http.MethodGet, "/health", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestCreateSession(t *testing.T) {
	e := setupTestHandler(nil, nil, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions", map[string]string{"email": "traveler@example.com"}, nil)

	require.Equal(t, http.StatusCreated, rec.Code)

	var dto SessionDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "sess-1", dto.ID)
	assert.Equal(t, "traveler@example.com", dto.Email)
	assert.Equal(t, "form", dto.State)
	assert.False(t, dto.HasPlan)
	assert.Equal(t, "2026-09-01T12:00:00Z", dto.CreatedAt)
}

func TestCreateSession_InvalidEmail(t *testing.T) {
	e := setupTestHandler(nil, nil, nil)

	tests := []struct {
		name  string
		email string
	}{
		{"empty", ""},
		{"no at sign", "not-an-email"},
		{"no domain", "user@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := makeRequest(e, http.MethodPost, "/api/v1/sessions", map[string]string{"email": tt.email}, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Contains(t, detail.Details, "email")
		})
	}
}

func TestGetSession_NotFound(t *testing.T) {
	e := setupTestHandler(nil, nil, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/sessions/unknown", nil, nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeNotFound, detail.Code)
}

func TestResetSession_Conflict(t *testing.T) {
	sessions := &mockSessions{
		resetFunc: func(ctx context.Context, id string) (*domain.Session, error) {
			return nil, fmt.Errorf("%w: cannot reset from form", domain.ErrInvalidTransition)
		},
	}
	e := setupTestHandler(sessions, nil, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/sess-1/reset", nil, nil)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeConflict, detail.Code)
}

func TestResetSession(t *testing.T) {
	sessions := &mockSessions{
		resetFunc: func(ctx context.Context, id string) (*domain.Session, error) {
			return &domain.Session{
				ID:        id,
				Email:     "traveler@example.com",
				State:     domain.StateForm,
				FormData:  &domain.PlanRequest{Destination: "Cape Town, South Africa"},
				CreatedAt: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC),
			}, nil
		},
	}
	e := setupTestHandler(sessions, nil, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/sessions/sess-1/reset", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto SessionDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "form", dto.State)
	require.NotNil(t, dto.FormData)
	assert.Equal(t, "Cape Town, South Africa", dto.FormData.Destination)
}

func TestGeneratePlan_WithoutSession(t *testing.T) {
	var gotReq domain.PlanRequest
	plans := &mockPlans{
		generateFunc: func(ctx context.Context, req domain.PlanRequest) (*domain.TravelPlan, error) {
			gotReq = req
			return &domain.TravelPlan{
				Request:   req,
				Itinerary: "Day 1: arrival",
			}, nil
		},
	}
	e := setupTestHandler(nil, nil, plans)

	rec := makeRequest(e, http.MethodPost, "/api/v1/plans", validPlanBody(), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Durban, South Africa", gotReq.Source)
	assert.Equal(t, 2, gotReq.Travelers)
	assert.Contains(t, rec.Body.String(), "Day 1: arrival")
}

func TestGeneratePlan_WithSessionHeader(t *testing.T) {
	var gotID string
	sessions := &mockSessions{
		generatePlanFunc: func(ctx context.Context, id string, req domain.PlanRequest) (*domain.TravelPlan, error) {
			gotID = id
			return &domain.TravelPlan{Request: req}, nil
		},
	}
	planCalled := false
	plans := &mockPlans{
		generateFunc: func(ctx context.Context, req domain.PlanRequest) (*domain.TravelPlan, error) {
			planCalled = true
			return &domain.TravelPlan{Request: req}, nil
		},
	}
	e := setupTestHandler(sessions, nil, plans)

	rec := makeRequest(e, http.MethodPost, "/api/v1/plans", validPlanBody(), map[string]string{
		HeaderSessionID: "sess-9",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-9", gotID)
	assert.False(t, planCalled, "direct plan path should not run when a session is supplied")
}

func TestGeneratePlan_SessionNotFound(t *testing.T) {
	e := setupTestHandler(nil, nil, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/plans", validPlanBody(), map[string]string{
		HeaderSessionID: "missing",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGeneratePlan_Validation(t *testing.T) {
	e := setupTestHandler(nil, nil, nil)

	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
		field  string
	}{
		{
			name:   "missing source",
			mutate: func(b map[string]interface{}) { b["source"] = "" },
			field:  "source",
		},
		{
			name:   "bad departure date",
			mutate: func(b map[string]interface{}) { b["departureDate"] = "10-09-2026" },
			field:  "departureDate",
		},
		{
			name:   "unknown theme",
			mutate: func(b map[string]interface{}) { b["theme"] = "party" },
			field:  "theme",
		},
		{
			name:   "unknown budget",
			mutate: func(b map[string]interface{}) { b["budget"] = "free" },
			field:  "budget",
		},
		{
			name:   "too many travelers",
			mutate: func(b map[string]interface{}) { b["travelers"] = 11 },
			field:  "travelers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validPlanBody()
			tt.mutate(body)

			rec := makeRequest(e, http.MethodPost, "/api/v1/plans", body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Contains(t, detail.Details, tt.field)
		})
	}
}

func TestGeneratePlan_Timeout(t *testing.T) {
	plans := &mockPlans{
		generateFunc: func(ctx context.Context, req domain.PlanRequest) (*domain.TravelPlan, error) {
			return nil, context.DeadlineExceeded
		},
	}
	e := setupTestHandler(nil, nil, plans)

	rec := makeRequest(e, http.MethodPost, "/api/v1/plans", validPlanBody(), nil)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestSearchFlights(t *testing.T) {
	flights := &mockFlights{
		searchFunc: func(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error) {
			return &domain.FlightResult{
				Offers: []domain.FlightOffer{
					{
						ID:      "offer-1",
						Airline: "FlySafair",
						Price:   domain.PriceInfo{Amount: 1530, Currency: "ZAR", Formatted: "ZAR 1530.00"},
						Duration: domain.DurationInfo{
							TotalMinutes: 85,
							Formatted:    "1h 25m",
						},
						Provenance: domain.ProvenanceSynthetic,
					},
				},
				Provenance:   domain.ProvenanceSynthetic,
				SearchTimeMs: 42,
			}, nil
		},
	}
	e := setupTestHandler(nil, flights, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", validSearchBody(), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "DUR", dto.SearchCriteria.Origin)
	assert.Equal(t, "JNB", dto.SearchCriteria.Destination)
	assert.Equal(t, 2, dto.SearchCriteria.Passengers)
	assert.Equal(t, 1, dto.Metadata.TotalResults)
	assert.Equal(t, "synthetic", dto.Metadata.Provenance)
	assert.Equal(t, int64(42), dto.Metadata.SearchTimeMs)
	require.Len(t, dto.Offers, 1)
	assert.Equal(t, "FlySafair", dto.Offers[0].Airline)
	assert.Equal(t, "1h 25m", dto.Offers[0].Duration.Display)
}

func TestSearchFlights_LowercaseCodesAccepted(t *testing.T) {
	var gotRoute domain.RouteRequest
	flights := &mockFlights{
		searchFunc: func(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error) {
			gotRoute = req
			return &domain.FlightResult{Offers: []domain.FlightOffer{}, Provenance: domain.ProvenanceSynthetic}, nil
		},
	}
	e := setupTestHandler(nil, flights, nil)

	body := validSearchBody()
	body["origin"] = "dur"
	body["destination"] = "jnb"

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", body, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DUR", gotRoute.Origin)
	assert.Equal(t, "JNB", gotRoute.Destination)
}

func TestSearchFlights_CheapestCap(t *testing.T) {
	offers := make([]domain.FlightOffer, 0, 5)
	for i := 0; i < 5; i++ {
		offers = append(offers, domain.FlightOffer{
			ID:    fmt.Sprintf("offer-%d", i),
			Price: domain.PriceInfo{Amount: float64(2000 - i*100), Currency: "ZAR"},
		})
	}
	flights := &mockFlights{
		searchFunc: func(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error) {
			return &domain.FlightResult{Offers: offers, Provenance: domain.ProvenanceSecondary}, nil
		},
	}
	e := setupTestHandler(nil, flights, nil)

	body := validSearchBody()
	body["cheapest"] = 2

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", body, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	require.Len(t, dto.Offers, 2)
	assert.Equal(t, 1600.0, dto.Offers[0].Price.Amount)
	assert.Equal(t, 1700.0, dto.Offers[1].Price.Amount)
}

func TestSearchFlights_SortsWhenFewerOffersThanCap(t *testing.T) {
	offers := []domain.FlightOffer{
		{ID: "expensive", Price: domain.PriceInfo{Amount: 900, Currency: "ZAR"}},
		{ID: "cheap", Price: domain.PriceInfo{Amount: 100, Currency: "ZAR"}},
	}
	flights := &mockFlights{
		searchFunc: func(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error) {
			return &domain.FlightResult{Offers: offers, Provenance: domain.ProvenancePrimary}, nil
		},
	}
	e := setupTestHandler(nil, flights, nil)

	body := validSearchBody()
	body["cheapest"] = 5

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", body, nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	require.Len(t, dto.Offers, 2)
	assert.Equal(t, 100.0, dto.Offers[0].Price.Amount)
	assert.Equal(t, 900.0, dto.Offers[1].Price.Amount)
}

func TestSearchFlights_DefaultCapApplied(t *testing.T) {
	offers := make([]domain.FlightOffer, 0, 6)
	for i := 0; i < 6; i++ {
		offers = append(offers, domain.FlightOffer{
			ID:    fmt.Sprintf("offer-%d", i),
			Price: domain.PriceInfo{Amount: float64(1000 + i*50), Currency: "ZAR"},
		})
	}
	flights := &mockFlights{
		searchFunc: func(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error) {
			return &domain.FlightResult{Offers: offers, Provenance: domain.ProvenanceSecondary}, nil
		},
	}
	e := setupTestHandler(nil, flights, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", validSearchBody(), nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var dto SearchResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Len(t, dto.Offers, 3)
}

func TestSearchFlights_Validation(t *testing.T) {
	e := setupTestHandler(nil, nil, nil)

	tests := []struct {
		name   string
		mutate func(body map[string]interface{})
		field  string
	}{
		{
			name:   "missing origin",
			mutate: func(b map[string]interface{}) { b["origin"] = "" },
			field:  "origin",
		},
		{
			name:   "origin too long",
			mutate: func(b map[string]interface{}) { b["origin"] = "DURB" },
			field:  "origin",
		},
		{
			name:   "numeric destination",
			mutate: func(b map[string]interface{}) { b["destination"] = "J1B" },
			field:  "destination",
		},
		{
			name:   "bad return date",
			mutate: func(b map[string]interface{}) { b["returnDate"] = "next week" },
			field:  "returnDate",
		},
		{
			name:   "bad window",
			mutate: func(b map[string]interface{}) { b["departureWindow"] = "dawn" },
			field:  "departureWindow",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validSearchBody()
			tt.mutate(body)

			rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var detail response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Contains(t, detail.Details, tt.field)
		})
	}
}

func TestSearchFlights_MalformedBody(t *testing.T) {
	e := setupTestHandler(nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/flights/search", bytes.NewBufferString("{not json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
}

func TestSearchFlights_InternalError(t *testing.T) {
	flights := &mockFlights{
		searchFunc: func(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error) {
			return nil, fmt.Errorf("boom")
		},
	}
	e := setupTestHandler(nil, flights, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/flights/search", validSearchBody(), nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
