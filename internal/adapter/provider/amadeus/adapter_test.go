package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/logger"
)

const tokenResponse = `{"access_token":"test-token","expires_in":1799}`

const offersResponse = `{
	"data": [
		{
			"id": "1",
			"price": {"total": "1450.00", "currency": "ZAR"},
			"itineraries": [
				{
					"duration": "PT1H15M",
					"segments": [
						{
							"departure": {"iataCode": "DUR", "at": "2026-09-10T08:00:00"},
							"arrival": {"iataCode": "JNB", "at": "2026-09-10T09:15:00"},
							"carrierCode": "FA",
							"number": "101",
							"aircraft": {"code": "738"}
						}
					]
				}
			]
		},
		{
			"id": "2",
			"price": {"total": "not-a-price", "currency": "ZAR"},
			"itineraries": []
		},
		{
			"id": "3",
			"price": {"total": "2100.00", "currency": "ZAR"},
			"itineraries": [
				{
					"duration": "PT4H30M",
					"segments": [
						{
							"departure": {"iataCode": "DUR", "at": "2026-09-10T06:30:00"},
							"arrival": {"iataCode": "CPT", "at": "2026-09-10T08:45:00"},
							"carrierCode": "SA",
							"number": "502",
							"aircraft": {"code": "320"}
						},
						{
							"departure": {"iataCode": "CPT", "at": "2026-09-10T09:45:00"},
							"arrival": {"iataCode": "JNB", "at": "2026-09-10T11:00:00"},
							"carrierCode": "SA",
							"number": "503",
							"aircraft": {"code": "320"}
						}
					]
				}
			]
		}
	]
}`

func newTestServer(t *testing.T, offersBody string, offersStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/security/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(tokenResponse))
	})
	mux.HandleFunc("/v2/shopping/flight-offers", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(offersStatus)
		_, _ = w.Write([]byte(offersBody))
	})
	return httptest.NewServer(mux)
}

func validRequest() domain.RouteRequest {
	return domain.RouteRequest{
		Origin:        "DUR",
		Destination:   "JNB",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-14",
		Passengers:    1,
	}
}

func TestAdapter_Search(t *testing.T) {
	srv := newTestServer(t, offersResponse, http.StatusOK)
	defer srv.Close()

	client := NewClient("id", "secret", srv.URL, 5*time.Second)
	adapter := NewAdapter(client, logger.Nop())

	offers, err := adapter.Search(context.Background(), validRequest())
	require.NoError(t, err)
	require.Len(t, offers, 2, "record with no itineraries must be skipped")

	first := offers[0]
	assert.Equal(t, "FA101", first.FlightNumber)
	assert.Equal(t, 1450.0, first.Price.Amount)
	assert.Equal(t, "ZAR", first.Price.Currency)
	assert.Equal(t, 75, first.Duration.TotalMinutes)
	assert.Equal(t, "1h 15m", first.Duration.Formatted)
	assert.Equal(t, 0, first.Stops)
	assert.Equal(t, domain.ProvenancePrimary, first.Provenance)

	second := offers[1]
	assert.Equal(t, 270, second.Duration.TotalMinutes)
	assert.Equal(t, 1, second.Stops)
	assert.Equal(t, "2026-09-10T11:00:00", second.ArrivalTime)
}

func TestAdapter_Search_InvalidAirportCode(t *testing.T) {
	client := NewClient("id", "secret", "http://unreachable.invalid", time.Second)
	adapter := NewAdapter(client, logger.Nop())

	tests := []struct {
		name        string
		origin      string
		destination string
	}{
		{name: "lowercase origin", origin: "dur", destination: "JNB"},
		{name: "too short", origin: "DU", destination: "JNB"},
		{name: "numeric destination", origin: "DUR", destination: "J1B"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			req.Origin = tt.origin
			req.Destination = tt.destination

			offers, err := adapter.Search(context.Background(), req)
			require.NoError(t, err)
			assert.Empty(t, offers)
		})
	}
}

func TestAdapter_Search_NotConfigured(t *testing.T) {
	client := NewClient("", "", "http://unreachable.invalid", time.Second)
	adapter := NewAdapter(client, logger.Nop())

	offers, err := adapter.Search(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestAdapter_Search_UpstreamError(t *testing.T) {
	srv := newTestServer(t, `{"errors":[{"detail":"boom"}]}`, http.StatusInternalServerError)
	defer srv.Close()

	client := NewClient("id", "secret", srv.URL, 5*time.Second)
	adapter := NewAdapter(client, logger.Nop())

	offers, err := adapter.Search(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, offers)
}
