package http

import (
	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

// SearchResponseDTO is the data transfer object for flight search responses.
// It matches the expected API output format with snake_case fields.
type SearchResponseDTO struct {
	SearchCriteria SearchCriteriaDTO `json:"search_criteria"`
	Metadata       MetadataDTO       `json:"metadata"`
	Offers         []FlightOfferDTO  `json:"offers"`
}

// SearchCriteriaDTO echoes the search criteria in the response.
type SearchCriteriaDTO struct {
	Origin          string `json:"origin"`
	Destination     string `json:"destination"`
	DepartureDate   string `json:"departure_date"`
	ReturnDate      string `json:"return_date"`
	Passengers      int    `json:"passengers"`
	DepartureWindow string `json:"departure_window,omitempty"`
	ReturnWindow    string `json:"return_window,omitempty"`
}

// MetadataDTO contains metadata about the search execution.
type MetadataDTO struct {
	TotalResults int    `json:"total_results"`
	Provenance   string `json:"provenance"`
	CacheHit     bool   `json:"cache_hit"`
	SearchTimeMs int64  `json:"search_time_ms"`
}

// FlightOfferDTO is the data transfer object for one flight offer.
type FlightOfferDTO struct {
	ID            string      `json:"id"`
	Airline       string      `json:"airline"`
	FlightNumber  string      `json:"flight_number,omitempty"`
	Price         PriceDTO    `json:"price"`
	DepartureTime string      `json:"departure_time"`
	ArrivalTime   string      `json:"arrival_time"`
	Duration      DurationDTO `json:"duration"`
	Stops         int         `json:"stops"`
	Aircraft      string      `json:"aircraft,omitempty"`
	BookingURL    string      `json:"booking_url,omitempty"`
	Provenance    string      `json:"provenance"`
}

// PriceDTO contains pricing information.
type PriceDTO struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted,omitempty"`
}

// DurationDTO contains duration information.
type DurationDTO struct {
	TotalMinutes int    `json:"total_minutes"`
	Display      string `json:"display"`
}

// SessionDTO is the public view of a session. The generated plan is served
// separately and never embedded here.
type SessionDTO struct {
	ID        string              `json:"id"`
	Email     string              `json:"email"`
	State     string              `json:"state"`
	HasPlan   bool                `json:"has_plan"`
	FormData  *domain.PlanRequest `json:"form_data,omitempty"`
	CreatedAt string              `json:"created_at"`
}
