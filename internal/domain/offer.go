package domain

// Provenance identifies which adapter produced a data record, so downstream
// rendering can disclose the data origin.
type Provenance string

// Known provenance values.
const (
	ProvenancePrimary   Provenance = "primary_api"
	ProvenanceSecondary Provenance = "secondary_api"
	ProvenanceSynthetic Provenance = "synthetic"
)

// FlightOffer is the canonical flight record every adapter normalizes into.
// All three sources (primary API, secondary aggregator, synthetic generator)
// produce this exact shape.
type FlightOffer struct {
	// ID is a unique identifier for this offer (generated internally)
	ID string `json:"id"`

	// Airline is the operating carrier's display name
	Airline string `json:"airline"`

	// FlightNumber is the carrier's flight number, when known
	FlightNumber string `json:"flightNumber,omitempty"`

	// Price contains the normalized price for the whole party
	Price PriceInfo `json:"price"`

	// DepartureTime is a best-effort formatted departure time.
	// The raw upstream string is kept when it cannot be reformatted.
	DepartureTime string `json:"departureTime"`

	// ArrivalTime is a best-effort formatted arrival time
	ArrivalTime string `json:"arrivalTime"`

	// Duration contains the total journey duration
	Duration DurationInfo `json:"duration"`

	// Stops is the number of stops (0 = direct)
	Stops int `json:"stops"`

	// Aircraft is the equipment type, when known
	Aircraft string `json:"aircraft,omitempty"`

	// BookingURL is a booking-engine deep link for this route
	BookingURL string `json:"bookingUrl"`

	// Provenance records which adapter produced this offer
	Provenance Provenance `json:"provenance"`
}

// PriceInfo contains normalized pricing information.
type PriceInfo struct {
	// Amount is the numeric price value. Zero with an unparseable Formatted
	// string means the amount is unknown; price sorting pushes it last.
	Amount float64 `json:"amount"`

	// Currency is the ISO 4217 currency code, or the free-form prefix the
	// upstream supplied
	Currency string `json:"currency"`

	// Formatted is the upstream's own price string (e.g., "ZAR 1500", "$850")
	Formatted string `json:"formatted,omitempty"`
}

// DurationInfo contains journey duration information.
type DurationInfo struct {
	// TotalMinutes is the duration in minutes. Zero means unknown when
	// Formatted carries a raw upstream string.
	TotalMinutes int `json:"totalMinutes"`

	// Formatted is a human-readable duration string (e.g., "4h 30m")
	Formatted string `json:"formatted"`
}

// FlightResult is the orchestrator's answer to a route request.
type FlightResult struct {
	// Offers is never empty for a valid request; the synthetic generator
	// guarantees a terminal result
	Offers []FlightOffer `json:"offers"`

	// Provenance is the source that produced Offers
	Provenance Provenance `json:"provenance"`

	// CacheHit indicates the offers came from the short-lived result cache
	CacheHit bool `json:"cacheHit"`

	// SearchTimeMs is the total search duration in milliseconds
	SearchTimeMs int64 `json:"searchTimeMs"`
}
