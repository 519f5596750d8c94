package domain

// Travel themes supported by the planner.
const (
	ThemeBusiness  = "business"
	ThemeCouple    = "couple"
	ThemeFamily    = "family"
	ThemeAdventure = "adventure"
	ThemeSolo      = "solo"
)

// validThemes defines the allowed travel themes.
var validThemes = map[string]bool{
	ThemeBusiness:  true,
	ThemeCouple:    true,
	ThemeFamily:    true,
	ThemeAdventure: true,
	ThemeSolo:      true,
}

// IsValidTheme reports whether theme is a supported travel theme.
func IsValidTheme(theme string) bool {
	return validThemes[theme]
}

// Budget tiers supported by the planner.
const (
	BudgetEconomy  = "economy"
	BudgetStandard = "standard"
	BudgetLuxury   = "luxury"
)

// validBudgets defines the allowed budget tiers.
var validBudgets = map[string]bool{
	BudgetEconomy:  true,
	BudgetStandard: true,
	BudgetLuxury:   true,
}

// IsValidBudget reports whether budget is a supported tier.
func IsValidBudget(budget string) bool {
	return validBudgets[budget]
}

// PlanRequest describes one user-initiated "generate plan" action.
type PlanRequest struct {
	// Source is the departure as a "City, Country" label or an IATA code
	Source string `json:"source"`

	// Destination is the destination as a "City, Country" label or an IATA code
	Destination string `json:"destination"`

	// DepartureDate is the outbound date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the inbound date in YYYY-MM-DD format
	ReturnDate string `json:"returnDate"`

	// Travelers is the party size (1-10)
	Travelers int `json:"travelers"`

	// Theme is the travel theme (business, couple, family, adventure, solo)
	Theme string `json:"theme"`

	// Budget is the budget tier (economy, standard, luxury)
	Budget string `json:"budget"`

	// Activities are free-text activity preferences
	Activities string `json:"activities,omitempty"`

	// CuisineType is an optional cuisine preference for restaurant lookup
	CuisineType string `json:"cuisineType,omitempty"`

	// DepartureWindow is the preferred outbound time of day
	DepartureWindow TimeWindow `json:"departureWindow,omitempty"`

	// ReturnWindow is the preferred inbound time of day
	ReturnWindow TimeWindow `json:"returnWindow,omitempty"`
}

// PlanMetadata records how a plan was assembled.
type PlanMetadata struct {
	// OriginCode and DestinationCode are the resolved IATA codes
	OriginCode      string `json:"origin_code"`
	DestinationCode string `json:"destination_code"`

	// TripDays is the trip length in days (minimum 1)
	TripDays int `json:"trip_days"`

	// FlightProvenance is the source of the flight offers
	FlightProvenance Provenance `json:"flight_provenance"`

	// FlightCacheHit indicates the flight offers came from the result cache
	FlightCacheHit bool `json:"flight_cache_hit"`

	// ItinerarySource is "generated" or "fallback"
	ItinerarySource string `json:"itinerary_source"`

	// BuildTimeMs is the total pipeline duration in milliseconds
	BuildTimeMs int64 `json:"build_time_ms"`
}

// TravelPlan is the aggregate result handed to the rendering layer.
// It is pure data with no presentation concerns; every record carries
// provenance so rendering can disclose data origin.
type TravelPlan struct {
	// Request echoes the originating request
	Request PlanRequest `json:"request"`

	// Metadata describes how the plan was assembled
	Metadata PlanMetadata `json:"metadata"`

	// Flights is the normalized flight list, cheapest first, never empty
	Flights []FlightOffer `json:"flights"`

	// Restaurants, Attractions, and Venues are recommendation lists.
	// Venues is populated for the business theme only.
	Restaurants []PlaceRecommendation `json:"restaurants"`
	Attractions []PlaceRecommendation `json:"attractions"`
	Venues      []PlaceRecommendation `json:"venues,omitempty"`

	// LocalInfo holds destination research summaries
	LocalInfo []LocalInfo `json:"localInfo"`

	// Events are live events during the travel dates
	Events []Event `json:"events"`

	// ResearchNotes is the destination-insights text from the generator
	ResearchNotes string `json:"researchNotes"`

	// Itinerary is the synthesized day-by-day itinerary text
	Itinerary string `json:"itinerary"`
}

// RouteRequest derives the flight search request for this plan,
// given the resolved IATA codes.
func (p *PlanRequest) RouteRequest(originCode, destinationCode string) RouteRequest {
	req := RouteRequest{
		Origin:          originCode,
		Destination:     destinationCode,
		DepartureDate:   p.DepartureDate,
		ReturnDate:      p.ReturnDate,
		Passengers:      p.Travelers,
		DepartureWindow: p.DepartureWindow,
		ReturnWindow:    p.ReturnWindow,
	}
	req.SetDefaults()
	return req
}
