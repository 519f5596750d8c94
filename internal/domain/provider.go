package domain

import "context"

// FlightProvider is a single flight data source. Adapters fail closed: an
// empty slice (with or without an error) means "no usable data, try the next
// source". The orchestrator treats the two uniformly.
type FlightProvider interface {
	// Name returns the unique provider identifier, used as the cache key prefix.
	Name() string

	// Provenance returns the tag stamped on offers from this provider.
	Provenance() Provenance

	// Search returns normalized offers for the route. Transport and upstream
	// application errors are converted to an empty result.
	Search(ctx context.Context, req RouteRequest) ([]FlightOffer, error)
}

// PlaceService looks up restaurant, attraction, and business-venue
// recommendations for a destination label. Implementations substitute a
// deterministic synthetic set of the same shape when the real lookup is
// unavailable at any stage.
type PlaceService interface {
	Restaurants(ctx context.Context, location string, opts RestaurantOptions) ([]PlaceRecommendation, error)
	Attractions(ctx context.Context, location, activityPrefs string) ([]PlaceRecommendation, error)
	BusinessVenues(ctx context.Context, location string) ([]PlaceRecommendation, error)
}

// RestaurantOptions refine a restaurant lookup.
type RestaurantOptions struct {
	// CuisineType narrows the search keyword (e.g., "italian")
	CuisineType string

	// Budget is a budget tier (economy, standard, luxury) mapped to an
	// upstream price level
	Budget string

	// BusinessFriendly appends business-lunch keywords to the search
	BusinessFriendly bool
}

// SearchService answers free-form web queries for local information and
// live-event listings. Failures yield empty lists, never plan failure.
type SearchService interface {
	LocalInfo(ctx context.Context, location string) ([]LocalInfo, error)
	LiveEvents(ctx context.Context, location, departureDate, returnDate string) ([]Event, error)
}

// TextGenerator is the opaque text-generation service. The core only supplies
// a composed prompt and consumes the returned text verbatim.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
