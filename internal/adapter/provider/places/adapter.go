package places

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

const (
	restaurantRadius = 10000
	attractionRadius = 15000
	venueRadius      = 15000

	resultsPerSubSearch = 2
)

// Limits caps the number of recommendations returned per category.
type Limits struct {
	Restaurants int
	Attractions int
	Venues      int
}

// DefaultLimits mirrors the configuration defaults.
func DefaultLimits() Limits {
	return Limits{Restaurants: 3, Attractions: 3, Venues: 4}
}

// attractionTypes are the nearby-search type sub-searches an attraction query
// fans out over.
var attractionTypes = []string{"tourist_attraction", "museum", "amusement_park", "zoo", "aquarium"}

// venueSearches pair a nearby-search keyword with the category tag attached
// to results it yields.
var venueSearches = []struct {
	keyword  string
	category string
}{
	{keyword: "coworking space shared office", category: "💼 Coworking Space"},
	{keyword: "conference center meeting room", category: "🏢 Conference Center"},
	{keyword: "business center office space", category: "🏢 Business Center"},
	{keyword: "hotel business center meeting", category: "🏨 Hotel Business Center"},
}

// Adapter implements domain.PlaceService.
type Adapter struct {
	client *Client
	limits Limits
	log    zerolog.Logger
}

// NewAdapter wires a Client into the service interface. Non-positive limit
// fields fall back to the defaults.
func NewAdapter(client *Client, limits Limits, log zerolog.Logger) *Adapter {
	defaults := DefaultLimits()
	if limits.Restaurants <= 0 {
		limits.Restaurants = defaults.Restaurants
	}
	if limits.Attractions <= 0 {
		limits.Attractions = defaults.Attractions
	}
	if limits.Venues <= 0 {
		limits.Venues = defaults.Venues
	}
	return &Adapter{
		client: client,
		limits: limits,
		log:    log.With().Str("adapter", "places").Logger(),
	}
}

// Restaurants implements domain.PlaceService. It returns up to the configured
// number of detailed recommendations near the location; a missing key, geocode
// miss, or search error yields the synthetic set instead.
func (a *Adapter) Restaurants(ctx context.Context, location string, opts domain.RestaurantOptions) ([]domain.PlaceRecommendation, error) {
	if !a.client.Configured() {
		a.log.Debug().Msg("api key absent, serving synthetic restaurants")
		return syntheticRestaurants(location, opts), nil
	}

	coords, err := a.client.Geocode(ctx, location)
	if err != nil {
		a.log.Warn().Err(err).Str("location", location).Msg("geocode failed, serving synthetic restaurants")
		return syntheticRestaurants(location, opts), nil
	}

	keyword := "restaurant"
	if opts.CuisineType != "" {
		keyword += " " + opts.CuisineType
	}
	if opts.BusinessFriendly {
		keyword += " business lunch meeting wifi private dining"
	}

	results, err := a.client.Nearby(ctx, coords, nearbyQuery{
		placeType: "restaurant",
		keyword:   keyword,
		radius:    restaurantRadius,
		minPrice:  priceLevel(opts.Budget),
	})
	if err != nil {
		a.log.Warn().Err(err).Msg("nearby search failed, serving synthetic restaurants")
		return syntheticRestaurants(location, opts), nil
	}

	if len(results) > a.limits.Restaurants {
		results = results[:a.limits.Restaurants]
	}

	recs := make([]domain.PlaceRecommendation, 0, len(results))
	for _, r := range results {
		rec, ok := a.detail(ctx, r.PlaceID, "")
		if !ok {
			continue
		}
		recs = append(recs, rec)
	}
	if len(recs) == 0 {
		return syntheticRestaurants(location, opts), nil
	}

	a.log.Info().Int("count", len(recs)).Msg("restaurants retrieved")
	return recs, nil
}

// Attractions implements domain.PlaceService. Five type sub-searches, two
// results each, deduplicated by place id and ranked by rating.
func (a *Adapter) Attractions(ctx context.Context, location, activityPrefs string) ([]domain.PlaceRecommendation, error) {
	if !a.client.Configured() {
		a.log.Debug().Msg("api key absent, serving synthetic attractions")
		return syntheticAttractions(location), nil
	}

	coords, err := a.client.Geocode(ctx, location)
	if err != nil {
		a.log.Warn().Err(err).Str("location", location).Msg("geocode failed, serving synthetic attractions")
		return syntheticAttractions(location), nil
	}

	seen := map[string]domain.PlaceRecommendation{}
	for _, attractionType := range attractionTypes {
		keyword := strings.ReplaceAll(attractionType, "_", " ")
		if activityPrefs != "" {
			keyword += " " + activityPrefs
		}

		results, err := a.client.Nearby(ctx, coords, nearbyQuery{
			placeType: attractionType,
			keyword:   keyword,
			radius:    attractionRadius,
		})
		if err != nil {
			a.log.Debug().Err(err).Str("type", attractionType).Msg("sub-search failed")
			continue
		}

		if len(results) > resultsPerSubSearch {
			results = results[:resultsPerSubSearch]
		}
		for _, r := range results {
			if _, dup := seen[r.PlaceID]; dup {
				continue
			}
			rec, ok := a.detail(ctx, r.PlaceID, attractionCategory(r.Types))
			if !ok {
				continue
			}
			seen[r.PlaceID] = rec
		}
	}

	if len(seen) == 0 {
		return syntheticAttractions(location), nil
	}

	recs := rankByRating(seen, a.limits.Attractions)
	a.log.Info().Int("count", len(recs)).Msg("attractions retrieved")
	return recs, nil
}

// BusinessVenues implements domain.PlaceService. Four keyword searches, two
// results each, deduplicated and ranked.
func (a *Adapter) BusinessVenues(ctx context.Context, location string) ([]domain.PlaceRecommendation, error) {
	if !a.client.Configured() {
		a.log.Debug().Msg("api key absent, serving synthetic venues")
		return syntheticVenues(location), nil
	}

	coords, err := a.client.Geocode(ctx, location)
	if err != nil {
		a.log.Warn().Err(err).Str("location", location).Msg("geocode failed, serving synthetic venues")
		return syntheticVenues(location), nil
	}

	seen := map[string]domain.PlaceRecommendation{}
	for _, search := range venueSearches {
		results, err := a.client.Nearby(ctx, coords, nearbyQuery{
			keyword: search.keyword,
			radius:  venueRadius,
		})
		if err != nil {
			a.log.Debug().Err(err).Str("keyword", search.keyword).Msg("sub-search failed")
			continue
		}

		if len(results) > resultsPerSubSearch {
			results = results[:resultsPerSubSearch]
		}
		for _, r := range results {
			if _, dup := seen[r.PlaceID]; dup {
				continue
			}
			rec, ok := a.detail(ctx, r.PlaceID, search.category)
			if !ok {
				continue
			}
			seen[r.PlaceID] = rec
		}
	}

	if len(seen) == 0 {
		return syntheticVenues(location), nil
	}

	recs := rankByRating(seen, a.limits.Venues)
	a.log.Info().Int("count", len(recs)).Msg("business venues retrieved")
	return recs, nil
}

// detail fetches and converts one place detail record.
func (a *Adapter) detail(ctx context.Context, placeID, category string) (domain.PlaceRecommendation, bool) {
	d, err := a.client.Details(ctx, placeID)
	if err != nil {
		a.log.Debug().Err(err).Str("place_id", placeID).Msg("details fetch failed")
		return domain.PlaceRecommendation{}, false
	}

	rating := domain.RatingUnavailable
	if d.Rating > 0 {
		rating = d.Rating
	}

	return domain.PlaceRecommendation{
		Name:        orDefault(d.Name, "Unknown"),
		Address:     orDefault(d.FormattedAddress, "Address not available"),
		Phone:       orDefault(d.PhoneNumber, "Phone not available"),
		Website:     orDefault(d.Website, d.URL),
		Rating:      rating,
		RatingCount: d.UserRatingsTotal,
		Hours:       formatHours(d.OpeningHours.WeekdayText),
		Category:    category,
		PriceText:   priceText(d.PriceLevel),
		MapURL:      d.URL,
		PlaceID:     placeID,
		Provenance:  domain.ProvenancePrimary,
	}, true
}

// formatHours joins the first two weekday lines, with an ellipsis when more
// exist.
func formatHours(weekdayText []string) string {
	if len(weekdayText) == 0 {
		return "Hours not available"
	}
	if len(weekdayText) <= 2 {
		return strings.Join(weekdayText, "; ")
	}
	return strings.Join(weekdayText[:2], "; ") + "..."
}

// priceLevel maps a budget tier to the API's minimum price level.
func priceLevel(budget string) int {
	switch budget {
	case domain.BudgetEconomy:
		return 1
	case domain.BudgetStandard:
		return 2
	case domain.BudgetLuxury:
		return 3
	default:
		return 1
	}
}

// priceText renders a price level as the display string API consumers expect.
func priceText(level *int) string {
	if level == nil {
		return "Price not available"
	}
	switch *level {
	case 1:
		return "$ (Inexpensive)"
	case 2:
		return "$$ (Moderate)"
	case 3:
		return "$$$ (Expensive)"
	case 4:
		return "$$$$ (Very Expensive)"
	default:
		return "Price not available"
	}
}

// attractionCategory derives a display category from place types.
func attractionCategory(types []string) string {
	categories := []struct {
		placeType string
		label     string
	}{
		{placeType: "museum", label: "🏛️ Museum"},
		{placeType: "amusement_park", label: "🎢 Amusement Park"},
		{placeType: "zoo", label: "🦁 Zoo"},
		{placeType: "aquarium", label: "🐠 Aquarium"},
		{placeType: "park", label: "🌳 Park"},
		{placeType: "tourist_attraction", label: "🎯 Tourist Attraction"},
	}
	for _, c := range categories {
		for _, t := range types {
			if t == c.placeType {
				return c.label
			}
		}
	}
	return "📍 Point of Interest"
}

// rankByRating sorts deduplicated results by rating descending (unavailable
// ranks as zero) and truncates to limit.
func rankByRating(seen map[string]domain.PlaceRecommendation, limit int) []domain.PlaceRecommendation {
	recs := make([]domain.PlaceRecommendation, 0, len(seen))
	for _, rec := range seen {
		recs = append(recs, rec)
	}
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].RatingOrZero() > recs[j].RatingOrZero()
	})
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
