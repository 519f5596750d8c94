package places

import (
	"fmt"
	"strings"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

// Synthetic sets are templated from the location label so they read naturally
// for any destination, and carry ProvenanceSynthetic so consumers can
// disclose that the data is not live.

// restaurantNamesByCuisine seeds the synthetic restaurant names per cuisine.
var restaurantNamesByCuisine = map[string][]string{
	"african":    {"Shisa Nyama", "Braai House", "African Kitchen"},
	"italian":    {"Mama Mia", "Bella Vista", "La Piazza"},
	"asian":      {"Dragon Palace", "Sakura Sushi", "Thai Garden"},
	"steakhouse": {"The Grill House", "Prime Cuts", "Meat & Fire"},
	"":           {"Local Favorite", "City Bistro", "Corner Cafe"},
}

// budgetProfiles map a budget tier to display price text and a base rating.
var budgetProfiles = map[string]struct {
	priceText  string
	baseRating float64
}{
	domain.BudgetEconomy:  {priceText: "$ (Inexpensive)", baseRating: 4.0},
	domain.BudgetStandard: {priceText: "$$ (Moderate)", baseRating: 4.2},
	domain.BudgetLuxury:   {priceText: "$$$ (Expensive)", baseRating: 4.5},
	"":                    {priceText: "$$ (Moderate)", baseRating: 4.1},
}

func syntheticRestaurants(location string, opts domain.RestaurantOptions) []domain.PlaceRecommendation {
	names, ok := restaurantNamesByCuisine[strings.ToLower(opts.CuisineType)]
	if !ok {
		names = restaurantNamesByCuisine[""]
	}
	profile, ok := budgetProfiles[opts.Budget]
	if !ok {
		profile = budgetProfiles[""]
	}

	category := "Local"
	if opts.CuisineType != "" {
		category = opts.CuisineType
	}

	recs := make([]domain.PlaceRecommendation, 0, len(names))
	for i, name := range names {
		recs = append(recs, domain.PlaceRecommendation{
			Name:        fmt.Sprintf("%s - %s", name, location),
			Address:     fmt.Sprintf("Near %s center", location),
			Phone:       "Phone not available",
			Rating:      profile.baseRating + float64(i)*0.1,
			RatingCount: 120 + i*35,
			Hours:       "Monday: 9:00 AM - 10:00 PM; Tuesday: 9:00 AM - 10:00 PM...",
			Category:    category,
			PriceText:   profile.priceText,
			Provenance:  domain.ProvenanceSynthetic,
		})
	}
	return recs
}

func syntheticAttractions(location string) []domain.PlaceRecommendation {
	seeds := []struct {
		name     string
		category string
		rating   float64
	}{
		{name: "%s City Museum", category: "🏛️ Museum", rating: 4.4},
		{name: "%s Botanical Gardens", category: "🌳 Park", rating: 4.6},
		{name: "Old Town %s Walking Trail", category: "🎯 Tourist Attraction", rating: 4.3},
	}

	recs := make([]domain.PlaceRecommendation, 0, len(seeds))
	for i, s := range seeds {
		recs = append(recs, domain.PlaceRecommendation{
			Name:        fmt.Sprintf(s.name, location),
			Address:     fmt.Sprintf("Central %s", location),
			Phone:       "Phone not available",
			Rating:      s.rating,
			RatingCount: 200 + i*80,
			Hours:       "Monday: 9:00 AM - 5:00 PM; Tuesday: 9:00 AM - 5:00 PM...",
			Category:    s.category,
			Provenance:  domain.ProvenanceSynthetic,
		})
	}
	return recs
}

func syntheticVenues(location string) []domain.PlaceRecommendation {
	return []domain.PlaceRecommendation{
		{
			Name:        fmt.Sprintf("%s Business Center", location),
			Address:     fmt.Sprintf("Central Business District, %s", location),
			Phone:       "+27 11 123 4567",
			Website:     "https://businesscenter.example.com",
			Rating:      4.2,
			RatingCount: 156,
			Hours:       "Mon-Fri: 8:00 AM - 6:00 PM",
			Category:    "🏢 Business Center",
			Provenance:  domain.ProvenanceSynthetic,
		},
		{
			Name:        fmt.Sprintf("%s Coworking Hub", location),
			Address:     fmt.Sprintf("Downtown %s", location),
			Phone:       "+27 11 234 5678",
			Website:     "https://coworkinghub.example.com",
			Rating:      4.5,
			RatingCount: 89,
			Hours:       "Mon-Sun: 24/7 Access",
			Category:    "💼 Coworking Space",
			Provenance:  domain.ProvenanceSynthetic,
		},
	}
}
