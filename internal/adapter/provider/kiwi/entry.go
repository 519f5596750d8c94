package kiwi

import (
	"fmt"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/normalize"
)

// normalizeEntry converts one itinerary map into a domain offer. The upstream
// returns either route-style entries (a route array with per-leg times and a
// duration in seconds) or flat entries (top-level times and a duration
// string). Entries that carry neither shape are skipped.
func normalizeEntry(entry map[string]any, index int) (domain.FlightOffer, bool) {
	priceInfo := domain.PriceInfo{Formatted: "Price unavailable"}
	if price, err := normalize.ParsePrice(priceField(entry)); err == nil {
		currency := price.Currency
		if currency == "" {
			currency = "ZAR"
		}
		priceInfo = domain.PriceInfo{
			Amount:    price.Amount,
			Currency:  currency,
			Formatted: fmt.Sprintf("%s %.2f", currency, price.Amount),
		}
	}

	offer := domain.FlightOffer{
		ID:    fmt.Sprintf("kiwi-%d", index+1),
		Price: priceInfo,
	}

	if route, ok := entry["route"].([]any); ok && len(route) > 0 {
		return normalizeRouteStyle(offer, entry, route)
	}
	return normalizeFlatStyle(offer, entry)
}

// priceField finds the price under the keys the upstream has used.
func priceField(entry map[string]any) any {
	for _, key := range []string{"price", "fare", "total_price"} {
		if v, ok := entry[key]; ok {
			return v
		}
	}
	return nil
}

func normalizeRouteStyle(offer domain.FlightOffer, entry map[string]any, route []any) (domain.FlightOffer, bool) {
	first, ok := route[0].(map[string]any)
	if !ok {
		return domain.FlightOffer{}, false
	}
	last, ok := route[len(route)-1].(map[string]any)
	if !ok {
		return domain.FlightOffer{}, false
	}

	offer.DepartureTime = stringField(first, "local_departure", "utc_departure")
	offer.ArrivalTime = stringField(last, "local_arrival", "utc_arrival")
	offer.Airline = stringField(first, "airline", "operating_carrier")
	offer.FlightNumber = stringField(first, "flight_no", "operating_flight_no")
	offer.Stops = len(route) - 1

	if dur, ok := entry["duration"].(map[string]any); ok {
		if total, ok := dur["total"].(float64); ok {
			minutes := int(total) / 60
			offer.Duration = domain.DurationInfo{
				TotalMinutes: minutes,
				Formatted:    normalize.FormatMinutes(minutes),
			}
		}
	}
	return offer, true
}

func normalizeFlatStyle(offer domain.FlightOffer, entry map[string]any) (domain.FlightOffer, bool) {
	offer.DepartureTime = stringField(entry, "departure_time", "departure")
	offer.ArrivalTime = stringField(entry, "arrival_time", "arrival")
	offer.Airline = stringField(entry, "airline", "carrier")

	if offer.DepartureTime == "" && offer.Airline == "" {
		return domain.FlightOffer{}, false
	}

	if raw, ok := entry["duration"].(string); ok {
		minutes := normalize.ParseDuration(raw)
		formatted := raw
		if minutes > 0 {
			formatted = normalize.FormatMinutes(minutes)
		}
		offer.Duration = domain.DurationInfo{TotalMinutes: minutes, Formatted: formatted}
	}
	if stops, ok := entry["stops"].(float64); ok {
		offer.Stops = int(stops)
	}
	return offer, true
}

// stringField returns the first non-empty string among the given keys.
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := m[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
