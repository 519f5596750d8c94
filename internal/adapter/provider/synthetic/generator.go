// Package synthetic generates plausible flight offers when no live provider
// can answer. It is the terminal layer of the search chain and is the reason
// a flight search never comes back empty.
package synthetic

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/normalize"
)

const providerName = "synthetic"

// domesticCarriers fly the South African domestic routes the generator knows
// schedules for.
var domesticCarriers = []carrier{
	{name: "FlySafair", code: "FA"},
	{name: "Kulula", code: "MN"},
	{name: "South African Airways", code: "SA"},
	{name: "Lift", code: "GE"},
	{name: "Airlink", code: "4Z"},
}

var internationalCarriers = []carrier{
	{name: "Emirates", code: "EK"},
	{name: "Qatar Airways", code: "QR"},
	{name: "Turkish Airlines", code: "TK"},
}

type carrier struct {
	name string
	code string
}

// routeBasePrices holds the ZAR base fare per domestic route pair. Keys are
// ordered origin-destination; lookups try both directions.
var routeBasePrices = map[string]float64{
	"DUR-JNB": 85,
	"JNB-CPT": 95,
	"DUR-CPT": 120,
}

// domesticSchedules are the fixed departure/arrival time tables per carrier
// slot. Domestic hops are short, so every offer is direct.
var domesticSchedules = []struct {
	depart string
	arrive string
}{
	{depart: "06:30", arrive: "07:45"},
	{depart: "09:15", arrive: "10:30"},
	{depart: "12:00", arrive: "13:15"},
	{depart: "15:45", arrive: "17:00"},
	{depart: "18:30", arrive: "19:45"},
}

// windowDepartures gives representative international departure hours per
// requested time window.
var windowDepartures = map[domain.TimeWindow][]int{
	domain.WindowMorning:   {7, 9, 11},
	domain.WindowAfternoon: {13, 15, 17},
	domain.WindowEvening:   {19, 21, 23},
	domain.WindowLateNight: {1, 3, 5},
	domain.WindowAny:       {8, 14, 20},
}

// Generator produces deterministic offers for a given seed.
type Generator struct {
	seed int64
}

// NewGenerator creates a Generator. The same seed and request always produce
// identical offers, which keeps cached and repeated searches stable.
func NewGenerator(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Name implements domain.FlightProvider.
func (g *Generator) Name() string { return providerName }

// Provenance implements domain.FlightProvider.
func (g *Generator) Provenance() domain.Provenance { return domain.ProvenanceSynthetic }

// Search implements domain.FlightProvider. It never fails and never returns
// an empty slice.
func (g *Generator) Search(_ context.Context, req domain.RouteRequest) ([]domain.FlightOffer, error) {
	if basePrice, ok := domesticBase(req.Origin, req.Destination); ok {
		return g.domestic(req, basePrice), nil
	}
	return g.international(req), nil
}

func domesticBase(origin, destination string) (float64, bool) {
	if p, ok := routeBasePrices[origin+"-"+destination]; ok {
		return p, true
	}
	p, ok := routeBasePrices[destination+"-"+origin]
	return p, ok
}

func (g *Generator) domestic(req domain.RouteRequest, basePrice float64) []domain.FlightOffer {
	rng := rand.New(rand.NewSource(g.seed + routeSeed(req)))

	offers := make([]domain.FlightOffer, 0, len(domesticCarriers))
	for i, c := range domesticCarriers {
		schedule := domesticSchedules[i%len(domesticSchedules)]
		price := (basePrice + float64(i*15)) * 18 // rough USD to ZAR scale
		price += float64(rng.Intn(40))

		minutes := 75
		offers = append(offers, domain.FlightOffer{
			ID:           fmt.Sprintf("syn-dom-%d", i+1),
			Airline:      c.name,
			FlightNumber: fmt.Sprintf("%s%d", c.code, 100+i*7+rng.Intn(50)),
			Price: domain.PriceInfo{
				Amount:    price,
				Currency:  "ZAR",
				Formatted: fmt.Sprintf("ZAR %.0f", price),
			},
			DepartureTime: fmt.Sprintf("%sT%s:00", req.DepartureDate, schedule.depart),
			ArrivalTime:   fmt.Sprintf("%sT%s:00", req.DepartureDate, schedule.arrive),
			Duration: domain.DurationInfo{
				TotalMinutes: minutes,
				Formatted:    normalize.FormatMinutes(minutes),
			},
			Stops:      0,
			BookingURL: searchLink(req),
			Provenance: domain.ProvenanceSynthetic,
		})
	}
	return offers
}

func (g *Generator) international(req domain.RouteRequest) []domain.FlightOffer {
	rng := rand.New(rand.NewSource(g.seed + routeSeed(req)))

	hours := windowDepartures[req.DepartureWindow]
	if len(hours) == 0 {
		hours = windowDepartures[domain.WindowAny]
	}

	offers := make([]domain.FlightOffer, 0, len(internationalCarriers))
	for i, c := range internationalCarriers {
		price := 850.0 + float64(i*120) + float64(rng.Intn(80))
		departHour := hours[i%len(hours)]
		minutes := 9*60 + i*150 + rng.Intn(45)

		offers = append(offers, domain.FlightOffer{
			ID:           fmt.Sprintf("syn-int-%d", i+1),
			Airline:      c.name,
			FlightNumber: fmt.Sprintf("%s%d", c.code, 200+i*11+rng.Intn(90)),
			Price: domain.PriceInfo{
				Amount:    price,
				Currency:  "USD",
				Formatted: fmt.Sprintf("$%.0f", price),
			},
			DepartureTime: fmt.Sprintf("%sT%02d:00:00", req.DepartureDate, departHour),
			ArrivalTime:   fmt.Sprintf("%sT%02d:%02d:00", req.DepartureDate, (departHour+minutes/60)%24, minutes%60),
			Duration: domain.DurationInfo{
				TotalMinutes: minutes,
				Formatted:    normalize.FormatMinutes(minutes),
			},
			Stops:      i,
			BookingURL: searchLink(req),
			Provenance: domain.ProvenanceSynthetic,
		})
	}
	return offers
}

// routeSeed folds the request identity into the seed so distinct routes get
// distinct but stable offers.
func routeSeed(req domain.RouteRequest) int64 {
	var s int64
	for _, r := range req.Origin + req.Destination + req.DepartureDate {
		s = s*31 + int64(r)
	}
	return s
}

func searchLink(req domain.RouteRequest) string {
	return fmt.Sprintf(
		"https://www.google.com/travel/flights?q=flights%%20from%%20%s%%20to%%20%s",
		strings.ToLower(req.Origin), strings.ToLower(req.Destination))
}
