package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/normalize"
)

const (
	providerName = "amadeus"
	maxOffers    = 10
)

var iataPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Adapter exposes the Amadeus client as a domain.FlightProvider.
type Adapter struct {
	client *Client
	log    zerolog.Logger
}

// NewAdapter wires a Client into the provider interface.
func NewAdapter(client *Client, log zerolog.Logger) *Adapter {
	return &Adapter{
		client: client,
		log:    log.With().Str("adapter", providerName).Logger(),
	}
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string { return providerName }

// Provenance implements domain.FlightProvider.
func (a *Adapter) Provenance() domain.Provenance { return domain.ProvenancePrimary }

// offerRecord mirrors the relevant subset of a flight-offers-search record.
type offerRecord struct {
	ID    string `json:"id"`
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
	Itineraries []struct {
		Duration string `json:"duration"`
		Segments []struct {
			Departure struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"departure"`
			Arrival struct {
				IataCode string `json:"iataCode"`
				At       string `json:"at"`
			} `json:"arrival"`
			CarrierCode string `json:"carrierCode"`
			Number      string `json:"number"`
			Aircraft    struct {
				Code string `json:"code"`
			} `json:"aircraft"`
		} `json:"segments"`
	} `json:"itineraries"`
}

// Search implements domain.FlightProvider. It returns an empty slice when
// the client is unconfigured or either code is not a valid IATA code, and
// an error on transport or decode failure. Individual malformed records are
// skipped rather than failing the whole response.
func (a *Adapter) Search(ctx context.Context, req domain.RouteRequest) ([]domain.FlightOffer, error) {
	if !a.client.Configured() {
		a.log.Debug().Msg("credentials absent, skipping search")
		return nil, nil
	}
	if !iataPattern.MatchString(req.Origin) || !iataPattern.MatchString(req.Destination) {
		a.log.Debug().
			Str("origin", req.Origin).
			Str("destination", req.Destination).
			Msg("invalid airport code, skipping search")
		return nil, nil
	}

	body, err := a.client.FlightOffers(ctx,
		req.Origin, req.Destination,
		req.DepartureDate, req.ReturnDate,
		req.Passengers, maxOffers)
	if err != nil {
		return nil, fmt.Errorf("flight offers request: %w", err)
	}

	var payload struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode flight offers: %w", err)
	}

	offers := make([]domain.FlightOffer, 0, len(payload.Data))
	for _, raw := range payload.Data {
		offer, ok := a.normalizeRecord(raw)
		if !ok {
			continue
		}
		offers = append(offers, offer)
	}

	a.log.Info().Int("count", len(offers)).Msg("flight offers retrieved")
	return offers, nil
}

// normalizeRecord converts one raw offer into the domain shape. A record with
// no itineraries or no segments is considered malformed and skipped.
func (a *Adapter) normalizeRecord(raw json.RawMessage) (domain.FlightOffer, bool) {
	var rec offerRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		a.log.Debug().Err(err).Msg("skipping malformed offer record")
		return domain.FlightOffer{}, false
	}
	if len(rec.Itineraries) == 0 || len(rec.Itineraries[0].Segments) == 0 {
		return domain.FlightOffer{}, false
	}

	outbound := rec.Itineraries[0]
	first := outbound.Segments[0]
	last := outbound.Segments[len(outbound.Segments)-1]

	minutes := normalize.ParseDuration(outbound.Duration)
	price, err := normalize.ParsePrice(rec.Price.Total)
	if err != nil {
		a.log.Debug().Str("total", rec.Price.Total).Msg("unparseable price, keeping raw text")
	}
	currency := rec.Price.Currency
	if currency == "" {
		currency = price.Currency
	}

	return domain.FlightOffer{
		ID:           rec.ID,
		Airline:      first.CarrierCode,
		FlightNumber: first.CarrierCode + first.Number,
		Price: domain.PriceInfo{
			Amount:    price.Amount,
			Currency:  currency,
			Formatted: fmt.Sprintf("%s %s", currency, rec.Price.Total),
		},
		DepartureTime: first.Departure.At,
		ArrivalTime:   last.Arrival.At,
		Duration: domain.DurationInfo{
			TotalMinutes: minutes,
			Formatted:    normalize.FormatMinutes(minutes),
		},
		Stops:      len(outbound.Segments) - 1,
		Aircraft:   first.Aircraft.Code,
		Provenance: domain.ProvenancePrimary,
	}, true
}
