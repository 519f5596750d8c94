// Package kiwi implements the secondary flight search adapter backed by a
// RapidAPI-hosted aggregator. The upstream endpoint has changed its request
// contract over time, so the adapter tries a sequence of known parameter
// shapes and accepts the first that yields usable itineraries.
package kiwi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

const (
	providerName = "kiwi"
	rapidAPIHost = "kiwi-com-cheap-flights.p.rapidapi.com"
	maxOffers    = 10
)

// Adapter exposes the aggregator as a domain.FlightProvider.
type Adapter struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewAdapter creates the adapter. An empty apiKey disables network calls
// entirely; Search then returns an empty result without error.
func NewAdapter(apiKey, baseURL string, timeout time.Duration, log zerolog.Logger) *Adapter {
	if baseURL == "" {
		baseURL = "https://" + rapidAPIHost
	}
	return &Adapter{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("adapter", providerName).Logger(),
	}
}

// Name implements domain.FlightProvider.
func (a *Adapter) Name() string { return providerName }

// Provenance implements domain.FlightProvider.
func (a *Adapter) Provenance() domain.Provenance { return domain.ProvenanceSecondary }

// paramShapes returns the known request contracts, newest first. Each shape
// is tried in order until one returns itineraries.
func paramShapes(req domain.RouteRequest) []url.Values {
	adults := strconv.Itoa(req.Passengers)

	v1 := url.Values{}
	v1.Set("from", req.Origin)
	v1.Set("to", req.Destination)
	v1.Set("departure", req.DepartureDate)
	v1.Set("return", req.ReturnDate)
	v1.Set("adults", adults)
	v1.Set("currency", "ZAR")
	v1.Set("limit", strconv.Itoa(maxOffers))

	v2 := url.Values{}
	v2.Set("fly_from", req.Origin)
	v2.Set("fly_to", req.Destination)
	v2.Set("date_from", req.DepartureDate)
	v2.Set("date_to", req.DepartureDate)
	v2.Set("return_from", req.ReturnDate)
	v2.Set("return_to", req.ReturnDate)
	v2.Set("adults", adults)
	v2.Set("curr", "ZAR")
	v2.Set("limit", strconv.Itoa(maxOffers))

	v3 := url.Values{}
	v3.Set("origin", req.Origin)
	v3.Set("destination", req.Destination)
	v3.Set("departure_date", req.DepartureDate)
	v3.Set("return_date", req.ReturnDate)
	v3.Set("passengers", adults)
	v3.Set("currency", "ZAR")

	shapes := []url.Values{v1, v2, v3}
	for _, v := range shapes {
		applyTimeWindows(v, req)
	}
	return shapes
}

// applyTimeWindows translates the time-of-day preferences into the hour-range
// parameters the upstream filters on. WindowAny imposes no filter.
func applyTimeWindows(v url.Values, req domain.RouteRequest) {
	if from, to, ok := req.DepartureWindow.HourRange(); ok {
		v.Set("departure_times_from", from)
		v.Set("departure_times_to", to)
	}
	if from, to, ok := req.ReturnWindow.HourRange(); ok {
		v.Set("return_times_from", from)
		v.Set("return_times_to", to)
	}
}

// Search implements domain.FlightProvider. It never invents offers: failed
// shapes, a rate limit, or missing configuration all yield an empty slice,
// leaving fallback generation to the caller. A 429 from any shape aborts the
// remaining shapes and surfaces domain.ErrRateLimited.
func (a *Adapter) Search(ctx context.Context, req domain.RouteRequest) ([]domain.FlightOffer, error) {
	if a.apiKey == "" {
		a.log.Debug().Msg("api key absent, skipping search")
		return nil, nil
	}

	for i, params := range paramShapes(req) {
		offers, err := a.searchOnce(ctx, params, req)
		if err != nil {
			if err == domain.ErrRateLimited {
				a.log.Warn().Int("shape", i+1).Msg("rate limited, aborting remaining shapes")
				return nil, domain.ErrRateLimited
			}
			a.log.Debug().Err(err).Int("shape", i+1).Msg("request shape failed")
			continue
		}
		if len(offers) > 0 {
			a.log.Info().Int("shape", i+1).Int("count", len(offers)).Msg("flight offers retrieved")
			return offers, nil
		}
	}

	a.log.Info().Msg("no shape yielded offers")
	return nil, nil
}

func (a *Adapter) searchOnce(ctx context.Context, params url.Values, req domain.RouteRequest) ([]domain.FlightOffer, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		a.baseURL+"/round-trip?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("X-RapidAPI-Key", a.apiKey)
	httpReq.Header.Set("X-RapidAPI-Host", rapidAPIHost)

	resp, err := a.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.ErrRateLimited
	}

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(body))
	}

	return a.parseResponse(body, req)
}

// parseResponse extracts itineraries from either of the two envelope keys the
// upstream has used ("itineraries" or "data") and normalizes each entry.
func (a *Adapter) parseResponse(body []byte, req domain.RouteRequest) ([]domain.FlightOffer, error) {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	var entries []map[string]any
	for _, key := range []string{"itineraries", "data"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &entries); err == nil && len(entries) > 0 {
			break
		}
		entries = nil
	}
	if len(entries) == 0 {
		return nil, nil
	}

	if len(entries) > maxOffers {
		entries = entries[:maxOffers]
	}

	bookingURL := skyscannerLink(req)
	offers := make([]domain.FlightOffer, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	for i, entry := range entries {
		offer, ok := normalizeEntry(entry, i)
		if !ok {
			continue
		}
		// Upstream occasionally repeats an itinerary across envelope pages.
		key := offer.Airline + "|" + offer.DepartureTime + "|" + offer.ArrivalTime + "|" + offer.Price.Formatted
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		offer.BookingURL = bookingURL
		offer.Provenance = domain.ProvenanceSecondary
		offers = append(offers, offer)
	}
	return offers, nil
}

// skyscannerLink builds a deep link the traveler can actually book through,
// since the aggregator itself does not return one.
func skyscannerLink(req domain.RouteRequest) string {
	return fmt.Sprintf(
		"https://www.skyscanner.com/transport/flights/%s/%s/%s/%s/?adults=%d",
		strings.ToLower(req.Origin),
		strings.ToLower(req.Destination),
		compactDate(req.DepartureDate),
		compactDate(req.ReturnDate),
		req.Passengers,
	)
}

// compactDate converts 2026-09-10 into the 260910 form deep links expect.
func compactDate(iso string) string {
	if len(iso) != 10 {
		return iso
	}
	return iso[2:4] + iso[5:7] + iso[8:10]
}
