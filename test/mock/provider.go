// Package mock provides configurable test doubles for the aggregation
// interfaces. They use a builder pattern so tests read as scenario
// descriptions (delays, errors, canned responses).
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

// FlightProvider is a configurable implementation of domain.FlightProvider.
type FlightProvider struct {
	name       string
	provenance domain.Provenance
	offers     []domain.FlightOffer
	err        error
	delay      time.Duration
	callCount  int
	mu         sync.Mutex
}

// NewFlightProvider creates a mock provider with the given name and
// provenance tag.
func NewFlightProvider(name string, provenance domain.Provenance) *FlightProvider {
	return &FlightProvider{name: name, provenance: provenance}
}

// WithOffers configures the provider to return the given offers.
func (p *FlightProvider) WithOffers(offers []domain.FlightOffer) *FlightProvider {
	p.offers = offers
	return p
}

// WithError configures the provider to return the given error.
func (p *FlightProvider) WithError(err error) *FlightProvider {
	p.err = err
	return p
}

// WithDelay makes the provider wait before responding, for timeout tests.
func (p *FlightProvider) WithDelay(d time.Duration) *FlightProvider {
	p.delay = d
	return p
}

// Name implements domain.FlightProvider.
func (p *FlightProvider) Name() string { return p.name }

// Provenance implements domain.FlightProvider.
func (p *FlightProvider) Provenance() domain.Provenance { return p.provenance }

// Search implements domain.FlightProvider.
func (p *FlightProvider) Search(ctx context.Context, _ domain.RouteRequest) ([]domain.FlightOffer, error) {
	p.mu.Lock()
	p.callCount++
	p.mu.Unlock()

	if p.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delay):
		}
	}
	if p.err != nil {
		return nil, p.err
	}
	return p.offers, nil
}

// CallCount returns how many times Search was invoked.
func (p *FlightProvider) CallCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.callCount
}

// PlaceService is a configurable implementation of domain.PlaceService.
type PlaceService struct {
	RestaurantList []domain.PlaceRecommendation
	AttractionList []domain.PlaceRecommendation
	VenueList      []domain.PlaceRecommendation
	Err            error

	mu         sync.Mutex
	venueCalls int
}

// Restaurants implements domain.PlaceService.
func (s *PlaceService) Restaurants(_ context.Context, _ string, _ domain.RestaurantOptions) ([]domain.PlaceRecommendation, error) {
	return s.RestaurantList, s.Err
}

// Attractions implements domain.PlaceService.
func (s *PlaceService) Attractions(_ context.Context, _, _ string) ([]domain.PlaceRecommendation, error) {
	return s.AttractionList, s.Err
}

// BusinessVenues implements domain.PlaceService.
func (s *PlaceService) BusinessVenues(_ context.Context, _ string) ([]domain.PlaceRecommendation, error) {
	s.mu.Lock()
	s.venueCalls++
	s.mu.Unlock()
	return s.VenueList, s.Err
}

// VenueCalls returns how many times BusinessVenues was invoked.
func (s *PlaceService) VenueCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.venueCalls
}

// SearchService is a configurable implementation of domain.SearchService.
type SearchService struct {
	Info   []domain.LocalInfo
	Events []domain.Event
	Err    error
}

// LocalInfo implements domain.SearchService.
func (s *SearchService) LocalInfo(_ context.Context, _ string) ([]domain.LocalInfo, error) {
	return s.Info, s.Err
}

// LiveEvents implements domain.SearchService.
func (s *SearchService) LiveEvents(_ context.Context, _, _, _ string) ([]domain.Event, error) {
	return s.Events, s.Err
}

// TextGenerator is a configurable implementation of domain.TextGenerator.
type TextGenerator struct {
	Text string
	Err  error

	mu      sync.Mutex
	prompts []string
}

// Generate implements domain.TextGenerator.
func (g *TextGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	g.prompts = append(g.prompts, prompt)
	g.mu.Unlock()
	if g.Err != nil {
		return "", g.Err
	}
	return g.Text, nil
}

// Prompts returns the prompts Generate received, in order.
func (g *TextGenerator) Prompts() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.prompts...)
}
