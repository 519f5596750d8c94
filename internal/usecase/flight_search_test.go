package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/cache"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/logger"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/timeutil"
	"github.com/trip-planner/travel-plan-aggregation-service/test/mock"
)

func offer(id string, amount float64, provenance domain.Provenance) domain.FlightOffer {
	return domain.FlightOffer{
		ID:         id,
		Airline:    "Test Air",
		Price:      domain.PriceInfo{Amount: amount, Currency: "ZAR"},
		Provenance: provenance,
	}
}

func searchRequest() domain.RouteRequest {
	return domain.RouteRequest{
		Origin:        "DUR",
		Destination:   "JNB",
		DepartureDate: "2026-09-10",
		ReturnDate:    "2026-09-14",
		Passengers:    1,
	}
}

type searchFixture struct {
	primary   *mock.FlightProvider
	secondary *mock.FlightProvider
	fallback  *mock.FlightProvider
	clock     *timeutil.MockClock
	uc        FlightSearchUseCase
}

func newSearchFixture() *searchFixture {
	f := &searchFixture{
		primary:   mock.NewFlightProvider("primary", domain.ProvenancePrimary),
		secondary: mock.NewFlightProvider("secondary", domain.ProvenanceSecondary),
		fallback: mock.NewFlightProvider("synthetic", domain.ProvenanceSynthetic).
			WithOffers([]domain.FlightOffer{offer("syn-1", 1500, domain.ProvenanceSynthetic)}),
		clock: timeutil.NewMockClock(time.Now()),
	}
	store := cache.New(f.clock)
	f.uc = NewFlightSearchUseCase(f.primary, f.secondary, f.fallback, store, cache.DefaultTTL, logger.Nop())
	return f
}

func TestSearch_PrimaryServes(t *testing.T) {
	f := newSearchFixture()
	f.primary.WithOffers([]domain.FlightOffer{offer("p-1", 1450, domain.ProvenancePrimary)})

	result, err := f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.ProvenancePrimary, result.Provenance)
	assert.False(t, result.CacheHit)
	require.Len(t, result.Offers, 1)
	assert.Equal(t, "p-1", result.Offers[0].ID)
	assert.Equal(t, 0, f.secondary.CallCount())
	assert.Equal(t, 0, f.fallback.CallCount())
}

func TestSearch_SecondaryServesWhenPrimaryEmpty(t *testing.T) {
	f := newSearchFixture()
	f.secondary.WithOffers([]domain.FlightOffer{offer("s-1", 1650, domain.ProvenanceSecondary)})

	result, err := f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceSecondary, result.Provenance)
	assert.Equal(t, 1, f.primary.CallCount())
	assert.Equal(t, 0, f.fallback.CallCount())
}

func TestSearch_SyntheticWhenAllLayersFail(t *testing.T) {
	f := newSearchFixture()
	f.primary.WithError(errors.New("upstream down"))
	f.secondary.WithError(domain.ErrRateLimited)

	result, err := f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.ProvenanceSynthetic, result.Provenance)
	assert.NotEmpty(t, result.Offers)
}

func TestSearch_CachesLiveResults(t *testing.T) {
	f := newSearchFixture()
	f.primary.WithOffers([]domain.FlightOffer{offer("p-1", 1450, domain.ProvenancePrimary)})

	first, err := f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.False(t, first.CacheHit)

	second, err := f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.True(t, second.CacheHit)
	assert.Equal(t, first.Offers, second.Offers)
	assert.Equal(t, 1, f.primary.CallCount(), "cached searches must not hit the provider")

	f.clock.Advance(cache.DefaultTTL + time.Second)
	third, err := f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	assert.False(t, third.CacheHit)
	assert.Equal(t, 2, f.primary.CallCount(), "expired entries recompute")
}

func TestSearch_SyntheticResultsNotCached(t *testing.T) {
	f := newSearchFixture()

	_, err := f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)
	_, err = f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)

	assert.Equal(t, 2, f.primary.CallCount(), "a recovered primary must be retried next search")
	assert.Equal(t, 2, f.fallback.CallCount())
}

func TestSearch_DistinctRequestsDistinctCacheKeys(t *testing.T) {
	f := newSearchFixture()
	f.primary.WithOffers([]domain.FlightOffer{offer("p-1", 1450, domain.ProvenancePrimary)})

	_, err := f.uc.Search(context.Background(), searchRequest())
	require.NoError(t, err)

	other := searchRequest()
	other.Destination = "CPT"
	result, err := f.uc.Search(context.Background(), other)
	require.NoError(t, err)
	assert.False(t, result.CacheHit)
	assert.Equal(t, 2, f.primary.CallCount())
}

func TestSearch_InvalidRequest(t *testing.T) {
	f := newSearchFixture()
	req := searchRequest()
	req.Origin = "durban"

	_, err := f.uc.Search(context.Background(), req)
	require.ErrorIs(t, err, domain.ErrInvalidRequest)
	assert.Equal(t, 0, f.primary.CallCount())
}

func TestCheapest(t *testing.T) {
	tests := []struct {
		name    string
		offers  []domain.FlightOffer
		n       int
		wantIDs []string
	}{
		{
			name: "ascending order",
			offers: []domain.FlightOffer{
				offer("a", 300, domain.ProvenancePrimary),
				offer("b", 100, domain.ProvenancePrimary),
				offer("c", 200, domain.ProvenancePrimary),
			},
			n:       3,
			wantIDs: []string{"b", "c", "a"},
		},
		{
			name: "truncates to n",
			offers: []domain.FlightOffer{
				offer("a", 300, domain.ProvenancePrimary),
				offer("b", 100, domain.ProvenancePrimary),
				offer("c", 200, domain.ProvenancePrimary),
			},
			n:       2,
			wantIDs: []string{"b", "c"},
		},
		{
			name: "unparseable prices sort last",
			offers: []domain.FlightOffer{
				{ID: "bad", Price: domain.PriceInfo{Formatted: "call for price"}},
				offer("a", 500, domain.ProvenancePrimary),
			},
			n:       2,
			wantIDs: []string{"a", "bad"},
		},
		{
			name: "ties keep incoming order",
			offers: []domain.FlightOffer{
				offer("first", 100, domain.ProvenancePrimary),
				offer("second", 100, domain.ProvenancePrimary),
			},
			n:       2,
			wantIDs: []string{"first", "second"},
		},
		{
			name:    "n larger than input",
			offers:  []domain.FlightOffer{offer("a", 100, domain.ProvenancePrimary)},
			n:       5,
			wantIDs: []string{"a"},
		},
		{
			name:    "empty input",
			offers:  nil,
			n:       3,
			wantIDs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cheapest(tt.offers, tt.n)
			ids := make([]string, 0, len(got))
			for _, o := range got {
				ids = append(ids, o.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
