// Package usecase contains the application's business flows: the layered
// flight search, the plan assembly pipeline, and the session lifecycle.
package usecase

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/cache"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/normalize"
)

// FlightSearchUseCase is the layered flight search: primary API, then the
// secondary aggregator, then the synthetic generator. A search never returns
// an empty offer list.
type FlightSearchUseCase interface {
	Search(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error)
}

type flightSearchUseCase struct {
	primary   domain.FlightProvider
	secondary domain.FlightProvider
	fallback  domain.FlightProvider
	cache     *cache.Store
	ttl       time.Duration
	log       zerolog.Logger
}

// NewFlightSearchUseCase wires the three provider layers. fallback must never
// fail and never return an empty result; the synthetic generator satisfies
// this. Live results are cached for ttl; synthetic results are never cached
// so a recovered upstream is used on the next search.
func NewFlightSearchUseCase(primary, secondary, fallback domain.FlightProvider, store *cache.Store, ttl time.Duration, log zerolog.Logger) FlightSearchUseCase {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &flightSearchUseCase{
		primary:   primary,
		secondary: secondary,
		fallback:  fallback,
		cache:     store,
		ttl:       ttl,
		log:       log.With().Str("usecase", "flight_search").Logger(),
	}
}

// errNoLiveOffers routes a search whose live layers all came up empty to the
// synthetic terminal layer. GetOrCompute treats it as any other compute error,
// which keeps synthetic results out of the cache.
var errNoLiveOffers = errors.New("no live offers")

// Search implements FlightSearchUseCase.
func (uc *flightSearchUseCase) Search(ctx context.Context, req domain.RouteRequest) (*domain.FlightResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	key := cache.Key("flights",
		req.Origin, req.Destination,
		req.DepartureDate, req.ReturnDate,
		strconv.Itoa(req.Passengers),
		string(req.DepartureWindow), string(req.ReturnWindow))

	result, hit, err := cache.GetOrCompute(uc.cache, key, uc.ttl, func() (domain.FlightResult, error) {
		return uc.searchLive(ctx, req)
	})
	if err == nil {
		if hit {
			uc.log.Debug().Str("key", key).Msg("cache hit")
		}
		result.CacheHit = hit
		result.SearchTimeMs = time.Since(start).Milliseconds()
		return &result, nil
	}

	// Terminal layer. Deliberately uncached.
	offers, err := uc.fallback.Search(ctx, req)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("count", len(offers)).Msg("flight search served synthetically")
	return &domain.FlightResult{
		Offers:       offers,
		Provenance:   domain.ProvenanceSynthetic,
		SearchTimeMs: time.Since(start).Milliseconds(),
	}, nil
}

// searchLive walks the primary and secondary layers in order and returns the
// first non-empty result. Layer errors fall through rather than abort.
func (uc *flightSearchUseCase) searchLive(ctx context.Context, req domain.RouteRequest) (domain.FlightResult, error) {
	for _, layer := range []domain.FlightProvider{uc.primary, uc.secondary} {
		if layer == nil {
			continue
		}
		offers, err := layer.Search(ctx, req)
		if err != nil {
			uc.log.Warn().Err(err).Str("provider", layer.Name()).Msg("layer failed, falling through")
			continue
		}
		if len(offers) == 0 {
			uc.log.Debug().Str("provider", layer.Name()).Msg("layer empty, falling through")
			continue
		}

		uc.log.Info().
			Str("provider", layer.Name()).
			Int("count", len(offers)).
			Msg("flight search served")
		return domain.FlightResult{
			Offers:     offers,
			Provenance: layer.Provenance(),
		}, nil
	}
	return domain.FlightResult{}, errNoLiveOffers
}

// Cheapest returns up to n offers sorted ascending by parsed price. Offers
// whose price never parsed sort last; ties keep their incoming order.
func Cheapest(offers []domain.FlightOffer, n int) []domain.FlightOffer {
	sorted := make([]domain.FlightOffer, len(offers))
	copy(sorted, offers)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sortAmount(sorted[i]) < sortAmount(sorted[j])
	})

	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

func sortAmount(o domain.FlightOffer) float64 {
	if o.Price.Amount > 0 {
		return o.Price.Amount
	}
	return normalize.AmountOrInf(o.Price.Formatted)
}
