package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/iata"
)

// ItinerarySource values recorded in plan metadata.
const (
	ItineraryGenerated = "generated"
	ItineraryFallback  = "fallback"
)

// PlanUseCase assembles a complete travel plan from every aggregation source.
type PlanUseCase interface {
	Generate(ctx context.Context, req domain.PlanRequest) (*domain.TravelPlan, error)
}

type planUseCase struct {
	flights   FlightSearchUseCase
	places    domain.PlaceService
	search    domain.SearchService
	generator domain.TextGenerator
	cheapestN int
	log       zerolog.Logger
}

// NewPlanUseCase wires the aggregation sources into the plan pipeline.
// cheapestN bounds the flight list embedded in the plan.
func NewPlanUseCase(flights FlightSearchUseCase, places domain.PlaceService, search domain.SearchService, generator domain.TextGenerator, cheapestN int, log zerolog.Logger) PlanUseCase {
	if cheapestN <= 0 {
		cheapestN = 3
	}
	return &planUseCase{
		flights:   flights,
		places:    places,
		search:    search,
		generator: generator,
		cheapestN: cheapestN,
		log:       log.With().Str("usecase", "plan").Logger(),
	}
}

// Generate implements PlanUseCase. Stages run strictly in sequence; no stage
// failure aborts the plan. Each source degrades per its own contract, so the
// worst case is a fully synthetic but structurally complete plan.
func (uc *planUseCase) Generate(ctx context.Context, req domain.PlanRequest) (*domain.TravelPlan, error) {
	if err := validatePlanRequest(&req); err != nil {
		return nil, err
	}

	start := time.Now()
	originCode := iata.Resolve(req.Source)
	destCode := iata.Resolve(req.Destination)
	tripDays := tripDuration(req)

	plan := &domain.TravelPlan{
		Request: req,
		Metadata: domain.PlanMetadata{
			OriginCode:      originCode,
			DestinationCode: destCode,
			TripDays:        tripDays,
		},
	}

	routeReq := req.RouteRequest(originCode, destCode)
	flightResult, err := uc.flights.Search(ctx, routeReq)
	if err != nil {
		// Validation errors surface; the orchestrator's synthetic layer means
		// anything else here is unexpected, but the plan still completes.
		uc.log.Error().Err(err).Msg("flight search failed inside plan pipeline")
		flightResult = &domain.FlightResult{Provenance: domain.ProvenanceSynthetic}
	}
	plan.Flights = Cheapest(flightResult.Offers, uc.cheapestN)
	plan.Metadata.FlightProvenance = flightResult.Provenance
	plan.Metadata.FlightCacheHit = flightResult.CacheHit

	restaurants, err := uc.places.Restaurants(ctx, req.Destination, domain.RestaurantOptions{
		CuisineType:      req.CuisineType,
		Budget:           req.Budget,
		BusinessFriendly: req.Theme == domain.ThemeBusiness,
	})
	if err != nil {
		uc.log.Warn().Err(err).Msg("restaurant stage failed")
	}
	plan.Restaurants = restaurants

	if req.Theme == domain.ThemeBusiness {
		venues, err := uc.places.BusinessVenues(ctx, req.Destination)
		if err != nil {
			uc.log.Warn().Err(err).Msg("venue stage failed")
		}
		plan.Venues = venues
	}

	attractions, err := uc.places.Attractions(ctx, req.Destination, req.Activities)
	if err != nil {
		uc.log.Warn().Err(err).Msg("attraction stage failed")
	}
	plan.Attractions = attractions

	events, err := uc.search.LiveEvents(ctx, req.Destination, req.DepartureDate, req.ReturnDate)
	if err != nil {
		uc.log.Warn().Err(err).Msg("event stage failed")
	}
	plan.Events = events

	localInfo, err := uc.search.LocalInfo(ctx, req.Destination)
	if err != nil {
		uc.log.Warn().Err(err).Msg("local info stage failed")
	}
	plan.LocalInfo = localInfo

	plan.ResearchNotes = uc.researchNotes(ctx, req, tripDays, plan)
	plan.Itinerary, plan.Metadata.ItinerarySource = uc.itinerary(ctx, req, tripDays, plan)

	plan.Metadata.BuildTimeMs = time.Since(start).Milliseconds()
	uc.log.Info().
		Str("destination", req.Destination).
		Str("flight_provenance", string(plan.Metadata.FlightProvenance)).
		Str("itinerary_source", plan.Metadata.ItinerarySource).
		Int64("build_time_ms", plan.Metadata.BuildTimeMs).
		Msg("travel plan assembled")
	return plan, nil
}

// researchNotes runs the research prompt; on failure it returns canned notes
// assembled from the data already gathered.
func (uc *planUseCase) researchNotes(ctx context.Context, req domain.PlanRequest, tripDays int, plan *domain.TravelPlan) string {
	prompt := researchPrompt(req, tripDays, plan)
	notes, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		uc.log.Warn().Err(err).Msg("research generation failed, using fallback notes")
		return fallbackResearchNotes(req, plan)
	}
	return notes
}

// itinerary runs the planning prompt, which consumes the research output; on
// failure it returns the deterministic fallback itinerary.
func (uc *planUseCase) itinerary(ctx context.Context, req domain.PlanRequest, tripDays int, plan *domain.TravelPlan) (string, string) {
	prompt := planningPrompt(req, tripDays, plan)
	text, err := uc.generator.Generate(ctx, prompt)
	if err != nil {
		uc.log.Warn().Err(err).Msg("itinerary generation failed, using fallback text")
		return fallbackItinerary(req, tripDays, plan), ItineraryFallback
	}
	return text, ItineraryGenerated
}

func validatePlanRequest(req *domain.PlanRequest) error {
	if req.Source == "" {
		return fmt.Errorf("%w: source is required", domain.ErrInvalidRequest)
	}
	if req.Destination == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrInvalidRequest)
	}
	if req.Theme != "" && !domain.IsValidTheme(req.Theme) {
		return fmt.Errorf("%w: unknown theme %q", domain.ErrInvalidRequest, req.Theme)
	}
	if req.Budget != "" && !domain.IsValidBudget(req.Budget) {
		return fmt.Errorf("%w: unknown budget %q", domain.ErrInvalidRequest, req.Budget)
	}
	if req.Travelers == 0 {
		req.Travelers = 1
	}

	// Date shape and ordering reuse the route-level rules.
	probe := req.RouteRequest("AAA", "BBB")
	return probe.Validate()
}

func tripDuration(req domain.PlanRequest) int {
	probe := domain.RouteRequest{DepartureDate: req.DepartureDate, ReturnDate: req.ReturnDate}
	return probe.TripDays()
}
