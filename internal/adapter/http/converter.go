package http

import (
	"strings"
	"time"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

// ToRouteRequest converts a SearchFlightsRequest to a domain.RouteRequest.
func ToRouteRequest(req *SearchFlightsRequest) domain.RouteRequest {
	route := domain.RouteRequest{
		Origin:          strings.ToUpper(strings.TrimSpace(req.Origin)),
		Destination:     strings.ToUpper(strings.TrimSpace(req.Destination)),
		DepartureDate:   req.DepartureDate,
		ReturnDate:      req.ReturnDate,
		Passengers:      req.Passengers,
		DepartureWindow: domain.TimeWindow(req.DepartureWindow),
		ReturnWindow:    domain.TimeWindow(req.ReturnWindow),
	}
	route.SetDefaults()
	return route
}

// ToPlanRequest converts a GeneratePlanRequest to a domain.PlanRequest.
func ToPlanRequest(req *GeneratePlanRequest) domain.PlanRequest {
	return domain.PlanRequest{
		Source:          strings.TrimSpace(req.Source),
		Destination:     strings.TrimSpace(req.Destination),
		DepartureDate:   req.DepartureDate,
		ReturnDate:      req.ReturnDate,
		Travelers:       req.Travelers,
		Theme:           req.Theme,
		Budget:          req.Budget,
		Activities:      req.Activities,
		CuisineType:     req.CuisineType,
		DepartureWindow: domain.TimeWindow(req.DepartureWindow),
		ReturnWindow:    domain.TimeWindow(req.ReturnWindow),
	}
}

// ToSearchResponseDTO converts an orchestrator result to the response shape.
func ToSearchResponseDTO(route domain.RouteRequest, result *domain.FlightResult) *SearchResponseDTO {
	offers := make([]FlightOfferDTO, 0, len(result.Offers))
	for _, o := range result.Offers {
		offers = append(offers, ToFlightOfferDTO(o))
	}

	return &SearchResponseDTO{
		SearchCriteria: SearchCriteriaDTO{
			Origin:          route.Origin,
			Destination:     route.Destination,
			DepartureDate:   route.DepartureDate,
			ReturnDate:      route.ReturnDate,
			Passengers:      route.Passengers,
			DepartureWindow: string(route.DepartureWindow),
			ReturnWindow:    string(route.ReturnWindow),
		},
		Metadata: MetadataDTO{
			TotalResults: len(offers),
			Provenance:   string(result.Provenance),
			CacheHit:     result.CacheHit,
			SearchTimeMs: result.SearchTimeMs,
		},
		Offers: offers,
	}
}

// ToFlightOfferDTO converts a domain offer to its response shape.
func ToFlightOfferDTO(o domain.FlightOffer) FlightOfferDTO {
	return FlightOfferDTO{
		ID:           o.ID,
		Airline:      o.Airline,
		FlightNumber: o.FlightNumber,
		Price: PriceDTO{
			Amount:    o.Price.Amount,
			Currency:  o.Price.Currency,
			Formatted: o.Price.Formatted,
		},
		DepartureTime: o.DepartureTime,
		ArrivalTime:   o.ArrivalTime,
		Duration: DurationDTO{
			TotalMinutes: o.Duration.TotalMinutes,
			Display:      o.Duration.Formatted,
		},
		Stops:      o.Stops,
		Aircraft:   o.Aircraft,
		BookingURL: o.BookingURL,
		Provenance: string(o.Provenance),
	}
}

// ToSessionDTO converts a session to its public view.
func ToSessionDTO(s *domain.Session) *SessionDTO {
	return &SessionDTO{
		ID:        s.ID,
		Email:     s.Email,
		State:     string(s.State),
		HasPlan:   s.HasPlan(),
		FormData:  s.FormData,
		CreatedAt: s.CreatedAt.Format(time.RFC3339),
	}
}
