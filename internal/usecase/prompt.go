package usecase

import (
	"fmt"
	"strings"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

// Prompt assembly for the two text-generation stages. The prompts feed the
// gathered aggregation data to the generator as plain summaries rather than
// raw payloads.

func researchPrompt(req domain.PlanRequest, tripDays int, plan *domain.TravelPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Based on real-time data for %s, provide comprehensive travel insights:\n", req.Destination)
	fmt.Fprintf(&b, "- Popular Attractions: %s\n",
		nameList(placeNames(plan.Attractions, 5), "Research local attractions"))
	fmt.Fprintf(&b, "- Upcoming Events: %s\n",
		nameList(eventNames(plan.Events, 3), "Check local event listings"))
	fmt.Fprintf(&b, "- Local Highlights: %s\n",
		nameList(infoCategories(plan.LocalInfo, 3), "General destination information"))

	b.WriteString("Create a detailed guide covering:\n")
	fmt.Fprintf(&b, "1. Must-visit attractions and activities for a %s trip\n", themeLabel(req.Theme))
	b.WriteString("2. Live events and happenings during travel dates\n")
	b.WriteString("3. Local culture and customs\n")
	b.WriteString("4. Weather and best time to visit\n")
	b.WriteString("5. Safety tips and transportation\n")
	fmt.Fprintf(&b, "6. Recommendations based on traveler preferences: %s\n", req.Activities)
	fmt.Fprintf(&b, "Trip duration: %d days, Budget: %s\n", tripDays, req.Budget)
	b.WriteString("Focus on providing practical, actionable travel advice without technical data.")

	return b.String()
}

func planningPrompt(req domain.PlanRequest, tripDays int, plan *domain.TravelPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a detailed %d-day itinerary for a %s trip to %s. ",
		tripDays, themeLabel(req.Theme), req.Destination)
	b.WriteString("Use this information to create recommendations:\n\n")

	b.WriteString("AVAILABLE SERVICES:\n")
	fmt.Fprintf(&b, "- Flights: %s\n", flightSummary(plan))
	fmt.Fprintf(&b, "- Dining: Featured restaurants include %s\n",
		nameList(placeNames(plan.Restaurants, 3), "local dining options"))
	fmt.Fprintf(&b, "- Attractions: Top attractions include %s\n",
		nameList(placeNames(plan.Attractions, 3), "local points of interest"))
	fmt.Fprintf(&b, "- Events: Live events during your visit: %s\n\n",
		nameList(eventNames(plan.Events, 3), "Check local listings"))

	b.WriteString("TRAVELER PREFERENCES:\n")
	fmt.Fprintf(&b, "- Activities: %s\n", req.Activities)
	fmt.Fprintf(&b, "- Budget: %s\n", req.Budget)
	fmt.Fprintf(&b, "- Departure Time Preference: %s\n", windowLabel(req.DepartureWindow))
	fmt.Fprintf(&b, "- Return Time Preference: %s\n\n", windowLabel(req.ReturnWindow))

	fmt.Fprintf(&b, "RESEARCH INSIGHTS:\n%s\n\n", plan.ResearchNotes)

	b.WriteString("FORMATTING INSTRUCTIONS:\n")
	b.WriteString("- Use only plain text and basic markdown formatting\n")
	b.WriteString("- No HTML tags or CSS styling\n")
	b.WriteString("- Use simple markdown: # for headers, ** for bold, - for bullets\n")
	b.WriteString("- Focus on practical travel information with specific times and locations\n\n")
	b.WriteString("Create a detailed day-by-day itinerary including recommended restaurants, attractions, and events from the available data.")

	return b.String()
}

// fallbackResearchNotes is the canned research text used when generation
// fails; it restates the gathered data so downstream consumers still get a
// grounded summary.
func fallbackResearchNotes(req domain.PlanRequest, plan *domain.TravelPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Destination Overview: %s\n\n", req.Destination)
	fmt.Fprintf(&b, "Top attractions: %s.\n",
		nameList(placeNames(plan.Attractions, 3), "see local listings"))
	fmt.Fprintf(&b, "Recommended dining: %s.\n",
		nameList(placeNames(plan.Restaurants, 3), "explore the city center"))
	if len(plan.LocalInfo) > 0 {
		b.WriteString("\nLocal notes:\n")
		for _, info := range plan.LocalInfo {
			fmt.Fprintf(&b, "- %s: %s\n", info.Category, info.Summary)
		}
	}
	return b.String()
}

// fallbackItinerary deterministically spreads the gathered recommendations
// over the trip days so the plan is always complete.
func fallbackItinerary(req domain.PlanRequest, tripDays int, plan *domain.TravelPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %d-Day Itinerary: %s\n\n", tripDays, req.Destination)

	for day := 1; day <= tripDays; day++ {
		fmt.Fprintf(&b, "## Day %d\n", day)
		switch {
		case day == 1:
			b.WriteString("- Morning: Arrival and hotel check-in\n")
			fmt.Fprintf(&b, "- Afternoon: %s\n", pick(placeNames(plan.Attractions, tripDays), 0, "Orientation walk around the city center"))
			fmt.Fprintf(&b, "- Evening: Dinner at %s\n", pick(placeNames(plan.Restaurants, tripDays), 0, "a nearby restaurant"))
		case day == tripDays:
			b.WriteString("- Morning: Last-minute sightseeing and souvenirs\n")
			b.WriteString("- Afternoon: Departure\n")
		default:
			fmt.Fprintf(&b, "- Morning: Visit %s\n", pick(placeNames(plan.Attractions, tripDays), day-1, "a local attraction"))
			fmt.Fprintf(&b, "- Evening: Dinner at %s\n", pick(placeNames(plan.Restaurants, tripDays), day-1, "a local favorite"))
		}
		b.WriteString("\n")
	}

	if len(plan.Events) > 0 {
		b.WriteString("## Events During Your Stay\n")
		for _, e := range plan.Events[:min(3, len(plan.Events))] {
			fmt.Fprintf(&b, "- %s (%s)\n", e.Name, e.Date)
		}
	}
	return b.String()
}

func flightSummary(plan *domain.TravelPlan) string {
	if len(plan.Flights) == 0 {
		return "Flight search results will be available via Skyscanner"
	}
	first := plan.Flights[0]
	return fmt.Sprintf("Available flights from %s to %s, starting from %s with %s",
		plan.Metadata.OriginCode, plan.Metadata.DestinationCode,
		first.Price.Formatted, first.Airline)
}

func placeNames(recs []domain.PlaceRecommendation, limit int) []string {
	names := make([]string, 0, limit)
	for _, r := range recs {
		if len(names) == limit {
			break
		}
		names = append(names, r.Name)
	}
	return names
}

func eventNames(events []domain.Event, limit int) []string {
	names := make([]string, 0, limit)
	for _, e := range events {
		if len(names) == limit {
			break
		}
		names = append(names, e.Name)
	}
	return names
}

func infoCategories(info []domain.LocalInfo, limit int) []string {
	names := make([]string, 0, limit)
	for _, i := range info {
		if len(names) == limit {
			break
		}
		names = append(names, i.Category)
	}
	return names
}

func nameList(names []string, fallback string) string {
	if len(names) == 0 {
		return fallback
	}
	return strings.Join(names, ", ")
}

func pick(names []string, i int, fallback string) string {
	if len(names) == 0 {
		return fallback
	}
	return names[i%len(names)]
}

func themeLabel(theme string) string {
	if theme == "" {
		return "leisure"
	}
	return theme
}

func windowLabel(w domain.TimeWindow) string {
	if w == "" {
		return string(domain.WindowAny)
	}
	return string(w)
}
