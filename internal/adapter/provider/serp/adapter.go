package serp

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
)

const (
	snippetLimit      = 150
	descriptionLimit  = 200
	resultsPerQuery   = 2
	eventsPerCategory = 3

	// DefaultEventsCap bounds the total event count across all categories.
	DefaultEventsCap = 12
)

// localInfoQueries are the fixed research categories.
var localInfoQueries = []struct {
	template string
	category string
	icon     string
}{
	{template: "weather in %s best time to visit climate", category: "Weather & Best Time to Visit", icon: "🌤️"},
	{template: "local culture customs traditions %s", category: "Local Culture & Customs", icon: "🏛️"},
	{template: "safety tips travel advice %s", category: "Safety & Travel Tips", icon: "🛡️"},
	{template: "transportation getting around %s public transport", category: "Transportation & Getting Around", icon: "🚌"},
}

// eventQueries are the live-event categories, each searched over the trip's
// "Month Year".
var eventQueries = []struct {
	template string
	category string
	icon     string
}{
	{template: "events %s %s concerts shows festivals", category: "Concerts & Shows", icon: "🎵"},
	{template: "festivals %s %s food music cultural", category: "Festivals & Cultural Events", icon: "🎭"},
	{template: "sports events %s %s games matches tournaments", category: "Sports & Games", icon: "⚽"},
	{template: "exhibitions museums %s %s art shows galleries", category: "Exhibitions & Museums", icon: "🎨"},
	{template: "nightlife events %s %s clubs bars entertainment", category: "Nightlife & Entertainment", icon: "🌃"},
}

// eventKeywords filter organic results down to actual event listings.
var eventKeywords = []string{
	"event", "concert", "show", "festival", "exhibition", "match", "game", "performance",
}

// datePatterns extract an event date from a listing snippet.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{4}`),
	regexp.MustCompile(`(?i)\d{1,2}\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}`),
	regexp.MustCompile(`(?i)(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2}[-,]?\s*\d{4}`),
}

var (
	bookingHosts = []string{"tickets", "booking", "eventbrite", "ticketek", "quicket"}
	socialHosts  = []string{"facebook", "instagram", "twitter"}
)

// Adapter implements domain.SearchService.
type Adapter struct {
	client    *Client
	eventsCap int
	log       zerolog.Logger
}

// NewAdapter wires a Client into the service interface. A non-positive
// eventsCap falls back to DefaultEventsCap.
func NewAdapter(client *Client, eventsCap int, log zerolog.Logger) *Adapter {
	if eventsCap <= 0 {
		eventsCap = DefaultEventsCap
	}
	return &Adapter{
		client:    client,
		eventsCap: eventsCap,
		log:       log.With().Str("adapter", "serp").Logger(),
	}
}

// LocalInfo implements domain.SearchService. One query per research category,
// summarizing the top two organic results. Failed categories are skipped; a
// missing key yields an empty list.
func (a *Adapter) LocalInfo(ctx context.Context, location string) ([]domain.LocalInfo, error) {
	if !a.client.Configured() {
		a.log.Debug().Msg("api key absent, skipping local info")
		return nil, nil
	}

	var all []domain.LocalInfo
	for _, q := range localInfoQueries {
		results, err := a.client.Search(ctx, fmt.Sprintf(q.template, location), location)
		if err != nil {
			a.log.Debug().Err(err).Str("category", q.category).Msg("search failed")
			continue
		}
		if len(results) == 0 {
			continue
		}
		if len(results) > resultsPerQuery {
			results = results[:resultsPerQuery]
		}

		var summaries []string
		var sources []domain.InfoSource
		for _, r := range results {
			if r.Snippet == "" {
				continue
			}
			summaries = append(summaries, truncate(r.Snippet, snippetLimit))
			title := r.Title
			if title == "" {
				title = "Source"
			}
			sources = append(sources, domain.InfoSource{Title: title, Link: r.Link})
		}
		if len(summaries) == 0 {
			continue
		}

		all = append(all, domain.LocalInfo{
			Category: q.category,
			Icon:     q.icon,
			Summary:  strings.Join(summaries, " | "),
			Sources:  sources,
		})
	}

	a.log.Info().Int("categories", len(all)).Msg("local info retrieved")
	return all, nil
}

// LiveEvents implements domain.SearchService. Five category queries over the
// departure month, keyword-filtered, three events per category, capped overall.
func (a *Adapter) LiveEvents(ctx context.Context, location, departureDate, returnDate string) ([]domain.Event, error) {
	if !a.client.Configured() {
		a.log.Debug().Msg("api key absent, skipping live events")
		return nil, nil
	}

	monthYear := searchMonth(departureDate)

	var all []domain.Event
	for _, q := range eventQueries {
		results, err := a.client.Search(ctx, fmt.Sprintf(q.template, location, monthYear), location)
		if err != nil {
			a.log.Debug().Err(err).Str("category", q.category).Msg("search failed")
			continue
		}
		if len(results) > eventsPerCategory {
			results = results[:eventsPerCategory]
		}

		for _, r := range results {
			if !looksLikeEvent(r) {
				continue
			}
			all = append(all, domain.Event{
				Name:        orDefault(r.Title, "Unknown Event"),
				Description: truncate(r.Snippet, descriptionLimit),
				Date:        extractDate(r.Snippet),
				Website:     r.Link,
				LinkType:    linkType(r.Link),
				LinkText:    linkText(r.Link),
				Category:    q.category,
				Icon:        q.icon,
			})
		}
	}

	if len(all) > a.eventsCap {
		all = all[:a.eventsCap]
	}
	a.log.Info().Int("count", len(all)).Msg("live events retrieved")
	return all, nil
}

// searchMonth renders the departure date's "Month Year"; unparseable input
// falls back to the raw string so the query still runs.
func searchMonth(departureDate string) string {
	t, err := time.Parse("2006-01-02", departureDate)
	if err != nil {
		return departureDate
	}
	return t.Format("January 2006")
}

func looksLikeEvent(r organicResult) bool {
	haystack := strings.ToLower(r.Title + " " + r.Snippet)
	for _, kw := range eventKeywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

func extractDate(snippet string) string {
	for _, p := range datePatterns {
		if m := p.FindString(snippet); m != "" {
			return m
		}
	}
	return "Date TBA"
}

func linkType(link string) string {
	l := strings.ToLower(link)
	for _, h := range bookingHosts {
		if strings.Contains(l, h) {
			return "booking"
		}
	}
	for _, h := range socialHosts {
		if strings.Contains(l, h) {
			return "social"
		}
	}
	return "info"
}

func linkText(link string) string {
	switch linkType(link) {
	case "booking":
		return "Buy Tickets"
	case "social":
		return "View Event Details"
	default:
		return "Learn More"
	}
}

// truncate shortens s to limit runes so multi-byte snippets never get cut
// mid-character.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
