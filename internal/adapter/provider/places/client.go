// Package places aggregates restaurant, attraction, and business-venue
// recommendations through a geocode, nearby-search, details pipeline. Every
// method degrades to a synthetic set templated from the location label, so
// callers always receive schema-identical results.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// DefaultBaseURL is the production maps API host.
const DefaultBaseURL = "https://maps.googleapis.com"

// Client is a thin maps API client covering the three calls the adapter needs.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a Client. An empty apiKey produces a client the adapter
// never calls; it serves synthetic data instead.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Configured reports whether an API key is present.
func (c *Client) Configured() bool { return c.apiKey != "" }

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type nearbyResult struct {
	PlaceID string   `json:"place_id"`
	Types   []string `json:"types"`
}

type placeDetails struct {
	Name             string  `json:"name"`
	FormattedAddress string  `json:"formatted_address"`
	PhoneNumber      string  `json:"formatted_phone_number"`
	Website          string  `json:"website"`
	Rating           float64 `json:"rating"`
	UserRatingsTotal int     `json:"user_ratings_total"`
	PriceLevel       *int    `json:"price_level"`
	URL              string  `json:"url"`
	OpeningHours     struct {
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps api status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// Geocode resolves a free-form location label to coordinates. A miss (no
// results) is an error so callers fall back uniformly.
func (c *Client) Geocode(ctx context.Context, location string) (latLng, error) {
	params := url.Values{}
	params.Set("address", location)

	var payload struct {
		Results []struct {
			Geometry struct {
				Location latLng `json:"location"`
			} `json:"geometry"`
		} `json:"results"`
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/maps/api/geocode/json", params, &payload); err != nil {
		return latLng{}, err
	}
	if len(payload.Results) == 0 {
		return latLng{}, fmt.Errorf("geocode: no results for %q", location)
	}
	return payload.Results[0].Geometry.Location, nil
}

type nearbyQuery struct {
	placeType string
	keyword   string
	radius    int
	minPrice  int
}

// Nearby runs a nearby search around coords.
func (c *Client) Nearby(ctx context.Context, coords latLng, q nearbyQuery) ([]nearbyResult, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", coords.Lat, coords.Lng))
	params.Set("radius", strconv.Itoa(q.radius))
	if q.placeType != "" {
		params.Set("type", q.placeType)
	}
	if q.keyword != "" {
		params.Set("keyword", q.keyword)
	}
	if q.minPrice > 0 {
		params.Set("minprice", strconv.Itoa(q.minPrice))
	}

	var payload struct {
		Results []nearbyResult `json:"results"`
	}
	if err := c.getJSON(ctx, "/maps/api/place/nearbysearch/json", params, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// Details fetches the detail record for one place id.
func (c *Client) Details(ctx context.Context, placeID string) (placeDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_address,formatted_phone_number,website,"+
		"rating,user_ratings_total,opening_hours,price_level,url")

	var payload struct {
		Result placeDetails `json:"result"`
	}
	if err := c.getJSON(ctx, "/maps/api/place/details/json", params, &payload); err != nil {
		return placeDetails{}, err
	}
	return payload.Result, nil
}
