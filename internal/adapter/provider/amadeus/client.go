// Package amadeus implements the primary flight-offer search adapter.
// It authenticates with OAuth2 client credentials and normalizes the
// provider's nested itinerary records into domain flight offers.
package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// DefaultBaseURL is the production API host.
const DefaultBaseURL = "https://api.amadeus.com"

// Client is a minimal Amadeus API client with token caching.
type Client struct {
	clientID     string
	clientSecret string
	baseURL      string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewClient creates a Client. An empty clientID or clientSecret produces a
// client whose calls fail with a configuration error (the adapter checks
// configuration before going to the network).
func NewClient(clientID, clientSecret, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		baseURL:      baseURL,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// Configured reports whether both credentials are present.
func (c *Client) Configured() bool {
	return c.clientID != "" && c.clientSecret != ""
}

// refreshToken fetches a new OAuth2 access token.
func (c *Client) refreshToken(ctx context.Context) error {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/v1/security/oauth2/token",
		strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token request failed (%d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parse token response: %w", err)
	}

	c.mu.Lock()
	c.accessToken = result.AccessToken
	// Refresh slightly before the server-side expiry.
	c.tokenExpiry = time.Now().Add(time.Duration(result.ExpiresIn-30) * time.Second)
	c.mu.Unlock()

	return nil
}

// token returns a valid access token, refreshing when expired.
func (c *Client) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	expired := time.Now().After(c.tokenExpiry)
	tok := c.accessToken
	c.mu.Unlock()

	if expired || tok == "" {
		if err := c.refreshToken(ctx); err != nil {
			return "", err
		}
		c.mu.Lock()
		tok = c.accessToken
		c.mu.Unlock()
	}
	return tok, nil
}

// get issues an authenticated GET and returns the response body.
// Non-2xx statuses are errors carrying the upstream body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	tok, err := c.token(ctx)
	if err != nil {
		return nil, fmt.Errorf("auth failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("amadeus error (%d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// FlightOffers queries the flight-offers-search endpoint for a round trip.
func (c *Client) FlightOffers(ctx context.Context, origin, destination, departDate, returnDate string, adults, max int) ([]byte, error) {
	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&returnDate=%s&adults=%d&max=%d&currencyCode=ZAR",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
		url.QueryEscape(departDate),
		url.QueryEscape(returnDate),
		adults,
		max,
	)
	return c.get(ctx, path)
}
