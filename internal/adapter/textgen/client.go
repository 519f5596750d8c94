// Package textgen calls an opaque text-generation service to synthesize the
// destination research notes and the day-by-day itinerary. One retry is
// attempted; after that the caller receives an error and is expected to use
// its deterministic fallback text.
package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/domain"
	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/retry"
)

// DefaultBaseURL is the production inference host.
const DefaultBaseURL = "https://api-inference.huggingface.co/models/mistralai/Mistral-7B-Instruct-v0.2"

const maxNewTokens = 1500

// Client implements domain.TextGenerator over a bearer-key HTTP API.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a Client. An empty apiKey makes Generate fail immediately
// with domain.ErrNotConfigured so the caller can fall back without waiting on
// the network.
func NewClient(apiKey, baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("adapter", "textgen").Logger(),
	}
}

// Generate implements domain.TextGenerator.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", domain.ErrNotConfigured
	}

	text, err := retry.DoWithResult(ctx, func() (string, error) {
		return c.generateOnce(ctx, prompt)
	}, withSkipPermanent(retry.TextGenConfig))
	if err != nil {
		c.log.Warn().Err(err).Msg("text generation failed")
		return "", err
	}
	return text, nil
}

func withSkipPermanent(cfg retry.Config) retry.Config {
	cfg.RetryIf = retry.SkipPermanent
	return cfg
}

func (c *Client) generateOnce(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"inputs": prompt,
		"parameters": map[string]any{
			"max_new_tokens":   maxNewTokens,
			"return_full_text": false,
		},
	})
	if err != nil {
		return "", retry.NewPermanent(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", retry.NewPermanent(err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", retry.NewPermanent(fmt.Errorf("auth rejected (%d)", resp.StatusCode))
	default:
		return "", fmt.Errorf("inference status %d: %s", resp.StatusCode, string(body))
	}

	var results []struct {
		GeneratedText string `json:"generated_text"`
	}
	if err := json.Unmarshal(body, &results); err != nil {
		return "", retry.NewPermanent(fmt.Errorf("decode inference response: %w", err))
	}
	if len(results) == 0 || results[0].GeneratedText == "" {
		return "", fmt.Errorf("empty generation result")
	}
	return results[0].GeneratedText, nil
}
