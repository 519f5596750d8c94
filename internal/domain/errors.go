package domain

import "errors"

// Sentinel errors used across the service. Handlers map these to HTTP
// status codes via errors.Is.
var (
	// ErrInvalidRequest indicates a request failed domain validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrRateLimited indicates an upstream returned a 429-class response.
	// The secondary adapter uses this to abort its remaining shape attempts.
	ErrRateLimited = errors.New("rate limited by upstream")

	// ErrNotConfigured indicates an adapter has no credentials and must not
	// attempt the network.
	ErrNotConfigured = errors.New("adapter not configured")

	// ErrEmptyResult indicates an adapter completed but produced no offers.
	ErrEmptyResult = errors.New("empty result")

	// ErrSessionNotFound indicates an unknown session ID.
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidTransition indicates a session operation not allowed in the
	// session's current state.
	ErrInvalidTransition = errors.New("invalid session transition")
)
