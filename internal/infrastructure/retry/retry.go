// Package retry provides a small retry helper with exponential backoff.
//
// The aggregation adapters never retry (an upstream failure falls through to
// the next source instead); this package exists for the opaque
// text-generation call, which has no fallback source other than canned text.
package retry

import (
	"context"
	"errors"
	"math/rand"
	"time"
)

// Config holds the retry options.
type Config struct {
	// MaxAttempts is the total number of attempts, including the first.
	MaxAttempts int

	// InitialDelay is the delay before the first retry.
	InitialDelay time.Duration

	// MaxDelay caps the delay between retries.
	MaxDelay time.Duration

	// Multiplier grows the delay after each retry.
	Multiplier float64

	// JitterFactor adds up to this fraction of random jitter to each delay.
	JitterFactor float64

	// RetryIf decides whether an error is retryable. Nil retries all errors.
	RetryIf func(error) bool
}

// TextGenConfig is tuned for the text-generation service: one retry with a
// short delay, since the caller has a deterministic fallback anyway.
var TextGenConfig = Config{
	MaxAttempts:  2,
	InitialDelay: 500 * time.Millisecond,
	MaxDelay:     2 * time.Second,
	Multiplier:   2.0,
	JitterFactor: 0.1,
}

// DoWithResult runs fn until it succeeds, attempts are exhausted, or ctx is
// done. It returns the last result and error.
func DoWithResult[T any](ctx context.Context, fn func() (T, error), cfg Config) (T, error) {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}

	var result T
	var lastErr error
	delay := cfg.InitialDelay

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result, lastErr = fn()
		if lastErr == nil {
			return result, nil
		}
		if cfg.RetryIf != nil && !cfg.RetryIf(lastErr) {
			return result, lastErr
		}
		if attempt == cfg.MaxAttempts {
			break
		}

		sleep := delay + time.Duration(rand.Float64()*float64(delay)*cfg.JitterFactor)
		if sleep > cfg.MaxDelay {
			sleep = cfg.MaxDelay
		}
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		case <-time.After(sleep):
		}
		delay = time.Duration(float64(delay) * cfg.Multiplier)
	}

	return result, lastErr
}

// Permanent wraps an error to mark it non-retryable.
type Permanent struct {
	Err error
}

func (p *Permanent) Error() string {
	if p.Err == nil {
		return "permanent error"
	}
	return p.Err.Error()
}

func (p *Permanent) Unwrap() error {
	return p.Err
}

// NewPermanent creates a permanent (non-retryable) error.
func NewPermanent(err error) error {
	if err == nil {
		return nil
	}
	return &Permanent{Err: err}
}

// SkipPermanent is a RetryIf predicate that stops on permanent errors.
func SkipPermanent(err error) bool {
	var p *Permanent
	return !errors.As(err, &p)
}
