// Package cache provides the short-lived in-memory result cache that shields
// paid adapter calls from redundant re-invocation within one user session.
//
// The cache is single-process and keyed by the full tuple of adapter name plus
// all adapter input parameters. Expiry is checked lazily at read time; there
// is no background eviction.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/timeutil"
)

// DefaultTTL is the observed production TTL for adapter results.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value    any
	storedAt time.Time
	ttl      time.Duration
}

// Store is a mutex-guarded in-memory TTL cache. The Clock is injectable so
// tests can advance time without sleeping.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   timeutil.Clock
}

// New creates a Store using the given clock. Pass timeutil.NewRealClock()
// in production.
func New(clock timeutil.Clock) *Store {
	return &Store{
		entries: make(map[string]entry),
		clock:   clock,
	}
}

// Key builds a cache key from an adapter name and its input parameters.
// Long parameter tails are hashed so keys stay bounded.
func Key(adapter string, parts ...string) string {
	joined := strings.Join(parts, "|")
	if len(joined) <= 96 {
		return adapter + ":" + joined
	}
	sum := sha256.Sum256([]byte(joined))
	return adapter + ":" + hex.EncodeToString(sum[:])
}

// get returns the stored value when present and fresh.
func (s *Store) get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.clock.Now().Sub(e.storedAt) >= e.ttl {
		// Stale entries are treated as absent; they are overwritten on the
		// next successful compute rather than proactively evicted.
		delete(s.entries, key)
		return nil, false
	}
	return e.value, true
}

// set stores a value with the given TTL.
func (s *Store) set(key string, value any, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{value: value, storedAt: s.clock.Now(), ttl: ttl}
}

// Get returns the stored value when present and fresh.
func (s *Store) Get(key string) (any, bool) { return s.get(key) }

// Set stores a value with the given TTL.
func (s *Store) Set(key string, value any, ttl time.Duration) { s.set(key, value, ttl) }

// Len returns the number of entries currently stored, stale ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// GetOrCompute memoizes fn by key for ttl. Only successful computes are
// cached; an error passes through uncached so the next call retries the
// source. The second return reports a cache hit.
func GetOrCompute[T any](s *Store, key string, ttl time.Duration, fn func() (T, error)) (T, bool, error) {
	if v, ok := s.get(key); ok {
		if typed, ok := v.(T); ok {
			return typed, true, nil
		}
	}

	value, err := fn()
	if err != nil {
		return value, false, err
	}
	s.set(key, value, ttl)
	return value, false, nil
}
