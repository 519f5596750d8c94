package cache

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trip-planner/travel-plan-aggregation-service/internal/infrastructure/timeutil"
)

func newTestStore() (*Store, *timeutil.MockClock) {
	clock := timeutil.NewMockClock(time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	return New(clock), clock
}

func TestKey(t *testing.T) {
	t.Run("short keys stay readable", func(t *testing.T) {
		key := Key("flights", "DUR", "JNB", "2026-09-10")
		assert.Equal(t, "flights:DUR|JNB|2026-09-10", key)
	})

	t.Run("long keys are hashed", func(t *testing.T) {
		long := strings.Repeat("x", 200)
		key := Key("places", long)

		assert.True(t, strings.HasPrefix(key, "places:"))
		// sha256 hex digest after the adapter prefix
		assert.Len(t, key, len("places:")+64)
	})

	t.Run("distinct parts give distinct keys", func(t *testing.T) {
		assert.NotEqual(t,
			Key("flights", "DUR", "JNB"),
			Key("flights", "DUR", "CPT"),
		)
	})
}

func TestStore_SetGet(t *testing.T) {
	store, clock := newTestStore()

	store.Set("k", "value", 5*time.Minute)

	v, ok := store.Get("k")
	require.True(t, ok)
	assert.Equal(t, "value", v)

	// Fresh right up to the TTL boundary
	clock.Advance(5*time.Minute - time.Second)
	_, ok = store.Get("k")
	assert.True(t, ok)

	// Stale at the boundary
	clock.Advance(time.Second)
	_, ok = store.Get("k")
	assert.False(t, ok)
}

func TestStore_LazyEviction(t *testing.T) {
	store, clock := newTestStore()

	store.Set("k", 1, time.Minute)
	assert.Equal(t, 1, store.Len())

	// Expiry alone does not evict
	clock.Advance(2 * time.Minute)
	assert.Equal(t, 1, store.Len())

	// The stale read does
	_, ok := store.Get("k")
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestStore_MissingKey(t *testing.T) {
	store, _ := newTestStore()

	_, ok := store.Get("never-set")
	assert.False(t, ok)
}

func TestGetOrCompute(t *testing.T) {
	store, clock := newTestStore()

	calls := 0
	fn := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	v, hit, err := GetOrCompute(store, "k", 5*time.Minute, fn)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Equal(t, 1, calls)

	// Second call within TTL hits the cache
	v, hit, err = GetOrCompute(store, "k", 5*time.Minute, fn)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a", "b"}, v)
	assert.Equal(t, 1, calls)

	// After expiry the source is consulted again
	clock.Advance(6 * time.Minute)
	_, hit, err = GetOrCompute(store, "k", 5*time.Minute, fn)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
}

func TestGetOrCompute_ErrorNotCached(t *testing.T) {
	store, _ := newTestStore()

	calls := 0
	fn := func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("upstream down")
		}
		return 42, nil
	}

	_, hit, err := GetOrCompute(store, "k", time.Minute, fn)
	require.Error(t, err)
	assert.False(t, hit)

	v, hit, err := GetOrCompute(store, "k", time.Minute, fn)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls)
}
