// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ludora/internal/platform/cache"
)

/*
TestStore_HitWithinTTL verifies that a second call inside the TTL window
returns the cached value without recomputing.
*/
func TestStore_HitWithinTTL(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	var calls atomic.Int32
	compute := func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "value", nil
	}

	first, err := cache.GetOrCompute(ctx, store, "k", []string{cache.TagCategories}, time.Minute, compute)
	require.NoError(t, err)

	second, err := cache.GetOrCompute(ctx, store, "k", []string{cache.TagCategories}, time.Minute, compute)
	require.NoError(t, err)

	assert.Equal(t, "value", first)
	assert.Equal(t, second, first)
	assert.Equal(t, int32(1), calls.Load())
}

/*
TestStore_ExpiredEntryRecomputes verifies that an entry older than its TTL is
treated as a miss.
*/
func TestStore_ExpiredEntryRecomputes(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	var calls atomic.Int32
	compute := func(ctx context.Context) (int, error) {
		return int(calls.Add(1)), nil
	}

	first, err := cache.GetOrCompute(ctx, store, "k", nil, time.Nanosecond, compute)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	// The nanosecond TTL has long elapsed by the next call.
	time.Sleep(time.Millisecond)

	second, err := cache.GetOrCompute(ctx, store, "k", nil, time.Nanosecond, compute)
	require.NoError(t, err)
	assert.Equal(t, 2, second)
	assert.Equal(t, int32(2), calls.Load())
}

/*
TestStore_ExpiredEntryEvicted verifies that a lookup hitting an expired entry
removes it from the store instead of leaving it to linger, so one-off keys do
not accumulate for the lifetime of the process.
*/
func TestStore_ExpiredEntryEvicted(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	_, err := cache.GetOrCompute(ctx, store, "search::q=once", []string{cache.TagGames}, time.Nanosecond, func(ctx context.Context) (string, error) {
		return "results", nil
	})
	require.NoError(t, err)
	require.Equal(t, 1, store.Len())

	time.Sleep(time.Millisecond)

	// The recompute fails, so nothing is republished. The expired entry must
	// be gone regardless.
	upstreamDown := errors.New("connection refused")
	_, err = cache.GetOrCompute(ctx, store, "search::q=once", []string{cache.TagGames}, time.Nanosecond, func(ctx context.Context) (string, error) {
		return "", upstreamDown
	})
	require.ErrorIs(t, err, upstreamDown)
	assert.Equal(t, 0, store.Len())
}

/*
TestStore_InvalidateForcesMiss verifies that busting a tag discards its
entries immediately, regardless of remaining TTL, and leaves other tags
untouched.
*/
func TestStore_InvalidateForcesMiss(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	var categoryCalls, gameCalls atomic.Int32

	fetchCategories := func(ctx context.Context) (string, error) {
		categoryCalls.Add(1)
		return "categories", nil
	}
	fetchGames := func(ctx context.Context) (string, error) {
		gameCalls.Add(1)
		return "games", nil
	}

	_, err := cache.GetOrCompute(ctx, store, "categories.full", []string{cache.TagCategories}, time.Hour, fetchCategories)
	require.NoError(t, err)
	_, err = cache.GetOrCompute(ctx, store, "games.list", []string{cache.TagGames, cache.TagCategories}, time.Hour, fetchGames)
	require.NoError(t, err)

	// Busting categories drops both entries: the listing embeds category
	// names, so it registered under the categories tag too.
	store.Invalidate(cache.TagCategories)
	assert.Equal(t, 0, store.Len())

	_, err = cache.GetOrCompute(ctx, store, "categories.full", []string{cache.TagCategories}, time.Hour, fetchCategories)
	require.NoError(t, err)
	_, err = cache.GetOrCompute(ctx, store, "games.list", []string{cache.TagGames, cache.TagCategories}, time.Hour, fetchGames)
	require.NoError(t, err)

	assert.Equal(t, int32(2), categoryCalls.Load())
	assert.Equal(t, int32(2), gameCalls.Load())
}

/*
TestStore_InvalidateOtherTagIsNoop verifies tag isolation and idempotence.
*/
func TestStore_InvalidateOtherTagIsNoop(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	var calls atomic.Int32
	_, err := cache.GetOrCompute(ctx, store, "tags.full", []string{cache.TagTags}, time.Hour, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "tags", nil
	})
	require.NoError(t, err)

	store.Invalidate(cache.TagGames)
	store.Invalidate(cache.TagGames) // idempotent

	_, err = cache.GetOrCompute(ctx, store, "tags.full", []string{cache.TagTags}, time.Hour, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "tags", nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load(), "entry under an unrelated tag must survive")
}

/*
TestStore_InvalidateDuringFlight verifies that an invalidation racing an
in-flight computation wins: the computation's result, read before the write
that triggered the bust, must not be stored, so the next read recomputes.
*/
func TestStore_InvalidateDuringFlight(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	flightDone := make(chan struct{})

	// A slow read captures the pre-mutation name while a rename lands.
	go func() {
		defer close(flightDone)
		value, err := cache.GetOrCompute(ctx, store, "categories.base", []string{cache.TagCategories}, time.Hour, func(ctx context.Context) (string, error) {
			close(started)
			<-release
			return "old-name", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "old-name", value, "waiters still receive the flight's result")
	}()

	<-started
	store.Invalidate(cache.TagCategories)
	close(release)
	<-flightDone

	// The stale result must not have been published.
	assert.Equal(t, 0, store.Len())

	var calls atomic.Int32
	value, err := cache.GetOrCompute(ctx, store, "categories.base", []string{cache.TagCategories}, time.Hour, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "new-name", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "new-name", value)
	assert.Equal(t, int32(1), calls.Load(), "read after the bust must recompute")
}

/*
TestStore_SingleFlight verifies that N concurrent callers for one cold key
share exactly one computation and all receive the same result.
*/
func TestStore_SingleFlight(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	const callers = 50

	var calls atomic.Int32
	release := make(chan struct{})

	compute := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release // hold every caller in one flight
		return "shared", nil
	}

	var wg sync.WaitGroup
	results := make([]string, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.GetOrCompute(ctx, store, "cold", nil, time.Minute, compute)
		}(i)
	}

	// Give every goroutine a chance to join the flight before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "shared", results[i])
	}
}

/*
TestStore_FailureNotCached verifies that a compute error reaches the caller,
is never stored, and the next call retries from scratch.
*/
func TestStore_FailureNotCached(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	upstreamDown := errors.New("connection refused")

	var calls atomic.Int32
	_, err := cache.GetOrCompute(ctx, store, "k", nil, time.Minute, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "", upstreamDown
	})
	require.ErrorIs(t, err, upstreamDown)
	assert.Equal(t, 0, store.Len())

	// Recovery: the next call computes again and succeeds.
	value, err := cache.GetOrCompute(ctx, store, "k", nil, time.Minute, func(ctx context.Context) (string, error) {
		calls.Add(1)
		return "recovered", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", value)
	assert.Equal(t, int32(2), calls.Load())
}

/*
TestStore_DifferentKeysDoNotBlock verifies that a slow computation for one
key does not serialize computations for other keys.
*/
func TestStore_DifferentKeysDoNotBlock(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	slowStarted := make(chan struct{})
	release := make(chan struct{})

	go func() {
		_, _ = cache.GetOrCompute(ctx, store, "slow", nil, time.Minute, func(ctx context.Context) (string, error) {
			close(slowStarted)
			<-release
			return "slow", nil
		})
	}()

	<-slowStarted

	done := make(chan struct{})
	go func() {
		defer close(done)
		value, err := cache.GetOrCompute(ctx, store, "fast", nil, time.Minute, func(ctx context.Context) (string, error) {
			return "fast", nil
		})
		assert.NoError(t, err)
		assert.Equal(t, "fast", value)
	}()

	select {
	case <-done:
		// fast key completed while slow was still in flight
	case <-time.After(2 * time.Second):
		t.Fatal("computation for an independent key was blocked")
	}
	close(release)
}

/*
TestStore_Flush verifies that teardown drops every entry.
*/
func TestStore_Flush(t *testing.T) {
	store := cache.NewStore(nil)
	ctx := context.Background()

	for _, key := range []string{"a", "b", "c"} {
		_, err := cache.GetOrCompute(ctx, store, key, []string{cache.TagGames}, time.Hour, func(ctx context.Context) (string, error) {
			return key, nil
		})
		require.NoError(t, err)
	}
	require.Equal(t, 3, store.Len())

	store.Flush()
	assert.Equal(t, 0, store.Len())
}

/*
TestInvalidator_KnownTags sanity-checks the tag enumeration exposed to the
write layer.
*/
func TestInvalidator_KnownTags(t *testing.T) {
	assert.True(t, cache.IsKnownTag("categories"))
	assert.True(t, cache.IsKnownTag("games"))
	assert.False(t, cache.IsKnownTag("users"))

	store := cache.NewStore(nil)
	inv := cache.NewInvalidator(store, nil)

	_, err := cache.GetOrCompute(context.Background(), store, "k", []string{cache.TagLanguages}, time.Hour, func(ctx context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)

	inv.InvalidateNavigation()
	assert.Equal(t, 0, store.Len())
}
