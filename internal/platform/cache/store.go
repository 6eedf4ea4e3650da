// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cache implements the tag-invalidated, single-flight cache store that
every read path in the catalog rides on.

Architecture:

  - Store: a process-local key → entry map with per-entry TTL, guarded by a
    single mutex. Entry values are immutable once published; readers never
    need a lock to use a value after obtaining it.
  - Single flight: concurrent callers for the same cold key share exactly one
    computation (golang.org/x/sync/singleflight). Failed computations are
    never cached, so the next caller retries from scratch.
  - Tags: every entry registers under one or more invalidation tags at write
    time. Invalidate(tag) discards all entries under the tag, regardless of
    remaining TTL. No partial invalidation within a tag is supported.

The Store is constructed once in main.go and injected into the reference and
query cache layers. It holds no configuration of its own: keys, tags, and
TTLs are chosen by callers per entry.
*/
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ComputeFn produces the value for a cache key on a miss.
//
// It must honor ctx cancellation: repository-backed computations are expected
// to be bounded by a caller-supplied timeout.
type ComputeFn func(ctx context.Context) (any, error)

// entry is a single cached value. Immutable after insertion.
type entry struct {
	value     any
	createdAt time.Time
	ttl       time.Duration
	tags      []string
}

// expired reports whether the entry is past its TTL at the given instant.
func (e *entry) expired(now time.Time) bool {
	return now.Sub(e.createdAt) >= e.ttl
}

// Store is the process-wide get-or-compute cache.
//
// # Concurrency
//
// The internal maps are the only shared mutable state; all mutation (insert,
// evict, invalidate) happens under mu. Computations never run while holding
// mu — the single-flight group tracks in-progress keys so that slow
// repository calls for one key cannot block lookups for other keys.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*entry
	byTag   map[string]map[string]struct{}

	// tagGen counts invalidations per tag, flushGen counts flushes. A
	// computation snapshots them when it starts; publish refuses the result
	// if any generation moved, so a bust overlapping a flight always wins.
	tagGen   map[string]uint64
	flushGen uint64

	flight singleflight.Group
	log    *slog.Logger

	// now is a clock seam for tests. Defaults to time.Now.
	now func() time.Time
}

// NewStore constructs an empty Store.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		entries: make(map[string]*entry),
		byTag:   make(map[string]map[string]struct{}),
		tagGen:  make(map[string]uint64),
		log:     logger,
		now:     time.Now,
	}
}

// GetOrCompute returns the cached value for key if present and fresh,
// otherwise computes it via compute, stores it under the given tags with the
// given TTL, and returns it.
//
// # Guarantees
//
//   - At most one compute runs per key at a time; concurrent callers for the
//     same key await the in-flight computation and share its result.
//   - A compute error is propagated to every waiter and nothing is stored,
//     so the next call for the key starts a fresh computation.
//   - Callers for different keys never block each other.
//   - An Invalidate that overlaps an in-flight computation wins: the flight
//     still returns its result to the callers already waiting on it, but the
//     result is not stored, so the next read is a guaranteed miss.
func (store *Store) GetOrCompute(ctx context.Context, key string, tags []string, ttl time.Duration, compute ComputeFn) (any, error) {
	if value, ok := store.lookup(key); ok {
		return value, nil
	}

	value, err, _ := store.flight.Do(key, func() (any, error) {
		// Re-check under the flight: a previous flight for this key may have
		// published a value between our lookup and joining the group.
		if value, ok := store.lookup(key); ok {
			return value, nil
		}

		// Snapshot the invalidation generations before computing. If one of
		// the entry's tags is busted while the repository call runs, the
		// result is stale by definition and publish must drop it.
		gens, flushGen := store.generations(tags)

		value, err := compute(ctx)
		if err != nil {
			// Never cache failures.
			return nil, err
		}

		store.publish(key, value, tags, ttl, gens, flushGen)
		return value, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// lookup returns the value for key if a fresh entry exists.
//
// An expired entry is evicted on the spot, so that keys which are never
// recomputed (one-off search terms, abandoned filters) do not accumulate in
// the maps for the lifetime of the process. The fresh-hit path stays on the
// read lock.
func (store *Store) lookup(key string) (any, bool) {
	store.mu.RLock()
	e, ok := store.entries[key]
	if ok && !e.expired(store.now()) {
		value := e.value
		store.mu.RUnlock()
		return value, true
	}
	store.mu.RUnlock()

	if !ok {
		return nil, false
	}

	// Evict the expired entry. Re-check under the write lock: another caller
	// may have evicted or republished the key in between.
	store.mu.Lock()
	defer store.mu.Unlock()

	e, ok = store.entries[key]
	if ok && e.expired(store.now()) {
		store.unregisterLocked(key, e)
		delete(store.entries, key)
	}
	return nil, false
}

// generations snapshots the current invalidation generation for each tag,
// plus the flush generation. Taken by a flight before it computes.
func (store *Store) generations(tags []string) ([]uint64, uint64) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	gens := make([]uint64, len(tags))
	for i, tag := range tags {
		gens[i] = store.tagGen[tag]
	}
	return gens, store.flushGen
}

// publish inserts a freshly computed entry and registers its tags.
//
// gens and flushGen are the generations snapshotted before the computation
// started. If any of them has advanced since, an Invalidate or Flush raced
// the computation and the result is dropped: storing it would resurrect data
// the bust was meant to discard.
func (store *Store) publish(key string, value any, tags []string, ttl time.Duration, gens []uint64, flushGen uint64) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if flushGen != store.flushGen {
		return
	}
	for i, tag := range tags {
		if gens[i] != store.tagGen[tag] {
			store.log.Debug("cache_publish_dropped",
				slog.String("key", key),
				slog.String("tag", tag),
			)
			return
		}
	}

	store.entries[key] = &entry{
		value:     value,
		createdAt: store.now(),
		ttl:       ttl,
		tags:      tags,
	}

	for _, tag := range tags {
		keys, ok := store.byTag[tag]
		if !ok {
			keys = make(map[string]struct{})
			store.byTag[tag] = keys
		}
		keys[key] = struct{}{}
	}
}

// Invalidate discards every entry registered under any of the given tags.
//
// It is idempotent and has no effect on entries under other tags. Entries are
// removed immediately: the next read for an affected key is a guaranteed
// miss, even if its TTL had not expired.
func (store *Store) Invalidate(tags ...string) {
	store.mu.Lock()
	defer store.mu.Unlock()

	dropped := 0
	for _, tag := range tags {
		// Bump the generation even when the tag has no entries yet: an
		// in-flight computation for the tag must not publish its result.
		store.tagGen[tag]++
		for key := range store.byTag[tag] {
			if e, ok := store.entries[key]; ok {
				store.unregisterLocked(key, e)
				delete(store.entries, key)
				dropped++
			}
		}
		delete(store.byTag, tag)
	}

	if dropped > 0 {
		store.log.Info("cache_invalidated",
			slog.Any("tags", tags),
			slog.Int("entries_dropped", dropped),
		)
	}
}

// unregisterLocked removes key from every tag index entry e belongs to.
// Caller must hold mu.
func (store *Store) unregisterLocked(key string, e *entry) {
	for _, tag := range e.tags {
		if keys, ok := store.byTag[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(store.byTag, tag)
			}
		}
	}
}

// Flush discards all entries. Called on process shutdown.
func (store *Store) Flush() {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.entries = make(map[string]*entry)
	store.byTag = make(map[string]map[string]struct{})
	store.flushGen++
}

// Len returns the number of live entries, expired ones included.
func (store *Store) Len() int {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return len(store.entries)
}

// GetOrCompute is the type-safe wrapper around [Store.GetOrCompute].
//
// The stored value for a key must always be produced with the same T;
// mixing types under one key is a programming error.
func GetOrCompute[T any](ctx context.Context, store *Store, key string, tags []string, ttl time.Duration, compute func(ctx context.Context) (T, error)) (T, error) {
	value, err := store.GetOrCompute(ctx, key, tags, ttl, func(ctx context.Context) (any, error) {
		return compute(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return value.(T), nil
}
