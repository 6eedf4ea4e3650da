// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/ludora/internal/platform/constants"
)

// Redis keys for play tracking, from the shared key taxonomy.
const (
	playCountKeyPrefix = constants.RedisPrefixPlayCount
	playDirtyKey       = constants.RedisKeyPlayDirty
)

// Tracker accumulates play counts in Redis and flushes them to Postgres in
// the background.
//
// Plays are the one write path that does not bust the games cache: a play
// changes no content, and count drift is already bounded by the listing
// TTLs. Losing a flush interval of counts on a crash is acceptable.
type Tracker struct {
	client   *redis.Client
	repo     Repository
	interval time.Duration
	log      *slog.Logger

	stop chan struct{}
	done chan struct{}
}

// NewTracker constructs a play [Tracker]. Call [Tracker.Start] to begin the
// background flush loop.
func NewTracker(client *redis.Client, repo Repository, interval time.Duration, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{
		client:   client,
		repo:     repo,
		interval: interval,
		log:      logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

/*
Record counts one play for the given slug.

Description: A single INCR plus a dirty-set insert; no database access on the
request path. The slug is not validated here, unknown slugs are dropped at
flush time by the repository.

Parameters:
  - ctx: context.Context
  - slug: string

Returns:
  - error: Redis failures
*/
func (tracker *Tracker) Record(ctx context.Context, slug string) error {
	pipe := tracker.client.Pipeline()
	pipe.Incr(ctx, playCountKeyPrefix+slug)
	pipe.SAdd(ctx, playDirtyKey, slug)
	_, err := pipe.Exec(ctx)
	return err
}

// Start launches the background flush loop. Stop with [Tracker.Stop].
func (tracker *Tracker) Start() {
	go func() {
		defer close(tracker.done)

		ticker := time.NewTicker(tracker.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := tracker.Flush(context.Background()); err != nil {
					tracker.log.Error("play_flush_failed", slog.Any("error", err))
				}
			case <-tracker.stop:
				return
			}
		}
	}()
}

// Stop terminates the flush loop and performs one final flush so counted
// plays survive a clean shutdown.
func (tracker *Tracker) Stop(ctx context.Context) error {
	close(tracker.stop)
	<-tracker.done
	return tracker.Flush(ctx)
}

/*
Flush moves accumulated counts from Redis into Postgres.

Description: Counters are read with GETDEL after the dirty set is claimed, so
plays recorded during the flush land in the next interval rather than being
lost. A database failure re-queues the claimed slugs.

Parameters:
  - ctx: context.Context

Returns:
  - error: Redis or repository failures
*/
func (tracker *Tracker) Flush(ctx context.Context) error {
	slugs, err := tracker.client.SPopN(ctx, playDirtyKey, 1024).Result()
	if err != nil && err != redis.Nil {
		return err
	}
	if len(slugs) == 0 {
		return nil
	}

	deltas := make(map[string]int64, len(slugs))
	for _, slug := range slugs {
		count, err := tracker.client.GetDel(ctx, playCountKeyPrefix+slug).Int64()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return err
		}
		if count > 0 {
			deltas[slug] = count
		}
	}
	if len(deltas) == 0 {
		return nil
	}

	if err := tracker.repo.AddPlays(ctx, deltas); err != nil {
		// Put the counts back so the next interval retries them.
		for slug, delta := range deltas {
			tracker.client.IncrBy(ctx, playCountKeyPrefix+slug, delta)
			tracker.client.SAdd(ctx, playDirtyKey, slug)
		}
		return err
	}

	tracker.log.Info("plays_flushed",
		slog.Int("games", len(deltas)),
	)
	return nil
}
