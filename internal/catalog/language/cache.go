// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package language provides the supported-language dataset. Languages change
// on the order of deployments, not requests, so the whole dataset lives in a
// single long-lived cache entry.
package language

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/ludora/internal/platform/cache"
	"github.com/taibuivan/ludora/pkg/slice"
)

const keyAll = "languages.all"

// Cache is the cached read path for the language dataset and the sole caller
// of [Repository].
type Cache struct {
	store *cache.Store
	repo  Repository
	ttl   time.Duration
	log   *slog.Logger
}

// NewCache constructs the language [Cache].
func NewCache(store *cache.Store, repo Repository, ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{store: store, repo: repo, ttl: ttl, log: logger}
}

// All returns every language, enabled or not.
func (c *Cache) All(ctx context.Context) ([]*Language, error) {
	return cache.GetOrCompute(ctx, c.store, keyAll, []string{cache.TagLanguages}, c.ttl,
		func(ctx context.Context) ([]*Language, error) {
			return c.repo.ListLanguages(ctx)
		})
}

// Enabled returns the languages the public site can be served in.
func (c *Cache) Enabled(ctx context.Context) ([]*Language, error) {
	all, err := c.All(ctx)
	if err != nil {
		return nil, err
	}

	return slice.Filter(all, func(l *Language) bool { return l.IsEnabled }), nil
}

// Default returns the base language. When no row is flagged as default the
// first enabled language stands in, so a misconfigured dataset still serves.
func (c *Cache) Default(ctx context.Context) (*Language, error) {
	enabled, err := c.Enabled(ctx)
	if err != nil {
		return nil, err
	}

	for _, l := range enabled {
		if l.IsDefault {
			return l, nil
		}
	}
	if len(enabled) > 0 {
		return enabled[0], nil
	}
	return nil, nil
}

// IsSupported reports whether code is an enabled language.
func (c *Cache) IsSupported(ctx context.Context, code string) (bool, error) {
	enabled, err := c.Enabled(ctx)
	if err != nil {
		return false, err
	}

	for _, l := range enabled {
		if l.Code == code {
			return true, nil
		}
	}
	return false, nil
}
