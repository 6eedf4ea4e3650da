// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"

	"github.com/taibuivan/ludora/internal/platform/apperr"
)

// Service answers tag questions from the cached dataset.
type Service struct {
	cache *Cache
}

// NewService constructs a new tag [Service].
func NewService(cache *Cache) *Service {
	return &Service{cache: cache}
}

// List returns every enabled tag for the locale.
func (service *Service) List(ctx context.Context, locale string) ([]View, error) {
	return service.cache.Resolved(ctx, locale)
}

// Get resolves a tag by slug. Returns apperr.NotFound when no enabled tag
// has the slug.
func (service *Service) Get(ctx context.Context, locale, slug string) (*View, error) {
	views, err := service.cache.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}

	view, ok := BySlug(views, slug)
	if !ok {
		return nil, apperr.NotFound("Tag")
	}
	return &view, nil
}

// Popular returns the most-used tags.
func (service *Service) Popular(ctx context.Context, locale string, limit int) ([]View, error) {
	views, err := service.cache.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}
	return TopByGameCount(views, limit), nil
}

// ListAdmin returns all tags, disabled ones included.
func (service *Service) ListAdmin(ctx context.Context, locale string) ([]View, error) {
	return service.cache.ResolvedAdmin(ctx, locale)
}
