// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"context"

	"github.com/taibuivan/ludora/internal/platform/apperr"
)

// # Service Layer

// Service answers category questions from the cached dataset.
//
// Every method resolves for an explicit locale; nothing here reads request
// state or touches storage directly.
type Service struct {
	cache *Cache
}

// NewService constructs a new category [Service].
func NewService(cache *Cache) *Service {
	return &Service{cache: cache}
}

/*
Tree returns the two-level category navigation tree.

Parameters:
  - ctx: context.Context
  - locale: string

Returns:
  - []Node: Top-level categories with children attached
  - error: Cold-cache repository failures
*/
func (service *Service) Tree(ctx context.Context, locale string) ([]Node, error) {
	views, err := service.cache.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}
	return Tree(views), nil
}

/*
List returns every enabled category as a flat slice.

Parameters:
  - ctx: context.Context
  - locale: string

Returns:
  - []View: Categories in sort order
  - error: Cold-cache repository failures
*/
func (service *Service) List(ctx context.Context, locale string) ([]View, error) {
	return service.cache.Resolved(ctx, locale)
}

/*
Get resolves a category by slug, with its direct children attached.

Parameters:
  - ctx: context.Context
  - locale: string
  - slug: string

Returns:
  - *Node: Category and children
  - error: apperr.NotFound when no enabled category has the slug
*/
func (service *Service) Get(ctx context.Context, locale, slug string) (*Node, error) {
	views, err := service.cache.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}

	view, ok := BySlug(views, slug)
	if !ok {
		return nil, apperr.NotFound("Category")
	}

	return &Node{View: view, Children: wrap(SubsOf(views, view.ID))}, nil
}

/*
Popular returns the most-populated categories.

Parameters:
  - ctx: context.Context
  - locale: string
  - limit: int

Returns:
  - []View: Categories ranked by game count
  - error: Cold-cache repository failures
*/
func (service *Service) Popular(ctx context.Context, locale string, limit int) ([]View, error) {
	views, err := service.cache.Resolved(ctx, locale)
	if err != nil {
		return nil, err
	}
	return TopByGameCount(views, limit), nil
}

/*
ListAdmin returns all categories, disabled ones included.

Parameters:
  - ctx: context.Context
  - locale: string

Returns:
  - []View: All categories in sort order
  - error: Cold-cache repository failures
*/
func (service *Service) ListAdmin(ctx context.Context, locale string) ([]View, error) {
	return service.cache.ResolvedAdmin(ctx, locale)
}
