// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package admin provides the operational endpoints for the catalog: cache
invalidation and the disabled-included reference listings the CMS works
against.

The invalidation endpoint is the write layer's integration point. The CMS
calls it after committing a change, naming the datasets it touched; all
affected cache entries are discarded before the call returns, so the next
public read is a guaranteed miss.
*/
package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ludora/internal/catalog/category"
	"github.com/taibuivan/ludora/internal/catalog/tag"
	"github.com/taibuivan/ludora/internal/platform/cache"
	requestutil "github.com/taibuivan/ludora/internal/platform/request"
	"github.com/taibuivan/ludora/internal/platform/respond"
	"github.com/taibuivan/ludora/internal/platform/validate"
)

// Handler implements the admin HTTP layer.
type Handler struct {
	invalidator   *cache.Invalidator
	categories    *category.Service
	tags          *tag.Service
	defaultLocale string
}

// NewHandler constructs a new admin [Handler].
func NewHandler(invalidator *cache.Invalidator, categories *category.Service, tags *tag.Service, defaultLocale string) *Handler {
	return &Handler{
		invalidator:   invalidator,
		categories:    categories,
		tags:          tags,
		defaultLocale: defaultLocale,
	}
}

// Routes returns a [chi.Router] configured with the admin endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/cache/invalidate", handler.invalidate)
	router.Get("/categories", handler.listCategories)
	router.Get("/tags", handler.listTags)

	return router
}

// invalidateInput is the request body for POST /cache/invalidate.
type invalidateInput struct {
	Tags []string `json:"tags"`
}

/*
POST /api/v1/admin/cache/invalidate.

Description: Busts the named dataset tags. All-or-nothing per tag: every
entry registered under a named tag is gone when the response is written.

Request (Body):
  - tags: []string (one or more of: categories, tags, games, languages)

Response:
  - 204: No Content: Entries discarded
  - 400: ErrValidation: Empty list or unknown tag name
*/
func (handler *Handler) invalidate(writer http.ResponseWriter, request *http.Request) {
	var input invalidateInput

	// Decode request body
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Validate tag names before touching anything: a typo must not
	// silently no-op while the caller believes the cache is clean.
	var v validate.Validator
	v.Custom("tags", len(input.Tags) == 0, "At least one tag is required")
	for _, name := range input.Tags {
		v.OneOf("tags", name, cache.KnownTags...)
	}
	if err := v.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.invalidator.Invalidate(input.Tags...)

	respond.NoContent(writer)
}

/*
GET /api/v1/admin/categories.

Description: All categories, disabled ones included.

Request:
  - locale: string (query, optional)

Response:
  - 200: []category.View: Success
*/
func (handler *Handler) listCategories(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)

	views, err := handler.categories.ListAdmin(request.Context(), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}

/*
GET /api/v1/admin/tags.

Description: All tags, disabled ones included.

Request:
  - locale: string (query, optional)

Response:
  - 200: []tag.View: Success
*/
func (handler *Handler) listTags(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)

	views, err := handler.tags.ListAdmin(request.Context(), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}
