// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ludora/internal/platform/request"
	"github.com/taibuivan/ludora/internal/platform/respond"
)

const defaultPopularLimit = 20

// Handler implements the HTTP layer for the tag dataset.
type Handler struct {
	service       *Service
	defaultLocale string
}

// NewHandler constructs a new tag [Handler].
func NewHandler(service *Service, defaultLocale string) *Handler {
	return &Handler{service: service, defaultLocale: defaultLocale}
}

// Routes returns a [chi.Router] configured with the tag endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/popular", handler.popular)
	router.Get("/{slug}", handler.get)

	return router
}

/*
GET /api/v1/tags.

Description: Returns every enabled tag resolved for the requested locale.

Request:
  - locale: string (query, optional)

Response:
  - 200: []View: Success
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)

	views, err := handler.service.List(request.Context(), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}

/*
GET /api/v1/tags/popular.

Description: Returns the tags attached to the most published games.

Request:
  - locale: string (query, optional)
  - limit: int (query, optional, default 20)

Response:
  - 200: []View: Success
*/
func (handler *Handler) popular(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	limit := requestutil.QueryInt(request, "limit", defaultPopularLimit)

	views, err := handler.service.Popular(request.Context(), locale, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}

/*
GET /api/v1/tags/{slug}.

Description: Resolves a tag by slug.

Request:
  - slug: string (URL)
  - locale: string (query, optional)

Response:
  - 200: View: Success
  - 400: ErrValidation: Malformed slug
  - 404: ErrNotFound: No enabled tag with the slug
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	slug, err := requestutil.Slug(request, "slug")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	locale := requestutil.Locale(request, handler.defaultLocale)

	view, err := handler.service.Get(request.Context(), locale, slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}
