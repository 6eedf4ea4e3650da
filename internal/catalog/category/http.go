// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package category

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ludora/internal/platform/request"
	"github.com/taibuivan/ludora/internal/platform/respond"
)

// defaultPopularLimit caps the /popular listing when no limit is given.
const defaultPopularLimit = 10

// Handler implements the HTTP layer for the category dataset.
type Handler struct {
	service       *Service
	defaultLocale string
}

// NewHandler constructs a new category [Handler].
func NewHandler(service *Service, defaultLocale string) *Handler {
	return &Handler{service: service, defaultLocale: defaultLocale}
}

// Routes returns a [chi.Router] configured with the category endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.tree)
	router.Get("/flat", handler.list)
	router.Get("/popular", handler.popular)
	router.Get("/{slug}", handler.get)

	return router
}

/*
GET /api/v1/categories.

Description: Returns the category navigation tree, top-level categories with
their children, resolved for the requested locale.

Request:
  - locale: string (query, optional)

Response:
  - 200: []Node: Success
*/
func (handler *Handler) tree(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)

	nodes, err := handler.service.Tree(request.Context(), locale)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, nodes)
}

/*
GET /api/v1/categories/flat.

Description: Returns every enabled category as a flat list.

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
GET /api/v1/categories/popular.

Description: Returns the categories with the most published games.

Request:
  - locale: string (query, optional)
  - limit: int (query, optional, default 10)

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
GET /api/v1/categories/{slug}.

Description: Resolves a category by slug, children attached.

Request:
  - slug: string (URL)
  - locale: string (query, optional)

Response:
  - 200: Node: Success
  - 400: ErrValidation: Malformed slug
  - 404: ErrNotFound: No enabled category with the slug
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	slug, err := requestutil.Slug(request, "slug")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	locale := requestutil.Locale(request, handler.defaultLocale)

	node, err := handler.service.Get(request.Context(), locale, slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, node)
}
