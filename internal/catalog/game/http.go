// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/ludora/internal/platform/request"
	"github.com/taibuivan/ludora/internal/platform/respond"
	"github.com/taibuivan/ludora/pkg/pagination"
)

// defaultRailLimit caps the homepage rails when no limit is given.
const defaultRailLimit = 12

// railLimit parses the "limit" query parameter for a rail endpoint, clamped
// to [1, pagination.MaxLimit]. Out-of-range values fall back to the default
// rather than reaching the repository as a hostile LIMIT clause.
func railLimit(request *http.Request) int {
	limit := requestutil.QueryInt(request, "limit", defaultRailLimit)
	if limit < 1 || limit > pagination.MaxLimit {
		return defaultRailLimit
	}
	return limit
}

// Handler implements the HTTP layer for the game catalog.
type Handler struct {
	queries       *Queries
	tracker       *Tracker
	defaultLocale string
}

// NewHandler constructs a new game [Handler].
func NewHandler(queries *Queries, tracker *Tracker, defaultLocale string) *Handler {
	return &Handler{queries: queries, tracker: tracker, defaultLocale: defaultLocale}
}

// Routes returns a [chi.Router] configured with the game endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/search", handler.search)

	// # Homepage Rails
	router.Get("/featured", handler.featured)
	router.Get("/trending", handler.trending)
	router.Get("/most-played", handler.mostPlayed)
	router.Get("/newest", handler.newest)

	// # Browse by Reference Dataset
	router.Get("/category/{slug}", handler.byCategory)
	router.Get("/tag/{slug}", handler.byTag)

	// # Single Game
	router.Get("/{slug}", handler.get)
	router.Post("/{slug}/play", handler.play)

	return router
}

/*
GET /api/v1/games.

Description: Returns one page of the published catalog.

Request:
  - locale: string (query, optional)
  - sort: string (query, optional: popular|newest|name|rating)
  - page, limit: int (query, optional)

Response:
  - 200: []View: Paginated list
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	sortBy := ParseSort(request.URL.Query().Get("sort"))
	paginationParams := pagination.FromRequest(request)

	listing, err := handler.queries.All(request.Context(), locale, sortBy, paginationParams.Page, paginationParams.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Items, listing.Meta)
}

/*
GET /api/v1/games/search.

Description: Full-text search across base and translated titles.

Request:
  - q: string (query, required)
  - locale: string (query, optional)
  - page, limit: int (query, optional)

Response:
  - 200: []View: Paginated matches by popularity
  - 400: ErrValidation: Missing search term
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	paginationParams := pagination.FromRequest(request)

	listing, err := handler.queries.Search(request.Context(), locale, request.URL.Query().Get("q"), paginationParams.Page, paginationParams.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Items, listing.Meta)
}

/*
GET /api/v1/games/featured.

Description: The curated featured rail, padded with most-played games when
curation runs short.

Request:
  - locale: string (query, optional)
  - limit: int (query, optional, default 12)

Response:
  - 200: []View: Success
*/
func (handler *Handler) featured(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	limit := railLimit(request)

	views, err := handler.queries.Featured(request.Context(), locale, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}

/*
GET /api/v1/games/trending.

Description: Recent releases ranked by the trending score.

Request:
  - locale: string (query, optional)
  - limit: int (query, optional, default 12)

Response:
  - 200: []View: Success
*/
func (handler *Handler) trending(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	limit := railLimit(request)

	views, err := handler.queries.Trending(request.Context(), locale, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}

/*
GET /api/v1/games/most-played.

Description: All-time most played games.

Request:
  - locale: string (query, optional)
  - limit: int (query, optional, default 12)

Response:
  - 200: []View: Success
*/
func (handler *Handler) mostPlayed(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	limit := railLimit(request)

	views, err := handler.queries.MostPlayed(request.Context(), locale, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}

/*
GET /api/v1/games/newest.

Description: Most recently released games.

Request:
  - locale: string (query, optional)
  - limit: int (query, optional, default 12)

Response:
  - 200: []View: Success
*/
func (handler *Handler) newest(writer http.ResponseWriter, request *http.Request) {
	locale := requestutil.Locale(request, handler.defaultLocale)
	limit := railLimit(request)

	views, err := handler.queries.Newest(request.Context(), locale, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, views)
}

/*
GET /api/v1/games/category/{slug}.

Description: Games in one category.

Request:
  - slug: string (URL)
  - locale: string (query, optional)
  - sort: string (query, optional)
  - page, limit: int (query, optional)

Response:
  - 200: []View: Paginated list
  - 400: ErrValidation: Malformed slug
  - 404: ErrNotFound: Unknown category
*/
func (handler *Handler) byCategory(writer http.ResponseWriter, request *http.Request) {
	slug, err := requestutil.Slug(request, "slug")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	locale := requestutil.Locale(request, handler.defaultLocale)
	sortBy := ParseSort(request.URL.Query().Get("sort"))
	paginationParams := pagination.FromRequest(request)

	listing, err := handler.queries.ByCategory(request.Context(), locale, slug, sortBy, paginationParams.Page, paginationParams.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Items, listing.Meta)
}

/*
GET /api/v1/games/tag/{slug}.

Description: Games carrying one tag.

Request:
  - slug: string (URL)
  - locale: string (query, optional)
  - sort: string (query, optional)
  - page, limit: int (query, optional)

Response:
  - 200: []View: Paginated list
  - 400: ErrValidation: Malformed slug
  - 404: ErrNotFound: Unknown tag
*/
func (handler *Handler) byTag(writer http.ResponseWriter, request *http.Request) {
	slug, err := requestutil.Slug(request, "slug")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	locale := requestutil.Locale(request, handler.defaultLocale)
	sortBy := ParseSort(request.URL.Query().Get("sort"))
	paginationParams := pagination.FromRequest(request)

	listing, err := handler.queries.ByTag(request.Context(), locale, slug, sortBy, paginationParams.Page, paginationParams.Limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, listing.Items, listing.Meta)
}

/*
GET /api/v1/games/{slug}.

Description: One published game, fully resolved and decorated.

Request:
  - slug: string (URL)
  - locale: string (query, optional)

Response:
  - 200: View: Success
  - 400: ErrValidation: Malformed slug
  - 404: ErrNotFound: No published game with the slug
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	slug, err := requestutil.Slug(request, "slug")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	locale := requestutil.Locale(request, handler.defaultLocale)

	view, err := handler.queries.BySlug(request.Context(), locale, slug)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

/*
POST /api/v1/games/{slug}/play.

Description: Counts one play. Fire-and-forget from the client's perspective;
the count reaches Postgres on the next tracker flush.

Request:
  - slug: string (URL)

Response:
  - 204: No Content: Counted
  - 400: ErrValidation: Malformed slug
*/
func (handler *Handler) play(writer http.ResponseWriter, request *http.Request) {
	slug, err := requestutil.Slug(request, "slug")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.tracker.Record(request.Context(), slug); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
