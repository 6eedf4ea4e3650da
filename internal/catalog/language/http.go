// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/ludora/internal/platform/respond"
)

// Handler implements the HTTP layer for the language dataset.
type Handler struct {
	cache *Cache
}

// NewHandler constructs a new language [Handler].
func NewHandler(cache *Cache) *Handler {
	return &Handler{cache: cache}
}

// Routes returns a [chi.Router] configured with the language endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)

	return router
}

/*
GET /api/v1/languages.

Description: Returns every enabled language the catalog can be served in.

Response:
  - 200: []Language: Success
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	langs, err := handler.cache.Enabled(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, langs)
}
