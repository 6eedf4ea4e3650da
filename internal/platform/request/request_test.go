// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/ludora/internal/platform/apperr"
	requestutil "github.com/taibuivan/ludora/internal/platform/request"
)

// withSlugParam builds a request carrying a chi URL parameter.
func withSlugParam(value string) *http.Request {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("slug", value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeCtx))
}

/*
TestSlug verifies that path parameters are format-checked before they reach
the service layer: well-formed slugs pass through, anything else is a
validation error.
*/
func TestSlug(t *testing.T) {
	slug, err := requestutil.Slug(withSlugParam("mad-racer-2"), "slug")
	require.NoError(t, err)
	assert.Equal(t, "mad-racer-2", slug)

	for _, bad := range []string{"", "Mad-Racer", "mad_racer", "-mad", "mad-", "a b", "a/../b"} {
		_, err := requestutil.Slug(withSlugParam(bad), "slug")
		require.Error(t, err, "slug %q must be rejected", bad)

		var appErr *apperr.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	}
}

/*
TestLocale verifies BCP 47 normalization and the default fallback.
*/
func TestLocale(t *testing.T) {
	cases := []struct {
		query string
		want  string
	}{
		{query: "", want: "en"},
		{query: "?locale=fr", want: "fr"},
		{query: "?locale=fr-CA", want: "fr"},
		{query: "?locale=PT", want: "pt"},
		{query: "?locale=!!", want: "en"},
	}

	for _, tc := range cases {
		request := httptest.NewRequest(http.MethodGet, "/"+tc.query, nil)
		assert.Equal(t, tc.want, requestutil.Locale(request, "en"), "query %q", tc.query)
	}
}
