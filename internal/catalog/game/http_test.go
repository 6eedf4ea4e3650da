// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package game

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/ludora/pkg/pagination"
)

/*
TestRailLimit verifies that rail endpoints clamp the limit parameter: values
below 1 or above the page-size ceiling fall back to the default instead of
reaching the repository as a raw LIMIT clause.
*/
func TestRailLimit(t *testing.T) {
	cases := []struct {
		name  string
		query string
		want  int
	}{
		{name: "absent", query: "", want: defaultRailLimit},
		{name: "explicit", query: "?limit=6", want: 6},
		{name: "ceiling", query: "?limit=100", want: pagination.MaxLimit},
		{name: "zero", query: "?limit=0", want: defaultRailLimit},
		{name: "negative", query: "?limit=-1", want: defaultRailLimit},
		{name: "excessive", query: "?limit=100000", want: defaultRailLimit},
		{name: "garbage", query: "?limit=abc", want: defaultRailLimit},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/games/trending"+tc.query, nil)
			assert.Equal(t, tc.want, railLimit(request))
		})
	}
}
