// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/language"

	"github.com/taibuivan/ludora/internal/platform/validate"
	"github.com/taibuivan/ludora/pkg/convert"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: interface{} (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target interface{}) error {
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID retrieves a named URL parameter (UUID/Slug) from the request.
*/
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Slug retrieves a named URL parameter and checks that it is a well-formed
slug before it travels to the service layer.

Parameters:
  - request: *http.Request
  - name: string (URL parameter name)

Returns:
  - string: The slug value
  - error: apperr.AppError (VALIDATION_ERROR) for malformed values
*/
func Slug(request *http.Request, name string) (string, error) {
	value := chi.URLParam(request, name)

	var v validate.Validator
	if err := v.Slug(name, value).Err(); err != nil {
		return "", err
	}
	return value, nil
}

/*
Locale returns the requested locale from the "locale" query parameter.

Description: BCP 47 input is reduced to its base language ("fr-CA" and "FR"
both become "fr"). Falls back to defaultLocale when the parameter is absent
or unparseable. No support check happens here: an unsupported locale simply
resolves to base-language content downstream.

Parameters:
  - request: *http.Request
  - defaultLocale: string

Returns:
  - string: The normalized locale code
*/
func Locale(request *http.Request, defaultLocale string) string {
	raw := request.URL.Query().Get("locale")
	if raw == "" {
		return defaultLocale
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return defaultLocale
	}

	base, _ := tag.Base()
	return base.String()
}

/*
QueryInt parses an integer query parameter with a fallback default.
*/
func QueryInt(request *http.Request, name string, defaultValue int) int {
	return convert.ToIntD(request.URL.Query().Get(name), defaultValue)
}
