// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cache

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// KeySeparator delimits segments of a cache key.
const KeySeparator = "::"

// Params is the named parameter set that, together with the operation name,
// identifies a cache entry. Serialization is order-independent: two Params
// with the same pairs always produce the same key regardless of insertion
// order.
type Params map[string]any

// Key builds a deterministic cache key from an operation name and its
// parameters.
//
// Every parameter that affects the operation's result — locale and pagination
// included — must be present, or logically distinct results will collide on
// one entry.
func Key(operation string, params Params) string {
	if len(params) == 0 {
		return operation
	}

	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(params)+1)
	parts = append(parts, operation)
	for _, name := range names {
		parts = append(parts, name+"="+formatParam(params[name]))
	}

	return strings.Join(parts, KeySeparator)
}

// paramEscaper neutralizes the characters that structure a key. Free-text
// parameters such as a search term are caller-controlled; without escaping, a
// value containing "::name=" could impersonate a key segment and collide two
// logically distinct entries.
var paramEscaper = strings.NewReplacer(`\`, `\\`, ":", `\:`, ",", `\,`)

// formatParam renders a single parameter value deterministically.
func formatParam(value any) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case string:
		return paramEscaper.Replace(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case time.Duration:
		return v.String()
	case []string:
		// Order matters to the query, so it matters to the key.
		escaped := make([]string, len(v))
		for i, element := range v {
			escaped[i] = paramEscaper.Replace(element)
		}
		return "[" + strings.Join(escaped, ",") + "]"
	case fmt.Stringer:
		return paramEscaper.Replace(v.String())
	default:
		return paramEscaper.Replace(fmt.Sprintf("%v", v))
	}
}
