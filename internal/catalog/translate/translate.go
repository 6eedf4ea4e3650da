// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package translate resolves per-locale display fields against their base-locale
defaults.

Every translatable entity carries a base-locale value for each display field
plus zero or more translation rows, at most one per locale. Resolution is a
total function: whatever the inputs, it produces a usable display string and
never errors. A missing row, a missing field inside a row, and an empty string
all fall back to the base value alike.

The resolver never consults request state. The target locale is an explicit
parameter on every call, so resolved values can be cached per locale without
any hidden inputs.
*/
package translate

// Row is a single translation record attached to an entity.
//
// Implementations return the locale code the record was written in.
type Row interface {
	TranslationLocale() string
}

/*
Field resolves one display field for the given locale.

Description: When locale equals baseLocale the translation rows are not
scanned at all; the base value is authoritative for its own locale even if a
redundant row exists. Otherwise the rows are searched for the locale and the
field is taken from the matching row, falling back to base when the row is
absent or the extracted value is empty.

Parameters:
  - rows: []T (the entity's translation rows, at most one per locale)
  - locale: string (requested locale code)
  - baseLocale: string (locale the base value is written in)
  - value: func(T) string (extracts the field from a row)
  - base: string (base-locale value of the field)

Returns:
  - string: Resolved display value, never empty unless base is empty
*/
func Field[T Row](rows []T, locale, baseLocale string, value func(T) string, base string) string {
	if locale == baseLocale {
		return base
	}

	for _, row := range rows {
		if row.TranslationLocale() != locale {
			continue
		}
		if v := value(row); v != "" {
			return v
		}
		// At most one row per locale: nothing further to find.
		break
	}

	return base
}

/*
Pick returns the translation row for the given locale, if any.

Description: Convenience for call sites that resolve several fields from one
entity; finding the row once avoids rescanning per field. A base-locale
request returns no row, mirroring [Field].

Parameters:
  - rows: []T
  - locale: string
  - baseLocale: string

Returns:
  - T: Matching row (zero value when absent)
  - bool: Whether a row for the locale exists
*/
func Pick[T Row](rows []T, locale, baseLocale string) (T, bool) {
	var zero T
	if locale == baseLocale {
		return zero, false
	}

	for _, row := range rows {
		if row.TranslationLocale() == locale {
			return row, true
		}
	}
	return zero, false
}

// Or returns value when non-empty, base otherwise. Used with [Pick] to
// resolve individual fields from an already-located row.
func Or(value, base string) string {
	if value != "" {
		return value
	}
	return base
}
