// Copyright (c) 2026 Ludora. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import "time"

// Language is a locale the catalog can be served in.
type Language struct {
	ID         int       `json:"id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
	NativeName string    `json:"native_name"`
	IsDefault  bool      `json:"is_default"`
	IsEnabled  bool      `json:"is_enabled"`
	CreatedAt  time.Time `json:"-"`
}
