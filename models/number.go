// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"math"
)

// Number is a numeric value derived from vendor text. It is NaN when the
// source was not numeric or, for averages, when there was nothing to
// average. NaN means "no data" and marshals as JSON null.
type Number float64

// NaN returns the "no data" Number.
func NaN() Number {
	return Number(math.NaN())
}

// Valid reports whether n carries data.
func (n Number) Valid() bool {
	return !math.IsNaN(float64(n))
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid() || math.IsInf(float64(n), 0) {
		return []byte("null"), nil
	}
	return json.Marshal(float64(n))
}
