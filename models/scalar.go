// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Scalar is a loosely-typed vendor value. The service sends the same field
// as a string in one response and as a number or boolean in the next, so a
// Scalar accepts any JSON scalar and keeps its textual form:
//
//	"6"   → "6"
//	6     → "6"
//	6.0   → "6"
//	true  → "true"
//	null  → ""
//
// Comparing Scalars therefore treats numbers and their string forms as equal.
// A Scalar always marshals back as a JSON string.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
	case len(b) > 0 && b[0] == '"':
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*s = Scalar(str)
	case bytes.Equal(b, []byte("true")), bytes.Equal(b, []byte("false")):
		*s = Scalar(b)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("scalar: unsupported json value %s", b)
		}
		*s = Scalar(canonicalNumber(n))
	}

	return nil
}

// String returns the textual form of the value.
func (s Scalar) String() string {
	return string(s)
}

// canonicalNumber renders fractional or exponent forms the way a
// JavaScript engine prints them, so 6.0 and 6 compare equal.
func canonicalNumber(n json.Number) string {
	text := n.String()
	if !strings.ContainsAny(text, ".eE") {
		return text
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return text
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
