// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// ToText encodes arbitrary bytes into the padded standard base64 alphabet.
func ToText(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// FromText is the exact inverse of ToText. Malformed input yields an error
// wrapping [ErrTransportDecoding].
func FromText(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrTransportDecoding, err)
	}
	return b, nil
}

// Interpret turns decoded bytes into text. Valid UTF-8 is taken as is;
// anything else is read with the legacy one-byte-per-character (ISO-8859-1)
// mapping the service historically emitted. It never fails.
func Interpret(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// unreachable: ISO-8859-1 maps all 256 byte values
		return string(b)
	}
	return string(s)
}
