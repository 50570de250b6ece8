// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import "errors"

var (
	// ErrInvalidKeyLength is returned when a cipher key is empty or longer
	// than 256 bytes.
	ErrInvalidKeyLength = errors.New("cipher key must be 1..256 bytes long")

	// ErrInvalidLayers is returned when Encode is asked for a negative
	// number of percent-encoding layers.
	ErrInvalidLayers = errors.New("percent-encoding layers must not be negative")

	// ErrTransportDecoding wraps every failure of the decode pipeline:
	// non-converging percent-decoding, malformed base64 or invalid JSON at
	// any stage.
	ErrTransportDecoding = errors.New("transport decoding error")
)
