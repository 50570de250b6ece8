// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec implements the transport encoding spoken by the Axios web
// service.
//
// Every request and response body exchanged with the vendor is wrapped in an
// envelope built from three layers:
//
//	JSON  →  stream cipher (shared key)  →  base64  →  percent-encoding × N
//
// [Codec] composes the layers. The stream cipher ([Apply]) and the text layer
// ([ToText], [FromText], [Interpret]) are exported for callers that need a
// single stage. The cipher is a legacy obfuscation scheme mandated by the
// vendor and offers no confidentiality.
//
// All functions in this package are pure: the only state is the read-only
// key held by a [Codec], so a single instance may be shared across
// goroutines.
package codec

import "encoding/json"

//go:generate mockgen -source=interfaces.go -destination=../mock/codec_mock.go -package=mock

// Codec produces and consumes vendor envelopes.
type Codec interface {
	// Encode serialises value to JSON, ciphers it with the configured key,
	// base64-encodes the result and applies URL component escaping exactly
	// layers times. layers == 0 returns the raw base64 text.
	Encode(value any, layers int) (string, error)

	// Decode reverses Encode and unmarshals the recovered JSON into target.
	// When jsonWrapped is true, wire is first parsed as a JSON string
	// literal. Percent-decoding is repeated until the value stops changing,
	// so the caller never specifies how many layers were applied.
	Decode(wire string, jsonWrapped bool, target any) error

	// DecodeRaw is Decode without the final unmarshal step.
	DecodeRaw(wire string, jsonWrapped bool) (json.RawMessage, error)
}
