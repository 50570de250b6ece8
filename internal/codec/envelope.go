// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// envelopeCodec is the private implementation of [Codec].
type envelopeCodec struct {
	key []byte
}

// NewEnvelopeCodec constructs a [Codec] bound to key. The key is copied and
// never mutated afterwards. Returns [ErrInvalidKeyLength] if key is empty or
// longer than 256 bytes.
func NewEnvelopeCodec(key []byte) (Codec, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}

	k := make([]byte, len(key))
	copy(k, key)

	return &envelopeCodec{key: k}, nil
}

// Encode implements [Codec].
func (c *envelopeCodec) Encode(value any, layers int) (string, error) {
	if layers < 0 {
		return "", ErrInvalidLayers
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("encode envelope json: %w", err)
	}

	encoded := ToText(Apply(c.key, payload))
	for i := 0; i < layers; i++ {
		encoded = escapeComponent(encoded)
	}

	return encoded, nil
}

// Decode implements [Codec].
func (c *envelopeCodec) Decode(wire string, jsonWrapped bool, target any) error {
	raw, err := c.DecodeRaw(wire, jsonWrapped)
	if err != nil {
		return err
	}

	if err = json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: payload: %v", ErrTransportDecoding, err)
	}
	return nil
}

// DecodeRaw implements [Codec].
func (c *envelopeCodec) DecodeRaw(wire string, jsonWrapped bool) (json.RawMessage, error) {
	value := wire
	if jsonWrapped {
		if err := json.Unmarshal([]byte(wire), &value); err != nil {
			return nil, fmt.Errorf("%w: unwrap json string: %v", ErrTransportDecoding, err)
		}
	}

	value, err := unescapeFixpoint(value)
	if err != nil {
		return nil, err
	}

	ciphered, err := FromText(value)
	if err != nil {
		return nil, err
	}

	plain := Interpret(Apply(c.key, ciphered))
	if !json.Valid([]byte(plain)) {
		return nil, fmt.Errorf("%w: deciphered payload is not valid json", ErrTransportDecoding)
	}

	return json.RawMessage(plain), nil
}

// unescapeFixpoint percent-decodes s until a pass leaves it unchanged. A pass
// that changes s also shortens it, so the loop runs at most len(s)+1 times
// and any number of escape layers is undone.
func unescapeFixpoint(s string) (string, error) {
	for {
		next, err := url.PathUnescape(s)
		if err != nil {
			return "", fmt.Errorf("%w: percent-decoding: %v", ErrTransportDecoding, err)
		}
		if next == s {
			return s, nil
		}
		s = next
	}
}

// escapeComponent escapes s as a URL query component, spelling spaces as
// %20 rather than '+' so that unescapeFixpoint reverses it exactly.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
