// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

// maxKeyLength is the size of the permutation table; longer keys would never
// be fully consumed by the key schedule.
const maxKeyLength = 256

// ValidateKey reports whether key can drive the stream cipher.
func ValidateKey(key []byte) error {
	if len(key) == 0 || len(key) > maxKeyLength {
		return ErrInvalidKeyLength
	}
	return nil
}

// Apply runs the RC4 stream cipher over data with key and returns a new
// slice. The operation is its own inverse: Apply(key, Apply(key, d)) == d.
//
// key must satisfy [ValidateKey]; Apply panics on an empty key, so callers
// validate once when the key is loaded.
func Apply(key, data []byte) []byte {
	var s [256]byte
	for i := range s {
		s[i] = byte(i)
	}

	var j byte
	for i := 0; i < 256; i++ {
		j += s[i] + key[i%len(key)]
		s[i], s[j] = s[j], s[i]
	}

	out := make([]byte, len(data))
	var x, y byte
	for n, b := range data {
		x++
		y += s[x]
		s[x], s[y] = s[y], s[x]
		out[n] = b ^ s[s[x]+s[y]]
	}

	return out
}
