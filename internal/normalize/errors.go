// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "errors"

// ErrMalformedVendorData is returned when a record lacks the markup a
// normalizer extracts a field from.
var ErrMalformedVendorData = errors.New("malformed vendor data")
